// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/arc-language/nodedist/pkg/platform"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

var (
	resolveOS               string
	resolveArch             string
	resolveArchiveOnWindows bool
	resolveDownloadRoot     string
	resolveOutput           string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [version]",
	Short: "Show the distribution of a Node.js version",
	Long: `Compute the download path, URL and local filename of the Node.js
distribution matching the detected platform.

Examples:
  nodedist resolve v18.0.0
  nodedist resolve v0.12.0 --os Windows --arch x86 --archive-on-windows=false
  nodedist resolve v20.11.1 --download-root https://mirror.example.com/node/ -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveOS, "os", "", "operating system instead of detection")
	resolveCmd.Flags().StringVar(&resolveArch, "arch", "", "architecture instead of detection")
	resolveCmd.Flags().BoolVar(&resolveArchiveOnWindows, "archive-on-windows", true, "fetch the zip archive instead of the bare node.exe on Windows")
	resolveCmd.Flags().StringVar(&resolveDownloadRoot, "download-root", "", "distribution site (default from config)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "text", "output format (text, yaml)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	plat, err := detectPlatform(cmd.Context(), resolveOS, resolveArch)
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	// Flags override the loaded config for this run only
	cfg := *config
	if cmd.Flags().Changed("archive-on-windows") {
		cfg.ArchiveOnWindows = resolveArchiveOnWindows
	}
	if resolveDownloadRoot != "" {
		cfg.DownloadRoot = resolveDownloadRoot
	}

	var version string
	if len(args) > 0 {
		version = args[0]
	}
	if v := pick(version, cfg.NodeVersion); v != "" && !semver.IsValid(v) && logger != nil {
		logger.Printf("Warning: %q is not a vMAJOR.MINOR.PATCH version, the path may not exist upstream", v)
	}

	artifact, err := platform.ResolveArtifact(plat, version, &cfg)
	if err != nil {
		return fmt.Errorf("resolving distribution: %w", err)
	}

	return printArtifact(cmd, artifact)
}

func printArtifact(cmd *cobra.Command, a *platform.Artifact) error {
	out := cmd.OutOrStdout()

	switch resolveOutput {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("encoding artifact: %w", err)
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintf(out, "Version: %s\n", a.Version)
		fmt.Fprintf(out, "Classifier: %s\n", a.Classifier)
		fmt.Fprintf(out, "Download path: %s\n", a.DownloadPath)
		fmt.Fprintf(out, "URL: %s\n", a.URL)
		fmt.Fprintf(out, "Local filename: %s\n", a.LocalFilename)
		if a.Extension != "" {
			fmt.Fprintf(out, "Extension: %s\n", a.Extension)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", resolveOutput)
	}
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
