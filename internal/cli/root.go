// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/arc-language/nodedist/pkg/core"
	"github.com/arc-language/nodedist/pkg/platform"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	noExec  bool
	config  *core.Config
	logger  *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nodedist",
	Short: "Node.js distribution resolver",
	Long: `nodedist - Node.js distribution resolver

Detects the host operating system and CPU architecture and computes the
names and download paths of the matching pre-built Node.js distribution.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nodedist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noExec, "no-exec", false, "identify ARM revisions with uname(2) instead of running uname -a")

	// Add commands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}

	logger = nil
	if config.Debug {
		logger = log.New(os.Stderr, "[nodedist] ", log.LstdFlags)
	}
}

// detectPlatform guesses the host platform. A non-empty osName or archName
// replaces the guess for that component.
func detectPlatform(ctx context.Context, osName, archName string) (platform.Platform, error) {
	d := platform.NewDetector()
	d.Logger = logger
	if noExec {
		d.Identifier = platform.KernelIdentifier{}
	}
	if config.OSName != "" {
		d.Env.OSName = config.OSName
	}
	if config.Arch != "" {
		d.Env.Arch = config.Arch
	}

	if osName != "" && archName != "" {
		p, err := parsePlatform(osName, archName)
		if err == nil && logger != nil {
			logger.Printf("Using %s", platform.Describe(p))
		}
		return p, err
	}

	p := d.Guess(ctx)
	o, arch := p.OS(), p.Architecture()

	if osName != "" {
		parsed, err := platform.ParseOS(osName)
		if err != nil {
			return platform.Platform{}, err
		}
		o = parsed
	}
	if archName != "" {
		parsed, err := platform.ParseArchitecture(archName)
		if err != nil {
			return platform.Platform{}, err
		}
		arch = parsed
	}

	p = platform.New(o, arch)
	if logger != nil {
		logger.Printf("Using %s", platform.Describe(p))
	}
	return p, nil
}

func parsePlatform(osName, archName string) (platform.Platform, error) {
	o, err := platform.ParseOS(osName)
	if err != nil {
		return platform.Platform{}, err
	}
	arch, err := platform.ParseArchitecture(archName)
	if err != nil {
		return platform.Platform{}, err
	}
	return platform.New(o, arch), nil
}
