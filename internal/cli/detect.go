// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	detectOS   string
	detectArch string
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected platform",
	Long:  `Detect the host operating system and CPU architecture and print the derived names.`,
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectOS, "os", "", "operating system instead of detection (Windows, Mac, Linux, SunOS or a codename)")
	detectCmd.Flags().StringVar(&detectArch, "arch", "", "architecture instead of detection (x86, x64, arm64, ...)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	plat, err := detectPlatform(cmd.Context(), detectOS, detectArch)
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "OS: %s\n", plat.OS())
	fmt.Fprintf(out, "Architecture: %s\n", plat.Architecture())
	fmt.Fprintf(out, "Codename: %s\n", plat.Codename())
	fmt.Fprintf(out, "Classifier: %s\n", plat.NodeClassifier())
	fmt.Fprintf(out, "Archive extension: %s\n", plat.ArchiveExtension())

	return nil
}
