package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ocg",
	Short: "OpenCanvasGizmo - interactive 2D canvas transformation tools",
	Long: `OpenCanvasGizmo (ocg) provides an interactive canvas for moving,
resizing and rotating scene objects, plus tooling for scene files:
  - Zoomable world/screen coordinate mapping
  - Rotation-aware resize and rotate handles
  - Scene DSL and S-expression scene formats

Examples:
  ocg ui                         # Launch the canvas with a demo scene
  ocg ui drawing.scn             # Launch the canvas with a scene file
  ocg scene info drawing.scn     # Show scene summary
  ocg scene export drawing.scn   # Convert the DSL form to S-expressions`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
