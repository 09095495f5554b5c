package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogarment/internal/app"
	"github.com/philipparndt/gogarment/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "gogarment-editor [config]",
	Short:   "Interactive garment shape editor",
	Long:    `gogarment-editor opens a window with a garment outline whose control points can be dragged to reshape it.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.Full(),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := ""
		if len(args) == 1 {
			configPath = args[0]
		}
		return app.Run(configPath)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
