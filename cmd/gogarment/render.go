package main

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderOutput  string
	renderOverlay bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the configured garment to a PNG file",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "garment.png", "Output PNG file")
	renderCmd.Flags().BoolVar(&renderOverlay, "overlay", false, "Draw control point markers and labels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	surface, err := render.NewRaster(cfg.Surface.Width, cfg.Surface.Height)
	if err != nil {
		return err
	}
	defer surface.Close()

	ed, err := editor.New(surface, cfg.EditorOptions(logger)...)
	if err != nil {
		return err
	}
	if renderOverlay {
		ed.SetOverlay(true)
	}

	if err := surface.SavePNG(renderOutput); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", renderOutput, cfg.Surface.Width, cfg.Surface.Height)
	return nil
}
