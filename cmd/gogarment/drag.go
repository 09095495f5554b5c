package main

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/render"
	"github.com/spf13/cobra"
)

var (
	dragAt      string
	dragPart    string
	dragBy      string
	dragSteps   int
	dragNudges  []string
	dragOutput  string
	dragOverlay bool
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Replay a pointer drag and print the resulting shape",
	Long: `Press at --at (or on the control point named by --part), move by --by in
--steps equal moves and release. Nudges given with --nudge are applied first.
Positions are in pixels.`,
	Example: `  gogarment drag --at 600,190 --by 50,0
  gogarment drag --part ShoulderRight --by 50,0
  gogarment drag --nudge up --nudge left --at 500,570 --by 0,-40 -o out.png`,
	Args: cobra.NoArgs,
	RunE: runDrag,
}

func init() {
	dragCmd.Flags().StringVar(&dragAt, "at", "", "Press position x,y")
	dragCmd.Flags().StringVar(&dragPart, "part", "", "Press on this part's control point, e.g. ShoulderRight")
	dragCmd.Flags().StringVar(&dragBy, "by", "0,0", "Total motion dx,dy")
	dragCmd.Flags().IntVar(&dragSteps, "steps", 1, "Number of pointer moves")
	dragCmd.Flags().StringArrayVar(&dragNudges, "nudge", nil, "Nudge direction (up, down, left, right), repeatable")
	dragCmd.Flags().StringVarP(&dragOutput, "output", "o", "", "Also render the result to this PNG file")
	dragCmd.Flags().BoolVar(&dragOverlay, "overlay", false, "Draw control point markers in the PNG")
	dragCmd.MarkFlagsMutuallyExclusive("at", "part")
	rootCmd.AddCommand(dragCmd)
}

func runDrag(cmd *cobra.Command, args []string) error {
	if dragSteps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	var surface render.Surface = render.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)
	var raster *render.Raster
	if dragOutput != "" {
		raster, err = render.NewRaster(cfg.Surface.Width, cfg.Surface.Height)
		if err != nil {
			return err
		}
		defer raster.Close()
		surface = raster
	}

	ed, err := editor.New(surface, cfg.EditorOptions(logger)...)
	if err != nil {
		return err
	}
	ed.SetOverlay(dragOverlay)

	for _, name := range dragNudges {
		dir, err := garment.ParseDirection(name)
		if err != nil {
			return err
		}
		if err := ed.Nudge(dir); err != nil {
			return err
		}
	}

	if dragAt != "" || dragPart != "" {
		if err := replayDrag(ed); err != nil {
			return err
		}
	}

	printParameters(ed.Parameters())

	if raster != nil {
		if err := raster.SavePNG(dragOutput); err != nil {
			return fmt.Errorf("failed to write %s: %w", dragOutput, err)
		}
		fmt.Printf("\nWrote %s\n", dragOutput)
	}
	return nil
}

// pressPosition returns the --at position, or the control point of --part
func pressPosition(ed *editor.Controller, at, part string) (geometry.Vector2, error) {
	if part == "" {
		pos, err := parseVector(at)
		if err != nil {
			return geometry.Vector2{}, fmt.Errorf("--at: %w", err)
		}
		return pos, nil
	}

	p, err := garment.ParsePart(part)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("--part: %w", err)
	}
	return ed.ControlPoints().At(p), nil
}

func replayDrag(ed *editor.Controller) error {
	at, err := pressPosition(ed, dragAt, dragPart)
	if err != nil {
		return err
	}
	by, err := parseVector(dragBy)
	if err != nil {
		return fmt.Errorf("--by: %w", err)
	}

	ed.PointerDown(at)
	part, ok := ed.Captured()
	if !ok {
		fmt.Printf("No part at (%.1f, %.1f)\n\n", at.X, at.Y)
		return nil
	}
	fmt.Printf("Captured: %s\n\n", part.Label())

	step := by.Mul(1 / float64(dragSteps))
	pos := at
	for i := 0; i < dragSteps; i++ {
		pos = pos.Add(step)
		ed.PointerMove(pos)
	}
	ed.PointerUp()
	return nil
}

func printParameters(p garment.Parameters) {
	fmt.Println("Parameters:")
	fmt.Printf("  Origin:           (%.4f, %.4f)\n", p.Origin.X, p.Origin.Y)
	fmt.Printf("  Shoulder length:  %.4f\n", p.ShoulderLength)
	fmt.Printf("  Waist length:     %.4f\n", p.WaistLength)
	fmt.Printf("  Flare length:     %.4f\n", p.FlareLength)
	fmt.Printf("  Hem length:       %.4f\n", p.HemLength)
	fmt.Printf("  Sleeve vector:    (%.4f, %.4f)\n", p.SleeveVector.X, p.SleeveVector.Y)
	fmt.Printf("  Sleeve thickness: %.4f\n", p.SleeveThickness)
}
