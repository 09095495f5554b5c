package main

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/spf13/cobra"
)

var (
	pointsWidth  int
	pointsHeight int
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the control points of the configured garment",
	Long:  "Compute every control point in pixels for the configured shape and surface size.",
	Args:  cobra.NoArgs,
	RunE:  runPoints,
}

func init() {
	pointsCmd.Flags().IntVar(&pointsWidth, "width", 0, "Surface width in pixels (default from config)")
	pointsCmd.Flags().IntVar(&pointsHeight, "height", 0, "Surface height in pixels (default from config)")
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	w, h := cfg.Surface.Width, cfg.Surface.Height
	if pointsWidth > 0 {
		w = pointsWidth
	}
	if pointsHeight > 0 {
		h = pointsHeight
	}

	pts := garment.Vertices(cfg.Parameters(), float64(w), float64(h))
	normal := garment.SleeveNormal(cfg.Parameters(), float64(w), float64(h))

	fmt.Printf("Surface: %dx%d\n", w, h)
	fmt.Printf("Tolerance: %.2f px\n", garment.Tolerance(float64(h), cfg.Editor.ToleranceRatio))
	fmt.Printf("Sleeve normal: (%.3f, %.3f)\n\n", normal.X, normal.Y)

	fmt.Printf("%-20s %10s %10s  %s\n", "Part", "X", "Y", "Draggable")
	for _, part := range garment.Parts() {
		p := pts.At(part)
		draggable := "no"
		if isDraggable(part) {
			draggable = "yes"
		}
		fmt.Printf("%-20s %10.3f %10.3f  %s\n", part, p.X, p.Y, draggable)
	}
	return nil
}

// isDraggable reports whether a press on part can start a drag
func isDraggable(part garment.Part) bool {
	return garment.HasRule(part) && !garment.DragExcluded.Contains(part)
}
