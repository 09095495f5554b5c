package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gogarment",
	Short: "A command-line tool for computing and rendering garment shapes",
	Long: `gogarment computes the control points of a parametric garment outline,
renders it to PNG and replays pointer drags against it, using the same
geometry and interaction rules as the interactive editors.`,
	Version: version.Full(),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML or TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log editor events to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads --config and returns it with a logger honoring --verbose
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.NewLogger(), nil
}

// parseVector parses "x,y"
func parseVector(s string) (geometry.Vector2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Vector2{}, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return geometry.NewVector2(x, y), nil
}
