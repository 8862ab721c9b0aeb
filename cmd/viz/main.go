// Command viz renders declarative chart descriptions to PNG or SVG.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gographics/viz"
	"github.com/gographics/viz/plot"
	"github.com/gographics/viz/sexpr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "viz",
		Short:        "viz renders declarative chart descriptions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				viz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		output   string
		width    float64
		height   float64
		dpi      float64
		fontSize float64
	)

	render := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a chart description to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := sexpr.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			opts := []viz.LayerOption{
				viz.WithDPI(dpi),
				viz.WithFontSize(viz.Pt(fontSize)),
			}

			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".png":
				layer, raster, err := viz.NewRasterLayer(int(width), int(height), opts...)
				if err != nil {
					return err
				}
				if err := plot.Render(layer, doc); err != nil {
					return err
				}
				return raster.WritePNG(output)
			case ".svg":
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				layer, svg, err := viz.NewSVGLayer(f, width, height, opts...)
				if err != nil {
					return err
				}
				if err := plot.Render(layer, doc); err != nil {
					return err
				}
				svg.Finish()
				return f.Close()
			default:
				return fmt.Errorf("unsupported output format %q (use .png or .svg)", ext)
			}
		},
	}

	render.Flags().StringVarP(&output, "output", "o", "chart.png", "output file (.png or .svg)")
	render.Flags().Float64Var(&width, "width", 800, "chart width in pixels")
	render.Flags().Float64Var(&height, "height", 600, "chart height in pixels")
	render.Flags().Float64Var(&dpi, "dpi", 96, "render resolution")
	render.Flags().Float64Var(&fontSize, "font-size", 11, "default font size in points")
	return render
}
