// Package main provides the radial CLI: it renders circular charts from a
// YAML chart definition to SVG and/or PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	ggtext "github.com/gogpu/gg/text"
	"github.com/gogpu/radial"
	"github.com/gogpu/radial/raster"
)

var (
	svgPath    string
	pngPath    string
	fontPath   string
	fontSize   float64
	background string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radial [chart.yaml]",
		Short: "Render pie, donut and gauge charts from a YAML definition",
		Long: `radial reads a chart definition (series values, options, responsive
overrides) from a YAML file and renders it as SVG and/or PNG.`,
		Args:    cobra.ExactArgs(1),
		Version: radial.Version,
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&svgPath, "svg", "s", "", "SVG output path")
	rootCmd.Flags().StringVarP(&pngPath, "png", "p", "", "PNG output path")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF font for PNG labels")
	rootCmd.Flags().Float64Var(&fontSize, "font-size", 14, "PNG label size in points")
	rootCmd.Flags().StringVar(&background, "background", "", "PNG background color (hex)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// seriesEntry accepts either a bare number or a {value, label, class}
// mapping.
type seriesEntry struct {
	Value float64
	Label string
	Class string
}

func (e *seriesEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.Value)
	}
	var obj struct {
		Value float64 `yaml:"value"`
		Label string  `yaml:"label"`
		Class string  `yaml:"class"`
	}
	if err := node.Decode(&obj); err != nil {
		return err
	}
	*e = seriesEntry{Value: obj.Value, Label: obj.Label, Class: obj.Class}
	return nil
}

// fileOptions mirrors radial.Options for YAML decoding. Pointer fields keep
// the set/unset distinction the option merge relies on. labelFormat is a
// Sprintf pattern applied to values without a declared label.
type fileOptions struct {
	Width             *float64 `yaml:"width"`
	Height            *float64 `yaml:"height"`
	ChartPadding      *float64 `yaml:"chartPadding"`
	StartAngle        *float64 `yaml:"startAngle"`
	Total             *float64 `yaml:"total"`
	Donut             *bool    `yaml:"donut"`
	DonutWidth        *float64 `yaml:"donutWidth"`
	ShowLabel         *bool    `yaml:"showLabel"`
	LabelOffset       *float64 `yaml:"labelOffset"`
	LabelDirection    string   `yaml:"labelDirection"`
	LabelFormat       string   `yaml:"labelFormat"`
	IgnoreEmptyValues *bool    `yaml:"ignoreEmptyValues"`
}

func (o fileOptions) toOptions() radial.Options {
	opts := radial.Options{
		Width:             o.Width,
		Height:            o.Height,
		ChartPadding:      o.ChartPadding,
		StartAngle:        o.StartAngle,
		Total:             o.Total,
		Donut:             o.Donut,
		DonutWidth:        o.DonutWidth,
		ShowLabel:         o.ShowLabel,
		LabelOffset:       o.LabelOffset,
		LabelDirection:    radial.LabelDirection(o.LabelDirection),
		IgnoreEmptyValues: o.IgnoreEmptyValues,
	}
	if o.LabelFormat != "" {
		format := o.LabelFormat
		opts.LabelInterpolation = func(value float64, label string, _ int) string {
			if label != "" {
				return label
			}
			return fmt.Sprintf(format, value)
		}
	}
	return opts
}

// chartFile is the YAML chart definition.
type chartFile struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Series     []seriesEntry `yaml:"series"`
	Options    fileOptions   `yaml:"options"`
	Responsive []struct {
		Query   string      `yaml:"query"`
		Options fileOptions `yaml:"options"`
	} `yaml:"responsive"`
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		radial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if svgPath == "" && pngPath == "" {
		return fmt.Errorf("nothing to do: pass --svg and/or --png")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read chart definition: %w", err)
	}
	var def chartFile
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse chart definition: %w", err)
	}
	if len(def.Series) == 0 {
		return fmt.Errorf("chart definition has no series values")
	}

	series := make(radial.Series, len(def.Series))
	for i, e := range def.Series {
		series[i] = radial.Value{Value: e.Value, Label: e.Label, ClassName: e.Class}
	}

	vpWidth, vpHeight := def.Viewport.Width, def.Viewport.Height
	if vpWidth == 0 {
		vpWidth = 800
	}
	if vpHeight == 0 {
		vpHeight = 600
	}
	env := radial.NewViewport(vpWidth, vpHeight)

	responsive := make([]radial.Responsive, len(def.Responsive))
	for i, r := range def.Responsive {
		responsive[i] = radial.Responsive{Query: r.Query, Options: r.Options.toOptions()}
	}

	if svgPath != "" {
		pie := radial.NewPie(series, def.Options.toOptions(),
			radial.WithEnvironment(env),
			radial.WithResponsive(responsive...),
		)
		defer pie.Close()
		if err := pie.SVG().WriteToFile(svgPath); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgPath)
	}

	if pngPath != "" {
		var rasterOpts []raster.Option
		if background != "" {
			rasterOpts = append(rasterOpts, raster.WithBackground(background))
		}
		if fontPath != "" {
			source, err := ggtext.NewFontSourceFromFile(fontPath)
			if err != nil {
				return fmt.Errorf("load font: %w", err)
			}
			rasterOpts = append(rasterOpts, raster.WithFont(source.Face(fontSize)))
		}

		// Apply responsive entries for the configured viewport, then
		// rasterize the resolved effective options.
		resolver := radial.NewResolver(radial.Options{}, def.Options.toOptions(), responsive, env, nil)
		defer resolver.Stop()

		r := raster.New(int(vpWidth), int(vpHeight), rasterOpts...)
		if err := r.RenderPNG(pngPath, series, resolver.Current()); err != nil {
			return fmt.Errorf("render PNG: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngPath)
	}

	return nil
}
