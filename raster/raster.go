package raster

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"github.com/gogpu/radial"
)

// defaultPalette colors slices when no palette is configured. Colors repeat
// when a series has more values than the palette.
var defaultPalette = []string{
	"#e8553f", "#f4c63d", "#53a0e8", "#6bbd6e",
	"#8f5ab8", "#45b2b8", "#d17905", "#453d3f",
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the slice color palette. Colors are hex strings.
func WithPalette(colors ...string) Option {
	return func(r *Renderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// WithBackground fills the canvas with a solid color before drawing. The
// default background is transparent.
func WithBackground(hex string) Option {
	return func(r *Renderer) { r.background = hex }
}

// WithFont sets the font face used for labels. Without a font, labels are
// skipped regardless of the ShowLabel option.
func WithFont(face ggtext.Face) Option {
	return func(r *Renderer) { r.font = face }
}

// WithLabelColor sets the label text color.
func WithLabelColor(hex string) Option {
	return func(r *Renderer) { r.labelColor = hex }
}

// Renderer rasterizes charts at a fixed canvas size. Chart options with
// explicit Width/Height override the canvas size per render.
type Renderer struct {
	width, height int
	palette       []string
	background    string
	labelColor    string
	font          ggtext.Face
}

// New creates a renderer for a width x height canvas.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		width:      width,
		height:     height,
		palette:    defaultPalette,
		labelColor: "#ffffff",
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// screenRad converts a chart angle (degrees, 0 north, clockwise) to the
// canvas convention (radians, 0 east, increasing toward +Y).
func screenRad(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

// Render draws the series onto a fresh canvas and returns it. Use the
// context's Image or SavePNG to consume the result.
func (r *Renderer) Render(series radial.Series, opts radial.Options) (*gg.Context, error) {
	eff := radial.ExpandOptions(opts)

	width := float64(r.width)
	height := float64(r.height)
	if eff.Width != nil {
		width = *eff.Width
	}
	if eff.Height != nil {
		height = *eff.Height
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %gx%g", width, height)
	}

	dc := gg.NewContext(int(width), int(height))
	if r.background != "" {
		dc.SetHexColor(r.background)
		dc.DrawRectangle(0, 0, width, height)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("fill background: %w", err)
		}
	}

	donut := *eff.Donut
	donutWidth := *eff.DonutWidth
	rect := radial.NewRect(width, height, *eff.ChartPadding)
	radius := radial.Radius(rect, donut, donutWidth)
	if radius <= 0 {
		// No drawable area; an empty canvas is the rendered result.
		return dc, nil
	}
	labelRadius := radial.LabelRadius(radius, donut, *eff.LabelOffset)
	center := rect.Center()

	total := series.Sum()
	if eff.Total != nil {
		total = *eff.Total
	}
	ranges := radial.AngleRanges(series.Floats(), total, *eff.StartAngle)

	for i, value := range series {
		if *eff.IgnoreEmptyValues && value.Value == 0 {
			continue
		}
		if ranges[i].Span() <= 0 {
			continue
		}

		a1 := screenRad(ranges[i].Start)
		a2 := screenRad(ranges[i].End)
		dc.SetHexColor(r.palette[i%len(r.palette)])
		dc.ClearPath()
		if donut {
			dc.DrawArc(center.X, center.Y, radius, a1, a2)
			dc.SetLineWidth(donutWidth)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("stroke slice %d: %w", i, err)
			}
		} else {
			start := radial.PolarToCartesian(center, radius, ranges[i].Start)
			dc.MoveTo(center.X, center.Y)
			dc.LineTo(start.X, start.Y)
			dc.DrawArc(center.X, center.Y, radius, a1, a2)
			dc.ClosePath()
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("fill slice %d: %w", i, err)
			}
		}

		if !*eff.ShowLabel || r.font == nil {
			continue
		}
		text := eff.LabelInterpolation(value.Value, value.Label, i)
		if text == "" {
			continue
		}
		pos := radial.PolarToCartesian(center, labelRadius, ranges[i].Mid())
		anchor := radial.DetermineAnchor(center, pos, eff.LabelDirection)
		dc.SetFont(r.font)
		dc.SetHexColor(r.labelColor)
		dc.DrawStringAnchored(text, pos.X, pos.Y, anchorX(anchor), 0.5)
	}

	return dc, nil
}

// RenderPNG renders the series and writes the result to a PNG file.
func (r *Renderer) RenderPNG(path string, series radial.Series, opts radial.Options) error {
	dc, err := r.Render(series, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	return dc.SavePNG(path)
}

// anchorX maps a text anchor to the horizontal anchor fraction used by
// DrawStringAnchored.
func anchorX(a radial.Anchor) float64 {
	switch a {
	case radial.AnchorStart:
		return 0
	case radial.AnchorEnd:
		return 1
	default:
		return 0.5
	}
}
