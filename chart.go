package radial

import (
	"fmt"
	"sync"

	"github.com/gogpu/radial/svg"
)

// DrawKind identifies what a DrawEvent describes.
type DrawKind string

// Draw event kinds.
const (
	DrawSlice DrawKind = "slice"
	DrawLabel DrawKind = "label"
)

// DrawEvent is delivered to the draw hook after each slice or label element
// is emitted. The hook may mutate Element, e.g. to attach extra attributes.
type DrawEvent struct {
	Kind    DrawKind
	Index   int
	Value   Value
	Range   AngleRange
	Center  Point
	Radius  float64
	Element *svg.Element
}

// PieOption configures chart infrastructure at construction time.
type PieOption func(*Pie)

// WithEnvironment renders the chart against env instead of a private
// default viewport.
func WithEnvironment(env Environment) PieOption {
	return func(p *Pie) { p.env = env }
}

// WithResponsive appends responsive option entries, evaluated in order with
// later matches winning.
func WithResponsive(entries ...Responsive) PieOption {
	return func(p *Pie) { p.responsive = append(p.responsive, entries...) }
}

// WithDrawHook registers fn to observe every emitted slice and label.
func WithDrawHook(fn func(DrawEvent)) PieOption {
	return func(p *Pie) { p.drawHook = fn }
}

// Pie renders a proportional circular chart into an owned svg.Document. It
// renders once at construction, again on every effective-options change and
// on every environment change, and on demand via Update. Every render fully
// discards and rebuilds the document's children.
//
// A Pie owns its environment subscriptions; call Close when done with it.
type Pie struct {
	mu      sync.Mutex
	series  Series
	current Options
	doc     *svg.Document

	env        Environment
	responsive []Responsive
	resolver   *Resolver
	cancelEnv  func()
	drawHook   func(DrawEvent)
}

// NewPie creates a chart from series data and options and renders it
// immediately. opts is a partial option set layered over DefaultOptions and
// under any matching responsive entries.
func NewPie(series Series, opts Options, pieOpts ...PieOption) *Pie {
	p := &Pie{series: series}
	for _, o := range pieOpts {
		o(p)
	}
	if p.env == nil {
		p.env = NewViewport(800, 600)
	}

	p.resolver = NewResolver(Options{}, opts, p.responsive, p.env, p.applyOptions)
	p.current = p.resolver.Current()

	// Viewport changes re-render unconditionally: geometry depends on the
	// environment size even when no responsive entry flips.
	p.cancelEnv = p.env.Subscribe(p.redraw)

	p.mu.Lock()
	p.render()
	p.mu.Unlock()
	return p
}

// applyOptions is the resolver's change callback.
func (p *Pie) applyOptions(eff Options) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = eff
	p.render()
}

// redraw re-renders with the current effective configuration.
func (p *Pie) redraw() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.render()
}

// Update forces a synchronous re-render using the last effective
// configuration, without re-merging options. Call it after mutating the
// chart's data with SetSeries, or when an external change invalidates the
// drawing.
func (p *Pie) Update() {
	p.redraw()
}

// SetSeries replaces the chart's data and re-renders.
func (p *Pie) SetSeries(series Series) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.series = series
	p.render()
}

// SVG returns the chart's drawing surface. The same document is rebuilt in
// place on every render.
func (p *Pie) SVG() *svg.Document {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc
}

// Options returns a copy of the current effective configuration.
func (p *Pie) Options() Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneOptions(p.current)
}

// Close cancels the chart's environment subscriptions. The last rendered
// document stays accessible.
func (p *Pie) Close() {
	if p.cancelEnv != nil {
		p.cancelEnv()
		p.cancelEnv = nil
	}
	p.resolver.Stop()
}

// render rebuilds the document from the current series and effective
// configuration. Callers hold p.mu.
func (p *Pie) render() {
	eff := p.current

	width, height := p.env.Size()
	if eff.Width != nil {
		width = *eff.Width
	}
	if eff.Height != nil {
		height = *eff.Height
	}

	donut := *eff.Donut
	chartClass := eff.ClassNames.Chart
	if donut {
		chartClass = eff.ClassNames.ChartDonut
	}

	if p.doc == nil {
		p.doc = svg.NewDocument(width, height, chartClass)
	} else {
		p.doc.Empty()
		p.doc.Resize(width, height)
		p.doc.Attr("class", chartClass)
	}

	rect := NewRect(width, height, *eff.ChartPadding)
	radius := Radius(rect, donut, *eff.DonutWidth)
	if radius <= 0 {
		logger().Warn("degenerate chart radius, rendering empty chart",
			"width", width, "height", height, "radius", radius)
		return
	}

	labelRadius := LabelRadius(radius, donut, *eff.LabelOffset)
	center := rect.Center()

	total := p.series.Sum()
	if eff.Total != nil {
		total = *eff.Total
	}
	if total == 0 {
		logger().Warn("zero total, all slices collapse to zero span")
	}

	ranges := AngleRanges(p.series.Floats(), total, *eff.StartAngle)
	singleValue := p.series.countNonZero() == 1

	logger().Debug("rendering pie chart",
		"series", len(p.series), "radius", radius, "total", total, "donut", donut)

	for i, value := range p.series {
		if *eff.IgnoreEmptyValues && value.Value == 0 {
			continue
		}

		name := value.ClassName
		if name == "" {
			name = eff.ClassNames.Series + "-" + AlphaNumerate(i)
		}
		group := p.doc.Elem("g", nil, eff.ClassNames.Series+" "+name)

		// Only the slice with no predecessor skips the hairline overlap.
		first := i == 0 || singleValue

		sliceClass := eff.ClassNames.Slice
		attrs := svg.Attributes{
			"d": ArcPath(center, radius, ranges[i].Start, ranges[i].End, first, donut),
		}
		if donut {
			sliceClass = eff.ClassNames.SliceDonut
			attrs["style"] = fmt.Sprintf("stroke-width: %spx", fmtCoord(*eff.DonutWidth))
		}
		slice := group.Elem("path", attrs, sliceClass)
		p.emit(DrawEvent{
			Kind: DrawSlice, Index: i, Value: value, Range: ranges[i],
			Center: center, Radius: radius, Element: slice,
		})

		if !*eff.ShowLabel {
			continue
		}
		text := eff.LabelInterpolation(value.Value, value.Label, i)
		if text == "" {
			continue
		}
		pos := PolarToCartesian(center, labelRadius, ranges[i].Mid())
		label := group.Elem("text", svg.Attributes{
			"x":           fmtCoord(pos.X),
			"y":           fmtCoord(pos.Y),
			"text-anchor": string(DetermineAnchor(center, pos, eff.LabelDirection)),
		}, eff.ClassNames.Label).Text(text)
		p.emit(DrawEvent{
			Kind: DrawLabel, Index: i, Value: value, Range: ranges[i],
			Center: center, Radius: labelRadius, Element: label,
		})
	}
}

func (p *Pie) emit(ev DrawEvent) {
	if p.drawHook != nil {
		p.drawHook(ev)
	}
}
