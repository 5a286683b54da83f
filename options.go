package radial

import (
	"reflect"
	"strconv"

	"dario.cat/mergo"
	deepcopy "github.com/tiendc/go-deepcopy"
)

// Ptr returns a pointer to v. Options fields are pointers so that partial
// option sets can distinguish "unset" from a zero value; Ptr keeps literals
// readable at call sites.
func Ptr[T any](v T) *T { return &v }

// ClassNames maps the semantic roles of emitted elements to class-name
// tokens. Empty fields are treated as unset and filled from an earlier layer
// during option resolution.
type ClassNames struct {
	Chart      string
	ChartDonut string
	Series     string
	Slice      string
	SliceDonut string
	Label      string
}

// LabelInterpolationFunc turns a series entry into its display text. label
// is the entry's declared label, empty if none was given. Returning an empty
// string suppresses the label for that slice.
type LabelInterpolationFunc func(value float64, label string, index int) string

// defaultLabelInterpolation shows the declared label when present, otherwise
// the raw value.
func defaultLabelInterpolation(value float64, label string, _ int) string {
	if label != "" {
		return label
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Options configures a chart. All scalar fields are optional; nil fields are
// filled from lower-priority layers during resolution, ultimately from
// DefaultOptions. Width, Height and Total stay nil when no layer sets them:
// nil Width/Height means "use the environment's size", nil Total means "use
// the sum of the series values".
type Options struct {
	// Width and Height are sizing hints for the drawing surface.
	Width  *float64
	Height *float64

	// ChartPadding is the gap between the surface edge and the layout
	// rectangle.
	ChartPadding *float64

	// ClassNames are the class tokens assigned to emitted elements.
	ClassNames ClassNames

	// StartAngle is where the first slice begins, in degrees, 0 at north,
	// clockwise.
	StartAngle *float64

	// Total fixes the value sum that corresponds to a full circle. When
	// nil the series sum is used. Setting Total larger than the series sum
	// leaves part of the circle empty, which is how gauges are built.
	Total *float64

	// Donut draws stroked ring segments instead of filled wedges.
	Donut *bool

	// DonutWidth is the ring stroke thickness, only meaningful with Donut.
	DonutWidth *float64

	// ShowLabel emits one text element per slice.
	ShowLabel *bool

	// LabelOffset shifts the label radius, positive values moving labels
	// away from the center.
	LabelOffset *float64

	// LabelInterpolation produces the label text. Defaults to showing the
	// declared label, or the raw value when there is none.
	LabelInterpolation LabelInterpolationFunc

	// LabelOverflow is part of the recognized option set but is not
	// consulted by the render path.
	LabelOverflow *bool

	// LabelDirection selects label text alignment relative to the chart.
	LabelDirection LabelDirection

	// IgnoreEmptyValues skips series with value 0 entirely, emitting no
	// group for them.
	IgnoreEmptyValues *bool
}

// DefaultOptions returns the base configuration layer. Every field except
// the genuinely nullable Width, Height and Total is populated, so any chain
// of merges on top of it yields a structurally complete configuration.
func DefaultOptions() Options {
	return Options{
		ChartPadding: Ptr(5.0),
		ClassNames: ClassNames{
			Chart:      "radial-chart-pie",
			ChartDonut: "radial-chart-donut",
			Series:     "radial-series",
			Slice:      "radial-slice-pie",
			SliceDonut: "radial-slice-donut",
			Label:      "radial-label",
		},
		StartAngle:         Ptr(0.0),
		Donut:              Ptr(false),
		DonutWidth:         Ptr(60.0),
		ShowLabel:          Ptr(true),
		LabelOffset:        Ptr(0.0),
		LabelInterpolation: defaultLabelInterpolation,
		LabelOverflow:      Ptr(false),
		LabelDirection:     LabelNeutral,
		IgnoreEmptyValues:  Ptr(false),
	}
}

// optionsTransformer teaches mergo "set wins" semantics for pointer and
// function fields: a non-nil source field replaces the destination outright,
// even when it points at a zero value. Without this mergo would merge the
// pointed-to values and skip e.g. an explicit override to 0.
type optionsTransformer struct{}

func (optionsTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	switch t.Kind() {
	case reflect.Pointer, reflect.Func:
		return func(dst, src reflect.Value) error {
			if !src.IsNil() && dst.CanSet() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

// mergeOptions merges src over dst. Set fields in src win; unset (nil or
// empty-string) fields leave dst untouched. ClassNames merge key by key.
func mergeOptions(dst *Options, src Options) error {
	return mergo.Merge(dst, src, mergo.WithOverride, mergo.WithTransformers(optionsTransformer{}))
}

// cloneOptions returns a deep copy of o so that handing options to callers
// never aliases resolver-internal state.
func cloneOptions(o Options) Options {
	var out Options
	if err := deepcopy.Copy(&out, &o); err != nil {
		// Copying a plain options struct cannot realistically fail;
		// fall back to the shallow copy.
		return o
	}
	if out.LabelInterpolation == nil {
		out.LabelInterpolation = o.LabelInterpolation
	}
	return out
}

// ExpandOptions merges opts over DefaultOptions and returns the complete
// result. This is the resolution a chart performs when it has no responsive
// entries.
func ExpandOptions(opts Options) Options {
	eff := DefaultOptions()
	if err := mergeOptions(&eff, opts); err != nil {
		logger().Warn("options merge failed", "err", err)
	}
	return cloneOptions(eff)
}
