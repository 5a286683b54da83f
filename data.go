package radial

// Value is one series entry. Label, when set, replaces the numeric value as
// the input to label interpolation. ClassName, when set, replaces the
// generated per-series class name.
type Value struct {
	Value     float64
	Label     string
	ClassName string
}

// Series is an ordered sequence of values. Order is significant: it sets the
// drawing order and the index used for generated series class names.
type Series []Value

// Values builds a Series from plain numbers.
func Values(vs ...float64) Series {
	s := make(Series, len(vs))
	for i, v := range vs {
		s[i] = Value{Value: v}
	}
	return s
}

// Floats returns the raw numeric values in order.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Value
	}
	return out
}

// Sum returns the sum of all values.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v.Value
	}
	return total
}

// countNonZero returns the number of entries with a non-zero value.
func (s Series) countNonZero() int {
	n := 0
	for _, v := range s {
		if v.Value != 0 {
			n++
		}
	}
	return n
}
