package radial

import "math"

// Rect is the layout rectangle a chart draws into, in surface coordinates
// with the origin at the top-left.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect returns the layout rectangle for a surface of the given size with
// the given padding applied on all four sides. A padding larger than half
// the surface collapses the rectangle to an empty one at the surface center.
func NewRect(width, height, padding float64) Rect {
	r := Rect{
		X1: padding,
		Y1: padding,
		X2: width - padding,
		Y2: height - padding,
	}
	if r.X2 < r.X1 {
		r.X1 = width / 2
		r.X2 = width / 2
	}
	if r.Y2 < r.Y1 {
		r.Y1 = height / 2
		r.Y2 = height / 2
	}
	return r
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X1 + r.Width()/2, Y: r.Y1 + r.Height()/2}
}

// Radius computes the chart radius for a layout rectangle. The base radius
// is half the smaller rectangle dimension so the circle always fits. For
// donut charts half the stroke width is subtracted, keeping the outer edge
// of the stroked ring inside the rectangle. The result can be zero or
// negative for degenerate rectangles; callers must treat that as "no
// drawable area".
func Radius(rect Rect, donut bool, donutWidth float64) float64 {
	r := math.Min(rect.Width()/2, rect.Height()/2)
	if donut {
		r -= donutWidth / 2
	}
	return r
}

// LabelRadius computes the radius at which labels are anchored. Donut labels
// sit on the ring itself, pie labels halfway into the wedge. labelOffset
// shifts the result, positive values moving labels away from the center.
func LabelRadius(radius float64, donut bool, labelOffset float64) float64 {
	lr := radius
	if !donut {
		lr = radius / 2
	}
	return lr + labelOffset
}

// PolarToCartesian returns the point at the given radius and angle around
// center. Angles are in degrees with 0 at north (12 o'clock), increasing
// clockwise.
func PolarToCartesian(center Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}

// AngleRange is the angular span of one series value, in degrees.
type AngleRange struct {
	Start, End float64
}

// Span returns the angular extent of the range.
func (a AngleRange) Span() float64 { return a.End - a.Start }

// Mid returns the bisecting angle of the range, where labels are anchored.
func (a AngleRange) Mid() float64 { return a.Start + a.Span()/2 }

// fullCircleSlack is subtracted from a span of exactly 360 degrees. A closed
// 360-degree arc has coincident endpoints and no unique arc path, so a full
// circle is drawn as 359.99 degrees instead, visually indistinguishable from
// closed.
const fullCircleSlack = 0.01

// AngleRanges computes the contiguous angular ranges for a sequence of
// series values. Each span is the value's share of total scaled to 360
// degrees; the first range starts at startAngle and each subsequent range
// starts where the previous one ended. A range spanning exactly 360 degrees
// is shortened by 0.01 degrees (see fullCircleSlack); the following range,
// if any, starts at the shortened end.
//
// A zero total would divide by zero; it yields zero-span ranges for every
// value instead, all collapsed at startAngle. Negative values are accepted
// and contribute negative spans.
func AngleRanges(values []float64, total, startAngle float64) []AngleRange {
	ranges := make([]AngleRange, len(values))
	start := startAngle
	for i, v := range values {
		end := start
		if total != 0 {
			end = start + v/total*360
		}
		if end-start == 360 {
			end -= fullCircleSlack
		}
		ranges[i] = AngleRange{Start: start, End: end}
		start = end
	}
	return ranges
}
