package radial

import (
	"strconv"
	"strings"
)

// hairlineOffset is subtracted from the start angle of every slice except
// the first. Adjacent antialiased slices otherwise show a thin transparent
// seam; overlapping each slice 0.2 degrees under its predecessor hides it.
const hairlineOffset = 0.2

// fmtCoord formats a coordinate with the shortest exact representation.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ArcPath builds the SVG path data for one slice covering the angular range
// from startAngle to endAngle at the given radius around center.
//
// The path moves to the range's end point and arcs back to its start point,
// with the large-arc flag set for spans over 180 degrees and the sweep flag
// fixed at 0. The end-to-start ordering is what gives the fixed sweep flag
// its meaning; reversing it would select the complementary arc. Pie slices
// additionally draw a line to the center and close, forming a wedge; donut
// slices stay open and are stroked.
//
// first suppresses the hairline overlap for the slice that has no
// predecessor to tuck under.
func ArcPath(center Point, radius, startAngle, endAngle float64, first, donut bool) string {
	overlapStart := startAngle
	if !first {
		overlapStart -= hairlineOffset
	}

	start := PolarToCartesian(center, radius, overlapStart)
	end := PolarToCartesian(center, radius, endAngle)

	largeArc := "0"
	if endAngle-startAngle > 180 {
		largeArc = "1"
	}

	var b strings.Builder
	b.WriteString("M")
	b.WriteString(fmtCoord(end.X))
	b.WriteString(",")
	b.WriteString(fmtCoord(end.Y))
	b.WriteString(" A")
	b.WriteString(fmtCoord(radius))
	b.WriteString(",")
	b.WriteString(fmtCoord(radius))
	b.WriteString(" 0 ")
	b.WriteString(largeArc)
	b.WriteString(",0 ")
	b.WriteString(fmtCoord(start.X))
	b.WriteString(",")
	b.WriteString(fmtCoord(start.Y))
	if !donut {
		b.WriteString(" L")
		b.WriteString(fmtCoord(center.X))
		b.WriteString(",")
		b.WriteString(fmtCoord(center.Y))
		b.WriteString(" Z")
	}
	return b.String()
}
