package radial

// Anchor is the horizontal text-alignment reference used when placing a
// label at its computed position. The tokens match the SVG text-anchor
// attribute values.
type Anchor string

// Anchor tokens.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// LabelDirection selects how label text is aligned relative to the chart.
type LabelDirection string

// Label directions. LabelExplode pushes text away from the chart,
// LabelImplode pulls it toward the center, LabelNeutral centers it over the
// anchor point regardless of side.
const (
	LabelNeutral LabelDirection = "neutral"
	LabelExplode LabelDirection = "explode"
	LabelImplode LabelDirection = "implode"
)

// DetermineAnchor picks the text anchor for a label at labelPoint on a chart
// centered at center. A point exactly on the center's vertical axis counts
// as left of center.
func DetermineAnchor(center, labelPoint Point, direction LabelDirection) Anchor {
	right := labelPoint.X > center.X

	switch direction {
	case LabelExplode:
		if right {
			return AnchorStart
		}
		return AnchorEnd
	case LabelImplode:
		if right {
			return AnchorEnd
		}
		return AnchorStart
	default:
		return AnchorMiddle
	}
}
