// Package radial renders proportional circular charts (pie, donut, gauge)
// as scalable vector drawings.
//
// # Overview
//
// radial turns a series of numeric values into angular ranges, SVG arc
// paths, and label positions, and keeps the resulting drawing synchronized
// with both the input data and the display environment. It is organized
// around three pieces: a pure geometry engine (angle ranges, polar
// coordinates, arc path construction), a responsive options resolver that
// merges base options, caller options, and media-query-conditional override
// sets, and a chart orchestrator that rebuilds the SVG element tree on every
// data or environment change.
//
// # Quick Start
//
//	import "github.com/gogpu/radial"
//
//	pie := radial.NewPie(radial.Values(10, 2, 4, 3), radial.Options{})
//	defer pie.Close()
//
//	out, _ := pie.SVG().String()
//	fmt.Println(out)
//
// # Charts
//
// A pie chart draws one filled wedge per series value. Setting Donut draws
// stroked ring segments instead. A gauge is a donut with a constrained
// angular span, expressed entirely through options:
//
//	// Half gauge: value 3 out of 8, drawn across the top half.
//	radial.NewPie(radial.Values(3, 5), radial.Options{
//	    Donut:      radial.Ptr(true),
//	    StartAngle: radial.Ptr(270.0),
//	    Total:      radial.Ptr(16.0),
//	})
//
// # Responsive Options
//
// Charts resolve their options against an Environment. Responsive entries
// pair a media query with a partial Options value; entries whose query
// matches the current environment are merged over the base options, later
// entries winning. The chart re-renders whenever the environment changes:
//
//	vp := radial.NewViewport(1024, 768)
//	pie := radial.NewPie(series, radial.Options{},
//	    radial.WithEnvironment(vp),
//	    radial.WithResponsive(radial.Responsive{
//	        Query:   "(max-width: 600px)",
//	        Options: radial.Options{ShowLabel: radial.Ptr(false)},
//	    }),
//	)
//	vp.SetSize(480, 320) // chart re-renders without labels
//
// # Output
//
// The chart renders into an owned svg.Document built on beevik/etree. Every
// render fully discards and rebuilds the document's children; there is no
// incremental diffing. The raster subpackage draws the same chart model onto
// a gogpu/gg canvas for PNG output.
//
// # Coordinate System
//
// Angles are in degrees, 0 is north (12 o'clock), increasing clockwise.
// Conversion to radians happens only inside PolarToCartesian. The drawing
// surface uses standard screen coordinates with the origin at the top-left
// and Y increasing down.
package radial

// Version is the current version of the library.
const Version = "0.3.0"
