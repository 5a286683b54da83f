// Package svg is a small retained-mode SVG element tree used as the drawing
// surface for radial charts.
//
// It wraps beevik/etree with the handful of operations the chart render
// path needs: create a child element with attributes and a class, mutate
// attributes and text on an existing element, discard all children so a
// surface can be rebuilt in place, and serialize the document.
package svg
