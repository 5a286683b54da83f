// Package raster draws radial charts onto a gogpu/gg canvas for bitmap
// output.
//
// The SVG output of the root package carries class names and leaves visual
// styling to a stylesheet; a bitmap has no stylesheet, so the renderer here
// owns a color palette, an optional background, and an optional font face
// for labels. Geometry is shared with the root package: the same angle
// ranges, radii and label anchors drive both outputs.
package raster
