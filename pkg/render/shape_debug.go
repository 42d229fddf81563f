package render

import (
	"image/color"

	"louis14/pkg/layout"
)

// SetDebugShapes toggles drawing float shape-outside boundaries as outlines
// on top of normal paint. Off by default; intended for visually inspecting
// how a shape-outside value resolved.
func (r *Renderer) SetDebugShapes(enabled bool) {
	r.debugShapes = enabled
}

// drawShapeBoundaryOutline traces boundary with a thin stroke, sampling
// BoundsAtY one scanline at a time across its vertical extent. This mirrors
// the box-outline drawing already done in render.go
// (DrawRoundedRectangle at a fixed radius) but for an arbitrary boundary
// shape, which has no single gg primitive.
func (r *Renderer) drawShapeBoundaryOutline(boundary layout.ShapeBoundary, strokeColor color.Color) {
	if boundary == nil {
		return
	}
	top, bottom := boundary.VerticalExtent()
	if bottom <= top {
		return
	}

	r.context.Push()
	defer r.context.Pop()
	r.context.SetColor(strokeColor)
	r.context.SetLineWidth(1)

	const step = 2.0
	started := false
	for y := top; y < bottom; y += step {
		left, right, ok := boundary.BoundsAtY(y)
		if !ok {
			started = false
			continue
		}
		if !started {
			r.context.MoveTo(left, y)
			started = true
		} else {
			r.context.LineTo(left, y)
		}
		r.context.LineTo(right, y)
	}
	r.context.Stroke()
}
