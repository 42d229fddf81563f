package layout

import (
	"math"

	"louis14/pkg/css"
)

// referenceBoxRect resolves which rectangle a shape-outside value is
// computed against. Box.X/Box.Y are this codebase's border-box origin;
// Box.Width/Box.Height are content dimensions (see types.go), so each case
// below grows or shrinks from there by the edges css.RefBox names.
func referenceBoxRect(box *Box) func(css.RefBox) Rect {
	return func(ref css.RefBox) Rect {
		borderX, borderY := box.X, box.Y
		borderW := box.Border.Left + box.Padding.Left + box.Width + box.Padding.Right + box.Border.Right
		borderH := box.Border.Top + box.Padding.Top + box.Height + box.Padding.Bottom + box.Border.Bottom

		switch ref {
		case css.MarginBox:
			return Rect{
				X:      borderX - box.Margin.Left,
				Y:      borderY - box.Margin.Top,
				Width:  borderW + box.Margin.Left + box.Margin.Right,
				Height: borderH + box.Margin.Top + box.Margin.Bottom,
			}
		case css.BorderBox:
			return Rect{X: borderX, Y: borderY, Width: borderW, Height: borderH}
		case css.PaddingBox:
			return Rect{
				X:      borderX + box.Border.Left,
				Y:      borderY + box.Border.Top,
				Width:  borderW - box.Border.Left - box.Border.Right,
				Height: borderH - box.Border.Top - box.Border.Bottom,
			}
		case css.ContentBox:
			return Rect{
				X:      borderX + box.Border.Left + box.Padding.Left,
				Y:      borderY + box.Border.Top + box.Padding.Top,
				Width:  box.Width,
				Height: box.Height,
			}
		default:
			return Rect{X: borderX, Y: borderY, Width: borderW, Height: borderH}
		}
	}
}

// ReferenceBoxRect is the exported entry point used by the factory and by
// tests: resolves box's reference rectangle for ref.
func ReferenceBoxRect(box *Box, ref css.RefBox) Rect {
	return referenceBoxRect(box)(ref)
}

// resolveLengthPercentage resolves a parsed length/percentage against ref
// (the dimension a percentage is relative to).
func resolveLengthPercentage(lp css.LengthPercentage, ref float64) float64 {
	return lp.Resolve(ref)
}

// resolveShapeRadius resolves a circle()/ellipse() radius keyword or
// explicit value, per WeasyPrint's resolve_shape_radius: closest-side and
// farthest-side measure from the center to the reference box's edges along
// the axis requested; an explicit radius resolves its percentage against
// sqrt(w^2+h^2)/sqrt(2), the diagonal-normalized reference used by the CSS
// Shapes spec for circle()'s single percentage radius.
func resolveShapeRadius(radius css.ShapeRadius, cx, cy float64, rect Rect) float64 {
	switch radius.Keyword {
	case "closest-side":
		return math.Min(math.Min(cx-rect.X, rect.X+rect.Width-cx), math.Min(cy-rect.Y, rect.Y+rect.Height-cy))
	case "farthest-side":
		return math.Max(math.Max(cx-rect.X, rect.X+rect.Width-cx), math.Max(cy-rect.Y, rect.Y+rect.Height-cy))
	default:
		ref := math.Sqrt(rect.Width*rect.Width+rect.Height*rect.Height) / math.Sqrt2
		return resolveLengthPercentage(radius.Length, ref)
	}
}

// resolveEllipseRadius resolves one axis of ellipse()'s radius, per
// WeasyPrint's resolve_ellipse_radius: closest-side/farthest-side measure
// along that single axis only (unlike circle()'s combined-axis keyword).
func resolveEllipseRadius(radius css.ShapeRadius, center, axisMin, axisMax float64) float64 {
	switch radius.Keyword {
	case "closest-side":
		return math.Min(center-axisMin, axisMax-center)
	case "farthest-side":
		return math.Max(center-axisMin, axisMax-center)
	default:
		return resolveLengthPercentage(radius.Length, axisMax-axisMin)
	}
}

// resolvePositionComponent resolves one axis of an `at <position>` clause.
func resolvePositionComponent(pos css.PositionValue, axisMin, axisMax float64) float64 {
	switch pos.Keyword {
	case "left", "top":
		return axisMin
	case "right", "bottom":
		return axisMax
	case "center", "":
		if pos.Keyword == "" {
			return axisMin + resolveLengthPercentage(pos.Length, axisMax-axisMin)
		}
		return (axisMin + axisMax) / 2
	default:
		return (axisMin + axisMax) / 2
	}
}

// resolveCircle turns a parsed circle() into an absolute CircleBoundary.
func resolveCircle(args *css.CircleArgs, rect Rect) *CircleBoundary {
	cx := (rect.X + rect.X + rect.Width) / 2
	cy := (rect.Y + rect.Y + rect.Height) / 2
	if args.HasAt {
		cx = resolvePositionComponent(args.CenterX, rect.X, rect.X+rect.Width)
		cy = resolvePositionComponent(args.CenterY, rect.Y, rect.Y+rect.Height)
	}
	r := resolveShapeRadius(args.Radius, cx, cy, rect)
	return &CircleBoundary{CX: cx, CY: cy, R: r}
}

// resolveEllipse turns a parsed ellipse() into an absolute EllipseBoundary.
func resolveEllipse(args *css.EllipseArgs, rect Rect) *EllipseBoundary {
	cx := (rect.X + rect.X + rect.Width) / 2
	cy := (rect.Y + rect.Y + rect.Height) / 2
	if args.HasAt {
		cx = resolvePositionComponent(args.CenterX, rect.X, rect.X+rect.Width)
		cy = resolvePositionComponent(args.CenterY, rect.Y, rect.Y+rect.Height)
	}
	rx := resolveEllipseRadius(args.RadiusX, cx, rect.X, rect.X+rect.Width)
	ry := resolveEllipseRadius(args.RadiusY, cy, rect.Y, rect.Y+rect.Height)
	return &EllipseBoundary{CX: cx, CY: cy, RX: rx, RY: ry}
}

// resolveInset turns a parsed inset() into an absolute InsetBoundary.
func resolveInset(args *css.InsetArgs, rect Rect) *InsetBoundary {
	top := resolveLengthPercentage(args.Edges.Top, rect.Height)
	right := resolveLengthPercentage(args.Edges.Right, rect.Width)
	bottom := resolveLengthPercentage(args.Edges.Bottom, rect.Height)
	left := resolveLengthPercentage(args.Edges.Left, rect.Width)

	insetRect := Rect{
		X:      rect.X + left,
		Y:      rect.Y + top,
		Width:  math.Max(0, rect.Width-left-right),
		Height: math.Max(0, rect.Height-top-bottom),
	}

	var radii InsetCornerRadii
	if args.HasRound {
		radii = InsetCornerRadii{
			TL: resolveLengthPercentage(args.RadiusTL, insetRect.Width),
			TR: resolveLengthPercentage(args.RadiusTR, insetRect.Width),
			BR: resolveLengthPercentage(args.RadiusBR, insetRect.Width),
			BL: resolveLengthPercentage(args.RadiusBL, insetRect.Width),
		}
		radii = clampInsetRadii(radii, insetRect)
	}

	return &InsetBoundary{Rect: insetRect, Radii: radii}
}

// clampInsetRadii scales corner radii down proportionally if adjacent
// radii would overlap along an edge shorter than their sum, matching the
// CSS border-radius overlap-correction rule this codebase already applies
// to border-radius rendering.
func clampInsetRadii(radii InsetCornerRadii, rect Rect) InsetCornerRadii {
	scale := 1.0
	if w := rect.Width; w > 0 {
		if s := w / (radii.TL + radii.TR); radii.TL+radii.TR > w && s < scale {
			scale = s
		}
		if s := w / (radii.BL + radii.BR); radii.BL+radii.BR > w && s < scale {
			scale = s
		}
	}
	if h := rect.Height; h > 0 {
		if s := h / (radii.TL + radii.BL); radii.TL+radii.BL > h && s < scale {
			scale = s
		}
		if s := h / (radii.TR + radii.BR); radii.TR+radii.BR > h && s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return radii
	}
	return InsetCornerRadii{
		TL: radii.TL * scale,
		TR: radii.TR * scale,
		BR: radii.BR * scale,
		BL: radii.BL * scale,
	}
}

// resolvePolygon turns a parsed polygon() into an absolute PolygonBoundary.
func resolvePolygon(args *css.PolygonArgs, rect Rect) *PolygonBoundary {
	points := make([]Point, len(args.Points))
	for i, p := range args.Points {
		points[i] = Point{
			X: rect.X + resolveLengthPercentage(p.X, rect.Width),
			Y: rect.Y + resolveLengthPercentage(p.Y, rect.Height),
		}
	}
	return &PolygonBoundary{Points: points, FillRule: args.FillRule}
}
