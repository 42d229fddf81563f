package layout

import (
	"log"
	"math"

	"louis14/pkg/css"
	"louis14/pkg/images"
)

// NewShapeBoundary builds the ShapeBoundary a box's shape-outside/
// shape-margin pair resolves to, or nil if the box floats as a plain
// rectangle (shape-outside: none, the initial value).
//
// Dispatch mirrors WeasyPrint's create_shape_boundary: resolve the
// reference box, build a base boundary from the shape-outside value (or
// the reference box itself for a bare <shape-box> keyword), then wrap it
// in a MarginedBoundary if shape-margin is non-zero.
func NewShapeBoundary(box *Box, fetcher images.ImageFetcher) ShapeBoundary {
	if box.Style == nil {
		return nil
	}

	value := box.Style.GetShapeOutside()
	base := newBaseBoundary(box, value, fetcher)
	if base == nil {
		return nil
	}

	if margin, ok := box.Style.GetShapeMargin(); ok {
		rect := ReferenceBoxRect(box, css.MarginBox)
		m := resolveLengthPercentage(margin, rect.Width)
		if m > 0 {
			return &MarginedBoundary{Inner: base, Margin: m}
		}
	}

	return base
}

// referenceBoxDiagonal returns sqrt(w^2+h^2)/sqrt(2) for rect, the same
// quantity resolveShapeRadius's default case computes inline for an
// explicit circle() radius. A shape-margin percentage does not use it: it
// resolves against the margin box's width (see NewShapeBoundary).
func referenceBoxDiagonal(rect Rect) float64 {
	return math.Sqrt(rect.Width*rect.Width+rect.Height*rect.Height) / math.Sqrt2
}

// newBaseBoundary builds the unmargined boundary for value, dispatching on
// its kind.
func newBaseBoundary(box *Box, value css.ShapeOutsideValue, fetcher images.ImageFetcher) ShapeBoundary {
	switch value.Kind {
	case css.ShapeOutsideNone:
		return nil

	case css.ShapeOutsideBox:
		return boxKeywordBoundary(box, value.Box)

	case css.ShapeOutsideShape:
		rect := ReferenceBoxRect(box, value.Box)
		return resolveShapeFunction(value.Shape, rect)

	case css.ShapeOutsideImage:
		return imageBoundary(box, value.ImageURI, fetcher)

	default:
		return nil
	}
}

// boxKeywordBoundary builds the boundary for a bare <shape-box> keyword
// value. When the reference box has a rounded border-radius, the boundary
// follows the rounded outline (the Factory's "rounded-box special case",
// SPEC_FULL.md 4.4 step 2) rather than a sharp rectangle.
func boxKeywordBoundary(box *Box, ref css.RefBox) ShapeBoundary {
	rect := ReferenceBoxRect(box, ref)
	tl, tr, br, bl := box.Style.GetBorderRadii()
	if tl == 0 && tr == 0 && br == 0 && bl == 0 {
		return &BoxBoundary{Rect: rect}
	}
	radii := clampInsetRadii(InsetCornerRadii{TL: tl, TR: tr, BR: br, BL: bl}, rect)
	return &InsetBoundary{Rect: rect, Radii: radii}
}

// resolveShapeFunction dispatches a parsed basic-shape function onto its
// resolver.
func resolveShapeFunction(fn *css.ShapeFunction, rect Rect) ShapeBoundary {
	switch fn.Kind {
	case css.ShapeCircle:
		return resolveCircle(fn.Circle, rect)
	case css.ShapeEllipse:
		return resolveEllipse(fn.Ellipse, rect)
	case css.ShapeInset:
		return resolveInset(fn.Inset, rect)
	case css.ShapePolygon:
		return resolvePolygon(fn.Polygon, rect)
	default:
		return nil
	}
}

// imageBoundary builds an ImageBoundary by fetching and decoding the
// referenced image, stretched across the margin box (images always use
// the margin box as their reference rectangle, per CSS Shapes Level 1).
// A fetch or decode failure logs and falls back to a plain BoxBoundary
// over the same rectangle, so a broken shape-outside image degrades to
// ordinary rectangular float avoidance instead of crashing layout.
func imageBoundary(box *Box, uri string, fetcher images.ImageFetcher) ShapeBoundary {
	rect := ReferenceBoxRect(box, css.MarginBox)

	img, err := images.LoadImageWithFetcher(uri, fetcher)
	if err != nil {
		log.Printf("shape-outside: failed to load image %q: %v (falling back to margin box)", uri, err)
		return &BoxBoundary{Rect: rect}
	}

	return NewImageBoundary(img, rect)
}
