package layout

import (
	"testing"

	"louis14/pkg/css"
)

func TestExclusionSpace_CircleBoundaryNarrowsLine(t *testing.T) {
	es := NewExclusionSpace()

	// A left float with a plain rectangular margin box 100px wide, but a
	// circular shape-outside boundary inscribed in it (radius 50, centered).
	excl := Exclusion{
		Rect:     Rect{X: 0, Y: 0, Width: 100, Height: 100},
		Side:     css.FloatLeft,
		Boundary: &CircleBoundary{CX: 50, CY: 50, R: 50},
	}
	es2 := es.Add(excl)

	// At the vertical midpoint of a 10px-tall line at y=45 (sampled at
	// y=50, the circle's equator): the circle spans its full diameter, so
	// the offset should equal the plain rectangle's right edge (100).
	leftOff, _ := es2.AvailableInlineSize(45, 10)
	if leftOff != 100 {
		t.Errorf("leftOffset at equator = %v, want 100", leftOff)
	}

	// A line near the top of the float, sampled near the circle's topmost
	// point, should see a much narrower offset than the bounding rectangle
	// (100), since the circle pinches in sharply there.
	leftOff, _ = es2.AvailableInlineSize(2, 4)
	if leftOff >= 100 {
		t.Errorf("leftOffset near circle's top = %v, want < 100 (shape should narrow the exclusion)", leftOff)
	}
	if leftOff <= 0 {
		t.Errorf("leftOffset near circle's top = %v, want > 0", leftOff)
	}
}

func TestExclusionSpace_BoundaryLessExclusionUnaffected(t *testing.T) {
	es := NewExclusionSpace()

	// A plain rectangular float (no Boundary set) behaves exactly as
	// before shape-outside support was added.
	excl := Exclusion{
		Rect: Rect{X: 0, Y: 0, Width: 100, Height: 50},
		Side: css.FloatLeft,
	}
	es2 := es.Add(excl)

	leftOff, rightOff := es2.AvailableInlineSize(25, 10)
	if leftOff != 100 || rightOff != 0 {
		t.Errorf("AvailableInlineSize = (%v, %v), want (100, 0)", leftOff, rightOff)
	}

	// Immutability still holds with the Boundary field present.
	if !es.IsEmpty() {
		t.Error("original ExclusionSpace should remain unchanged")
	}
}

func TestExclusionSpace_BoundaryOutsideVerticalExtentContributesNothing(t *testing.T) {
	es := NewExclusionSpace()

	// A circle boundary much shorter than its exclusion rectangle's
	// nominal height (e.g. shape-margin wasn't applied, a small circle in
	// a tall margin box): queries outside the circle's own vertical
	// extent, but still inside the rectangle's, should see no exclusion.
	excl := Exclusion{
		Rect:     Rect{X: 0, Y: 0, Width: 100, Height: 200},
		Side:     css.FloatLeft,
		Boundary: &CircleBoundary{CX: 50, CY: 50, R: 10},
	}
	es2 := es.Add(excl)

	leftOff, _ := es2.AvailableInlineSize(150, 10)
	if leftOff != 0 {
		t.Errorf("leftOffset far below the circle = %v, want 0", leftOff)
	}
}
