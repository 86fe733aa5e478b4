package geometry

import "github.com/uiforge/splitbutton/pkg/tokens"

// TrailingGeometry is the resolved trailing-segment box: its width, its
// start/end content paddings, corner radii, and whether the circle morph
// is active.
type TrailingGeometry struct {
	Width       float64
	PadStart    float64
	PadEnd      float64
	Radii       CornerRadii
	CircleMorph bool
}

// ResolveTrailing computes the trailing segment's geometry.
//
// Round md/lg/xl segments morph into a perfect circle while pressed or
// while the menu is open: width equals height, every radius is height/2,
// and both content paddings collapse to zero. Round xs/sm segments become
// a full capsule when the menu opens but keep the selected width formula.
// Everything else follows the general width/padding formulas, with a
// press (or an open menu) collapsing the radii to the pressed radius.
func ResolveTrailing(row tokens.Row, size tokens.Size, shape Shape, st State) TrailingGeometry {
	active := st.TrailingPressed || st.MenuOpen

	if shape == ShapeRound && size >= tokens.SizeMD && active {
		return TrailingGeometry{
			Width:       row.Height,
			Radii:       uniform(row.Height / 2),
			CircleMorph: true,
		}
	}

	g := TrailingGeometry{}
	if st.MenuOpen {
		g.Width = 2*row.SidePaddingSelected + row.TrailingSegmentWidth
		g.PadStart = row.SidePaddingSelected
		g.PadEnd = row.SidePaddingSelected
	} else {
		g.Width = row.TrailingLeftInnerPadding + row.TrailingSegmentWidth + row.RightOuterPadding
		g.PadStart = row.TrailingLeftInnerPadding
		g.PadEnd = row.RightOuterPadding
	}

	switch {
	case shape == ShapeRound && size <= tokens.SizeSM && st.MenuOpen:
		g.Radii = uniform(row.Height / 2)
	case active:
		g.Radii = uniform(row.PressedRadius)
	default:
		outer := outerRadius(row, shape)
		g.Radii = CornerRadii{
			TopStart:    row.InnerCornerRadius,
			BottomStart: row.InnerCornerRadius,
			TopEnd:      outer,
			BottomEnd:   outer,
		}
	}
	return g
}

// ChevronOffset returns the chevron's horizontal translation. Only the
// optical alignment with the menu closed (and no circle morph) nudges the
// glyph; every other combination centers it geometrically.
func ChevronOffset(row tokens.Row, align TrailingAlignment, st State, circleMorph bool) float64 {
	if align == AlignGeometricCenter || st.MenuOpen || circleMorph {
		return 0
	}
	return row.MenuIconOffsetUnselected
}

// ChevronTurns reports the chevron's rotation in turns: a half turn while
// the menu is open, none while closed. Graphical hosts animate between
// the two over ChevronTurnDuration.
func ChevronTurns(menuOpen bool) float64 {
	if menuOpen {
		return 0.5
	}
	return 0
}
