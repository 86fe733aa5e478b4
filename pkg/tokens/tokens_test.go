package tokens

import "testing"

func TestLookup_AllSizesPopulated(t *testing.T) {
	for _, s := range AllSizes {
		row := Lookup(s)
		if row.Height <= 0 {
			t.Errorf("%s: height must be strictly positive, got %v", s, row.Height)
		}
		half := row.Height / 2
		radii := map[string]float64{
			"inner":   row.InnerCornerRadius,
			"round":   row.OuterRadiusRound,
			"square":  row.OuterRadiusSquare,
			"pressed": row.PressedRadius,
		}
		for name, r := range radii {
			if r < 0 || r > half {
				t.Errorf("%s: %s radius %v outside [0, height/2=%v]", s, name, r, half)
			}
		}
		widths := map[string]float64{
			"trailingSegment":  row.TrailingSegmentWidth,
			"leadingIconBlock": row.LeadingIconBlockWidth,
			"leftOuter":        row.LeftOuterPadding,
			"gapIconToLabel":   row.GapIconToLabel,
			"labelRight":       row.LabelRightPaddingBeforeDivider,
			"trailingLeft":     row.TrailingLeftInnerPadding,
			"rightOuter":       row.RightOuterPadding,
			"sideSelected":     row.SidePaddingSelected,
			"iconSize":         row.IconSize,
		}
		for name, w := range widths {
			if w < 0 {
				t.Errorf("%s: %s width %v must be >= 0", s, name, w)
			}
		}
	}
}

func TestLookup_HeightsAscend(t *testing.T) {
	prev := 0.0
	for _, s := range AllSizes {
		h := Lookup(s).Height
		if h <= prev {
			t.Errorf("%s: height %v does not grow past previous %v", s, h, prev)
		}
		prev = h
	}
}

func TestLookup_OutOfRangeFallsBackToSM(t *testing.T) {
	if got := Lookup(Size(99)); got != Lookup(SizeSM) {
		t.Errorf("out-of-range lookup should return the sm row, got %+v", got)
	}
	if got := Lookup(Size(-1)); got != Lookup(SizeSM) {
		t.Errorf("negative lookup should return the sm row, got %+v", got)
	}
}

func TestParseSize_RoundTrips(t *testing.T) {
	for _, s := range AllSizes {
		if got := ParseSize(s.String()); got != s {
			t.Errorf("ParseSize(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if got := ParseSize("jumbo"); got != SizeSM {
		t.Errorf("unknown size name should fall back to sm, got %v", got)
	}
}

func TestLookup_RoundShapeIsCapsule(t *testing.T) {
	for _, s := range AllSizes {
		row := Lookup(s)
		if row.OuterRadiusRound != row.Height/2 {
			t.Errorf("%s: round outer radius %v, want height/2 = %v", s, row.OuterRadiusRound, row.Height/2)
		}
	}
}
