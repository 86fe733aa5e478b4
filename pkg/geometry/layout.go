package geometry

import (
	"math"
	"time"

	"github.com/uiforge/splitbutton/pkg/tokens"
)

// baseSegmentGap separates the two segments at rest, in dp.
const baseSegmentGap = 2.0

// ChevronTurnDuration is the fixed duration of the chevron's half-turn.
const ChevronTurnDuration = 350 * time.Millisecond

// SegmentGap returns the inter-segment gap for the emphasis. The elevated
// emphasis doubles the gap so the pair reads as two floating surfaces.
func SegmentGap(e Emphasis) float64 {
	if e == EmphasisElevated {
		return 2 * baseSegmentGap
	}
	return baseSegmentGap
}

// ContentVariant is the leading segment's content arrangement.
type ContentVariant int

const (
	// ContentIconAndLabel lays out the icon block, a gap, then the label.
	ContentIconAndLabel ContentVariant = iota
	// ContentIconOnly lays out just the icon block.
	ContentIconOnly
	// ContentLabelOnly lays out just the label slot. A missing label
	// still renders the slot with empty text.
	ContentLabelOnly
)

// LeadingLayout is the resolved leading-segment content box.
type LeadingLayout struct {
	PadStart       float64
	PadEnd         float64
	IconBlockWidth float64
	IconToLabelGap float64
	Variant        ContentVariant
}

// ResolveLeading computes the leading segment's content layout from which
// of {icon, non-empty label} are supplied.
func ResolveLeading(row tokens.Row, hasIcon bool, label string) LeadingLayout {
	l := LeadingLayout{
		PadStart: row.LeftOuterPadding,
		PadEnd:   row.LabelRightPaddingBeforeDivider,
	}
	switch {
	case hasIcon && label != "":
		l.Variant = ContentIconAndLabel
		l.IconBlockWidth = row.LeadingIconBlockWidth
		l.IconToLabelGap = row.GapIconToLabel
	case hasIcon:
		l.Variant = ContentIconOnly
		l.IconBlockWidth = row.LeadingIconBlockWidth
	default:
		l.Variant = ContentLabelOnly
	}
	return l
}

// Rect is an axis-aligned box in the host's coordinate space.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect carries no area, i.e. the segment has
// not been laid out yet.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// menuAnchorGap separates the menu from the trailing segment, in dp.
const menuAnchorGap = 4.0

// AnchorPoint resolves where the menu attaches. Y sits below the trailing
// segment's bottom edge (or above its top edge) by a fixed gap; X is the
// segment's trailing-direction edge. A zero rect means the segment is not
// measurable yet; callers should fall back to full-fill placement.
func AnchorPoint(trailing Rect, pos MenuPosition, dir Direction) (x, y float64, ok bool) {
	if trailing.Empty() {
		return 0, 0, false
	}
	if pos == MenuAbove {
		y = trailing.Y - menuAnchorGap
	} else {
		y = trailing.Y + trailing.H + menuAnchorGap
	}
	if dir == RTL {
		x = trailing.X
	} else {
		x = trailing.X + trailing.W
	}
	return x, y, true
}

// MenuMinWidth returns the menu's minimum width: the trailing segment's
// measured width when available, else the token's chevron block width.
func MenuMinWidth(measured float64, row tokens.Row) float64 {
	if measured > 0 {
		return measured
	}
	return row.TrailingSegmentWidth
}

// ChevronAngle converts a rotation in turns to radians. Exporters use it
// to draw the glyph mid-turn.
func ChevronAngle(turns float64) float64 {
	return turns * 2 * math.Pi
}
