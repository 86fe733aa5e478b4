// Package tokens carries the Material 3 Expressive split button design
// constants. Values are ported verbatim from the published size
// specification and must not be "corrected" locally: downstream visual
// regression baselines depend on them bit-for-bit.
package tokens

// Size selects a row in the token table. The scale is ordinal: each step
// up grows the control along every metric.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

// AllSizes lists every size category in ascending order.
var AllSizes = []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL}

func (s Size) String() string {
	switch s {
	case SizeXS:
		return "xs"
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	case SizeXL:
		return "xl"
	default:
		return "sm"
	}
}

// ParseSize maps a size name ("xs".."xl") to its category.
// Unknown names fall back to SizeSM, the control's default.
func ParseSize(name string) Size {
	switch name {
	case "xs":
		return SizeXS
	case "sm":
		return SizeSM
	case "md":
		return SizeMD
	case "lg":
		return SizeLG
	case "xl":
		return SizeXL
	default:
		return SizeSM
	}
}

// Row is the fixed record of layout constants for one size category.
// All values are density-independent pixels.
type Row struct {
	// Height is the container height of both segments.
	Height float64

	// TrailingSegmentWidth is the chevron block width inside the
	// trailing segment, excluding its paddings.
	TrailingSegmentWidth float64

	// InnerCornerRadius rounds the corners facing the gap between the
	// two segments.
	InnerCornerRadius float64

	// InnerPadding is the vertical content inset of each segment.
	InnerPadding float64

	// MenuIconOffsetUnselected nudges the chevron toward the divider
	// when the trailing alignment is optical and the menu is closed.
	MenuIconOffsetUnselected float64

	// IconSize is the edge length of the leading icon glyph.
	IconSize float64

	// OuterRadiusRound is the resting outer corner radius for the
	// round shape (a full capsule: height/2).
	OuterRadiusRound float64

	// OuterRadiusSquare is the resting outer corner radius for the
	// square shape.
	OuterRadiusSquare float64

	// PressedRadius is the uniform radius a segment collapses to while
	// pressed (or, for the trailing segment, while the menu is open).
	PressedRadius float64

	// LeadingIconBlockWidth is the fixed-width block the leading icon
	// centers in.
	LeadingIconBlockWidth float64

	// LeftOuterPadding insets the leading segment's start edge.
	LeftOuterPadding float64

	// GapIconToLabel separates the icon block from the label.
	GapIconToLabel float64

	// LabelRightPaddingBeforeDivider insets the label from the
	// inter-segment divider.
	LabelRightPaddingBeforeDivider float64

	// TrailingLeftInnerPadding insets the chevron block from the
	// divider while the menu is closed.
	TrailingLeftInnerPadding float64

	// RightOuterPadding insets the chevron block from the end edge
	// while the menu is closed.
	RightOuterPadding float64

	// SidePaddingSelected replaces both chevron insets while the menu
	// is open.
	SidePaddingSelected float64
}

// The table below is the Material 3 Expressive split button size spec.
// Column order matches the Row field order.
var table = [...]Row{
	SizeXS: {
		Height:                         32,
		TrailingSegmentWidth:           22,
		InnerCornerRadius:              4,
		InnerPadding:                   4,
		MenuIconOffsetUnselected:       -1,
		IconSize:                       20,
		OuterRadiusRound:               16,
		OuterRadiusSquare:              12,
		PressedRadius:                  8,
		LeadingIconBlockWidth:          20,
		LeftOuterPadding:               12,
		GapIconToLabel:                 8,
		LabelRightPaddingBeforeDivider: 10,
		TrailingLeftInnerPadding:       11,
		RightOuterPadding:              12,
		SidePaddingSelected:            11,
	},
	SizeSM: {
		Height:                         40,
		TrailingSegmentWidth:           22,
		InnerCornerRadius:              4,
		InnerPadding:                   6,
		MenuIconOffsetUnselected:       -1,
		IconSize:                       20,
		OuterRadiusRound:               20,
		OuterRadiusSquare:              12,
		PressedRadius:                  8,
		LeadingIconBlockWidth:          20,
		LeftOuterPadding:               16,
		GapIconToLabel:                 8,
		LabelRightPaddingBeforeDivider: 12,
		TrailingLeftInnerPadding:       13,
		RightOuterPadding:              14,
		SidePaddingSelected:            13,
	},
	SizeMD: {
		Height:                         56,
		TrailingSegmentWidth:           26,
		InnerCornerRadius:              8,
		InnerPadding:                   8,
		MenuIconOffsetUnselected:       -2,
		IconSize:                       24,
		OuterRadiusRound:               28,
		OuterRadiusSquare:              16,
		PressedRadius:                  12,
		LeadingIconBlockWidth:          24,
		LeftOuterPadding:               24,
		GapIconToLabel:                 8,
		LabelRightPaddingBeforeDivider: 16,
		TrailingLeftInnerPadding:       15,
		RightOuterPadding:              16,
		SidePaddingSelected:            15,
	},
	SizeLG: {
		Height:                         96,
		TrailingSegmentWidth:           38,
		InnerCornerRadius:              12,
		InnerPadding:                   12,
		MenuIconOffsetUnselected:       -3,
		IconSize:                       32,
		OuterRadiusRound:               48,
		OuterRadiusSquare:              28,
		PressedRadius:                  16,
		LeadingIconBlockWidth:          32,
		LeftOuterPadding:               48,
		GapIconToLabel:                 12,
		LabelRightPaddingBeforeDivider: 24,
		TrailingLeftInnerPadding:       29,
		RightOuterPadding:              30,
		SidePaddingSelected:            29,
	},
	SizeXL: {
		Height:                         136,
		TrailingSegmentWidth:           50,
		InnerCornerRadius:              16,
		InnerPadding:                   16,
		MenuIconOffsetUnselected:       -4,
		IconSize:                       40,
		OuterRadiusRound:               68,
		OuterRadiusSquare:              28,
		PressedRadius:                  20,
		LeadingIconBlockWidth:          40,
		LeftOuterPadding:               64,
		GapIconToLabel:                 16,
		LabelRightPaddingBeforeDivider: 32,
		TrailingLeftInnerPadding:       43,
		RightOuterPadding:              44,
		SidePaddingSelected:            43,
	},
}

// Lookup returns the token row for the given size. The function is total:
// out-of-range values resolve to the SizeSM row.
func Lookup(s Size) Row {
	if s < SizeXS || s > SizeXL {
		s = SizeSM
	}
	return table[s]
}
