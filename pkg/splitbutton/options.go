// Package splitbutton implements the Material 3 Expressive split button
// as a Bubble Tea widget: a leading action segment and a trailing menu
// trigger whose geometry morphs with interaction state. The dp-exact
// geometry lives in pkg/geometry; this package owns the interaction
// state machine and the terminal rendering.
package splitbutton

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/theme"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

// Segment identifies one of the two interactive regions.
type Segment int

const (
	SegmentLeading Segment = iota
	SegmentTrailing
)

func (s Segment) String() string {
	if s == SegmentTrailing {
		return "trailing"
	}
	return "leading"
}

// MenuItem is one entry in the trigger menu. Disabled items render dimmed
// but stay visible; the cursor skips them.
type MenuItem struct {
	Value   string
	Label   string
	Enabled bool
}

// MenuContext is handed to a MenuBuilder when the menu opens.
type MenuContext struct {
	Theme theme.Theme
	Width int
}

// Options is the construction-time configuration. It is immutable for
// the component's lifetime; reconstruct the model to change it.
type Options struct {
	Size      tokens.Size
	Shape     geometry.Shape
	Emphasis  geometry.Emphasis
	Label     string
	// LeadingIcon is the glyph rendered in the leading icon block.
	// Empty means no icon.
	LeadingIcon string

	// OnPressed fires once per completed tap on the leading segment.
	OnPressed func()
	// OnSelected receives the chosen menu item's value.
	OnSelected func(value string)
	// OnHighlightChanged observes press-highlight transitions of either
	// segment.
	OnHighlightChanged func(seg Segment, highlighted bool)

	// Items and MenuBuilder are mutually exclusive; exactly one must be
	// supplied.
	Items       []MenuItem
	MenuBuilder func(ctx MenuContext) []MenuItem

	TrailingAlignment geometry.TrailingAlignment
	MenuPosition      geometry.MenuPosition
	Direction         geometry.Direction

	LeadingTooltip  string
	TrailingTooltip string

	// Enabled gates both segments' handlers. DefaultOptions sets it.
	Enabled bool

	// Optional overrides; nil keeps the emphasis defaults. The elevation
	// override is consumed only by the elevated emphasis.
	ForegroundColor lipgloss.TerminalColor
	BackgroundColor lipgloss.TerminalColor
	Elevation       *float64
}

// DefaultOptions returns the documented defaults: sm, round, filled,
// optical trailing alignment, menu below, enabled.
func DefaultOptions() Options {
	return Options{
		Size:              tokens.SizeSM,
		Shape:             geometry.ShapeRound,
		Emphasis:          geometry.EmphasisFilled,
		TrailingAlignment: geometry.AlignOpticalCenter,
		MenuPosition:      geometry.MenuBelow,
		Enabled:           true,
	}
}

// validate enforces the construction-time contract. Violations are
// programmer errors and fail fast.
func (o Options) validate() {
	if o.Items == nil && o.MenuBuilder == nil {
		panic("splitbutton: exactly one of Items or MenuBuilder must be supplied (got neither)")
	}
	if o.Items != nil && o.MenuBuilder != nil {
		panic("splitbutton: exactly one of Items or MenuBuilder must be supplied (got both)")
	}
}
