package geometry

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uiforge/splitbutton/pkg/theme"
)

// defaultElevatedElevation is the resting elevation of the elevated
// emphasis.
const defaultElevatedElevation = 1.0

// ColorOverrides carries optional caller-supplied colors. A nil field
// keeps the emphasis default.
type ColorOverrides struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Elevation  *float64
}

// Colors is the resolved container treatment for one emphasis.
type Colors struct {
	Container  lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	HasBorder  bool
	Elevation  float64
}

// ResolveColors maps an emphasis to its container/foreground/border
// colors and elevation, applying caller overrides where present.
//
// The elevation override is consumed only when the emphasis is elevated.
// The source this ports documented an "override applies when filled"
// rule, but that path was unreachable in its code; the code behavior is
// reproduced here and the discrepancy is flagged for product review.
func ResolveColors(th theme.Theme, e Emphasis, o ColorOverrides) Colors {
	var c Colors
	switch e {
	case EmphasisTonal:
		c.Container = th.SecondaryContainer
		c.Foreground = th.OnSecondaryContainer
	case EmphasisElevated:
		c.Container = th.SurfaceContainerHigh
		c.Foreground = th.OnSurface
		c.Elevation = defaultElevatedElevation
		if o.Elevation != nil {
			c.Elevation = *o.Elevation
		}
	case EmphasisOutlined:
		c.Container = lipgloss.NoColor{}
		c.Foreground = th.Primary
		c.Border = th.Outline
		c.HasBorder = true
	case EmphasisText:
		c.Container = lipgloss.NoColor{}
		c.Foreground = th.Primary
	default:
		c.Container = th.Primary
		c.Foreground = th.OnPrimary
	}

	if o.Background != nil {
		c.Container = o.Background
	}
	if o.Foreground != nil {
		c.Foreground = o.Foreground
	}
	return c
}
