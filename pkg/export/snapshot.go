// Package export renders resolved split button geometry to SVG and PNG
// for visual regression. The images are a pure function of
// (size, shape, emphasis, state, direction): the exact dp values from the
// token table flow into the output unscaled.
package export

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/theme"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

// canvasMargin surrounds the control in the exported image, in dp.
const canvasMargin = 16.0

// labelAdvance approximates the 7x13 bitmap face used by the PNG
// renderer, in px per cell.
const labelAdvance = 7.0

// Config selects what to render.
type Config struct {
	Size      tokens.Size
	Shape     geometry.Shape
	Emphasis  geometry.Emphasis
	State     geometry.State
	Direction geometry.Direction
	Alignment geometry.TrailingAlignment
	Label     string
	HasIcon   bool
	// Dark picks the dark scheme variant of each color role.
	Dark bool
}

// SegmentBox is one segment's resolved box.
type SegmentBox struct {
	Rect  geometry.Rect
	Radii geometry.CornerRadii
}

// Snapshot is everything the renderers need, fully resolved.
type Snapshot struct {
	Width  float64
	Height float64

	Leading  SegmentBox
	Trailing SegmentBox

	// Fill is empty for transparent containers (outlined, text).
	Fill      string
	Text      string
	Border    string
	Elevation float64

	ChevronX     float64
	ChevronY     float64
	ChevronSize  float64
	ChevronAngle float64

	Label  string
	LabelX float64
	LabelY float64

	IconBlock geometry.Rect
	HasIcon   bool
}

// pick resolves an adaptive role to one hex variant.
func pick(c lipgloss.TerminalColor, dark bool) string {
	switch v := c.(type) {
	case lipgloss.AdaptiveColor:
		if dark {
			return v.Dark
		}
		return v.Light
	case lipgloss.Color:
		return string(v)
	default:
		return ""
	}
}

// Build resolves a snapshot from the token table and geometry resolver.
func Build(th theme.Theme, cfg Config) Snapshot {
	row := tokens.Lookup(cfg.Size)
	st := cfg.State

	colors := geometry.ResolveColors(th, cfg.Emphasis, geometry.ColorOverrides{})
	layout := geometry.ResolveLeading(row, cfg.HasIcon, cfg.Label)
	tg := geometry.ResolveTrailing(row, cfg.Size, cfg.Shape, st)
	gap := geometry.SegmentGap(cfg.Emphasis)

	labelW := labelAdvance * float64(runewidth.StringWidth(cfg.Label))
	content := labelW
	if layout.Variant != geometry.ContentLabelOnly {
		content = layout.IconBlockWidth + layout.IconToLabelGap + labelW
		if layout.Variant == geometry.ContentIconOnly {
			content = layout.IconBlockWidth
		}
	}
	leadingW := layout.PadStart + content + layout.PadEnd

	snap := Snapshot{
		Width:     canvasMargin*2 + leadingW + gap + tg.Width,
		Height:    canvasMargin*2 + row.Height,
		Fill:      pick(colors.Container, cfg.Dark),
		Text:      pick(colors.Foreground, cfg.Dark),
		Elevation: colors.Elevation,
		Label:     cfg.Label,
		HasIcon:   cfg.HasIcon,
	}
	if colors.HasBorder {
		snap.Border = pick(colors.Border, cfg.Dark)
	}

	top := canvasMargin
	leadX := canvasMargin
	trailX := canvasMargin + leadingW + gap
	if cfg.Direction == geometry.RTL {
		trailX = canvasMargin
		leadX = canvasMargin + tg.Width + gap
	}

	snap.Leading = SegmentBox{
		Rect:  geometry.Rect{X: leadX, Y: top, W: leadingW, H: row.Height},
		Radii: geometry.LeadingRadii(row, cfg.Shape, st),
	}
	snap.Trailing = SegmentBox{
		Rect:  geometry.Rect{X: trailX, Y: top, W: tg.Width, H: row.Height},
		Radii: tg.Radii,
	}

	// Chevron sits centered in the trailing segment's content box, plus
	// the optical offset.
	offset := geometry.ChevronOffset(row, cfg.Alignment, st, tg.CircleMorph)
	contentX := trailX + tg.PadStart
	contentW := tg.Width - tg.PadStart - tg.PadEnd
	snap.ChevronX = contentX + contentW/2 + offset
	snap.ChevronY = top + row.Height/2
	snap.ChevronSize = row.IconSize / 2
	snap.ChevronAngle = geometry.ChevronAngle(geometry.ChevronTurns(st.MenuOpen))

	// Label baseline and icon block inside the leading segment.
	contentStart := leadX + layout.PadStart
	if cfg.Direction == geometry.RTL {
		contentStart = leadX + layout.PadEnd
	}
	if cfg.HasIcon {
		snap.IconBlock = geometry.Rect{
			X: contentStart,
			Y: top + (row.Height-row.IconSize)/2,
			W: layout.IconBlockWidth,
			H: row.IconSize,
		}
		contentStart += layout.IconBlockWidth + layout.IconToLabelGap
	}
	snap.LabelX = contentStart
	snap.LabelY = top + row.Height/2
	return snap
}
