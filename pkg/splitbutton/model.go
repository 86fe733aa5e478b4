package splitbutton

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/theme"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

// pressFlash is how long a keyboard activation keeps a segment in its
// pressed morph before the synthetic release lands.
const pressFlash = 120 * time.Millisecond

// keyReleaseMsg releases a keyboard-initiated press. seq invalidates
// stale releases from earlier presses.
type keyReleaseMsg struct{ seq int }

// menuResolvedMsg completes a menu interaction driven by an external
// overlay host. value is nil on dismissal without selection.
type menuResolvedMsg struct{ value *string }

// Model is the split button component. Interaction state lives here and
// only here; geometry is recomputed from it on every render.
type Model struct {
	opts Options
	th   theme.Theme
	row  tokens.Row

	st    geometry.State
	focus Segment

	pressSeq    int
	mouseTarget int // Segment being mouse-pressed, -1 when none

	menu menuModel

	originX, originY int

	closed bool
}

// New constructs the component. The Items/MenuBuilder exclusivity
// contract is checked immediately; violations panic.
func New(th theme.Theme, opts Options) Model {
	opts.validate()
	return Model{
		opts:        opts,
		th:          th,
		row:         tokens.Lookup(opts.Size),
		mouseTarget: -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close tears the component down. Any in-flight menu resolution that
// lands afterwards is dropped instead of mutating a destroyed instance.
func (m *Model) Close() {
	m.closed = true
}

// SetTheme swaps the color scheme, e.g. after a theme file reload.
func (m *Model) SetTheme(th theme.Theme) {
	m.th = th
}

// SetOrigin positions the component's top-left cell for mouse hit
// testing and menu anchoring.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// State exposes the current interaction flags.
func (m Model) State() geometry.State {
	return m.st
}

// MenuOpen reports whether the trigger menu is showing.
func (m Model) MenuOpen() bool {
	return m.st.MenuOpen
}

// Focused returns the segment keyboard activation targets.
func (m Model) Focused() Segment {
	return m.focus
}

func (m Model) highlight(seg Segment, on bool) {
	if m.opts.OnHighlightChanged != nil {
		m.opts.OnHighlightChanged(seg, on)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case menuResolvedMsg:
		m.completeMenuInteraction(msg.value)
		return m, nil

	case keyReleaseMsg:
		if msg.seq != m.pressSeq {
			return m, nil
		}
		if m.st.LeadingPressed {
			m.st.LeadingPressed = false
			m.highlight(SegmentLeading, false)
			if m.opts.OnPressed != nil {
				m.opts.OnPressed()
			}
		}
		if m.st.TrailingPressed {
			m.st.TrailingPressed = false
			m.highlight(SegmentTrailing, false)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.opts.Enabled {
			return m, nil
		}
		if m.st.MenuOpen {
			var resolved bool
			var value *string
			m.menu, resolved, value = m.menu.update(msg)
			if resolved {
				m.completeMenuInteraction(value)
			}
			return m, nil
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		if !m.opts.Enabled || m.st.MenuOpen {
			return m, nil
		}
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "right":
		m.focus = SegmentTrailing
	case "shift+tab", "left":
		m.focus = SegmentLeading
	case "down":
		m.beginMenuInteraction()
	case "enter", " ":
		return m.pressFocused()
	}
	return m, nil
}

// pressFocused starts a keyboard tap: the segment enters its pressed
// morph now and releases after the press flash elapses.
func (m Model) pressFocused() (Model, tea.Cmd) {
	m.pressSeq++
	seq := m.pressSeq
	if m.focus == SegmentTrailing {
		m.st.TrailingPressed = true
		m.highlight(SegmentTrailing, true)
		// Menu opens synchronously with the press.
		m.beginMenuInteraction()
	} else {
		m.st.LeadingPressed = true
		m.highlight(SegmentLeading, true)
	}
	return m, tea.Tick(pressFlash, func(time.Time) tea.Msg {
		return keyReleaseMsg{seq: seq}
	})
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	seg, hit := m.segmentAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		// Some terminals omit the button on release, so only the press
		// is gated on the left button.
		if msg.Button != tea.MouseButtonLeft || !hit {
			return m, nil
		}
		m.mouseTarget = int(seg)
		if seg == SegmentTrailing {
			m.st.TrailingPressed = true
		} else {
			m.st.LeadingPressed = true
		}
		m.highlight(seg, true)

	case tea.MouseActionRelease:
		if m.mouseTarget < 0 {
			return m, nil
		}
		pressed := Segment(m.mouseTarget)
		m.mouseTarget = -1
		inRegion := hit && seg == pressed

		if pressed == SegmentTrailing {
			m.st.TrailingPressed = false
		} else {
			m.st.LeadingPressed = false
		}
		m.highlight(pressed, false)

		if !inRegion {
			return m, nil
		}
		if pressed == SegmentLeading {
			if m.opts.OnPressed != nil {
				m.opts.OnPressed()
			}
		} else {
			m.beginMenuInteraction()
		}
	}
	return m, nil
}

// beginMenuInteraction opens the menu. An open request while the menu is
// already showing is ignored; see DESIGN.md for the debounce decision.
func (m *Model) beginMenuInteraction() {
	if m.st.MenuOpen {
		return
	}
	m.st.MenuOpen = true

	trailing := geometry.ResolveTrailing(m.row, m.opts.Size, m.opts.Shape, m.st)
	minWidth := dpToCells(geometry.MenuMinWidth(trailing.Width, m.row))

	items := m.opts.Items
	if m.opts.MenuBuilder != nil {
		items = m.opts.MenuBuilder(MenuContext{Theme: m.th, Width: minWidth})
	}
	m.menu = newMenu(items, minWidth)
}

// completeMenuInteraction finishes the open-await-resolve cycle: the
// menu closes and a selection, when present, is dispatched.
func (m *Model) completeMenuInteraction(value *string) {
	if !m.st.MenuOpen {
		return
	}
	m.st.MenuOpen = false
	if value != nil && m.opts.OnSelected != nil {
		m.opts.OnSelected(*value)
	}
}

// ResolveMenu returns a command an external overlay host runs to resolve
// the pending menu interaction. Pass nil for dismissal.
func (m Model) ResolveMenu(value *string) tea.Cmd {
	return func() tea.Msg {
		return menuResolvedMsg{value: value}
	}
}

// renderSegments produces both segment strings plus the gap filler, in
// start-to-end order (not yet direction-resolved).
func (m Model) renderSegments() (leading, gap, trailing string) {
	colors := geometry.ResolveColors(m.th, m.opts.Emphasis, geometry.ColorOverrides{
		Background: m.opts.BackgroundColor,
		Foreground: m.opts.ForegroundColor,
		Elevation:  m.opts.Elevation,
	})
	padV := verticalPad(m.row)

	// Leading segment content.
	layout := geometry.ResolveLeading(m.row, m.opts.LeadingIcon != "", m.opts.Label)
	var content strings.Builder
	switch layout.Variant {
	case geometry.ContentIconAndLabel:
		content.WriteString(centerInBlock(m.opts.LeadingIcon, dpToCells(layout.IconBlockWidth)))
		content.WriteString(strings.Repeat(" ", dpToCells(layout.IconToLabelGap)))
		content.WriteString(truncateLabel(m.opts.Label, maxLabelCells))
	case geometry.ContentIconOnly:
		content.WriteString(centerInBlock(m.opts.LeadingIcon, dpToCells(layout.IconBlockWidth)))
	default:
		// The label slot stays even when the label is missing.
		content.WriteString(truncateLabel(m.opts.Label, maxLabelCells))
	}

	leadingRadii := geometry.LeadingRadii(m.row, m.opts.Shape, m.st)
	leadingStyle := segmentStyle(colors, padV).
		PaddingLeft(dpToCells(layout.PadStart)).
		PaddingRight(dpToCells(layout.PadEnd))
	if colors.HasBorder {
		leadingStyle = leadingStyle.Border(segmentBorder(leadingRadii, m.row.Height)).
			BorderForeground(colors.Border)
	}
	leading = leadingStyle.Render(content.String())

	// Trailing segment.
	tg := geometry.ResolveTrailing(m.row, m.opts.Size, m.opts.Shape, m.st)
	chev := chevronGlyph(m.st.MenuOpen)
	offset := geometry.ChevronOffset(m.row, m.opts.TrailingAlignment, m.st, tg.CircleMorph)
	if offset < 0 {
		chev = chev + strings.Repeat(" ", dpToCells(-offset))
	} else if offset > 0 {
		chev = strings.Repeat(" ", dpToCells(offset)) + chev
	}

	trailingStyle := segmentStyle(colors, padV).
		PaddingLeft(dpToCells(tg.PadStart)).
		PaddingRight(dpToCells(tg.PadEnd))
	if colors.HasBorder {
		trailingStyle = trailingStyle.Border(segmentBorder(tg.Radii, m.row.Height)).
			BorderForeground(colors.Border)
	}
	trailing = trailingStyle.Render(chev)

	// One cell per 2dp of gap: one at rest, two for elevated.
	gapCells := int(geometry.SegmentGap(m.opts.Emphasis) / 2)
	gap = strings.Repeat(" ", gapCells)
	return leading, gap, trailing
}

// centerInBlock centers a glyph inside a fixed-width icon block.
func centerInBlock(glyph string, block int) string {
	w := lipgloss.Width(glyph)
	if block <= w {
		return glyph
	}
	left := (block - w) / 2
	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", block-w-left)
}

// segmentAt hit-tests a terminal cell against the two segments.
func (m Model) segmentAt(x, y int) (Segment, bool) {
	leading, gap, trailing := m.renderSegments()
	lw, gw, tw := lipgloss.Width(leading), lipgloss.Width(gap), lipgloss.Width(trailing)
	h := lipgloss.Height(leading)

	if y < m.originY || y >= m.originY+h {
		return 0, false
	}
	rel := x - m.originX
	first, second := lw, tw
	firstSeg, secondSeg := SegmentLeading, SegmentTrailing
	if m.opts.Direction == geometry.RTL {
		first, second = tw, lw
		firstSeg, secondSeg = SegmentTrailing, SegmentLeading
	}
	switch {
	case rel >= 0 && rel < first:
		return firstSeg, true
	case rel >= first+gw && rel < first+gw+second:
		return secondSeg, true
	}
	return 0, false
}

// View implements tea.Model.
func (m Model) View() string {
	leading, gap, trailing := m.renderSegments()

	var button string
	if m.opts.Direction == geometry.RTL {
		button = lipgloss.JoinHorizontal(lipgloss.Center, trailing, gap, leading)
	} else {
		button = lipgloss.JoinHorizontal(lipgloss.Center, leading, gap, trailing)
	}

	lines := []string{button}

	if tip := m.focusedTooltip(); tip != "" && !m.st.MenuOpen {
		tipStyle := lipgloss.NewStyle().Foreground(m.th.Outline).Faint(true)
		lines = append(lines, tipStyle.Render(tip))
	}

	if m.st.MenuOpen {
		menuView := m.menu.view(m.th)
		menuView = m.placeMenu(menuView, leading, gap, trailing)
		if m.opts.MenuPosition == geometry.MenuAbove {
			lines = append([]string{menuView}, lines...)
		} else {
			lines = append(lines, menuView)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// placeMenu indents the menu so its trailing-direction edge lines up
// with the anchor edge of the trailing segment. An unmeasured anchor
// degrades to full-fill placement at the component origin.
func (m Model) placeMenu(menuView, leading, gap, trailing string) string {
	lw, gw, tw := lipgloss.Width(leading), lipgloss.Width(gap), lipgloss.Width(trailing)
	h := lipgloss.Height(leading)

	var rect geometry.Rect
	if m.opts.Direction == geometry.RTL {
		rect = geometry.Rect{X: float64(m.originX), Y: float64(m.originY), W: float64(tw), H: float64(h)}
	} else {
		rect = geometry.Rect{X: float64(m.originX + lw + gw), Y: float64(m.originY), W: float64(tw), H: float64(h)}
	}

	x, _, ok := geometry.AnchorPoint(rect, m.opts.MenuPosition, m.opts.Direction)
	if !ok {
		return menuView
	}

	indent := 0
	if m.opts.Direction == geometry.RTL {
		indent = int(x) - m.originX
	} else {
		indent = int(x) - m.originX - lipgloss.Width(menuView)
	}
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	padded := make([]string, 0, lipgloss.Height(menuView))
	for _, line := range strings.Split(menuView, "\n") {
		padded = append(padded, pad+line)
	}
	return strings.Join(padded, "\n")
}

func (m Model) focusedTooltip() string {
	if m.focus == SegmentTrailing {
		return m.opts.TrailingTooltip
	}
	return m.opts.LeadingTooltip
}
