package splitbutton

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/theme"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Label = "Save"
	opts.LeadingIcon = "+"
	opts.Items = []MenuItem{
		{Value: "save-as", Label: "Save as...", Enabled: true},
		{Value: "save-all", Label: "Save all", Enabled: true},
		{Value: "export", Label: "Export", Enabled: false},
	}
	return opts
}

func TestNew_RequiresExactlyOneMenuSource(t *testing.T) {
	mustPanic := func(name string, opts Options) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected construction to panic", name)
			}
		}()
		New(theme.Baseline(), opts)
	}

	neither := DefaultOptions()
	mustPanic("neither", neither)

	both := testOptions()
	both.MenuBuilder = func(MenuContext) []MenuItem { return nil }
	mustPanic("both", both)

	// One of each is fine.
	New(theme.Baseline(), testOptions())
	builderOnly := DefaultOptions()
	builderOnly.MenuBuilder = func(MenuContext) []MenuItem { return nil }
	New(theme.Baseline(), builderOnly)
}

func TestKeyboardTap_LeadingPressLifecycle(t *testing.T) {
	var pressed int
	var transitions []bool

	opts := testOptions()
	opts.OnPressed = func() { pressed++ }
	opts.OnHighlightChanged = func(seg Segment, on bool) {
		if seg == SegmentLeading {
			transitions = append(transitions, on)
		}
	}
	m := New(theme.Baseline(), opts)

	m, cmd := m.Update(keyMsg("enter"))
	if !m.State().LeadingPressed {
		t.Fatal("leading segment should be pressed after activation")
	}
	if cmd == nil {
		t.Fatal("activation should schedule a release")
	}
	if pressed != 0 {
		t.Fatal("onPressed must not fire before the release")
	}

	m, _ = m.Update(keyReleaseMsg{seq: 1})
	if m.State().LeadingPressed {
		t.Fatal("leading segment should be released")
	}
	if pressed != 1 {
		t.Fatalf("onPressed fired %d times, want exactly 1", pressed)
	}
	if len(transitions) != 2 || !transitions[0] || transitions[1] {
		t.Fatalf("highlight transitions = %v, want [true false]", transitions)
	}
}

func TestStaleRelease_Ignored(t *testing.T) {
	var pressed int
	opts := testOptions()
	opts.OnPressed = func() { pressed++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyReleaseMsg{seq: 99})
	if !m.State().LeadingPressed {
		t.Fatal("stale release must not clear the press")
	}
	if pressed != 0 {
		t.Fatal("stale release must not fire onPressed")
	}
}

func TestMenu_SelectDispatchesOnSelectedOnce(t *testing.T) {
	var selected []string
	opts := testOptions()
	opts.OnSelected = func(v string) { selected = append(selected, v) }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("down"))
	if !m.MenuOpen() {
		t.Fatal("menu should open")
	}

	m, _ = m.Update(keyMsg("enter"))
	if m.MenuOpen() {
		t.Fatal("menu should close after selection")
	}
	if len(selected) != 1 || selected[0] != "save-as" {
		t.Fatalf("onSelected calls = %v, want exactly [save-as]", selected)
	}
}

func TestMenu_DismissNeverCallsOnSelected(t *testing.T) {
	var selected int
	opts := testOptions()
	opts.OnSelected = func(string) { selected++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("esc"))
	if m.MenuOpen() {
		t.Fatal("menu should close on dismissal")
	}
	if selected != 0 {
		t.Fatalf("onSelected fired %d times on dismissal, want 0", selected)
	}
}

func TestMenu_ReopenWhileOpenIgnored(t *testing.T) {
	m := New(theme.Baseline(), testOptions())

	m, _ = m.Update(keyMsg("down"))
	m.menu.cursor = 1
	// A second open request must not rebuild the menu state.
	m.beginMenuInteraction()
	if m.menu.cursor != 1 {
		t.Fatal("re-entrant open reset the live menu")
	}
}

func TestMenu_CursorSkipsDisabledItems(t *testing.T) {
	var selected []string
	opts := testOptions()
	opts.OnSelected = func(v string) { selected = append(selected, v) }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("down"))
	// Cursor at "save-as"; down moves to "save-all"; a further down must
	// not land on the disabled "export".
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("enter"))
	if len(selected) != 1 || selected[0] != "save-all" {
		t.Fatalf("selected %v, want [save-all]", selected)
	}
}

func TestMenuBuilder_InvokedAtOpen(t *testing.T) {
	var built int
	opts := DefaultOptions()
	opts.MenuBuilder = func(ctx MenuContext) []MenuItem {
		built++
		if ctx.Width <= 0 {
			t.Errorf("builder ctx width = %d, want positive min width", ctx.Width)
		}
		return []MenuItem{{Value: "a", Label: "A", Enabled: true}}
	}
	m := New(theme.Baseline(), opts)

	if built != 0 {
		t.Fatal("builder must not run before the menu opens")
	}
	m, _ = m.Update(keyMsg("down"))
	if built != 1 {
		t.Fatalf("builder ran %d times at open, want 1", built)
	}
	_ = m
}

func TestClose_GuardsLateMenuResolution(t *testing.T) {
	var selected int
	opts := testOptions()
	opts.OnSelected = func(string) { selected++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("down"))
	m.Close()

	v := "save-as"
	m, _ = m.Update(menuResolvedMsg{value: &v})
	if selected != 0 {
		t.Fatal("resolution after Close must not dispatch onSelected")
	}
}

func TestExternalResolution_CompletesInteraction(t *testing.T) {
	var selected []string
	opts := testOptions()
	opts.OnSelected = func(v string) { selected = append(selected, v) }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("down"))
	v := "save-all"
	msg := m.ResolveMenu(&v)()
	m, _ = m.Update(msg)
	if m.MenuOpen() {
		t.Fatal("external resolution should close the menu")
	}
	if len(selected) != 1 || selected[0] != "save-all" {
		t.Fatalf("selected = %v", selected)
	}
}

func TestDisabled_IgnoresActivation(t *testing.T) {
	var pressed int
	opts := testOptions()
	opts.Enabled = false
	opts.OnPressed = func() { pressed++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("down"))
	if m.State().LeadingPressed || m.MenuOpen() {
		t.Fatal("disabled component must not react to activation")
	}
	if pressed != 0 {
		t.Fatal("disabled component fired onPressed")
	}
}

func TestMouseTap_LeadingSegment(t *testing.T) {
	var pressed int
	opts := testOptions()
	opts.OnPressed = func() { pressed++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.State().LeadingPressed {
		t.Fatal("mouse press in leading zone should set LeadingPressed")
	}
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.State().LeadingPressed {
		t.Fatal("mouse release should clear LeadingPressed")
	}
	if pressed != 1 {
		t.Fatalf("onPressed fired %d times, want 1", pressed)
	}
}

func TestMouseDragOut_CancelsTap(t *testing.T) {
	var pressed int
	opts := testOptions()
	opts.OnPressed = func() { pressed++ }
	m := New(theme.Baseline(), opts)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 500, Y: 40, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.State().LeadingPressed {
		t.Fatal("release outside the zone should still clear the press")
	}
	if pressed != 0 {
		t.Fatal("release outside the tap region must not fire onPressed")
	}
}

func TestView_RendersMenuBelowOrAbove(t *testing.T) {
	m := New(theme.Baseline(), testOptions())
	m, _ = m.Update(keyMsg("down"))

	below := m.View()
	if below == "" {
		t.Fatal("open view should render")
	}

	optsAbove := testOptions()
	optsAbove.MenuPosition = geometry.MenuAbove
	ma := New(theme.Baseline(), optsAbove)
	ma, _ = ma.Update(keyMsg("down"))
	above := ma.View()
	if above == below {
		t.Error("above and below placements should differ")
	}
}

func TestView_ChevronFlipsWhenOpen(t *testing.T) {
	m := New(theme.Baseline(), testOptions())
	if closed := m.View(); !containsRune(closed, '▾') {
		t.Error("closed view missing ▾ chevron")
	}
	m, _ = m.Update(keyMsg("down"))
	if open := m.View(); !containsRune(open, '▴') {
		t.Error("open view missing ▴ chevron")
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
