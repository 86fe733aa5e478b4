package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/uiforge/splitbutton/pkg/splitbutton"
	"github.com/uiforge/splitbutton/pkg/theme"
)

// themeMsg carries a hot-reloaded theme from the file watcher.
type themeMsg struct {
	theme theme.Theme
}

const helpMarkdown = `# Split button demo

| Key | Action |
|-----|--------|
| tab / arrows | move focus between segments |
| enter, space | activate the focused segment |
| down | open the menu |
| esc | dismiss the menu |
| ? | toggle this help |
| q | quit |

Mouse taps work on both segments. A selected menu value is copied to
the clipboard.
`

// events collects component callbacks so the app can report them after
// each update.
type events struct {
	pressed   int
	selected  string
	highlight string
}

type app struct {
	btn splitbutton.Model
	th  theme.Theme
	ev  *events

	status   string
	showHelp bool
	helpView string

	width  int
	height int
}

func newApp(th theme.Theme, opts splitbutton.Options) *app {
	ev := &events{}
	opts.OnPressed = func() { ev.pressed++ }
	opts.OnSelected = func(v string) { ev.selected = v }
	opts.OnHighlightChanged = func(seg splitbutton.Segment, on bool) {
		ev.highlight = fmt.Sprintf("%s highlight=%v", seg, on)
	}
	if opts.Items == nil && opts.MenuBuilder == nil {
		opts.Items = []splitbutton.MenuItem{
			{Value: "save-as", Label: "Save as...", Enabled: true},
			{Value: "save-all", Label: "Save all", Enabled: true},
			{Value: "save-copy", Label: "Save a copy", Enabled: true},
			{Value: "export", Label: "Export (soon)", Enabled: false},
		}
	}

	btn := splitbutton.New(th, opts)
	// The view renders the button on its second row.
	btn.SetOrigin(0, 1)

	return &app{
		btn:    btn,
		th:     th,
		ev:     ev,
		status: "Ready.",
	}
}

func (a *app) Init() tea.Cmd {
	return a.btn.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case themeMsg:
		a.th = msg.theme
		a.btn.SetTheme(msg.theme)
		a.status = "Theme reloaded."
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.btn.Close()
			return a, tea.Quit
		case "q":
			if !a.btn.MenuOpen() {
				a.btn.Close()
				return a, tea.Quit
			}
		case "?":
			if !a.btn.MenuOpen() {
				a.toggleHelp()
				return a, nil
			}
		}
	}

	before := a.ev.pressed
	beforeSelected := a.ev.selected

	var cmd tea.Cmd
	a.btn, cmd = a.btn.Update(msg)

	if a.ev.pressed != before {
		a.status = fmt.Sprintf("Primary action ran (%d times).", a.ev.pressed)
	}
	if a.ev.selected != beforeSelected && a.ev.selected != "" {
		a.status = fmt.Sprintf("Selected %q.", a.ev.selected)
		if err := clipboard.WriteAll(a.ev.selected); err == nil {
			a.status += " Copied to clipboard."
		}
	}
	return a, cmd
}

// toggleHelp lazily renders the markdown once.
func (a *app) toggleHelp() {
	a.showHelp = !a.showHelp
	if a.showHelp && a.helpView == "" {
		out, err := glamour.Render(helpMarkdown, "auto")
		if err != nil {
			out = helpMarkdown
		}
		a.helpView = out
	}
}

func (a *app) View() string {
	if a.showHelp {
		return a.helpView
	}

	statusStyle := lipgloss.NewStyle().Foreground(a.th.Outline)
	hintStyle := lipgloss.NewStyle().Foreground(a.th.Outline).Faint(true)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		a.btn.View(),
		"",
		statusStyle.Render(a.status),
		hintStyle.Render("? help · q quit"),
	)
}
