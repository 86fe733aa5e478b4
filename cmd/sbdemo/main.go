package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/uiforge/splitbutton/pkg/export"
	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/splitbutton"
	"github.com/uiforge/splitbutton/pkg/theme"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

func main() {
	size := flag.String("size", "sm", "Size category: xs, sm, md, lg, xl")
	shape := flag.String("shape", "round", "Resting shape: round or square")
	emphasis := flag.String("emphasis", "filled", "Emphasis: filled, tonal, elevated, outlined, text")
	label := flag.String("label", "Save", "Leading segment label")
	icon := flag.String("icon", "+", "Leading icon glyph (empty for none)")
	geometric := flag.Bool("geometric", false, "Center the chevron geometrically instead of optically")
	above := flag.Bool("above", false, "Open the menu above the button")
	rtl := flag.Bool("rtl", false, "Right-to-left reading order")
	themePath := flag.String("theme", "", "YAML theme override file (hot-reloaded)")
	exportDir := flag.String("export", "", "Write SVG+PNG geometry snapshots to this directory and exit")
	dark := flag.Bool("dark", false, "Export with the dark scheme variant")
	form := flag.Bool("form", false, "Pick the configuration interactively")
	bg := flag.String("bg", "", "Background color override (hex)")
	fg := flag.String("fg", "", "Foreground color override (hex)")
	elevation := flag.Float64("elevation", -1, "Elevation override (elevated emphasis only)")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: sbdemo [options]")
		fmt.Println("\nAn interactive Material 3 Expressive split button demo.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("sbdemo version 0.1.0")
		os.Exit(0)
	}

	if *form {
		if err := runForm(size, shape, emphasis); err != nil {
			fmt.Printf("Form aborted: %v\n", err)
			os.Exit(1)
		}
	}

	th := theme.Baseline()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fmt.Printf("Error loading theme: %v\n", err)
			os.Exit(1)
		}
		th = loaded
	}

	opts := splitbutton.DefaultOptions()
	opts.Size = tokens.ParseSize(*size)
	opts.Shape = geometry.ParseShape(*shape)
	opts.Emphasis = geometry.ParseEmphasis(*emphasis)
	opts.Label = *label
	opts.LeadingIcon = *icon
	opts.LeadingTooltip = "Run the primary action"
	opts.TrailingTooltip = "More actions"
	if *geometric {
		opts.TrailingAlignment = geometry.AlignGeometricCenter
	}
	if *above {
		opts.MenuPosition = geometry.MenuAbove
	}
	if *rtl {
		opts.Direction = geometry.RTL
	}
	if *bg != "" {
		opts.BackgroundColor = lipgloss.Color(*bg)
	}
	if *fg != "" {
		opts.ForegroundColor = lipgloss.Color(*fg)
	}
	if *elevation >= 0 {
		opts.Elevation = elevation
	}

	if *exportDir != "" {
		if err := exportSnapshots(th, opts, *exportDir, *dark); err != nil {
			fmt.Printf("Error exporting snapshots: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshots written to %s\n", *exportDir)
		os.Exit(0)
	}

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < 40 {
		fmt.Println("Terminal is too narrow for the demo (need 40 columns).")
		os.Exit(1)
	}

	a := newApp(th, opts)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())

	var watcher *theme.Watcher
	if *themePath != "" {
		var err error
		watcher, err = theme.Watch(*themePath, func(th theme.Theme) {
			// Send from a goroutine: the initial delivery happens before
			// the program loop is running.
			go p.Send(themeMsg{theme: th})
		})
		if err != nil {
			fmt.Printf("Error watching theme: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// runForm replaces the size/shape/emphasis flags with an interactive
// picker.
func runForm(size, shape, emphasis *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Size").
				Options(huh.NewOptions("xs", "sm", "md", "lg", "xl")...).
				Value(size),
			huh.NewSelect[string]().
				Title("Shape").
				Options(huh.NewOptions("round", "square")...).
				Value(shape),
			huh.NewSelect[string]().
				Title("Emphasis").
				Options(huh.NewOptions("filled", "tonal", "elevated", "outlined", "text")...).
				Value(emphasis),
		),
	).Run()
}

// exportSnapshots writes resting, pressed and menu-open geometry for the
// configured button.
func exportSnapshots(th theme.Theme, opts splitbutton.Options, dir string, dark bool) error {
	states := map[string]geometry.State{
		"resting": {},
		"pressed": {TrailingPressed: true},
		"open":    {MenuOpen: true},
	}
	for name, st := range states {
		snap := export.Build(th, export.Config{
			Size:      opts.Size,
			Shape:     opts.Shape,
			Emphasis:  opts.Emphasis,
			State:     st,
			Direction: opts.Direction,
			Alignment: opts.TrailingAlignment,
			Label:     opts.Label,
			HasIcon:   opts.LeadingIcon != "",
			Dark:      dark,
		})
		prefix := fmt.Sprintf("%s-%s-%s-%s", opts.Size, opts.Shape, opts.Emphasis, name)
		if err := export.WriteFiles(dir, prefix, snap); err != nil {
			return err
		}
	}
	return nil
}
