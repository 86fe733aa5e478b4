// Package theme provides the Material color roles the split button draws
// with, as terminal-adaptive colors. The baseline scheme follows the
// Material 3 reference palette; individual roles can be overridden from a
// YAML file and hot-reloaded while a program runs.
package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds the color roles consumed by the geometry resolver. Each
// role adapts to the terminal's light or dark background.
type Theme struct {
	Primary              lipgloss.AdaptiveColor
	OnPrimary            lipgloss.AdaptiveColor
	SecondaryContainer   lipgloss.AdaptiveColor
	OnSecondaryContainer lipgloss.AdaptiveColor
	SurfaceContainerHigh lipgloss.AdaptiveColor
	OnSurface            lipgloss.AdaptiveColor
	Outline              lipgloss.AdaptiveColor
}

// Baseline returns the Material 3 baseline scheme.
func Baseline() Theme {
	return Theme{
		Primary:              lipgloss.AdaptiveColor{Light: "#6750A4", Dark: "#D0BCFF"},
		OnPrimary:            lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#381E72"},
		SecondaryContainer:   lipgloss.AdaptiveColor{Light: "#E8DEF8", Dark: "#4A4458"},
		OnSecondaryContainer: lipgloss.AdaptiveColor{Light: "#1D192B", Dark: "#E8DEF8"},
		SurfaceContainerHigh: lipgloss.AdaptiveColor{Light: "#ECE6F0", Dark: "#2B2930"},
		OnSurface:            lipgloss.AdaptiveColor{Light: "#1D1B20", Dark: "#E6E1E5"},
		Outline:              lipgloss.AdaptiveColor{Light: "#79747E", Dark: "#938F99"},
	}
}

// fileColor is one role override in a theme file. Either variant may be
// omitted; the baseline value for that variant is kept.
type fileColor struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type fileScheme struct {
	Primary              *fileColor `yaml:"primary"`
	OnPrimary            *fileColor `yaml:"on_primary"`
	SecondaryContainer   *fileColor `yaml:"secondary_container"`
	OnSecondaryContainer *fileColor `yaml:"on_secondary_container"`
	SurfaceContainerHigh *fileColor `yaml:"surface_container_high"`
	OnSurface            *fileColor `yaml:"on_surface"`
	Outline              *fileColor `yaml:"outline"`
}

// Load reads a YAML theme file and applies its overrides on top of the
// baseline scheme.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides from data on top of the baseline scheme.
func Parse(data []byte) (Theme, error) {
	var fs fileScheme
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return Theme{}, fmt.Errorf("parse theme file: %w", err)
	}

	th := Baseline()
	apply(&th.Primary, fs.Primary)
	apply(&th.OnPrimary, fs.OnPrimary)
	apply(&th.SecondaryContainer, fs.SecondaryContainer)
	apply(&th.OnSecondaryContainer, fs.OnSecondaryContainer)
	apply(&th.SurfaceContainerHigh, fs.SurfaceContainerHigh)
	apply(&th.OnSurface, fs.OnSurface)
	apply(&th.Outline, fs.Outline)
	return th, nil
}

func apply(role *lipgloss.AdaptiveColor, override *fileColor) {
	if override == nil {
		return
	}
	if override.Light != "" {
		role.Light = override.Light
	}
	if override.Dark != "" {
		role.Dark = override.Dark
	}
}
