package splitbutton

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

// dpPerCell is the horizontal density used to project dp metrics onto
// terminal cells. 8dp per cell keeps the xs..xl range distinguishable
// without making xl absurd.
const dpPerCell = 8.0

// maxLabelCells caps the flexible label slot before ellipsis truncation.
const maxLabelCells = 24

func dpToCells(dp float64) int {
	c := int(math.Round(dp / dpPerCell))
	if c < 0 {
		return 0
	}
	return c
}

// verticalPad projects the control height onto extra cell padding:
// xs/sm stay one line, md/lg get one padded line, xl two.
func verticalPad(row tokens.Row) int {
	return int(row.Height) / 56
}

// chevronGlyph is the menu indicator. Terminal cells cannot animate the
// half-turn, so the glyph flips at the turn boundary; graphical hosts use
// geometry.ChevronTurns for the continuous value.
func chevronGlyph(menuOpen bool) string {
	if menuOpen {
		return "▴"
	}
	return "▾"
}

// segmentBorder approximates the segment's silhouette in cells: corner
// radii past a quarter of the height read as round, anything lower as
// square.
func segmentBorder(radii geometry.CornerRadii, height float64) lipgloss.Border {
	maxR := math.Max(
		math.Max(radii.TopStart, radii.BottomStart),
		math.Max(radii.TopEnd, radii.BottomEnd),
	)
	if maxR >= height/4 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// truncateLabel fits label into the flexible slot, ellipsizing overflow.
func truncateLabel(label string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	return runewidth.Truncate(label, maxCells, "…")
}

// segmentStyle builds the base style both segments share.
func segmentStyle(c geometry.Colors, padV int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(c.Foreground).
		Padding(padV, 0)
	if _, transparent := c.Container.(lipgloss.NoColor); !transparent {
		s = s.Background(c.Container)
	}
	return s
}
