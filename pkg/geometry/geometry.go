// Package geometry resolves the split button's render geometry. Every
// function here is pure: given the token row for a size plus the current
// shape, emphasis and interaction state, it returns corner radii, segment
// widths and paddings, chevron placement, and container colors. Nothing
// in this package touches the terminal; hosts (the TUI component, the SVG
// and PNG exporters) consume the resolved values.
package geometry

import "github.com/uiforge/splitbutton/pkg/tokens"

// Shape is the resting-state outer silhouette.
type Shape int

const (
	ShapeRound Shape = iota
	ShapeSquare
)

func (s Shape) String() string {
	if s == ShapeSquare {
		return "square"
	}
	return "round"
}

// ParseShape maps a shape name to its value, defaulting to round.
func ParseShape(name string) Shape {
	if name == "square" {
		return ShapeSquare
	}
	return ShapeRound
}

// Emphasis selects the container/foreground color source and elevation
// eligibility.
type Emphasis int

const (
	EmphasisFilled Emphasis = iota
	EmphasisTonal
	EmphasisElevated
	EmphasisOutlined
	EmphasisText
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisTonal:
		return "tonal"
	case EmphasisElevated:
		return "elevated"
	case EmphasisOutlined:
		return "outlined"
	case EmphasisText:
		return "text"
	default:
		return "filled"
	}
}

// ParseEmphasis maps an emphasis name to its value, defaulting to filled.
func ParseEmphasis(name string) Emphasis {
	switch name {
	case "tonal":
		return EmphasisTonal
	case "elevated":
		return EmphasisElevated
	case "outlined":
		return EmphasisOutlined
	case "text":
		return EmphasisText
	default:
		return EmphasisFilled
	}
}

// TrailingAlignment chooses whether the chevron gets a resting-state
// optical offset toward the divider.
type TrailingAlignment int

const (
	AlignOpticalCenter TrailingAlignment = iota
	AlignGeometricCenter
)

// MenuPosition places the menu relative to the trailing segment.
type MenuPosition int

const (
	MenuBelow MenuPosition = iota
	MenuAbove
)

// Direction is the text direction the start/end corners resolve against.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// State holds the transient interaction flags owned by a component
// instance. All geometry is a function of configuration plus this struct.
type State struct {
	LeadingPressed  bool
	TrailingPressed bool
	MenuOpen        bool
}

// CornerRadii is a direction-relative radius quadruple. Start/end resolve
// to physical left/right only at render time.
type CornerRadii struct {
	TopStart    float64
	BottomStart float64
	TopEnd      float64
	BottomEnd   float64
}

// uniform builds a radius quadruple with all four corners equal.
func uniform(r float64) CornerRadii {
	return CornerRadii{TopStart: r, BottomStart: r, TopEnd: r, BottomEnd: r}
}

// Uniform reports whether all four corners share one radius.
func (c CornerRadii) Uniform() bool {
	return c.TopStart == c.BottomStart && c.TopStart == c.TopEnd && c.TopStart == c.BottomEnd
}

// Physical resolves the quadruple to physical corners for the given text
// direction, in topLeft, topRight, bottomRight, bottomLeft order.
func (c CornerRadii) Physical(dir Direction) (topLeft, topRight, bottomRight, bottomLeft float64) {
	if dir == RTL {
		return c.TopEnd, c.TopStart, c.BottomStart, c.BottomEnd
	}
	return c.TopStart, c.TopEnd, c.BottomEnd, c.BottomStart
}

// outerRadius picks the resting outer radius for the shape.
func outerRadius(row tokens.Row, shape Shape) float64 {
	if shape == ShapeSquare {
		return row.OuterRadiusSquare
	}
	return row.OuterRadiusRound
}

// LeadingRadii resolves the leading segment's corner quadruple. At rest
// the start corners carry the outer radius and the end corners the inner
// radius; a press collapses all four to the pressed radius.
func LeadingRadii(row tokens.Row, shape Shape, st State) CornerRadii {
	if st.LeadingPressed {
		return uniform(row.PressedRadius)
	}
	outer := outerRadius(row, shape)
	return CornerRadii{
		TopStart:    outer,
		BottomStart: outer,
		TopEnd:      row.InnerCornerRadius,
		BottomEnd:   row.InnerCornerRadius,
	}
}
