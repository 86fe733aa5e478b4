package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/uiforge/splitbutton/pkg/geometry"
)

// WriteSVG renders the snapshot as an SVG document.
func WriteSVG(w io.Writer, snap Snapshot) error {
	// svgo writes directly to w; wrap it to surface write errors, which
	// svgo itself swallows.
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(snap.Width)), int(math.Ceil(snap.Height)))

	for _, seg := range []SegmentBox{snap.Leading, snap.Trailing} {
		style := segmentFillStyle(snap)
		canvas.Path(roundedRectPath(seg.Rect, seg.Radii), style)
	}

	if snap.Label != "" || !snap.HasIcon {
		canvas.Text(int(snap.LabelX), int(snap.LabelY+4), snap.Label,
			fmt.Sprintf(`font-family="sans-serif" font-size="13" fill="%s"`, snap.Text))
	}
	if snap.HasIcon {
		r := snap.IconBlock
		canvas.Circle(int(r.X+r.W/2), int(r.Y+r.H/2), int(r.H/2),
			fmt.Sprintf(`fill="none" stroke="%s" stroke-width="1.5"`, snap.Text))
	}

	canvas.Path(chevronPath(snap), fmt.Sprintf(`fill="%s"`, snap.Text))
	canvas.End()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func segmentFillStyle(snap Snapshot) string {
	var parts []string
	if snap.Fill != "" {
		parts = append(parts, fmt.Sprintf(`fill="%s"`, snap.Fill))
	} else {
		parts = append(parts, `fill="none"`)
	}
	if snap.Border != "" {
		parts = append(parts, fmt.Sprintf(`stroke="%s" stroke-width="1"`, snap.Border))
	}
	if snap.Elevation > 0 {
		parts = append(parts, fmt.Sprintf(`filter="drop-shadow(0 %.1f %.1f rgba(0,0,0,0.25))"`,
			snap.Elevation, 2*snap.Elevation))
	}
	return strings.Join(parts, " ")
}

// roundedRectPath emits a clockwise path with an independent radius per
// physical corner.
func roundedRectPath(r geometry.Rect, radii geometry.CornerRadii) string {
	// The snapshot's rects are already physical; start corners were
	// placed by Build, so resolve as LTR.
	tl, tr, br, bl := radii.Physical(geometry.LTR)

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f ", r.X+tl, r.Y)
	fmt.Fprintf(&b, "H%.2f ", r.X+r.W-tr)
	if tr > 0 {
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0 1 %.2f,%.2f ", tr, tr, r.X+r.W, r.Y+tr)
	}
	fmt.Fprintf(&b, "V%.2f ", r.Y+r.H-br)
	if br > 0 {
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0 1 %.2f,%.2f ", br, br, r.X+r.W-br, r.Y+r.H)
	}
	fmt.Fprintf(&b, "H%.2f ", r.X+bl)
	if bl > 0 {
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0 1 %.2f,%.2f ", bl, bl, r.X, r.Y+r.H-bl)
	}
	fmt.Fprintf(&b, "V%.2f ", r.Y+tl)
	if tl > 0 {
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0 1 %.2f,%.2f ", tl, tl, r.X+tl, r.Y)
	}
	b.WriteString("Z")
	return b.String()
}

// chevronPath draws the menu indicator triangle, rotated by the current
// turn angle around its center.
func chevronPath(snap Snapshot) string {
	s := snap.ChevronSize
	pts := [][2]float64{
		{-s / 2, -s / 4},
		{s / 2, -s / 4},
		{0, s / 4},
	}
	sin, cos := math.Sincos(snap.ChevronAngle)

	var b strings.Builder
	for i, p := range pts {
		x := snap.ChevronX + p[0]*cos - p[1]*sin
		y := snap.ChevronY + p[0]*sin + p[1]*cos
		if i == 0 {
			fmt.Fprintf(&b, "M%.2f,%.2f ", x, y)
		} else {
			fmt.Fprintf(&b, "L%.2f,%.2f ", x, y)
		}
	}
	b.WriteString("Z")
	return b.String()
}
