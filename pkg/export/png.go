package export

import (
	"fmt"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/uiforge/splitbutton/pkg/geometry"
)

// WritePNG renders the snapshot as a PNG image at 1px per dp.
func WritePNG(w io.Writer, snap Snapshot) error {
	dc := gg.NewContext(int(math.Ceil(snap.Width)), int(math.Ceil(snap.Height)))

	for _, seg := range []SegmentBox{snap.Leading, snap.Trailing} {
		if snap.Elevation > 0 {
			shadow := seg.Rect
			shadow.Y += snap.Elevation
			tracePath(dc, shadow, seg.Radii)
			dc.SetRGBA(0, 0, 0, 0.25)
			dc.Fill()
		}

		tracePath(dc, seg.Rect, seg.Radii)
		if snap.Fill != "" {
			dc.SetHexColor(snap.Fill)
			if snap.Border != "" {
				dc.FillPreserve()
			} else {
				dc.Fill()
			}
		}
		if snap.Border != "" {
			dc.SetHexColor(snap.Border)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
	}

	dc.SetHexColor(snap.Text)
	if snap.Label != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.DrawStringAnchored(snap.Label, snap.LabelX, snap.LabelY, 0, 0.35)
	}
	if snap.HasIcon {
		r := snap.IconBlock
		dc.SetLineWidth(1.5)
		dc.DrawCircle(r.X+r.W/2, r.Y+r.H/2, r.H/2)
		dc.Stroke()
	}
	drawChevron(dc, snap)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// tracePath traces a clockwise rounded rect with per-corner radii onto
// the context without filling it.
func tracePath(dc *gg.Context, r geometry.Rect, radii geometry.CornerRadii) {
	tl, tr, br, bl := radii.Physical(geometry.LTR)

	dc.NewSubPath()
	dc.MoveTo(r.X+tl, r.Y)
	dc.LineTo(r.X+r.W-tr, r.Y)
	if tr > 0 {
		dc.DrawArc(r.X+r.W-tr, r.Y+tr, tr, -math.Pi/2, 0)
	}
	dc.LineTo(r.X+r.W, r.Y+r.H-br)
	if br > 0 {
		dc.DrawArc(r.X+r.W-br, r.Y+r.H-br, br, 0, math.Pi/2)
	}
	dc.LineTo(r.X+bl, r.Y+r.H)
	if bl > 0 {
		dc.DrawArc(r.X+bl, r.Y+r.H-bl, bl, math.Pi/2, math.Pi)
	}
	dc.LineTo(r.X, r.Y+tl)
	if tl > 0 {
		dc.DrawArc(r.X+tl, r.Y+tl, tl, math.Pi, 3*math.Pi/2)
	}
	dc.ClosePath()
}

func drawChevron(dc *gg.Context, snap Snapshot) {
	s := snap.ChevronSize
	dc.Push()
	dc.RotateAbout(snap.ChevronAngle, snap.ChevronX, snap.ChevronY)
	dc.MoveTo(snap.ChevronX-s/2, snap.ChevronY-s/4)
	dc.LineTo(snap.ChevronX+s/2, snap.ChevronY-s/4)
	dc.LineTo(snap.ChevronX, snap.ChevronY+s/4)
	dc.ClosePath()
	dc.Fill()
	dc.Pop()
}
