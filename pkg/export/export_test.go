package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uiforge/splitbutton/pkg/geometry"
	"github.com/uiforge/splitbutton/pkg/theme"
	"github.com/uiforge/splitbutton/pkg/tokens"
)

func testConfig() Config {
	return Config{
		Size:     tokens.SizeSM,
		Shape:    geometry.ShapeRound,
		Emphasis: geometry.EmphasisFilled,
		Label:    "Save",
		HasIcon:  true,
	}
}

func TestBuild_SegmentsMatchResolver(t *testing.T) {
	cfg := testConfig()
	snap := Build(theme.Baseline(), cfg)
	row := tokens.Lookup(cfg.Size)

	if snap.Leading.Rect.H != row.Height || snap.Trailing.Rect.H != row.Height {
		t.Errorf("segment heights %v/%v, want %v", snap.Leading.Rect.H, snap.Trailing.Rect.H, row.Height)
	}
	wantTrailing := row.TrailingLeftInnerPadding + row.TrailingSegmentWidth + row.RightOuterPadding
	if snap.Trailing.Rect.W != wantTrailing {
		t.Errorf("trailing width %v, want %v", snap.Trailing.Rect.W, wantTrailing)
	}
	if snap.Fill == "" {
		t.Error("filled emphasis should carry a container fill")
	}
	if snap.Border != "" {
		t.Error("filled emphasis should not carry a border")
	}

	gap := snap.Trailing.Rect.X - (snap.Leading.Rect.X + snap.Leading.Rect.W)
	if gap != geometry.SegmentGap(cfg.Emphasis) {
		t.Errorf("segment gap %v, want %v", gap, geometry.SegmentGap(cfg.Emphasis))
	}
}

func TestBuild_CircleMorphSnapshot(t *testing.T) {
	cfg := testConfig()
	cfg.Size = tokens.SizeMD
	cfg.State = geometry.State{MenuOpen: true}
	snap := Build(theme.Baseline(), cfg)
	row := tokens.Lookup(tokens.SizeMD)

	if snap.Trailing.Rect.W != row.Height {
		t.Errorf("circle-morphed trailing width %v, want height %v", snap.Trailing.Rect.W, row.Height)
	}
	if snap.ChevronAngle != math.Pi {
		t.Errorf("open chevron angle %v, want half turn %v", snap.ChevronAngle, math.Pi)
	}
}

func TestBuild_RTLSwapsSegments(t *testing.T) {
	cfg := testConfig()
	cfg.Direction = geometry.RTL
	snap := Build(theme.Baseline(), cfg)
	if snap.Trailing.Rect.X >= snap.Leading.Rect.X {
		t.Error("RTL should place the trailing segment before the leading one")
	}
}

func TestWriteSVG_WellFormed(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Build(theme.Baseline(), testConfig())); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("SVG not well-formed: %v", err)
		}
	}
	if strings.Count(out, "<path") < 3 {
		t.Errorf("expected segment + chevron paths, got:\n%s", out)
	}
	// Per-corner arcs, not a uniform rx attribute.
	if !strings.Contains(out, "A") {
		t.Error("rounded rect path should use arc commands")
	}
}

func TestWriteSVG_OutlinedHasStrokeNoFill(t *testing.T) {
	cfg := testConfig()
	cfg.Emphasis = geometry.EmphasisOutlined
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Build(theme.Baseline(), cfg)); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `fill="none"`) {
		t.Error("outlined emphasis should render transparent containers")
	}
	if !strings.Contains(out, "stroke=") {
		t.Error("outlined emphasis should render a border stroke")
	}
}

func TestWritePNG_DecodesAtCanvasSize(t *testing.T) {
	snap := Build(theme.Baseline(), testConfig())
	var buf bytes.Buffer
	if err := WritePNG(&buf, snap); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != int(math.Ceil(snap.Width)) || b.Dy() != int(math.Ceil(snap.Height)) {
		t.Errorf("image %dx%d, want %vx%v", b.Dx(), b.Dy(), math.Ceil(snap.Width), math.Ceil(snap.Height))
	}
}

func TestWriteFiles_WritesBoth(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFiles(dir, "sm-round-filled", Build(theme.Baseline(), testConfig())); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}
	for _, ext := range []string{".svg", ".png"} {
		info, err := os.Stat(filepath.Join(dir, "sm-round-filled"+ext))
		if err != nil {
			t.Fatalf("missing %s output: %v", ext, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s output is empty", ext)
		}
	}
}
