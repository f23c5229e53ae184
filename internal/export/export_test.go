package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

func testScene() render.Scene {
	return render.Scene{
		Paths: []render.Shape{{Segments: []geom.Cubic{
			{P0: geom.Pt(20, 20), P1: geom.Pt(20, 60), P2: geom.Pt(80, 60), P3: geom.Pt(80, 20)},
			{P0: geom.Pt(80, 20), P1: geom.Pt(80, -20), P2: geom.Pt(140, -20), P3: geom.Pt(140, 20)},
		}}},
		Selected: 0,
		Current:  render.Shape{Trailing: []geom.Point{geom.Pt(200, 100)}},
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ok   bool
	}{
		{"board.pdf", PDF, true},
		{"dir/Board.PNG", PNG, true},
		{"out.svg", SVG, true},
		{"out.jpg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.name)
		if !tt.ok {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestPage(t *testing.T) {
	assert.Equal(t, state.Rect{Width: 640, Height: 480}, Page(render.Scene{Selected: -1}, 640, 480))
	assert.Equal(t,
		state.Rect{X: 10, Y: -30, Width: 200, Height: 140},
		Page(testScene(), 640, 480))
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	sc := testScene()
	require.NoError(t, Export(&buf, PDF, sc, render.DefaultStyle(), Page(sc, 0, 0)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportPNG(t *testing.T) {
	var buf bytes.Buffer
	sc := testScene()
	page := Page(sc, 0, 0)
	st := render.DefaultStyle()
	require.NoError(t, Export(&buf, PNG, sc, st, page))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 140, img.Bounds().Dy())

	// marker centre of the in-progress point at (200,100)
	got := color.NRGBAModel.Convert(img.At(190, 130)).(color.NRGBA)
	assert.Equal(t, st.MarkerColor, got)
	// far corner stays blank
	got = color.NRGBAModel.Convert(img.At(199, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, got)
}

func TestExportSVG(t *testing.T) {
	var buf bytes.Buffer
	sc := testScene()
	require.NoError(t, Export(&buf, SVG, sc, render.DefaultStyle(), Page(sc, 0, 0)))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 9, strings.Count(out, "<circle"))
	assert.Contains(t, out, "stroke:#db90de")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	sc := testScene()
	for _, f := range Formats {
		path := filepath.Join(dir, "board."+string(f))
		require.NoError(t, ExportFile(path, sc, render.DefaultStyle(), Page(sc, 0, 0)))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), f)
	}
	assert.Error(t, ExportFile(filepath.Join(dir, "board.gif"), sc, render.DefaultStyle(), state.Rect{}))
}
