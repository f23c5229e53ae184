package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BezierBoard/internal/render"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	logger := hclog.NewNullLogger()

	c, err := Load("", logger)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Load(filepath.Join(t.TempDir(), "missing.toml"), logger)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	st, err := c.RenderStyle()
	require.NoError(t, err)
	assert.Equal(t, render.DefaultStyle(), st)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	writeFile(t, path, `
[editor]
hit_radius = 6
sample_step = 5

[style]
curve_color = "#000000"
marker_radius = 3

[web]
listen = "127.0.0.1:9000"
bogus = 1
`)
	c, err := Load(path, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 6.0, c.Editor.HitRadius)
	assert.Equal(t, "127.0.0.1:9000", c.Web.Listen)
	assert.Equal(t, 1024.0, c.Canvas.Width, "unset keys keep defaults")

	st, err := c.RenderStyle()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0xff}, st.CurveColor)
	assert.Equal(t, 3.0, st.MarkerRadius)
	assert.Equal(t, 5.0, st.SampleStep)
	assert.Equal(t, render.DefaultStyle().SelectedColor, st.SelectedColor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[style\n")
	_, err := Load(bad, hclog.NewNullLogger())
	assert.Error(t, err)

	badColor := filepath.Join(dir, "color.toml")
	writeFile(t, badColor, "[style]\nmarker_color = \"red\"\n")
	_, err = Load(badColor, hclog.NewNullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style.marker_color")

	for _, body := range []string{
		"[canvas]\nwidth = 0\n",
		"[canvas]\nheight = -5\n",
	} {
		badCanvas := filepath.Join(dir, "canvas.toml")
		writeFile(t, badCanvas, body)
		_, err = Load(badCanvas, hclog.NewNullLogger())
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), "canvas size")
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	c := Default()
	c.Canvas.Width = 0
	assert.Error(t, c.Validate())

	c = Default()
	c.Style.CurveColor = "#12"
	assert.Error(t, c.Validate())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	writeFile(t, path, "[style]\nmarker_radius = 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, hclog.NewNullLogger(), func(c Config) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	// the watcher may not be registered yet; keep writing until it notices
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-got:
			// a write can be seen between truncate and fill
			if c.Style.MarkerRadius != 7 {
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case <-tick.C:
			writeFile(t, path, "[style]\nmarker_radius = 7\n")
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
