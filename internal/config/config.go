// Package config loads the board's TOML configuration.
package config

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

type Config struct {
	Canvas Canvas
	Editor Editor
	Style  Style
	Web    Web
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Editor struct {
	HitRadius  float64 `toml:"hit_radius"`
	SampleStep float64 `toml:"sample_step"`
}

// Style holds colors as "#rrggbb" strings.
type Style struct {
	MarkerRadius  float64 `toml:"marker_radius"`
	MarkerColor   string  `toml:"marker_color"`
	PolygonColor  string  `toml:"polygon_color"`
	PolygonWidth  float64 `toml:"polygon_width"`
	CurveColor    string  `toml:"curve_color"`
	SelectedColor string  `toml:"selected_color"`
	CurveWidth    float64 `toml:"curve_width"`
}

type Web struct {
	Listen    string `toml:"listen"`
	Advertise bool   `toml:"advertise"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 1024, Height: 768},
		Editor: Editor{HitRadius: state.DefaultHitRadius, SampleStep: geom.SampleStep},
		Style: Style{
			MarkerRadius:  4,
			MarkerColor:   "#d61818",
			PolygonColor:  "#aeb5bf",
			PolygonWidth:  1,
			CurveColor:    "#2056e8",
			SelectedColor: "#db90de",
			CurveWidth:    1,
		},
		Web: Web{Listen: ":8888"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. Unknown keys are logged and ignored.
func Load(path string, logger hclog.Logger) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if os.IsNotExist(errors.Cause(err)) {
		logger.Info("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

// Validate checks the canvas size and the style colors.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	_, err := c.RenderStyle()
	return err
}

// RenderStyle converts the style section into a render.Style.
func (c Config) RenderStyle() (render.Style, error) {
	st := render.DefaultStyle()
	var err error
	if st.MarkerColor, err = parseColor("marker_color", c.Style.MarkerColor, st.MarkerColor); err != nil {
		return st, err
	}
	if st.PolygonColor, err = parseColor("polygon_color", c.Style.PolygonColor, st.PolygonColor); err != nil {
		return st, err
	}
	if st.CurveColor, err = parseColor("curve_color", c.Style.CurveColor, st.CurveColor); err != nil {
		return st, err
	}
	if st.SelectedColor, err = parseColor("selected_color", c.Style.SelectedColor, st.SelectedColor); err != nil {
		return st, err
	}
	if c.Style.MarkerRadius > 0 {
		st.MarkerRadius = c.Style.MarkerRadius
	}
	if c.Style.PolygonWidth > 0 {
		st.PolygonWidth = c.Style.PolygonWidth
	}
	if c.Style.CurveWidth > 0 {
		st.CurveWidth = c.Style.CurveWidth
	}
	if c.Editor.SampleStep > 0 {
		st.SampleStep = c.Editor.SampleStep
	}
	return st, nil
}

func parseColor(key, s string, def color.NRGBA) (color.NRGBA, error) {
	if s == "" {
		return def, nil
	}
	c, err := render.ParseColor(s)
	if err != nil {
		return def, errors.Wrapf(err, "style.%s", key)
	}
	return c, nil
}
