// Package export renders a board scene to PDF, PNG or SVG.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

type Format string

const (
	PDF Format = "pdf"
	PNG Format = "png"
	SVG Format = "svg"
)

// Formats lists the supported formats.
var Formats = []Format{PDF, PNG, SVG}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", errors.Errorf("unsupported export format %q", ext)
}

// Page returns the exported area: the padded bounds of every point in the
// scene, or a width x height page at the origin for an empty scene.
func Page(sc render.Scene, width, height float64) state.Rect {
	paths := make([]*state.Path, 0, len(sc.Paths)+1)
	for _, sh := range sc.Paths {
		paths = append(paths, &state.Path{Points: sh.Points()})
	}
	paths = append(paths, &state.Path{Points: sc.Current.Points()})
	if r, ok := state.Bounds(paths...); ok {
		return r
	}
	return state.Rect{Width: width, Height: height}
}

// Export draws sc onto a page covering page and writes it to w.
func Export(w io.Writer, f Format, sc render.Scene, st render.Style, page state.Rect) error {
	origin := geom.Pt(page.X, page.Y)
	switch f {
	case PDF:
		s := newPDFSurface(page.Width, page.Height, origin)
		render.Draw(s, st, sc)
		return s.writeTo(w)
	case PNG:
		s := newPNGSurface(page.Width, page.Height, origin)
		render.Draw(s, st, sc)
		return s.writeTo(w)
	case SVG:
		s := newSVGSurface(w, page.Width, page.Height, origin)
		render.Draw(s, st, sc)
		return s.end()
	}
	return errors.Errorf("unsupported export format %q", f)
}

// ExportFile writes sc to path in the format given by its extension.
func ExportFile(path string, sc render.Scene, st render.Style, page state.Rect) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing export file")
		}
	}()
	return errors.Wrapf(Export(file, f, sc, st, page), "exporting %s", f)
}
