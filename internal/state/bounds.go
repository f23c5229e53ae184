package state

// BoundsPadding is the margin added around the control points by Bounds.
const BoundsPadding = 10

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds returns the padded bounding box of every control point of the
// given paths. The second result is false when there are no points.
//
// Control points bound a cubic Bézier (convex hull property), so the box
// also contains every rendered curve.
func Bounds(paths ...*Path) (Rect, bool) {
	var minX, minY, maxX, maxY float64
	found := false
	for _, p := range paths {
		if p == nil {
			continue
		}
		for _, pt := range p.Points {
			if !found {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				found = true
				continue
			}
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
	}
	if !found {
		return Rect{}, false
	}
	return Rect{
		X:      minX - BoundsPadding,
		Y:      minY - BoundsPadding,
		Width:  maxX - minX + 2*BoundsPadding,
		Height: maxY - minY + 2*BoundsPadding,
	}, true
}
