package state

// junctionsValid reports whether p has at least two full segments and no
// trailing partial segment.
func junctionsValid(p *Path) bool {
	return len(p.Points) >= 2*SegmentSize && len(p.Points)%SegmentSize == 0
}

// EnforceC0 moves the start of every segment after the first onto the end of
// the previous segment. The previous start positions are lost. Paths with
// fewer than two segments or a partial segment are left alone and false is
// returned.
func EnforceC0(p *Path) bool {
	if !junctionsValid(p) {
		return false
	}
	for i := SegmentSize; i < len(p.Points); i += SegmentSize {
		p.Points[i] = p.Points[i-1]
	}
	return true
}

// EnforceC1 applies C0 at every junction and then mirrors the incoming
// handle: the second control point of the next segment is placed so that
// points[i+1]-points[i] equals points[i-1]-points[i-2]. Junctions are
// processed in ascending order; each depends only on points before it.
func EnforceC1(p *Path) bool {
	if !junctionsValid(p) {
		return false
	}
	pts := p.Points
	for i := SegmentSize; i < len(pts); i += SegmentSize {
		pts[i] = pts[i-1]
		pts[i+1] = pts[i].Add(pts[i-1].Sub(pts[i-2]))
	}
	return true
}
