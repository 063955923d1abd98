package swipe

import "math"

// catalog is the derived set of valid rest offsets and travel bounds for a
// row. Pure function of configuration; never mutated after construction.
type catalog struct {
	// snapPoints holds every valid rest offset in tie-break order: negated
	// left points, then right points, then the implicit 0.
	snapPoints []float64

	minOffset float64
	maxOffset float64

	maxSnapLeft  float64 // extreme left rest offset, <= 0
	maxSnapRight float64 // extreme right rest offset, >= 0
}

// newCatalog derives the snap catalog. Either side may be empty: that side
// keeps a zero travel bound and cannot rest anywhere but 0.
func newCatalog(left, right []float64, overSwipe float64) catalog {
	c := catalog{snapPoints: make([]float64, 0, len(left)+len(right)+1)}
	for _, p := range left {
		c.snapPoints = append(c.snapPoints, -p)
		if -p < c.maxSnapLeft {
			c.maxSnapLeft = -p
		}
	}
	for _, p := range right {
		c.snapPoints = append(c.snapPoints, p)
		if p > c.maxSnapRight {
			c.maxSnapRight = p
		}
	}
	c.snapPoints = append(c.snapPoints, 0)

	// Overswipe only extends travel past a real snap point. A side with no
	// snap points stays pinned at 0 so it cannot be pulled open at all.
	c.minOffset = c.maxSnapLeft
	if c.maxSnapLeft < 0 {
		c.minOffset -= overSwipe
	}
	c.maxOffset = c.maxSnapRight
	if c.maxSnapRight > 0 {
		c.maxOffset += overSwipe
	}
	return c
}

// nearest returns the snap point closest to v. Exact ties resolve to the
// earliest entry in enumeration order.
func (c catalog) nearest(v float64) float64 {
	best := 0.0
	bestDist := math.Inf(1)
	for _, s := range c.snapPoints {
		if d := math.Abs(v - s); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// clamp bounds a raw drag offset to the travel range.
func (c catalog) clamp(v float64) float64 {
	if v < c.minOffset {
		return c.minOffset
	}
	if v > c.maxOffset {
		return c.maxOffset
	}
	return v
}
