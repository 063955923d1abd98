// Package swipe implements a horizontally swipeable list-row primitive.
// A row tracks one signed offset driven by an external drag stream, resolves
// gesture release into a velocity-biased nearest snap point, and settles
// there with a spring animation. Presentation is left to the caller; the row
// only exposes numeric and boolean signals plus open/close control.
package swipe

// Direction identifies which side of a row is open or being addressed.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Change reports a settle completion: which side the row came to rest open
// toward (None when it closed) and the snap distance from the closed
// position.
type Change struct {
	Direction Direction
	SnapPoint float64
}

func directionOf(offset float64) Direction {
	switch {
	case offset < 0:
		return Left
	case offset > 0:
		return Right
	default:
		return None
	}
}
