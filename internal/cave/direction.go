package cave

// Direction is one of the nine screen-space directions a creature, the
// player, or a rolling stone can face or move in. Values are laid out in
// clockwise compass order starting at Up so that +1/-1 and the rotation
// tables below are simple modular arithmetic over the eight non-still
// directions.
type Direction uint8

const (
	Still Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft

	directionCount
)

func (d Direction) String() string {
	switch d {
	case Still:
		return "Still"
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	default:
		return "Direction(?)"
	}
}

// dx/dy are unit displacements for each direction; Still moves nowhere.
var dx = [directionCount]int{0, 0, 1, 1, 1, 0, -1, -1, -1}
var dy = [directionCount]int{0, -1, -1, 0, 1, 1, 1, 0, -1}

// Delta returns the unit displacement of d.
func (d Direction) Delta() (int, int) {
	return dx[d], dy[d]
}

// Twice returns the two-cell displacement of d, used by rules that peek
// two cells ahead (chasing stones, teleporter scans, hammer strikes).
func (d Direction) Twice() (int, int) {
	x, y := d.Delta()
	return x * 2, y * 2
}

// IsDiagonal reports whether d has both a horizontal and a vertical
// component.
func (d Direction) IsDiagonal() bool {
	switch d {
	case UpRight, DownRight, DownLeft, UpLeft:
		return true
	default:
		return false
	}
}

// HorizontalComponent rectifies a diagonal direction down to its horizontal
// part; Up, Down and Still pass through unchanged. Used when a cave's
// policy disables diagonal player movement (§4.2).
func (d Direction) HorizontalComponent() Direction {
	switch d {
	case UpRight, DownRight:
		return Right
	case UpLeft, DownLeft:
		return Left
	default:
		return d
	}
}

// rotate45 and rotate90 are expressed as index offsets into the eight
// non-still directions that ring Still; Still always maps to itself.
func rotate(d Direction, steps int) Direction {
	if d == Still {
		return Still
	}
	idx := int(d) - 1
	idx = ((idx+steps)%8 + 8) % 8
	return Direction(idx + 1)
}

// CW45 rotates d by 45 degrees clockwise on screen (y grows down).
func (d Direction) CW45() Direction { return rotate(d, 1) }

// CCW45 rotates d by 45 degrees counter-clockwise on screen.
func (d Direction) CCW45() Direction { return rotate(d, -1) }

// CW90 rotates d by 90 degrees clockwise on screen.
func (d Direction) CW90() Direction { return rotate(d, 2) }

// CCW90 rotates d by 90 degrees counter-clockwise on screen.
func (d Direction) CCW90() Direction { return rotate(d, -2) }

// Opposite returns the direction facing exactly away from d.
func (d Direction) Opposite() Direction { return rotate(d, 4) }

// Package-level rotation tables, exposed the way spec.md §3 describes them
// (ccw_45[d], cw_45[d], ccw_90[d], cw_90[d], opposite[d]) for callers that
// prefer table lookups over method calls.
var (
	ccw45    [directionCount]Direction
	cw45     [directionCount]Direction
	ccw90    [directionCount]Direction
	cw90     [directionCount]Direction
	opposite [directionCount]Direction
)

func init() {
	for d := Direction(0); d < directionCount; d++ {
		ccw45[d] = d.CCW45()
		cw45[d] = d.CW45()
		ccw90[d] = d.CCW90()
		cw90[d] = d.CW90()
		opposite[d] = d.Opposite()
	}
}
