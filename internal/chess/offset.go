package chess

// DefaultMaxRepeats bounds a sliding offset; any value above the board size
// means "until blocked or off the board".
const DefaultMaxRepeats = 100

// Offset is a directional delta. MaxRepeats is how many times it may be
// applied in a row: 1 for single steps, more for sliding moves.
type Offset struct {
	DX, DY     int
	MaxRepeats int
}

// Step creates a single-step offset.
func Step(dx, dy int) Offset {
	return Offset{DX: dx, DY: dy, MaxRepeats: 1}
}

// Slide creates a repeating offset limited only by the board.
func Slide(dx, dy int) Offset {
	return Offset{DX: dx, DY: dy, MaxRepeats: DefaultMaxRepeats}
}

// SlideN creates a repeating offset capped at n applications.
func SlideN(dx, dy, n int) Offset {
	return Offset{DX: dx, DY: dy, MaxRepeats: n}
}

// IsRepeat returns true for offsets that may be applied more than once.
func (o Offset) IsRepeat() bool {
	return o.MaxRepeats > 1
}

// Common offset sets.
var (
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps    = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

func steps(dirs ...[][2]int) []Offset {
	var out []Offset
	for _, set := range dirs {
		for _, d := range set {
			out = append(out, Step(d[0], d[1]))
		}
	}
	return out
}

func slides(dirs ...[][2]int) []Offset {
	var out []Offset
	for _, set := range dirs {
		for _, d := range set {
			out = append(out, Slide(d[0], d[1]))
		}
	}
	return out
}
