package board

import "fmt"

// A Cell is the content of a single square: Empty, X or O.
type Cell byte

const (
	Empty Cell = ' '
	X     Cell = 'X'
	O     Cell = 'O'
)

func (c Cell) String() string {
	return string(rune(c))
}

// TokenFor returns X for the maximizing side and O otherwise.
func TokenFor(xToMove bool) Cell {
	if xToMove {
		return X
	}
	return O
}

// Coord is a (column, row) position on the board.
type Coord struct {
	Col int
	Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}
