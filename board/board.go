package board

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// Dim is the width and height of the board.
const Dim = 3

var ErrBadSnapshot = errors.New("a board snapshot must have exactly 9 cells")

// Board is a tic-tac-toe grid indexed [col][row]. Row 0 is the bottom row
// when displayed. Board is a plain value; copying it produces an independent
// snapshot.
type Board struct {
	cells       [Dim][Dim]Cell
	emptySpaces int
}

// NewBoard creates a blank board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// FromSnapshot creates a board from a flat 9-character game state. The cell
// at (col, row) is snapshot[row*3+col]. A space is an empty cell; any other
// byte is stored as-is.
func FromSnapshot(snapshot string) (*Board, error) {
	if len(snapshot) != Dim*Dim {
		return nil, ErrBadSnapshot
	}
	b := &Board{}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			c := Cell(snapshot[row*Dim+col])
			b.cells[col][row] = c
			if c == Empty {
				b.emptySpaces++
			}
		}
	}
	return b, nil
}

// Snapshot is the inverse of FromSnapshot.
func (b *Board) Snapshot() string {
	var sb strings.Builder
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			sb.WriteByte(byte(b.cells[col][row]))
		}
	}
	return sb.String()
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// Clear sets every cell on the board to empty.
func (b *Board) Clear() {
	for col := 0; col < Dim; col++ {
		for row := 0; row < Dim; row++ {
			b.cells[col][row] = Empty
		}
	}
	b.emptySpaces = Dim * Dim
}

func (b *Board) At(col, row int) Cell {
	return b.cells[col][row]
}

func (b *Board) EmptySpaces() int {
	return b.emptySpaces
}

// EmptyCells lists the empty cells, iterating columns in the outer loop and
// rows in the inner loop. Move generation relies on this order.
func (b *Board) EmptyCells() []Coord {
	all := make([]Coord, 0, Dim*Dim)
	for col := 0; col < Dim; col++ {
		for row := 0; row < Dim; row++ {
			all = append(all, Coord{Col: col, Row: row})
		}
	}
	return lo.Filter(all, func(c Coord, _ int) bool {
		return b.cells[c.Col][c.Row] == Empty
	})
}

func inRange(col, row int) bool {
	return col >= 0 && col < Dim && row >= 0 && row < Dim
}

// Place puts a token at (col, row). X is placed if xToMove, else O.
// It returns false and leaves the board untouched if the position is off the
// board or already taken.
func (b *Board) Place(xToMove bool, col, row int) bool {
	if !inRange(col, row) {
		return false
	}
	if b.cells[col][row] != Empty {
		return false
	}
	b.cells[col][row] = TokenFor(xToMove)
	b.emptySpaces--
	return true
}

// winLines are checked in order: rows, then columns, then the two diagonals.
var winLines = [8][3]Coord{
	{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}},
	{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
	{{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 0, Row: 2}},
	{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
	{{Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 2}, {Col: 1, Row: 1}, {Col: 2, Row: 0}},
}

// CheckForWin returns whether somebody has three in a row, and if so, the
// winning token.
func (b *Board) CheckForWin() (bool, Cell) {
	for _, line := range winLines {
		first := b.cells[line[0].Col][line[0].Row]
		if first == Empty {
			continue
		}
		if first == b.cells[line[1].Col][line[1].Row] &&
			first == b.cells[line[2].Col][line[2].Row] {
			return true, first
		}
	}
	return false, Empty
}

func (b *Board) IsFull() bool {
	return b.emptySpaces == 0
}

// IsGameOver reports whether a player has won or the board is full. The
// returned cell is the winner, or Empty for a draw.
func (b *Board) IsGameOver() (bool, Cell) {
	if won, winner := b.CheckForWin(); won {
		return true, winner
	}
	if b.IsFull() {
		return true, Empty
	}
	return false, Empty
}

// ToDisplayText renders the board with row 2 on top and column 0 on the left.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for row := Dim - 1; row >= 0; row-- {
		sb.WriteString(" " + b.cells[0][row].String() +
			" | " + b.cells[1][row].String() +
			" | " + b.cells[2][row].String() + "\n")
		if row > 0 {
			sb.WriteString("-----------\n")
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}
