package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestFullAfterNinePlacements(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	n := 0
	xToMove := true
	for col := 0; col < Dim; col++ {
		for row := 0; row < Dim; row++ {
			is.True(!b.IsFull())
			is.True(b.Place(xToMove, col, row))
			xToMove = !xToMove
			n++
			is.Equal(b.EmptySpaces(), Dim*Dim-n)
			is.Equal(b.IsFull(), n == 9)
		}
	}
}

func TestPlaceRejectsWithoutMutation(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.True(b.Place(true, 1, 1))
	before := *b

	is.True(!b.Place(false, 1, 1))
	is.True(!b.Place(false, 3, 0))
	is.True(!b.Place(false, 0, 3))
	is.True(!b.Place(true, -1, 0))
	is.True(!b.Place(true, 0, -1))

	is.Equal(*b, before)
	is.Equal(b.At(1, 1), X)
	is.Equal(b.EmptySpaces(), 8)
}

func TestPlaceToken(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.True(b.Place(false, 2, 0))
	is.Equal(b.At(2, 0), O)
	is.True(b.Place(true, 0, 2))
	is.Equal(b.At(0, 2), X)
}

func TestCheckForWinAllLines(t *testing.T) {
	is := is.New(t)
	type testcase struct {
		snapshot string
		won      bool
		winner   Cell
	}
	for _, tc := range []testcase{
		{"XXX      ", true, X},
		{"   OOO   ", true, O},
		{"      XXX", true, X},
		{"X  X  X  ", true, X},
		{" O  O  O ", true, O},
		{"  X  X  X", true, X},
		{"O   O   O", true, O},
		{"  X X X  ", true, X},
		{"XO OX    ", false, Empty},
		{"         ", false, Empty},
		{"XOXXOOOXX", false, Empty},
	} {
		b, err := FromSnapshot(tc.snapshot)
		is.NoErr(err)
		won, winner := b.CheckForWin()
		is.Equal(won, tc.won)
		is.Equal(winner, tc.winner)
	}
}

func TestIsGameOverDraw(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot("XOXXOXOXO")
	is.NoErr(err)
	is.True(b.IsFull())
	over, winner := b.IsGameOver()
	is.True(over)
	is.Equal(winner, Empty)
}

func TestIsGameOverWinBeforeFull(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot("OO XXX   ")
	is.NoErr(err)
	over, winner := b.IsGameOver()
	is.True(over)
	is.Equal(winner, X)

	b, err = FromSnapshot("OO XX    ")
	is.NoErr(err)
	over, winner = b.IsGameOver()
	is.True(!over)
	is.Equal(winner, Empty)
}

func TestSnapshot(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot(" X  O   Z")
	is.NoErr(err)
	// (col, row) maps to snapshot[row*3+col]
	is.Equal(b.At(1, 0), X)
	is.Equal(b.At(1, 1), O)
	is.Equal(b.At(2, 2), Cell('Z'))
	is.Equal(b.EmptySpaces(), 6)
	is.Equal(b.Snapshot(), " X  O   Z")

	_, err = FromSnapshot("XX")
	is.Equal(err, ErrBadSnapshot)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.Place(true, 0, 0)
	cp := b.Copy()
	is.True(cp.Place(false, 1, 1))
	is.Equal(b.At(1, 1), Empty)
	is.Equal(b.EmptySpaces(), 8)
	is.Equal(cp.EmptySpaces(), 7)
}

func TestEmptyCellsOrder(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot("X   O    ")
	is.NoErr(err)
	cells := b.EmptyCells()
	is.Equal(len(cells), 7)
	is.Equal(cells[0], Coord{Col: 0, Row: 1})
	is.Equal(cells[1], Coord{Col: 0, Row: 2})
	is.Equal(cells[2], Coord{Col: 1, Row: 0})
	is.Equal(cells[3], Coord{Col: 1, Row: 2})
	is.Equal(cells[6], Coord{Col: 2, Row: 2})
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot("XO    O X")
	is.NoErr(err)
	expected := " O |   | X\n" +
		"-----------\n" +
		"   |   |  \n" +
		"-----------\n" +
		" X | O |  \n"
	is.Equal(b.ToDisplayText(), expected)
}

func TestClear(t *testing.T) {
	is := is.New(t)
	b, err := FromSnapshot("XOXXOXOXO")
	is.NoErr(err)
	b.Clear()
	is.Equal(b.EmptySpaces(), 9)
	is.Equal(b.Snapshot(), "         ")
}
