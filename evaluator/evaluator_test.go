package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/tictactoe/board"
)

func mustBoard(t *testing.T, snapshot string) *board.Board {
	b, err := board.FromSnapshot(snapshot)
	assert.Nil(t, err)
	return b
}

func TestCenterFavorsX(t *testing.T) {
	b := board.NewBoard()
	b.Place(true, 1, 1)
	score := Score(b)
	assert.Greater(t, score, 0)
	// row, column and both diagonals are all open.
	assert.Equal(t, 4, score)
}

func TestScores(t *testing.T) {
	type testcase struct {
		snapshot string
		score    int
	}
	for _, tc := range []testcase{
		{"         ", 0},
		{"XXX      ", 108},
		{"XO       ", 1},
		{"X        ", 3},
		{" X       ", 2},
		{"OOO      ", -108},
	} {
		assert.Equal(t, tc.score, Score(mustBoard(t, tc.snapshot)), tc.snapshot)
	}
}

func TestScoreIsAntisymmetric(t *testing.T) {
	swap := strings.NewReplacer("X", "O", "O", "X")
	for _, snap := range []string{
		"XO  X  O ",
		"XOXXOXOXO",
		"X O O X  ",
		"XX OO    ",
		" X O X O ",
	} {
		b := mustBoard(t, snap)
		mirrored := mustBoard(t, swap.Replace(snap))
		assert.Equal(t, Score(b), -Score(mirrored), snap)
	}
}

func TestBlockedLines(t *testing.T) {
	b := mustBoard(t, "XO  X    ")
	// row 0 contains both an X and an O.
	assert.True(t, RowBlocked(b, 0, 0))
	assert.False(t, ColumnBlocked(b, 0, 0))
	assert.False(t, MainDiagonalBlocked(b, 0, 0))
	// (0,0) is not on the anti-diagonal.
	assert.True(t, AntiDiagonalBlocked(b, 0, 0))
	assert.False(t, AntiDiagonalBlocked(b, 1, 1))
	assert.True(t, ColumnBlocked(b, 1, 1))
	assert.True(t, MainDiagonalBlocked(b, 1, 0))
}

func TestWinBonus(t *testing.T) {
	b := mustBoard(t, "XOOXO X  ")
	won, winner := b.CheckForWin()
	assert.True(t, won)
	assert.Equal(t, board.X, winner)
	assert.Greater(t, Score(b), WinBonus/2)
}
