// Package evaluator scores a tic-tac-toe position. A positive score means
// X is winning, a negative score means O is winning.
//
// Points are awarded for control of a line (row, column or diagonal) that the
// other player has not blocked, and for winning the game outright.
package evaluator

import (
	"github.com/domino14/tictactoe/board"
)

// WinBonus is added to the total of a player with three in a row.
const WinBonus = 100

// open returns true if every cell in the line is empty or owned by piece.
func open(b *board.Board, piece board.Cell, line [board.Dim]board.Coord) bool {
	for _, c := range line {
		at := b.At(c.Col, c.Row)
		if at != board.Empty && at != piece {
			return false
		}
	}
	return true
}

// RowBlocked returns whether the row through (col, row) contains a mark
// other than the one at (col, row).
func RowBlocked(b *board.Board, col, row int) bool {
	return !open(b, b.At(col, row), [board.Dim]board.Coord{{Col: 0, Row: row}, {Col: 1, Row: row}, {Col: 2, Row: row}})
}

// ColumnBlocked is the column counterpart of RowBlocked.
func ColumnBlocked(b *board.Board, col, row int) bool {
	return !open(b, b.At(col, row), [board.Dim]board.Coord{{Col: col, Row: 0}, {Col: col, Row: 1}, {Col: col, Row: 2}})
}

// MainDiagonalBlocked checks the (0,0)-(2,2) diagonal. A cell that is not on
// it counts as blocked.
func MainDiagonalBlocked(b *board.Board, col, row int) bool {
	if col != row {
		return true
	}
	return !open(b, b.At(col, row), [board.Dim]board.Coord{{Col: 0, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 2}})
}

// AntiDiagonalBlocked checks the (0,2)-(2,0) diagonal. A cell that is not on
// it counts as blocked.
func AntiDiagonalBlocked(b *board.Board, col, row int) bool {
	if col+row != board.Dim-1 {
		return true
	}
	return !open(b, b.At(col, row), [board.Dim]board.Coord{{Col: 0, Row: 2}, {Col: 1, Row: 1}, {Col: 2, Row: 0}})
}

var blockers = []func(*board.Board, int, int) bool{
	RowBlocked,
	ColumnBlocked,
	MainDiagonalBlocked,
	AntiDiagonalBlocked,
}

// Score computes the heuristic value of the board.
func Score(b *board.Board) int {
	x, o := 0, 0
	for col := 0; col < board.Dim; col++ {
		for row := 0; row < board.Dim; row++ {
			piece := b.At(col, row)
			if piece == board.Empty {
				continue
			}
			for _, blocked := range blockers {
				if blocked(b, col, row) {
					continue
				}
				if piece == board.X {
					x++
				} else {
					o++
				}
			}
		}
	}
	_, winner := b.CheckForWin()
	if winner == board.X {
		x += WinBonus
	} else if winner == board.O {
		o += WinBonus
	}
	return x - o
}
