package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
)

var DefaultConfig = config.DefaultConfig()

func TestHumanFirst(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(DefaultConfig, 9, true)
	is.NoErr(err)
	is.True(g.HumanOnTurn())
	is.Equal(g.TokenOnTurn(), board.X)

	is.NoErr(g.PlayHuman(1, 1))
	is.True(!g.HumanOnTurn())
	is.Equal(g.PlayHuman(0, 0), ErrNotYourTurn)

	c, err := g.PlayComputer()
	is.NoErr(err)
	is.Equal(g.Board().At(c.Col, c.Row), board.O)
	is.Equal(g.Turn(), 2)
	is.True(g.HumanOnTurn())
}

func TestComputerFirstPlaysO(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(DefaultConfig, 2, false)
	is.NoErr(err)
	is.True(!g.HumanOnTurn())
	c, err := g.PlayComputer()
	is.NoErr(err)
	is.Equal(g.Board().At(c.Col, c.Row), board.O)
	is.Equal(g.History()[0], Turn{Token: board.O, Move: c, Computer: true})
}

func TestIllegalMove(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(DefaultConfig, 1, true)
	is.NoErr(err)
	is.Equal(g.PlayHuman(3, 1), ErrIllegalMove)
	is.True(g.HumanOnTurn())
	is.NoErr(g.PlayHuman(0, 0))
	_, err = g.PlayComputer()
	is.NoErr(err)
	is.Equal(g.PlayHuman(0, 0), ErrIllegalMove)
	is.Equal(g.Turn(), 2)
}

func TestFullGameAgainstItselfIsADraw(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(DefaultConfig, 9, true)
	is.NoErr(err)
	for g.Playing() {
		_, err := g.PlayComputer()
		is.NoErr(err)
	}
	is.Equal(g.Winner(), board.Empty)
	is.Equal(g.Turn(), 9)
	is.Equal(g.ResultText(), "It's a draw.")
	_, err = g.PlayComputer()
	is.Equal(err, ErrGameOver)
	is.Equal(g.PlayHuman(0, 0), ErrGameOver)
}

func TestComputerWinsWhenHumanBlunders(t *testing.T) {
	is := is.New(t)
	b, err := board.FromSnapshot("XX OO    ")
	is.NoErr(err)
	g, err := NewGameFromBoard(DefaultConfig, 9, b, false)
	is.NoErr(err)
	_, err = g.PlayComputer()
	is.NoErr(err)
	for g.Playing() {
		if g.HumanOnTurn() {
			// the human plays the first empty square.
			c := g.Board().EmptyCells()[0]
			is.NoErr(g.PlayHuman(c.Col, c.Row))
		} else {
			_, err := g.PlayComputer()
			is.NoErr(err)
		}
	}
	is.Equal(g.Winner(), board.O)
	is.True(strings.Contains(g.ToDisplayText(), "O (A.I.) wins!"))
	// the board passed in is untouched.
	is.Equal(b.Snapshot(), "XX OO    ")
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(DefaultConfig, 4, true)
	is.NoErr(err)
	is.NoErr(g.PlayHuman(2, 2))
	txt := g.ToDisplayText()
	is.True(strings.HasPrefix(txt, "   |   | X\n"))
	is.True(strings.Contains(txt, "Turn 2, O (A.I.) to move. A.I. depth 4"))
	is.Equal(g.HistoryText(), " 1: X 2,2 (human)\n")
}
