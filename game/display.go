package game

import (
	"fmt"
	"strings"

	"github.com/domino14/tictactoe/board"
)

func describe(token board.Cell) string {
	if token == HumanToken {
		return token.String() + " (you)"
	}
	return token.String() + " (A.I.)"
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	sb.WriteString("\n")
	if g.Playing() {
		fmt.Fprintf(&sb, "Turn %d, %s to move. A.I. depth %d\n",
			g.Turn()+1, describe(g.TokenOnTurn()), g.depth)
		return sb.String()
	}
	sb.WriteString(g.ResultText() + "\n")
	return sb.String()
}

// ResultText describes how the game ended.
func (g *Game) ResultText() string {
	if g.Playing() {
		return "The game is still going."
	}
	if w := g.Winner(); w != board.Empty {
		return describe(w) + " wins!"
	}
	return "It's a draw."
}

// HistoryText lists the moves played so far.
func (g *Game) HistoryText() string {
	var sb strings.Builder
	for i, t := range g.history {
		who := "human"
		if t.Computer {
			who = "A.I."
		}
		fmt.Fprintf(&sb, "%2d: %s %s (%s)\n", i+1, t.Token, t.Move, who)
	}
	return sb.String()
}
