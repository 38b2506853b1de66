package alphabeta

import (
	"fmt"

	"github.com/domino14/tictactoe/board"
)

// nodeValue is the score of a node. known is false until the score has been
// computed, either directly or from the node's children.
type nodeValue struct {
	value int
	known bool
}

func (nv nodeValue) String() string {
	if !nv.known {
		return "<val: unknown>"
	}
	return fmt.Sprintf("<val: %v>", nv.value)
}

// A GameNode is one board state reached during the search. Children are
// owned exclusively by their parent and are dropped as soon as the parent
// has backed up their score.
type GameNode struct {
	board *board.Board
	// move is the placement that produced this node. The root has none.
	move    board.Coord
	hasMove bool

	heuristicValue nodeValue
	children       []*GameNode
	// best is only set on the root of a search.
	best *GameNode
}

func newRootNode(b *board.Board) *GameNode {
	return &GameNode{board: b.Copy()}
}

// newChildNode copies the parent's board and places the mover's token.
func newChildNode(parent *board.Board, c board.Coord, xToMove bool) *GameNode {
	cp := parent.Copy()
	cp.Place(xToMove, c.Col, c.Row)
	return &GameNode{board: cp, move: c, hasMove: true}
}

func (g *GameNode) setValue(v int) {
	g.heuristicValue = nodeValue{value: v, known: true}
}

// Value panics if the node has not been scored yet.
func (g *GameNode) Value() int {
	if !g.heuristicValue.known {
		panic("alphabeta: value read from unscored node " + g.String())
	}
	return g.heuristicValue.value
}

// release drops the board snapshot and, for anything but the root, the
// children.
func (g *GameNode) release(isRoot bool) {
	g.board = nil
	if !isRoot {
		g.children = nil
	}
}

func (g *GameNode) String() string {
	if !g.hasMove {
		return fmt.Sprintf("<gamenode (root) heuristicVal %v>", g.heuristicValue)
	}
	return fmt.Sprintf("<gamenode move %v, heuristicVal %v>", g.move, g.heuristicValue)
}
