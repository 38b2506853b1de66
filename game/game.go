// Package game holds the state of a single game of tic-tac-toe between a
// human and the A.I. The human always plays X and the A.I. always plays O;
// either side may move first.
package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/alphabeta"
	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
)

var (
	ErrGameOver    = errors.New("the game is over")
	ErrNotYourTurn = errors.New("it is not your turn")
	ErrIllegalMove = errors.New("that square is off the board or already taken")
)

const (
	HumanToken    = board.X
	ComputerToken = board.O
)

// A Turn is one move of the game.
type Turn struct {
	Token    board.Cell
	Move     board.Coord
	Computer bool
}

type Game struct {
	uid     string
	board   *board.Board
	xOnTurn bool
	depth   int
	solver  *alphabeta.Solver
	history []Turn
}

// NewGame starts a game. humanFirst decides who places the first token.
func NewGame(cfg *config.Config, depth int, humanFirst bool) (*Game, error) {
	solver := &alphabeta.Solver{}
	if err := solver.Init(cfg); err != nil {
		return nil, err
	}
	g := &Game{
		uid:    uuid.NewString(),
		board:  board.NewBoard(),
		depth:  depth,
		solver: solver,
	}
	g.xOnTurn = humanFirst
	log.Debug().Str("uid", g.uid).Int("depth", depth).Bool("human-first", humanFirst).
		Msg("new-game")
	return g, nil
}

// NewGameFromBoard starts a game from a position. xOnTurn decides which token
// is placed next.
func NewGameFromBoard(cfg *config.Config, depth int, b *board.Board, xOnTurn bool) (*Game, error) {
	g, err := NewGame(cfg, depth, xOnTurn)
	if err != nil {
		return nil, err
	}
	g.board = b.Copy()
	return g, nil
}

func (g *Game) Uid() string {
	return g.uid
}

// Board returns the game's board. Callers must not modify it; use PlayMove.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) XOnTurn() bool {
	return g.xOnTurn
}

// TokenOnTurn is the token that will be placed next.
func (g *Game) TokenOnTurn() board.Cell {
	return board.TokenFor(g.xOnTurn)
}

func (g *Game) HumanOnTurn() bool {
	return g.TokenOnTurn() == HumanToken
}

func (g *Game) Depth() int {
	return g.depth
}

func (g *Game) SetDepth(d int) {
	g.depth = d
}

func (g *Game) Solver() *alphabeta.Solver {
	return g.solver
}

func (g *Game) History() []Turn {
	return g.history
}

func (g *Game) Turn() int {
	return len(g.history)
}

func (g *Game) Playing() bool {
	over, _ := g.board.IsGameOver()
	return !over
}

// Winner returns the winning token, or Empty for a draw or a game that is
// still going.
func (g *Game) Winner() board.Cell {
	_, winner := g.board.IsGameOver()
	return winner
}

// PlayMove places the token of the side on turn at c and passes the turn.
func (g *Game) PlayMove(c board.Coord) error {
	return g.playMove(c, false)
}

func (g *Game) playMove(c board.Coord, computer bool) error {
	if !g.Playing() {
		return ErrGameOver
	}
	if !g.board.Place(g.xOnTurn, c.Col, c.Row) {
		return ErrIllegalMove
	}
	g.history = append(g.history, Turn{Token: g.TokenOnTurn(), Move: c, Computer: computer})
	g.xOnTurn = !g.xOnTurn
	return nil
}

// PlayHuman plays the human's move.
func (g *Game) PlayHuman(col, row int) error {
	if !g.Playing() {
		return ErrGameOver
	}
	if !g.HumanOnTurn() {
		return ErrNotYourTurn
	}
	return g.playMove(board.Coord{Col: col, Row: row}, false)
}

// Hint returns the move the A.I. would make for the side on turn, along
// with its score, without playing it.
func (g *Game) Hint() (board.Coord, int, error) {
	if !g.Playing() {
		return board.Coord{}, 0, ErrGameOver
	}
	return g.solver.ChooseMoveWithScore(g.board, g.depth, g.xOnTurn)
}

// PlayComputer asks the solver for a move for the side on turn and plays it.
func (g *Game) PlayComputer() (board.Coord, error) {
	if !g.Playing() {
		return board.Coord{}, ErrGameOver
	}
	c, err := g.solver.ChooseMove(g.board, g.depth, g.xOnTurn)
	if err != nil {
		return board.Coord{}, err
	}
	if err := g.playMove(c, true); err != nil {
		return board.Coord{}, err
	}
	log.Debug().Str("uid", g.uid).Str("move", c.String()).Int("turn", g.Turn()).
		Msg("computer-played")
	return c, nil
}
