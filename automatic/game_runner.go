// Package automatic plays computer-vs-computer games, either the A.I. against
// itself or against a player that moves at random, and collects statistics
// about the results.
package automatic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/evaluator"
	"github.com/domino14/tictactoe/game"
)

const (
	EnginePlayer = "engine"
	RandomPlayer = "random"
)

// PlayerSpec describes who plays one side.
type PlayerSpec struct {
	Kind  string
	Depth int
}

func (p PlayerSpec) String() string {
	if p.Kind == RandomPlayer {
		return RandomPlayer
	}
	return EnginePlayer + "-" + strconv.Itoa(p.Depth)
}

func (p PlayerSpec) validate() error {
	switch p.Kind {
	case RandomPlayer:
		return nil
	case EnginePlayer:
		if p.Depth < 0 {
			return errors.New("engine depth cannot be negative")
		}
		return nil
	}
	return fmt.Errorf("unknown player kind %q", p.Kind)
}

// GameResult is the outcome of a single game.
type GameResult struct {
	Uid    string
	Winner board.Cell
	Plies  int
}

// GameRunner is the master struct here for the automatic game logic. X
// always moves first.
type GameRunner struct {
	config  *config.Config
	logchan chan string
	players [2]PlayerSpec
}

// NewGameRunner creates a runner for the given X and O players. logchan may
// be nil; otherwise one CSV line is sent per turn.
func NewGameRunner(logchan chan string, cfg *config.Config, x, o PlayerSpec) (*GameRunner, error) {
	for _, p := range []PlayerSpec{x, o} {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return &GameRunner{config: cfg, logchan: logchan, players: [2]PlayerSpec{x, o}}, nil
}

func (r *GameRunner) playerFor(xOnTurn bool) PlayerSpec {
	if xOnTurn {
		return r.players[0]
	}
	return r.players[1]
}

func randomMove(b *board.Board) board.Coord {
	empties := b.EmptyCells()
	return empties[frand.Intn(len(empties))]
}

// PlayTurn makes a move for the side on turn in g.
func (r *GameRunner) PlayTurn(g *game.Game) error {
	xOnTurn := g.XOnTurn()
	p := r.playerFor(xOnTurn)
	var c board.Coord
	var err error
	if p.Kind == RandomPlayer {
		c = randomMove(g.Board())
		err = g.PlayMove(c)
	} else {
		g.SetDepth(p.Depth)
		c, err = g.PlayComputer()
	}
	if err != nil {
		return err
	}
	if r.logchan != nil {
		r.logchan <- strings.Join([]string{
			g.Uid(),
			strconv.Itoa(g.Turn()),
			board.TokenFor(xOnTurn).String(),
			p.String(),
			strconv.Itoa(c.Col),
			strconv.Itoa(c.Row),
			strconv.Itoa(evaluator.Score(g.Board())),
			strconv.Itoa(g.Board().EmptySpaces()),
		}, ",") + "\n"
	}
	return nil
}

// PlayGame plays a full game from the empty board.
func (r *GameRunner) PlayGame() (GameResult, error) {
	g, err := game.NewGame(r.config, 0, true)
	if err != nil {
		return GameResult{}, err
	}
	for g.Playing() {
		if err := r.PlayTurn(g); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{Uid: g.Uid(), Winner: g.Winner(), Plies: g.Turn()}
	log.Debug().Str("uid", res.Uid).Str("winner", res.Winner.String()).
		Int("plies", res.Plies).Msg("autoplay-game-over")
	return res, nil
}
