// Package alphabeta chooses tic-tac-toe moves using depth-limited minimax
// with alpha-beta pruning.
package alphabeta

import (
	"errors"
	"io"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/evaluator"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

const (
	Infinity = math.MaxInt
)

var (
	ErrNoMoves  = errors.New("no legal moves; the game is already over")
	ErrBadDepth = errors.New("search depth cannot be negative")
)

// Stats describes the work done by the last search.
type Stats struct {
	Nodes   int64
	Leaves  int64
	Elapsed time.Duration
}

// Solver implements the minimax + alphabeta algorithm. X is always the
// maximizing player and O the minimizing one.
type Solver struct {
	disablePruning bool
	parallel       bool
	logStream      io.Writer

	totalNodes  atomic.Int64
	totalLeaves atomic.Int64
	lastStats   Stats
}

// Init sets the solver options from the config.
func (s *Solver) Init(cfg *config.Config) error {
	s.disablePruning = cfg.GetBool(config.ConfigSearchDisablePruning)
	s.parallel = cfg.GetBool(config.ConfigSearchParallel)
	return nil
}

// ChooseMove returns the best move on b for the side to move. b is not
// modified.
func (s *Solver) ChooseMove(b *board.Board, depth int, xToMove bool) (board.Coord, error) {
	c, _, err := s.ChooseMoveWithScore(b, depth, xToMove)
	return c, err
}

// ChooseMoveWithScore is like ChooseMove but also returns the backed-up
// score of the chosen move.
func (s *Solver) ChooseMoveWithScore(b *board.Board, depth int, xToMove bool) (board.Coord, int, error) {
	if depth < 0 {
		return board.Coord{}, 0, ErrBadDepth
	}
	if over, _ := b.IsGameOver(); over {
		return board.Coord{}, 0, ErrNoMoves
	}
	// A depth of 0 still has to produce a move: the candidates are scored
	// as they stand, without looking ahead.
	if depth == 0 {
		depth = 1
	}
	log.Debug().Int("depth", depth).
		Bool("x-to-move", xToMove).
		Bool("pruning-disabled", s.disablePruning).
		Bool("parallel", s.parallel).
		Str("board", b.Snapshot()).
		Msg("choose-move")

	tstart := time.Now()
	s.totalNodes.Store(0)
	s.totalLeaves.Store(0)

	root := newRootNode(b)
	var err error
	if s.parallel {
		err = s.searchRootParallel(root, depth, xToMove)
	} else {
		s.alphabeta(root, depth, -Infinity, Infinity, xToMove, true)
	}
	if err != nil {
		return board.Coord{}, 0, err
	}
	if root.best == nil {
		// Can't happen on a board that isn't over.
		return board.Coord{}, 0, ErrNoMoves
	}
	choice := root.best.move
	value := root.Value()

	s.lastStats = Stats{
		Nodes:   s.totalNodes.Load(),
		Leaves:  s.totalLeaves.Load(),
		Elapsed: time.Since(tstart),
	}
	if s.logStream != nil {
		if err := s.writeLog(b, depth, xToMove, root); err != nil {
			log.Err(err).Msg("search-log-error")
		}
	}
	root.best = nil
	root.children = nil

	log.Debug().
		Str("move", choice.String()).
		Int("value", value).
		Int64("nodes", s.lastStats.Nodes).
		Int64("leaves", s.lastStats.Leaves).
		Float64("time-elapsed-sec", s.lastStats.Elapsed.Seconds()).
		Msg("choose-move-returning")
	return choice, value, nil
}

func (s *Solver) alphabeta(node *GameNode, depth int, α, β int,
	maximizingPlayer bool, isRoot bool) {

	s.totalNodes.Add(1)
	if over, _ := node.board.IsGameOver(); depth == 0 || over {
		s.totalLeaves.Add(1)
		node.setValue(evaluator.Score(node.board))
		node.release(isRoot)
		return
	}

	empties := node.board.EmptyCells()
	node.children = make([]*GameNode, 0, len(empties))
	var best *GameNode

	if maximizingPlayer {
		// Maximizing
		for _, c := range empties {
			child := newChildNode(node.board, c, true)
			node.children = append(node.children, child)
			s.alphabeta(child, depth-1, α, β, false, false)
			if best == nil || child.Value() > best.Value() {
				best = child
			}
			α = max(α, best.Value())
			if !s.disablePruning && β <= α {
				break // beta cut-off
			}
		}
	} else {
		// Minimizing
		for _, c := range empties {
			child := newChildNode(node.board, c, false)
			node.children = append(node.children, child)
			s.alphabeta(child, depth-1, α, β, true, false)
			if best == nil || child.Value() < best.Value() {
				best = child
			}
			β = min(β, best.Value())
			if !s.disablePruning && β <= α {
				break // alpha cut-off
			}
		}
	}

	node.setValue(best.Value())
	if isRoot {
		node.best = best
	}
	node.release(isRoot)
}

// searchRootParallel searches every root move in its own goroutine with a
// full window, then picks the winner in the same order as the sequential
// search so both return the same move.
func (s *Solver) searchRootParallel(root *GameNode, depth int, xToMove bool) error {
	empties := root.board.EmptyCells()
	root.children = make([]*GameNode, len(empties))
	s.totalNodes.Add(1)

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for idx, c := range empties {
		child := newChildNode(root.board, c, xToMove)
		root.children[idx] = child
		g.Go(func() error {
			s.alphabeta(child, depth-1, -Infinity, Infinity, !xToMove, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var best *GameNode
	for _, child := range root.children {
		if best == nil ||
			(xToMove && child.Value() > best.Value()) ||
			(!xToMove && child.Value() < best.Value()) {
			best = child
		}
	}
	root.setValue(best.Value())
	root.best = best
	root.release(true)
	return nil
}

func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Solver) SetParallel(p bool) {
	s.parallel = p
}

// SetLogStream makes the solver write a YAML document describing every
// search to w. Pass nil to turn logging off.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func (s *Solver) PruningDisabled() bool {
	return s.disablePruning
}

func (s *Solver) Parallel() bool {
	return s.parallel
}

func (s *Solver) LastStats() Stats {
	return s.lastStats
}

// Minimax searches the whole tree to the given depth without pruning. It
// uses the same move order and tie-break as the pruned search.
func Minimax(b *board.Board, depth int, xToMove bool) (board.Coord, int, error) {
	s := &Solver{disablePruning: true}
	return s.ChooseMoveWithScore(b, depth, xToMove)
}
