package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/stats"
)

const logHeader = "gameID,turn,token,player,col,row,eval,emptyspaces\n"

var (
	CVCCounter *expvar.Int
	// IsPlaying counts the worker goroutines currently playing games.
	IsPlaying *expvar.Int
)

// running is held for the whole of a PlayGames call.
var running atomic.Bool

var errAlreadyPlaying = errors.New("games are already being played, please wait till complete")

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Summary collects the results of a batch of games.
type Summary struct {
	X, O    PlayerSpec
	Games   int
	XWins   int
	OWins   int
	Draws   int
	Plies   stats.Statistic
	XScore  stats.Statistic
	lengths []int
}

func (s *Summary) add(res GameResult) {
	s.Games++
	s.Plies.Push(float64(res.Plies))
	s.lengths = append(s.lengths, res.Plies)
	switch res.Winner {
	case board.X:
		s.XWins++
		s.XScore.Push(1)
	case board.O:
		s.OWins++
		s.XScore.Push(0)
	default:
		s.Draws++
		s.XScore.Push(0.5)
	}
}

// String shows the totals, X's score per game with a 95% confidence interval
// (a win counts 1 and a draw 0.5) and a histogram of game lengths.
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d games, X: %s, O: %s\n", s.Games, s.X, s.O)
	fmt.Fprintf(&sb, "X wins: %d, O wins: %d, draws: %d\n", s.XWins, s.OWins, s.Draws)
	if s.Games == 0 {
		return sb.String()
	}
	low, high := s.XScore.ConfidenceInterval(95)
	fmt.Fprintf(&sb, "X score: %.3f (95%% CI %.3f - %.3f)\n", s.XScore.Mean(), low, high)
	fmt.Fprintf(&sb, "Plies: %.2f ± %.2f (min %.0f, max %.0f)\n\n",
		s.Plies.Mean(), s.Plies.Stdev(), s.Plies.Min(), s.Plies.Max())
	if s.Plies.Min() == s.Plies.Max() {
		return sb.String()
	}
	h := histogram.Hist(5, lo.Map(s.lengths, func(n int, _ int) float64 { return float64(n) }))
	if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("histogram-error")
	}
	return sb.String()
}

// PlayGames plays numGames games between x and o on the given number of
// worker goroutines. If logw is not nil a CSV line is written to it for
// every turn. Cancelling ctx stops queueing new games; the games already
// queued are finished and counted.
func PlayGames(ctx context.Context, cfg *config.Config, numGames, threads int,
	x, o PlayerSpec, logw io.Writer) (*Summary, error) {

	if !running.CompareAndSwap(false, true) {
		return nil, errAlreadyPlaying
	}
	defer running.Store(false)
	if numGames < 1 {
		return nil, errors.New("need to play at least one game")
	}
	if threads < 1 {
		threads = 1
	}
	// Validate before starting any goroutines.
	if _, err := NewGameRunner(nil, cfg, x, o); err != nil {
		return nil, err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan struct{}, 100)
	results := make(chan GameResult, 100)
	var logChan chan string
	logDone := make(chan error, 1)
	if logw != nil {
		logChan = make(chan string, 100)
		go func() {
			_, err := io.WriteString(logw, logHeader)
			for msg := range logChan {
				if err == nil {
					_, err = io.WriteString(logw, msg)
				}
			}
			logDone <- err
		}()
	} else {
		logDone <- nil
	}

	g, gctx := errgroup.WithContext(context.Background())
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg, x, o)
			if err != nil {
				return err
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				res, err := r.PlayGame()
				if err != nil {
					return err
				}
				CVCCounter.Add(1)
				results <- res
			}
			return nil
		})
	}

	go func() {
	gameLoop:
		for i := 1; i <= numGames; i++ {
			select {
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			case <-gctx.Done():
				break gameLoop
			case jobs <- struct{}{}:
			}
		}
		close(jobs)
		log.Debug().Msg("Finished queueing jobs.")
	}()

	summary := &Summary{X: x, O: o}
	collected := make(chan struct{})
	go func() {
		for res := range results {
			summary.add(res)
		}
		close(collected)
	}()

	err := g.Wait()
	close(results)
	<-collected
	if logChan != nil {
		close(logChan)
	}
	if lerr := <-logDone; err == nil {
		err = lerr
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", summary.Games).Int("x-wins", summary.XWins).
		Int("o-wins", summary.OWins).Int("draws", summary.Draws).Msg("autoplay-done")
	return summary, nil
}
