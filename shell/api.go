package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/alphabeta"
	"github.com/domino14/tictactoe/automatic"
	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/evaluator"
	"github.com/domino14/tictactoe/game"
)

func intOption(cmd *shellcmd, key string, defaultI int) (int, error) {
	v, ok := cmd.options[key]
	if !ok {
		return defaultI, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option -%s: %w", key, err)
	}
	return i, nil
}

func parseYesNo(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "y", "yes", "true", "human":
		return true, nil
	case "n", "no", "false", "ai":
		return false, nil
	}
	return false, errors.New("expected y or n, got " + strconv.Quote(v))
}

func parseCoord(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("usage: play <col> <row>")
	}
	col, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

func (sc *ShellController) applySolverOptions() {
	if sc.game == nil {
		return
	}
	s := sc.game.Solver()
	s.SetParallel(sc.options.parallel)
	s.SetPruningDisabled(sc.options.disablePruning)
	if sc.searchLogFile != nil {
		s.SetLogStream(sc.searchLogFile)
	} else {
		s.SetLogStream(nil)
	}
	sc.game.SetDepth(sc.options.depth)
}

// computerReply lets the A.I. move if it is on turn.
func (sc *ShellController) computerReply(sb *strings.Builder) error {
	if !sc.IsPlaying() || sc.game.HumanOnTurn() {
		return nil
	}
	c, err := sc.game.PlayComputer()
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "I'm going %d, %d\n\n", c.Col, c.Row)
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if v, ok := cmd.options["first"]; ok {
		first, err := parseYesNo(v)
		if err != nil {
			return nil, err
		}
		sc.options.humanFirst = first
	}
	depth, err := intOption(cmd, "depth", sc.options.depth)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, errors.New("depth cannot be negative")
	}
	sc.options.depth = depth

	g, err := game.NewGame(sc.config, depth, sc.options.humanFirst)
	if err != nil {
		return nil, err
	}
	sc.game = g
	sc.applySolverOptions()

	var sb strings.Builder
	if !sc.options.humanFirst {
		sb.WriteString("A.I. goes first.\n")
		if err := sc.computerReply(&sb); err != nil {
			return nil, err
		}
	}
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	col, row, err := parseCoord(cmd.args)
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayHuman(col, row); err != nil {
		return nil, err
	}
	var sb strings.Builder
	if err := sc.computerReply(&sb); err != nil {
		return nil, err
	}
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

// aiplay lets the A.I. pick the human's move, then replies to it.
func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	c, err := sc.game.PlayComputer()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Played %v\n", c)
	if err := sc.computerReply(&sb); err != nil {
		return nil, err
	}
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	c, v, err := sc.game.Hint()
	if err != nil {
		return nil, err
	}
	st := sc.game.Solver().LastStats()
	return msg(fmt.Sprintf("Best move for %v: %v (score %d, %d nodes searched in %v)",
		sc.game.TokenOnTurn(), c, v, st.Nodes, st.Elapsed)), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.game.Turn() == 0 {
		return msg("No moves yet."), nil
	}
	return msg(strings.TrimRight(sc.game.HistoryText(), "\n")), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	var b *board.Board
	if len(cmd.args) > 0 {
		var err error
		// a quoted nine-character snapshot, e.g. eval "XX OO    "
		b, err = board.FromSnapshot(cmd.args[0])
		if err != nil {
			return nil, err
		}
	} else if sc.game != nil {
		b = sc.game.Board()
	} else {
		return nil, errNoGame
	}
	return msg(fmt.Sprintf("Score (X - O): %d", evaluator.Score(b))), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	ret, err := sc.Set(opt, cmd.args[1])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

// Set changes a shell option and applies it to the current game.
func (sc *ShellController) Set(key string, value string) (string, error) {
	switch key {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil {
			return "", err
		}
		if d < 0 {
			return "", errors.New("depth cannot be negative")
		}
		sc.options.depth = d
	case "first":
		first, err := parseYesNo(value)
		if err != nil {
			return "", err
		}
		sc.options.humanFirst = first
	case "parallel":
		p, err := strconv.ParseBool(value)
		if err != nil {
			return "", err
		}
		sc.options.parallel = p
	case "pruning":
		p, err := strconv.ParseBool(value)
		if err != nil {
			return "", err
		}
		sc.options.disablePruning = !p
	case "searchlog":
		if err := sc.openSearchLog(value); err != nil {
			return "", err
		}
	default:
		return "", errors.New("option " + key + " not suitable for this mode")
	}
	sc.applySolverOptions()
	_, ret := sc.options.Show(key)
	return ret, nil
}

// openSearchLog switches the search log to path, or turns it off. If path
// can't be opened the current log stays in place.
func (sc *ShellController) openSearchLog(path string) error {
	if path == "off" || path == "" {
		sc.closeSearchLog()
		sc.options.searchLog = ""
		return nil
	}
	f, err := alphabeta.OpenSearchLog(path)
	if err != nil {
		return err
	}
	sc.closeSearchLog()
	sc.searchLogFile = f
	sc.options.searchLog = path
	return nil
}

func (sc *ShellController) closeSearchLog() {
	if sc.searchLogFile == nil {
		return
	}
	if err := sc.searchLogFile.Close(); err != nil {
		log.Err(err).Msg("closing-search-log")
	}
	sc.searchLogFile = nil
}

func (sc *ShellController) playerSpec(cmd *shellcmd, side string) (automatic.PlayerSpec, error) {
	if cmd.options["random"] == side {
		return automatic.PlayerSpec{Kind: automatic.RandomPlayer}, nil
	}
	depth, err := intOption(cmd, "depth"+side, sc.options.depth)
	if err != nil {
		return automatic.PlayerSpec{}, err
	}
	return automatic.PlayerSpec{Kind: automatic.EnginePlayer, Depth: depth}, nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := intOption(cmd, "games", 100)
	if err != nil {
		return nil, err
	}
	threads, err := intOption(cmd, "threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	if r, ok := cmd.options["random"]; ok && r != "x" && r != "o" {
		return nil, errors.New("-random takes x or o")
	}
	x, err := sc.playerSpec(cmd, "x")
	if err != nil {
		return nil, err
	}
	o, err := sc.playerSpec(cmd, "o")
	if err != nil {
		return nil, err
	}

	var logfile *os.File
	if fn, ok := cmd.options["logfile"]; ok {
		logfile, err = os.Create(fn)
		if err != nil {
			return nil, err
		}
		defer logfile.Close()
	}
	sc.showMessage(fmt.Sprintf("Playing %d games, X: %v, O: %v...", games, x, o))
	var summary *automatic.Summary
	if logfile != nil {
		summary, err = automatic.PlayGames(context.Background(), sc.config, games, threads, x, o, logfile)
	} else {
		summary, err = automatic.PlayGames(context.Background(), sc.config, games, threads, x, o, nil)
	}
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}
