// Package shell is an interactive console for playing against the A.I.,
// inspecting its search and running automatic games.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` command")
	errQuit              = errors.New("quit")
)

// Options to configure the interactive shell
type ShellOptions struct {
	depth          int
	humanFirst     bool
	parallel       bool
	disablePruning bool
	searchLog      string
}

func NewShellOptions(cfg *config.Config) *ShellOptions {
	return &ShellOptions{
		depth:          cfg.GetInt(config.ConfigSearchDepth),
		humanFirst:     cfg.GetBool(config.ConfigHumanFirst),
		parallel:       cfg.GetBool(config.ConfigSearchParallel),
		disablePruning: cfg.GetBool(config.ConfigSearchDisablePruning),
		searchLog:      cfg.GetString(config.ConfigSearchLogFile),
	}
}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "depth":
		return true, strconv.Itoa(opts.depth)
	case "first":
		if opts.humanFirst {
			return true, "human"
		}
		return true, "ai"
	case "parallel":
		return true, fmt.Sprintf("%v", opts.parallel)
	case "pruning":
		return true, fmt.Sprintf("%v", !opts.disablePruning)
	case "searchlog":
		if opts.searchLog == "" {
			return true, "off"
		}
		return true, opts.searchLog
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) ToDisplayText() string {
	keys := []string{"depth", "first", "parallel", "pruning", "searchlog"}
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range keys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a line into a command, its positional arguments and
// its `-key value` options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l       *readline.Instance
	out     io.Writer
	config  *config.Config
	options *ShellOptions
	game    *game.Game

	searchLogFile *os.File
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtictactoe>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    newCompleter(),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stderr())
	sc.l = l
	return sc
}

// newController builds a controller that writes to w and has no readline
// instance; it can only Execute commands.
func newController(cfg *config.Config, w io.Writer) *ShellController {
	sc := &ShellController{out: w, config: cfg, options: NewShellOptions(cfg)}
	if sc.options.searchLog != "" {
		if err := sc.openSearchLog(sc.options.searchLog); err != nil {
			log.Err(err).Msg("opening-search-log")
			sc.options.searchLog = ""
		}
	}
	return sc
}

// Cleanup releases anything the shell holds open.
func (sc *ShellController) Cleanup() {
	sc.closeSearchLog()
}

func (sc *ShellController) IsPlaying() bool {
	return sc.game != nil && sc.game.Playing()
}

// Execute runs a single command line and shows its response.
func (sc *ShellController) Execute(line string) error {
	resp, err := sc.handle(line)
	if err != nil {
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new", "n":
		return sc.newGame(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "ai", "a":
		return sc.aiplay(cmd)
	case "hint":
		return sc.hint(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "history", "h":
		return sc.history(cmd)
	case "set":
		return sc.set(cmd)
	case "eval":
		return sc.eval(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "script":
		return sc.script(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "bye":
		return nil, errQuit
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()
	defer sc.closeSearchLog()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		err = sc.Execute(line)
		if err == errQuit {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
