// Command tictactoe plays a single game against the A.I. on the console.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/alphabeta"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
)

var errQuit = errors.New("quit")

type prompter struct {
	l *readline.Instance
}

func (p *prompter) ask(prompt string) (string, error) {
	p.l.SetPrompt(prompt)
	line, err := p.l.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", errQuit
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askUint asks until it gets an unsigned integer.
func (p *prompter) askUint(prompt string) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 31)
		if err == nil {
			return int(n), nil
		}
		fmt.Println("Please enter a whole number.")
	}
}

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.WarnLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func humanTurn(p *prompter, g *game.Game) error {
	for {
		col, err := p.askUint("Enter a column number 0,1,2 >> ")
		if err != nil {
			return err
		}
		row, err := p.askUint("Enter a row number 0,1,2 >> ")
		if err != nil {
			return err
		}
		err = g.PlayHuman(col, row)
		if err == game.ErrIllegalMove {
			fmt.Println("You can't go there, try again.")
			continue
		}
		return err
	}
}

func run(cfg *config.Config) error {
	l, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer l.Close()
	p := &prompter{l: l}

	depth, err := p.askUint("Enter A.I. move depth >> ")
	if err != nil {
		return err
	}
	first, err := p.ask("Do you want to go first? y/n >> ")
	if err != nil {
		return err
	}

	g, err := game.NewGame(cfg, depth, first == "y")
	if err != nil {
		return err
	}
	if fn := cfg.GetString(config.ConfigSearchLogFile); fn != "" {
		f, err := alphabeta.OpenSearchLog(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		g.Solver().SetLogStream(f)
	}

	for g.Playing() {
		if g.HumanOnTurn() {
			if err := humanTurn(p, g); err != nil {
				return err
			}
		} else {
			fmt.Println("Thinking...")
			c, err := g.PlayComputer()
			if err != nil {
				return err
			}
			fmt.Printf("I'm going %d, %d\n", c.Col, c.Row)
		}
		fmt.Print(g.Board().ToDisplayText())
	}
	fmt.Println(g.ResultText())
	return nil
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)

	err := run(cfg)
	if err == errQuit {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("tictactoe-error")
		os.Exit(1)
	}
}
