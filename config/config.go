package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug                = "debug"
	ConfigSearchDepth          = "search-depth"
	ConfigSearchParallel       = "search-parallel"
	ConfigSearchDisablePruning = "search-disable-pruning"
	ConfigSearchLogFile        = "search-log-file"
	ConfigHumanFirst           = "human-first"
	ConfigAutoplayThreads      = "autoplay-threads"
	ConfigHistoryFile          = "history-file"
	ConfigCPUProfile           = "cpu-profile"
)

// DefaultSearchDepth looks all the way to the end of any game.
const DefaultSearchDepth = 9

type Config struct {
	*viper.Viper
	args []string
}

func newConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchDepth, DefaultSearchDepth)
	c.SetDefault(ConfigSearchParallel, false)
	c.SetDefault(ConfigSearchDisablePruning, false)
	c.SetDefault(ConfigSearchLogFile, "")
	c.SetDefault(ConfigHumanFirst, true)
	c.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	c.SetDefault(ConfigHistoryFile, "/tmp/tictactoe_readline.tmp")
	c.SetDefault(ConfigCPUProfile, "")
	return c
}

// DefaultConfig returns a config with only default values. It does not look
// at the environment or the command line; tests use it.
func DefaultConfig() *Config {
	return newConfig()
}

// Load reads settings from the given command-line arguments and from
// TICTACTOE_-prefixed environment variables. Flags win over the environment.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	// Anything after the first non-flag is a shell command with its own
	// options.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.Int(ConfigSearchDepth, DefaultSearchDepth, "how many moves the A.I. looks ahead")
	fs.Bool(ConfigSearchParallel, false, "search the first move of every line concurrently")
	fs.Bool(ConfigSearchDisablePruning, false, "use plain minimax without alpha-beta pruning")
	fs.String(ConfigSearchLogFile, "", "append a YAML log of every search to this file")
	fs.Bool(ConfigHumanFirst, true, "whether the human (always X) moves first")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "number of goroutines for autoplay")
	fs.String(ConfigHistoryFile, "/tmp/tictactoe_readline.tmp", "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")

	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.args = fs.Args()
	c.SetEnvPrefix("TICTACTOE")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c.BindPFlags(fs)
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings in a form suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
