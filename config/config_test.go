package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigSearchDepth), 9)
	is.True(cfg.GetBool(ConfigHumanFirst))
	is.True(!cfg.GetBool(ConfigSearchParallel))
	is.Equal(cfg.GetString(ConfigSearchLogFile), "")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"--search-depth", "4", "--human-first=false", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigSearchDepth), 4)
	is.True(!cfg.GetBool(ConfigHumanFirst))
	is.True(cfg.GetBool(ConfigDebug))
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("TICTACTOE_SEARCH_DEPTH", "3")
	cfg := DefaultConfig()
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigSearchDepth), 3)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}

func TestLeftoverArgs(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"--debug", "autoplay", "-games", "10"}))
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.Args(), []string{"autoplay", "-games", "10"})
}
