package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("tictactoe_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// luaCommand wraps a shell command so that a script can call it with its
// arguments as a single string, e.g. tictactoe.play("1 1").
func luaCommand(name string, fn func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		lv := L.OptString(1, "")
		sc := getShell(L)
		cmd, err := extractFields(name + " " + lv)
		if err != nil {
			log.Err(err).Msg("error-parsing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := fn(sc, cmd)
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

var scriptFuncs = map[string]func(*ShellController, *shellcmd) (*Response, error){
	"new":      (*ShellController).newGame,
	"play":     (*ShellController).play,
	"ai":       (*ShellController).aiplay,
	"hint":     (*ShellController).hint,
	"show":     (*ShellController).show,
	"history":  (*ShellController).history,
	"eval":     (*ShellController).eval,
	"set":      (*ShellController).set,
	"autoplay": (*ShellController).autoplay,
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("tictactoe_shell", lsc)

	exports := map[string]lua.LGFunction{}
	for name, fn := range scriptFuncs {
		exports[name] = luaCommand(name, fn)
	}
	L.SetGlobal("tictactoe", L.SetFuncs(L.NewTable(), exports))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
