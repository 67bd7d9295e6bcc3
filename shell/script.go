package shell

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

const scriptHTTPTimeout = 30 * time.Second

var scriptCommands = []string{
	"series", "deal", "sub", "play", "replay", "cpu", "gen", "hand",
	"summary", "autoplay", "set",
}

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("wordhand_shell")
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

// command returns a lua function that runs the shell command name with the
// function's string argument as the rest of the line.
func command(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		lv := L.OptString(1, "")
		sc := getShell(L)
		r, err := sc.standardModeSwitch(strings.TrimSpace(name+" "+lv), nil)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-executing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	// scripts can require("json") and require("http")
	luajson.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{Timeout: scriptHTTPTimeout}).Loader)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("wordhand_shell", lsc)
	for _, name := range scriptCommands {
		L.SetGlobal("wordhand_"+name, L.NewFunction(command(name)))
	}

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg("ran " + filepath), nil
}
