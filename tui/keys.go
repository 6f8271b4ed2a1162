package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/tilegame/twenty48/game/engine"
)

// MapKey translates a terminal key event into an engine command. Arrows,
// WASD and HJKL all steer, r restarts, and q, Escape or Ctrl-C quit. The
// second return value is false for keys the game does not use.
func MapKey(ev *tcell.EventKey) (engine.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.CmdMoveUp, true
	case tcell.KeyDown:
		return engine.CmdMoveDown, true
	case tcell.KeyLeft:
		return engine.CmdMoveLeft, true
	case tcell.KeyRight:
		return engine.CmdMoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.CmdQuit, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w', 'k':
			return engine.CmdMoveUp, true
		case 's', 'j':
			return engine.CmdMoveDown, true
		case 'a', 'h':
			return engine.CmdMoveLeft, true
		case 'd', 'l':
			return engine.CmdMoveRight, true
		case 'r':
			return engine.CmdRestart, true
		case 'q':
			return engine.CmdQuit, true
		}
	}
	return "", false
}
