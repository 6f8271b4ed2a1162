package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/tilegame/twenty48/game/engine"
)

// App couples the game engine to a terminal screen. It owns the screen
// lifecycle and runs the synchronous input/render loop: one key event is
// translated to a command, handed to the engine, and the next frame is drawn
// from a fresh snapshot.
type App struct {
	screen tcell.Screen
	engine engine.Engine
	log    zerolog.Logger
}

// NewApp creates an App over the given screen and engine. Tests pass a
// tcell.SimulationScreen here.
func NewApp(screen tcell.Screen, eng engine.Engine, log zerolog.Logger) *App {
	return &App{screen: screen, engine: eng, log: log}
}

// Run initializes the screen and processes events until a quit command
// arrives or the screen is closed
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer a.screen.Fini()

	a.log.Info().
		Int("board_size", a.engine.BoardSize()).
		Str("config", a.engine.Config().Name).
		Msg("game started")

	for {
		Draw(a.screen, a.engine.Snapshot())

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			cmd, ok := MapKey(ev)
			if !ok {
				continue
			}
			if quit := a.engine.Handle(cmd); quit {
				a.log.Info().Int("score", a.engine.Score()).Msg("quit requested")
				return nil
			}
			a.log.Debug().
				Str("command", string(cmd)).
				Int("score", a.engine.Score()).
				Str("status", string(a.engine.Status())).
				Msg("command handled")
		case nil:
			// The screen was finalized underneath us.
			return nil
		}
	}
}
