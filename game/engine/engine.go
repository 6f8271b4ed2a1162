package engine

import (
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Input surface
	Move(dir Direction) MoveOutcome
	Handle(cmd Command) (quit bool)
	Restart()

	// Output surface
	Snapshot() Snapshot
	Status() Status
	Score() int
	BoardSize() int

	// Queries
	CanMove(dir Direction) bool
	PossibleMoves() []Direction

	// Configuration
	Config() *GameConfig
}

// GameEngine implements the Engine interface. It exclusively owns the board
// and score; collaborators only ever see snapshots.
type GameEngine struct {
	config  *GameConfig
	spawner *Spawner
	board   Board
	merged  [][]bool
	score   int
	status  Status
	message string
}

// NewEngine creates a new game engine with the provided configuration and
// randomness source, performing the starting spawns
func NewEngine(config *GameConfig, rng Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config:  config,
		spawner: NewSpawner(rng, config.TwoProbability),
	}
	e.Restart()
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the default
// configuration and a time-seeded randomness source
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultGameConfig(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		// The default config always validates.
		panic(err)
	}
	return e
}

// Restart resets the score, spawns the starting tiles onto an empty board,
// and returns the game to the playing state. Valid from any state.
func (e *GameEngine) Restart() {
	e.board = NewBoard(e.config.BoardSize)
	e.merged = newBoolGrid(e.config.BoardSize)
	e.score = 0
	e.status = StatusPlaying
	e.message = e.config.Messages.Welcome

	for i := 0; i < e.config.StartingTiles; i++ {
		board, _, err := e.spawner.Spawn(e.board)
		if err != nil {
			// StartingTiles is validated against the board area.
			panic(err)
		}
		e.board = board
	}
}

// Move applies a directional slide. An illegal move (nothing slides or
// merges) leaves the game untouched and reports Moved=false. A legal move
// adds the merge total to the score, spawns one tile, and re-evaluates the
// won/lost conditions, won taking priority.
func (e *GameEngine) Move(dir Direction) MoveOutcome {
	if e.status != StatusPlaying {
		return MoveOutcome{}
	}

	next, result := e.board.Slide(dir)
	if !result.Changed {
		return MoveOutcome{}
	}

	e.score += result.ScoreDelta
	e.merged = result.Merged

	// A changed slide always leaves at least one vacated cell behind.
	board, _, err := e.spawner.Spawn(next)
	if err != nil {
		panic(err)
	}
	e.board = board

	if e.board.MaxTile() >= e.config.TargetValue {
		e.status = StatusWon
		e.message = e.config.Messages.Won
	} else if !e.board.HasMove() {
		e.status = StatusLost
		e.message = e.config.Messages.Lost
	}

	return MoveOutcome{Moved: true, ScoreDelta: result.ScoreDelta, Merges: result.Merges}
}

// Handle dispatches a discrete input command. It returns true when the caller
// should terminate. Directional commands in a terminal state are no-ops; the
// board stays frozen until restart.
func (e *GameEngine) Handle(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return true
	case CmdRestart:
		e.Restart()
	case CmdMoveUp:
		e.Move(Up)
	case CmdMoveDown:
		e.Move(Down)
	case CmdMoveLeft:
		e.Move(Left)
	case CmdMoveRight:
		e.Move(Right)
	}
	return false
}

// Snapshot returns a read-only copy of the current frame state
func (e *GameEngine) Snapshot() Snapshot {
	size := e.config.BoardSize
	merged := make([][]bool, size)
	for r := range merged {
		merged[r] = make([]bool, size)
		copy(merged[r], e.merged[r])
	}

	return Snapshot{
		BoardSize: size,
		Cells:     e.board.Cells(),
		Merged:    merged,
		Score:     e.score,
		Status:    e.status,
		Message:   e.message,
	}
}

// Status returns the current game state
func (e *GameEngine) Status() Status {
	return e.status
}

// Score returns the current score
func (e *GameEngine) Score() int {
	return e.score
}

// BoardSize returns the board dimension
func (e *GameEngine) BoardSize() int {
	return e.config.BoardSize
}

// CanMove checks whether sliding in the given direction would change the board
func (e *GameEngine) CanMove(dir Direction) bool {
	if e.status != StatusPlaying {
		return false
	}
	_, result := e.board.Slide(dir)
	return result.Changed
}

// PossibleMoves returns all directions that would currently be legal moves
func (e *GameEngine) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions() {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// Config returns a copy of the active game configuration. Like Snapshot, it
// never hands out state a caller could mutate under the engine.
func (e *GameEngine) Config() *GameConfig {
	config := *e.config
	return &config
}
