package engine

import (
	"math/rand"
	"testing"
)

// newTestEngine builds an engine around a fixed board, bypassing the starting
// spawns, so tests control the exact position the state machine starts from.
func newTestEngine(cells [][]int, rng Rand) *GameEngine {
	config := DefaultGameConfig()
	config.BoardSize = len(cells)
	return &GameEngine{
		config:  config,
		spawner: NewSpawner(rng, config.TwoProbability),
		board:   NewBoardFromCells(cells),
		merged:  newBoolGrid(len(cells)),
		status:  StatusPlaying,
		message: config.Messages.Welcome,
	}
}

func countTiles(snap Snapshot) int {
	count := 0
	for _, row := range snap.Cells {
		for _, v := range row {
			if v != TileEmpty {
				count++
			}
		}
	}
	return count
}

func TestNewEngine_StartsWithTwoTiles(t *testing.T) {
	eng, err := NewEngine(DefaultGameConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	snap := eng.Snapshot()
	if snap.Status != StatusPlaying {
		t.Errorf("expected status %q, got %q", StatusPlaying, snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("expected score 0, got %d", snap.Score)
	}
	if got := countTiles(snap); got != DefaultStartingTiles {
		t.Errorf("expected %d starting tiles, got %d", DefaultStartingTiles, got)
	}
	for r, row := range snap.Cells {
		for c, v := range row {
			if v != TileEmpty && v != TileTwo && v != TileFour {
				t.Errorf("starting tile at (%d,%d) has value %d, want 2 or 4", r, c, v)
			}
		}
	}
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	config := DefaultGameConfig()
	config.BoardSize = 1

	if _, err := NewEngine(config, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for invalid config, got nil")
	}
}

func TestMove_IllegalMoveIsSilentNoOp(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{})

	outcome := eng.Move(Left)

	if outcome.Moved {
		t.Error("sliding a tile already at the edge must not count as a move")
	}
	if eng.Score() != 0 {
		t.Errorf("score changed on illegal move: %d", eng.Score())
	}
	if got := countTiles(eng.Snapshot()); got != 1 {
		t.Errorf("illegal move must not spawn: expected 1 tile, got %d", got)
	}
	if eng.Status() != StatusPlaying {
		t.Errorf("expected status %q, got %q", StatusPlaying, eng.Status())
	}
}

func TestMove_MergeScoresAndSpawnsOneTile(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	outcome := eng.Move(Left)

	if !outcome.Moved {
		t.Fatal("expected a legal move")
	}
	if outcome.ScoreDelta != 4 || eng.Score() != 4 {
		t.Errorf("expected score delta 4 and score 4, got delta %d score %d", outcome.ScoreDelta, eng.Score())
	}
	if outcome.Merges != 1 {
		t.Errorf("expected 1 merge, got %d", outcome.Merges)
	}

	snap := eng.Snapshot()
	if snap.Cells[0][0] != 4 {
		t.Errorf("expected merged 4 at (0,0), got %d", snap.Cells[0][0])
	}
	if got := countTiles(snap); got != 2 {
		t.Errorf("expected merged tile plus one spawn = 2 tiles, got %d", got)
	}
	if !snap.Merged[0][0] {
		t.Error("snapshot must flag the merged cell")
	}
}

func TestMove_TileCountArithmetic(t *testing.T) {
	// tile count after = tile count before - merges + 1 (the spawn)
	eng := newTestEngine([][]int{
		{2, 2, 4, 4},
		{8, 8, 0, 2},
		{0, 0, 0, 0},
		{16, 0, 16, 2},
	}, &scriptedRand{ints: []int{3}, floats: []float64{0.2}})

	before := countTiles(eng.Snapshot())
	outcome := eng.Move(Left)
	after := countTiles(eng.Snapshot())

	if !outcome.Moved {
		t.Fatal("expected a legal move")
	}
	if expected := before - outcome.Merges + 1; after != expected {
		t.Errorf("tile count: expected %d-%d+1=%d, got %d", before, outcome.Merges, expected, after)
	}
}

func TestMove_ScoreNeverDecreases(t *testing.T) {
	eng, err := NewEngine(DefaultGameConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	rng := rand.New(rand.NewSource(100))
	prev := 0
	for i := 0; i < 500 && eng.Status() == StatusPlaying; i++ {
		moves := eng.PossibleMoves()
		if len(moves) == 0 {
			break
		}
		outcome := eng.Move(moves[rng.Intn(len(moves))])
		if eng.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, eng.Score())
		}
		if outcome.Moved && eng.Score() != prev+outcome.ScoreDelta {
			t.Fatalf("score %d does not equal previous %d plus delta %d", eng.Score(), prev, outcome.ScoreDelta)
		}
		prev = eng.Score()
	}
}

func TestMove_ReachingTargetWins(t *testing.T) {
	eng := newTestEngine([][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 4, 2, 4},
	}, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	outcome := eng.Move(Left)

	if !outcome.Moved {
		t.Fatal("expected a legal move")
	}
	if eng.Status() != StatusWon {
		t.Errorf("expected status %q, got %q", StatusWon, eng.Status())
	}
	if eng.Snapshot().Message != eng.Config().Messages.Won {
		t.Errorf("expected win message, got %q", eng.Snapshot().Message)
	}
}

func TestMove_FrozenAfterWin(t *testing.T) {
	eng := newTestEngine([][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	eng.Move(Left)
	if eng.Status() != StatusWon {
		t.Fatalf("expected status %q, got %q", StatusWon, eng.Status())
	}

	frozen := eng.Snapshot()
	outcome := eng.Move(Down)

	if outcome.Moved {
		t.Error("directional moves after winning must be no-ops")
	}
	after := eng.Snapshot()
	for r := range frozen.Cells {
		for c := range frozen.Cells[r] {
			if frozen.Cells[r][c] != after.Cells[r][c] {
				t.Fatalf("board changed after win at (%d,%d): %d -> %d", r, c, frozen.Cells[r][c], after.Cells[r][c])
			}
		}
	}
}

func TestMove_FillingLastCellIntoLockedBoardLoses(t *testing.T) {
	// Sliding the top row left leaves one empty cell at (0,3); the scripted
	// spawn drops a 4 there, completing a checkerboard with no legal move.
	eng := newTestEngine([][]int{
		{0, 2, 4, 2},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, &scriptedRand{ints: []int{0}, floats: []float64{0.95}})

	outcome := eng.Move(Left)

	if !outcome.Moved {
		t.Fatal("expected a legal move")
	}
	if eng.Status() != StatusLost {
		t.Errorf("expected status %q, got %q\n%s", StatusLost, eng.Status(), eng.board)
	}
	for _, dir := range Directions() {
		if eng.CanMove(dir) {
			t.Errorf("direction %s reported legal on a lost board", dir)
		}
	}
	if eng.Snapshot().Message != eng.Config().Messages.Lost {
		t.Errorf("expected loss message, got %q", eng.Snapshot().Message)
	}
}

func TestMove_WonTakesPriorityOverLost(t *testing.T) {
	// The winning merge also fills the board into a locked position; the
	// engine must still report won.
	eng := newTestEngine([][]int{
		{0, 1024, 1024, 8},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	outcome := eng.Move(Left)

	if !outcome.Moved {
		t.Fatal("expected a legal move")
	}
	if eng.Status() != StatusWon {
		t.Errorf("expected won to take priority, got %q", eng.Status())
	}
}

func TestHandle_CommandDispatch(t *testing.T) {
	tests := []struct {
		cmd Command
		dir Direction
	}{
		{CmdMoveUp, Up},
		{CmdMoveDown, Down},
		{CmdMoveLeft, Left},
		{CmdMoveRight, Right},
	}

	for _, test := range tests {
		t.Run(string(test.cmd), func(t *testing.T) {
			eng := newTestEngine([][]int{
				{0, 0, 0, 0},
				{0, 2, 0, 0},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
			}, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

			before := eng.Snapshot()
			if quit := eng.Handle(test.cmd); quit {
				t.Fatalf("%s must not signal quit", test.cmd)
			}

			after := eng.Snapshot()
			same := true
			for r := range before.Cells {
				for c := range before.Cells[r] {
					if before.Cells[r][c] != after.Cells[r][c] {
						same = false
					}
				}
			}
			if same {
				t.Errorf("%s did not slide the board", test.cmd)
			}
		})
	}
}

func TestHandle_QuitSignalsTermination(t *testing.T) {
	eng := newTestEngine([][]int{{2, 0}, {0, 0}}, &scriptedRand{})

	if quit := eng.Handle(CmdQuit); !quit {
		t.Error("expected quit signal")
	}
	if eng.Status() != StatusPlaying {
		t.Error("quit must not alter the game state")
	}
}

func TestHandle_UnknownCommandIgnored(t *testing.T) {
	eng := newTestEngine([][]int{{2, 0}, {0, 0}}, &scriptedRand{})
	before := eng.Snapshot()

	if quit := eng.Handle(Command("jump")); quit {
		t.Error("unknown command must not signal quit")
	}
	after := eng.Snapshot()
	if before.Cells[0][0] != after.Cells[0][0] || before.Score != after.Score {
		t.Error("unknown command altered the game state")
	}
}

func TestRestart_ResetsFromTerminalState(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, rand.New(rand.NewSource(3)))
	eng.status = StatusLost
	eng.score = 1234

	eng.Restart()

	snap := eng.Snapshot()
	if snap.Status != StatusPlaying {
		t.Errorf("expected status %q, got %q", StatusPlaying, snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("expected score 0, got %d", snap.Score)
	}
	if got := countTiles(snap); got != DefaultStartingTiles {
		t.Errorf("expected %d tiles after restart, got %d", DefaultStartingTiles, got)
	}
	for r, row := range snap.Cells {
		for c, v := range row {
			if v != TileEmpty && v != TileTwo && v != TileFour {
				t.Errorf("tile at (%d,%d) after restart has value %d, want 2 or 4", r, c, v)
			}
		}
	}
}

func TestHandle_RestartWorksWhileFrozen(t *testing.T) {
	eng := newTestEngine([][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rand.New(rand.NewSource(5)))
	eng.status = StatusWon

	if quit := eng.Handle(CmdRestart); quit {
		t.Fatal("restart must not signal quit")
	}
	if eng.Status() != StatusPlaying {
		t.Errorf("expected status %q after restart, got %q", StatusPlaying, eng.Status())
	}
}

func TestSnapshot_DetachedFromEngineState(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{})

	snap := eng.Snapshot()
	snap.Cells[0][0] = 8192
	snap.Merged[0][0] = true

	fresh := eng.Snapshot()
	if fresh.Cells[0][0] != 2 {
		t.Error("mutating a snapshot leaked into the engine board")
	}
	if fresh.Merged[0][0] {
		t.Error("mutating a snapshot leaked into the engine merge mask")
	}
}

func TestConfig_ReturnsDetachedCopy(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{})

	cfg := eng.Config()
	cfg.BoardSize = 99
	cfg.TargetValue = 8
	cfg.Messages.Won = "tampered"

	if eng.BoardSize() != 4 {
		t.Errorf("mutating a returned config changed the engine board size to %d", eng.BoardSize())
	}
	fresh := eng.Config()
	if fresh.TargetValue != DefaultTargetValue {
		t.Errorf("mutating a returned config leaked into the engine: target %d", fresh.TargetValue)
	}
	if fresh.Messages.Won == "tampered" {
		t.Error("mutating a returned config's messages leaked into the engine")
	}
}

func TestPossibleMoves(t *testing.T) {
	eng := newTestEngine([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 8},
	}, &scriptedRand{})

	if moves := eng.PossibleMoves(); moves != nil {
		t.Errorf("locked board must have no possible moves, got %v", moves)
	}

	eng = newTestEngine([][]int{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRand{})

	if moves := eng.PossibleMoves(); len(moves) != 3 {
		// Up is illegal for a tile already on the top row.
		t.Errorf("expected 3 possible moves, got %v", moves)
	}
}
