// Package engine provides the core rules of the sliding-tile game.
//
// The engine package implements the game mechanics including:
//   - Per-line compaction and merging of numbered tiles
//   - Random tile spawning after successful moves
//   - Win/loss detection and the playing/won/lost state machine
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Board is the immutable grid of tile values,
// Spawner places new tiles, and GameConfig defines the rules loaded from
// JSON files.
//
// Usage:
//
//	config := engine.DefaultGameConfig()
//
//	gameEngine, err := engine.NewEngine(config, rand.New(rand.NewSource(seed)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tiles
//	outcome := gameEngine.Move(engine.Left)
//	snapshot := gameEngine.Snapshot()
//
// Game Rules:
//
// A move slides every tile toward one edge; adjacent equal tiles merge into
// their sum, at most once per pair per move, and each merge adds its result
// to the score. Every legal move spawns one new 2 or 4 tile in a random
// empty cell. The game is won when a tile reaches the target value and lost
// when no direction can change a full board. The engine is single-threaded
// and pure with respect to its collaborators: rendering and input layers
// exchange only snapshots and discrete commands with it.
package engine
