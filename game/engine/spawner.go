package engine

import "errors"

// ErrBoardFull is returned when a spawn is requested with no empty cell left.
// The state machine checks for the lost condition before ever spawning, so
// seeing this error means a caller broke that invariant.
var ErrBoardFull = errors.New("no empty cell available to spawn a tile")

// Rand is the source of randomness used by the Spawner. *math/rand.Rand
// satisfies it; tests plug in seeded or scripted sources for determinism.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles into empty cells after successful moves
type Spawner struct {
	rng            Rand
	twoProbability float64
}

// NewSpawner creates a spawner drawing from rng. twoProbability is the chance
// that a spawned tile is a 2 rather than a 4.
func NewSpawner(rng Rand, twoProbability float64) *Spawner {
	return &Spawner{rng: rng, twoProbability: twoProbability}
}

// Spawn places one new tile into a uniformly chosen empty cell and returns the
// updated board and the chosen position. It fails with ErrBoardFull when the
// board has no empty cell.
func (s *Spawner) Spawn(b Board) (Board, Position, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, Position{}, ErrBoardFull
	}

	pos := empty[s.rng.Intn(len(empty))]
	return b.Set(pos.Row, pos.Col, s.nextValue()), pos, nil
}

// nextValue picks the value for the next spawned tile
func (s *Spawner) nextValue() int {
	if s.rng.Float64() < s.twoProbability {
		return TileTwo
	}
	return TileFour
}
