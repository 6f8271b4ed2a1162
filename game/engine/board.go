package engine

import (
	"fmt"
	"strings"
)

// Board is a square grid of tile values. The zero value of a cell means empty;
// occupied cells hold positive powers of two. Board methods never mutate the
// receiver: Slide and Set return fresh boards.
type Board struct {
	size  int
	cells [][]int
}

// NewBoard creates an empty size x size board
func NewBoard(size int) Board {
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return Board{size: size, cells: cells}
}

// NewBoardFromCells creates a board from an explicit square cell grid.
// The input is copied, so the caller keeps ownership of its slice.
func NewBoardFromCells(cells [][]int) Board {
	b := NewBoard(len(cells))
	for r, row := range cells {
		copy(b.cells[r], row)
	}
	return b
}

// Size returns the board dimension
func (b Board) Size() int {
	return b.size
}

// Get returns the value of the cell at the given coordinates
func (b Board) Get(row, col int) int {
	return b.cells[row][col]
}

// Set returns a new board with the given cell set to value
func (b Board) Set(row, col, value int) Board {
	next := b.Clone()
	next.cells[row][col] = value
	return next
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	return NewBoardFromCells(b.cells)
}

// Cells returns a deep copy of the cell grid
func (b Board) Cells() [][]int {
	cells := make([][]int, b.size)
	for r := range cells {
		cells[r] = make([]int, b.size)
		copy(cells[r], b.cells[r])
	}
	return cells
}

// Equal reports whether two boards hold identical cells
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order
func (b Board) EmptyCells() []Position {
	var empty []Position
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] == TileEmpty {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// TileCount returns the number of occupied cells
func (b Board) TileCount() int {
	return b.size*b.size - len(b.EmptyCells())
}

// MaxTile returns the largest tile value on the board, 0 when empty
func (b Board) MaxTile() int {
	max := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] > max {
				max = b.cells[r][c]
			}
		}
	}
	return max
}

// Slide compacts and merges every line toward the given direction and returns
// the resulting board together with what changed. The receiver is untouched,
// so callers can discard the result of an illegal move without side effects.
func (b Board) Slide(dir Direction) (Board, SlideResult) {
	next := NewBoard(b.size)
	result := SlideResult{Merged: newBoolGrid(b.size)}

	for line := 0; line < b.size; line++ {
		values := make([]int, b.size)
		for idx := 0; idx < b.size; idx++ {
			row, col := lineCell(dir, line, idx, b.size)
			values[idx] = b.cells[row][col]
		}

		compacted, merged, score, merges := compactLine(values)
		result.ScoreDelta += score
		result.Merges += merges

		for idx := 0; idx < b.size; idx++ {
			row, col := lineCell(dir, line, idx, b.size)
			next.cells[row][col] = compacted[idx]
			result.Merged[row][col] = merged[idx]
		}
	}

	result.Changed = !next.Equal(b)
	return next, result
}

// HasMove reports whether any of the four directions would change the board
func (b Board) HasMove() bool {
	for _, dir := range Directions() {
		if _, result := b.Slide(dir); result.Changed {
			return true
		}
	}
	return false
}

// lineCell maps an index along a line in slide order to board coordinates.
// Index 0 is the cell at the edge the tiles slide toward.
func lineCell(dir Direction, line, idx, size int) (row, col int) {
	switch dir {
	case Left:
		return line, idx
	case Right:
		return line, size - 1 - idx
	case Up:
		return idx, line
	case Down:
		return size - 1 - idx, line
	}
	panic(fmt.Sprintf("unknown direction %q", dir))
}

// compactLine slides a single line toward index 0, merging adjacent equal
// tiles. Each merged pair is consumed in one step, so a tile produced by a
// merge can never merge again within the same pass: [2,2,2,2] becomes
// [4,4,0,0], never [8,0,0,0]. It returns the compacted line, a mask marking
// cells produced by a merge, the score gained, and the merge count.
func compactLine(line []int) ([]int, []bool, int, int) {
	size := len(line)
	out := make([]int, size)
	merged := make([]bool, size)

	tiles := make([]int, 0, size)
	for _, v := range line {
		if v != TileEmpty {
			tiles = append(tiles, v)
		}
	}

	score := 0
	merges := 0
	write := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			sum := tiles[i] * 2
			out[write] = sum
			merged[write] = true
			score += sum
			merges++
			i++ // the partner tile is consumed
		} else {
			out[write] = tiles[i]
		}
		write++
	}

	return out, merged, score, merges
}

// newBoolGrid allocates a size x size mask
func newBoolGrid(size int) [][]bool {
	grid := make([][]bool, size)
	for r := range grid {
		grid[r] = make([]bool, size)
	}
	return grid
}

// String renders the board as ASCII art, mainly for logs and test failures
func (b Board) String() string {
	var sb strings.Builder
	divider := "+" + strings.Repeat(strings.Repeat("-", 6)+"+", b.size)
	sb.WriteString(divider + "\n")
	for r := 0; r < b.size; r++ {
		sb.WriteString("|")
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] == TileEmpty {
				sb.WriteString("      |")
			} else {
				sb.WriteString(fmt.Sprintf("%5d |", b.cells[r][c]))
			}
		}
		sb.WriteString("\n" + divider + "\n")
	}
	return sb.String()
}
