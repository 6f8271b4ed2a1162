package engine

// Direction represents the four slide directions
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions returns all four slide directions in a stable order
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Command represents a discrete input delivered by the input collaborator
type Command string

const (
	CmdMoveUp    Command = "move_up"
	CmdMoveDown  Command = "move_down"
	CmdMoveLeft  Command = "move_left"
	CmdMoveRight Command = "move_right"
	CmdRestart   Command = "restart"
	CmdQuit      Command = "quit"
)

// Status represents the game lifecycle state
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Tile values and board limits
const (
	TileEmpty = 0
	TileTwo   = 2
	TileFour  = 4

	MinBoardSize = 2
	MaxBoardSize = 16

	DefaultBoardSize      = 4
	DefaultTargetValue    = 2048
	DefaultStartingTiles  = 2
	DefaultTwoProbability = 0.9
)

// Position represents row,col coordinates on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	BoardSize      int     `json:"board_size"`
	TargetValue    int     `json:"target_value"`
	StartingTiles  int     `json:"starting_tiles"`
	TwoProbability float64 `json:"two_probability"`
	Messages       struct {
		Welcome string `json:"welcome"`
		Won     string `json:"won"`
		Lost    string `json:"lost"`
	} `json:"messages"`
}

// SlideResult describes what a single slide did to the board
type SlideResult struct {
	Changed    bool     `json:"changed"`
	ScoreDelta int      `json:"score_delta"`
	Merges     int      `json:"merges"`
	Merged     [][]bool `json:"merged"`
}

// MoveOutcome is the caller-facing result of a directional move
type MoveOutcome struct {
	Moved      bool `json:"moved"`
	ScoreDelta int  `json:"score_delta"`
	Merges     int  `json:"merges"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	BoardSize int      `json:"board_size"`
	Cells     [][]int  `json:"cells"`
	Merged    [][]bool `json:"merged"`
	Score     int      `json:"score"`
	Status    Status   `json:"status"`
	Message   string   `json:"message"`
}
