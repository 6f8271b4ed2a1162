package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultGameConfig returns the classic 4x4 game reaching for 2048
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:           "classic",
		Description:    "Classic 4x4 board, first tile to reach 2048 wins",
		BoardSize:      DefaultBoardSize,
		TargetValue:    DefaultTargetValue,
		StartingTiles:  DefaultStartingTiles,
		TwoProbability: DefaultTwoProbability,
	}
	config.Messages.Welcome = "Join the numbers and get to the 2048 tile!"
	config.Messages.Won = "You win! Press r to play again or q to quit."
	config.Messages.Lost = "Game over! Press r to try again or q to quit."
	return config
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("config validation: board_size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, config.BoardSize)
	}

	if config.TargetValue < 8 || !isPowerOfTwo(config.TargetValue) {
		return fmt.Errorf("config validation: target_value must be a power of two of at least 8, got %d",
			config.TargetValue)
	}

	area := config.BoardSize * config.BoardSize
	if config.StartingTiles < 1 || config.StartingTiles > area {
		return fmt.Errorf("config validation: starting_tiles must be between 1 and %d, got %d",
			area, config.StartingTiles)
	}

	if config.TwoProbability < 0 || config.TwoProbability > 1 {
		return fmt.Errorf("config validation: two_probability must be between 0 and 1, got %v",
			config.TwoProbability)
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Won == "" {
		return fmt.Errorf("config validation: messages.won is required")
	}
	if config.Messages.Lost == "" {
		return fmt.Errorf("config validation: messages.lost is required")
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// isPowerOfTwo reports whether v is a positive power of two
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
