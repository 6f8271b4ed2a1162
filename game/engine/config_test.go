package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := ValidateGameConfig(DefaultGameConfig()); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"valid default", func(c *GameConfig) {}, false},
		{"valid larger board", func(c *GameConfig) { c.BoardSize = 6; c.TargetValue = 4096 }, false},
		{"missing name", func(c *GameConfig) { c.Name = "" }, true},
		{"missing description", func(c *GameConfig) { c.Description = "" }, true},
		{"board too small", func(c *GameConfig) { c.BoardSize = 1 }, true},
		{"board too large", func(c *GameConfig) { c.BoardSize = 17 }, true},
		{"target not a power of two", func(c *GameConfig) { c.TargetValue = 1000 }, true},
		{"target below minimum", func(c *GameConfig) { c.TargetValue = 4 }, true},
		{"zero starting tiles", func(c *GameConfig) { c.StartingTiles = 0 }, true},
		{"starting tiles exceed board area", func(c *GameConfig) { c.StartingTiles = 17 }, true},
		{"negative two probability", func(c *GameConfig) { c.TwoProbability = -0.1 }, true},
		{"two probability above one", func(c *GameConfig) { c.TwoProbability = 1.1 }, true},
		{"missing welcome message", func(c *GameConfig) { c.Messages.Welcome = "" }, true},
		{"missing won message", func(c *GameConfig) { c.Messages.Won = "" }, true},
		{"missing lost message", func(c *GameConfig) { c.Messages.Lost = "" }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultGameConfig()
			test.mutate(config)

			err := ValidateGameConfig(config)
			if test.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !test.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidateGameConfig_Nil(t *testing.T) {
	if err := ValidateGameConfig(nil); err == nil {
		t.Error("expected error for nil config, got nil")
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()

	validPath := filepath.Join(dir, "valid.json")
	valid := `{
		"name": "mini",
		"description": "3x3 board racing to 64",
		"board_size": 3,
		"target_value": 64,
		"starting_tiles": 2,
		"two_probability": 0.8,
		"messages": {
			"welcome": "go",
			"won": "won",
			"lost": "lost"
		}
	}`
	if err := os.WriteFile(validPath, []byte(valid), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadGameConfig(validPath)
	if err != nil {
		t.Fatalf("LoadGameConfig returned error: %v", err)
	}
	if config.BoardSize != 3 || config.TargetValue != 64 || config.TwoProbability != 0.8 {
		t.Errorf("loaded config has wrong values: %+v", config)
	}

	invalidPath := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(invalidPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadGameConfig(invalidPath); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
