// Command twenty48 plays 2048 in the terminal.
//
// It supports four subcommands:
//  1. "play" (default) – runs the interactive TUI game
//  2. "autoplay" – plays batches of games with a random policy and reports stats
//  3. "analyze" – prints human-readable heuristics about configuration files
//  4. "validate" – validates every configuration JSON file in the config directory
//
// Flags control the configuration directory, the named configuration, the
// random seed for reproducible runs, and optional debug logging to a file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/tilegame/twenty48/game/config"
	"github.com/tilegame/twenty48/game/engine"
	"github.com/tilegame/twenty48/tui"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "twenty48"
)

func main() {
	// A .env file is optional; environment variables win when both exist.
	_ = godotenv.Load()

	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configDirFlag and configFlag are constructed per command; cli flags hold
// parsed state and must not be shared between commands.
func configDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config-dir",
		Usage:   "directory containing game configurations",
		Value:   "configs",
		Sources: cli.EnvVars("CONFIG_DIR"),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "name of the configuration to play",
		Value: "classic",
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:           AppName,
		Usage:          "play 2048 in your terminal",
		Version:        Version,
		DefaultCommand: "play",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "run the interactive game",
				Flags: []cli.Flag{
					configDirFlag(),
					configFlag(),
					&cli.IntFlag{
						Name:  "seed",
						Usage: "random seed (0 seeds from the clock)",
					},
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "append debug logs to this file",
					},
				},
				Action: runPlay,
			},
			{
				Name:  "autoplay",
				Usage: "play games with a random policy and report statistics",
				Flags: []cli.Flag{
					configDirFlag(),
					configFlag(),
					&cli.IntFlag{
						Name:  "games",
						Usage: "number of games to play",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "seed",
						Usage: "random seed (0 seeds from the clock)",
					},
				},
				Action: runAutoplay,
			},
			{
				Name:   "analyze",
				Usage:  "summarize the configuration files in the config directory",
				Flags:  []cli.Flag{configDirFlag()},
				Action: runAnalyze,
			},
			{
				Name:   "validate",
				Usage:  "validate every configuration file in the config directory",
				Flags:  []cli.Flag{configDirFlag()},
				Action: runValidate,
			},
		},
	}
}

// resolveConfig loads the named configuration from the config directory. A
// missing directory is tolerated for the built-in "classic" configuration so
// the game runs out of the box.
func resolveConfig(configDir, name string) (*engine.GameConfig, error) {
	manager, err := config.NewManager(configDir)
	if err != nil {
		if name == "classic" {
			return engine.DefaultGameConfig(), nil
		}
		return nil, err
	}
	return manager.LoadConfig(name)
}

// newSeed returns the flag value, or a clock-derived seed when the flag is 0.
func newSeed(flagValue int64) int64 {
	if flagValue != 0 {
		return flagValue
	}
	return time.Now().UnixNano()
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd.String("config-dir"), cmd.String("config"))
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if logFile := cmd.String("log-file"); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	rng := rand.New(rand.NewSource(newSeed(cmd.Int("seed"))))
	eng, err := engine.NewEngine(cfg, rng)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	return tui.NewApp(screen, eng, logger).Run()
}

// autoplayResult holds the outcome of a single random-policy game.
type autoplayResult struct {
	Score   int
	MaxTile int
	Moves   int
	Won     bool
}

// playRandomGame drives one game to a terminal state by picking a uniformly
// random legal move each turn.
func playRandomGame(eng engine.Engine, rng *rand.Rand) autoplayResult {
	moves := 0
	for eng.Status() == engine.StatusPlaying {
		possible := eng.PossibleMoves()
		if len(possible) == 0 {
			break
		}
		eng.Move(possible[rng.Intn(len(possible))])
		moves++
	}

	snap := eng.Snapshot()
	maxTile := 0
	for _, row := range snap.Cells {
		for _, v := range row {
			if v > maxTile {
				maxTile = v
			}
		}
	}

	return autoplayResult{
		Score:   snap.Score,
		MaxTile: maxTile,
		Moves:   moves,
		Won:     snap.Status == engine.StatusWon,
	}
}

func runAutoplay(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd.String("config-dir"), cmd.String("config"))
	if err != nil {
		return err
	}

	games := cmd.Int("games")
	if games < 1 {
		return errors.New("games must be at least 1")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	rng := rand.New(rand.NewSource(newSeed(cmd.Int("seed"))))

	stats := runAutoplayBatch(cfg, rng, int(games), logger)

	fmt.Printf("Games:      %d\n", stats.Games)
	fmt.Printf("Wins:       %d (%.1f%%)\n", stats.Wins, 100*float64(stats.Wins)/float64(stats.Games))
	fmt.Printf("Mean score: %.1f\n", stats.MeanScore)
	fmt.Printf("Max score:  %d\n", stats.MaxScore)
	fmt.Printf("Best tile:  %d\n", stats.BestTile)
	return nil
}

// autoplayStats aggregates the results of an autoplay batch.
type autoplayStats struct {
	Games     int
	Wins      int
	MeanScore float64
	MaxScore  int
	BestTile  int
}

// runAutoplayBatch plays the requested number of random-policy games against
// one shared randomness source, so a fixed seed reproduces the whole batch.
func runAutoplayBatch(cfg *engine.GameConfig, rng *rand.Rand, games int, logger zerolog.Logger) autoplayStats {
	stats := autoplayStats{Games: games}
	totalScore := 0

	for i := 0; i < games; i++ {
		eng, err := engine.NewEngine(cfg, rng)
		if err != nil {
			// The config was validated by resolveConfig.
			panic(err)
		}

		result := playRandomGame(eng, rng)
		totalScore += result.Score
		if result.Won {
			stats.Wins++
		}
		if result.Score > stats.MaxScore {
			stats.MaxScore = result.Score
		}
		if result.MaxTile > stats.BestTile {
			stats.BestTile = result.MaxTile
		}

		logger.Debug().
			Int("game", i+1).
			Int("score", result.Score).
			Int("max_tile", result.MaxTile).
			Int("moves", result.Moves).
			Bool("won", result.Won).
			Msg("game finished")
	}

	stats.MeanScore = float64(totalScore) / float64(games)
	return stats
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	return analyzeConfigs(cmd.String("config-dir"), os.Stdout)
}

// analyzeConfigs prints quick heuristics for every configuration in the
// directory: board capacity, the merge work needed to reach the target, and a
// warning when the target cannot fit on the board at all.
func analyzeConfigs(configDir string, w io.Writer) error {
	manager, err := config.NewManager(configDir)
	if err != nil {
		return err
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintf(w, "No valid configurations found in %s\n", configDir)
		return nil
	}

	for _, info := range infos {
		cfg, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			continue
		}

		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", info.Filename)
		fmt.Fprintf(w, "Name: %s\n", cfg.Name)
		fmt.Fprintf(w, "Board Size: %d x %d (%d cells)\n", cfg.BoardSize, cfg.BoardSize, cfg.BoardSize*cfg.BoardSize)
		fmt.Fprintf(w, "Target Value: %d\n", cfg.TargetValue)
		fmt.Fprintf(w, "Starting Tiles: %d\n", cfg.StartingTiles)
		fmt.Fprintf(w, "Two Probability: %.2f\n", cfg.TwoProbability)
		fmt.Fprintf(w, "Minimum merges to target: %d\n", cfg.TargetValue/2-1)

		// The best possible tile on an n-cell board is 2^(n+1), reached by
		// chaining maximal tiles with a final 4 spawn. Boards past 7x7 can
		// hold any representable target.
		area := cfg.BoardSize * cfg.BoardSize
		if area+1 < 63 {
			maxAchievable := 1 << uint(area+1)
			if cfg.TargetValue > maxAchievable {
				fmt.Fprintf(w, "⚠️  WARNING: target %d can never fit on a %d-cell board (max achievable %d)\n",
					cfg.TargetValue, area, maxAchievable)
			}
		}
		if cfg.StartingTiles > area/2 {
			fmt.Fprintf(w, "⚠️  WARNING: %d starting tiles crowd a %d-cell board\n", cfg.StartingTiles, area)
		}
	}

	return nil
}

// configValidationResult captures the outcome of validating a single file.
type configValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	results, err := validateConfigDir(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	invalid := 0
	for _, result := range results {
		if result.Valid {
			fmt.Printf("✓ %s\n", result.File)
			continue
		}
		invalid++
		fmt.Printf("✗ %s\n", result.File)
		for _, msg := range result.Errors {
			fmt.Printf("    %s\n", msg)
		}
	}

	fmt.Printf("\n%d configuration(s) checked, %d invalid\n", len(results), invalid)
	if invalid > 0 {
		return cli.Exit("validation failed", 1)
	}
	return nil
}

// validateConfigDir validates every .json file in the directory, including
// files the config manager would silently skip.
func validateConfigDir(configDir string) ([]configValidationResult, error) {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var results []configValidationResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		result := configValidationResult{File: entry.Name(), Valid: true}
		if _, err := engine.LoadGameConfig(filepath.Join(configDir, entry.Name())); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
		results = append(results, result)
	}

	return results, nil
}
