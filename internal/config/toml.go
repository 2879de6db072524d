// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/castletype/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps game settings. Nil fields keep the current value.
type GameConfig struct {
	Difficulty  *string  `toml:"difficulty"`
	Lives       *int     `toml:"lives"`
	Words       *string  `toml:"words"`
	Seed        *int64   `toml:"seed"`
	FPS         *int     `toml:"fps"`
	SpawnChance *float64 `toml:"spawn-chance"`
	Sound       *bool    `toml:"sound"`
	LogFile     *string  `toml:"log-file"`
}

// Defaults returns the built-in settings.
func Defaults() model.Config {
	return model.Config{
		Difficulty:  model.Medium,
		Lives:       5,
		FPS:         60,
		SpawnChance: 1,
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ApplyFile overlays the values set in the file onto cfg.
func ApplyFile(cfg *model.Config, fc FileConfig) error {
	g := fc.Game
	if g.Difficulty != nil {
		d, err := model.ParseDifficulty(*g.Difficulty)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg.Difficulty = d
	}
	if g.Lives != nil {
		cfg.Lives = *g.Lives
	}
	if g.Words != nil {
		cfg.WordsPath = *g.Words
	}
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if g.FPS != nil {
		cfg.FPS = *g.FPS
	}
	if g.SpawnChance != nil {
		cfg.SpawnChance = *g.SpawnChance
	}
	if g.Sound != nil {
		cfg.Sound = *g.Sound
	}
	if g.LogFile != nil {
		cfg.LogFile = *g.LogFile
	}
	return nil
}

// Validate checks the ranges of the settings.
func Validate(cfg model.Config) error {
	switch cfg.Difficulty {
	case model.Easy, model.Medium, model.Hard:
	default:
		return fmt.Errorf("difficulty must be easy, medium or hard")
	}
	if cfg.Lives < 1 || cfg.Lives > 99 {
		return fmt.Errorf("lives must be between 1 and 99")
	}
	if cfg.FPS < 10 || cfg.FPS > 240 {
		return fmt.Errorf("fps must be between 10 and 240")
	}
	if cfg.SpawnChance <= 0 || cfg.SpawnChance > 1 {
		return fmt.Errorf("spawn-chance must be in (0, 1]")
	}
	return nil
}
