package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/verte-zerg/castletype/internal/model"
)

// Environment variables read by ApplyEnv.
const (
	EnvDifficulty  = "CASTLETYPE_DIFFICULTY"
	EnvLives       = "CASTLETYPE_LIVES"
	EnvWords       = "CASTLETYPE_WORDS"
	EnvSeed        = "CASTLETYPE_SEED"
	EnvFPS         = "CASTLETYPE_FPS"
	EnvSpawnChance = "CASTLETYPE_SPAWN_CHANCE"
	EnvSound       = "CASTLETYPE_SOUND"
	EnvLogFile     = "CASTLETYPE_LOG_FILE"
)

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays CASTLETYPE_* variables onto cfg. Malformed values are
// errors naming the variable.
func ApplyEnv(cfg *model.Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvDifficulty); ok && v != "" {
		d, err := model.ParseDifficulty(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		cfg.Difficulty = d
	}
	if err := envInt(lookup, EnvLives, &cfg.Lives); err != nil {
		return err
	}
	if v, ok := lookup(EnvWords); ok && v != "" {
		cfg.WordsPath = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvSeed, v)
		}
		cfg.Seed = n
	}
	if err := envInt(lookup, EnvFPS, &cfg.FPS); err != nil {
		return err
	}
	if v, ok := lookup(EnvSpawnChance); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", EnvSpawnChance, v)
		}
		cfg.SpawnChance = f
	}
	if v, ok := lookup(EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvSound, v)
		}
		cfg.Sound = b
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
	return nil
}

func envInt(lookup LookupFunc, key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", key, v)
	}
	*dst = n
	return nil
}
