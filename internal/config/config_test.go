package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/castletype/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Game.Lives != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[game]
difficulty = "hard"
lives = 3
words = "/tmp/words.lua"
seed = 42
fps = 30
spawn-chance = 0.5
sound = true
log-file = "/tmp/castletype.log"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Defaults()
	if err := ApplyFile(&cfg, fc); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := model.Config{
		Difficulty:  model.Hard,
		Lives:       3,
		WordsPath:   "/tmp/words.lua",
		Seed:        42,
		FPS:         30,
		SpawnChance: 0.5,
		Sound:       true,
		LogFile:     "/tmp/castletype.log",
	}
	if cfg != want {
		t.Fatalf("unexpected config:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestApplyFileKeepsUnsetValues(t *testing.T) {
	lives := 9
	cfg := Defaults()
	if err := ApplyFile(&cfg, FileConfig{Game: GameConfig{Lives: &lives}}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Lives != 9 || cfg.Difficulty != model.Medium || cfg.FPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestApplyFileRejectsDifficulty(t *testing.T) {
	bad := "nightmare"
	cfg := Defaults()
	if err := ApplyFile(&cfg, FileConfig{Game: GameConfig{Difficulty: &bad}}); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}

func TestLoadConfigDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\nlives = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	err := ApplyEnv(&cfg, mapLookup(map[string]string{
		EnvDifficulty:  "Easy",
		EnvLives:       "7",
		EnvSeed:        "-3",
		EnvSpawnChance: "0.25",
		EnvSound:       "true",
	}))
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Difficulty != model.Easy || cfg.Lives != 7 || cfg.Seed != -3 || cfg.SpawnChance != 0.25 || !cfg.Sound {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.FPS != 60 {
		t.Fatalf("unset variables must keep values, fps=%d", cfg.FPS)
	}
}

func TestApplyEnvNamesBadVariable(t *testing.T) {
	cfg := Defaults()
	err := ApplyEnv(&cfg, mapLookup(map[string]string{EnvFPS: "fast"}))
	if err == nil || !strings.Contains(err.Error(), EnvFPS) {
		t.Fatalf("expected error naming %s, got %v", EnvFPS, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("missing .env should not error: %v", err)
	}
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CASTLETYPE_TEST_DOTENV=hard\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("CASTLETYPE_TEST_DOTENV") })
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv("CASTLETYPE_TEST_DOTENV"); got != "hard" {
		t.Fatalf("expected variable from .env, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}
	cases := []func(*model.Config){
		func(c *model.Config) { c.Difficulty = 0 },
		func(c *model.Config) { c.Lives = 0 },
		func(c *model.Config) { c.Lives = 100 },
		func(c *model.Config) { c.FPS = 5 },
		func(c *model.Config) { c.SpawnChance = 0 },
		func(c *model.Config) { c.SpawnChance = 1.5 },
	}
	for i, mutate := range cases {
		cfg := Defaults()
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, cfg)
		}
	}
}

func TestResolveWordsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := ResolveWordsPath("/explicit.txt"); got != "/explicit.txt" {
		t.Fatalf("explicit path must win, got %q", got)
	}
	if got := ResolveWordsPath(""); got != "" {
		t.Fatalf("expected built-in list, got %q", got)
	}
	if err := os.MkdirAll(filepath.Join(dir, "castletype"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(DefaultWordsPath(), []byte("moat\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ResolveWordsPath(""); got != DefaultWordsPath() {
		t.Fatalf("expected user list, got %q", got)
	}
}
