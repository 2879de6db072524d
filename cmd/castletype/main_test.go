package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/verte-zerg/castletype/internal/config"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/route"
	"github.com/verte-zerg/castletype/internal/sim"
	"github.com/verte-zerg/castletype/internal/wordlist"
)

func noEnv(string) (string, bool) { return "", false }

func withConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	configPath = path
	t.Cleanup(func() { configPath = "" })
}

func TestLoadConfigPrecedence(t *testing.T) {
	cmd := newRootCmd()
	withConfigFile(t, "[game]\ndifficulty = \"hard\"\nlives = 7\nfps = 30\n")
	if err := cmd.Flags().Set("fps", "120"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	lookup := func(key string) (string, bool) {
		if key == config.EnvLives {
			return "9", true
		}
		return "", false
	}
	cfg, err := loadConfig(cmd, lookup)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Difficulty != model.Hard {
		t.Fatalf("expected difficulty from file, got %s", cfg.Difficulty)
	}
	if cfg.Lives != 9 {
		t.Fatalf("expected lives from env, got %d", cfg.Lives)
	}
	if cfg.FPS != 120 {
		t.Fatalf("expected fps from flag, got %d", cfg.FPS)
	}
	if cfg.SpawnChance != 1 {
		t.Fatalf("expected default spawn chance, got %v", cfg.SpawnChance)
	}
}

func TestLoadConfigUnchangedFlagsKeepFile(t *testing.T) {
	cmd := newRootCmd()
	withConfigFile(t, "[game]\nlives = 3\n")
	cfg, err := loadConfig(cmd, noEnv)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Lives != 3 {
		t.Fatalf("flag default overrode the file: lives %d", cfg.Lives)
	}
}

func TestLoadConfigValidates(t *testing.T) {
	cmd := newRootCmd()
	withConfigFile(t, "")
	if err := cmd.Flags().Set("lives", "0"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := loadConfig(cmd, noEnv); err == nil {
		t.Fatalf("expected validation error")
	}

	cmd = newRootCmd()
	withConfigFile(t, "")
	if err := cmd.Flags().Set("difficulty", "nightmare"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := loadConfig(cmd, noEnv); err == nil || !strings.Contains(err.Error(), "--difficulty") {
		t.Fatalf("expected difficulty error, got %v", err)
	}
}

func TestConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("writeConfigTemplate: %v", err)
	}
	fc, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if fc.Game.Lives != nil || fc.Game.Difficulty != nil {
		t.Fatalf("template values must be commented out")
	}

	if err := os.WriteFile(path, []byte("[game]\nlives = 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("writeConfigTemplate: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[game]\nlives = 4\n" {
		t.Fatalf("existing config was overwritten")
	}
}

func TestRenderRoutes(t *testing.T) {
	var buf bytes.Buffer
	if err := renderRoutes(&buf, route.Default()); err != nil {
		t.Fatalf("renderRoutes: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Reference viewport: 1856 x 1018", "top-left", "bottom-right", "-928.0", "Turn"} {
		if !strings.Contains(out, want) {
			t.Fatalf("routes output missing %q:\n%s", want, out)
		}
	}
}

func TestRoutesCommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"routes"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "left") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRenderWords(t *testing.T) {
	catalog, err := wordlist.NewCatalog("test", []string{"apple", "axe", "bee"})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var buf bytes.Buffer
	if err := renderWords(&buf, catalog, 10); err != nil {
		t.Fatalf("renderWords: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Words: 3", "Shortest: axe (3)", "Longest: apple (5)", "##########", "66.7%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("words output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "###########") {
		t.Fatalf("bar wider than requested:\n%s", out)
	}
}

func TestRenderSimulation(t *testing.T) {
	catalog, err := wordlist.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	res, err := sim.Run(context.Background(), sim.Options{
		Rounds:     1,
		CPS:        20,
		Accuracy:   1,
		Seed:       7,
		Difficulty: model.Medium,
	}, catalog)
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	var buf bytes.Buffer
	if err := renderSimulation(&buf, 7, res); err != nil {
		t.Fatalf("renderSimulation: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Seed: 7", "Outcome: finished", "Round", "WPM:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("simulation output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castletype.log")
	logger, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("loaded word list", zap.Int("words", 42))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"loaded word list"`) || !strings.Contains(line, `"words":42`) {
		t.Fatalf("unexpected log line %q", line)
	}
}

func TestNewLoggerWithoutPathDiscards(t *testing.T) {
	logger, err := newLogger("")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected a no-op logger")
	}
}
