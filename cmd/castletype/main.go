// Package main provides the CLI entrypoint for castletype.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/castletype/internal/config"
	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/sound"
	"github.com/verte-zerg/castletype/internal/stats"
	"github.com/verte-zerg/castletype/internal/tui"
	"github.com/verte-zerg/castletype/internal/wordlist"
)

var (
	configPath string

	playDifficulty  string
	playLives       int
	playWords       string
	playSeed        int64
	playFPS         int
	playSpawnChance float64
	playSound       bool
	playLogFile     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Defaults()
	rootCmd := &cobra.Command{
		Use:           "castletype",
		Short:         "Typing tower defense in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/castletype/config.toml)")
	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", defaults.Difficulty.String(), "difficulty: easy, medium or hard")
	rootCmd.Flags().IntVar(&playLives, "lives", defaults.Lives, "castle lives (1-99)")
	rootCmd.Flags().StringVar(&playWords, "words", "", "word list (.txt, .toml or .lua; default built-in)")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().IntVar(&playFPS, "fps", defaults.FPS, "frames per second (10-240)")
	rootCmd.Flags().Float64Var(&playSpawnChance, "spawn-chance", defaults.SpawnChance, "probability that a spawn timer tick spawns an enemy (0-1]")
	rootCmd.Flags().BoolVar(&playSound, "sound", false, "play sound cues")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", "", "write diagnostics to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

// loadConfig layers the settings: defaults, config file, .env and the
// environment, then flags the user set explicitly.
func loadConfig(cmd *cobra.Command, lookup config.LookupFunc) (model.Config, error) {
	cfg := config.Defaults()
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyFile(&cfg, fileCfg); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("difficulty") {
		d, err := model.ParseDifficulty(playDifficulty)
		if err != nil {
			return cfg, fmt.Errorf("--difficulty: %w", err)
		}
		cfg.Difficulty = d
	}
	applyIntFlag(cmd, "lives", &cfg.Lives, playLives)
	applyStringFlag(cmd, "words", &cfg.WordsPath, playWords)
	applyInt64Flag(cmd, "seed", &cfg.Seed, playSeed)
	applyIntFlag(cmd, "fps", &cfg.FPS, playFPS)
	applyFloatFlag(cmd, "spawn-chance", &cfg.SpawnChance, playSpawnChance)
	applyBoolFlag(cmd, "sound", &cfg.Sound, playSound)
	applyStringFlag(cmd, "log-file", &cfg.LogFile, playLogFile)

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("castletype needs an interactive terminal; try `castletype simulate`")
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := wordlist.Load(config.ResolveWordsPath(cfg.WordsPath))
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	logger.Info("loaded word list", zap.Int("words", catalog.Len()), zap.String("source", catalog.Source()))

	events := event.NewDispatcher()
	tui.LogEvents(events, logger)
	if cfg.Sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", zap.Error(err))
			logErrf("sound disabled: %v\n", err)
		} else {
			defer player.Close()
			player.Subscribe(events)
		}
	}

	g := game.New(game.Options{
		Difficulty:  cfg.Difficulty,
		Lives:       cfg.Lives,
		SpawnChance: cfg.SpawnChance,
		Events:      events,
	}, catalog, rand.New(rand.NewSource(seedOrClock(cfg.Seed))))

	m := tui.NewModel(cfg, g)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderRounds(out, m.History()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSummary(out, m.History()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// newLogger writes JSON lines to path, or discards everything when path is
// empty.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg.Build()
}

func seedOrClock(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyInt64Flag(cmd *cobra.Command, name string, target *int64, value int64) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyFloatFlag(cmd *cobra.Command, name string, target *float64, value float64) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func defaultConfigTemplate() string {
	d := config.Defaults()
	return fmt.Sprintf(`# castletype configuration
# Uncomment a value to enable it.
# CASTLETYPE_* environment variables override this file; CLI flags override both.

[game]
# difficulty = %q     # easy, medium or hard
# lives = %d               # Castle lives (1-99)
# words = ""              # Word list: .txt (one per line), .toml (vec_of_words) or .lua (words)
# seed = 0                # Random seed, 0 picks one from the clock
# fps = %d                # Frames per second (10-240)
# spawn-chance = %.1f       # Probability that a spawn timer tick spawns an enemy (0-1]
# sound = false           # Play sound cues
# log-file = ""           # Write diagnostics to this file
`,
		d.Difficulty.String(),
		d.Lives,
		d.FPS,
		d.SpawnChance,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
