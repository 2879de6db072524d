package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/castletype/internal/config"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/route"
	"github.com/verte-zerg/castletype/internal/sim"
	"github.com/verte-zerg/castletype/internal/stats"
	"github.com/verte-zerg/castletype/internal/wordlist"
)

const (
	defaultBarWidth = 40
	defaultRounds   = 5
	defaultCPS      = 6.0
	defaultAccuracy = 0.95
)

var (
	wordsPath string

	simRounds     int
	simCPS        float64
	simAccuracy   float64
	simSeed       int64
	simDifficulty string
	simLives      int
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect a word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsPath, "words", "", "word list (default: configured or built-in)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	path := wordsPath
	if path == "" {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		cfg, err := loadConfig(cmd, os.LookupEnv)
		if err != nil {
			return err
		}
		path = cfg.WordsPath
	}
	catalog, err := wordlist.Load(config.ResolveWordsPath(path))
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	if err := renderWords(cmd.OutOrStdout(), catalog, barWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func renderWords(w io.Writer, catalog *wordlist.Catalog, width int) error {
	words := catalog.Words()
	shortest, longest := words[0], words[0]
	counts := map[string]int{}
	for _, word := range words {
		if len(word) < len(shortest) {
			shortest = word
		}
		if len(word) > len(longest) {
			longest = word
		}
		counts[word[:1]]++
	}
	lines := []string{
		fmt.Sprintf("Source: %s", catalog.Source()),
		fmt.Sprintf("Words: %d", catalog.Len()),
		fmt.Sprintf("Shortest: %s (%d)", shortest, len(shortest)),
		fmt.Sprintf("Longest: %s (%d)", longest, len(longest)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	letters := make([]string, 0, len(counts))
	maxCount := 0
	for letter, n := range counts {
		letters = append(letters, letter)
		maxCount = max(maxCount, n)
	}
	sort.Strings(letters)
	rows := make([][]string, 0, len(letters))
	for _, letter := range letters {
		n := counts[letter]
		bar := strings.Repeat("#", max(1, n*width/maxCount))
		rows = append(rows, []string{
			letter,
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.1f%%", float64(n)*100/float64(len(words))),
			bar,
		})
	}
	return stats.WriteTable(w, []string{"First", "Words", "Share", ""}, rows, map[int]bool{1: true, 2: true})
}

// barWidth fits the distribution bars to the terminal, if there is one.
func barWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultBarWidth
	}
	return max(10, min(width-30, 80))
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the enemy routes",
		Args:  cobra.NoArgs,
		RunE:  runRoutesCmd,
	}
}

func runRoutesCmd(cmd *cobra.Command, _ []string) error {
	if err := renderRoutes(cmd.OutOrStdout(), route.Default()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func renderRoutes(w io.Writer, table *route.Table) error {
	vp := table.Reference()
	if _, err := fmt.Fprintf(w, "Reference viewport: %.0f x %.0f\n\n", vp.Width, vp.Height); err != nil {
		return err
	}
	for _, sp := range route.SpawnPoints {
		if _, err := fmt.Fprintf(w, "%s\n", sp); err != nil {
			return err
		}
		rows := make([][]string, 0, table.Len(sp))
		for i := 0; i < table.Len(sp); i++ {
			p := table.Checkpoint(sp, i, vp)
			rows = append(rows, []string{
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%.1f", p.X),
				fmt.Sprintf("%.1f", p.Y),
				table.Turn(sp, i).String(),
			})
		}
		if err := stats.WriteTable(w, []string{"#", "X", "Y", "Turn"}, rows, map[int]bool{0: true, 1: true, 2: true}); err != nil {
			return err
		}
	}
	return nil
}

func newSimulateCmd() *cobra.Command {
	defaults := config.Defaults()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play headlessly with a bot typist",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().IntVar(&simRounds, "rounds", defaultRounds, "rounds to play")
	cmd.Flags().Float64Var(&simCPS, "cps", defaultCPS, "bot typing speed in characters per second")
	cmd.Flags().Float64Var(&simAccuracy, "accuracy", defaultAccuracy, "probability that a keystroke is correct (0-1)")
	cmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&simDifficulty, "difficulty", defaults.Difficulty.String(), "difficulty: easy, medium or hard")
	cmd.Flags().IntVar(&simLives, "lives", defaults.Lives, "castle lives")
	cmd.Flags().StringVar(&wordsPath, "words", "", "word list (default built-in)")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	difficulty, err := model.ParseDifficulty(simDifficulty)
	if err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}
	catalog, err := wordlist.Load(wordsPath)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := seedOrClock(simSeed)
	res, err := sim.Run(ctx, sim.Options{
		Rounds:     simRounds,
		CPS:        simCPS,
		Accuracy:   simAccuracy,
		Seed:       seed,
		Difficulty: difficulty,
		Lives:      simLives,
	}, catalog)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if err := renderSimulation(cmd.OutOrStdout(), seed, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func renderSimulation(w io.Writer, seed int64, res sim.Result) error {
	if err := stats.RenderRounds(w, res.Rounds); err != nil {
		return err
	}
	outcome := "finished"
	switch {
	case res.Lost:
		outcome = "castle fell"
	case res.TimedOut:
		outcome = "timed out"
	}
	lines := []string{
		fmt.Sprintf("Seed: %d", seed),
		fmt.Sprintf("Outcome: %s after %s", outcome, res.Elapsed.Round(sim.Frame)),
		fmt.Sprintf("Score: %d", res.Score),
		fmt.Sprintf("Enemies typed: %d, lost: %d", res.Typed, res.Missed),
		fmt.Sprintf("Keys: %d, mistyped: %d", res.Keys, res.Mistypes),
	}
	if len(res.Rounds) > 0 {
		lines = append(lines, fmt.Sprintf("WPM: %s", stats.Sparkline(stats.RoundWPMs(res.Rounds))))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
