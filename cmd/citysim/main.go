package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/napolitain/citysim/internal/engine"
	"github.com/napolitain/citysim/internal/loader"
	"github.com/napolitain/citysim/internal/models"
)

var (
	dataDir    string
	configFile string
	difficulty string
	seed       uint64
	logLevel   string
	quiet      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "citysim",
		Short: "Sustainable City Simulator",
		Long: `You're the mayor of a growing city. Over the next years, make it more
sustainable while keeping citizens happy and staying within your budget.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&dataDir, "data", "d", "", "Path to data directory with policies.json and events.json (built-in tables if empty)")
	flags.StringVarP(&configFile, "config", "c", "", "Path to YAML settings file")
	flags.StringVar(&difficulty, "difficulty", "normal", "Difficulty preset: casual, normal or hard")
	flags.Uint64Var(&seed, "seed", 0, "Seed for random events (0 picks a random seed)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(newPlayCmd(), newSimulateCmd(), newCatalogCmd())
	return rootCmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		RunE:  runPlay,
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show policy options and random events",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}
}

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return fmt.Errorf("play needs an interactive terminal; use `citysim simulate` for scripted runs")
	}

	game, err := newGame()
	if err != nil {
		return err
	}
	return playInteractive(game)
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func loadCatalog() (*models.Catalog, error) {
	if dataDir == "" {
		return loader.DefaultCatalog()
	}
	catalog, err := loader.LoadCatalog(dataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	return catalog, nil
}

func loadSettings() (models.Settings, error) {
	settings, err := models.SettingsForDifficulty(difficulty)
	if err != nil {
		return models.Settings{}, err
	}
	if configFile != "" {
		settings, err = models.LoadSettings(configFile, settings)
		if err != nil {
			return models.Settings{}, fmt.Errorf("error loading config: %w", err)
		}
	}
	return settings, nil
}

func newGame() (*engine.Game, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, engine.WithSeed(seed))
	}

	e, err := engine.New(catalog, settings, opts...)
	if err != nil {
		return nil, err
	}

	if !quiet {
		color.New(color.FgYellow).Fprintf(os.Stderr, "📦 Loaded %d policy options, %d events (%s, %d years)\n",
			countOptions(catalog), len(catalog.Events), strings.ToLower(difficulty), settings.Horizon)
	}
	return engine.NewGame(e), nil
}

func countOptions(c *models.Catalog) int {
	n := 0
	for _, cat := range models.AllCategories() {
		n += len(c.Options(cat))
	}
	return n
}
