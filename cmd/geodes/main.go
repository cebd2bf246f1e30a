package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/napolitain/solver-geodes/internal/loader"
	"github.com/napolitain/solver-geodes/internal/models"
	"github.com/napolitain/solver-geodes/internal/solver"
	"github.com/napolitain/solver-geodes/internal/solver/geodes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(newViper()).ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// newViper returns the settings store: every flag can also be set with a
// GEODES_* environment variable (dashes become underscores)
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GEODES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// newRootCmd builds the command tree and binds its flags into v
func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geodes",
		Short: "Geode Robot Production Optimizer",
		Long: `Finds, for every blueprint, the maximum number of geodes that can be
opened within a fixed number of minutes, then reports the quality sum
(all blueprints) and the product of the first blueprints' maxima.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (yaml, json or toml)")
	flags.Int("budget", models.DefaultBudget, "Minutes for the quality pass")
	flags.Int("extended-budget", models.DefaultExtendedBudget, "Minutes for the top pass")
	flags.Int("top", models.DefaultTopN, "Blueprints in the top pass")
	flags.Int("workers", 0, "Blueprints searched concurrently (0 = all CPUs, or 1 with --split-depth)")
	flags.Int("split-depth", 0, "Split each search across CPUs at this depth (0 = sequential)")
	flags.Bool("no-greedy", false, "Disable the always-build-geode-robot rule")
	flags.Bool("no-saturation", false, "Disable saturation pruning")
	flags.BoolP("quiet", "q", false, "Minimal output")
	flags.BoolP("verbose", "v", false, "Log every blueprint search")

	rootCmd.Flags().StringP("input", "i", "-", "Blueprint file (.txt or .json), - for stdin")
	rootCmd.Flags().Bool("json", false, "Print the report as JSON")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	if err := v.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newSolveCmd(v))
	return rootCmd
}

// newSolveCmd solves blueprints given directly on the command line
func newSolveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <blueprint>...",
		Short: "Solve blueprints given as arguments",
		Example: `  geodes solve --budget 24 "Blueprint 1: Each ore robot costs 4 ore. ` +
			`Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. ` +
			`Each geode robot costs 2 ore and 7 obsidian."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			intra := 0
			if cfg.SplitDepth > 0 {
				intra = runtime.NumCPU()
			}
			opts := geodes.OptionsFromConfig(cfg, intra)
			for _, arg := range args {
				bp, err := loader.ParseBlueprint(arg)
				if err != nil {
					return err
				}

				start := time.Now()
				result, err := geodes.NewSolver(bp, opts).SolveContext(cmd.Context(), cfg.Budget)
				if err != nil {
					return err
				}
				logger.Debug("blueprint solved",
					"id", bp.ID,
					"budget", cfg.Budget,
					"geodes", result.MaxGeodes,
					"elapsed", time.Since(start))

				fmt.Fprintf(cmd.OutOrStdout(), "Blueprint %d: %d geodes in %d minutes (%d nodes, %d pruned)\n",
					bp.ID, result.MaxGeodes, cfg.Budget, result.Nodes, result.Pruned)
			}
			return nil
		},
	}
}

func runReport(cmd *cobra.Command, v *viper.Viper) error {
	cfg, logger, err := setup(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	quiet := v.GetBool("quiet")
	jsonOut := v.GetBool("json")

	if !quiet && !jsonOut {
		printBanner()
	}

	input := v.GetString("input")
	blueprints, err := loader.LoadBlueprints(input)
	if err != nil {
		return fmt.Errorf("loading blueprints: %w", err)
	}
	logger.Info("blueprints loaded", "count", len(blueprints), "input", input)

	if !quiet && !jsonOut {
		printBlueprints(blueprints)
		printConfig(cfg)
	}

	agg := solver.NewAggregator(cfg, logger)
	report, err := agg.Report(cmd.Context(), blueprints, cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}
	if !quiet {
		printResults("Quality pass", report.Quality)
		printResults("Top pass", report.Top)
	}
	printSummary(report, cfg)
	return nil
}

// loadConfig merges flags, GEODES_* environment variables and the optional config file
func loadConfig(v *viper.Viper) (models.Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return models.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := models.Config{
		Budget:         v.GetInt("budget"),
		ExtendedBudget: v.GetInt("extended-budget"),
		TopN:           v.GetInt("top"),
		Workers:        v.GetInt("workers"),
		SplitDepth:     v.GetInt("split-depth"),
		GreedyGeode:    !v.GetBool("no-greedy"),
		Saturation:     !v.GetBool("no-saturation"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup loads the config, then installs the logger it asks for on w
func setup(v *viper.Viper, w io.Writer) (models.Config, *slog.Logger, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return cfg, nil, err
	}

	logger := newLogger(w, v)
	if !cfg.GreedyGeode || !cfg.Saturation {
		logger.Debug("pruning rules changed", "greedy", cfg.GreedyGeode, "saturation", cfg.Saturation)
	}
	return cfg, logger, nil
}

// newLogger writes text records to w at the level chosen by --verbose/--quiet
func newLogger(w io.Writer, v *viper.Viper) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case v.GetBool("verbose"):
		level = slog.LevelDebug
	case v.GetBool("quiet"):
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
