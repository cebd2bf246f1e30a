package solver

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/napolitain/solver-geodes/internal/models"
	"github.com/napolitain/solver-geodes/internal/solver/geodes"
)

// Aggregator runs one independent search per blueprint and reduces the results
type Aggregator struct {
	Options geodes.Options // Per-blueprint search options
	Workers int            // Blueprints searched concurrently (0 = NumCPU)
	Logger  *slog.Logger
}

// NewAggregator creates an aggregator from a run configuration
func NewAggregator(cfg models.Config, logger *slog.Logger) *Aggregator {
	workers, intra := poolSizes(cfg, runtime.NumCPU())
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		Options: geodes.OptionsFromConfig(cfg, intra),
		Workers: workers,
		Logger:  logger,
	}
}

// poolSizes splits cpus between concurrent blueprint searches and the walkers
// inside one search, so their product stays within cpus.
// Without a split depth each blueprint is searched sequentially. With one, an
// unset Workers means one blueprint at a time using every CPU.
func poolSizes(cfg models.Config, cpus int) (workers, intra int) {
	workers = cfg.Workers
	if cfg.SplitDepth <= 0 {
		return workers, 0
	}
	if workers <= 0 {
		workers = 1
	}
	return workers, cpus / workers
}

// Run searches every blueprint with the given budget.
// Results are returned in input order.
func (a *Aggregator) Run(ctx context.Context, blueprints []models.Blueprint, budget int) ([]models.BlueprintResult, error) {
	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(blueprints) {
		workers = len(blueprints)
	}

	results := make([]models.BlueprintResult, len(blueprints))
	errs := make([]error, len(blueprints))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = a.solveOne(ctx, blueprints[i], budget)
			}
		}()
	}

feed:
	for i := range blueprints {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (a *Aggregator) solveOne(ctx context.Context, bp models.Blueprint, budget int) (models.BlueprintResult, error) {
	start := time.Now()
	res, err := geodes.NewSolver(bp, a.Options).SolveContext(ctx, budget)
	if err != nil {
		return models.BlueprintResult{}, err
	}
	elapsed := time.Since(start)

	a.Logger.Debug("blueprint solved",
		"id", bp.ID,
		"budget", budget,
		"geodes", res.MaxGeodes,
		"nodes", res.Nodes,
		"pruned", res.Pruned,
		"elapsed", elapsed)

	return models.BlueprintResult{
		BlueprintID: bp.ID,
		Budget:      budget,
		MaxGeodes:   res.MaxGeodes,
		Nodes:       res.Nodes,
		Pruned:      res.Pruned,
		Elapsed:     elapsed,
	}, nil
}

// Report runs the quality pass over all blueprints and the extended pass over
// the first TopN blueprints
func (a *Aggregator) Report(ctx context.Context, blueprints []models.Blueprint, cfg models.Config) (*models.Report, error) {
	start := time.Now()

	quality, err := a.Run(ctx, blueprints, cfg.Budget)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("quality pass complete", "blueprints", len(quality), "budget", cfg.Budget)

	top, err := a.Run(ctx, FirstN(blueprints, cfg.TopN), cfg.ExtendedBudget)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("top pass complete", "blueprints", len(top), "budget", cfg.ExtendedBudget)

	return &models.Report{
		Quality:    quality,
		QualitySum: QualitySum(quality),
		Top:        top,
		TopProduct: TopProduct(top, cfg.TopN),
		Elapsed:    time.Since(start),
	}, nil
}

// QualitySum returns the sum of max geodes weighted by blueprint id
func QualitySum(results []models.BlueprintResult) int {
	total := 0
	for _, r := range results {
		total += r.Quality()
	}
	return total
}

// TopProduct returns the product of max geodes of the first n results.
// The product over no results is 1.
func TopProduct(results []models.BlueprintResult, n int) int {
	total := 1
	for _, r := range FirstN(results, n) {
		total *= r.MaxGeodes
	}
	return total
}

// FirstN returns at most the first n elements of items
func FirstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
