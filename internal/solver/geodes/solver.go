package geodes

import (
	"context"

	"github.com/napolitain/solver-geodes/internal/models"
)

// Options controls the pruning rules and parallelism of a search
type Options struct {
	GreedyGeode bool // Only branch on the geode robot when it is affordable
	Saturation  bool // Skip robots whose kind is already produced at the max spend rate
	Workers     int  // Goroutines for one blueprint; <= 1 searches sequentially
	SplitDepth  int  // Max frontier depth for the parallel split (0 = models.DefaultSplitDepth)
}

// DefaultOptions returns the sequential search with both pruning rules enabled
func DefaultOptions() Options {
	return Options{
		GreedyGeode: true,
		Saturation:  true,
	}
}

// OptionsFromConfig maps a run configuration onto search options
func OptionsFromConfig(cfg models.Config, workers int) Options {
	return Options{
		GreedyGeode: cfg.GreedyGeode,
		Saturation:  cfg.Saturation,
		Workers:     workers,
		SplitDepth:  cfg.SplitDepth,
	}
}

// Result holds the optimum and search statistics
type Result struct {
	MaxGeodes int
	Nodes     int64 // States visited
	Pruned    int64 // States cut by the upper bound
	Leaves    int64 // States that reached the budget
}

// Solver is the branch-and-bound search for one blueprint
type Solver struct {
	Blueprint models.Blueprint
	Options   Options
}

// NewSolver creates a solver for bp
func NewSolver(bp models.Blueprint, opts Options) *Solver {
	return &Solver{
		Blueprint: bp,
		Options:   opts,
	}
}

// Solve returns the maximum number of geodes obtainable within budget steps
func Solve(bp models.Blueprint, budget int) int {
	return NewSolver(bp, DefaultOptions()).Solve(budget).MaxGeodes
}

// Solve runs the search to completion
func (s *Solver) Solve(budget int) Result {
	res, _ := s.SolveContext(context.Background(), budget)
	return res
}

// SolveContext runs the search, stopping early if ctx is cancelled.
// The only error it returns is ctx.Err().
func (s *Solver) SolveContext(ctx context.Context, budget int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Options.Workers > 1 {
		return s.solveParallel(ctx, budget)
	}

	best := NewBest(0)
	w := newWalker(ctx, &s.Blueprint, s.Options, budget, best)
	w.walk(NewState())
	if w.err != nil {
		return Result{}, w.err
	}

	res := w.stats()
	res.MaxGeodes = best.Load()
	return res, nil
}

// walker performs the depth-first traversal; one per goroutine
type walker struct {
	ctx    context.Context
	bp     *models.Blueprint
	opts   Options
	budget int
	best   *Best

	nodes  int64
	pruned int64
	leaves int64
	err    error
}

func newWalker(ctx context.Context, bp *models.Blueprint, opts Options, budget int, best *Best) *walker {
	return &walker{
		ctx:    ctx,
		bp:     bp,
		opts:   opts,
		budget: budget,
		best:   best,
	}
}

// walk explores the subtree rooted at s.
// The recursion depth is bounded by the budget.
func (w *walker) walk(s State) {
	if w.err != nil {
		return
	}

	w.nodes++
	if w.nodes&(CancelCheckInterval-1) == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return
		}
	}

	if UpperBound(s, w.budget) <= w.best.Load() {
		w.pruned++
		return
	}

	if s.Time >= w.budget {
		w.leaves++
		w.best.Raise(s.Geodes())
		return
	}

	var buf [MaxBranches]State
	for _, next := range AppendBranches(buf[:0], s, w.bp, w.opts) {
		w.walk(next)
	}
}

func (w *walker) stats() Result {
	return Result{
		Nodes:  w.nodes,
		Pruned: w.pruned,
		Leaves: w.leaves,
	}
}
