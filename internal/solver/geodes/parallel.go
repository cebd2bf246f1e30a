package geodes

import (
	"context"
	"sync"

	"github.com/napolitain/solver-geodes/internal/models"
)

// solveParallel expands the top of the tree breadth-first, then searches the
// frontier subtrees concurrently against one shared Best
func (s *Solver) solveParallel(ctx context.Context, budget int) (Result, error) {
	workers := s.Options.Workers
	depth := s.Options.SplitDepth
	if depth <= 0 {
		depth = models.DefaultSplitDepth
	}

	frontier, expanded := Frontier(NewState(), &s.Blueprint, s.Options, budget, depth, workers*MinFrontierPerWorker)

	best := NewBest(0)
	jobs := make(chan State)
	walkers := make([]*walker, workers)

	var wg sync.WaitGroup
	for i := range walkers {
		w := newWalker(ctx, &s.Blueprint, s.Options, budget, best)
		walkers[i] = w

		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range jobs {
				w.walk(st)
			}
		}()
	}

feed:
	for _, st := range frontier {
		select {
		case jobs <- st:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Nodes: expanded}
	for _, w := range walkers {
		st := w.stats()
		res.Nodes += st.Nodes
		res.Pruned += st.Pruned
		res.Leaves += st.Leaves
	}
	res.MaxGeodes = best.Load()
	return res, nil
}

// Frontier expands root level by level until maxDepth levels have been
// expanded or the frontier holds at least minSize states. States that reached
// the budget are carried over unchanged. The left-to-right order matches the
// depth-first visiting order. It also returns the number of expanded states.
func Frontier(root State, bp *models.Blueprint, opts Options, budget, maxDepth, minSize int) ([]State, int64) {
	level := []State{root}
	var expanded int64

	for d := 0; d < maxDepth && len(level) < minSize; d++ {
		next := make([]State, 0, len(level)*2)
		for _, st := range level {
			if st.Time >= budget {
				next = append(next, st)
				continue
			}
			expanded++
			next = AppendBranches(next, st, bp, opts)
		}
		level = next
	}

	return level, expanded
}
