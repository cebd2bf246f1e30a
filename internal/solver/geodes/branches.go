package geodes

import "github.com/napolitain/solver-geodes/internal/models"

// MaxBranches is the largest number of successors a single state can have
const MaxBranches = models.NumUnitTypes + 1

// buildOrder is the order in which non-geode robots are tried
var buildOrder = [...]models.UnitType{models.Obsidian, models.Clay, models.Ore}

// Branches returns the successor states of s for one step
func Branches(s State, bp *models.Blueprint, opts Options) []State {
	return AppendBranches(make([]State, 0, MaxBranches), s, bp, opts)
}

// AppendBranches appends the successor states of s to dst and returns the extended slice.
//
// With GreedyGeode set, an affordable geode robot is the only successor. This
// is an accepted heuristic for the puzzle's cost structures rather than a
// general law, so it can be switched off.
// With Saturation set, a robot of kind u is only proposed while the robots of
// that kind produce less than the largest amount of u a single build spends.
// Building nothing is always a successor unless the greedy rule applies.
func AppendBranches(dst []State, s State, bp *models.Blueprint, opts Options) []State {
	if s.CanAfford(models.Geode, bp) {
		dst = append(dst, s.Build(models.Geode, bp))
		if opts.GreedyGeode {
			return dst
		}
	}

	for _, u := range buildOrder {
		if opts.Saturation && s.Robots[u] >= bp.MaxSpend(u) {
			continue
		}
		if s.CanAfford(u, bp) {
			dst = append(dst, s.Build(u, bp))
		}
	}

	return append(dst, s.JustHarvest())
}
