package geodes

import "github.com/napolitain/solver-geodes/internal/models"

// The two blueprints from the puzzle statement
var (
	exampleOne = models.NewBlueprint(1, 4, 2, 3, 14, 2, 7)
	exampleTwo = models.NewBlueprint(2, 2, 3, 3, 8, 3, 12)
	// Every robot costs one of each ingredient: geodes come early, search is small
	cheap = models.NewBlueprint(3, 1, 1, 1, 1, 1, 1)
)

func testBlueprints() []models.Blueprint {
	return []models.Blueprint{exampleOne, exampleTwo, cheap}
}

// bruteForce returns the true optimum from s by trying every affordable
// decision at every step, with no bound and no pruning rules
func bruteForce(s State, bp *models.Blueprint, budget int) int {
	memo := make(map[State]int)
	var rec func(State) int
	rec = func(s State) int {
		if s.Time >= budget {
			return s.Geodes()
		}
		if v, ok := memo[s]; ok {
			return v
		}
		best := rec(s.JustHarvest())
		for _, u := range models.AllUnitTypes() {
			if s.CanAfford(u, bp) {
				best = max(best, rec(s.Build(u, bp)))
			}
		}
		memo[s] = best
		return best
	}
	return rec(s)
}

// reachable returns every distinct state reachable from the initial state in
// at most depth steps, using all decisions
func reachable(bp *models.Blueprint, depth int) []State {
	seen := map[State]bool{NewState(): true}
	level := []State{NewState()}
	all := []State{NewState()}
	for d := 0; d < depth; d++ {
		var next []State
		for _, s := range level {
			for _, n := range Branches(s, bp, Options{}) {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
					all = append(all, n)
				}
			}
		}
		level = next
	}
	return all
}
