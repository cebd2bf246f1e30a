package geodes

import "github.com/napolitain/solver-geodes/internal/models"

// UpperBound returns an optimistic geode count reachable from s within budget.
//
// It assumes a geode robot can be built on every remaining step at no cost, so
// with r steps left and g geode robots the extra production is
// g + (g+1) + ... + (g+r-1) = r*g + r*(r-1)/2.
// The estimate never falls below the true optimum, which is what makes
// pruning on it exact.
func UpperBound(s State, budget int) int {
	r := s.Remaining(budget)
	g := s.Robots[models.Geode]
	return s.Geodes() + r*g + r*(r-1)/2
}
