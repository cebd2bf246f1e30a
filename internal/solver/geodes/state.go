package geodes

import (
	"fmt"

	"github.com/napolitain/solver-geodes/internal/models"
)

// State is a snapshot of the production line at one point in time.
// It is a value type: every transition returns a fresh copy.
type State struct {
	Stock  models.Costs // Resources on hand, indexed by UnitType
	Robots models.Costs // Active robots, indexed by UnitType
	Time   int          // Elapsed steps
}

// NewState returns the initial state: one ore robot, nothing else
func NewState() State {
	var s State
	s.Robots[models.Ore] = 1
	return s
}

// Harvest returns the state after one step in which every robot produces one unit
func (s State) Harvest() State {
	for i := range s.Stock {
		s.Stock[i] += s.Robots[i]
	}
	s.Time++
	return s
}

// JustHarvest is the "build nothing" decision
func (s State) JustHarvest() State {
	return s.Harvest()
}

// CanAfford returns true if the current stock covers one robot of kind u
func (s State) CanAfford(u models.UnitType, bp *models.Blueprint) bool {
	return s.Stock.Covers(bp.Cost(u))
}

// Build orders a robot of kind u: harvest, then pay, then add the robot.
// The new robot starts producing on the next step.
// Panics if the pre-harvest stock does not cover the cost.
func (s State) Build(u models.UnitType, bp *models.Blueprint) State {
	if !s.CanAfford(u, bp) {
		panic(fmt.Sprintf("geodes: cannot afford %s robot at t=%d (stock %v, cost %v)",
			u, s.Time, s.Stock, bp.Cost(u)))
	}
	next := s.Harvest()
	cost := bp.Cost(u)
	for i := range next.Stock {
		next.Stock[i] -= cost[i]
	}
	next.Robots[u]++
	return next
}

// Geodes returns the geodes collected so far
func (s State) Geodes() int {
	return s.Stock[models.Geode]
}

// Remaining returns the steps left before budget, never negative
func (s State) Remaining(budget int) int {
	if s.Time >= budget {
		return 0
	}
	return budget - s.Time
}

// String returns a compact representation for debugging
func (s State) String() string {
	return fmt.Sprintf("t=%d stock=%v robots=%v", s.Time, s.Stock, s.Robots)
}
