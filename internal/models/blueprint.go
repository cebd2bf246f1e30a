package models

import (
	"errors"
	"fmt"
)

// ErrInvalidBlueprint is returned by Validate for blueprints that break the cost invariants
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// costShape lists the resources each robot kind is paid in
var costShape = [NumUnitTypes][]UnitType{
	Ore:      {Ore},
	Clay:     {Ore},
	Obsidian: {Ore, Clay},
	Geode:    {Ore, Obsidian},
}

// CostResources returns the resources a robot of kind u is paid in
func CostResources(u UnitType) []UnitType {
	return costShape[u]
}

// PaysWith returns true if resource r is part of the cost of a robot of kind u
func PaysWith(u, r UnitType) bool {
	for _, c := range costShape[u] {
		if c == r {
			return true
		}
	}
	return false
}

// Blueprint is the immutable cost table for the four robot kinds
type Blueprint struct {
	ID     int
	Robots [NumUnitTypes]Costs // Robots[u] is the cost of one robot of kind u
}

// NewBlueprint builds a blueprint from the seven numbers of the puzzle format
func NewBlueprint(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) Blueprint {
	var bp Blueprint
	bp.ID = id
	bp.Robots[Ore][Ore] = oreOre
	bp.Robots[Clay][Ore] = clayOre
	bp.Robots[Obsidian][Ore] = obsidianOre
	bp.Robots[Obsidian][Clay] = obsidianClay
	bp.Robots[Geode][Ore] = geodeOre
	bp.Robots[Geode][Obsidian] = geodeObsidian
	return bp
}

// Cost returns the cost vector of one robot of kind u
func (b *Blueprint) Cost(u UnitType) Costs {
	return b.Robots[u]
}

// MaxSpend returns the largest amount of resource r that any single build consumes.
// Owning more robots of kind r than this is never useful, since only one
// robot is built per step.
func (b *Blueprint) MaxSpend(r UnitType) int {
	max := 0
	for _, cost := range b.Robots {
		if cost[r] > max {
			max = cost[r]
		}
	}
	return max
}

// Validate checks that every robot is paid in exactly the resources of its
// cost shape, each with a positive amount
func (b *Blueprint) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("%w: id %d is not positive", ErrInvalidBlueprint, b.ID)
	}
	for _, u := range AllUnitTypes() {
		cost := b.Robots[u]
		if cost.IsZero() {
			return fmt.Errorf("%w: blueprint %d: %s robot is free", ErrInvalidBlueprint, b.ID, u)
		}
		for _, r := range AllUnitTypes() {
			switch {
			case cost[r] < 0:
				return fmt.Errorf("%w: blueprint %d: %s robot has negative %s cost",
					ErrInvalidBlueprint, b.ID, u, r)
			case PaysWith(u, r) && cost[r] == 0:
				return fmt.Errorf("%w: blueprint %d: %s robot is missing its %s cost",
					ErrInvalidBlueprint, b.ID, u, r)
			case !PaysWith(u, r) && cost[r] != 0:
				return fmt.Errorf("%w: blueprint %d: %s robot cannot cost %s",
					ErrInvalidBlueprint, b.ID, u, r)
			}
		}
	}
	return nil
}

// String returns the canonical one-line text form
func (b Blueprint) String() string {
	return fmt.Sprintf("Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. "+
		"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian.",
		b.ID,
		b.Robots[Ore][Ore],
		b.Robots[Clay][Ore],
		b.Robots[Obsidian][Ore], b.Robots[Obsidian][Clay],
		b.Robots[Geode][Ore], b.Robots[Geode][Obsidian])
}
