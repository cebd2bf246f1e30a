package models

import "fmt"

// UnitType identifies a robot kind and, by the same index, the resource it produces
type UnitType int

const (
	Ore UnitType = iota
	Clay
	Obsidian
	Geode
)

// NumUnitTypes is the number of robot kinds (and resources)
const NumUnitTypes = 4

// AllUnitTypes returns all unit types in production-chain order
func AllUnitTypes() []UnitType {
	return []UnitType{Ore, Clay, Obsidian, Geode}
}

// String returns the lowercase resource name
func (u UnitType) String() string {
	switch u {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnitType converts a resource name back into a UnitType
func ParseUnitType(name string) (UnitType, error) {
	for _, u := range AllUnitTypes() {
		if u.String() == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown unit type %q", name)
}

// Costs is an amount per resource, indexed by UnitType
type Costs [NumUnitTypes]int

// Covers returns true if every component of c is at least the matching cost
func (c Costs) Covers(cost Costs) bool {
	for i := range c {
		if c[i] < cost[i] {
			return false
		}
	}
	return true
}

// IsZero returns true if no resource is required
func (c Costs) IsZero() bool {
	return c == Costs{}
}
