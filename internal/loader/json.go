package loader

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/napolitain/solver-geodes/internal/models"
)

// LoadBlueprintsJSON decodes blueprints from either a top-level array or an
// object with a "blueprints" array. Each entry looks like
//
//	{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2},
//	 "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}
func LoadBlueprintsJSON(data []byte) ([]models.Blueprint, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBlueprint)
	}

	list := gjson.GetBytes(data, "blueprints")
	if !list.Exists() {
		list = gjson.ParseBytes(data)
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of blueprints", ErrMalformedBlueprint)
	}

	var blueprints []models.Blueprint
	var parseErr error
	list.ForEach(func(idx, v gjson.Result) bool {
		bp, err := parseBlueprintJSON(v)
		if err != nil {
			parseErr = fmt.Errorf("entry %d: %w", idx.Int(), err)
			return false
		}
		blueprints = append(blueprints, bp)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return blueprints, nil
}

func parseBlueprintJSON(v gjson.Result) (models.Blueprint, error) {
	var bp models.Blueprint

	if !v.IsObject() {
		return bp, fmt.Errorf("%w: expected an object", ErrMalformedBlueprint)
	}

	id := v.Get("id")
	if id.Type != gjson.Number || id.Num != float64(id.Int()) {
		return bp, fmt.Errorf("%w: missing whole-number id", ErrMalformedBlueprint)
	}
	bp.ID = int(id.Int())

	for _, u := range models.AllUnitTypes() {
		robot := v.Get(u.String())
		if !robot.IsObject() {
			return bp, fmt.Errorf("%w: blueprint %d: missing %s robot cost", ErrMalformedBlueprint, bp.ID, u)
		}

		var err error
		var seen [models.NumUnitTypes]bool
		robot.ForEach(func(key, amount gjson.Result) bool {
			resource, perr := models.ParseUnitType(key.String())
			if perr != nil {
				err = fmt.Errorf("%w: blueprint %d: %v", ErrMalformedBlueprint, bp.ID, perr)
				return false
			}
			if !models.PaysWith(u, resource) {
				err = fmt.Errorf("%w: blueprint %d: %s robot cannot cost %s", ErrMalformedBlueprint, bp.ID, u, resource)
				return false
			}
			if seen[resource] {
				err = fmt.Errorf("%w: blueprint %d: %s cost listed twice for %s robot",
					ErrMalformedBlueprint, bp.ID, resource, u)
				return false
			}
			if amount.Type != gjson.Number || amount.Num != float64(amount.Int()) {
				err = fmt.Errorf("%w: blueprint %d: %s robot %s cost is not a whole number",
					ErrMalformedBlueprint, bp.ID, u, resource)
				return false
			}
			seen[resource] = true
			bp.Robots[u][resource] = int(amount.Int())
			return true
		})
		if err != nil {
			return bp, err
		}

		for _, r := range models.CostResources(u) {
			if !seen[r] {
				return bp, fmt.Errorf("%w: blueprint %d: %s robot is missing its %s cost",
					ErrMalformedBlueprint, bp.ID, u, r)
			}
		}
	}

	if err := bp.Validate(); err != nil {
		return bp, err
	}
	return bp, nil
}
