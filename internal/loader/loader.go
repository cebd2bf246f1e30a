package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/napolitain/solver-geodes/internal/models"
)

// ErrMalformedBlueprint is returned for input that does not describe a blueprint
var ErrMalformedBlueprint = errors.New("malformed blueprint")

// Precompiled patterns for the blueprint sentence format
var (
	headerRegex = regexp.MustCompile(`^Blueprint\s+(\d+)\s*:\s*(.*)$`)
	robotRegex  = regexp.MustCompile(`^Each\s+(\w+)\s+robot\s+costs\s+(.+)$`)
	costRegex   = regexp.MustCompile(`^(\d+)\s+(\w+)$`)
)

// LoadBlueprints reads blueprints from a file, or from stdin when path is "-".
// Files ending in .json are decoded with LoadBlueprintsJSON.
func LoadBlueprints(path string) ([]models.Blueprint, error) {
	if path == "-" {
		return ReadBlueprints(os.Stdin)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return LoadBlueprintsJSON(data)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ReadBlueprints(file)
}

// ReadBlueprints parses one blueprint per line, skipping blank lines
func ReadBlueprints(r io.Reader) ([]models.Blueprint, error) {
	var blueprints []models.Blueprint

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		bp, err := ParseBlueprint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		blueprints = append(blueprints, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	return blueprints, nil
}

// ParseBlueprint parses a single line such as
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. ...
//
// Every robot kind must appear exactly once with the expected number of costs.
func ParseBlueprint(line string) (models.Blueprint, error) {
	var bp models.Blueprint

	header := headerRegex.FindStringSubmatch(strings.TrimSpace(line))
	if header == nil {
		return bp, fmt.Errorf("%w: missing \"Blueprint <id>:\" header in %q", ErrMalformedBlueprint, line)
	}

	id, err := strconv.Atoi(header[1])
	if err != nil {
		return bp, fmt.Errorf("%w: bad id %q: %v", ErrMalformedBlueprint, header[1], err)
	}
	bp.ID = id

	var seen [models.NumUnitTypes]bool
	for _, sentence := range strings.Split(header[2], ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		unit, costs, err := parseRobotSentence(sentence)
		if err != nil {
			return bp, fmt.Errorf("blueprint %d: %w", id, err)
		}
		if seen[unit] {
			return bp, fmt.Errorf("%w: blueprint %d: %s robot listed twice", ErrMalformedBlueprint, id, unit)
		}
		seen[unit] = true
		bp.Robots[unit] = costs
	}

	for _, u := range models.AllUnitTypes() {
		if !seen[u] {
			return bp, fmt.Errorf("%w: blueprint %d: missing %s robot cost", ErrMalformedBlueprint, id, u)
		}
	}

	if err := bp.Validate(); err != nil {
		return bp, err
	}
	return bp, nil
}

// parseRobotSentence parses "Each obsidian robot costs 3 ore and 14 clay"
func parseRobotSentence(sentence string) (models.UnitType, models.Costs, error) {
	var costs models.Costs

	m := robotRegex.FindStringSubmatch(sentence)
	if m == nil {
		return 0, costs, fmt.Errorf("%w: unexpected sentence %q", ErrMalformedBlueprint, sentence)
	}

	unit, err := models.ParseUnitType(m[1])
	if err != nil {
		return 0, costs, fmt.Errorf("%w: %v", ErrMalformedBlueprint, err)
	}

	want := models.CostResources(unit)
	parts := strings.Split(m[2], " and ")
	if len(parts) != len(want) {
		return 0, costs, fmt.Errorf("%w: wrong number of costs for %s robot - expected %d, got %d",
			ErrMalformedBlueprint, unit, len(want), len(parts))
	}

	var seen [models.NumUnitTypes]bool
	for _, part := range parts {
		cm := costRegex.FindStringSubmatch(strings.TrimSpace(part))
		if cm == nil {
			return 0, costs, fmt.Errorf("%w: bad cost %q for %s robot", ErrMalformedBlueprint, part, unit)
		}
		amount, err := strconv.Atoi(cm[1])
		if err != nil {
			return 0, costs, fmt.Errorf("%w: bad amount %q: %v", ErrMalformedBlueprint, cm[1], err)
		}
		resource, err := models.ParseUnitType(cm[2])
		if err != nil {
			return 0, costs, fmt.Errorf("%w: %v", ErrMalformedBlueprint, err)
		}
		if !models.PaysWith(unit, resource) {
			return 0, costs, fmt.Errorf("%w: %s robot cannot cost %s", ErrMalformedBlueprint, unit, resource)
		}
		if seen[resource] {
			return 0, costs, fmt.Errorf("%w: %s cost listed twice for %s robot", ErrMalformedBlueprint, resource, unit)
		}
		seen[resource] = true
		costs[resource] = amount
	}

	return unit, costs, nil
}
