package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napolitain/solver-geodes/internal/models"
)

const exampleInput = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

const exampleJSON = `{"blueprints": [
  {"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}},
  {"id": 2, "ore": {"ore": 2}, "clay": {"ore": 3}, "obsidian": {"ore": 3, "clay": 8}, "geode": {"ore": 3, "obsidian": 12}}
]}`

var wantExamples = []models.Blueprint{
	models.NewBlueprint(1, 4, 2, 3, 14, 2, 7),
	models.NewBlueprint(2, 2, 3, 3, 8, 3, 12),
}

func checkExamples(t *testing.T, got []models.Blueprint) {
	t.Helper()
	if len(got) != len(wantExamples) {
		t.Fatalf("Expected %d blueprints, got %d", len(wantExamples), len(got))
	}
	for i := range wantExamples {
		if got[i] != wantExamples[i] {
			t.Errorf("Blueprint %d = %+v, want %+v", i, got[i], wantExamples[i])
		}
	}
}

func TestReadBlueprints(t *testing.T) {
	got, err := ReadBlueprints(strings.NewReader(exampleInput))
	if err != nil {
		t.Fatalf("ReadBlueprints failed: %v", err)
	}
	checkExamples(t, got)
}

func TestReadBlueprintsSkipsBlankLines(t *testing.T) {
	input := "\n\n" + strings.ReplaceAll(exampleInput, "\n", "\n\n")
	got, err := ReadBlueprints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadBlueprints failed: %v", err)
	}
	checkExamples(t, got)
}

func TestParseBlueprintRoundTrip(t *testing.T) {
	for _, bp := range wantExamples {
		got, err := ParseBlueprint(bp.String())
		if err != nil {
			t.Fatalf("ParseBlueprint(%q) failed: %v", bp.String(), err)
		}
		if got != bp {
			t.Errorf("Round trip changed blueprint: %+v -> %+v", bp, got)
		}
	}
}

func TestParseBlueprintErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"no header", "Each ore robot costs 4 ore.", ErrMalformedBlueprint},
		{"bad sentence", "Blueprint 1: Each ore robot needs 4 ore.", ErrMalformedBlueprint},
		{"unknown robot", "Blueprint 1: Each diamond robot costs 4 ore.", ErrMalformedBlueprint},
		{"unknown resource", "Blueprint 1: Each ore robot costs 4 gold. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.", ErrMalformedBlueprint},
		{"too few costs", "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore. Each geode robot costs 2 ore and 7 obsidian.", ErrMalformedBlueprint},
		{"too many costs", "Blueprint 1: Each ore robot costs 4 ore and 1 clay. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.", ErrMalformedBlueprint},
		{"missing robot", "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay.", ErrMalformedBlueprint},
		{"duplicate robot", "Blueprint 1: Each ore robot costs 4 ore. Each ore robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.", ErrMalformedBlueprint},
		{"zero id", "Blueprint 0: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.", models.ErrInvalidBlueprint},
		{"free robot", "Blueprint 1: Each ore robot costs 0 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.", models.ErrInvalidBlueprint},
	}

	for _, tc := range tests {
		_, err := ParseBlueprint(tc.line)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseBlueprintRejectsWrongCostShape(t *testing.T) {
	const (
		ore      = "Each ore robot costs 4 ore."
		clay     = "Each clay robot costs 2 ore."
		obsidian = "Each obsidian robot costs 3 ore and 14 clay."
		geode    = "Each geode robot costs 2 ore and 7 obsidian."
	)
	line := func(sentences ...string) string {
		return "Blueprint 1: " + strings.Join(sentences, " ")
	}

	tests := []struct {
		name string
		line string
	}{
		{"ore robot paid in clay", line("Each ore robot costs 4 clay.", clay, obsidian, geode)},
		{"clay robot paid in geodes", line(ore, "Each clay robot costs 2 geode.", obsidian, geode)},
		{"obsidian robot paid twice in ore", line(ore, clay, "Each obsidian robot costs 3 ore and 14 ore.", geode)},
		{"obsidian robot paid in obsidian", line(ore, clay, "Each obsidian robot costs 3 ore and 14 obsidian.", geode)},
		{"geode robot paid in clay", line(ore, clay, obsidian, "Each geode robot costs 2 ore and 7 clay.")},
	}

	for _, tc := range tests {
		bp, err := ParseBlueprint(tc.line)
		if !errors.Is(err, ErrMalformedBlueprint) {
			t.Errorf("%s: expected ErrMalformedBlueprint, got %v (robots %v)", tc.name, err, bp.Robots)
		}
	}

	// Component order is free as long as the shape matches
	swapped, err := ParseBlueprint(line(ore, clay, obsidian, "Each geode robot costs 7 obsidian and 2 ore."))
	if err != nil {
		t.Fatalf("Swapped components rejected: %v", err)
	}
	if swapped != wantExamples[0] {
		t.Errorf("Swapped components = %+v, want %+v", swapped, wantExamples[0])
	}
}

func TestParsedBlueprintPrintsAsInput(t *testing.T) {
	for _, line := range strings.Split(strings.TrimSpace(exampleInput), "\n") {
		bp, err := ParseBlueprint(line)
		if err != nil {
			t.Fatalf("ParseBlueprint failed: %v", err)
		}
		if got := bp.String(); got != line {
			t.Errorf("String() = %q, want %q", got, line)
		}
	}
}

func TestReadBlueprintsReportsLine(t *testing.T) {
	input := exampleInput + "Blueprint 3: garbage\n"
	_, err := ReadBlueprints(strings.NewReader(input))
	if err == nil {
		t.Fatal("Expected an error for the malformed third line")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Error should name line 3: %v", err)
	}
}

func TestLoadBlueprintsJSON(t *testing.T) {
	got, err := LoadBlueprintsJSON([]byte(exampleJSON))
	if err != nil {
		t.Fatalf("LoadBlueprintsJSON failed: %v", err)
	}
	checkExamples(t, got)
}

func TestLoadBlueprintsJSONTopLevelArray(t *testing.T) {
	array := strings.TrimSuffix(strings.TrimPrefix(exampleJSON, `{"blueprints": `), "}")
	got, err := LoadBlueprintsJSON([]byte(array))
	if err != nil {
		t.Fatalf("LoadBlueprintsJSON failed: %v", err)
	}
	checkExamples(t, got)
}

func TestLoadBlueprintsJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"invalid json", `{"blueprints": [`, ErrMalformedBlueprint},
		{"not an array", `{"blueprints": 3}`, ErrMalformedBlueprint},
		{"missing id", `[{"ore": {"ore": 4}}]`, ErrMalformedBlueprint},
		{"missing robot", `[{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}}]`, ErrMalformedBlueprint},
		{"unknown resource", `[{"id": 1, "ore": {"gold": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"string amount", `[{"id": 1, "ore": {"ore": "4"}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"missing clay cost", `[{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"foreign resource", `[{"id": 1, "ore": {"ore": 4, "clay": 1}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"ore robot paid in clay", `[{"id": 1, "ore": {"clay": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"duplicate resource", `[{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "ore": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"fractional amount", `[{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2.9, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"fractional id", `[{"id": 1.5, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, ErrMalformedBlueprint},
		{"zero clay cost", `[{"id": 1, "ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 0}, "geode": {"ore": 2, "obsidian": 7}}]`, models.ErrInvalidBlueprint},
		{"negative cost", `[{"id": 1, "ore": {"ore": -4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]`, models.ErrInvalidBlueprint},
	}

	for _, tc := range tests {
		_, err := LoadBlueprintsJSON([]byte(tc.data))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoadBlueprintsFromFiles(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(textPath, []byte(exampleInput), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "input.json")
	if err := os.WriteFile(jsonPath, []byte(exampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{textPath, jsonPath} {
		got, err := LoadBlueprints(path)
		if err != nil {
			t.Fatalf("LoadBlueprints(%s) failed: %v", path, err)
		}
		checkExamples(t, got)
	}

	if _, err := LoadBlueprints(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func FuzzParseBlueprint(f *testing.F) {
	for _, line := range strings.Split(strings.TrimSpace(exampleInput), "\n") {
		f.Add(line)
	}
	f.Add("Blueprint 1:")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		bp, err := ParseBlueprint(line)
		if err != nil {
			return
		}
		// Anything accepted must satisfy the model invariants
		if verr := bp.Validate(); verr != nil {
			t.Fatalf("Accepted invalid blueprint %+v: %v", bp, verr)
		}
	})
}
