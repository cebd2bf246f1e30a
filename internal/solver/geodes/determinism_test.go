package geodes

import "testing"

// TestSolverDeterminism verifies that repeated runs on the same blueprint
// produce the same optimum and, for the sequential search, the same traversal
func TestSolverDeterminism(t *testing.T) {
	const iterations = 20

	for _, bp := range testBlueprints() {
		first := NewSolver(bp, DefaultOptions()).Solve(24)

		for i := 1; i < iterations; i++ {
			got := NewSolver(bp, DefaultOptions()).Solve(24)
			if got != first {
				t.Errorf("Blueprint %d iteration %d: got %+v, want %+v", bp.ID, i, got, first)
			}
		}
	}
}

func TestParallelDeterministicOptimum(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = 8
	opts.SplitDepth = 4

	for i := 0; i < 10; i++ {
		if got := NewSolver(exampleTwo, opts).Solve(24); got.MaxGeodes != 12 {
			t.Fatalf("Iteration %d: parallel search found %d, want 12", i, got.MaxGeodes)
		}
	}
}
