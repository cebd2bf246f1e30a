package geodes

// Search tuning constants
const (
	// CancelCheckInterval is how many nodes are visited between context checks
	// (a power of two so the check is a cheap mask)
	CancelCheckInterval = 1 << 12

	// MinFrontierPerWorker is the frontier size per worker at which the
	// parallel search stops expanding breadth-first, even before SplitDepth
	MinFrontierPerWorker = 8
)
