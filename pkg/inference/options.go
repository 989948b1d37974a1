package inference

// Options configures the spatial inference engine (§4.C).
type Options struct {
	// AdjacencyThreshold is the maximum gap, in grid units, between two
	// room bounds still considered adjacent.
	AdjacencyThreshold float64
	// MinOverlap is the minimum length of a shared edge segment, in grid
	// units, for two rooms to count as adjacent.
	MinOverlap float64
	// InferDoors places a door at the midpoint of every inferred adjacency.
	InferDoors bool
	// InferEntranceExit labels entrance/exit when no room already carries
	// either flag.
	InferEntranceExit bool
}

// DefaultOptions returns the documented defaults (§4.C).
func DefaultOptions() Options {
	return Options{
		AdjacencyThreshold: 1.0,
		MinOverlap:         0.5,
		InferDoors:         true,
		InferEntranceExit:  true,
	}
}
