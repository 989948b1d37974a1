package rules

import (
	"fmt"
	"sync"

	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/model"
)

// Category is one of the three aggregation buckets a rule belongs to (§4.E).
type Category string

const (
	Structural Category = "structural"
	Gameplay   Category = "gameplay"
	Aesthetic  Category = "aesthetic"
)

// Detail is a rule's free-form diagnostic payload, serialized verbatim
// into AssessmentResult.scores[rule_id].detail.
type Detail map[string]any

// Result is what every rule evaluation produces.
type Result struct {
	Score  float64
	Detail Detail
}

// degrade builds the standard "can't apply" result (§4.D: "a rule that
// cannot apply ... returns (0.0, {reason}); it never raises").
func degrade(reason string) Result {
	return Result{Score: 0, Detail: Detail{"reason": reason}}
}

// EvalContext is the shared, read-only state every rule evaluates against
// — the finalized (post-inference) level and its precomputed graph (§9:
// "precompute [the adjacency] once and share among rules").
type EvalContext struct {
	Level *model.Level
	Graph *graphidx.Graph
}

// Rule pairs a stable identifier and category with the pure evaluation
// function.
type Rule struct {
	ID       string
	Category Category
	Evaluate func(ctx *EvalContext) Result
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Rule)
	order    []string
)

// Register adds a rule to the package-level registry. Panics on a
// duplicate id, matching this module's other registries.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[r.ID]; exists {
		panic(fmt.Sprintf("rules: Register(%s): already registered", r.ID))
	}
	registry[r.ID] = r
	order = append(order, r.ID)
}

// All returns every registered rule, in registration order.
func All() []Rule {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Rule, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}

// Get looks up a single rule by id.
func Get(id string) (Rule, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[id]
	return r, ok
}
