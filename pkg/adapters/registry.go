// Package adapters is the format adapter registry (§4.B): every supported
// input format registers a Detector and a Converter, and Convert picks the
// first detector that claims the document and runs its matching converter.
package adapters

import (
	"fmt"
	"sync"

	"github.com/dshills/dungeoncheck/pkg/apperr"
	"github.com/dshills/dungeoncheck/pkg/model"
)

// Detector reports whether raw looks like this adapter's format. Detectors
// must be cheap and side-effect free — Detect calls every registered
// detector in registration order, so that later matches can be reported
// as ambiguous.
type Detector func(raw []byte) bool

// Converter turns a raw document already claimed by this adapter's
// Detector into a Dungeon. Errors returned here are adapter-internal and
// are never propagated raw to a caller — Convert wraps them as
// ConversionFailed (§7).
type Converter func(raw []byte) (*model.Dungeon, error)

type entry struct {
	name      string
	detect    Detector
	convert   Converter
}

var (
	mu       sync.RWMutex
	registry = make(map[string]entry)
	// order preserves registration order so Detect is deterministic
	// regardless of Go's randomized map iteration.
	order []string
)

// Register adds a named adapter to the registry. Panics if name is already
// registered, matching the registration-time-fail-fast convention used
// throughout this module's registries.
func Register(name string, detect Detector, convert Converter) {
	mu.Lock()
	defer mu.Unlock()

	if detect == nil || convert == nil {
		panic(fmt.Sprintf("adapters: Register(%s): detect and convert must both be non-nil", name))
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("adapters: Register(%s): already registered", name))
	}
	registry[name] = entry{name: name, detect: detect, convert: convert}
	order = append(order, name)
}

// Names returns every registered adapter name in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Detect returns the name of the first registered adapter whose Detector
// claims raw, along with the names of any later adapters that also claim
// it (§4.B: "ambiguity is resolved by preferring the earliest registered
// successful match and logging the ambiguity"). Returns ("", nil, false)
// if none do.
func Detect(raw []byte) (name string, ambiguousWith []string, ok bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, n := range order {
		if registry[n].detect(raw) {
			if !ok {
				name, ok = n, true
				continue
			}
			ambiguousWith = append(ambiguousWith, n)
		}
	}
	return name, ambiguousWith, ok
}

// Convert detects the format of raw and converts it to a Dungeon (§4.B:
// "detect(raw) -> format_name; convert(raw, format_name) -> UnifiedDungeon").
// If no adapter claims the document, returns apperr.NoMatchingAdapter. If
// the matching adapter's Converter fails, the error is wrapped as
// apperr.ConversionFailed so adapter-internal error types never leak.
// warnings carries one entry per additional adapter that ambiguously also
// claimed the document; it is nil in the common unambiguous case.
func Convert(raw []byte) (dungeon *model.Dungeon, formatName string, warnings []string, err error) {
	name, ambiguousWith, ok := Detect(raw)
	if !ok {
		return nil, "", nil, apperr.NoMatchingAdapter("no registered adapter recognizes this document")
	}
	for _, other := range ambiguousWith {
		warnings = append(warnings, fmt.Sprintf(
			"format detection ambiguous: %q and %q both matched, used %q", name, other, name))
	}

	mu.RLock()
	e := registry[name]
	mu.RUnlock()

	d, err := e.convert(raw)
	if err != nil {
		return nil, name, warnings, apperr.ConversionFailed(name, err)
	}
	return d, name, warnings, nil
}

// ConvertAs converts raw using a specific named adapter, bypassing
// detection. Returns apperr.NoMatchingAdapter if name isn't registered.
func ConvertAs(name string, raw []byte) (*model.Dungeon, error) {
	mu.RLock()
	e, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, apperr.NoMatchingAdapter(fmt.Sprintf("adapter %q is not registered", name))
	}

	d, err := e.convert(raw)
	if err != nil {
		return nil, apperr.ConversionFailed(name, err)
	}
	return d, nil
}
