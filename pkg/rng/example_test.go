package rng_test

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/dungeoncheck/pkg/rng"
)

// newShuffledPairs derives an RNG from the given inputs and uses it to
// shuffle the fixed pair list path_diversity samples from, mirroring the
// exact call shape pkg/rules/path_diversity.go makes.
func newShuffledPairs(masterSeed uint64, stageName string, configHash []byte) []string {
	r := rng.NewRNG(masterSeed, stageName, configHash)
	pairs := []string{"r1-r2", "r2-r3", "r3-r4", "r4-r5", "r5-r1"}
	r.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	return pairs
}

// TestNewRNGIsDeterministicAndStageIsolated exercises the derivation
// path_diversity relies on: same (masterSeed, stageName, configHash)
// always reproduces the same sequence, and different stage names (here,
// different level ids) produce independent sequences.
func TestNewRNGIsDeterministicAndStageIsolated(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := sha256.Sum256([]byte("assessor_config_v1"))

	a := newShuffledPairs(masterSeed, "path_diversity:level-1", configHash[:])
	b := newShuffledPairs(masterSeed, "path_diversity:level-2", configHash[:])
	repeat := newShuffledPairs(masterSeed, "path_diversity:level-1", configHash[:])

	if stringsEqual(a, b) {
		t.Error("expected different stage names to derive different shuffles")
	}
	for i := range a {
		if a[i] != repeat[i] {
			t.Errorf("expected identical inputs to reproduce identical shuffles, diverged at index %d: %v vs %v", i, a, repeat)
			break
		}
	}
}

// TestShuffleIsDeterministic is the property path_diversity's pair
// sampler depends on: shuffling the same slice from the same derived
// seed always yields the same order.
func TestShuffleIsDeterministic(t *testing.T) {
	first := newShuffledPairs(42, "path_diversity:level-1", []byte("config"))
	second := newShuffledPairs(42, "path_diversity:level-1", []byte("config"))
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("shuffle order diverged at index %d: %v vs %v", i, first, second)
			break
		}
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
