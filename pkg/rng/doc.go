// Package rng provides deterministic random number generation for evaluation
// rules that need to sample rather than exhaustively enumerate.
//
// # Overview
//
// The RNG type derives a stage-specific seed from a master seed, so a rule
// that samples (currently just path_diversity's over-cap pair sampler) gets
// a reproducible sequence without depending on global RNG state shared
// across rules or levels.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: top-level seed for the evaluation run
//   - stageName: identifies the rule and level (e.g. "path_diversity:level-1")
//   - configHash: hash of the assessor configuration in effect
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
//	r := rng.NewRNG(0, "path_diversity:"+levelID, nil)
//	r.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
//
// path_diversity passes a master seed of 0 and no config hash, so its
// sequence depends on the level id alone.
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance.
package rng
