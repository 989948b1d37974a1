// Package model defines the Unified Dungeon Model: the single typed
// currency passed between the format adapter registry, the spatial
// inference engine, the metric rule set, and the quality assessor.
// Adapters construct it from raw documents; the inference engine returns
// an enriched copy; everything after that treats it as read-only.
package model
