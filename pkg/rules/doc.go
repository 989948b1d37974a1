// Package rules is the metric rule set (§4.D): nine independent pure
// functions over a level's graph and geometry, each returning a score in
// [0,1] plus a detail record. A rule that cannot apply degrades to
// (0.0, {reason}); it never returns an error (§7: "rules never raise").
package rules
