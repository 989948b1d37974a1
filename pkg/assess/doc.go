// Package assess is the quality assessor (§4.E): it runs the enabled
// rules from pkg/rules over a post-inference model, aggregates their
// scores into category and overall scores, assigns a letter grade, and
// synthesizes improvement recommendations.
package assess
