// Package inference is the spatial inference engine (§4.C): it recovers
// missing topology from room/corridor geometry, appending inferred
// connections and doors, and labelling entrance/exit when the input
// didn't. It never mutates its input in place — Infer rebuilds a new
// *model.Dungeon with the appended collections, matching the rebuild-not-
// mutate guidance for ownership-checked languages.
package inference
