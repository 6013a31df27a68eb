// Package planner handles the planning phase of a set shuffle.
//
// The planner turns a snapshot of named items and a target permutation of their
// names into an ordered list of single-item renames. The remote side enforces
// name uniqueness at every instant, so the plan is built to never assign a name
// that another item still holds.
//
// Key responsibilities:
//   - Validate that the target is a permutation of the current, unique names
//   - Decompose the permutation into cycles and skip fixed points
//   - Open each non-trivial cycle with a disposable temporary name
//   - Order renames so each one targets the name released by the previous one
package planner
