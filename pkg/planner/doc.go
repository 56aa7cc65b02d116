// Package planner compiles a bookmark tree into window plans.
//
// The planner is the pure half of tabforge: it walks the tree depth first,
// children strictly in input order, and decides which folders become
// windows and which become tab groups. The executor replays the result.
//
// Key rules:
//   - Links go into the window of the folder walk currently fills
//   - Leaf folders (no sub-folders) become a Group in the current window
//   - Mixed folders (at least one sub-folder) open a new window
//   - "[color]" and "[collapsed]" title suffixes style the resulting group
//   - A root window left without content is pruned when other windows exist
package planner
