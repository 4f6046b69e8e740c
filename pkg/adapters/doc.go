// Package adapters holds the reconciliation strategies used by sync and check.
//
// An adapter accepts a (source, destination) pair, produces a plan of actions
// for it, and answers whether the destination already matches that plan. The
// structured adapters derive both answers from one SubdirMapping table so the
// two cannot drift apart: planMappings and checkMappings walk the same
// mappings, the same files and the same rename and transform functions.
//
// Tool conventions are described as layouts (see layouts.go). The mapping table
// for any pair is computed from the two layouts alone, which makes "tool to
// canonical" and "canonical to tool" the same routine.
package adapters
