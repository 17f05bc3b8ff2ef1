// Package dataset provides the tabular data model shared by all
// collective-classification components: typed attribute schemas, weighted
// instances with optional class labels, ordered datasets, a deterministic
// content comparator, a binary-searchable content index, and the combined
// train+pool dataset mutated by the optimizer.
//
// Design principles:
//   - Deterministic: comparisons and index lookups are pure functions of
//     the stored values; no map iteration order leaks into results.
//   - Strict sentinels: only errors declared in types.go; no panics on
//     user input.
//   - Explicit ownership: Clone produces fully independent deep copies so
//     restart-local state never aliases caller data.
//
// A pseudo-label is structurally indistinguishable from a real label: it
// is an ordinary Label value most recently written by the optimizer
// rather than by ground truth. The content comparator therefore supports
// excluding the class from comparison, so a relabeled instance still
// matches its original content identity.
package dataset
