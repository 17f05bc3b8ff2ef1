// Package flip provides the pseudo-label perturbation strategies used by
// the collective optimizer, together with the per-instance prediction
// history they consult.
//
// A Flipper decides, for one instance inside a contiguous dataset region,
// whether to keep or change its current pseudo-label given the
// classifier's prediction. Three policies ship with the package:
//
//   - Simple    — resample the label from the predicted distribution.
//   - Triangle  — toggle with probability max(5/count, 1−2·(p−0.5)),
//     where p is the confidence in the predicted class: always reconsider
//     at maximal uncertainty, and never fall below a size-dependent floor
//     so confident labels are still revisited occasionally.
//   - Confident — resample only when the prediction moved by at least
//     delta since the previous pass (disagreement gating).
//
// Every Flipper records the distribution it obtained into the History
// exactly once per invocation, flip or no flip, so the history stays
// current across iterations.
//
// Randomness is injected: each call receives an explicit *rand.Rand so a
// fixed seed reproduces a run and unit tests stay deterministic. Nothing
// in this package reads global RNG state.
//
// Triangle and Confident assume a binary class attribute; they return
// ErrNotBinary otherwise. Simple samples from the full distribution and
// works for any class count.
package flip
