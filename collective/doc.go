// Package collective implements transductive semi-supervised learning
// via stochastic label flipping with randomized restarts.
//
// The optimizer owns a combined dataset: the original training set
// followed by copies of the unlabeled pool. Each restart re-randomizes
// the pool's pseudo-labels from the training class prior, then runs a
// fixed iteration budget of
//
//	flip → retrain → score → maybe-adopt-best
//
// cycles. Flipping delegates to a pluggable flip.Flipper; scoring
// computes region RMS and accuracy; the best labeling/model seen across
// all restarts is kept as a deep snapshot under a selectable comparison
// metric. No convergence detection exists — budgets are fixed, and the
// restart/iteration of the last improvement is exposed so callers can
// judge whether the budget sufficed.
//
// Evaluation policies decide what serves predictions afterwards:
//
//   - RandomWalkLast — the most recently trained model.
//   - RandomWalkBest — the best snapshot.
//   - HillClimbing   — the best snapshot, and flipping itself consults
//     the best model's predictions, turning the search into greedy
//     ascent from the incumbent instead of a random walk.
//
// Design principles, shared with the rest of the module:
//   - Deterministic: one run seed; per-restart RNG streams are derived
//     with a SplitMix64-style mix, so sequential and (future) parallel
//     execution reproduce bit-for-bit.
//   - Strict sentinels: configuration problems fail fast at
//     construction; nothing is clamped or warned-and-ignored.
//   - Explicit state: restart and iteration indices are parameters and
//     results, never hidden globals.
//
// Minimal usage:
//
//	opt, err := collective.New(classify.NewCentroid(0), train, unlabeled,
//	    collective.WithRestarts(3),
//	    collective.WithIterations(5),
//	    collective.WithSeed(42),
//	)
//	if err != nil { ... }
//	sum, err := opt.Run(ctx)
//	dist, err := opt.PredictDistribution(someInstance)
package collective
