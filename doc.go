// Package colearn is a collective-classification toolkit: it labels a
// pool of unlabeled instances by stochastic label flipping around any
// retrainable base learner, keeping the best labeling found across
// random restarts.
//
// 🚀 What is colearn?
//
//	A deterministic, seed-reproducible library that brings together:
//		• Dataset primitives: schemas, weighted instances, class priors
//		• Combined pools: train + pseudo-labeled copies, originals untouched
//		• Flip strategies: Simple resampling, Triangle toggling, Confident gating
//		• Flip history: per-instance last & average predicted distributions
//		• Restart optimizer: flip → retrain → score → adopt-on-strict-improvement
//		• Scoring: region RMS, pooled overall RMS, diagnostic ground-truth RMS
//		• Serving policies: RandomWalkLast, RandomWalkBest, HillClimbing
//
// ✨ Why choose colearn?
//
//   - Deterministic – one seed, one trajectory, bit-for-bit reruns
//   - Learner-agnostic – any Train/PredictDistribution/Clone implementation plugs in
//   - Honest scoring – ground truth feeds diagnostics only, never the loop
//   - Observable – zap telemetry and CSV iteration traces on demand
//
// Under the hood, everything is organized under four subpackages:
//
//	dataset/    — Schema, Instance, Dataset, content index & combined pools
//	classify/   — the Classifier contract + a nearest-centroid reference learner
//	flip/       — Flipper strategies, flip history, strategy registry
//	collective/ — the restart optimizer, scoring, tracing & policies
//
// Quick sketch of one restart:
//
//	seed labels from prior ─→ train ─→ score ─┐
//	        ▲                                 │
//	        └── flip pseudo-labels ←──────────┘  (best snapshot kept on strict improvement)
//
// Dive into the collective package example for an end-to-end run.
//
//	go get github.com/katalvlaran/colearn
package colearn
