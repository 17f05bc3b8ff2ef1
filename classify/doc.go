// Package classify defines the base-learner contract consumed by the
// collective optimizer, plus one small reference learner.
//
// The optimizer never inspects a learner's internals. It only needs:
//
//	Train(ctx, dataset)            — fit on the current combined pool
//	PredictDistribution(instance)  — per-class probability vector
//	Clone()                        — deep snapshot for best-model keeping
//
// Any concrete classifier satisfying Classifier can be substituted; the
// nearest-centroid learner in this package exists so the optimizer can be
// exercised and tested without an external model.
//
// Errors follow the usual sentinel discipline: training failures are in
// the ErrTraining class (wrapped with %w), prediction on an untrained
// model yields ErrNotTrained. No retries happen anywhere; a learner
// failure is fatal for the optimizer restart that triggered it.
package classify
