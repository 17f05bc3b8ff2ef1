// Package collective - staged configuration validation.
//
// Validation is fail-fast and happens once, in New: an invalid option is
// a configuration error surfaced immediately, never clamped to a legal
// value or warned about and ignored.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - Only sentinel errors from types.go.
package collective

import (
	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// validateOptions checks internal consistency of Options without
// referencing datasets.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Restarts <= 0 {
		return ErrBadRestarts
	}
	if opts.Iterations <= 0 {
		return ErrBadIterations
	}
	if opts.Flipper == nil {
		return ErrNilFlipper
	}

	switch opts.Metric {
	case MetricRMSOverall, MetricRMSTrain, MetricRMSTest, MetricAccuracyTrain:
		// ok
	default:
		return ErrBadMetric
	}

	switch opts.Policy {
	case RandomWalkLast, RandomWalkBest, HillClimbing:
		// ok
	default:
		return ErrBadPolicy
	}

	return nil
}

// validateInputs checks the learner and datasets handed to New.
//
// Contract:
//   - clf non-nil; train non-empty and fully labeled (the training
//     region is scored against its stored labels); pool non-nil (may be
//     empty); identical schema values; truth, when given, parallel to
//     pool with the same schema and fully labeled.
//
// Complexity: O(n_train + n_truth).
func validateInputs(clf classify.Classifier, train, pool, truth *dataset.Dataset) error {
	if clf == nil {
		return ErrNilClassifier
	}
	if train == nil || pool == nil {
		return dataset.ErrNilDataset
	}
	if train.Len() == 0 {
		return dataset.ErrEmptyDataset
	}
	if train.Schema != pool.Schema {
		return dataset.ErrSchemaMismatch
	}
	if err := requireLabeled(train); err != nil {
		return err
	}

	if truth != nil {
		if truth.Schema != pool.Schema {
			return dataset.ErrSchemaMismatch
		}
		if truth.Len() != pool.Len() {
			return ErrGroundTruthSize
		}
		if err := requireLabeled(truth); err != nil {
			return err
		}
	}

	return nil
}

// requireLabeled rejects datasets containing any unlabeled instance.
func requireLabeled(ds *dataset.Dataset) error {
	var i int
	for i = 0; i < ds.Len(); i++ {
		if !ds.Instances[i].Labeled() {
			return ErrUnlabeledInstance
		}
	}

	return nil
}
