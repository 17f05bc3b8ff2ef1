// Package classify - learner contract and sentinel errors.
package classify

import (
	"context"
	"errors"

	"github.com/katalvlaran/colearn/dataset"
)

// Sentinel errors returned by learners in this package. External
// learners are encouraged to wrap these so callers can errors.Is them.
var (
	// ErrTraining is the class of all training failures.
	ErrTraining = errors.New("classify: training failed")

	// ErrEmptyTrainingSet indicates Train received no instances.
	ErrEmptyTrainingSet = errors.New("classify: empty training set")

	// ErrNoLabeledTraining indicates Train received a dataset without a
	// single labeled instance.
	ErrNoLabeledTraining = errors.New("classify: no labeled training instances")

	// ErrNotTrained indicates PredictDistribution was called before a
	// successful Train.
	ErrNotTrained = errors.New("classify: model was never trained")

	// ErrSchemaMismatch indicates a prediction instance that does not
	// conform to the training schema.
	ErrSchemaMismatch = errors.New("classify: instance does not match training schema")
)

// Classifier is the capability the collective optimizer consumes.
//
// Train fits the model on ds; it must fail (wrapping ErrTraining) on
// invalid or insufficient data rather than degrade silently.
// PredictDistribution returns a probability vector over the schema's
// classes, summing to 1; it fails with ErrNotTrained before training.
// Clone returns a deep, independent snapshot of the current model state;
// the optimizer uses it as the best-model copy boundary, so Clone must
// never share mutable state with the receiver.
type Classifier interface {
	Train(ctx context.Context, ds *dataset.Dataset) error
	PredictDistribution(inst *dataset.Instance) ([]float64, error)
	Clone() Classifier
}
