// Package collective - configuration, policies and sentinel errors.
package collective

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/colearn/dataset"
	"github.com/katalvlaran/colearn/flip"
)

// Sentinel errors returned by the collective package.
var (
	// ErrBadRestarts indicates a non-positive restart budget.
	ErrBadRestarts = errors.New("collective: restarts must be positive")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = errors.New("collective: iterations must be positive")

	// ErrNilFlipper indicates a nil flip strategy.
	ErrNilFlipper = errors.New("collective: flipper is nil")

	// ErrBadMetric indicates an unknown comparison metric.
	ErrBadMetric = errors.New("collective: unknown comparison metric")

	// ErrBadPolicy indicates an unknown evaluation policy.
	ErrBadPolicy = errors.New("collective: unknown evaluation policy")

	// ErrNilClassifier indicates a nil base learner.
	ErrNilClassifier = errors.New("collective: classifier is nil")

	// ErrGroundTruthSize indicates a ground-truth dataset whose length
	// differs from the unlabeled pool it annotates.
	ErrGroundTruthSize = errors.New("collective: ground truth must match pool length")

	// ErrUnlabeledInstance indicates an unlabeled instance inside the
	// training set or the ground truth. Both are scored against their
	// stored labels, so every instance must carry one.
	ErrUnlabeledInstance = errors.New("collective: train and ground-truth instances must be labeled")

	// ErrNotRun indicates PredictDistribution was called before Run.
	ErrNotRun = errors.New("collective: optimizer has not produced a model yet")

	// ErrRestartFailed wraps a base-learner failure that aborted a
	// restart. The stochastic restarts are resilience against bad random
	// draws, not against learner failures, so no retry happens.
	ErrRestartFailed = errors.New("collective: restart aborted")
)

// Metric selects the scalar "goodness" used to compare labelings across
// iterations and restarts. RMS metrics are inverted internally so that a
// larger goodness is always better; ties are never improvements.
type Metric int

const (
	// MetricRMSOverall compares by pooled train+pool RMS.
	MetricRMSOverall Metric = iota

	// MetricRMSTrain compares by training-region RMS.
	MetricRMSTrain

	// MetricRMSTest compares by pool-region RMS (the min-mass score; no
	// ground truth involved).
	MetricRMSTest

	// MetricAccuracyTrain compares by training-region accuracy.
	MetricAccuracyTrain
)

// EvalPolicy selects which model serves predictions after Run, and for
// HillClimbing also which model's predictions drive flipping.
type EvalPolicy int

const (
	// RandomWalkLast serves the most recently trained model.
	RandomWalkLast EvalPolicy = iota

	// RandomWalkBest serves the best snapshot.
	RandomWalkBest

	// HillClimbing serves the best snapshot AND flips against the best
	// model's predictions once a best exists (greedy ascent from the
	// incumbent rather than a true random walk).
	HillClimbing
)

// Options configures the restart optimizer.
//
// Restarts / Iterations — outer and inner budgets, both ≥ 1.
// Flipper               — pseudo-label perturbation strategy.
// Metric / Policy       — comparison metric and evaluation policy.
// UpdateTraining        — include the training prefix in flip passes.
// ContinueOnError       — when a learner failure aborts a restart, move
// on to the next restart instead of failing the run (the failure is
// still reported when no restart succeeds).
// Seed                  — run seed; 0 selects the stable default.
// Logger                — optional zap logger for per-iteration
// telemetry; nil keeps the optimizer silent.
// Trace                 — optional CSV iteration trace.
type Options struct {
	Restarts        int
	Iterations      int
	Flipper         flip.Flipper
	Metric          Metric
	Policy          EvalPolicy
	UpdateTraining  bool
	ContinueOnError bool
	Seed            int64
	Logger          *zap.Logger
	Trace           *Trace

	// GroundTruth optionally holds the real labels of the unlabeled
	// pool, parallel to it. Diagnostic only: it feeds the ground-truth
	// RMS and test accuracy, never the learning loop.
	GroundTruth *dataset.Dataset
}

// Option is a functional option for configuring the optimizer.
type Option func(*Options)

// WithRestarts sets the restart budget (validated in New).
func WithRestarts(r int) Option { return func(o *Options) { o.Restarts = r } }

// WithIterations sets the per-restart iteration budget (validated in New).
func WithIterations(i int) Option { return func(o *Options) { o.Iterations = i } }

// WithFlipper sets the flip strategy.
func WithFlipper(f flip.Flipper) Option { return func(o *Options) { o.Flipper = f } }

// WithMetric sets the comparison metric.
func WithMetric(m Metric) Option { return func(o *Options) { o.Metric = m } }

// WithPolicy sets the evaluation policy.
func WithPolicy(p EvalPolicy) Option { return func(o *Options) { o.Policy = p } }

// WithUpdateTraining includes the training prefix in flip passes.
func WithUpdateTraining() Option { return func(o *Options) { o.UpdateTraining = true } }

// WithContinueOnError keeps the run going past failed restarts.
func WithContinueOnError() Option { return func(o *Options) { o.ContinueOnError = true } }

// WithSeed sets the run seed (0 selects the stable default stream).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithLogger injects a zap logger for optimizer telemetry.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithTrace attaches a CSV iteration trace.
func WithTrace(tr *Trace) Option { return func(o *Options) { o.Trace = tr } }

// WithGroundTruth attaches the pool's real labels for diagnostics.
func WithGroundTruth(truth *dataset.Dataset) Option {
	return func(o *Options) { o.GroundTruth = truth }
}

// DefaultOptions returns the baseline configuration: 10 restarts of 10
// iterations with the Simple flipper, overall-RMS comparison and the
// RandomWalkBest policy, deterministic default seed, silent logger.
func DefaultOptions() Options {
	return Options{
		Restarts:   10,
		Iterations: 10,
		Flipper:    flip.NewSimple(),
		Metric:     MetricRMSOverall,
		Policy:     RandomWalkBest,
	}
}
