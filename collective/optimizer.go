// Package collective - the restart optimizer.
//
// State machine per restart r ∈ [0, R):
//
//	INIT → { for i ∈ [0, I): FLIP-or-INIT → TRAIN → SCORE → MAYBE-ADOPT } → END
//
// Iteration 0 re-randomizes the pool's pseudo-labels from the training
// prior (that re-randomization is what "restart" means); later
// iterations flip instead. After every iteration the learner retrains on
// the combined pool, the labeling is scored, and the best snapshot is
// replaced on strict improvement only (ties are not improvements), so
// the sequence of adopted goodness values is strictly increasing and at
// most one snapshot is retained at a time.
//
// Contracts:
//   - The combined pool, history and learner are restart-local; they are
//     rebuilt from scratch when the next restart begins.
//   - Randomness comes exclusively from the restart's derived stream.
//   - Learner failures abort the restart (no retry); whether the run
//     continues with the next restart is the ContinueOnError policy.
//   - Cancellation is cooperative: ctx is checked between iterations.
package collective

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
	"github.com/katalvlaran/colearn/flip"
)

// Best is the retained snapshot of the strongest labeling found so far.
// It is replaced, never mutated, on improvement; the optimizer is the
// sole writer and prediction serving only reads it.
type Best struct {
	Classifier classify.Classifier // deep clone taken at adoption time
	RMS        RMSScores
	Accuracy   Accuracies
	Goodness   float64
	Restart    int
	Iteration  int
}

// Summary reports one completed run.
type Summary struct {
	Restarts       int // restart budget executed
	Iterations     int // per-restart iteration budget
	Adoptions      int // number of best-model replacements
	FailedRestarts int // restarts aborted by learner failures
	HistoryMisses  int // unmatched history updates across the run

	BestRestart   int // restart index of the last improvement
	BestIteration int // iteration index of the last improvement
	BestGoodness  float64
	BestRMS       RMSScores
	BestAccuracy  Accuracies
}

// Optimizer runs the collective-classification search.
type Optimizer struct {
	opts  Options
	proto classify.Classifier // prototype learner, cloned per restart
	train *dataset.Dataset
	pool  *dataset.Dataset // unlabeled originals (never mutated)
	truth *dataset.Dataset // optional diagnostics
	log   *zap.Logger

	last classify.Classifier // most recently trained model
	best *Best
}

// New validates configuration and inputs and returns an optimizer.
// clf is the prototype base learner: each restart trains a fresh clone.
// train supplies the labeled instances and the class prior; unlabeled
// supplies the pool whose copies get pseudo-labeled.
//
// Errors: configuration sentinels from types.go and dataset sentinels
// for malformed inputs — all surfaced here, fail-fast.
func New(clf classify.Classifier, train, unlabeled *dataset.Dataset, opts ...Option) (*Optimizer, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if err := validateOptions(o); err != nil {
		return nil, err
	}
	if err := validateInputs(clf, train, unlabeled, o.GroundTruth); err != nil {
		return nil, err
	}

	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Optimizer{
		opts:  o,
		proto: clf,
		train: train,
		pool:  unlabeled,
		truth: o.GroundTruth,
		log:   logger,
	}, nil
}

// Run executes the full restart/iteration budget and returns the run
// summary. A second Run with the same seed reproduces the first
// bit-for-bit; previous best/last state is discarded at the start.
//
// Errors: ctx.Err() on cancellation; ErrRestartFailed wrapping the
// learner failure that aborted a restart (immediately without
// ContinueOnError, or after the final restart when no restart
// succeeded).
func (o *Optimizer) Run(ctx context.Context) (Summary, error) {
	o.best = nil
	o.last = nil
	if o.opts.Trace != nil {
		o.opts.Trace.reset()
	}

	sum := Summary{Restarts: o.opts.Restarts, Iterations: o.opts.Iterations}

	var (
		r       int   // restart cursor
		err     error // per-restart outcome
		lastErr error // most recent restart failure
	)
	for r = 0; r < o.opts.Restarts; r++ {
		if err = ctx.Err(); err != nil {
			return sum, err
		}
		if err = o.runRestart(ctx, r, &sum); err != nil {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.FailedRestarts++
			lastErr = err
			o.log.Warn("restart aborted",
				zap.Int("restart", r),
				zap.Error(err))
			if !o.opts.ContinueOnError {
				return sum, fmt.Errorf("%w: %w", ErrRestartFailed, err)
			}
		}
	}

	if o.last == nil && o.best == nil {
		// Every restart failed; surface the last failure.
		return sum, fmt.Errorf("%w: %w", ErrRestartFailed, lastErr)
	}

	if o.best != nil {
		sum.BestRestart = o.best.Restart
		sum.BestIteration = o.best.Iteration
		sum.BestGoodness = o.best.Goodness
		sum.BestRMS = o.best.RMS
		sum.BestAccuracy = o.best.Accuracy
	}

	if o.opts.Trace != nil {
		if err = o.opts.Trace.Flush(); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

// runRestart executes one restart: rebuild the combined pool, seed
// labels from the prior, then iterate flip → train → score → compare.
func (o *Optimizer) runRestart(ctx context.Context, r int, sum *Summary) error {
	rng := restartRNG(o.opts.Seed, r)

	pool, err := dataset.NewCombinedPool(o.train, o.pool)
	if err != nil {
		return err
	}

	var (
		pfrom, pcount = pool.PoolRegion()
		ffrom, fcount = pool.FlipRegion(o.opts.UpdateTraining)
		clf           = o.proto.Clone()
		hist          *flip.History
	)
	// Misses are reported even when the restart aborts mid-iteration.
	defer func() {
		if hist != nil {
			sum.HistoryMisses += hist.Misses()
		}
	}()

	var (
		i       int     // iteration cursor
		frac    float64 // flipped fraction of the current pass
		rms     RMSScores
		acc     Accuracies
		adopted bool
	)
	for i = 0; i < o.opts.Iterations; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		frac = 0
		if i == 0 {
			// Restart proper: discard all pseudo-labels, redraw from the
			// training prior, and rebuild the history over the fresh
			// labeling.
			if err = InitializeLabels(o.train, pool.Data, pfrom, pcount, rng); err != nil {
				return err
			}
			if hist, err = flip.NewHistory(pool.Data, o.log); err != nil {
				return err
			}
		} else {
			// HillClimbing flips against the incumbent best model once
			// one exists; the random-walk policies use the current model.
			flipModel := clf
			if o.opts.Policy == HillClimbing && o.best != nil {
				flipModel = o.best.Classifier
			}
			if frac, err = FlipLabels(flipModel, pool.Data, ffrom, fcount, hist, o.opts.Flipper, rng); err != nil {
				return err
			}
		}

		if err = clf.Train(ctx, pool.Data); err != nil {
			return err
		}
		if rms, err = RMS(clf, pool, o.truth); err != nil {
			return err
		}
		if acc, err = Accuracy(clf, pool, o.truth); err != nil {
			return err
		}

		g := goodness(o.opts.Metric, rms, acc)
		adopted = o.best == nil || g > o.best.Goodness
		if adopted {
			o.best = &Best{
				Classifier: clf.Clone(),
				RMS:        rms,
				Accuracy:   acc,
				Goodness:   g,
				Restart:    r,
				Iteration:  i,
			}
			sum.Adoptions++
		}

		o.log.Debug("iteration scored",
			zap.Int("restart", r),
			zap.Int("iteration", i),
			zap.Float64("rms_overall", rms.Overall),
			zap.Float64("rms_train", rms.Train),
			zap.Float64("rms_test", rms.Test),
			zap.Float64("accuracy_train", acc.Train),
			zap.Float64("flipped_fraction", frac),
			zap.Bool("adopted", adopted))

		if o.opts.Trace != nil {
			o.opts.Trace.record(TraceRow{
				Restart:         r,
				Iteration:       i,
				RMSOverall:      rms.Overall,
				RMSTrain:        rms.Train,
				RMSTest:         rms.Test,
				RMSGroundTruth:  rms.GroundTruth,
				AccuracyTrain:   acc.Train,
				AccuracyTest:    acc.Test,
				FlippedFraction: frac,
				Adopted:         adopted,
			})
		}
	}

	o.last = clf

	return nil
}

// goodness converts the scores of one iteration into the scalar the
// active metric compares. RMS metrics are negated so strict ">" always
// means "better".
func goodness(m Metric, rms RMSScores, acc Accuracies) float64 {
	switch m {
	case MetricRMSTrain:
		return -rms.Train
	case MetricRMSTest:
		return -rms.Test
	case MetricAccuracyTrain:
		return acc.Train
	default: // MetricRMSOverall; validated in New
		return -rms.Overall
	}
}

// Best returns a copy of the retained best snapshot. ok is false before
// the first adoption. The embedded Classifier is shared read-only.
func (o *Optimizer) Best() (Best, bool) {
	if o.best == nil {
		return Best{}, false
	}

	return *o.best, true
}

// served returns the model the active evaluation policy designates.
func (o *Optimizer) served() classify.Classifier {
	if o.opts.Policy == RandomWalkLast {
		return o.last
	}
	if o.best == nil {
		return nil
	}

	return o.best.Classifier
}

// PredictDistribution predicts through the model selected by the
// evaluation policy: the last trained model for RandomWalkLast, the best
// snapshot for RandomWalkBest and HillClimbing.
//
// Errors: ErrNotRun before a successful Run; prediction errors from the
// underlying learner propagate unchanged.
func (o *Optimizer) PredictDistribution(inst *dataset.Instance) ([]float64, error) {
	clf := o.served()
	if clf == nil {
		return nil, ErrNotRun
	}

	return clf.PredictDistribution(inst)
}
