// Package dataset - combined train+pool dataset.
//
// CombinedPool concatenates the original training set (fixed labels)
// with deep copies of the unlabeled pool (mutable pseudo-labels). The
// optimizer owns exactly one CombinedPool per restart and rebuilds it
// from scratch when the next restart begins, so no pseudo-label state
// leaks between restarts.
//
// Invariants:
//   - Data.Instances[0 : TrainLen] are the training copies; their labels
//     are never rewritten by flip passes unless the caller explicitly
//     requests a region that covers them.
//   - Data.Instances[TrainLen : TrainLen+PoolLen] are the pool copies.
//   - Every instance carries Origin == its position in Data, assigned
//     here; Origin disambiguates duplicates that content comparison
//     cannot.
package dataset

// CombinedPool is the train+pool dataset mutated during one restart.
type CombinedPool struct {
	Data     *Dataset // combined instances, train prefix first
	TrainLen int      // number of training instances
	PoolLen  int      // number of pool instances
}

// NewCombinedPool deep-copies train and pool into one combined dataset.
// Both datasets must share the same schema value.
//
// Errors: ErrNilDataset, ErrEmptyDataset (empty train), ErrSchemaMismatch.
//
// Complexity: O((n_train+n_pool)·m).
func NewCombinedPool(train, pool *Dataset) (*CombinedPool, error) {
	if train == nil || pool == nil {
		return nil, ErrNilDataset
	}
	if train.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if train.Schema != pool.Schema {
		return nil, ErrSchemaMismatch
	}

	combined := &Dataset{
		Schema:    train.Schema,
		Instances: make([]*Instance, 0, train.Len()+pool.Len()),
	}

	var (
		i  int       // source cursor
		cp *Instance // per-instance deep copy
	)
	for i = 0; i < train.Len(); i++ {
		cp = train.Instances[i].Clone()
		cp.Origin = len(combined.Instances)
		combined.Instances = append(combined.Instances, cp)
	}
	for i = 0; i < pool.Len(); i++ {
		cp = pool.Instances[i].Clone()
		cp.Origin = len(combined.Instances)
		combined.Instances = append(combined.Instances, cp)
	}

	return &CombinedPool{Data: combined, TrainLen: train.Len(), PoolLen: pool.Len()}, nil
}

// TrainRegion returns the (from, count) range of the training prefix.
func (p *CombinedPool) TrainRegion() (int, int) { return 0, p.TrainLen }

// PoolRegion returns the (from, count) range of the pool suffix.
func (p *CombinedPool) PoolRegion() (int, int) { return p.TrainLen, p.PoolLen }

// FlipRegion returns the range subject to label flipping. The training
// prefix joins the region only when updateTraining is set.
func (p *CombinedPool) FlipRegion(updateTraining bool) (int, int) {
	if updateTraining {
		return 0, p.TrainLen + p.PoolLen
	}

	return p.TrainLen, p.PoolLen
}
