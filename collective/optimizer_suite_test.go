// Package collective_test - optimizer lifecycle: state reset between
// runs, snapshot copy semantics, and trace reuse.
package collective_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/collective"
	"github.com/katalvlaran/colearn/dataset"
)

// OptimizerSuite rebuilds a fresh optimizer over the reference scenario
// before every test, so lifecycle tests never observe each other's state.
type OptimizerSuite struct {
	suite.Suite
	train *dataset.Dataset
	pool  *dataset.Dataset
	trace *collective.Trace
	opt   *collective.Optimizer
}

func (s *OptimizerSuite) SetupTest() {
	s.train, s.pool, _ = scenario(s.T())
	s.trace = collective.NewTrace(nil)

	var err error
	s.opt, err = collective.New(classify.NewCentroid(0), s.train, s.pool,
		collective.WithRestarts(2),
		collective.WithIterations(3),
		collective.WithSeed(13),
		collective.WithTrace(s.trace),
	)
	require.NoError(s.T(), err)
}

// TestRerunIsIdentical verifies that Run discards previous best/last
// state: a second Run on the same optimizer reproduces the first.
func (s *OptimizerSuite) TestRerunIsIdentical() {
	sum1, err := s.opt.Run(context.Background())
	require.NoError(s.T(), err)
	rows1 := append([]collective.TraceRow(nil), s.trace.Rows()...)

	sum2, err := s.opt.Run(context.Background())
	require.NoError(s.T(), err)

	require.Equal(s.T(), sum1, sum2)
	require.Equal(s.T(), rows1, s.trace.Rows())
}

// TestTraceResetBetweenRuns verifies the row buffer holds exactly one
// run's rows even when the trace is reused.
func (s *OptimizerSuite) TestTraceResetBetweenRuns() {
	_, err := s.opt.Run(context.Background())
	require.NoError(s.T(), err)
	_, err = s.opt.Run(context.Background())
	require.NoError(s.T(), err)

	require.Len(s.T(), s.trace.Rows(), 2*3, "rows must not accumulate across runs")
}

// TestBestReturnsCopy verifies that mutating the returned snapshot does
// not reach into the optimizer's retained state.
func (s *OptimizerSuite) TestBestReturnsCopy() {
	sum, err := s.opt.Run(context.Background())
	require.NoError(s.T(), err)

	best, ok := s.opt.Best()
	require.True(s.T(), ok)
	best.Goodness = -999

	again, ok := s.opt.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), sum.BestGoodness, again.Goodness)
}

// TestSourceDatasetsUntouched verifies the run works on deep copies: the
// caller's pool stays unlabeled afterwards.
func (s *OptimizerSuite) TestSourceDatasetsUntouched() {
	_, err := s.opt.Run(context.Background())
	require.NoError(s.T(), err)

	for _, inst := range s.pool.Instances {
		require.Equal(s.T(), dataset.NoLabel, inst.Label)
	}
}

func TestOptimizerSuite(t *testing.T) {
	suite.Run(t, new(OptimizerSuite))
}
