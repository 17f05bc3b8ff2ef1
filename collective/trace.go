// Package collective - per-iteration CSV diagnostics.
//
// A Trace records one row per optimizer iteration (scores, flip
// fraction, adoption flag) and serializes them as CSV through gocsv.
// It is ancillary instrumentation: nothing in the optimization contract
// depends on it, and the row buffer is reset at the start of each run so
// a reused Trace never mixes runs.
package collective

import (
	"io"

	"github.com/gocarina/gocsv"
)

// TraceRow is one iteration's diagnostic record.
type TraceRow struct {
	Restart         int     `csv:"restart"`
	Iteration       int     `csv:"iteration"`
	RMSOverall      float64 `csv:"rms_overall"`
	RMSTrain        float64 `csv:"rms_train"`
	RMSTest         float64 `csv:"rms_test"`
	RMSGroundTruth  float64 `csv:"rms_ground_truth"`
	AccuracyTrain   float64 `csv:"accuracy_train"`
	AccuracyTest    float64 `csv:"accuracy_test"`
	FlippedFraction float64 `csv:"flipped_fraction"`
	Adopted         bool    `csv:"adopted"`
}

// Trace buffers iteration rows and writes them as CSV on Flush.
type Trace struct {
	w    io.Writer
	rows []TraceRow
}

// NewTrace returns a trace writing CSV (with header) to w on Flush.
func NewTrace(w io.Writer) *Trace { return &Trace{w: w} }

// Rows returns the buffered rows of the current run.
func (t *Trace) Rows() []TraceRow { return t.rows }

// reset discards buffered rows; called at the start of each run.
func (t *Trace) reset() { t.rows = t.rows[:0] }

// record appends one iteration row.
func (t *Trace) record(row TraceRow) { t.rows = append(t.rows, row) }

// Flush serializes the buffered rows as CSV to the underlying writer.
func (t *Trace) Flush() error {
	if t.w == nil {
		return nil
	}

	return gocsv.Marshal(&t.rows, t.w)
}
