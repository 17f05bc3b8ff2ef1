// Package dataset - core types and sentinel errors.
//
// The schema separates feature attributes from the class attribute.
// Instance values are stored as float64 for both kinds: numeric
// attributes hold the measurement itself, nominal attributes hold the
// index into the attribute's value set. The class label lives outside
// the value vector (Label), with NoLabel marking "unlabeled".
package dataset

import "errors"

// Sentinel errors returned by the dataset package.
var (
	// ErrNilSchema indicates that a nil *Schema was supplied.
	ErrNilSchema = errors.New("dataset: schema is nil")

	// ErrNilDataset indicates that a nil *Dataset was supplied.
	ErrNilDataset = errors.New("dataset: dataset is nil")

	// ErrEmptyDataset indicates that an operation requiring at least one
	// instance received an empty dataset.
	ErrEmptyDataset = errors.New("dataset: dataset is empty")

	// ErrSchemaMismatch indicates that an instance does not conform to the
	// dataset schema (wrong arity) or that two datasets carry different
	// schemas where identical ones are required.
	ErrSchemaMismatch = errors.New("dataset: schema mismatch")

	// ErrBadWeight indicates a negative instance weight.
	ErrBadWeight = errors.New("dataset: instance weight must be non-negative")

	// ErrBadLabel indicates a label outside [0, NumClasses) and != NoLabel.
	ErrBadLabel = errors.New("dataset: label out of range")

	// ErrNoLabeled indicates that no labeled instance exists where at
	// least one is required (e.g. computing a class prior).
	ErrNoLabeled = errors.New("dataset: no labeled instances")

	// ErrInstanceNotFound indicates that a content-index lookup was
	// required to succeed but the instance is not part of the indexed set.
	// This is a programming error on scoring/lookup paths: the resulting
	// index addresses parallel arrays and cannot be optional.
	ErrInstanceNotFound = errors.New("dataset: instance not found in content index")
)

// NoLabel marks an instance whose class is not (yet) assigned.
// Pseudo-labels written by the optimizer replace NoLabel with an
// ordinary class index; nothing distinguishes them afterwards.
const NoLabel = -1

// AttrKind discriminates attribute types.
//
// KindNumeric — real-valued measurement, compared numerically.
// KindNominal — categorical; Instance.Values stores the value-set index.
type AttrKind int

const (
	// KindNumeric is a real-valued attribute.
	KindNumeric AttrKind = iota

	// KindNominal is a categorical attribute with an enumerated value set.
	KindNominal
)

// Attribute describes one column of the schema.
type Attribute struct {
	Name   string   // attribute name (informational)
	Kind   AttrKind // numeric or nominal
	Values []string // nominal value set; nil for numeric attributes
}

// Schema is the shared shape of every instance in a dataset:
// an ordered list of feature attributes plus one class attribute.
//
// Invariant: the class attribute is nominal with at least two values.
type Schema struct {
	Attrs []Attribute // feature attributes, in comparison order
	Class Attribute   // class attribute (nominal)
}

// NumAttrs returns the number of feature attributes.
func (s *Schema) NumAttrs() int { return len(s.Attrs) }

// NumClasses returns the number of class values.
func (s *Schema) NumClasses() int { return len(s.Class.Values) }

// Instance is one weighted, optionally labeled feature vector.
//
// Values has exactly Schema.NumAttrs() entries, in schema order.
// Label is a class index in [0, NumClasses) or NoLabel.
// Weight is ≥ 0; the zero value of a freshly built instance is 1 by
// convention of NewInstance.
// Origin is a stable tag assigned at CombinedPool construction (the
// position inside the combined dataset); it identifies an instance even
// when two instances share identical feature vectors.
type Instance struct {
	Values []float64
	Label  int
	Weight float64
	Origin int
}

// NewInstance builds an instance with weight 1 and the given label.
// The values slice is used as-is (not copied); callers retaining the
// slice must not mutate it afterwards.
func NewInstance(values []float64, label int) *Instance {
	return &Instance{Values: values, Label: label, Weight: 1, Origin: -1}
}

// Labeled reports whether the instance carries a class label.
func (in *Instance) Labeled() bool { return in.Label != NoLabel }

// Clone returns a deep copy of the instance.
func (in *Instance) Clone() *Instance {
	vals := make([]float64, len(in.Values))
	copy(vals, in.Values)

	return &Instance{Values: vals, Label: in.Label, Weight: in.Weight, Origin: in.Origin}
}

// Dataset is an ordered sequence of instances sharing one schema.
type Dataset struct {
	Schema    *Schema
	Instances []*Instance
}

// New returns an empty dataset over the given schema.
func New(schema *Schema) (*Dataset, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if schema.NumClasses() < 2 {
		return nil, ErrSchemaMismatch
	}

	return &Dataset{Schema: schema}, nil
}

// Len returns the number of instances.
func (d *Dataset) Len() int { return len(d.Instances) }

// Append validates inst against the schema and appends it.
//
// Errors: ErrSchemaMismatch (wrong arity), ErrBadWeight, ErrBadLabel.
//
// Complexity: O(1).
func (d *Dataset) Append(inst *Instance) error {
	if len(inst.Values) != d.Schema.NumAttrs() {
		return ErrSchemaMismatch
	}
	if inst.Weight < 0 {
		return ErrBadWeight
	}
	if inst.Label != NoLabel && (inst.Label < 0 || inst.Label >= d.Schema.NumClasses()) {
		return ErrBadLabel
	}
	d.Instances = append(d.Instances, inst)

	return nil
}

// Clone returns a deep copy of the dataset. The schema is shared (it is
// immutable by convention); every instance is copied.
//
// Complexity: O(n·m) for n instances of m attributes.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{Schema: d.Schema, Instances: make([]*Instance, len(d.Instances))}

	var i int
	for i = 0; i < len(d.Instances); i++ {
		out.Instances[i] = d.Instances[i].Clone()
	}

	return out
}

// ClassPrior returns the empirical class distribution over the labeled
// instances of the dataset: prior[c] = count(Label==c) / countLabeled.
//
// Errors: ErrNoLabeled when the dataset has no labeled instance.
//
// Complexity: O(n).
func (d *Dataset) ClassPrior() ([]float64, error) {
	prior := make([]float64, d.Schema.NumClasses())

	var (
		i       int // instance cursor
		labeled int // labeled-instance counter
	)
	for i = 0; i < len(d.Instances); i++ {
		if !d.Instances[i].Labeled() {
			continue
		}
		prior[d.Instances[i].Label]++
		labeled++
	}
	if labeled == 0 {
		return nil, ErrNoLabeled
	}
	for i = 0; i < len(prior); i++ {
		prior[i] /= float64(labeled)
	}

	return prior, nil
}
