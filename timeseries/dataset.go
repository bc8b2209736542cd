package timeseries

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyDataset is returned when a dataset contains no series.
var ErrEmptyDataset = errors.New("timeseries: dataset has no series")

// ErrLengthMismatch is returned when series in a dataset have different lengths.
var ErrLengthMismatch = errors.New("timeseries: series lengths differ")

// Dataset is an ordered collection of series sharing a common time index.
// All series must have the same length.
type Dataset struct {
	Series []*Series
}

// NewDataset creates a dataset from one or more series of equal length.
func NewDataset(series ...*Series) (*Dataset, error) {
	d := &Dataset{Series: series}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that the dataset is non-empty and rectangular.
func (d *Dataset) Validate() error {
	if d == nil || len(d.Series) == 0 {
		return ErrEmptyDataset
	}
	rows := d.Series[0].Len()
	for i, s := range d.Series {
		if s == nil {
			return fmt.Errorf("%w: series %d is nil", ErrEmptyDataset, i)
		}
		if s.Len() != rows {
			return fmt.Errorf("%w: series %d has %d rows, expected %d",
				ErrLengthMismatch, i, s.Len(), rows)
		}
	}
	return nil
}

// Rows returns the number of observations per series.
func (d *Dataset) Rows() int {
	if len(d.Series) == 0 {
		return 0
	}
	return d.Series[0].Len()
}

// Cols returns the number of series in the dataset.
func (d *Dataset) Cols() int {
	return len(d.Series)
}

// Column returns the i-th series, or nil if out of range.
func (d *Dataset) Column(i int) *Series {
	if i < 0 || i >= len(d.Series) {
		return nil
	}
	return d.Series[i]
}

// ColumnByName returns the first series with the given name, or nil.
func (d *Dataset) ColumnByName(name string) *Series {
	for _, s := range d.Series {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Names returns the series names in column order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Series))
	for i, s := range d.Series {
		names[i] = s.Name
	}
	return names
}

// Copy creates a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	series := make([]*Series, len(d.Series))
	for i, s := range d.Series {
		series[i] = s.Copy()
	}
	return &Dataset{Series: series}
}

// Sub returns the element-wise difference d - other. Both datasets must have
// the same shape. Names and timestamps are taken from the receiver.
func (d *Dataset) Sub(other *Dataset) (*Dataset, error) {
	if d.Cols() != other.Cols() {
		return nil, fmt.Errorf("%w: %d vs %d columns", ErrLengthMismatch, d.Cols(), other.Cols())
	}
	if d.Rows() != other.Rows() {
		return nil, fmt.Errorf("%w: %d vs %d rows", ErrLengthMismatch, d.Rows(), other.Rows())
	}

	series := make([]*Series, d.Cols())
	for j, s := range d.Series {
		values := make([]float64, s.Len())
		for i, v := range s.Values {
			values[i] = v - other.Series[j].Values[i]
		}
		timestamps := append(s.Timestamps[:0:0], s.Timestamps...)
		series[j] = &Series{
			Timestamps: timestamps,
			Values:     values,
			Name:       s.Name,
		}
	}
	return &Dataset{Series: series}, nil
}

// Matrix returns the dataset values as a rows-by-cols dense matrix, one
// column per series. The result is a snapshot: later writes to it do not
// affect the dataset.
func (d *Dataset) Matrix() *mat.Dense {
	m := mat.NewDense(d.Rows(), d.Cols(), nil)
	for j, s := range d.Series {
		for i, v := range s.Values {
			m.Set(i, j, v)
		}
	}
	return m
}

// HasNaN reports whether any value in the dataset is NaN or infinite.
func (d *Dataset) HasNaN() bool {
	for _, s := range d.Series {
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}
