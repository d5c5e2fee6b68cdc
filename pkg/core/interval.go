package core

import "math"

// Interval represents a range of valid ray parameters [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// UniverseInterval returns the interval covering all parameters
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Surrounds returns true if t lies strictly inside the interval.
// Hit tests use this open check so surfaces exactly at a boundary are rejected.
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Contains returns true if t lies inside the closed interval
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// IsEmpty returns true if the interval contains no parameters
func (i Interval) IsEmpty() bool {
	return i.Max <= i.Min
}

// WithMax returns a copy of the interval with a tightened upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
