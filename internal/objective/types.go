package objective

import (
	"math"
	"math/rand"
)

type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Bound is the inclusive range of one design variable. Integer marks
// variables that take whole values only (e.g. an index into a table).
type Bound struct {
	Name    string
	Min     float64
	Max     float64
	Integer bool
}

func (b Bound) Contains(x float64) bool {
	return x >= b.Min && x <= b.Max
}

func (b Bound) Clamp(x float64) float64 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}

func (b Bound) Span() float64 {
	return b.Max - b.Min
}

// Uniform draws a value uniformly from the bound. Integer bounds yield
// whole values with every integer in range equally likely.
func (b Bound) Uniform(rng *rand.Rand) float64 {
	if b.Integer {
		lo := int(math.Ceil(b.Min))
		hi := int(math.Floor(b.Max))
		return float64(lo + rng.Intn(hi-lo+1))
	}
	return b.Min + rng.Float64()*b.Span()
}

// Problem is a scalar minimization objective over a fixed-dimension
// candidate vector. Evaluate must be total: it returns a finite value
// for every input and never panics.
type Problem interface {
	Name() string
	Dim() int
	Bounds() []Bound
	Evaluate(v Vector) float64
	Sample(rng *rand.Rand) Vector
}
