// Package objective provides core primitives for black-box design
// optimization problems.
//
// The package defines the fundamental types shared by problems and
// search drivers:
//
//   - [Vector]: candidate design variables
//   - [Bound]: per-variable search range
//   - [Problem]: interface for scalar objectives (evaluate + sample)
//
// # Example
//
//	p := beam.NewCantilever()
//	rng := rand.New(rand.NewSource(42))
//	v := p.Sample(rng)
//	value := p.Evaluate(v)
//
// # Thread Safety
//
// Problem implementations are expected to be pure: Evaluate reads only
// immutable constants, so a single Problem may be shared by concurrent
// searchers. Sample takes the caller's rand source, which is NOT
// thread-safe; give each searcher its own.
package objective
