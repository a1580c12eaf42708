package beam

import (
	"math"
	"math/rand"

	"github.com/san-kum/beamopt/internal/objective"
)

// Penalty is the sentinel returned for malformed or infeasible
// candidates. Feasible volumes are orders of magnitude below it.
const Penalty = 1e9

const (
	load    = 1000.0 // tip load P
	modulus = 1e7    // elastic modulus E
	length  = 36.0   // beam length L

	maxStress     = 5000.0
	maxDeflection = 0.10
)

// flangeHeights is the discrete set of allowed flange thicknesses.
// The second design variable selects one by index.
var flangeHeights = [8]float64{0.1, 0.26, 0.35, 0.5, 0.65, 0.75, 0.9, 1.0}

type Cantilever struct {
	bounds []objective.Bound
}

func NewCantilever() *Cantilever {
	return &Cantilever{
		bounds: []objective.Bound{
			{Name: "H", Min: 3.0, Max: 7.0},
			{Name: "h1", Min: 0, Max: float64(len(flangeHeights) - 1), Integer: true},
			{Name: "b1", Min: 2.0, Max: 12.0},
			{Name: "b2", Min: 0.1, Max: 2.0},
		},
	}
}

func (c *Cantilever) Name() string { return "beam" }

func (c *Cantilever) Dim() int { return 4 }

func (c *Cantilever) Bounds() []objective.Bound {
	out := make([]objective.Bound, len(c.bounds))
	copy(out, c.bounds)
	return out
}

// Evaluate returns the beam volume for a feasible candidate, or
// Penalty for anything malformed, out of bounds, or violating the
// stress/deflection constraints. It never panics and always returns a
// finite value.
func (c *Cantilever) Evaluate(v objective.Vector) float64 {
	if len(v) != 4 || !v.IsValid() {
		return Penalty
	}

	H := v[0]
	idx := int(math.Round(v[1]))
	b1 := v[2]
	b2 := v[3]

	if idx < 0 || idx >= len(flangeHeights) {
		return Penalty
	}
	if !c.bounds[0].Contains(H) || !c.bounds[2].Contains(b1) || !c.bounds[3].Contains(b2) {
		return Penalty
	}

	fh := flangeHeights[idx]

	inertia := momentOfInertia(H, fh, b1, b2)
	if inertia <= 0 || math.IsNaN(inertia) || math.IsInf(inertia, 0) {
		return Penalty
	}

	if bendingStress(H, inertia) > maxStress || tipDeflection(inertia) > maxDeflection {
		return Penalty
	}

	return volume(H, fh, b1, b2)
}

// Sample draws a candidate uniformly within the variable bounds. The
// result always passes Evaluate's structural checks; the physics
// constraints may still reject it.
func (c *Cantilever) Sample(rng *rand.Rand) objective.Vector {
	v := make(objective.Vector, len(c.bounds))
	for i, b := range c.bounds {
		v[i] = b.Uniform(rng)
	}
	return v
}

// momentOfInertia is the second moment of area of the I-section:
// web contribution plus two flanges shifted by the parallel axis term.
func momentOfInertia(H, fh, b1, b2 float64) float64 {
	web := H - 2*fh
	flange := b1*fh*fh*fh/12.0 + b1*fh*(H-fh)*(H-fh)/4.0
	return b2*web*web*web/12.0 + 2.0*flange
}

// bendingStress is the extreme-fiber stress under the tip load,
// sigma = P*L*H / (2*I).
func bendingStress(H, inertia float64) float64 {
	return load * length * H / (2.0 * inertia)
}

// tipDeflection is the free-end displacement, delta = P*L^3 / (3*E*I).
func tipDeflection(inertia float64) float64 {
	return load * length * length * length / (3.0 * modulus * inertia)
}

func volume(H, fh, b1, b2 float64) float64 {
	return (2.0*fh*b1 + (H-2.0*fh)*b2) * length
}
