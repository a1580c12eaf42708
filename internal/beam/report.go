package beam

import "math"

// Report breaks a candidate evaluation down for inspection. Evaluate
// does not use it; optimizers only ever see the scalar objective.
type Report struct {
	Height       float64 `json:"height"`
	FlangeHeight float64 `json:"flange_height"`
	FlangeWidth  float64 `json:"flange_width"`
	WebWidth     float64 `json:"web_width"`
	Inertia      float64 `json:"inertia"`
	Stress       float64 `json:"stress"`
	Deflection   float64 `json:"deflection"`
	Volume       float64 `json:"volume"`
	OKStress     bool    `json:"ok_stress"`
	OKDeflection bool    `json:"ok_deflection"`
	Feasible     bool    `json:"feasible"`
	Reason       string  `json:"reason,omitempty"`
}

// Analyze evaluates a candidate and reports the intermediate section
// properties and per-constraint outcomes.
func (c *Cantilever) Analyze(v []float64) Report {
	if len(v) != 4 {
		return Report{Reason: "candidate must have exactly 4 variables"}
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Report{Reason: "candidate contains non-finite values"}
		}
	}

	rep := Report{
		Height:      v[0],
		FlangeWidth: v[2],
		WebWidth:    v[3],
	}

	idx := int(math.Round(v[1]))
	if idx < 0 || idx >= len(flangeHeights) {
		rep.Reason = "flange index out of range [0, 7]"
		return rep
	}
	rep.FlangeHeight = flangeHeights[idx]

	switch {
	case !c.bounds[0].Contains(rep.Height):
		rep.Reason = "H outside [3.0, 7.0]"
		return rep
	case !c.bounds[2].Contains(rep.FlangeWidth):
		rep.Reason = "b1 outside [2.0, 12.0]"
		return rep
	case !c.bounds[3].Contains(rep.WebWidth):
		rep.Reason = "b2 outside [0.1, 2.0]"
		return rep
	}

	rep.Inertia = momentOfInertia(rep.Height, rep.FlangeHeight, rep.FlangeWidth, rep.WebWidth)
	if rep.Inertia <= 0 || math.IsNaN(rep.Inertia) || math.IsInf(rep.Inertia, 0) {
		rep.Reason = "degenerate section (non-positive moment of inertia)"
		return rep
	}

	rep.Stress = bendingStress(rep.Height, rep.Inertia)
	rep.Deflection = tipDeflection(rep.Inertia)
	rep.Volume = volume(rep.Height, rep.FlangeHeight, rep.FlangeWidth, rep.WebWidth)

	rep.OKStress = rep.Stress <= maxStress
	rep.OKDeflection = rep.Deflection <= maxDeflection
	rep.Feasible = rep.OKStress && rep.OKDeflection

	if !rep.OKStress {
		rep.Reason = "bending stress exceeds 5000"
	} else if !rep.OKDeflection {
		rep.Reason = "tip deflection exceeds 0.10"
	}

	return rep
}
