package objective

import (
	"math"
	"math/rand"
	"testing"
)

func TestVector_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"empty", Vector{}, true},
		{"normal", Vector{5.0, 3.0, 7.0, 1.0}, true},
		{"zeros", Vector{0.0, 0.0}, true},
		{"with NaN", Vector{1.0, math.NaN()}, false},
		{"with +Inf", Vector{1.0, math.Inf(1)}, false},
		{"with -Inf", Vector{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVector_Clone(t *testing.T) {
	v := Vector{1, 2, 3}
	c := v.Clone()

	c[0] = 99
	if v[0] == 99 {
		t.Error("Clone did not create independent copy")
	}
}

func TestBound_Contains(t *testing.T) {
	b := Bound{Name: "H", Min: 3.0, Max: 7.0}

	tests := []struct {
		x  float64
		in bool
	}{
		{3.0, true},
		{7.0, true},
		{5.0, true},
		{2.999, false},
		{7.001, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.x); got != tt.in {
			t.Errorf("Contains(%v) = %v, want %v", tt.x, got, tt.in)
		}
	}
}

func TestBound_Clamp(t *testing.T) {
	b := Bound{Min: 0.1, Max: 2.0}

	if got := b.Clamp(-1); got != 0.1 {
		t.Errorf("Clamp(-1) = %v, want 0.1", got)
	}
	if got := b.Clamp(5); got != 2.0 {
		t.Errorf("Clamp(5) = %v, want 2.0", got)
	}
	if got := b.Clamp(1.5); got != 1.5 {
		t.Errorf("Clamp(1.5) = %v, want 1.5", got)
	}
}

func TestBound_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bound{Min: 2.0, Max: 12.0}

	for i := 0; i < 1000; i++ {
		x := b.Uniform(rng)
		if !b.Contains(x) {
			t.Fatalf("Uniform produced %v outside [%v, %v]", x, b.Min, b.Max)
		}
	}
}

func TestBound_UniformInteger(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bound{Min: 0, Max: 7, Integer: true}

	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		x := b.Uniform(rng)
		if x != math.Trunc(x) {
			t.Fatalf("Uniform on integer bound produced non-integer %v", x)
		}
		if !b.Contains(x) {
			t.Fatalf("Uniform produced %v outside [%v, %v]", x, b.Min, b.Max)
		}
		seen[x] = true
	}

	if len(seen) != 8 {
		t.Errorf("expected all 8 integers drawn over 1000 samples, got %d", len(seen))
	}
}
