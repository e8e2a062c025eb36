package vmath

import (
	"math"
	"testing"
)

func TestV2Add(t *testing.T) {
	sum := V2Add(Vec2{1, 2}, Vec2{3, -4})
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("V2Add = %+v, want {4 -2}", sum)
	}
}

func TestV2Scale(t *testing.T) {
	v := V2Scale(Vec2{2, -3}, 0.5)
	if v.X != 1 || v.Y != -1.5 {
		t.Errorf("V2Scale = %+v, want {1 -1.5}", v)
	}
}

func TestV2Mag(t *testing.T) {
	if mag := V2Mag(Vec2{3, 4}); math.Abs(mag-5) > 1e-12 {
		t.Errorf("V2Mag = %f, want 5", mag)
	}
	if magSq := V2MagSq(Vec2{3, 4}); math.Abs(magSq-25) > 1e-12 {
		t.Errorf("V2MagSq = %f, want 25", magSq)
	}
}
