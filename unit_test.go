package orbit

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestDimensionCompose(t *testing.T) {
	if got := MassDim.Mul(LengthDim).Mul(TimeDim.Pow(-2)); !got.Equals(ForceDim) {
		t.Fatalf("M·L·T⁻² = %s", got)
	}
	if got := ForceDim.Mul(LengthDim.Pow(2)).Div(MassDim.Pow(2)); !got.Equals(GravConstDim) {
		t.Fatalf("F·L²/M² = %s", got)
	}
	if got := LengthDim.Pow(3).Div(TimeDim.Pow(2)); !got.Equals(GravParamDim) {
		t.Fatalf("L³/T² = %s", got)
	}
	if got := LengthDim.Div(LengthDim); !got.Equals(Dimensionless) {
		t.Fatalf("L/L = %s", got)
	}
}

func TestDimensionString(t *testing.T) {
	if got := Dimensionless.String(); got != "dimensionless" {
		t.Fatalf("got %q", got)
	}
	if got := ForceDim.String(); got != "M1 L1 T-2" {
		t.Fatalf("got %q", got)
	}
	if got := GravConstDim.String(); got != "M-1 L3 T-2" {
		t.Fatalf("got %q", got)
	}
}

func TestQuantityArithmetic(t *testing.T) {
	d := Kilometers(7000)
	twice := d.Plus(d)
	if !twice.Equals(Kilometers(14000)) {
		t.Fatalf("7000 km + 7000 km = %s", twice)
	}
	area := d.Times(d)
	if !area.Dim.Equals(LengthDim.Pow(2)) {
		t.Fatalf("km·km has dimension %s", area.Dim)
	}
	speed := d.Over(Seconds(2))
	if !speed.Dim.Equals(LengthDim.Div(TimeDim)) {
		t.Fatalf("km/s has dimension %s", speed.Dim)
	}
	if !floats.EqualWithinAbs(speed.Value, 3500, 1e-12) {
		t.Fatalf("7000/2 = %f", speed.Value)
	}
	cube := d.Pow(3)
	if !cube.Dim.Equals(Dimension{Length: 3}) || !floats.EqualWithinRel(cube.Value, 3.43e11, 1e-12) {
		t.Fatalf("(7000 km)³ = %s", cube)
	}
	inv := d.Pow(-2)
	if !inv.Dim.Equals(Dimension{Length: -2}) || !floats.EqualWithinRel(inv.Value, 1/49e6, 1e-12) {
		t.Fatalf("(7000 km)⁻² = %s", inv)
	}
	if !d.Neg().Equals(Kilometers(-7000)) {
		t.Fatal("negation failed")
	}
}

func TestQuantityMismatchPanics(t *testing.T) {
	assertPanic(t, func() {
		Kilograms(1).Plus(Seconds(1))
	})
	assertPanic(t, func() {
		Kilometers(1).Minus(Radians(1))
	})
}

func TestDegreesConverts(t *testing.T) {
	q := Degrees(180)
	if !q.Dim.Equals(AngleDim) {
		t.Fatalf("Degrees dimension %s", q.Dim)
	}
	if ok, err := anglesEqual(q.Value, math.Pi); !ok {
		t.Fatalf("180° != π: %s", err)
	}
}

func TestQuantityVec(t *testing.T) {
	r := KilometersVec([]float64{3, 4, 0})
	if !r.Norm().Equals(Kilometers(5)) {
		t.Fatalf("|r| = %s", r.Norm())
	}
	if !vectorsEqual(r.Unit(), []float64{0.6, 0.8, 0}) {
		t.Fatalf("unit(r) = %v", r.Unit())
	}
	scaled := r.Scale(Seconds(2).Pow(-1))
	if !scaled.Dim.Equals(LengthDim.Div(TimeDim)) {
		t.Fatalf("r/s has dimension %s", scaled.Dim)
	}
	if !vectorsEqual(scaled.Value, []float64{1.5, 2, 0}) {
		t.Fatalf("r/2 = %v", scaled.Value)
	}
	sq := r.Dot(r)
	if !sq.Equals(NewQuantity(25, LengthDim.Pow(2))) {
		t.Fatalf("r·r = %s", sq)
	}
	sum := r.Plus(r.Neg())
	if !sum.Equals(KilometersVec([]float64{0, 0, 0})) {
		t.Fatalf("r + (-r) = %s", sum)
	}
}

func TestQuantityVecMisusePanics(t *testing.T) {
	assertPanic(t, func() {
		NewQuantityVec([]float64{1, 2}, LengthDim)
	})
	assertPanic(t, func() {
		KilometersVec([]float64{1, 2, 3}).Plus(NewQuantityVec([]float64{1, 2, 3}, TimeDim))
	})
}
