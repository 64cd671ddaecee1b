package orbit

import "fmt"

// Physical constants of the two body equations. Scale conventions follow
// Pritchard and Sciulli: G is SI, μ⊕ is in kilometers and seconds.
var (
	// GravitationalConstant is Newton's constant G in N·m²/kg².
	GravitationalConstant = NewQuantity(6.6743e-11, GravConstDim)
	// EarthGravitationalParameter is μ⊕ = G·M⊕ in km³/s².
	EarthGravitationalParameter = NewQuantity(3.986018e5, GravParamDim)
)

// mustDim panics unless the quantity carries the expected dimension.
func mustDim(q Quantity, d Dimension) {
	if !q.Dim.Equals(d) {
		panic(fmt.Errorf("expected a %s quantity, got %s", d, q.Dim))
	}
}

// mustVecDim panics unless the vector quantity carries the expected dimension.
func mustVecDim(v QuantityVec, d Dimension) {
	if !v.Dim.Equals(d) {
		panic(fmt.Errorf("expected a %s vector, got %s", d, v.Dim))
	}
}

// GravitationalForce returns the attractive gravitational force between two
// bodies given their masses and the scalar separation of their centers of
// mass, -G·m0·m1/r². The negative sign encodes attraction by convention, it
// does not carry a direction. Does not account for relativistic effects.
// A zero separation divides by zero and propagates ±Inf.
func GravitationalForce(m0, m1, r Quantity) Quantity {
	mustDim(m0, MassDim)
	mustDim(m1, MassDim)
	mustDim(r, LengthDim)
	return GravitationalConstant.Neg().Times(m0).Times(m1).Over(r.Pow(2))
}

// GravitationalForceVector returns the gravitational force vector between
// two bodies, -G·m0·m1·r/|r|³, with r the separation vector from m0 to m1.
// The result is parallel to r and sign flipped per the attraction
// convention. Does not account for relativistic effects.
func GravitationalForceVector(m0, m1 Quantity, r QuantityVec) QuantityVec {
	mustDim(m0, MassDim)
	mustDim(m1, MassDim)
	mustVecDim(r, LengthDim)
	return r.Scale(GravitationalConstant.Neg().Times(m0).Times(m1).Over(r.Norm().Pow(3)))
}

// GravitationalAccelerationVector returns the relative acceleration of the
// two body problem, -G·(m0+m1)·r/|r|³, with r the separation vector from
// m0 to m1. The combined mass term makes this the reduced two body form
// rather than a test mass approximation.
func GravitationalAccelerationVector(m0, m1 Quantity, r QuantityVec) QuantityVec {
	mustDim(m0, MassDim)
	mustDim(m1, MassDim)
	mustVecDim(r, LengthDim)
	return r.Scale(GravitationalConstant.Neg().Times(m0.Plus(m1)).Over(r.Norm().Pow(3)))
}

// EarthGravitationalAcceleration approximates the gravitational acceleration
// of a satellite in Earth orbit, -μ⊕·r/|r|³ with r in kilometers. Valid when
// the Earth's mass dominates, which collapses the combined mass term of
// GravitationalAccelerationVector into μ⊕. The mass parameters are unused
// but kept so both acceleration forms share a calling convention.
func EarthGravitationalAcceleration(m0, m1 Quantity, r QuantityVec) QuantityVec {
	mustDim(m0, MassDim)
	mustDim(m1, MassDim)
	mustVecDim(r, LengthDim)
	return r.Scale(EarthGravitationalParameter.Neg().Over(r.Norm().Pow(3)))
}

// AccelerationModel computes the gravitational acceleration of a two body
// system from both masses and the separation vector from m0 to m1. It lets
// callers swap the general form for the Earth approximation without special
// casing the unused mass arguments.
type AccelerationModel interface {
	Acceleration(m0, m1 Quantity, r QuantityVec) QuantityVec
}

// TwoBody is the general combined-mass acceleration model.
type TwoBody struct{}

// Acceleration implements the AccelerationModel interface.
func (TwoBody) Acceleration(m0, m1 Quantity, r QuantityVec) QuantityVec {
	return GravitationalAccelerationVector(m0, m1, r)
}

// EarthApproximation is the dominant-mass acceleration model about the Earth.
type EarthApproximation struct{}

// Acceleration implements the AccelerationModel interface.
func (EarthApproximation) Acceleration(m0, m1 Quantity, r QuantityVec) QuantityVec {
	return EarthGravitationalAcceleration(m0, m1, r)
}
