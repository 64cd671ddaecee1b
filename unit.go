package orbit

import (
	"fmt"
	"strings"

	"github.com/gonum/floats"
)

// Dimension stores the exponent of each base dimension of a physical
// quantity. Arithmetic on quantities composes dimensions; magnitude scale
// (kg vs g, m vs km) is a caller convention documented on each constructor.
type Dimension struct {
	Mass, Length, Time, Angle int8
}

// Base and derived dimensions used by the gravity equations.
var (
	Dimensionless = Dimension{}
	MassDim       = Dimension{Mass: 1}
	LengthDim     = Dimension{Length: 1}
	TimeDim       = Dimension{Time: 1}
	AngleDim      = Dimension{Angle: 1}
	ForceDim      = Dimension{Mass: 1, Length: 1, Time: -2}
	AccelDim      = Dimension{Length: 1, Time: -2}
	// GravConstDim is force·length²/mass², i.e. N·m²/kg² in SI.
	GravConstDim = Dimension{Mass: -1, Length: 3, Time: -2}
	// GravParamDim is length³/time², the dimension of μ = G·M.
	GravParamDim = Dimension{Length: 3, Time: -2}
)

// Mul composes the dimensions of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{d.Mass + o.Mass, d.Length + o.Length, d.Time + o.Time, d.Angle + o.Angle}
}

// Div composes the dimensions of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{d.Mass - o.Mass, d.Length - o.Length, d.Time - o.Time, d.Angle - o.Angle}
}

// Pow composes the dimensions of an integer power.
func (d Dimension) Pow(n int8) Dimension {
	return Dimension{d.Mass * n, d.Length * n, d.Time * n, d.Angle * n}
}

// Equals returns whether both dimensions match exactly.
func (d Dimension) Equals(o Dimension) bool {
	return d == o
}

// String implements the Stringer interface.
func (d Dimension) String() string {
	if d == (Dimension{}) {
		return "dimensionless"
	}
	var parts []string
	for _, ax := range []struct {
		sym string
		exp int8
	}{{"M", d.Mass}, {"L", d.Length}, {"T", d.Time}, {"A", d.Angle}} {
		if ax.exp != 0 {
			parts = append(parts, fmt.Sprintf("%s%d", ax.sym, ax.exp))
		}
	}
	return strings.Join(parts, " ")
}

// Quantity is a scalar tagged with its physical dimension. Addition and
// subtraction panic on mismatched dimensions so that unit errors fail
// loudly instead of silently producing wrong magnitudes.
type Quantity struct {
	Value float64
	Dim   Dimension
}

// NewQuantity returns a quantity of the given value and dimension.
func NewQuantity(v float64, d Dimension) Quantity {
	return Quantity{v, d}
}

// Kilograms returns a mass quantity in kilograms.
func Kilograms(v float64) Quantity { return Quantity{v, MassDim} }

// Meters returns a length quantity in meters.
func Meters(v float64) Quantity { return Quantity{v, LengthDim} }

// Kilometers returns a length quantity in kilometers.
func Kilometers(v float64) Quantity { return Quantity{v, LengthDim} }

// Seconds returns a time quantity in seconds.
func Seconds(v float64) Quantity { return Quantity{v, TimeDim} }

// Radians returns an angle quantity in radians.
func Radians(v float64) Quantity { return Quantity{v, AngleDim} }

// Degrees returns an angle quantity converted to radians.
func Degrees(v float64) Quantity { return Quantity{Deg2rad(v), AngleDim} }

// Unitless returns a dimensionless quantity.
func Unitless(v float64) Quantity { return Quantity{v, Dimensionless} }

// Plus adds two quantities of the same dimension.
func (q Quantity) Plus(o Quantity) Quantity {
	if !q.Dim.Equals(o.Dim) {
		panic(fmt.Errorf("cannot add %s to %s", o.Dim, q.Dim))
	}
	return Quantity{q.Value + o.Value, q.Dim}
}

// Minus subtracts a quantity of the same dimension.
func (q Quantity) Minus(o Quantity) Quantity {
	if !q.Dim.Equals(o.Dim) {
		panic(fmt.Errorf("cannot subtract %s from %s", o.Dim, q.Dim))
	}
	return Quantity{q.Value - o.Value, q.Dim}
}

// Times multiplies two quantities, composing their dimensions.
func (q Quantity) Times(o Quantity) Quantity {
	return Quantity{q.Value * o.Value, q.Dim.Mul(o.Dim)}
}

// Over divides by another quantity, composing dimensions. A zero divisor
// propagates ±Inf, it is not guarded.
func (q Quantity) Over(o Quantity) Quantity {
	return Quantity{q.Value / o.Value, q.Dim.Div(o.Dim)}
}

// Pow raises the quantity to an integer power.
func (q Quantity) Pow(n int8) Quantity {
	v := 1.0
	if n >= 0 {
		for k := int8(0); k < n; k++ {
			v *= q.Value
		}
	} else {
		for k := int8(0); k > n; k-- {
			v /= q.Value
		}
	}
	return Quantity{v, q.Dim.Pow(n)}
}

// Neg returns the quantity with its sign flipped.
func (q Quantity) Neg() Quantity {
	return Quantity{-q.Value, q.Dim}
}

// Equals returns whether both quantities share a dimension and are equal
// within floating point tolerance.
func (q Quantity) Equals(o Quantity) bool {
	return q.Dim.Equals(o.Dim) && floats.EqualWithinAbsOrRel(q.Value, o.Value, 1e-12, 1e-12)
}

// String implements the Stringer interface.
func (q Quantity) String() string {
	return fmt.Sprintf("%g [%s]", q.Value, q.Dim)
}

// QuantityVec is a 3-component vector tagged with a single dimension.
type QuantityVec struct {
	Value []float64
	Dim   Dimension
}

// NewQuantityVec returns a vector quantity. Only 3x1 vectors are supported.
func NewQuantityVec(v []float64, d Dimension) QuantityVec {
	if len(v) != 3 {
		panic(fmt.Errorf("expected a 3x1 vector, got %dx1", len(v)))
	}
	return QuantityVec{v, d}
}

// MetersVec returns a length vector quantity in meters.
func MetersVec(v []float64) QuantityVec { return NewQuantityVec(v, LengthDim) }

// KilometersVec returns a length vector quantity in kilometers.
func KilometersVec(v []float64) QuantityVec { return NewQuantityVec(v, LengthDim) }

// Norm returns the Euclidean norm as a scalar quantity of the same dimension.
func (v QuantityVec) Norm() Quantity {
	return Quantity{norm(v.Value), v.Dim}
}

// Unit returns the direction of the vector as a unit vector.
func (v QuantityVec) Unit() []float64 {
	return unit(v.Value)
}

// Scale multiplies each component by the scalar quantity, composing dimensions.
func (v QuantityVec) Scale(q Quantity) QuantityVec {
	s := make([]float64, 3)
	for i, val := range v.Value {
		s[i] = val * q.Value
	}
	return QuantityVec{s, v.Dim.Mul(q.Dim)}
}

// Dot returns the inner product as a scalar quantity, composing dimensions.
func (v QuantityVec) Dot(o QuantityVec) Quantity {
	return Quantity{dot(v.Value, o.Value), v.Dim.Mul(o.Dim)}
}

// Plus adds two vector quantities of the same dimension.
func (v QuantityVec) Plus(o QuantityVec) QuantityVec {
	if !v.Dim.Equals(o.Dim) {
		panic(fmt.Errorf("cannot add %s to %s", o.Dim, v.Dim))
	}
	s := make([]float64, 3)
	for i, val := range v.Value {
		s[i] = val + o.Value[i]
	}
	return QuantityVec{s, v.Dim}
}

// Neg returns the vector with each component sign flipped.
func (v QuantityVec) Neg() QuantityVec {
	s := make([]float64, 3)
	for i, val := range v.Value {
		s[i] = -val
	}
	return QuantityVec{s, v.Dim}
}

// Equals returns whether both vectors share a dimension and are equal
// component-wise within floating point tolerance.
func (v QuantityVec) Equals(o QuantityVec) bool {
	if !v.Dim.Equals(o.Dim) {
		return false
	}
	for i, val := range v.Value {
		if !floats.EqualWithinAbsOrRel(val, o.Value[i], 1e-12, 1e-12) {
			return false
		}
	}
	return true
}

// String implements the Stringer interface.
func (v QuantityVec) String() string {
	return fmt.Sprintf("%v [%s]", v.Value, v.Dim)
}
