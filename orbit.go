package orbit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian date of the J2000.0 reference epoch.
const J2000 = 2451545.0

// Element is one classical orbital element. The zero value is unset, which
// is distinct from an element legitimately equal to zero.
type Element struct {
	q       Quantity
	defined bool
}

// NewElement returns a defined element holding the given quantity.
func NewElement(q Quantity) Element {
	return Element{q, true}
}

// Defined returns whether the element has been assigned a value.
func (e Element) Defined() bool {
	return e.defined
}

// Quantity returns the element value, and panics if the element is unset.
func (e Element) Quantity() Quantity {
	if !e.defined {
		panic(errors.New("orbital element not set"))
	}
	return e.q
}

// Orbit defines a simple elliptical orbit via its classical orbital
// elements. Every field is independently optional, and none is validated:
// the eccentricity domain [0, 1) is documented, not enforced.
type Orbit struct {
	// Semi-major axis (length).
	SemiMajorAxis Element
	// Eccentricity. [0, 1)
	Eccentricity Element
	// Inclination. Rising angle off the equator.
	Inclination Element
	// Right ascension of the ascending node.
	RightAscension Element
	// Argument of perigee. Angle offset at which perigee occurs, opening
	// from the equatorial crossing.
	ArgOfPerigee Element
	// Time of perigee passage.
	TimeOfPerigee Element
}

// NewOrbitFromOE creates an orbit from the provided orbital elements, with
// the semi-major axis in kilometers, angles in degrees and the time of
// perigee as a calendar time.
func NewOrbitFromOE(a, e, i, Ω, ω float64, tPeri time.Time) Orbit {
	return Orbit{
		SemiMajorAxis:  NewElement(Kilometers(a)),
		Eccentricity:   NewElement(Unitless(e)),
		Inclination:    NewElement(Degrees(i)),
		RightAscension: NewElement(Degrees(Ω)),
		ArgOfPerigee:   NewElement(Degrees(ω)),
		TimeOfPerigee:  PerigeeEpoch(tPeri),
	}
}

// PerigeeEpoch converts a calendar time into a time-of-perigee element
// expressed in seconds past the J2000.0 epoch.
func PerigeeEpoch(dt time.Time) Element {
	return NewElement(Seconds((julian.TimeToJD(dt) - J2000) * 86400))
}

// String implements the Stringer interface. Unset elements are omitted.
func (o Orbit) String() string {
	var parts []string
	if o.SemiMajorAxis.Defined() {
		parts = append(parts, fmt.Sprintf("a=%.1f", o.SemiMajorAxis.Quantity().Value))
	}
	if o.Eccentricity.Defined() {
		parts = append(parts, fmt.Sprintf("e=%.4f", o.Eccentricity.Quantity().Value))
	}
	if o.Inclination.Defined() {
		parts = append(parts, fmt.Sprintf("i=%.3f", Rad2deg(o.Inclination.Quantity().Value)))
	}
	if o.RightAscension.Defined() {
		parts = append(parts, fmt.Sprintf("Ω=%.3f", Rad2deg(o.RightAscension.Quantity().Value)))
	}
	if o.ArgOfPerigee.Defined() {
		parts = append(parts, fmt.Sprintf("ω=%.3f", Rad2deg(o.ArgOfPerigee.Quantity().Value)))
	}
	if o.TimeOfPerigee.Defined() {
		parts = append(parts, fmt.Sprintf("tp=%.1f", o.TimeOfPerigee.Quantity().Value))
	}
	if len(parts) == 0 {
		return "undefined orbit"
	}
	return strings.Join(parts, " ")
}
