package planerect

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEllipsoid is returned (wrapped) when ellipsoid parameters
// cannot describe a physical ellipsoid.
var ErrInvalidEllipsoid = errors.New("invalid ellipsoid parameters")

// Ellipsoid holds the reference ellipsoid and the projection scale factor
// on the central meridian. The zero value is not usable, construct one with
// NewEllipsoid.
type Ellipsoid struct {
	semiMajorAxis     float64
	inverseFlattening float64
	scaleFactor       float64
}

// NewEllipsoid constructs an Ellipsoid from its semi-major axis in meters,
// its inverse flattening and the projection scale factor.
func NewEllipsoid(semiMajorAxis, inverseFlattening, scaleFactor float64) (Ellipsoid, error) {
	e := Ellipsoid{
		semiMajorAxis:     semiMajorAxis,
		inverseFlattening: inverseFlattening,
		scaleFactor:       scaleFactor,
	}
	if err := e.validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

func (e Ellipsoid) validate() error {
	// written as !(v > x) so NaN is rejected too
	if !(e.semiMajorAxis > 0) || math.IsInf(e.semiMajorAxis, 0) {
		return fmt.Errorf("%w: semi-major axis must be greater than zero", ErrInvalidEllipsoid)
	}
	if !(e.inverseFlattening > 1) || math.IsInf(e.inverseFlattening, 0) {
		return fmt.Errorf("%w: inverse flattening must be greater than one", ErrInvalidEllipsoid)
	}
	if !(e.scaleFactor > 0) || math.IsInf(e.scaleFactor, 0) {
		return fmt.Errorf("%w: scale factor must be greater than zero", ErrInvalidEllipsoid)
	}
	return nil
}

// SemiMajorAxis returns the semi-major axis in meters.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// InverseFlattening returns the reciprocal of the flattening.
func (e Ellipsoid) InverseFlattening() float64 { return e.inverseFlattening }

// ScaleFactor returns the scale factor on the central meridian.
func (e Ellipsoid) ScaleFactor() float64 { return e.scaleFactor }

// N returns Helmert's third flattening n = (a - b)/(a + b), computed from
// the inverse flattening as 1/(2F - 1).
func (e Ellipsoid) N() float64 {
	return 1.0 / (2*e.inverseFlattening - 1)
}

func (e Ellipsoid) String() string {
	return fmt.Sprintf("a=%.3f 1/f=%.9f m0=%g", e.semiMajorAxis, e.inverseFlattening, e.scaleFactor)
}
