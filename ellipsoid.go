package gridconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
)

// Ellipsoid is a reference ellipsoid given by its semi-major axis in meters
// and its flattening. Every other shape parameter is derived from these two.
type Ellipsoid struct {
	SemiMajorAxis float64
	Flattening    float64
}

// NewEllipsoid validates the ellipsoid parameters. The semi-major axis must be
// positive and the flattening must lie in (0, 1).
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	e := Ellipsoid{SemiMajorAxis: semiMajorAxis, Flattening: flattening}
	if err := e.validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

func (e Ellipsoid) validate() error {
	if math.IsNaN(e.SemiMajorAxis) || math.IsInf(e.SemiMajorAxis, 0) || e.SemiMajorAxis <= 0 {
		return errors.Wrapf(ErrInvalidEllipsoid, "semi-major axis %v must be greater than zero", e.SemiMajorAxis)
	}
	if math.IsNaN(e.Flattening) || e.Flattening <= 0 || e.Flattening >= 1 {
		return errors.Wrapf(ErrInvalidEllipsoid, "flattening %v must be between 0 and 1", e.Flattening)
	}
	return nil
}

// SemiMinorAxis returns b in meters.
func (e Ellipsoid) SemiMinorAxis() float64 {
	invF := 1 / e.Flattening
	return e.SemiMajorAxis * (invF - 1) / invF
}

// EccentricitySquared returns the first eccentricity squared, (a²-b²)/a².
func (e Ellipsoid) EccentricitySquared() float64 {
	a := e.SemiMajorAxis
	b := e.SemiMinorAxis()
	return ((a * a) - (b * b)) / (a * a)
}

// SecondEccentricitySquared returns (a²-b²)/b².
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	a := e.SemiMajorAxis
	b := e.SemiMinorAxis()
	return ((a * a) - (b * b)) / (b * b)
}

// ThirdFlattening returns Helmert's n = (a-b)/(a+b).
func (e Ellipsoid) ThirdFlattening() float64 {
	a := e.SemiMajorAxis
	b := e.SemiMinorAxis()
	return (a - b) / (a + b)
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical
// at the given latitude.
func (e Ellipsoid) PrimeVerticalRadius(lat s1.Angle) float64 {
	return primeVerticalRadius(e.SemiMajorAxis, e.EccentricitySquared(), lat.Radians())
}

// MeridionalRadius returns the radius of curvature of the meridian at the
// given latitude.
func (e Ellipsoid) MeridionalRadius(lat s1.Angle) float64 {
	return meridionalRadius(e.SemiMajorAxis, e.EccentricitySquared(), lat.Radians())
}

// MeridianArcLength returns the distance in meters along the meridian from
// the equator to the given latitude.
func (e Ellipsoid) MeridianArcLength(lat s1.Angle) float64 {
	return e.meridianArc().length(lat.Radians())
}

func curvatureDenom(es, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Sqrt(1.0 - es*(sinPhi*sinPhi))
}

func primeVerticalRadius(a, es, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return a / math.Sqrt(1.0-es*(sinPhi*sinPhi))
}

// es < 1 holds for every ellipsoid accepted by NewEllipsoid, so the
// denominator never vanishes.
func meridionalRadius(a, es, phi float64) float64 {
	dn := curvatureDenom(es, phi)
	return a * (1.0 - es) / (dn * dn * dn)
}

// meridianArc holds the truncated Fourier series for the meridian distance:
// c0·φ - c2·sin2φ + c4·sin4φ - c6·sin6φ + c8·sin8φ.
type meridianArc struct {
	c0, c2, c4, c6, c8 float64
}

func (e Ellipsoid) meridianArc() meridianArc {
	a := e.SemiMajorAxis
	n := e.ThirdFlattening()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	return meridianArc{
		c0: a * (1.0 - n + 5.0*(n2-n3)/4.0 + 81.0*(n4-n5)/64.0),
		c2: 3.0 * a * (n - n2 + 7.0*(n3-n4)/8.0 + 55.0*n5/64.0) / 2.0,
		c4: 15.0 * a * (n2 - n3 + 3.0*(n4-n5)/4.0) / 16.0,
		c6: 35.0 * a * (n3 - n4 + 11.0*n5/16.0) / 48.0,
		c8: 315.0 * a * (n4 - n5) / 512.0,
	}
}

func (m meridianArc) length(phi float64) float64 {
	return (m.c0 * phi) - (m.c2 * math.Sin(2.0*phi)) + (m.c4 * math.Sin(4.0*phi)) -
		(m.c6 * math.Sin(6.0*phi)) + (m.c8 * math.Sin(8.0*phi))
}
