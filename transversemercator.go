package gridconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// footprintIterations is the fixed number of refinement steps used to recover
// the footprint latitude. It is not a convergence loop: results must match
// published vectors computed with the same count.
const footprintIterations = 5

// MapCoords is an easting/northing pair in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// TransverseMercator evaluates the Redfearn transverse Mercator series for a
// single central meridian. UTM zones and PUWG strips are each one
// TransverseMercator with their own meridian, offsets and scale.
type TransverseMercator struct {
	// Ellipsoid Parameters
	semiMajorAxis float64
	es            float64 // first eccentricity squared
	ebs           float64 // second eccentricity squared
	arc           meridianArc

	// Transverse_Mercator projection Parameters
	tranMercOriginLong    float64 // Longitude of origin in radians
	tranMercFalseEasting  float64 // False easting in meters
	tranMercFalseNorthing float64 // False northing in meters
	tranMercScaleFactor   float64 // Scale factor
}

// NewTransverseMercator constructs a new TransverseMercator converter.
func NewTransverseMercator(ellipsoid Ellipsoid, centralMeridian s1.Angle,
	falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {
	if err := ellipsoid.validate(); err != nil {
		return nil, err
	}
	if (centralMeridian < -math.Pi) || (centralMeridian > math.Pi) {
		return nil, errors.Newf("central meridian %s out of range", centralMeridian)
	}

	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.Newf("scale factor %v out of range", scaleFactor)
	}

	return &TransverseMercator{
		semiMajorAxis:         ellipsoid.SemiMajorAxis,
		es:                    ellipsoid.EccentricitySquared(),
		ebs:                   ellipsoid.SecondEccentricitySquared(),
		arc:                   ellipsoid.meridianArc(),
		tranMercOriginLong:    centralMeridian.Radians(),
		tranMercFalseEasting:  falseEasting,
		tranMercFalseNorthing: falseNorthing,
		tranMercScaleFactor:   scaleFactor,
	}, nil
}

// CentralMeridian returns the longitude of origin.
func (t *TransverseMercator) CentralMeridian() s1.Angle {
	return s1.Angle(t.tranMercOriginLong)
}

// ConvertFromGeodetic projects a geodetic coordinate onto the plane.
func (t *TransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	longitude := geodeticCoordinates.Lng.Radians()
	if !isFinite(latitude) || !isFinite(longitude) {
		return MapCoords{}, errors.Wrapf(ErrInvalidCoordinate, "%s", geodeticCoordinates)
	}
	easting, northing := t.latLonToEastingNorthing(latitude, longitude)
	return MapCoords{Easting: easting, Northing: northing}, nil
}

// ConvertToGeodetic recovers the geodetic coordinate of a projected point.
func (t *TransverseMercator) ConvertToGeodetic(mapProjectionCoordinates MapCoords) (s2.LatLng, error) {
	easting := mapProjectionCoordinates.Easting
	northing := mapProjectionCoordinates.Northing
	if !isFinite(easting) || !isFinite(northing) {
		return s2.LatLng{}, errors.Wrapf(ErrInvalidCoordinate, "easting %v northing %v", easting, northing)
	}
	latitude, longitude := t.eastingNorthingToLatLon(easting, northing)
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

func (t *TransverseMercator) latLonToEastingNorthing(latitude, longitude float64) (easting, northing float64) {
	ok := t.tranMercScaleFactor
	//  Convert longitude (Greenwich) to longitude from the central meridian
	//  in (-Pi, Pi].
	dlam := longitude - t.tranMercOriginLong
	if dlam > math.Pi {
		dlam -= (2 * math.Pi)
	}
	if dlam <= -math.Pi {
		dlam += (2 * math.Pi)
	}

	s := math.Sin(latitude)
	c := math.Cos(latitude)
	tn := s / c
	t2 := tn * tn
	t4 := t2 * t2
	t6 := t4 * t2
	eta := t.ebs * (c * c)
	eta2 := eta * eta
	eta3 := eta2 * eta
	eta4 := eta3 * eta
	c3 := c * c * c
	c5 := c3 * c * c
	c7 := c5 * c * c

	sn := primeVerticalRadius(t.semiMajorAxis, t.es, latitude)
	tmd := t.arc.length(latitude)

	// northing terms, even powers of dlam
	n0 := tmd * ok
	n2 := sn * s * c * ok / 2.0
	n4 := sn * s * c3 * ok * (5.0 - t2 + 9.0*eta + 4.0*eta2) / 24.0
	n6 := sn * s * c5 * ok * (61.0 - 58.0*t2 + t4 + 270.0*eta - 330.0*t2*eta + 445.0*eta2 +
		324.0*eta3 - 680.0*t2*eta2 + 88.0*eta4 - 600.0*t2*eta3 - 192.0*t2*eta4) / 720.0
	n8 := sn * s * c7 * ok * (1385.0 - 3111.0*t2 + 543.0*t4 - t6) / 40320.0

	// easting terms, odd powers of dlam
	e1 := sn * c * ok
	e3 := sn * c3 * ok * (1.0 - t2 + eta) / 6.0
	e5 := sn * c5 * ok * (5.0 - 18.0*t2 + t4 + 14.0*eta - 58.0*t2*eta + 13.0*eta2 +
		4.0*eta3 - 64.0*t2*eta2 - 24.0*t2*eta3) / 120.0
	e7 := sn * c7 * ok * (61.0 - 479.0*t2 + 179.0*t4 - t6) / 5040.0

	dl2 := dlam * dlam
	dl3 := dl2 * dlam
	dl4 := dl3 * dlam
	dl5 := dl4 * dlam
	dl6 := dl5 * dlam
	dl7 := dl6 * dlam
	dl8 := dl7 * dlam

	northing = t.tranMercFalseNorthing + n0 + dl2*n2 + dl4*n4 + dl6*n6 + dl8*n8
	easting = t.tranMercFalseEasting + dlam*e1 + dl3*e3 + dl5*e5 + dl7*e7
	return easting, northing
}

// footprintLatitude returns the latitude whose meridian arc equals tmd.
func (t *TransverseMercator) footprintLatitude(tmd float64) float64 {
	sr := meridionalRadius(t.semiMajorAxis, t.es, 0.0)
	ftphi := tmd / sr
	for i := 0; i < footprintIterations; i++ {
		arc := t.arc.length(ftphi)
		sr = meridionalRadius(t.semiMajorAxis, t.es, ftphi)
		ftphi += (tmd - arc) / sr
	}
	return ftphi
}

func (t *TransverseMercator) eastingNorthingToLatLon(easting, northing float64) (latitude, longitude float64) {
	ok := t.tranMercScaleFactor
	tmd := (northing - t.tranMercFalseNorthing) / ok
	ftphi := t.footprintLatitude(tmd)

	sr := meridionalRadius(t.semiMajorAxis, t.es, ftphi)
	sn := primeVerticalRadius(t.semiMajorAxis, t.es, ftphi)
	s := math.Sin(ftphi)
	c := math.Cos(ftphi)
	tn := s / c
	t2 := tn * tn
	t4 := t2 * t2
	t6 := t4 * t2
	eta := t.ebs * (c * c)
	eta2 := eta * eta
	eta3 := eta2 * eta
	eta4 := eta3 * eta

	sn3 := sn * sn * sn
	sn5 := sn3 * sn * sn
	sn7 := sn5 * sn * sn
	ok2 := ok * ok
	ok3 := ok2 * ok
	ok4 := ok3 * ok
	ok5 := ok4 * ok
	ok6 := ok5 * ok
	ok7 := ok6 * ok
	ok8 := ok7 * ok

	de := easting - t.tranMercFalseEasting
	de2 := de * de
	de3 := de2 * de
	de4 := de3 * de
	de5 := de4 * de
	de6 := de5 * de
	de7 := de6 * de
	de8 := de7 * de

	// latitude terms, even powers of de
	l2 := tn / (2.0 * sr * sn * ok2)
	l4 := tn * (5.0 + 3.0*t2 + eta - 4.0*eta2 - 9.0*t2*eta) / (24.0 * sr * sn3 * ok4)
	l6 := tn * (61.0 + 90.0*t2 + 46.0*eta + 45.0*t4 - 252.0*t2*eta - 3.0*eta2 + 100.0*eta3 -
		66.0*t2*eta2 - 90.0*t4*eta + 88.0*eta4 + 225.0*t4*eta2 + 84.0*t2*eta3 -
		192.0*t2*eta4) / (720.0 * sr * sn5 * ok6)
	l8 := tn * (1385.0 + 3633.0*t2 + 4095.0*t4 + 1575.0*t6) / (40320.0 * sr * sn7 * ok8)
	latitude = ftphi - de2*l2 + de4*l4 - de6*l6 + de8*l8

	// longitude terms, odd powers of de
	m1 := 1.0 / (sn * c * ok)
	m3 := (1.0 + 2.0*t2 + eta) / (6.0 * sn3 * c * ok3)
	m5 := (5.0 + 6.0*eta + 28.0*t2 - 3.0*eta2 + 8.0*t2*eta + 24.0*t4 - 4.0*eta3 +
		4.0*t2*eta2 + 24.0*t2*eta3) / (120.0 * sn5 * c * ok5)
	m7 := (61.0 + 662.0*t2 + 1320.0*t4 + 720.0*t6) / (5040.0 * sn7 * c * ok7)
	dlam := de*m1 - de3*m3 + de5*m5 - de7*m7

	longitude = t.tranMercOriginLong + dlam
	if longitude > math.Pi {
		longitude -= (2 * math.Pi)
	}
	if longitude <= -math.Pi {
		longitude += (2 * math.Pi)
	}
	return latitude, longitude
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
