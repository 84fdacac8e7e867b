package gridconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// UTMCoord is a UTM coordinate
type UTMCoord struct {
	Zone     int
	Band     byte
	Easting  float64
	Northing float64
}

// Hemisphere reports the hemisphere implied by the band letter.
func (u UTMCoord) Hemisphere() Hemisphere {
	h, _ := bandHemisphere(u.Band)
	return h
}

func (u UTMCoord) validate() error {
	if (u.Zone < 1) || (u.Zone > 60) {
		return errors.Wrapf(ErrInvalidZoneNumber, "zone %d", u.Zone)
	}
	if _, err := bandHemisphere(u.Band); err != nil {
		return err
	}
	if !isFinite(u.Easting) || !isFinite(u.Northing) {
		return errors.Wrapf(ErrInvalidCoordinate, "easting %v northing %v", u.Easting, u.Northing)
	}
	return nil
}

// UTM is a UTM coordinate converter
type UTM struct {
	ellipsoid             Ellipsoid
	transverseMercatorMap [61]*TransverseMercator
}

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

const utmScaleFactor = 0.9996
const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0
const utmMaxNorthing = 9999999.0

// NewUTM constructs a UTM converter for the given ellipsoid.
func NewUTM(ellipsoid Ellipsoid) (*UTM, error) {
	if err := ellipsoid.validate(); err != nil {
		return nil, err
	}
	u := &UTM{ellipsoid: ellipsoid}

	for zone := 1; zone <= 60; zone++ {
		centralMeridian := s1.Angle(float64(6*zone-183) * deg2rad)
		var err error
		u.transverseMercatorMap[zone], err = NewTransverseMercator(ellipsoid, centralMeridian,
			utmFalseEasting, 0, utmScaleFactor)
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Ellipsoid returns the ellipsoid the converter was built for.
func (u *UTM) Ellipsoid() Ellipsoid {
	return u.ellipsoid
}

// utmZone returns the zone for a longitude in degrees. Zone 30 ends at and
// includes the prime meridian, so lon = 0 is zone 30. The antimeridian is
// held to zones 1 and 60.
func utmZone(lon float64) int {
	var zone int
	if lon <= 0.0 {
		zone = 30 + int(lon/6.0)
	} else {
		zone = 31 + int(lon/6.0)
	}
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}
	return zone
}

func checkUTMLatLon(lat, lon float64) error {
	if !isFinite(lat) {
		return errors.Wrapf(ErrLatitudeOutOfBand, "latitude %v", lat)
	}
	if !isFinite(lon) || lon < -180 || lon > 180 {
		return errors.Wrapf(ErrLongitudeOutOfRange, "longitude %v", lon)
	}
	return nil
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to UTM projection (zone, band, easting and northing) coordinates.
//
// A latitude outside [-80°, 84°) still produces a coordinate, with Band set
// to BandInvalid, and an error wrapping ErrLatitudeOutOfBand. Its easting and
// northing are not meaningful.
func (u *UTM) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (UTMCoord, error) {
	return u.LatLonToUTM(geodeticCoordinates.Lat.Degrees(), geodeticCoordinates.Lng.Degrees())
}

// LatLonToUTM is ConvertFromGeodetic for a latitude and longitude in degrees.
func (u *UTM) LatLonToUTM(lat, lon float64) (UTMCoord, error) {
	if err := checkUTMLatLon(lat, lon); err != nil {
		return UTMCoord{}, err
	}
	return u.fromGeodetic(lat, lon, utmZone(lon))
}

// ConvertFromGeodeticInZone is ConvertFromGeodetic with the zone forced to
// zone. The override may only move a point into a zone adjacent to its own,
// with zones 1 and 60 adjacent across the antimeridian.
func (u *UTM) ConvertFromGeodeticInZone(geodeticCoordinates s2.LatLng, zone int) (UTMCoord, error) {
	return u.LatLonToUTMInZone(geodeticCoordinates.Lat.Degrees(), geodeticCoordinates.Lng.Degrees(), zone)
}

// LatLonToUTMInZone is ConvertFromGeodeticInZone for a latitude and
// longitude in degrees.
func (u *UTM) LatLonToUTMInZone(lat, lon float64, zone int) (UTMCoord, error) {
	if err := checkUTMLatLon(lat, lon); err != nil {
		return UTMCoord{}, err
	}

	tempZone := utmZone(lon)
	if (tempZone == 1) && (zone == 60) {
		tempZone = zone
	} else if (tempZone == 60) && (zone == 1) {
		tempZone = zone
	} else if ((tempZone - 1) <= zone) && (zone <= (tempZone + 1)) &&
		(zone >= 1) && (zone <= 60) {
		tempZone = zone
	} else {
		return UTMCoord{}, errors.Wrapf(ErrZoneOverride, "zone %d for longitude %v", zone, lon)
	}
	return u.fromGeodetic(lat, lon, tempZone)
}

func (u *UTM) fromGeodetic(lat, lon float64, zone int) (UTMCoord, error) {
	transverseMercator := u.transverseMercatorMap[zone]
	easting, northing := transverseMercator.latLonToEastingNorthing(lat*deg2rad, lon*deg2rad)
	if lat < 0 {
		northing += utmSouthFalseNorthing
	}
	if northing >= utmMaxNorthing {
		northing = utmMaxNorthing
	}

	c := UTMCoord{
		Zone:     zone,
		Band:     latitudeBandLetter(lat),
		Easting:  easting,
		Northing: northing,
	}
	if c.Band == BandInvalid {
		return c, errors.Wrapf(ErrLatitudeOutOfBand, "latitude %v", lat)
	}
	return c, nil
}

// ConvertToGeodetic converts UTM projection (zone, band, easting and
// northing) coordinates to geodetic (latitude and longitude) coordinates.
// Bands C through M are southern.
func (u *UTM) ConvertToGeodetic(utmCoordinates UTMCoord) (s2.LatLng, error) {
	lat, lon, err := u.toGeodetic(utmCoordinates)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}, nil
}

// UTMToLatLon is ConvertToGeodetic returning degrees.
func (u *UTM) UTMToLatLon(utmCoordinates UTMCoord) (lat, lon float64, err error) {
	lat, lon, err = u.toGeodetic(utmCoordinates)
	if err != nil {
		return 0, 0, err
	}
	return lat * rad2deg, lon * rad2deg, nil
}

func (u *UTM) toGeodetic(utmCoordinates UTMCoord) (lat, lon float64, err error) {
	if err := utmCoordinates.validate(); err != nil {
		return 0, 0, err
	}

	falseNorthing := 0.0
	if utmCoordinates.Hemisphere() == HemisphereSouth {
		falseNorthing = utmSouthFalseNorthing
	}

	transverseMercator := u.transverseMercatorMap[utmCoordinates.Zone]
	lat, lon = transverseMercator.eastingNorthingToLatLon(utmCoordinates.Easting,
		utmCoordinates.Northing-falseNorthing)
	return lat, lon, nil
}
