package gridconv

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Projection selects one of the Polish national grids.
type Projection byte

// Projection constants
const (
	ProjectionInvalid Projection = iota
	PL1992
	PL2000
)

func (p Projection) String() string {
	switch p {
	case PL1992:
		return "PUWG 1992"
	case PL2000:
		return "PUWG 2000"
	}
	return "invalid"
}

// PUWGSentinel is the value older PUWG converters wrote to both easting and
// northing for a longitude outside the grids. The converters here return
// ErrLongitudeOutOfBand instead.
const PUWGSentinel = 999999999999999

// PUWGCoord is a PUWG 1992 or 2000 coordinate. Easting includes the false
// easting of its strip.
type PUWGCoord struct {
	Projection Projection
	Easting    float64
	Northing   float64
}

type puwgStrip struct {
	west            float64 // longitude band [west, east), degrees
	east            float64
	centralMeridian float64 // degrees
	offset          float64 // strip offset added to the false easting
}

const (
	puwgMinLon        = 13.5
	puwgMaxLon        = 25.5
	puwgFalseEasting  = 500000.0
	pl1992Scale       = 0.9993
	pl1992FalseNorth  = -5300000.0
	pl2000Scale       = 0.999923
	pl2000StripHeight = 1000000.0
)

var pl1992Strips = []puwgStrip{
	{puwgMinLon, puwgMaxLon, 19.0, 0.0},
}

// The strip offset doubles as the lower bound of the strip's easting band.
var pl2000Strips = []puwgStrip{
	{13.5, 16.5, 15.0, 5000000.0},
	{16.5, 19.5, 18.0, 6000000.0},
	{19.5, 22.5, 21.0, 7000000.0},
	{22.5, 25.5, 24.0, 8000000.0},
}

// PUWG is a PUWG 1992 or PUWG 2000 coordinate converter
type PUWG struct {
	ellipsoid             Ellipsoid
	projection            Projection
	strips                []puwgStrip
	transverseMercatorMap []*TransverseMercator
}

// NewPUWG constructs a converter for the given ellipsoid and grid.
func NewPUWG(ellipsoid Ellipsoid, projection Projection) (*PUWG, error) {
	if err := ellipsoid.validate(); err != nil {
		return nil, err
	}

	p := &PUWG{
		ellipsoid:  ellipsoid,
		projection: projection,
	}
	var scale, falseNorthing float64
	switch projection {
	case PL1992:
		p.strips = pl1992Strips
		scale = pl1992Scale
		falseNorthing = pl1992FalseNorth
	case PL2000:
		p.strips = pl2000Strips
		scale = pl2000Scale
	default:
		return nil, errors.Wrapf(ErrInvalidProjection, "%d", projection)
	}

	for _, strip := range p.strips {
		tm, err := NewTransverseMercator(ellipsoid, s1.Angle(strip.centralMeridian*deg2rad),
			puwgFalseEasting+strip.offset, falseNorthing, scale)
		if err != nil {
			return nil, err
		}
		p.transverseMercatorMap = append(p.transverseMercatorMap, tm)
	}
	return p, nil
}

// Projection returns the grid this converter produces.
func (p *PUWG) Projection() Projection {
	return p.projection
}

// Ellipsoid returns the ellipsoid the converter was built for.
func (p *PUWG) Ellipsoid() Ellipsoid {
	return p.ellipsoid
}

// stripForLongitude returns the index of the strip covering lon in degrees.
func (p *PUWG) stripForLongitude(lon float64) (int, error) {
	for i, strip := range p.strips {
		if lon >= strip.west && lon < strip.east {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrLongitudeOutOfBand, "longitude %v outside [%v, %v)", lon, puwgMinLon, puwgMaxLon)
}

// stripForEasting returns the index of the strip whose easting band holds
// easting. PL1992 has a single strip and accepts any easting.
func (p *PUWG) stripForEasting(easting float64) (int, error) {
	if p.projection == PL1992 {
		return 0, nil
	}
	for i, strip := range p.strips {
		if easting >= strip.offset && easting < strip.offset+pl2000StripHeight {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrEastingOutOfBand, "easting %v", easting)
}

// CentralMeridian returns the central meridian used for a longitude in
// degrees.
func (p *PUWG) CentralMeridian(lon float64) (s1.Angle, error) {
	i, err := p.stripForLongitude(lon)
	if err != nil {
		return 0, err
	}
	return p.transverseMercatorMap[i].CentralMeridian(), nil
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to PUWG easting and northing. Longitudes outside [13.5°, 25.5°) fail with
// ErrLongitudeOutOfBand.
func (p *PUWG) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (PUWGCoord, error) {
	return p.LatLonToPUWG(geodeticCoordinates.Lat.Degrees(), geodeticCoordinates.Lng.Degrees())
}

// LatLonToPUWG is ConvertFromGeodetic for a latitude and longitude in
// degrees.
func (p *PUWG) LatLonToPUWG(lat, lon float64) (PUWGCoord, error) {
	if !isFinite(lat) {
		return PUWGCoord{}, errors.Wrapf(ErrInvalidCoordinate, "latitude %v", lat)
	}
	i, err := p.stripForLongitude(lon)
	if err != nil {
		return PUWGCoord{}, err
	}

	easting, northing := p.transverseMercatorMap[i].latLonToEastingNorthing(lat*deg2rad, lon*deg2rad)
	return PUWGCoord{
		Projection: p.projection,
		Easting:    easting,
		Northing:   northing,
	}, nil
}

// ConvertToGeodetic converts PUWG easting and northing to geodetic
// coordinates. A coordinate with ProjectionInvalid is read in the converter's
// own grid; any other mismatch is an error.
func (p *PUWG) ConvertToGeodetic(puwgCoordinates PUWGCoord) (s2.LatLng, error) {
	lat, lon, err := p.toGeodetic(puwgCoordinates)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}, nil
}

// PUWGToLatLon is ConvertToGeodetic returning degrees.
func (p *PUWG) PUWGToLatLon(puwgCoordinates PUWGCoord) (lat, lon float64, err error) {
	lat, lon, err = p.toGeodetic(puwgCoordinates)
	if err != nil {
		return 0, 0, err
	}
	return lat * rad2deg, lon * rad2deg, nil
}

func (p *PUWG) toGeodetic(c PUWGCoord) (lat, lon float64, err error) {
	if c.Projection != ProjectionInvalid && c.Projection != p.projection {
		return 0, 0, errors.Wrapf(ErrInvalidProjection, "%s coordinate given to %s converter", c.Projection, p.projection)
	}
	if !isFinite(c.Easting) || !isFinite(c.Northing) {
		return 0, 0, errors.Wrapf(ErrInvalidCoordinate, "easting %v northing %v", c.Easting, c.Northing)
	}
	i, err := p.stripForEasting(c.Easting)
	if err != nil {
		return 0, 0, err
	}
	lat, lon = p.transverseMercatorMap[i].eastingNorthingToLatLon(c.Easting, c.Northing)
	return lat, lon, nil
}
