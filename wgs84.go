package gridconv

import "fmt"

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{SemiMajorAxis: 6378137.0, Flattening: 1 / 298.257223563}

// GRS80 is the ellipsoid the Polish grids are defined on. It differs from
// WGS84 only in the flattening; no datum shift is applied between them.
var GRS80 = Ellipsoid{SemiMajorAxis: 6378137.0, Flattening: 1 / 298.257222101}

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

// DefaultPUWG1992Converter is a WGS84 ellipsoid based PUWG 1992 converter.
var DefaultPUWG1992Converter *PUWG

// DefaultPUWG2000Converter is a WGS84 ellipsoid based PUWG 2000 converter.
var DefaultPUWG2000Converter *PUWG

func init() {
	var err error
	DefaultUTMConverter, err = NewUTM(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
	DefaultPUWG1992Converter, err = NewPUWG(WGS84, PL1992)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 PUWG 1992 converter: %s", err))
	}
	DefaultPUWG2000Converter, err = NewPUWG(WGS84, PL2000)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 PUWG 2000 converter: %s", err))
	}
}

// LatLonToUTM converts a latitude and longitude in degrees on ellipsoid to
// UTM. See UTM.ConvertFromGeodetic for the out-of-band latitude result.
func LatLonToUTM(ellipsoid Ellipsoid, lat, lon float64) (UTMCoord, error) {
	u, err := NewUTM(ellipsoid)
	if err != nil {
		return UTMCoord{}, err
	}
	return u.LatLonToUTM(lat, lon)
}

// LatLonToPUWG converts a latitude and longitude in degrees on ellipsoid to
// the given Polish grid.
func LatLonToPUWG(ellipsoid Ellipsoid, lat, lon float64, projection Projection) (PUWGCoord, error) {
	p, err := NewPUWG(ellipsoid, projection)
	if err != nil {
		return PUWGCoord{}, err
	}
	return p.LatLonToPUWG(lat, lon)
}

// UTMToLatLon converts a UTM coordinate on ellipsoid to degrees.
func UTMToLatLon(ellipsoid Ellipsoid, c UTMCoord) (lat, lon float64, err error) {
	u, err := NewUTM(ellipsoid)
	if err != nil {
		return 0, 0, err
	}
	return u.UTMToLatLon(c)
}

// PUWGToLatLon converts a PUWG coordinate on ellipsoid to degrees. The grid
// is taken from c.Projection.
func PUWGToLatLon(ellipsoid Ellipsoid, c PUWGCoord) (lat, lon float64, err error) {
	p, err := NewPUWG(ellipsoid, c.Projection)
	if err != nil {
		return 0, 0, err
	}
	return p.PUWGToLatLon(c)
}

// LatLonToUTMWGS84 is LatLonToUTM on WGS84.
func LatLonToUTMWGS84(lat, lon float64) (UTMCoord, error) {
	return DefaultUTMConverter.LatLonToUTM(lat, lon)
}

// LatLonToPUWGWGS84 is LatLonToPUWG on WGS84.
func LatLonToPUWGWGS84(lat, lon float64, projection Projection) (PUWGCoord, error) {
	switch projection {
	case PL1992:
		return DefaultPUWG1992Converter.LatLonToPUWG(lat, lon)
	case PL2000:
		return DefaultPUWG2000Converter.LatLonToPUWG(lat, lon)
	}
	return LatLonToPUWG(WGS84, lat, lon, projection)
}

// UTMToLatLonWGS84 is UTMToLatLon on WGS84.
func UTMToLatLonWGS84(c UTMCoord) (lat, lon float64, err error) {
	return DefaultUTMConverter.UTMToLatLon(c)
}

// PUWGToLatLonWGS84 is PUWGToLatLon on WGS84.
func PUWGToLatLonWGS84(c PUWGCoord) (lat, lon float64, err error) {
	switch c.Projection {
	case PL1992:
		return DefaultPUWG1992Converter.PUWGToLatLon(c)
	case PL2000:
		return DefaultPUWG2000Converter.PUWGToLatLon(c)
	}
	return PUWGToLatLon(WGS84, c)
}
