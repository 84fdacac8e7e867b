package gridconv

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Geometries are projected point by point. Geodetic points are orb's
// [lon, lat] in degrees, projected points are [easting, northing] in meters.
// The input is never modified; the first point that fails to convert aborts
// the projection and its error is returned.

func projectGeometry(g orb.Geometry, convert func(orb.Point) (orb.Point, error)) (orb.Geometry, error) {
	if g == nil {
		return nil, nil
	}

	var firstErr error
	out := project.Geometry(orb.Clone(g), func(p orb.Point) orb.Point {
		if firstErr != nil {
			return p
		}
		q, err := convert(p)
		if err != nil {
			firstErr = err
			return p
		}
		return q
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// ProjectGeometry projects every point of g into a single UTM zone. A zone
// of 0 uses the zone of the centre of g's bound; any other zone must be
// acceptable to LatLonToUTMInZone for every point. Each point keeps the
// false northing of its own hemisphere.
func (u *UTM) ProjectGeometry(g orb.Geometry, zone int) (orb.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	if zone == 0 {
		center := g.Bound().Center()
		if err := checkUTMLatLon(center.Lat(), center.Lon()); err != nil {
			return nil, err
		}
		zone = utmZone(center.Lon())
	}
	return projectGeometry(g, func(p orb.Point) (orb.Point, error) {
		c, err := u.LatLonToUTMInZone(p.Lat(), p.Lon(), zone)
		if err != nil {
			return p, err
		}
		return orb.Point{c.Easting, c.Northing}, nil
	})
}

// UnprojectGeometry reverses ProjectGeometry for geometries in the given zone
// and band.
func (u *UTM) UnprojectGeometry(g orb.Geometry, zone int, band byte) (orb.Geometry, error) {
	return projectGeometry(g, func(p orb.Point) (orb.Point, error) {
		lat, lon, err := u.UTMToLatLon(UTMCoord{Zone: zone, Band: band, Easting: p[0], Northing: p[1]})
		if err != nil {
			return p, err
		}
		return orb.Point{lon, lat}, nil
	})
}

// ProjectGeometry projects every point of g into the converter's grid. In
// PL2000 each point falls in the strip of its own longitude.
func (p *PUWG) ProjectGeometry(g orb.Geometry) (orb.Geometry, error) {
	return projectGeometry(g, func(pt orb.Point) (orb.Point, error) {
		c, err := p.LatLonToPUWG(pt.Lat(), pt.Lon())
		if err != nil {
			return pt, err
		}
		return orb.Point{c.Easting, c.Northing}, nil
	})
}

// UnprojectGeometry reverses ProjectGeometry.
func (p *PUWG) UnprojectGeometry(g orb.Geometry) (orb.Geometry, error) {
	return projectGeometry(g, func(pt orb.Point) (orb.Point, error) {
		lat, lon, err := p.PUWGToLatLon(PUWGCoord{Projection: p.projection, Easting: pt[0], Northing: pt[1]})
		if err != nil {
			return pt, err
		}
		return orb.Point{lon, lat}, nil
	})
}
