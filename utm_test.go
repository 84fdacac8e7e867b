package gridconv_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/gridconv"
)

func TestUTMRoundTrip(t *testing.T) {
	utm, err := gridconv.NewUTM(gridconv.WGS84)
	if err != nil {
		t.Fatalf("error creating UTM converter: %s", err)
	}
	const latInc = 0.5
	const lngInc = 0.5
	const maxErr = 1e-7 * s1.Degree
	for lng := -179.75; lng < 180; lng += lngInc {
		for lat := -100.0; lat < 100; lat += latInc {
			geo := s2.LatLngFromDegrees(lat, lng)
			uc, err := utm.ConvertFromGeodetic(geo)
			if err == nil {
				geo2, err := utm.ConvertToGeodetic(uc)
				if err != nil {
					t.Fatalf("expected no error in round trip, got one at %s (%s)", geo, err)
				}
				if geo.Distance(geo2) > maxErr {
					t.Fatalf("expected %s, got %s", geo, geo2)
				}
			}
		}
	}
}

func TestUTMRoundTripDegrees(t *testing.T) {
	for lat := -79.5; lat < 84; lat += 0.5 {
		for lon := -179.75; lon < 180; lon += 1.5 {
			c, err := gridconv.LatLonToUTMWGS84(lat, lon)
			require.NoError(t, err)
			lat2, lon2, err := gridconv.UTMToLatLonWGS84(c)
			require.NoError(t, err)
			assert.InDelta(t, lat, lat2, 1e-7, "%v %v -> %s", lat, lon, c)
			assert.InDelta(t, lon, lon2, 1e-7, "%v %v -> %s", lat, lon, c)
		}
	}
}

func TestUTMKnownPoints(t *testing.T) {
	for _, tc := range []struct {
		name               string
		lat, lon           float64
		zone               int
		band               byte
		easting, northing  float64
	}{
		{"warsaw", 52.2297, 21.0122, 34, 'U', 500833.24314742716, 5786586.671242285},
		{"new york", 40.7128, -74.0060, 18, 'T', 583959.3723240854, 4507350.998243354},
		{"sydney", -33.8688, 151.2093, 56, 'H', 334368.63364805904, 6250948.345385025},
		{"london", 51.5, -0.1, 30, 'U', 701277.665127068, 5709417.124847555},
		{"equator on central meridian", 0, 9, 32, 'N', 500000, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := gridconv.LatLonToUTMWGS84(tc.lat, tc.lon)
			require.NoError(t, err)
			assert.Equal(t, tc.zone, c.Zone)
			assert.Equal(t, tc.band, c.Band)
			assert.InDelta(t, tc.easting, c.Easting, 1e-4)
			assert.InDelta(t, tc.northing, c.Northing, 1e-4)

			lat, lon, err := gridconv.UTMToLatLonWGS84(c)
			require.NoError(t, err)
			assert.InDelta(t, tc.lat, lat, 1e-9)
			assert.InDelta(t, tc.lon, lon, 1e-9)
		})
	}
}

func TestUTMEquatorCentralMeridianIsExact(t *testing.T) {
	c, err := gridconv.LatLonToUTMWGS84(0, 9)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, c.Easting)
	assert.Equal(t, 0.0, c.Northing)
}

func TestUTMZoneSelection(t *testing.T) {
	for zone := 1; zone <= 60; zone++ {
		lon := -180 + 6*float64(zone-1) + 3
		c, err := gridconv.LatLonToUTMWGS84(10, lon)
		require.NoError(t, err)
		assert.Equal(t, zone, c.Zone, "longitude %v", lon)
	}

	for _, tc := range []struct {
		lon  float64
		zone int
	}{
		{0, 30},
		{1e-9, 31},
		{-1e-9, 30},
		{-5.99, 30},
		{5.99, 31},
		{6, 32},
		{-180, 1},
		{180, 60},
	} {
		c, err := gridconv.LatLonToUTMWGS84(10, tc.lon)
		require.NoError(t, err)
		assert.Equal(t, tc.zone, c.Zone, "longitude %v", tc.lon)
	}
}

func TestUTMZoneSteps(t *testing.T) {
	steps := 0
	prev := 0
	for lon := -179.95; lon < 180; lon += 0.1 {
		c, err := gridconv.LatLonToUTMWGS84(0, lon)
		require.NoError(t, err)
		require.GreaterOrEqual(t, c.Zone, prev, "longitude %v", lon)
		if c.Zone != prev {
			steps++
			prev = c.Zone
		}
	}
	assert.Equal(t, 60, steps)
}

func TestUTMBands(t *testing.T) {
	const letters = "CDEFGHJKLMNPQRSTUVW"
	for i := 0; i < len(letters); i++ {
		lat := -80 + 8*float64(i) + 4
		c, err := gridconv.LatLonToUTMWGS84(lat, 20)
		require.NoError(t, err)
		assert.Equal(t, letters[i], c.Band, "latitude %v", lat)
	}

	for _, tc := range []struct {
		lat  float64
		band byte
	}{
		{-80, 'C'},
		{-72.0001, 'C'},
		{-72, 'D'},
		{-0.0001, 'M'},
		{0, 'N'},
		{71.9999, 'W'},
		{72, 'X'},
		{80, 'X'},
		{83.9999, 'X'},
	} {
		c, err := gridconv.LatLonToUTMWGS84(tc.lat, 20)
		require.NoError(t, err)
		assert.Equal(t, string(tc.band), string(c.Band), "latitude %v", tc.lat)
	}
}

func TestUTMLatitudeOutOfBand(t *testing.T) {
	for _, lat := range []float64{84, 85, -80.0001, -85} {
		c, err := gridconv.LatLonToUTMWGS84(lat, 20)
		assert.True(t, errors.Is(err, gridconv.ErrLatitudeOutOfBand), "latitude %v: %v", lat, err)
		assert.Equal(t, byte(gridconv.BandInvalid), c.Band)
		assert.Equal(t, 34, c.Zone)

		// a degraded coordinate cannot be converted back
		_, _, err = gridconv.UTMToLatLonWGS84(c)
		assert.True(t, errors.Is(err, gridconv.ErrInvalidZoneLetter), "got %v", err)
	}

	_, err := gridconv.LatLonToUTMWGS84(math.NaN(), 20)
	assert.True(t, errors.Is(err, gridconv.ErrLatitudeOutOfBand), "got %v", err)
}

func TestUTMLongitudeOutOfRange(t *testing.T) {
	for _, lon := range []float64{-180.5, 180.5, 360, math.NaN(), math.Inf(1)} {
		c, err := gridconv.LatLonToUTMWGS84(10, lon)
		assert.True(t, errors.Is(err, gridconv.ErrLongitudeOutOfRange), "longitude %v: %v", lon, err)
		assert.Equal(t, gridconv.UTMCoord{}, c)
	}
}

func TestUTMNorthingClamp(t *testing.T) {
	c, err := gridconv.LatLonToUTMWGS84(-1e-6, 3)
	require.NoError(t, err)
	assert.Equal(t, 9999999.0, c.Northing)
	assert.Equal(t, byte('M'), c.Band)

	c, err = gridconv.LatLonToUTMWGS84(-0.5, 3)
	require.NoError(t, err)
	assert.Less(t, c.Northing, 9999999.0)
}

func TestUTMInverseValidation(t *testing.T) {
	valid := gridconv.UTMCoord{Zone: 34, Band: 'U', Easting: 500000, Northing: 5786586}

	for _, zone := range []int{0, -1, 61} {
		c := valid
		c.Zone = zone
		_, _, err := gridconv.UTMToLatLonWGS84(c)
		assert.True(t, errors.Is(err, gridconv.ErrInvalidZoneNumber), "zone %d: %v", zone, err)
	}

	for _, band := range []byte{'A', 'B', 'I', 'O', 'Y', 'Z', '*', 0, '1'} {
		c := valid
		c.Band = band
		_, _, err := gridconv.UTMToLatLonWGS84(c)
		assert.True(t, errors.Is(err, gridconv.ErrInvalidZoneLetter), "band %q: %v", band, err)
	}

	c := valid
	c.Easting = math.NaN()
	_, _, err := gridconv.UTMToLatLonWGS84(c)
	assert.True(t, errors.Is(err, gridconv.ErrInvalidCoordinate), "got %v", err)
}

func TestUTMBandCaseAndHemisphere(t *testing.T) {
	c, err := gridconv.LatLonToUTMWGS84(-33.8688, 151.2093)
	require.NoError(t, err)
	assert.Equal(t, gridconv.HemisphereSouth, c.Hemisphere())

	lat, lon, err := gridconv.UTMToLatLonWGS84(c)
	require.NoError(t, err)

	lower := c
	lower.Band = 'h'
	lat2, lon2, err := gridconv.UTMToLatLonWGS84(lower)
	require.NoError(t, err)
	assert.Equal(t, lat, lat2)
	assert.Equal(t, lon, lon2)

	// N is the first northern band
	assert.Equal(t, gridconv.HemisphereNorth, gridconv.UTMCoord{Band: 'N'}.Hemisphere())
	assert.Equal(t, gridconv.HemisphereSouth, gridconv.UTMCoord{Band: 'm'}.Hemisphere())
	assert.Equal(t, gridconv.HemisphereInvalid, gridconv.UTMCoord{Band: '*'}.Hemisphere())
}

func TestUTMInverseIsDeterministic(t *testing.T) {
	c := gridconv.UTMCoord{Zone: 34, Band: 'U', Easting: 512345.678, Northing: 5786586.671}
	lat, lon, err := gridconv.UTMToLatLonWGS84(c)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		lat2, lon2, err := gridconv.UTMToLatLonWGS84(c)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(lat), math.Float64bits(lat2))
		require.Equal(t, math.Float64bits(lon), math.Float64bits(lon2))
	}
}

func TestUTMZoneOverride(t *testing.T) {
	utm := gridconv.DefaultUTMConverter

	// 20.9°E is in zone 34, next to 33 and 35
	geo := s2.LatLngFromDegrees(52, 20.9)
	for _, zone := range []int{33, 34, 35} {
		c, err := utm.ConvertFromGeodeticInZone(geo, zone)
		require.NoError(t, err)
		assert.Equal(t, zone, c.Zone)

		geo2, err := utm.ConvertToGeodetic(c)
		require.NoError(t, err)
		assert.Less(t, float64(geo.Distance(geo2)), float64(1e-7*s1.Degree))
	}
	for _, zone := range []int{32, 36, 0, 61} {
		_, err := utm.ConvertFromGeodeticInZone(geo, zone)
		assert.True(t, errors.Is(err, gridconv.ErrZoneOverride), "zone %d: %v", zone, err)
	}

	// zones 1 and 60 meet at the antimeridian
	c, err := utm.LatLonToUTMInZone(10, -179.5, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, c.Zone)
	assert.Greater(t, c.Easting, 500000.0)
	lat, lon, err := utm.UTMToLatLon(c)
	require.NoError(t, err)
	assert.InDelta(t, 10, lat, 1e-7)
	assert.InDelta(t, -179.5, lon, 1e-7)

	c, err = utm.LatLonToUTMInZone(10, 179.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Zone)
	assert.Less(t, c.Easting, 500000.0)
}
