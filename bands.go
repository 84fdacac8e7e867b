package gridconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

// bandLetters are the UTM latitude bands from 80°S northwards. Each spans 8°
// except X, which covers [72°, 84°).
const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

// BandInvalid is the band letter reported for latitudes outside [-80°, 84°).
const BandInvalid = '*'

const (
	bandMinLat  = -80.0
	bandMaxLat  = 84.0
	bandXSouth  = 72.0
	bandHeight  = 8.0
	bandXLetter = 19
)

// latitudeBandLetter receives a latitude in degrees and returns its band
// letter, or BandInvalid.
func latitudeBandLetter(lat float64) byte {
	if math.IsNaN(lat) || lat >= bandMaxLat || lat < bandMinLat {
		return BandInvalid
	}
	if lat >= bandXSouth {
		return bandLetters[bandXLetter]
	}
	return bandLetters[int((lat-bandMinLat)/bandHeight)]
}

// bandHemisphere maps a band letter, in either case, to its hemisphere.
func bandHemisphere(letter byte) (Hemisphere, error) {
	upper := toupper(letter)
	if strings.IndexByte(bandLetters, upper) < 0 {
		return HemisphereInvalid, errors.Wrapf(ErrInvalidZoneLetter, "%q", letter)
	}
	if upper >= 'C' && upper <= 'M' {
		return HemisphereSouth, nil
	}
	return HemisphereNorth, nil
}

// String formats the coordinate as "<zone><band> <easting> <northing>" with
// centimeter precision.
func (u UTMCoord) String() string {
	return fmt.Sprintf("%d%c %.2f %.2f", u.Zone, u.Band, u.Easting, u.Northing)
}

// ParseUTM parses the text form produced by UTMCoord.String. The band letter
// may be lower case, and any run of whitespace separates the fields.
func ParseUTM(s string) (UTMCoord, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return UTMCoord{}, errors.Wrapf(ErrMalformedUTM, "%q: expected 3 fields, got %d", s, len(fields))
	}

	zoneBand := fields[0]
	i := 0
	for i < len(zoneBand) && isdigit(zoneBand[i]) {
		i++
	}
	if i == 0 || i > 2 || i != len(zoneBand)-1 || !isalpha(zoneBand[i]) {
		return UTMCoord{}, errors.Wrapf(ErrMalformedUTM, "%q: bad zone designator", s)
	}
	zone, _ := strconv.Atoi(zoneBand[:i])

	easting, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return UTMCoord{}, errors.Wrapf(ErrMalformedUTM, "%q: easting: %v", s, err)
	}
	northing, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return UTMCoord{}, errors.Wrapf(ErrMalformedUTM, "%q: northing: %v", s, err)
	}

	c := UTMCoord{
		Zone:     zone,
		Band:     toupper(zoneBand[i]),
		Easting:  easting,
		Northing: northing,
	}
	if err := c.validate(); err != nil {
		return UTMCoord{}, err
	}
	return c, nil
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isalpha(r byte) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

func toupper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
