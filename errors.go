package gridconv

import "github.com/cockroachdb/errors"

// Errors returned by the converters. Each call site wraps one of these with
// the offending value, so test with errors.Is.
var (
	ErrInvalidEllipsoid    = errors.New("invalid ellipsoid")
	ErrInvalidProjection   = errors.New("invalid projection")
	ErrLatitudeOutOfBand   = errors.New("latitude out of UTM band range")
	ErrLongitudeOutOfRange = errors.New("longitude out of range")
	ErrLongitudeOutOfBand  = errors.New("longitude out of PUWG range")
	ErrEastingOutOfBand    = errors.New("easting outside PL2000 strips")
	ErrInvalidZoneNumber   = errors.New("zone out of range")
	ErrInvalidZoneLetter   = errors.New("invalid zone letter")
	ErrZoneOverride        = errors.New("zone override out of range")
	ErrInvalidCoordinate   = errors.New("coordinate is not finite")
	ErrMalformedUTM        = errors.New("malformed UTM coordinate")
)
