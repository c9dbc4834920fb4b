package kernel

import (
	"errors"
	"fmt"
	"math"

	"jobmatch/internal/pkg/errs"
	"jobmatch/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in decimal degrees.
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// AverageTravelSpeedKmh is the assumed average urban travel speed used
	// to estimate travel time from a road-free great-circle distance.
	AverageTravelSpeedKmh = 30.0
)

// ErrGeoLocationIsNotConstructed is returned when attempting to use an improperly
// initialized GeoLocation. GeoLocations must be created via the NewGeoLocation
// constructor to guarantee their coordinates are present and within bounds.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation constructor")

// GeoLocation represents a geographic point with validated coordinates.
// GeoLocation is an immutable value object; the zero value is invalid and fails
// validation, which lets callers distinguish "location unknown" from a real point
// (including the real point at 0,0).
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(51.5074, -0.1278)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: GeoLocation(51.507400,-0.127800)
type GeoLocation struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoLocation creates a GeoLocation from decimal-degree coordinates.
// Latitude must lie in [-90, 90] and longitude in [-180, 180]; NaN and
// infinite values are rejected.
//
// Returns:
//   - GeoLocation: a valid location instance
//   - error: validation error if either coordinate is missing or out of bounds
func NewGeoLocation(lat float64, lng float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(lat), loc.setLongitude(lng)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate checks that the GeoLocation was properly constructed.
// The zero value fails this validation with ErrGeoLocationIsNotConstructed.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l GeoLocation) Latitude() float64 {
	return l.lat
}

// Longitude returns the longitude in decimal degrees.
func (l GeoLocation) Longitude() float64 {
	return l.lng
}

// String returns a human-readable representation in the format
// "GeoLocation(lat,lng)". Implements fmt.Stringer.
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%f,%f)", l.lat, l.lng)
}

// IsEqual compares two locations for coordinate equality.
// Both locations must be properly constructed for the comparison to succeed.
func (l GeoLocation) IsEqual(other GeoLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceTo calculates the great-circle distance to another location in
// kilometers using the haversine formula.
//
// The result is symmetric (a.DistanceTo(b) == b.DistanceTo(a)) and zero for
// identical coordinates. Both locations must be properly constructed; an
// unconstructed location yields an error rather than a silent zero distance,
// since a zero would corrupt any ranking built on top of it.
//
// Example:
//
//	home, _ := kernel.NewGeoLocation(51.5074, -0.1278)
//	site, _ := kernel.NewGeoLocation(51.5155, -0.0922)
//	km, err := home.DistanceTo(site)
//	// km ≈ 2.6, err = nil
func (l GeoLocation) DistanceTo(other GeoLocation) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - l.lat)
	dLng := toRadians(other.lng - l.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(l.lat))*math.Cos(toRadians(other.lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// TravelTimeMinutes estimates travel time in minutes for the given distance,
// assuming AverageTravelSpeedKmh. Pure and deterministic.
func TravelTimeMinutes(distanceKm float64) float64 {
	return distanceKm / AverageTravelSpeedKmh * 60
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *GeoLocation) setLatitude(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidError("latitude")
	}

	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	l.lat = lat
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *GeoLocation) setLongitude(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidError("longitude")
	}

	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}

	l.lng = lng
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
