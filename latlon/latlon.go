// Package latlon handles geographic locations: parsing and formatting them
// as latitude/longitude or UTM and computing geodesics between them.
package latlon

import (
	"math"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/a-bouts/geo-tools/angle"
)

// R is the mean earth radius used by the spherical model.
const R = 6371e3

const locationGrammar = "latitude,longitude"

// Model computes geodesics between locations.
type Model interface {
	DistanceTo(from, to LatLon) float64
	InitialBearingTo(from, to LatLon) angle.Angle
	FinalBearingTo(from, to LatLon) angle.Angle
	Destination(from LatLon, distance float64, bearing angle.Angle) LatLon
	Midpoint(a, b LatLon) LatLon
}

// LatLon is a geographic location. Latitude is within [-90°, 90°] and
// longitude within [-180°, 180°].
type LatLon struct {
	ll s2.LatLng
}

// New validates lat and normalises lon.
func New(lat, lon angle.Angle) (LatLon, error) {
	for _, a := range []angle.Angle{lat, lon} {
		if math.IsNaN(a.Radians()) || math.IsInf(a.Radians(), 0) {
			return LatLon{}, &angle.RangeError{What: "angle", Value: a.Degrees(), Limit: math.MaxFloat64}
		}
	}
	if math.Abs(lat.Degrees()) > 90 {
		return LatLon{}, &angle.RangeError{What: "latitude", Value: lat.Degrees(), Limit: 90}
	}
	return fromRadians(lat.Radians(), lon.Radians()), nil
}

// FromDegrees is New for plain degree values.
func FromDegrees(lat, lon float64) (LatLon, error) {
	return New(angle.FromDegrees(lat), angle.FromDegrees(lon))
}

// fromRadians builds a location from a latitude known to be valid.
func fromRadians(φ, λ float64) LatLon {
	lon := angle.FromRadians(λ).Wrap180()
	return LatLon{ll: s2.LatLng{Lat: s1.Angle(φ), Lng: s1.Angle(lon)}}
}

// Lat returns the latitude.
func (p LatLon) Lat() angle.Angle {
	return angle.Angle(p.ll.Lat)
}

// Lon returns the longitude.
func (p LatLon) Lon() angle.Angle {
	return angle.Angle(p.ll.Lng)
}

// Parse reads "latitude,longitude" with both angles written in measure m.
func Parse(text string, m angle.Measure) (LatLon, error) {
	i := strings.Index(text, ",")
	if i < 0 {
		return LatLon{}, &angle.ParseError{Input: text, Token: text, Expected: locationGrammar}
	}
	lat, err := angle.Parse(text[:i], m)
	if err != nil {
		return LatLon{}, err
	}
	lon, err := angle.Parse(text[i+1:], m)
	if err != nil {
		return LatLon{}, err
	}
	return New(lat, lon)
}

// Format renders "latitude,longitude" with both angles in form f.
func (p LatLon) Format(f angle.Form) string {
	return p.Lat().Format(f) + "," + p.Lon().Format(f)
}

func (p LatLon) String() string {
	return p.Format(angle.Degrees)
}

// The geodesic methods below use the spherical model.

// DistanceTo returns the great-circle distance to q in meters.
func (p LatLon) DistanceTo(q LatLon) float64 {
	return Spherical{}.DistanceTo(p, q)
}

// InitialBearingTo returns the bearing at p towards q, in [0°, 360°).
func (p LatLon) InitialBearingTo(q LatLon) angle.Angle {
	return Spherical{}.InitialBearingTo(p, q)
}

// FinalBearingTo returns the bearing on arrival at q.
func (p LatLon) FinalBearingTo(q LatLon) angle.Angle {
	return Spherical{}.FinalBearingTo(p, q)
}

// Destination travels distance meters from p along the initial bearing.
func (p LatLon) Destination(distance float64, bearing angle.Angle) LatLon {
	return Spherical{}.Destination(p, distance, bearing)
}

// Midpoint returns the point halfway along the great circle from a to b.
func Midpoint(a, b LatLon) LatLon {
	return Spherical{}.Midpoint(a, b)
}

// TrackLength sums the distances between consecutive points; closed adds the
// leg from the last point back to the first.
func TrackLength(points []LatLon, closed bool) float64 {
	return TrackLengthOn(Spherical{}, points, closed)
}

// TrackLengthOn is TrackLength computed with model m.
func TrackLengthOn(m Model, points []LatLon, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += m.DistanceTo(points[i-1], points[i])
	}
	if closed {
		d += m.DistanceTo(points[len(points)-1], points[0])
	}
	return d
}

// finalBearing is the reverse initial bearing turned around.
func finalBearing(m Model, from, to LatLon) angle.Angle {
	b := m.InitialBearingTo(to, from)
	return angle.FromDegrees(b.Degrees() + 180).Wrap360()
}
