package latlon

import (
	"math"

	"github.com/a-bouts/geo-tools/angle"
)

// Spherical uses great circles on a sphere of radius R. Against WGS84 the
// error stays below about 0.5%.
type Spherical struct{}

func (Spherical) InitialBearingTo(from, to LatLon) angle.Angle {
	φ1 := from.Lat().Radians()
	φ2 := to.Lat().Radians()

	Δλ := to.Lon().Radians() - from.Lon().Radians()
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return angle.FromRadians(θ).Wrap360()
}

func (s Spherical) FinalBearingTo(from, to LatLon) angle.Angle {
	return finalBearing(s, from, to)
}

// DistanceTo is the haversine distance in meters.
func (Spherical) DistanceTo(from, to LatLon) float64 {
	δ := from.ll.Distance(to.ll)
	return R * δ.Radians()
}

func (Spherical) Destination(from LatLon, distance float64, bearing angle.Angle) LatLon {
	φ1 := from.Lat().Radians()
	λ1 := from.Lon().Radians()
	θ := bearing.Radians()

	δ := distance / R

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return fromRadians(φ2, λ2)
}

func (Spherical) Midpoint(a, b LatLon) LatLon {
	φ1 := a.Lat().Radians()
	λ1 := a.Lon().Radians()
	φ2 := b.Lat().Radians()
	Δλ := b.Lon().Radians() - λ1

	bx := math.Cos(φ2) * math.Cos(Δλ)
	by := math.Cos(φ2) * math.Sin(Δλ)

	φm := math.Atan2(math.Sin(φ1)+math.Sin(φ2), math.Sqrt((math.Cos(φ1)+bx)*(math.Cos(φ1)+bx)+by*by))
	λm := λ1 + math.Atan2(by, math.Cos(φ1)+bx)

	return fromRadians(φm, λm)
}
