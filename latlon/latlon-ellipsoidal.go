package latlon

import (
	"github.com/tidwall/geodesic"

	"github.com/a-bouts/geo-tools/angle"
)

// Ellipsoidal solves geodesics on the WGS84 ellipsoid (Karney's method).
type Ellipsoidal struct{}

func (Ellipsoidal) inverse(from, to LatLon) (s12, azi1 float64) {
	geodesic.WGS84.Inverse(from.Lat().Degrees(), from.Lon().Degrees(), to.Lat().Degrees(), to.Lon().Degrees(), &s12, &azi1, nil)
	return s12, azi1
}

func (Ellipsoidal) direct(from LatLon, azi1, s12 float64) LatLon {
	var lat2, lon2 float64
	geodesic.WGS84.Direct(from.Lat().Degrees(), from.Lon().Degrees(), azi1, s12, &lat2, &lon2, nil)
	return fromRadians(angle.FromDegrees(lat2).Radians(), angle.FromDegrees(lon2).Radians())
}

func (e Ellipsoidal) DistanceTo(from, to LatLon) float64 {
	d, _ := e.inverse(from, to)
	return d
}

func (e Ellipsoidal) InitialBearingTo(from, to LatLon) angle.Angle {
	_, azi := e.inverse(from, to)
	return angle.FromDegrees(azi).Wrap360()
}

func (e Ellipsoidal) FinalBearingTo(from, to LatLon) angle.Angle {
	return finalBearing(e, from, to)
}

func (e Ellipsoidal) Destination(from LatLon, distance float64, bearing angle.Angle) LatLon {
	return e.direct(from, bearing.Degrees(), distance)
}

func (e Ellipsoidal) Midpoint(a, b LatLon) LatLon {
	d, azi := e.inverse(a, b)
	return e.direct(a, azi, d/2)
}
