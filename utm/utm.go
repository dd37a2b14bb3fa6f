// Package utm converts between WGS84 geodetic coordinates and Universal
// Transverse Mercator grid references.
//
// The projection itself is coordconv's WGS84 converter. This package picks
// the zone and latitude band, validates grid references and renders them.
package utm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

const (
	falseEasting  = 500e3
	falseNorthing = 10000e3

	minLat = -80.0
	maxLat = 84.0
)

// latitude bands from 80°S, 8° each; X covers 72°N to 84°N
const bands = "CDEFGHJKLMNPQRSTUVWXX"

// Zone is a UTM longitude zone with its latitude band letter.
type Zone struct {
	Number int
	Band   byte
}

// North reports whether the zone's band lies in the northern hemisphere.
func (z Zone) North() bool {
	return z.Band >= 'N'
}

func (z Zone) String() string {
	return fmt.Sprintf("%d%c", z.Number, z.Band)
}

// Coord is a grid reference in meters.
type Coord struct {
	Zone     Zone
	Easting  float64
	Northing float64
}

func (c Coord) String() string {
	return fmt.Sprintf("%s %.2f %.2f", c.Zone, c.Easting, c.Northing)
}

// ParseZone reads a zone designator such as "32U".
func ParseZone(s string) (Zone, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if i <= 0 || i != len(s)-1 {
		return Zone{}, &ProjectionError{Reason: fmt.Sprintf("invalid zone %q, expected zone number and latitude band such as 32U", s)}
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n < 1 || n > 60 {
		return Zone{}, &ProjectionError{Reason: fmt.Sprintf("zone number %q out of range 1..60", s[:i])}
	}
	b := s[i]
	if !strings.ContainsRune(bands, rune(b)) {
		return Zone{}, &ProjectionError{Reason: fmt.Sprintf("invalid latitude band %q", string(b))}
	}
	return Zone{Number: n, Band: b}, nil
}

func bandFor(lat float64) byte {
	return bands[int(math.Floor(lat/8+10))]
}

// zoneFor picks the zone of a point including the Norway and Svalbard
// exceptions.
func zoneFor(lat, lon float64) Zone {
	z := Zone{Number: int(math.Floor((lon+180)/6)) + 1, Band: bandFor(lat)}
	if z.Number > 60 {
		z.Number = 1
	}

	switch {
	case z.Number == 31 && z.Band == 'V' && lon >= 3:
		z.Number++
	case z.Band == 'X' && z.Number == 32:
		if lon < 9 {
			z.Number--
		} else {
			z.Number++
		}
	case z.Band == 'X' && z.Number == 34:
		if lon < 21 {
			z.Number--
		} else {
			z.Number++
		}
	case z.Band == 'X' && z.Number == 36:
		if lon < 33 {
			z.Number--
		} else {
			z.Number++
		}
	}
	return z
}

func (z Zone) hemisphere() coordconv.Hemisphere {
	if z.North() {
		return coordconv.HemisphereNorth
	}
	return coordconv.HemisphereSouth
}

// FromLatLon projects a point given in degrees.
func FromLatLon(lat, lon float64) (Coord, error) {
	if lat < minLat || lat > maxLat || math.IsNaN(lat) {
		return Coord{}, &ProjectionError{Reason: fmt.Sprintf("latitude %g outside UTM limits [%g, %g]", lat, minLat, maxLat)}
	}
	if lon < -180 || lon > 180 || math.IsNaN(lon) {
		return Coord{}, &ProjectionError{Reason: fmt.Sprintf("longitude %g outside [-180, 180]", lon)}
	}

	zone := zoneFor(lat, lon)
	uc, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), zone.Number)
	if err != nil {
		return Coord{}, &ProjectionError{Reason: fmt.Sprintf("unable to project (%g, %g): %v", lat, lon, err)}
	}
	return Coord{Zone: zone, Easting: uc.Easting, Northing: uc.Northing}, nil
}

// ToLatLon inverts the projection and returns degrees.
func ToLatLon(c Coord) (float64, float64, error) {
	if c.Zone.Number < 1 || c.Zone.Number > 60 {
		return 0, 0, &ProjectionError{Reason: fmt.Sprintf("zone number %d out of range 1..60", c.Zone.Number)}
	}
	if !strings.ContainsRune(bands, rune(c.Zone.Band)) {
		return 0, 0, &ProjectionError{Reason: fmt.Sprintf("invalid latitude band %q", string(c.Zone.Band))}
	}
	if !(c.Easting > 0 && c.Easting < 2*falseEasting) {
		return 0, 0, &ProjectionError{Reason: fmt.Sprintf("easting %g outside (0, 1000000)", c.Easting)}
	}
	if !(c.Northing >= 0 && c.Northing <= falseNorthing) {
		return 0, 0, &ProjectionError{Reason: fmt.Sprintf("northing %g outside [0, 10000000]", c.Northing)}
	}

	ll, err := coordconv.DefaultUTMConverter.ConvertToGeodetic(coordconv.UTMCoord{
		Zone:       c.Zone.Number,
		Hemisphere: c.Zone.hemisphere(),
		Easting:    c.Easting,
		Northing:   c.Northing,
	})
	if err != nil {
		return 0, 0, &ProjectionError{Reason: fmt.Sprintf("unable to invert %s: %v", c, err)}
	}
	return ll.Lat.Degrees(), ll.Lng.Degrees(), nil
}
