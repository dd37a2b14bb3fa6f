package latlon

import (
	"errors"
	"strings"

	"github.com/a-bouts/geo-tools/angle"
)

const mapsURL = "https://maps.google.de/maps"

// MapsLink builds a Google Maps route through points. Points are always
// written in decimal degrees.
func MapsLink(points []LatLon) (string, error) {
	if len(points) == 0 {
		return "", errors.New("at least one location is required to generate a link")
	}

	var sb strings.Builder
	sb.WriteString(mapsURL)
	sb.WriteString("?saddr=")
	sb.WriteString(points[0].Format(angle.Degrees))
	for i, p := range points[1:] {
		if i == 0 {
			sb.WriteString("&daddr=")
		} else {
			sb.WriteString("+to:")
		}
		sb.WriteString(p.Format(angle.Degrees))
	}
	sb.WriteString("&mra=mi&mrsp=2&sz=16&z=16")
	return sb.String(), nil
}
