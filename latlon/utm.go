package latlon

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-bouts/geo-tools/angle"
	"github.com/a-bouts/geo-tools/utm"
)

const utmGrammar = "zone easting northing, e.g. 32U 389000 5819000"

// ParseUTM reads a WGS84 UTM grid reference and converts it to a location.
func ParseUTM(text string) (LatLon, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})
	// "32 U 389000 5819000"
	if len(fields) == 4 && isDigits(fields[0]) {
		fields = append([]string{fields[0] + fields[1]}, fields[2:]...)
	}
	if len(fields) != 3 {
		return LatLon{}, &angle.ParseError{Input: text, Token: text, Expected: utmGrammar}
	}

	zone, err := utm.ParseZone(fields[0])
	if err != nil {
		return LatLon{}, err
	}
	var offsets [2]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return LatLon{}, &angle.ParseError{Input: text, Token: f, Expected: utmGrammar}
		}
		offsets[i] = v
	}

	lat, lon, err := utm.ToLatLon(utm.Coord{Zone: zone, Easting: offsets[0], Northing: offsets[1]})
	if err != nil {
		return LatLon{}, err
	}
	return FromDegrees(lat, lon)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// UTM projects the location onto its UTM zone.
func (p LatLon) UTM() (utm.Coord, error) {
	return utm.FromLatLon(p.Lat().Degrees(), p.Lon().Degrees())
}

// UTMString renders the location as "zone easting northing".
func (p LatLon) UTMString() (string, error) {
	c, err := p.UTM()
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
