package latlon

import (
	"fmt"
	"strings"

	"github.com/a-bouts/geo-tools/angle"
)

// System is the coordinate system locations are written in.
type System int

const (
	LatitudeLongitude System = iota
	UTMWGS84
)

func (s System) String() string {
	if s == UTMWGS84 {
		return "UTM-WGS84"
	}
	return "latitude&longitude"
}

func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latitude&longitude", "latitude&longitue", "latlong", "latlon":
		return LatitudeLongitude, nil
	case "utm-wgs84", "utm":
		return UTMWGS84, nil
	}
	return 0, fmt.Errorf("invalid geographic coordinate system %q (want latitude&longitude or UTM-WGS84)", name)
}

func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spherical", "sphere", "haversine":
		return Spherical{}, nil
	case "ellipsoidal", "ellipsoid", "wgs84":
		return Ellipsoidal{}, nil
	}
	return nil, fmt.Errorf("invalid geodesy model %q (want spherical or ellipsoidal)", name)
}

// Config carries the input and output choices for a conversion.
type Config struct {
	InputMeasure angle.Measure
	OutputForm   angle.Form
	InputSystem  System
	OutputSystem System
	// Model defaults to Spherical when nil.
	Model Model
}

func (c Config) Geodesy() Model {
	if c.Model == nil {
		return Spherical{}
	}
	return c.Model
}

func (c Config) ParseAngle(text string) (angle.Angle, error) {
	return angle.Parse(text, c.InputMeasure)
}

func (c Config) FormatAngle(a angle.Angle) string {
	return a.Format(c.OutputForm)
}

func (c Config) ParseLocation(text string) (LatLon, error) {
	if c.InputSystem == UTMWGS84 {
		return ParseUTM(text)
	}
	return Parse(text, c.InputMeasure)
}

func (c Config) FormatLocation(p LatLon) (string, error) {
	if c.OutputSystem == UTMWGS84 {
		return p.UTMString()
	}
	return p.Format(c.OutputForm), nil
}
