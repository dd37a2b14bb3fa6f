// Package angle parses, converts and formats single angular quantities.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// Measure is the unit an angle is written in.
type Measure int

const (
	Degree Measure = iota
	Radian
)

// Form selects the textual rendering of an angle.
type Form int

const (
	Degrees Form = iota
	Minutes
	Seconds
	Radians
)

// Angle is an angular magnitude kept in radians. No range is enforced.
type Angle s1.Angle

// FromDegrees builds an angle from degrees.
func FromDegrees(d float64) Angle {
	return Angle(s1.Angle(d) * s1.Degree)
}

// FromRadians builds an angle from radians.
func FromRadians(r float64) Angle {
	return Angle(r)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return s1.Angle(a).Degrees()
}

// Wrap360 maps the angle into [0°, 360°).
func (a Angle) Wrap360() Angle {
	d := math.Mod(a.Degrees(), 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return FromDegrees(d)
}

// Wrap180 maps the angle into [-180°, 180°].
func (a Angle) Wrap180() Angle {
	d := a.Degrees()
	if -180 <= d && d <= 180 {
		return a
	}
	return FromDegrees(math.Mod(math.Mod(d+180, 360)+360, 360) - 180)
}

func (a Angle) String() string {
	return a.Format(Degrees)
}

// Parse reads text written in the measure m.
//
// Degree text is one of D.DDDD, D:MM.MMMM or D:MM:SS.SSSS with an optional
// leading sign. Radian text is R.RRRR with an optional leading sign.
func Parse(text string, m Measure) (Angle, error) {
	s := strings.TrimSpace(text)
	neg := false
	body := s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		neg = body[0] == '-'
		body = body[1:]
	}

	var v float64
	switch m {
	case Radian:
		r, err := parseUnsigned(body)
		if err != nil {
			return 0, &ParseError{Input: text, Token: s, Expected: radianGrammar}
		}
		v = r
	case Degree:
		d, err := parseDegrees(text, body)
		if err != nil {
			return 0, err
		}
		v = d
	default:
		return 0, fmt.Errorf("unknown angular measure %d", m)
	}

	if neg {
		v = -v
	}
	if m == Radian {
		return FromRadians(v), nil
	}
	return FromDegrees(v), nil
}

const (
	degreeGrammar = "[+-]DDD.DDDDD, [+-]DDD:MM.MMMMM or [+-]DDD:MM:SS.SSSSS"
	radianGrammar = "[+-]RRR.RRRRR"
)

func parseDegrees(input, body string) (float64, error) {
	parts := strings.Split(body, ":")
	if len(parts) > 3 {
		return 0, &ParseError{Input: input, Token: strings.TrimSpace(input), Expected: degreeGrammar}
	}

	bad := func(tok string) error {
		return &ParseError{Input: input, Token: tok, Expected: degreeGrammar}
	}

	deg, err := parseUnsigned(parts[0])
	if err != nil {
		return 0, bad(parts[0])
	}
	if len(parts) == 1 {
		return deg, nil
	}
	if !isWhole(parts[0]) {
		return 0, bad(parts[0])
	}

	mins, err := parseUnsigned(parts[1])
	if err != nil || mins >= 60 {
		return 0, bad(parts[1])
	}
	if len(parts) == 2 {
		return deg + mins/60, nil
	}
	if !isWhole(parts[1]) {
		return 0, bad(parts[1])
	}

	sec, err := parseUnsigned(parts[2])
	if err != nil || sec >= 60 {
		return 0, bad(parts[2])
	}
	return deg + mins/60 + sec/3600, nil
}

var errNotNumeric = errors.New("not a plain decimal number")

// parseUnsigned accepts digits with at most one decimal point and nothing
// else, so signs, exponents, inf and nan never get through.
func parseUnsigned(tok string) (float64, error) {
	digits, dots := 0, 0
	for _, c := range tok {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return 0, errNotNumeric
		}
	}
	if digits == 0 || dots > 1 {
		return 0, errNotNumeric
	}
	return strconv.ParseFloat(tok, 64)
}

func isWhole(tok string) bool {
	return !strings.Contains(tok, ".")
}

// Format renders the angle in form f. The sign is carried by the degree
// component only.
func (a Angle) Format(f Form) string {
	switch f {
	case Radians:
		return strconv.FormatFloat(a.Radians(), 'f', -1, 64)
	case Minutes:
		return formatSexagesimal(a.Degrees(), 1)
	case Seconds:
		return formatSexagesimal(a.Degrees(), 2)
	default:
		s := fmt.Sprintf("%.5f", a.Degrees())
		if s == "-0.00000" {
			return s[1:]
		}
		return s
	}
}

const fractionScale = 100000

// formatSexagesimal prints deg with the given number of sexagesimal
// sub-units (1: minutes, 2: minutes and seconds). The fraction of a degree
// is rounded once on the last printed unit so carries reach the degree
// field; whole degrees stay in floating point.
func formatSexagesimal(deg float64, depth int) string {
	unitsPerDegree := int64(60)
	if depth == 2 {
		unitsPerDegree = 3600
	}
	perDegree := unitsPerDegree * fractionScale

	whole, frac := math.Modf(math.Abs(deg))
	rem := int64(math.Round(frac * float64(perDegree)))
	if rem >= perDegree {
		whole++
		rem -= perDegree
	}

	sign := ""
	if deg < 0 && (whole != 0 || rem != 0) {
		sign = "-"
	}

	if depth == 1 {
		return fmt.Sprintf("%s%.0f:%02d.%05d", sign, whole, rem/fractionScale, rem%fractionScale)
	}
	perMinute := int64(60 * fractionScale)
	m := rem / perMinute
	sec := rem % perMinute
	return fmt.Sprintf("%s%.0f:%02d:%02d.%05d", sign, whole, m, sec/fractionScale, sec%fractionScale)
}

// ParseMeasure maps a measure name as used on the command line.
func ParseMeasure(name string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "degree", "degrees", "deg":
		return Degree, nil
	case "radian", "radians", "rad":
		return Radian, nil
	}
	return 0, fmt.Errorf("invalid angular measure %q (want degree or radian)", name)
}

// ParseForm maps an output form name as used on the command line.
func ParseForm(name string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "degrees":
		return Degrees, nil
	case "minutes":
		return Minutes, nil
	case "seconds":
		return Seconds, nil
	case "radians":
		return Radians, nil
	}
	return 0, fmt.Errorf("invalid output form %q (want degrees, minutes, seconds or radians)", name)
}
