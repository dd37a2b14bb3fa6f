package angle

import "fmt"

// ParseError reports text that does not follow an accepted angle or
// location grammar.
type ParseError struct {
	Input    string
	Token    string
	Expected string
}

func (e *ParseError) Error() string {
	if e.Token == e.Input || e.Token == "" {
		return fmt.Sprintf("unable to parse %q, expected %s", e.Input, e.Expected)
	}
	return fmt.Sprintf("unable to parse %q: invalid token %q, expected %s", e.Input, e.Token, e.Expected)
}

// RangeError reports a well formed value outside its valid domain.
type RangeError struct {
	What  string
	Value float64
	Limit float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [-%g, %g]", e.What, e.Value, e.Limit, e.Limit)
}
