package utm

// ProjectionError reports a grid reference or position the projection
// cannot handle.
type ProjectionError struct {
	Reason string
}

func (e *ProjectionError) Error() string {
	return "utm: " + e.Reason
}
