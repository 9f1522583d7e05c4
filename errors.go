package foil

// Error is the error kind returned by airfoil operations. All failures
// surface as a descriptive message of this kind; there are no numeric
// recovery codes.
type Error string

func (e Error) Error() string { return string(e) }

var (
	// ErrThicknessType reports an unrecognized thickness convention.
	ErrThicknessType = Error("foil: do not recognize thickness type")
	// ErrXCut reports a cut location outside the open interval (0, 1).
	ErrXCut = Error("foil: xCut must be between 0 and 1")
	// ErrNoCoords reports an output request with no coordinates available.
	ErrNoCoords = Error("foil: no coordinates to write")

	// ErrCutMiss flags a trailing-edge cut whose projection converged to a
	// curve endpoint instead of a true surface intersection. Operations
	// returning an error wrapping ErrCutMiss have still completed: the
	// geometry was rebuilt with the parameter the projection converged to,
	// and callers must inspect the result.
	ErrCutMiss = Error("foil: trailing edge cut did not intersect surface")
)
