package report

// thrown is the panic value used by Throw.
type thrown struct{}

// Throw unwinds to the nearest Caught. The caller must already have recorded
// the diagnostic that explains the failure.
func Throw() {
	panic(thrown{})
}

// Caught reports whether x, the result of recover(), came from Throw. Any
// other panic value is re-raised.
func Caught(x any) bool {
	if x == nil {
		return false
	}

	if _, ok := x.(thrown); ok {
		return true
	}

	panic(x)
}
