package symbolic

import "strconv"

// ArityError is an error indicating an attempt to construct an operator
// application with the wrong number of arguments.
type ArityError struct {
	// Expected is the number of arguments the operator requires.
	Expected int
	// Actual is the number of arguments that were given.
	Actual int
}

func (err *ArityError) Error() string {
	return "wrong number of arguments to operator: expected " + strconv.Itoa(err.Expected) + ", got " + strconv.Itoa(err.Actual)
}
