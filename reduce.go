package symbolic

// Outcome is the result of one reduction step. Either the whole subtree
// collapsed to a number, or the node stayed in place, possibly with some of
// its arguments simplified.
type Outcome struct {
	value     float64
	collapsed bool
}

// StayedInPlace is the outcome of a reduction step after which the node is
// still an operator application.
var StayedInPlace = Outcome{}

// Collapsed returns the outcome of a reduction step that replaced a subtree
// with the number v.
func Collapsed(v float64) Outcome {
	return Outcome{value: v, collapsed: true}
}

// Number returns the value the subtree collapsed to, if it did.
func (o Outcome) Number() (float64, bool) {
	return o.value, o.collapsed
}

// String returns "Collapsed{v}" or "StayedInPlace".
func (o Outcome) String() string {
	if !o.collapsed {
		return "StayedInPlace"
	}
	return "Collapsed{" + fmtnum(o.value) + "}"
}

// reduceArgs reduces each argument by one step, then combines the results
// with f if every argument became a number. Operator arguments which collapse
// are replaced in place, so partial folding is visible to the caller even
// when the result is StayedInPlace. Every argument is reduced regardless of
// whether an earlier one stayed in place. f receives the argument values in
// order and must not retain the slice.
func reduceArgs(args []*Expression, f func([]float64) float64) Outcome {
	vals := make([]float64, len(args))
	numeric := true
	for i, a := range args {
		v, ok := a.Reduce().Number()
		if !ok {
			numeric = false
			continue
		}
		vals[i] = v
	}
	if !numeric {
		return StayedInPlace
	}
	return Collapsed(f(vals))
}
