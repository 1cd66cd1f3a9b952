package symbolic

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Reducer reduces expressions to a fixed point, optionally binding variables
// to values first. A Reducer may be used for many expressions, including
// concurrently for distinct trees, but Set must not be called concurrently
// with Run.
type Reducer struct {
	vars map[string]float64
	log  logrus.FieldLogger
}

// ReducerOption is an option used when creating a reducer.
type ReducerOption interface {
	reducerOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	logopt  struct {
		l logrus.FieldLogger
	}
)

func (varopt) reducerOption()  {}
func (varsopt) reducerOption() {}
func (logopt) reducerOption()  {}

// SetVar binds a variable to a value.
func SetVar(name string, val float64) ReducerOption {
	return varopt{name, val}
}

// SetVars binds any number of variables to values.
func SetVars(vars map[string]float64) ReducerOption {
	return varsopt(vars)
}

// Logger sets the logger to which each reduction step is reported at debug
// level. By default, nothing is logged.
func Logger(l logrus.FieldLogger) ReducerOption {
	return logopt{l}
}

// NewReducer creates a new reducer.
func NewReducer(opts ...ReducerOption) *Reducer {
	var r Reducer
	return r.Clone(opts...)
}

// discard is the logger used when none is set.
var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func (r *Reducer) logger() logrus.FieldLogger {
	if r.log == nil {
		return discard
	}
	return r.log
}

// Clone creates a copy of a reducer and applies options to it.
func (r *Reducer) Clone(opts ...ReducerOption) *Reducer {
	n := Reducer{
		vars: make(map[string]float64, len(r.vars)),
		log:  r.log,
	}
	for k, v := range r.vars {
		n.vars[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.vars[k] = v
			}
		case logopt:
			n.log = opt.l
		default:
			panic("symbolic: unknown option type")
		}
	}
	return &n
}

// Set binds a variable to a value. Returns r for chaining.
func (r *Reducer) Set(name string, val float64) *Reducer {
	if r.vars == nil {
		r.vars = make(map[string]float64)
	}
	r.vars[name] = val
	return r
}

// Lookup returns the value bound to a variable, if any.
func (r *Reducer) Lookup(name string) (float64, bool) {
	v, ok := r.vars[name]
	return v, ok
}

// Result describes a completed run of a reducer over an expression.
type Result struct {
	// Outcome is Collapsed with the final value if the expression is now a
	// single number, and otherwise StayedInPlace.
	Outcome Outcome
	// Steps is the number of reduction steps taken.
	Steps int
	// Bound is the number of variable occurrences replaced by bound values.
	Bound int
}

// Run substitutes bound variables in e, then reduces e in place until it
// reaches a fixed point.
func (r *Reducer) Run(e *Expression) Result {
	var res Result
	if len(r.vars) != 0 {
		res.Bound = e.Substitute(r.vars)
	}
	for e.Reducible() {
		n := e.NodeCount()
		o := e.Reduce()
		res.Steps++
		r.logger().WithFields(logrus.Fields{
			"step":    res.Steps,
			"outcome": o.String(),
			"nodes":   n,
			"after":   e.NodeCount(),
		}).Debug("reduced expression")
	}
	res.Outcome = StayedInPlace
	if v, ok := e.Number(); ok {
		res.Outcome = Collapsed(v)
	}
	return res
}
