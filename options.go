package gosolve

// SolveOptions carries the numeric tunables engines consult at solve
// time. NewSolveOptions with no Option reproduces the engines' defaults
// (listed on NewSolveOptions); a zero SolveOptions{} holds zeros instead.
type SolveOptions struct {
	bruteForceTolerance   float64
	phaseIResidualEpsilon float64
	iterationCapFactor    int
}

// Option configures a SolveOptions.
type Option func(*SolveOptions)

// NewSolveOptions builds a SolveOptions from the given Options, applied
// in order over the defaults: bruteForceTolerance = f32 epsilon cast to
// float64, phaseIResidualEpsilon = 1e-6, iterationCapFactor = 1 (the
// cap is iterationCapFactor * width * height).
func NewSolveOptions(opts ...Option) SolveOptions {
	o := SolveOptions{
		bruteForceTolerance:   1.1920929e-07,
		phaseIResidualEpsilon: 1e-6,
		iterationCapFactor:    1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBruteForceTolerance overrides the epsilon brute force uses when
// testing constraint feasibility. Panics if tol is negative.
func WithBruteForceTolerance(tol float64) Option {
	if tol < 0 {
		panic("gosolve: brute force tolerance must be non-negative")
	}
	return func(o *SolveOptions) { o.bruteForceTolerance = tol }
}

// WithPhaseIResidualEpsilon overrides the threshold Simplex's Phase I
// uses to decide the problem is infeasible. Panics if eps is negative.
func WithPhaseIResidualEpsilon(eps float64) Option {
	if eps < 0 {
		panic("gosolve: phase I residual epsilon must be non-negative")
	}
	return func(o *SolveOptions) { o.phaseIResidualEpsilon = eps }
}

// WithIterationCapFactor scales Simplex's iteration safety valve, a
// multiple of width*height. Panics if factor is not positive.
func WithIterationCapFactor(factor int) Option {
	if factor <= 0 {
		panic("gosolve: iteration cap factor must be positive")
	}
	return func(o *SolveOptions) { o.iterationCapFactor = factor }
}
