package gosolve

import "github.com/katalvlaran/gosolve/core"

// Re-exported so callers can depend on gosolve alone for the common case,
// without a second import of core for the data model it hands back.
type (
	Problem        = core.Problem
	Solution       = core.Solution
	Variable       = core.Variable
	VariableKind   = core.VariableKind
	Expression     = core.Expression
	Constraint     = core.Constraint
	ConstraintKind = core.ConstraintKind
	Objective      = core.Objective
	ObjectiveKind  = core.ObjectiveKind
	Error          = core.Error
	ErrorKind      = core.ErrorKind
)

const (
	Continuous = core.Continuous
	Integer    = core.Integer
)

const (
	LessThanOrEqualTo    = core.LessThanOrEqualTo
	EqualTo              = core.EqualTo
	GreaterThanOrEqualTo = core.GreaterThanOrEqualTo
)

const (
	Minimize = core.Minimize
	Maximize = core.Maximize
)

const (
	InvalidConstraint = core.InvalidConstraint
	InvalidObjective  = core.InvalidObjective
	Infeasible        = core.Infeasible
	Underspecified    = core.Underspecified
	UnableToSolve     = core.UnableToSolve
	InvalidSolution   = core.InvalidSolution
)

// NewProblem returns an empty Problem, ready for AddVariable/
// AddIntegerVariable/AddConstraint/SetObjective calls.
func NewProblem() *Problem { return core.NewProblem() }

// NewExpression returns an empty Expression; missing indices read as 0.
func NewExpression() Expression { return core.NewExpression() }

// NewError, and the per-kind constructors below it, build the typed
// errors engines return. Tests match on kind alone via errors.Is against
// a zero-message Error of the same Kind.
func NewError(kind ErrorKind, message string) *Error { return core.NewError(kind, message) }

func NewInvalidConstraintError(message string) *Error { return core.InvalidConstraintError(message) }
func NewInvalidObjectiveError(message string) *Error  { return core.InvalidObjectiveError(message) }
func NewInfeasibleError(message string) *Error        { return core.InfeasibleError(message) }
func NewUnderspecifiedError(message string) *Error    { return core.UnderspecifiedError(message) }
func NewUnableToSolveError(message string) *Error     { return core.UnableToSolveError(message) }
func NewInvalidSolutionError(message string) *Error   { return core.InvalidSolutionError(message) }
