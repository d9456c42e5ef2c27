package strnum

// Status is the outcome code every operation reports alongside its value.
// The numeric values are part of the external contract and must not change.
type Status int

const (
	// Success means the operation produced a value.
	Success Status = 0
	// GeneralFailure means the operation could not be carried out, e.g.
	// an intermediate magnitude exceeded the native precision ceiling.
	GeneralFailure Status = 1
	// IllegalNumber means an operand matched none of the supported
	// literal grammars. The result carries the offending literal.
	IllegalNumber Status = 2
	// DivideByZero means the divisor was numerically zero.
	DivideByZero Status = 3
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case IllegalNumber:
		return "illegal number"
	case DivideByZero:
		return "divide by zero"
	default:
		return "general failure"
	}
}

// Result is what every arithmetic entry point returns: a status, the
// computed value on Success, and the offending input on IllegalNumber.
type Result struct {
	Status  Status
	Value   Number
	Literal string
}

func success(n Number) Result {
	return Result{Status: Success, Value: n}
}

func illegal(literal string) Result {
	return Result{Status: IllegalNumber, Literal: literal}
}

func failure(st Status) Result {
	return Result{Status: st}
}

// String renders the value as a literal: scientific notation if the
// operation decided so, plain decimal otherwise. Non-Success results
// render as an empty string.
func (r Result) String() string {
	if r.Status != Success {
		return ""
	}
	if r.Value.sci {
		return formatScientific(r.Value)
	}
	return r.Value.String()
}
