package contracts

type ResultKind uint8

const (
	ResultValue ResultKind = iota
	ResultCircular
	ResultMathError
	ResultInvalidFormula
)

// ErrorDisplayPrefix is reserved: legitimate cell content produced by the
// engine never starts with it, so renderers can tell sentinels from values.
const ErrorDisplayPrefix = "ERROR: "

const (
	CircularDisplay       = ErrorDisplayPrefix + "circular reference detected"
	MathErrorDisplay      = ErrorDisplayPrefix + "math error"
	InvalidFormulaDisplay = ErrorDisplayPrefix + "invalid formula"
)

// Result is the outcome of evaluating one cell. Text is only meaningful
// for ResultValue; error kinds render through Display.
type Result struct {
	Kind ResultKind
	Text string
}

func (r Result) IsError() bool {
	return r.Kind != ResultValue
}

func (r Result) Display() string {
	switch r.Kind {
	case ResultCircular:
		return CircularDisplay
	case ResultMathError:
		return MathErrorDisplay
	case ResultInvalidFormula:
		return InvalidFormulaDisplay
	default:
		return r.Text
	}
}
