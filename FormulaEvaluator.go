package main

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gridsheet/contracts"
)

const FormulaPrefix = "="

// Aggregate names are matched case-insensitively (the body is upper-cased
// before substitution). SUMA and PROMEDIO are the aliases the original
// sheets used; SUMA must come before SUM in the alternation.
var aggregateCallPattern = regexp.MustCompile(`\b(SUMA|SUM|PROMEDIO|AVERAGE|AVG)\(([^()]*)\)`)

var referencePattern = regexp.MustCompile(`\b[A-Z]+[0-9]+\b`)

// FormulaEvaluator turns raw cell content into display results. It is
// stateless: everything an evaluation needs arrives through the getters,
// and all intermediate state lives in the per-call pass, so concurrent
// top-level calls never share anything.
type FormulaEvaluator struct{}

func NewFormulaEvaluator() *FormulaEvaluator {
	return &FormulaEvaluator{}
}

func (e *FormulaEvaluator) IsFormula(content string) bool {
	return strings.HasPrefix(content, FormulaPrefix)
}

func (e *FormulaEvaluator) Evaluate(getRaw contracts.RawContentGetter, getFormat contracts.FormatGetter, address contracts.Address) contracts.Result {
	pass := newEvaluationPass(getRaw)
	return e.toResult(e.resolve(pass, address, nil), address, getFormat)
}

func (e *FormulaEvaluator) EvaluateSheet(getRaw contracts.RawContentGetter, getFormat contracts.FormatGetter, addresses []contracts.Address) map[contracts.Address]contracts.Result {
	pass := newEvaluationPass(getRaw)

	results := make(map[contracts.Address]contracts.Result, len(addresses))
	for _, address := range addresses {
		results[address] = e.toResult(e.resolve(pass, address, nil), address, getFormat)
	}

	return results
}

// References lists every address the raw content reads, with aggregate
// range arguments expanded to their member cells.
func (e *FormulaEvaluator) References(rawContent string) []contracts.Address {
	if !e.IsFormula(rawContent) {
		return nil
	}

	body := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(rawContent, FormulaPrefix)))

	seen := map[contracts.Address]bool{}
	references := make([]contracts.Address, 0)
	add := func(address contracts.Address) {
		if !seen[address] {
			seen[address] = true
			references = append(references, address)
		}
	}

	remainder := aggregateCallPattern.ReplaceAllStringFunc(body, func(call string) string {
		match := aggregateCallPattern.FindStringSubmatch(call)
		for _, member := range ResolveRange(strings.TrimSpace(match[2])) {
			add(member)
		}
		return "0"
	})

	for _, token := range referencePattern.FindAllString(remainder, -1) {
		add(contracts.Address(token))
	}

	return references
}

// cellValue is the engine-internal resolution of one cell, before any
// display formatting.
type cellValue struct {
	kind        contracts.ResultKind
	text        string // raw content, for literal cells
	number      float64
	numeric     bool
	fromFormula bool
}

func (v cellValue) isError() bool {
	return v.kind != contracts.ResultValue
}

// evaluationPass is the state of one top-level call: the content source
// and a memo of completed values. Error values are never memoized —
// Circular depends on the path that reached it.
type evaluationPass struct {
	getRaw contracts.RawContentGetter
	memo   map[contracts.Address]cellValue
}

func newEvaluationPass(getRaw contracts.RawContentGetter) *evaluationPass {
	return &evaluationPass{
		getRaw: getRaw,
		memo:   map[contracts.Address]cellValue{},
	}
}

// resolve walks one cell. path holds the addresses currently being
// resolved above this one; re-entering any of them is a circular
// reference and terminates the branch.
func (e *FormulaEvaluator) resolve(pass *evaluationPass, address contracts.Address, path []contracts.Address) cellValue {
	for _, resolving := range path {
		if resolving == address {
			return cellValue{kind: contracts.ResultCircular}
		}
	}

	if cached, ok := pass.memo[address]; ok {
		return cached
	}

	raw := ""
	if pass.getRaw != nil {
		raw = pass.getRaw(address)
	}

	if !e.IsFormula(raw) {
		value := literalValue(raw)
		pass.memo[address] = value
		return value
	}

	extended := make([]contracts.Address, len(path)+1)
	copy(extended, path)
	extended[len(path)] = address

	value := e.evaluateFormula(pass, strings.TrimPrefix(raw, FormulaPrefix), extended)
	if !value.isError() {
		pass.memo[address] = value
	}

	return value
}

func (e *FormulaEvaluator) evaluateFormula(pass *evaluationPass, body string, path []contracts.Address) cellValue {
	body = strings.ToUpper(strings.TrimSpace(body))

	substituted := e.substituteAggregates(pass, body, path)
	substituted, circular := e.substituteReferences(pass, substituted, path)
	if circular {
		return cellValue{kind: contracts.ResultCircular}
	}

	result, err := EvaluateArithmetic(substituted)
	if err != nil {
		return cellValue{kind: contracts.ResultInvalidFormula}
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return cellValue{kind: contracts.ResultMathError}
	}

	return cellValue{
		kind:        contracts.ResultValue,
		text:        formatLiteral(result),
		number:      result,
		numeric:     true,
		fromFormula: true,
	}
}

// substituteAggregates is the function pass: every SUM/AVERAGE call is
// replaced in place by its numeric literal. Non-numeric and error-valued
// members are excluded from the aggregate, not coerced; an empty
// inclusion set substitutes 0 for both functions.
func (e *FormulaEvaluator) substituteAggregates(pass *evaluationPass, body string, path []contracts.Address) string {
	return aggregateCallPattern.ReplaceAllStringFunc(body, func(call string) string {
		match := aggregateCallPattern.FindStringSubmatch(call)
		name := match[1]

		included := make([]float64, 0)
		for _, member := range ResolveRange(strings.TrimSpace(match[2])) {
			value := e.resolve(pass, member, path)
			if !value.isError() && value.numeric {
				included = append(included, value.number)
			}
		}

		total := 0.0
		for _, value := range included {
			total += value
		}
		if isAverageName(name) && len(included) > 0 {
			total /= float64(len(included))
		}

		return formatLiteral(total)
	})
}

// substituteReferences is the reference pass over the now function-free
// expression. A circular reference propagates and fails the whole
// formula; any other non-numeric outcome substitutes 0. The zero
// coercion knowingly masks upstream errors (a reference to a MathError
// cell contributes 0 instead of failing) — kept as observed behavior.
func isAverageName(name string) bool {
	switch name {
	case "PROMEDIO", "AVERAGE", "AVG":
		return true
	}
	return false
}

func (e *FormulaEvaluator) substituteReferences(pass *evaluationPass, expression string, path []contracts.Address) (string, bool) {
	circular := false

	substituted := referencePattern.ReplaceAllStringFunc(expression, func(token string) string {
		value := e.resolve(pass, contracts.Address(token), path)
		if value.kind == contracts.ResultCircular {
			circular = true
			return "0"
		}
		if !value.isError() && value.numeric {
			return formatLiteral(value.number)
		}
		return "0"
	})

	return substituted, circular
}

func (e *FormulaEvaluator) toResult(value cellValue, address contracts.Address, getFormat contracts.FormatGetter) contracts.Result {
	if value.isError() {
		return contracts.Result{Kind: value.kind}
	}

	if value.fromFormula {
		tag := contracts.FormatGeneral
		if getFormat != nil {
			tag = getFormat(address)
		}
		return contracts.Result{Kind: contracts.ResultValue, Text: FormatNumber(value.number, tag)}
	}

	// non-formula content is its own calculated value, format untouched
	return contracts.Result{Kind: contracts.ResultValue, Text: value.text}
}

func literalValue(raw string) cellValue {
	value := cellValue{kind: contracts.ResultValue, text: raw}

	number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && !math.IsInf(number, 0) && !math.IsNaN(number) {
		value.number = number
		value.numeric = true
	}

	return value
}

func formatLiteral(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
