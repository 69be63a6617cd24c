package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var InvalidExpressionError = errors.New("invalid expression")

// EvaluateArithmetic evaluates a fully substituted numeric expression:
// literals, parentheses, unary +/- and the binary operators + - * / ^.
// Precedence is conventional (^ binds tightest, then * /, then + -);
// every level is left-associative except ^, which is right-associative.
//
// This is a deliberately restricted recursive-descent parser. Running
// formulas through a general-purpose expression VM is what it replaces:
// the grammar above is the whole attack surface. Non-finite outcomes
// (division by zero, overflow) are the caller's concern; the parser only
// rejects expressions it cannot parse.
func EvaluateArithmetic(expression string) (float64, error) {
	parser := &arithmeticParser{input: expression}

	value, err := parser.parseSum()
	if err != nil {
		return 0, err
	}

	parser.skipSpaces()
	if parser.pos != len(parser.input) {
		return 0, fmt.Errorf("trailing %q at offset %d: %w", parser.input[parser.pos:], parser.pos, InvalidExpressionError)
	}

	return value, nil
}

type arithmeticParser struct {
	input string
	pos   int
}

func (p *arithmeticParser) parseSum() (float64, error) {
	value, err := p.parseProduct()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			value += right
		case '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			value -= right
		default:
			return value, nil
		}
	}
}

func (p *arithmeticParser) parseProduct() (float64, error) {
	value, err := p.parsePower()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			value *= right
		case '/':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			value /= right
		default:
			return value, nil
		}
	}
}

func (p *arithmeticParser) parsePower() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	if p.peek() == '^' {
		p.pos++
		// right-associative: 2^3^2 is 2^(3^2)
		exponent, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		return math.Pow(value, exponent), nil
	}

	return value, nil
}

func (p *arithmeticParser) parseUnary() (float64, error) {
	negative := false
	for {
		switch p.peek() {
		case '+':
			p.pos++
		case '-':
			negative = !negative
			p.pos++
		default:
			value, err := p.parsePrimary()
			if negative {
				value = -value
			}
			return value, err
		}
	}
}

func (p *arithmeticParser) parsePrimary() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		value, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("unbalanced parenthesis at offset %d: %w", p.pos, InvalidExpressionError)
		}
		p.pos++
		return value, nil
	}

	return p.parseNumber()
}

func (p *arithmeticParser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos

	// peekRaw, not peek: whitespace ends a number token, and peek would
	// move pos past it, pulling the spaces into the sliced token below.
	p.consumeDigits()
	if p.peekRaw() == '.' {
		p.pos++
		p.consumeDigits()
	}
	if p.pos > start && (p.peekRaw() == 'e' || p.peekRaw() == 'E') {
		p.pos++
		if p.peekRaw() == '+' || p.peekRaw() == '-' {
			p.pos++
		}
		p.consumeDigits()
	}

	token := p.input[start:p.pos]
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number at offset %d: %w", start, InvalidExpressionError)
	}

	return value, nil
}

func (p *arithmeticParser) consumeDigits() {
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
}

// peek skips whitespace and returns the next significant byte, 0 at the
// end of input.
func (p *arithmeticParser) peek() byte {
	p.skipSpaces()
	return p.peekRaw()
}

func (p *arithmeticParser) peekRaw() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *arithmeticParser) skipSpaces() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}
