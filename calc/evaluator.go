// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package calc evaluates arithmetic expressions over bignum numbers.
//
// The grammar, from the lowest precedence to the highest:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = primary { "^" factor | "!" }
//	primary    = number | "pi" | "e" | "(" expression ")" | func "(" expression ")"
//
// Unary operators are not supported.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/patrickmn/go-cache"

	"github.com/avdva/bignum"
)

const (
	// DefaultPrecision is the precision of evaluators created with a zero Config.
	DefaultPrecision = 50
)

var (
	// ErrUnmatchedParen is returned for a missing opening or closing parenthesis.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")
	// ErrUnknownIdentifier is returned for unknown function or constant names.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrUnexpectedEnd is returned when an expression ends while an operand is expected.
	ErrUnexpectedEnd = errors.New("unexpected end of expression")
	// ErrUnexpectedToken is returned for a token not allowed by the grammar at its position.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Config holds evaluator settings.
type Config struct {
	// Precision is the number of digits after the decimal point for inexact operations.
	// Zero value means DefaultPrecision, negative values mean 0.
	Precision int
	// DisableCache turns off memoization of sub-expressions.
	DisableCache bool
}

// Evaluator computes expressions with a fixed precision.
// Results of the whole expression, parenthesized groups, function calls and constants
// are memoized by their token text and the precision.
// An Evaluator must not be used concurrently.
type Evaluator struct {
	precision int
	memo      *cache.Cache
}

// New returns a new evaluator.
func New(cfg Config) *Evaluator {
	e := &Evaluator{precision: DefaultPrecision}
	if cfg.Precision != 0 {
		e.precision = normPrecision(cfg.Precision)
	}
	if !cfg.DisableCache {
		e.memo = cache.New(cache.NoExpiration, 0)
	}
	return e
}

// Precision returns current precision.
func (e *Evaluator) Precision() int {
	return e.precision
}

// SetPrecision changes the precision. All memoized results are dropped, if it differs from the current one.
func (e *Evaluator) SetPrecision(prec int) {
	prec = normPrecision(prec)
	if prec == e.precision {
		return
	}
	e.precision = prec
	e.ClearCache()
}

// ClearCache drops all memoized results.
func (e *Evaluator) ClearCache() {
	if e.memo != nil {
		e.memo.Flush()
	}
}

// CacheLen returns the number of memoized results.
func (e *Evaluator) CacheLen() int {
	if e.memo == nil {
		return 0
	}
	return e.memo.ItemCount()
}

// Evaluate computes the value of expr.
func (e *Evaluator) Evaluate(expr string) (bignum.Number, error) {
	glog.V(1).Infof("evaluating %q with precision %d", expr, e.precision)
	p := &parser{e: e, tokens: Tokenize(expr)}
	res, err := p.parse()
	if err != nil {
		glog.V(1).Infof("evaluation of %q failed: %v", expr, err)
		return bignum.Number{}, err
	}
	glog.V(1).Infof("result of %q: %s", expr, res)
	return res, nil
}

func (e *Evaluator) key(tokens []string) string {
	return strconv.Itoa(e.precision) + ":" + strings.Join(tokens, " ")
}

func (e *Evaluator) lookup(tokens []string) (bignum.Number, bool) {
	if e.memo == nil {
		return bignum.Number{}, false
	}
	key := e.key(tokens)
	if v, found := e.memo.Get(key); found {
		glog.V(2).Infof("cache hit for %q", key)
		return v.(bignum.Number), true
	}
	return bignum.Number{}, false
}

func (e *Evaluator) store(tokens []string, n bignum.Number) {
	if e.memo == nil {
		return
	}
	key := e.key(tokens)
	e.memo.Set(key, n, cache.NoExpiration)
	glog.V(2).Infof("cached result for %q", key)
}

func normPrecision(prec int) int {
	if prec < 0 {
		return 0
	}
	return prec
}

// parser is a recursive descent parser, which computes the value while parsing.
type parser struct {
	e      *Evaluator
	tokens []string
	pos    int
}

func (p *parser) parse() (bignum.Number, error) {
	if len(p.tokens) == 0 {
		return bignum.Number{}, ErrUnexpectedEnd
	}
	if res, found := p.e.lookup(p.tokens); found {
		return res, nil
	}
	res, err := p.expression()
	if err != nil {
		return bignum.Number{}, err
	}
	if p.pos < len(p.tokens) {
		if p.tokens[p.pos] == ")" {
			return bignum.Number{}, p.errorf(ErrUnmatchedParen)
		}
		return bignum.Number{}, p.errorf(ErrUnexpectedToken)
	}
	p.e.store(p.tokens, res)
	return res, nil
}

func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *parser) errorf(err error) error {
	if p.pos >= len(p.tokens) {
		return ErrUnexpectedEnd
	}
	return fmt.Errorf("%w %q at pos %d", err, p.tokens[p.pos], p.pos+1)
}

func (p *parser) expression() (bignum.Number, error) {
	res, err := p.term()
	if err != nil {
		return res, err
	}
	for {
		switch p.peek() {
		case "+":
			p.pos++
			right, err := p.term()
			if err != nil {
				return res, err
			}
			res = res.Add(right)
		case "-":
			p.pos++
			right, err := p.term()
			if err != nil {
				return res, err
			}
			res = res.Sub(right)
		default:
			return res, nil
		}
	}
}

func (p *parser) term() (bignum.Number, error) {
	res, err := p.factor()
	if err != nil {
		return res, err
	}
	for {
		switch p.peek() {
		case "*":
			p.pos++
			right, err := p.factor()
			if err != nil {
				return res, err
			}
			res = res.Mul(right)
		case "/":
			p.pos++
			right, err := p.factor()
			if err != nil {
				return res, err
			}
			if res, err = res.Div(right, p.e.precision); err != nil {
				return res, err
			}
		default:
			return res, nil
		}
	}
}

func (p *parser) factor() (bignum.Number, error) {
	res, err := p.primary()
	if err != nil {
		return res, err
	}
	for {
		switch p.peek() {
		case "^":
			p.pos++
			exp, err := p.factor()
			if err != nil {
				return res, err
			}
			if res, err = res.Pow(exp, p.e.precision); err != nil {
				return res, err
			}
		case "!":
			p.pos++
			if res, err = res.Factorial(); err != nil {
				return res, err
			}
		default:
			return res, nil
		}
	}
}

func (p *parser) primary() (bignum.Number, error) {
	if p.pos >= len(p.tokens) {
		return bignum.Number{}, ErrUnexpectedEnd
	}
	token := p.tokens[p.pos]
	switch {
	case token == "(":
		return p.group(p.pos, nil)
	case token == ")":
		return bignum.Number{}, p.errorf(ErrUnmatchedParen)
	case isOperator(token):
		return bignum.Number{}, p.errorf(ErrUnexpectedToken)
	case isIdentifier(token):
		return p.identifier()
	}
	p.pos++
	return bignum.FromString(token)
}

func (p *parser) identifier() (bignum.Number, error) {
	start, name := p.pos, p.tokens[p.pos]
	if f, ok := LookupFunc(name); ok {
		p.pos++
		if p.peek() != "(" {
			return bignum.Number{}, p.errorf(ErrUnexpectedToken)
		}
		return p.group(start, &f)
	}
	if res, found := p.e.lookup(p.tokens[start : start+1]); found {
		p.pos++
		return res, nil
	}
	res, ok := constant(name, p.e.precision)
	if !ok {
		return bignum.Number{}, p.errorf(ErrUnknownIdentifier)
	}
	p.e.store(p.tokens[start:start+1], res)
	p.pos++
	return res, nil
}

// group evaluates a parenthesized expression at p.pos, applying f to it, if f is not nil.
// The result is memoized by the tokens from start to the closing parenthesis.
func (p *parser) group(start int, f *Func) (bignum.Number, error) {
	end := p.closing(p.pos)
	if end < 0 {
		return bignum.Number{}, p.errorf(ErrUnmatchedParen)
	}
	text := p.tokens[start : end+1]
	if res, found := p.e.lookup(text); found {
		p.pos = end + 1
		return res, nil
	}
	p.pos++
	res, err := p.expression()
	if err != nil {
		return res, err
	}
	if p.pos != end {
		return bignum.Number{}, p.errorf(ErrUnexpectedToken)
	}
	p.pos++
	if f != nil {
		if res, err = f.Apply(res, p.e.precision); err != nil {
			return res, err
		}
	}
	p.e.store(text, res)
	return res, nil
}

// closing returns the index of the parenthesis matching the one at open, or -1.
func (p *parser) closing(open int) int {
	depth := 0
	for i := open; i < len(p.tokens); i++ {
		switch p.tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
