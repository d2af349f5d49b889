// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"github.com/avdva/bignum"
)

// Func is a function callable from expressions as name(arg).
type Func int

// Supported functions.
const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncLn
	FuncLog
	FuncExp
	FuncFactorial
	FuncSqrt
)

var funcNames = [...]string{
	FuncSin:       "sin",
	FuncCos:       "cos",
	FuncTan:       "tan",
	FuncLn:        "ln",
	FuncLog:       "log",
	FuncExp:       "exp",
	FuncFactorial: "factorial",
	FuncSqrt:      "sqrt",
}

// Named constants.
const (
	ConstPi = "pi"
	ConstE  = "e"
)

// LookupFunc returns a function by its name.
func LookupFunc(name string) (Func, bool) {
	for f, n := range funcNames {
		if n == name {
			return Func(f), true
		}
	}
	return 0, false
}

func (f Func) String() string {
	if f < 0 || int(f) >= len(funcNames) {
		return "unknown"
	}
	return funcNames[f]
}

// Apply calls f with x. Results are computed with prec digits after the decimal point.
func (f Func) Apply(x bignum.Number, prec int) (bignum.Number, error) {
	switch f {
	case FuncSin:
		return x.Sin(prec), nil
	case FuncCos:
		return x.Cos(prec), nil
	case FuncTan:
		return x.Tan(prec)
	case FuncLn:
		return x.Ln(prec)
	case FuncLog:
		return x.Log10(prec)
	case FuncExp:
		return x.Exp(prec)
	case FuncFactorial:
		return x.Factorial()
	case FuncSqrt:
		return x.Sqrt(prec)
	}
	return bignum.Number{}, ErrUnknownIdentifier
}

// constant returns the value of a named constant.
func constant(name string, prec int) (bignum.Number, bool) {
	switch name {
	case ConstPi:
		return bignum.Pi(prec), true
	case ConstE:
		return bignum.E(prec), true
	}
	return bignum.Number{}, false
}
