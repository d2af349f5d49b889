// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math"
)

const (
	expGuard = 10
	powGuard = 10
	eGuard   = 10

	// maxExtraDigits caps the magnitude estimates used to size working precision.
	maxExtraDigits = 1 << 20
)

// Exp returns e^n with prec digits after the decimal point.
// The series is summed until a term vanishes at the working precision, but the
// number of terms is limited by 50+4*wp, where wp grows with prec and with the magnitude of e^n.
// It fails with ErrOverflow if e^n has more than 1<<20 integer digits.
func (n Number) Exp(prec int) (Number, error) {
	prec = normPrec(prec)
	if n.IsZero() {
		return one.Round(prec), nil
	}
	switch mag := n.Float64() * math.Log10E; {
	case mag > maxExtraDigits:
		return zero, fmt.Errorf("exp(%s): %w", n, ErrOverflow)
	case underflows(mag, prec):
		return zero, nil
	}
	if n.neg {
		// e^-x = 1 / e^x
		wp := prec + expGuard
		return one.quo(n.Abs().exp(wp), wp).Round(prec), nil
	}
	return n.exp(prec + expGuard).Round(prec), nil
}

// underflows returns true if a value of decimal magnitude mag rounds to zero at prec digits.
func underflows(mag float64, prec int) bool {
	return mag < -float64(prec+2)
}

// exp evaluates the Maclaurin series of e^n for n >= 0, so that the absolute error
// is about 10^-wp. Each term is the previous one multiplied by n and divided by i.
func (n Number) exp(wp int) Number {
	f := n.Float64()
	// the terms grow up to ~e^n, which costs that many integer digits of accuracy.
	wp += extraDigits(f * math.Log10E)
	res, term := one, one
	for i := 1; i <= maxTerms(wp)+3*extraDigits(f); i++ {
		term = term.Mul(n).quo(FromInt64(int64(i)), wp)
		if term.IsZero() {
			break
		}
		res = res.Add(term)
	}
	return res
}

// extraDigits converts a decimal magnitude estimate into a non-negative digit count.
func extraDigits(e float64) int {
	switch {
	case e <= 0 || math.IsNaN(e):
		return 0
	case e >= maxExtraDigits:
		return maxExtraDigits
	}
	return int(math.Ceil(e)) + 1
}

// Pow returns n^exp.
// Non-negative integer exponents give exact results. Negative integer exponents
// and fractional exponents give results with prec digits after the decimal point.
func (n Number) Pow(exp Number, prec int) (Number, error) {
	prec = normPrec(prec)
	if n.IsZero() {
		switch exp.Sign() {
		case 0:
			return zero, ErrUndefinedZeroPower
		case -1:
			return zero, fmt.Errorf("0^%s: %w", exp, ErrDivisionByZero)
		}
		return zero, nil
	}
	// log10(|n^exp|)
	mag := exp.Float64() * log10Abs(n)
	if mag > maxExtraDigits {
		return zero, fmt.Errorf("%s^%s: %w", n, exp, ErrOverflow)
	}
	if exp.IsInteger() {
		e := exp.trunc(0)
		if !e.neg {
			return n.powInt(e), nil
		}
		if underflows(mag, prec) {
			return zero, nil
		}
		wp := prec + powGuard
		return one.quo(n.powInt(e.Abs()), wp).Round(prec), nil
	}
	if n.neg {
		return zero, fmt.Errorf("%s^%s: %w", n, exp, ErrNegativeBaseFractionalExponent)
	}
	if underflows(mag, prec) {
		return zero, nil
	}
	// x^y = e^(y*ln(x)). An error d in ln(x) becomes a relative error y*d of the result.
	wp := prec + powGuard + extraDigits(mag) + extraDigits(log10Abs(exp))
	res, err := exp.Mul(n.ln(wp)).trunc(wp).Exp(prec + powGuard)
	if err != nil {
		return zero, fmt.Errorf("%s^%s: %w", n, exp, err)
	}
	return res.Round(prec), nil
}

// powInt returns n^e for a non-negative integer e by squaring and multiplying.
func (n Number) powInt(e Number) Number {
	res, base := one, n
	for !e.IsZero() {
		if e.mag()[0]%2 == 1 {
			res = res.Mul(base)
		}
		e = e.quo(two, 0)
		if !e.IsZero() {
			base = base.Mul(base)
		}
	}
	return res
}

// Sqrt returns the square root of n with prec digits after the decimal point.
func (n Number) Sqrt(prec int) (Number, error) {
	return n.Pow(half, prec)
}

// Factorial returns n! for a non-negative integer n.
func (n Number) Factorial() (Number, error) {
	if n.neg {
		return zero, fmt.Errorf("%s!: %w", n, ErrNegativeFactorial)
	}
	if !n.IsInteger() {
		return zero, fmt.Errorf("%s!: %w", n, ErrFractionalFactorial)
	}
	limit := n.trunc(0)
	res := one
	for i := two; i.Cmp(limit) <= 0; i = i.Add(one) {
		res = res.Mul(i)
	}
	return res, nil
}

// E returns Euler's number with prec digits after the decimal point,
// summing 1/i! until a term becomes zero, but at most 50+4*(prec+10) terms.
func E(prec int) Number {
	prec = normPrec(prec)
	wp := prec + eGuard
	res, term := one, one
	for i := 1; i <= maxTerms(wp); i++ {
		term = term.quo(FromInt64(int64(i)), wp)
		if term.IsZero() {
			break
		}
		res = res.Add(term)
	}
	return res.Round(prec)
}
