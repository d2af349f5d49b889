// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
)

const (
	// trigGuard is the number of extra digits used by sin, cos and tan.
	trigGuard = 20
	// tanPoleDigits is the number of guard digits at which a zero cosine makes the tangent undefined.
	tanPoleDigits = trigGuard / 2
)

var (
	// angles above bisectLimit are halved before series evaluation.
	bisectLimit = half
	// below smallAngle short polynomials replace the series, if they are precise enough.
	smallAngle = MustFromString("0.01")
	six        = FromInt64(6)
)

// Sin returns the sine of n radians with prec digits after the decimal point.
func (n Number) Sin(prec int) Number {
	prec = normPrec(prec)
	if n.IsZero() {
		return zero
	}
	s, _ := n.sinCos(prec + trigGuard)
	return s.Round(prec)
}

// Cos returns the cosine of n radians with prec digits after the decimal point.
func (n Number) Cos(prec int) Number {
	prec = normPrec(prec)
	if n.IsZero() {
		return one.Round(prec)
	}
	_, c := n.sinCos(prec + trigGuard)
	return c.Round(prec)
}

// Tan returns the tangent of n radians with prec digits after the decimal point.
// It fails if the cosine of n is zero at prec+10 digits.
func (n Number) Tan(prec int) (Number, error) {
	prec = normPrec(prec)
	if n.IsZero() {
		return zero, nil
	}
	wp := prec + trigGuard
	s, c := n.sinCos(wp)
	// the lowest guard digits of c carry the reduction error.
	if c.trunc(prec + tanPoleDigits).IsZero() {
		return zero, fmt.Errorf("tan(%s): %w", n, ErrTangentUndefined)
	}
	return s.quo(c, wp).Round(prec), nil
}

// sinCos returns sin(n) and cos(n) with about wp correct fractional digits.
func (n Number) sinCos(wp int) (sin, cos Number) {
	// reduction loses as many digits as the integer part of n has.
	rp := wp + len(n.trunc(0).mag())
	piVal := pi(rp)
	twoPi := piVal.Mul(two)

	// x mod 2pi, reflected into [0, 2pi) for negative x.
	a := n.Abs()
	q := a.quo(twoPi, 0)
	r := a.Sub(q.Mul(twoPi))
	if n.neg && !r.IsZero() {
		r = twoPi.Sub(r)
	}

	halfPi := piVal.quo(two, rp)
	quadrant, ref := 1, r
	switch {
	case r.Cmp(halfPi) <= 0:
	case r.Cmp(piVal) <= 0:
		quadrant, ref = 2, piVal.Sub(r)
	case r.Cmp(halfPi.Add(piVal)) <= 0:
		quadrant, ref = 3, r.Sub(piVal)
	default:
		quadrant, ref = 4, twoPi.Sub(r)
	}

	// each doubling may double the error.
	bisections := 0
	for ref.Cmp(bisectLimit) > 0 {
		ref = ref.quo(two, rp)
		bisections++
	}
	sin, cos = smallSinCos(ref.trunc(rp), rp)
	for i := 0; i < bisections; i++ {
		sin, cos = sin.Mul(cos).Mul(two).trunc(rp), cos.Mul(cos).Mul(two).Sub(one).trunc(rp)
	}

	if quadrant >= 3 {
		sin = sin.Negate()
	}
	if quadrant == 2 || quadrant == 3 {
		cos = cos.Negate()
	}
	return sin.trunc(wp), cos.trunc(wp)
}

// smallSinCos evaluates sin(x) and cos(x) for 0 <= x <= 0.5 with Taylor series.
func smallSinCos(x Number, wp int) (sin, cos Number) {
	eps := pow10Neg(wp)
	x2 := x.Mul(x).trunc(wp)
	if x.Cmp(smallAngle) < 0 && x2.Mul(x2).Cmp(eps) <= 0 {
		// sin x = x - x^3/6, cos x = 1 - x^2/2 within x^4.
		return x.Sub(x2.Mul(x).quo(six, wp)), one.Sub(x2.quo(two, wp))
	}
	return sinSeries(x, x2, wp, eps), cosSeries(x2, wp, eps)
}

// sinSeries returns x - x^3/3! + x^5/5! - ...
func sinSeries(x, x2 Number, wp int, eps Number) Number {
	sum, term := x, x
	for i := 1; i <= maxTerms(wp); i++ {
		// term * x^2 / ((2i)(2i+1))
		term = term.Mul(x2).quo(FromInt64(int64(2*i*(2*i+1))), wp).Negate()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// cosSeries returns 1 - x^2/2! + x^4/4! - ...
func cosSeries(x2 Number, wp int, eps Number) Number {
	sum, term := one, one
	for i := 1; i <= maxTerms(wp); i++ {
		// term * x^2 / ((2i-1)(2i))
		term = term.Mul(x2).quo(FromInt64(int64((2*i-1)*(2*i))), wp).Negate()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}
