// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// lnGuard is the number of extra digits carried through ln series.
	lnGuard = 10
	// log10Guard is the number of extra digits for ln(x) and ln(10) in Log10.
	log10Guard = 20
)

var (
	three = FromInt64(3)
	five  = FromInt64(5)
)

// Ln returns the natural logarithm of n with prec digits after the decimal point.
func (n Number) Ln(prec int) (Number, error) {
	if n.Sign() <= 0 {
		return zero, fmt.Errorf("ln(%s): %w", n, ErrNonPositiveLogarithm)
	}
	prec = normPrec(prec)
	if n.Eq(one) {
		return zero, nil
	}
	return n.ln(prec + lnGuard).Round(prec), nil
}

// Log10 returns the decimal logarithm of n with prec digits after the decimal point.
// Exact powers of ten produce exact results.
func (n Number) Log10(prec int) (Number, error) {
	if n.Sign() <= 0 {
		return zero, fmt.Errorf("log10(%s): %w", n, ErrNonPositiveLogarithm)
	}
	prec = normPrec(prec)
	if e, ok := n.powerOfTen(); ok {
		return FromInt64(int64(e)), nil
	}
	wp := prec + log10Guard
	return n.ln(wp).quo(ln10(wp), wp).Round(prec), nil
}

// powerOfTen returns e, if n == 10^e.
func (n Number) powerOfTen() (int, bool) {
	d := n.mag()
	pos := -1
	for i, digit := range d {
		switch digit {
		case 0:
		case 1:
			if pos >= 0 {
				return 0, false
			}
			pos = i
		default:
			return 0, false
		}
	}
	if pos < 0 || n.neg {
		return 0, false
	}
	return pos - n.frac, true
}

// ln returns ln(n) for a positive n with about wp correct fractional digits.
// n is scaled into [0.5, 2] by halving or doubling, and ln(n) = k*ln(2) + ln(n/2^k).
func (n Number) ln(wp int) Number {
	x, k := n, 0
	for x.Cmp(two) > 0 {
		x = x.quo(two, wp)
		k++
	}
	for x.Cmp(half) < 0 {
		x = x.Mul(two)
		k--
	}
	res := atanhSeries(x.Sub(one).quo(x.Add(one), wp), wp).Mul(two)
	if k != 0 {
		kd := len(strconv.Itoa(k))
		res = res.Add(ln2(wp + kd).Mul(FromInt64(int64(k))))
	}
	return res.trunc(wp)
}

// ln2 returns ln(2) = 2*atanh(1/3).
func ln2(wp int) Number {
	return atanhSeries(one.quo(three, wp), wp).Mul(two)
}

// ln10 returns ln(10) = ln(2) + ln(5).
func ln10(wp int) Number {
	return ln2(wp).Add(five.ln(wp))
}

// atanhSeries returns y + y^3/3 + y^5/5 + ..., |y| must be less than 1.
func atanhSeries(y Number, wp int) Number {
	return oddSeries(y, wp, false)
}

// oddSeries sums y^(2i+1)/(2i+1) for i >= 0, alternating signs if alternate is set.
// The summation stops at the first term not greater than 10^-wp.
func oddSeries(y Number, wp int, alternate bool) Number {
	eps := pow10Neg(wp)
	y2 := y.Mul(y).trunc(wp)
	sum, pow := y, y
	for i := 1; i <= maxTerms(wp); i++ {
		pow = pow.Mul(y2).trunc(wp)
		term := pow.quo(FromInt64(int64(2*i+1)), wp)
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
		if alternate && i%2 == 1 {
			term = term.Negate()
		}
		sum = sum.Add(term)
	}
	return sum
}

// pow10Neg returns 10^-n.
func pow10Neg(n int) Number {
	return newNumber([]byte{1}, false, n)
}

// maxTerms limits the length of a series computed to wp digits.
func maxTerms(wp int) int {
	return 50 + 4*wp
}

// log10Abs estimates log10(|n|) for a non-zero n.
func log10Abs(n Number) float64 {
	s := n.msb()
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	lead := s
	if len(lead) > 17 {
		lead = lead[:17]
	}
	f, _ := strconv.ParseFloat(lead, 64)
	return math.Log10(f) + float64(len(s)-len(lead)-n.frac)
}
