// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

var (
	arctanFifth = MustFromString("0.2")
	sixteen     = FromInt64(16)
	four        = FromInt64(4)
	n239        = FromInt64(239)
)

// Pi returns pi with prec digits after the decimal point,
// using Machin's formula pi = 16*arctan(1/5) - 4*arctan(1/239).
func Pi(prec int) Number {
	prec = normPrec(prec)
	wp := piPrec(prec)
	return pi(wp).Round(prec)
}

// piPrec returns the working precision for pi rounded to prec digits.
func piPrec(prec int) int {
	return maxInt(prec, 2) + maxInt(20, prec/4+20)
}

func pi(wp int) Number {
	a := arctan(arctanFifth, wp).Mul(sixteen)
	b := arctan(one.quo(n239, wp), wp).Mul(four)
	return a.Sub(b).trunc(wp)
}

// arctan returns x - x^3/3 + x^5/5 - ... for |x| < 1.
func arctan(x Number, wp int) Number {
	return oddSeries(x, wp, true)
}
