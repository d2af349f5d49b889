// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"strings"

	"github.com/avdva/bignum/internal/mathutil"
)

// Div returns n / other truncated to prec digits after the decimal point.
// Trailing fractional zeros are removed from the result.
func (n Number) Div(other Number, prec int) (Number, error) {
	if other.IsZero() {
		return zero, fmt.Errorf("%s / 0: %w", n, ErrDivisionByZero)
	}
	return n.quo(other, prec), nil
}

// quo is Div for a divisor known to be non-zero.
func (n Number) quo(other Number, prec int) Number {
	if n.IsZero() {
		return zero
	}
	prec = normPrec(prec)

	// a*10^-fa / b*10^-fb = (a*10^(prec+fb-fa) / b) * 10^-prec
	dividend := n.msb()
	if scale := prec + other.frac - n.frac; scale >= 0 {
		dividend += strings.Repeat("0", scale)
	} else if cut := -scale; cut >= len(dividend) {
		return zero
	} else {
		dividend = dividend[:len(dividend)-cut]
	}
	q, err := mathutil.LongDiv(dividend, other.msb())
	if err != nil {
		panic(err) // should not happen, other is not zero.
	}

	digits := make([]byte, len(q))
	for i := 0; i < len(q); i++ {
		digits[len(q)-1-i] = q[i] - '0'
	}
	// remove trailing fractional zeros.
	trimmed := 0
	for trimmed < prec && trimmed < len(digits)-1 && digits[trimmed] == 0 {
		trimmed++
	}
	return newNumber(digits[trimmed:], n.neg != other.neg, prec-trimmed)
}
