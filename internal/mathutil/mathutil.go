// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil implements arithmetic on decimal digit strings.
// All strings are most-significant digit first and contain only '0'..'9'.
package mathutil

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by LongDiv for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// TrimZeros removes leading zeros from s. An all-zero or empty string becomes "0".
func TrimZeros(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return s[i:]
		}
	}
	return "0"
}

// CmpDigits compares two digit strings numerically.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func CmpDigits(a, b string) int {
	a, b = TrimZeros(a), TrimZeros(b)
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return strings.Compare(a, b)
}

// SubDigits returns a-b. a must not be less than b.
func SubDigits(a, b string) string {
	res := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		cur := int(a[i]-'0') - borrow
		if j >= 0 {
			cur -= int(b[j] - '0')
		}
		if cur < 0 {
			cur += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = byte('0' + cur)
	}
	return TrimZeros(string(res))
}

// MulDigit returns s*d for a single decimal digit d.
func MulDigit(s string, d int) string {
	switch d {
	case 0:
		return "0"
	case 1:
		return TrimZeros(s)
	}
	res := make([]byte, len(s)+1)
	carry := 0
	for i := len(s) - 1; i >= 0; i-- {
		cur := int(s[i]-'0')*d + carry
		res[i+1] = byte('0' + cur%10)
		carry = cur / 10
	}
	res[0] = byte('0' + carry)
	return TrimZeros(string(res))
}

// LongDiv returns the integer quotient of dividend/divisor.
// Quotient digits are produced one at a time, each chosen by a binary search over 0..9.
func LongDiv(dividend, divisor string) (string, error) {
	a, b := TrimZeros(dividend), TrimZeros(divisor)
	if b == "0" {
		return "", ErrDivisionByZero
	}
	if CmpDigits(a, b) < 0 {
		return "0", nil
	}
	var (
		quo strings.Builder
		rem string
	)
	quo.Grow(len(a))
	for i := 0; i < len(a); i++ {
		rem = TrimZeros(rem + a[i:i+1])
		q := quotientDigit(rem, b)
		quo.WriteByte(byte('0' + q))
		if q > 0 {
			rem = SubDigits(rem, MulDigit(b, q))
		}
	}
	return TrimZeros(quo.String()), nil
}

// quotientDigit finds the largest q in [0, 9] such that b*q <= rem.
func quotientDigit(rem, b string) int {
	q, lo, hi := 0, 0, 9
	for lo <= hi {
		mid := (lo + hi) / 2
		if CmpDigits(MulDigit(b, mid), rem) <= 0 {
			q = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return q
}

// FloatDigits splits abs(f) into a digit string and a decimal exponent, so that
// abs(f) ~= digits * 10^exp, keeping at most sigDigits significant digits.
// Trailing zeros are removed from digits. f must be finite.
func FloatDigits(f float64, sigDigits int) (digits string, exp int) {
	f = math.Abs(f)
	if f == 0 {
		return "0", 0
	}
	if sigDigits < 1 {
		sigDigits = 1
	}
	s := strconv.FormatFloat(f, 'e', sigDigits-1, 64) // d.ddddde±xx
	ePos := strings.IndexByte(s, 'e')
	mantissa, e := s[:ePos], s[ePos+1:]
	pow, _ := strconv.Atoi(e)
	mantissa = strings.Replace(mantissa, ".", "", 1)
	trimmed := strings.TrimRight(mantissa, "0")
	if trimmed == "" {
		return "0", 0
	}
	// mantissa has one digit before the point.
	return trimmed, pow - (len(trimmed) - 1)
}
