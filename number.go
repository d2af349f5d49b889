// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bignum implements exact arbitrary-precision decimal numbers and
// elementary transcendental functions computed to a requested number of fractional digits.
//
// Add, Sub and Mul are exact. Every operation that cannot be exact (Div, Ln, Exp, Sin, ...)
// takes a precision argument, which is the number of digits after the decimal point
// in the result. Negative precisions are treated as zero.
package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/bignum/internal/mathutil"
	su "github.com/avdva/bignum/internal/strutil"
)

const (
	// significant digits kept by FromFloat64.
	floatDigits = 15
)

var (
	zero     Number
	zeroMag  = []byte{0}
	one      = FromInt64(1)
	two      = FromInt64(2)
	half     = MustFromString("0.5")
	maxInt64 = FromInt64(math.MaxInt64)
	minInt64 = FromInt64(math.MinInt64)
)

// Number is an exact decimal number.
// It stores decimal digits, least significant first, a sign flag,
// and the number of digits placed after the decimal point.
//
//	digits = [5 2 1], frac = 1, neg = true  ->  -12.5
//
// The zero value is 0. Numbers are immutable, so they are safe for concurrent use.
type Number struct {
	digits []byte
	frac   int
	neg    bool
}

// newNumber builds a normalized number taking ownership of digits:
//   - there are no redundant most significant zeros;
//   - there are at least frac digits;
//   - zero is non-negative and has no fractional digits.
func newNumber(digits []byte, neg bool, frac int) Number {
	if frac < 0 {
		frac = 0
	}
	nonZero := false
	for _, d := range digits {
		if d != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		return zero
	}
	for len(digits) < frac {
		digits = append(digits, 0)
	}
	l := len(digits)
	for l > 1 && l > frac && digits[l-1] == 0 {
		l--
	}
	return Number{digits: digits[:l], frac: frac, neg: neg}
}

// fromMSB converts a string of digits, most significant first.
func fromMSB(s string, neg bool, frac int) Number {
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		digits[len(s)-1-i] = s[i] - '0'
	}
	return newNumber(digits, neg, frac)
}

// FromString parses a decimal literal: an optional sign, digits and an optional decimal point.
// White space is ignored, an empty string is zero.
func FromString(s string) (Number, error) {
	lit, err := su.Parse(s)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidLiteral, err)
	}
	return fromMSB(lit.Digits, lit.Neg, lit.Frac), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Number {
	n, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromFloat64 returns a best-effort decimal approximation of f with up to 15 significant digits.
func FromFloat64(f float64) (Number, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return zero, fmt.Errorf("%w: bad float number %v", ErrInvalidLiteral, f)
	}
	digits, e := mathutil.FloatDigits(f, floatDigits)
	if e >= 0 {
		return fromMSB(digits+strings.Repeat("0", e), f < 0, 0), nil
	}
	return fromMSB(digits, f < 0, -e), nil
}

// FromInt64 returns a number for i.
func FromInt64(i int64) Number {
	s := strconv.FormatInt(i, 10)
	neg := i < 0
	if neg {
		s = s[1:]
	}
	return fromMSB(s, neg, 0)
}

// FromDigits returns a number for given digits, least significant first,
// a sign, and the count of fractional digits.
func FromDigits(digits []int, neg bool, frac int) (Number, error) {
	if frac < 0 {
		return zero, fmt.Errorf("%w: negative fractional digit count %d", ErrInvalidLiteral, frac)
	}
	b := make([]byte, len(digits))
	for i, d := range digits {
		if d < 0 || d > 9 {
			return zero, fmt.Errorf("%w: bad digit %d at pos %d", ErrInvalidLiteral, d, i)
		}
		b[i] = byte(d)
	}
	return newNumber(b, neg, frac), nil
}

func (n Number) mag() []byte {
	if len(n.digits) == 0 {
		return zeroMag
	}
	return n.digits
}

// msb returns the digits of n's magnitude, most significant first.
func (n Number) msb() string {
	d := n.mag()
	b := make([]byte, len(d))
	for i, digit := range d {
		b[len(d)-1-i] = '0' + digit
	}
	return string(b)
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return len(n.digits) == 0
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.neg
}

// Sign returns -1 if n < 0, 0 if n == 0, 1 if n > 0.
func (n Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}

// FracDigits returns the number of digits after the decimal point.
func (n Number) FracDigits() int {
	return n.frac
}

// Digits returns the total number of stored digits.
func (n Number) Digits() int {
	return len(n.mag())
}

// IsInteger returns true if all fractional digits of n are zeros.
func (n Number) IsInteger() bool {
	for _, d := range n.mag()[:n.frac] {
		if d != 0 {
			return false
		}
	}
	return true
}

// Abs returns |n|.
func (n Number) Abs() Number {
	n.neg = false
	return n
}

// Negate returns -n.
func (n Number) Negate() Number {
	if n.IsZero() {
		return n
	}
	n.neg = !n.neg
	return n
}

// Eq returns true if both numbers have the same value.
func (n Number) Eq(other Number) bool {
	return n.Cmp(other) == 0
}

// Cmp compares two numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (n Number) Cmp(other Number) int {
	s1, s2 := n.Sign(), other.Sign()
	if s1 > s2 {
		return 1
	} else if s1 < s2 {
		return -1
	}
	return cmpMag(n, other) * s1
}

// cmpMag compares |a| and |b| aligning their decimal points.
func cmpMag(a, b Number) int {
	frac := maxInt(a.frac, b.frac)
	da, db := a.mag(), b.mag()
	sa, sb := frac-a.frac, frac-b.frac
	for i := maxInt(len(da)+sa, len(db)+sb) - 1; i >= 0; i-- {
		x, y := digitAt(da, i-sa), digitAt(db, i-sb)
		if x != y {
			if x > y {
				return 1
			}
			return -1
		}
	}
	return 0
}

func digitAt(d []byte, i int) byte {
	if i < 0 || i >= len(d) {
		return 0
	}
	return d[i]
}

// aligned returns magnitudes of a and b padded with low order zeros to frac digits after the point.
func aligned(a, b Number) (da, db []byte, frac int) {
	frac = maxInt(a.frac, b.frac)
	return shiftLeft(a.mag(), frac-a.frac), shiftLeft(b.mag(), frac-b.frac), frac
}

// shiftLeft returns d*10^count as a new slice.
func shiftLeft(d []byte, count int) []byte {
	res := make([]byte, count+len(d))
	copy(res[count:], d)
	return res
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	if n.IsZero() {
		return other
	}
	if other.IsZero() {
		return n
	}
	da, db, frac := aligned(n, other)
	if n.neg == other.neg {
		return newNumber(addDigits(da, db), n.neg, frac)
	}
	// a + (-b) = a - b, or -(b - a) if |b| > |a|.
	switch cmpMag(n, other) {
	case 0:
		return zero
	case 1:
		return newNumber(subDigits(da, db), n.neg, frac)
	default:
		return newNumber(subDigits(db, da), other.neg, frac)
	}
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n.Add(other.Negate())
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	if n.IsZero() || other.IsZero() {
		return zero
	}
	return newNumber(mulDigits(n.mag(), other.mag()), n.neg != other.neg, n.frac+other.frac)
}

func addDigits(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	res := make([]byte, len(a)+1)
	var carry byte
	for i := range a {
		s := a[i] + digitAt(b, i) + carry
		res[i], carry = s%10, s/10
	}
	res[len(a)] = carry
	return res
}

// subDigits returns a-b, a must not be less than b.
func subDigits(a, b []byte) []byte {
	res := make([]byte, len(a))
	borrow := 0
	for i := range a {
		s := int(a[i]) - int(digitAt(b, i)) - borrow
		if s < 0 {
			s += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = byte(s)
	}
	return res
}

func mulDigits(a, b []byte) []byte {
	acc := make([]int, len(a)+len(b))
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			acc[i+j] += int(x) * int(y)
		}
	}
	res := make([]byte, len(acc))
	carry := 0
	for i, v := range acc {
		v += carry
		res[i], carry = byte(v%10), v/10
	}
	return res
}

// Round returns n with exactly prec digits after the decimal point.
// Excess digits are removed, rounding half up (away from zero),
// missing digits are added as trailing zeros.
func (n Number) Round(prec int) Number {
	prec = normPrec(prec)
	if n.IsZero() || n.frac == prec {
		return n
	}
	d := n.mag()
	if n.frac < prec {
		return newNumber(shiftLeft(d, prec-n.frac), n.neg, prec)
	}
	toCut := n.frac - prec
	if toCut > len(d) {
		return zero
	}
	res := make([]byte, len(d)-toCut, len(d)-toCut+1)
	copy(res, d[toCut:])
	if d[toCut-1] >= 5 {
		res = increment(res)
	}
	return newNumber(res, n.neg, prec)
}

// trunc returns n with at most prec digits after the decimal point, discarding the rest.
func (n Number) trunc(prec int) Number {
	if n.frac <= prec {
		return n
	}
	toCut := n.frac - prec
	d := n.mag()
	if toCut >= len(d) {
		return zero
	}
	res := make([]byte, len(d)-toCut)
	copy(res, d[toCut:])
	return newNumber(res, n.neg, prec)
}

// increment adds one unit in the lowest position.
func increment(d []byte) []byte {
	for i := range d {
		if d[i] < 9 {
			d[i]++
			return d
		}
		d[i] = 0
	}
	return append(d, 1)
}

// Int64 returns the integer part of n. Values out of the int64 range are clamped.
func (n Number) Int64() int64 {
	switch {
	case n.Cmp(maxInt64) >= 0:
		return math.MaxInt64
	case n.Cmp(minInt64) <= 0:
		return math.MinInt64
	}
	i, _ := strconv.ParseInt(n.trunc(0).String(), 10, 64)
	return i
}

// Float64 returns the nearest float64 value for n.
func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(n.String(), 64)
	return f
}

// String returns a string representation of the number.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	var builder strings.Builder
	su.FormatDigits(&builder, n.neg, n.msb(), n.frac)
	return builder.String()
}

// GoString returns debug string representation.
func (n Number) GoString() string {
	return n.String() + fmt.Sprintf(" {%s, %v, %d}", n.msb(), n.neg, n.frac)
}

// Format implements fmt.Formatter.
// %s and %v print the number as is, %.Nf rounds it to N fractional digits first.
func (n Number) Format(fs fmt.State, c rune) {
	switch c {
	case 'f':
		if prec, ok := fs.Precision(); ok {
			n = n.Round(prec)
		}
		fallthrough
	case 's', 'v':
		fs.Write([]byte(n.String()))
	case 'q':
		fs.Write([]byte(strconv.Quote(n.String())))
	default:
		fmt.Fprintf(fs, "%%!%c(bignum.Number=%s)", c, n.String())
	}
}

// MarshalJSON marshals n as a json string.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON unmarshals a json string or a number.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if len(s) == 0 {
		return fmt.Errorf("%w: empty json", ErrInvalidLiteral)
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*n = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*n = value
	return nil
}

func normPrec(prec int) int {
	if prec < 0 {
		return 0
	}
	return prec
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
