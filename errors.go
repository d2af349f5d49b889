// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import "errors"

var (
	// ErrInvalidLiteral is returned for malformed numeric text.
	ErrInvalidLiteral = errors.New("invalid literal")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonPositiveLogarithm is returned by Ln and Log10 for arguments <= 0.
	ErrNonPositiveLogarithm = errors.New("logarithm of non-positive number")
	// ErrUndefinedZeroPower is returned for 0^0.
	ErrUndefinedZeroPower = errors.New("0^0 is undefined")
	// ErrNegativeBaseFractionalExponent is returned for a fractional power of a negative number.
	ErrNegativeBaseFractionalExponent = errors.New("negative base with fractional exponent")
	// ErrNegativeFactorial is returned for factorials of negative numbers.
	ErrNegativeFactorial = errors.New("factorial of negative number")
	// ErrFractionalFactorial is returned for factorials of non-integers.
	ErrFractionalFactorial = errors.New("factorial of fractional number")
	// ErrOverflow is returned by Exp and Pow for results with too many integer digits.
	ErrOverflow = errors.New("result too large")
	// ErrTangentUndefined is returned by Tan when the cosine is zero.
	ErrTangentUndefined = errors.New("tangent undefined")
)
