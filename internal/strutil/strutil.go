// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil scans and renders plain decimal literals.
package strutil

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	delim = '.'
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("invalid syntax")

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrSyntax
}

// Literal is a scanned decimal literal.
type Literal struct {
	// Digits holds all digits of the literal, most significant first, without the delimiter.
	// Leading zeros of the integer part and trailing zeros of the fractional part are removed.
	Digits string
	// Frac is the number of trailing Digits placed after the delimiter.
	Frac int
	Neg  bool
}

// Parse scans s as [sign]digits[.digits]. White space anywhere in s is ignored.
// An empty literal represents zero.
func Parse(s string) (Literal, error) {
	var (
		lit      Literal
		b        strings.Builder
		delimPos = -1
		signSeen bool
	)
	for i, r := range s {
		pos := i + 1 // positions start from 1
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			signSeen = true
			b.WriteRune(r)
		case r == delim:
			if delimPos != -1 {
				return Literal{}, parseErr(newPosError("unexpected delimiter", pos))
			}
			signSeen = true
			delimPos = b.Len()
		case (r == '-' || r == '+') && !signSeen:
			signSeen = true
			lit.Neg = r == '-'
		default:
			return Literal{}, parseErr(newPosError(fmt.Sprintf("unexpected symbol %q", r), pos))
		}
	}
	digits := b.String()
	if delimPos >= 0 {
		lit.Frac = len(digits) - delimPos
	}
	lit.Digits, lit.Frac = trimDigits(digits, lit.Frac)
	if lit.Digits == "0" {
		lit.Neg = false
	}
	return lit, nil
}

func parseErr(err error) error {
	return fmt.Errorf("parsing failed: %w", err)
}

// trimDigits removes trailing fractional zeros and leading integer zeros.
func trimDigits(s string, frac int) (string, int) {
	for frac > 0 && len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
		frac--
	}
	intLen := len(s) - frac
	i := 0
	for i < intLen && s[i] == '0' {
		i++
	}
	s = s[i:]
	if len(s) == 0 {
		return "0", 0
	}
	return s, frac
}

// FormatDigits writes a decimal representation of digits with frac fractional digits.
// Missing zeros between the delimiter and the first significant digit are restored.
func FormatDigits(w io.Writer, neg bool, digits string, frac int) {
	if strings.Trim(digits, "0") == "" {
		io.WriteString(w, "0")
		return
	}
	if neg {
		io.WriteString(w, "-")
	}
	if frac <= 0 {
		io.WriteString(w, digits)
		return
	}
	if diff := len(digits) - frac; diff <= 0 { // add leading zeros and a delimiter
		io.WriteString(w, "0.")
		io.WriteString(w, strings.Repeat("0", -diff))
		io.WriteString(w, digits)
	} else { // insert a delimiter
		io.WriteString(w, digits[:diff])
		io.WriteString(w, string(delim))
		io.WriteString(w, digits[diff:])
	}
}
