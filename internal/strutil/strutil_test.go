package strutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		lit Literal
		err string
	}{
		{"", Literal{Digits: "0"}, ""},
		{" 0 ", Literal{Digits: "0"}, ""},
		{"-0.000", Literal{Digits: "0"}, ""},
		{"+.5", Literal{Digits: "5", Frac: 1}, ""},
		{"5.", Literal{Digits: "5"}, ""},
		{"-0.0070", Literal{Digits: "007", Frac: 3, Neg: true}, ""},
		{"00012.3400", Literal{Digits: "1234", Frac: 2}, ""},
		{"1 000", Literal{Digits: "1000"}, ""},
		{"  - 42", Literal{Digits: "42", Neg: true}, ""},
		{"100", Literal{Digits: "100"}, ""},
		{"abc", Literal{}, "parsing failed: unexpected symbol 'a' at pos 1"},
		{"1.2.3", Literal{}, "parsing failed: unexpected delimiter at pos 4"},
		{"+-1", Literal{}, "parsing failed: unexpected symbol '-' at pos 2"},
		{"12e3", Literal{}, "parsing failed: unexpected symbol 'e' at pos 3"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			lit, err := Parse(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.lit, lit, test.s)
				}
			} else {
				a.EqualError(err, test.err)
				a.ErrorIs(err, ErrSyntax)
			}
		})
	}
}

func TestFormatDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		neg    bool
		digits string
		frac   int
		res    string
	}{
		{false, "0", 0, "0"},
		{true, "000", 2, "0"},
		{false, "7", 3, "0.007"},
		{true, "007", 3, "-0.007"},
		{false, "15", 1, "1.5"},
		{false, "1500", 0, "1500"},
		{true, "12345", 5, "-0.12345"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var b strings.Builder
			FormatDigits(&b, test.neg, test.digits, test.frac)
			a.Equal(test.res, b.String())
		})
	}
}
