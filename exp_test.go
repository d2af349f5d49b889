// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExp(t *testing.T) {
	a := assert.New(t)
	tests := []string{"1", "-1", "0.5", "-0.001", "2.302585", "10", "-10", "100", "-57.3"}
	for i, test := range tests {
		for _, prec := range []int{0, 8, 40} {
			t.Run(fmt.Sprintf("%d-%d", i, prec), func(t *testing.T) {
				res, err := MustFromString(test).Exp(prec)
				a.NoError(err)
				a.LessOrEqual(res.FracDigits(), prec)
				assertClose(t, oracle(t, apdExp, uint32(prec+80), test), res, prec, test)
			})
		}
	}
	res, err := zero.Exp(4)
	a.NoError(err)
	a.Equal("1.0000", res.String())
	res, err = zero.Exp(-4)
	a.NoError(err)
	a.Equal("1", res.String())
}

func TestExpRange(t *testing.T) {
	a := assert.New(t)
	huge := "1" + strings.Repeat("0", 400)
	for i, test := range []string{huge, "2500000", "-" + huge, "-100000"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := MustFromString(test)
			res, err := x.Exp(10)
			if x.IsNeg() {
				if a.NoError(err) {
					a.True(res.IsZero())
				}
			} else {
				a.ErrorIs(err, ErrOverflow)
			}
		})
	}
	// e^-25 ~ 1.4e-11 is the last value above zero at 11 digits.
	res, err := MustFromString("-25").Exp(11)
	if a.NoError(err) {
		a.Equal("0.00000000001", res.String())
	}
	res, err = MustFromString("-25").Exp(8)
	if a.NoError(err) {
		a.True(res.IsZero())
	}
}

func TestExpLn(t *testing.T) {
	a := assert.New(t)
	for i, test := range []string{"0.3", "1", "7.5", "42"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := MustFromString(test)
			ex, err := x.Exp(40)
			a.NoError(err)
			l, err := ex.Ln(30)
			if a.NoError(err) {
				assertClose(t, x, l, 29)
			}
		})
	}
}

func TestLnExp(t *testing.T) {
	a := assert.New(t)
	for i, test := range []string{"0.5", "2", "7.5", "99"} {
		for _, prec := range []int{5, 20} {
			t.Run(fmt.Sprintf("%d-%d", i, prec), func(t *testing.T) {
				x := MustFromString(test)
				l, err := x.Ln(prec)
				if a.NoError(err) {
					ex, err := l.Exp(prec)
					a.NoError(err)
					assertClose(t, x, ex, prec-2)
				}
			})
		}
	}
}

func TestPowInteger(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		prec int
		res  string
	}{
		{"2", "10", 5, "1024"},
		{"1.5", "2", 0, "2.25"},
		{"-2", "3", 2, "-8"},
		{"-2", "4", 2, "16"},
		{"7", "0", 2, "1"},
		{"10", "3.0", 2, "1000"},
		{"2", "-2", 4, "0.2500"},
		{"-3", "-1", 5, "-0.33333"},
		{"0", "2", 3, "0"},
		{"0.1", "20", 0, "0.00000000000000000001"},
		{"3", "100", 0, "515377520732011331036461129765621272702107522001"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := MustFromString(test.x).Pow(MustFromString(test.y), test.prec)
			if a.NoError(err) {
				a.Equal(test.res, res.String())
			}
		})
	}
}

func TestPowFractional(t *testing.T) {
	a := assert.New(t)
	tests := [][2]string{
		{"2", "0.5"},
		{"10", "1.5"},
		{"0.5", "2.5"},
		{"7", "-0.25"},
		{"123.4", "3.3"},
		{"1.0001", "1000.5"},
		{"2", "100.5"},
	}
	for i, test := range tests {
		for _, prec := range []int{2, 30} {
			t.Run(fmt.Sprintf("%d-%d", i, prec), func(t *testing.T) {
				res, err := MustFromString(test[0]).Pow(MustFromString(test[1]), prec)
				if a.NoError(err) {
					assertClose(t, oracle(t, apdPow, uint32(prec+80), test[0], test[1]), res, prec, test)
				}
			})
		}
	}
}

func TestPowErrors(t *testing.T) {
	a := assert.New(t)
	_, err := zero.Pow(zero, 10)
	a.ErrorIs(err, ErrUndefinedZeroPower)
	_, err = zero.Pow(MustFromString("-1"), 10)
	a.ErrorIs(err, ErrDivisionByZero)
	_, err = MustFromString("-8").Pow(MustFromString("0.5"), 10)
	a.ErrorIs(err, ErrNegativeBaseFractionalExponent)
	res, err := zero.Pow(MustFromString("0.5"), 10)
	if a.NoError(err) {
		a.True(res.IsZero())
	}
	_, err = MustFromString("10").Pow(MustFromString("2000000"), 0)
	a.ErrorIs(err, ErrOverflow)
	_, err = MustFromString("1.5").Pow(MustFromString("1000000000.5"), 5)
	a.ErrorIs(err, ErrOverflow)
	for _, y := range []string{"-100", "-100.5"} {
		res, err = MustFromString("10").Pow(MustFromString(y), 20)
		if a.NoError(err, y) {
			a.True(res.IsZero(), y)
		}
	}
}

func TestSqrt(t *testing.T) {
	a := assert.New(t)
	for i, test := range []string{"2", "3", "0.25", "1000000", "12345.678"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := MustFromString(test).Sqrt(30)
			if a.NoError(err) {
				assertClose(t, oracle(t, apdSqrt, 80, test), res, 30, test)
			}
		})
	}
	res, err := MustFromString("16").Sqrt(5)
	if a.NoError(err) {
		a.Equal("4.00000", res.String())
	}
	res, err = zero.Sqrt(5)
	if a.NoError(err) {
		a.True(res.IsZero())
	}
	_, err = MustFromString("-4").Sqrt(5)
	a.ErrorIs(err, ErrNegativeBaseFractionalExponent)
}

func TestFactorial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   Number
		res string
		err error
	}{
		{MustFromString("0"), "1", nil},
		{MustFromString("1"), "1", nil},
		{MustFromString("5"), "120", nil},
		{MustFromString("2.5").Add(MustFromString("2.5")), "120", nil},
		{MustFromString("20"), "2432902008176640000", nil},
		{MustFromString("25"), "15511210043330985984000000", nil},
		{MustFromString("-1"), "", ErrNegativeFactorial},
		{MustFromString("-2.5"), "", ErrNegativeFactorial},
		{MustFromString("2.5"), "", ErrFractionalFactorial},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := test.n.Factorial()
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, res.String())
			}
		})
	}
}

func TestE(t *testing.T) {
	a := assert.New(t)
	a.Equal("3", E(0).String())
	a.Equal("2.72", E(2).String())
	a.Equal("2.71828182845904523536028747135266249775724709369996", E(50).String())
	assertClose(t, oracle(t, apdExp, 250, "1"), E(200), 200)
	ex, err := one.Exp(30)
	if a.NoError(err) {
		a.True(E(30).Eq(ex))
	}
}

func TestPi(t *testing.T) {
	a := assert.New(t)
	a.Equal("3", Pi(0).String())
	a.Equal("3.14", Pi(2).String())
	a.Equal("3.14159265358979323846", Pi(20).String())
	a.Equal("3.14159265358979323846264338327950288419716939937511", Pi(50).String())
	a.Equal("3", Pi(-1).String())
	// 16*arctan(1/5) - 4*arctan(1/239)
	const pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
	assertClose(t, MustFromString(pi100), Pi(100), 100)
}

func TestArctan(t *testing.T) {
	a := assert.New(t)
	a.InDelta(math.Atan(0.2), arctan(arctanFifth, 20).Float64(), 1e-15)
	a.InDelta(math.Atan(1.0/239), arctan(one.quo(n239, 20), 20).Float64(), 1e-15)
	a.InDelta(math.Atan(-0.5), arctan(half.Negate(), 20).Float64(), 1e-15)
	a.True(arctan(zero, 10).IsZero())
}

func BenchmarkExp(b *testing.B) {
	x := MustFromString("12.345")
	for i := 0; i < b.N; i++ {
		_, _ = x.Exp(50)
	}
}

func BenchmarkPi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Pi(100)
	}
}
