// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b string
		prec int
		res  string
		err  error
	}{
		{"7", "2", 4, "3.5", nil},
		{"1", "3", 5, "0.33333", nil},
		{"2", "3", 5, "0.66666", nil},
		{"-1", "3", 2, "-0.33", nil},
		{"1", "-3", 2, "-0.33", nil},
		{"-6", "-3", 1, "2", nil},
		{"2", "3", 0, "0", nil},
		{"10", "4", 0, "2", nil},
		{"0.5", "0.25", 3, "2", nil},
		{"1", "8", 10, "0.125", nil},
		{"100", "0.001", 2, "100000", nil},
		{"0.000001", "1000", 3, "0", nil},
		{"123.456", "1", 1, "123.4", nil},
		{"0", "5", 10, "0", nil},
		{"22", "7", -3, "3", nil},
		{"5", "0", 2, "", ErrDivisionByZero},
		{"0", "0.000", 2, "", ErrDivisionByZero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := MustFromString(test.a).Div(MustFromString(test.b), test.prec)
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

func TestDivRandom(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 300; i++ {
		x, y := randNumber(rnd), randNumber(rnd)
		if y.IsZero() {
			continue
		}
		prec := rnd.Intn(30)
		q, err := x.Div(y, prec)
		if !a.NoError(err) {
			continue
		}
		a.LessOrEqual(q.FracDigits(), prec)
		// truncation: |x - q*y| < 10^-prec * |y|
		rem := x.Sub(q.Mul(y)).Abs()
		a.True(rem.Cmp(pow10Neg(prec).Mul(y.Abs())) < 0, "%s / %s = %s", x, y, q)
		if !q.IsZero() {
			a.Equal(x.Sign()*y.Sign(), q.Sign(), "%s / %s = %s", x, y, q)
		}
	}
}

func BenchmarkDiv(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	x, y := randNumber(rnd), randNumber(rnd)
	if y.IsZero() {
		y = one
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Div(y, 50)
	}
}
