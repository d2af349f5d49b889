// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package convert converts bignum numbers to and from other decimal types.
// All conversions go through the plain decimal text form, so they are exact
// unless the destination type can't hold the value.
package convert

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/bignum"
)

const (
	// FixedPlaces is the number of fractional digits kept by fixed.Fixed.
	FixedPlaces = 7
)

var (
	// ErrOutOfRange is returned if a value can't be represented by the destination type.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotFinite is returned for NaN and infinite source values.
	ErrNotFinite = errors.New("value is not finite")

	maxFixed = bignum.MustFromString("99999999999.9999999")
)

// FromShopspring converts d to a number.
func FromShopspring(d decimal.Decimal) bignum.Number {
	// String never uses the exponent form.
	return bignum.MustFromString(d.String())
}

// ToShopspring converts n to decimal.Decimal.
func ToShopspring(n bignum.Number) decimal.Decimal {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		panic(err) // should not happen, String returns a valid literal.
	}
	return d
}

// FromFixed converts f to a number.
func FromFixed(f of.Fixed) (bignum.Number, error) {
	if f.IsNaN() {
		return bignum.Number{}, ErrNotFinite
	}
	return bignum.FromString(f.String())
}

// ToFixed converts n to fixed.Fixed, rounding it to FixedPlaces fractional digits.
func ToFixed(n bignum.Number) (of.Fixed, error) {
	n = n.Round(FixedPlaces)
	if n.Abs().Cmp(maxFixed) > 0 {
		return of.NaN, fmt.Errorf("%s: %w", n, ErrOutOfRange)
	}
	return of.NewSErr(n.String())
}

// FromAPD converts a finite d to a number.
func FromAPD(d *apd.Decimal) (bignum.Number, error) {
	if d.Form != apd.Finite {
		return bignum.Number{}, fmt.Errorf("%s: %w", d.String(), ErrNotFinite)
	}
	return bignum.FromString(d.Text('f'))
}

// ToAPD converts n to apd.Decimal.
func ToAPD(n bignum.Number) *apd.Decimal {
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		panic(err) // should not happen, String returns a valid literal.
	}
	return d
}
