package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money represents a monetary amount in whole currency units (COP).
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("money amount cannot be negative, got %d", amount)
	}
	return Money{amount: amount}, nil
}

// MustMoney is a convenience constructor for amounts known to be valid,
// such as literals in tests and fixtures. It panics on negative input.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the raw whole-unit amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyQty returns the amount scaled by a line quantity.
func (m Money) MultiplyQty(qty int) Money {
	return Money{amount: m.amount * int64(qty)}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// LessThan returns true if this amount is strictly below the other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// Equals returns true if both amounts are the same.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// Format renders the amount with the es-CO grouping convention (dot
// separators, no fractional digits), e.g. 2500 -> "2.500". Grouping
// applies from four digits up: the message contract shows "5.000", so
// CLDR's two-digit minimum grouping for Spanish does not apply here.
func (m Money) Format() string {
	digits := strconv.FormatInt(m.amount, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// String returns the formatted amount prefixed with the currency sign.
func (m Money) String() string {
	return "$" + m.Format()
}
