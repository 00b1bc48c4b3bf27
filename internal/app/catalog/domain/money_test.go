package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoney(2500)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), m.Amount())
	})

	t.Run("zero allowed", func(t *testing.T) {
		m, err := NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := NewMoney(-1)
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustMoney(2500)
	b := MustMoney(4200)

	assert.Equal(t, int64(6700), a.Add(b).Amount())
	assert.Equal(t, int64(5000), a.MultiplyQty(2).Amount())
	assert.Equal(t, int64(0), a.MultiplyQty(0).Amount())
}

func TestMoney_Comparisons(t *testing.T) {
	a := MustMoney(2500)
	b := MustMoney(4200)
	c := MustMoney(2500)

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, a.Equals(c))
	assert.False(t, a.Equals(b))
	assert.True(t, b.IsPositive())
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{2500, "2.500"},
		{5000, "5.000"},
		{12500, "12.500"},
		{1234567, "1.234.567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustMoney(tt.amount).Format())
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$2.500", MustMoney(2500).String())
}
