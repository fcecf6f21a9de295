package kernel_test

import (
	"math"
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from non-negative minor units", func(t *testing.T) {
		p, err := kernel.NewPrice(1000)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(1000), p.Amount())
	})

	t.Run("should accept zero", func(t *testing.T) {
		p, err := kernel.NewPrice(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Amount())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestZeroPrice(t *testing.T) {
	p := kernel.ZeroPrice()

	require.NoError(t, p.Validate())
	assert.Equal(t, int64(0), p.Amount())
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero value struct is not constructed", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestPrice_Add(t *testing.T) {
	t.Run("should add exactly", func(t *testing.T) {
		a, _ := kernel.NewPrice(1000)
		b, _ := kernel.NewPrice(234)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(1234), sum.Amount())
	})

	t.Run("zero price is the identity", func(t *testing.T) {
		a, _ := kernel.NewPrice(500)

		sum, err := a.Add(kernel.ZeroPrice())

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(a))
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		a, _ := kernel.NewPrice(500)
		var b kernel.Price

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})

	t.Run("should report overflow instead of wrapping", func(t *testing.T) {
		a, _ := kernel.NewPrice(math.MaxInt64)
		b, _ := kernel.NewPrice(1)

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceOverflow, err)
	})
}

func TestPrice_MultiplyBy(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		p, _ := kernel.NewPrice(250)

		total, err := p.MultiplyBy(4)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), total.Amount())
	})

	t.Run("quantity zero yields zero", func(t *testing.T) {
		p, _ := kernel.NewPrice(250)

		total, err := p.MultiplyBy(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		p, _ := kernel.NewPrice(250)

		_, err := p.MultiplyBy(-2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should report overflow", func(t *testing.T) {
		p, _ := kernel.NewPrice(math.MaxInt64 / 2)

		_, err := p.MultiplyBy(3)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceOverflow, err)
	})
}

func TestPrice_Comparison(t *testing.T) {
	low, _ := kernel.NewPrice(999)
	high, _ := kernel.NewPrice(1000)

	assert.True(t, low.IsLessThan(high))
	assert.False(t, high.IsLessThan(low))
	assert.True(t, high.IsGreaterOrEqual(low))
	assert.True(t, high.IsGreaterOrEqual(high))
	assert.False(t, low.IsGreaterOrEqual(high))
	assert.True(t, low.IsEqual(low))
	assert.False(t, low.IsEqual(high))
}

func TestPrice_String(t *testing.T) {
	p, _ := kernel.NewPrice(1234)
	assert.Equal(t, "1234", p.String())
}
