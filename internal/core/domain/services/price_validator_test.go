package services_test

import (
	"math"
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}

func TestPriceValidator_Sum(t *testing.T) {
	v := services.NewPriceValidator()

	total, err := v.Sum([]kernel.Price{mustPrice(t, 100), mustPrice(t, 250), mustPrice(t, 0)})
	require.NoError(t, err)
	assert.Equal(t, int64(350), total.Amount())
}

func TestPriceValidator_Sum_EmptySequence(t *testing.T) {
	v := services.NewPriceValidator()

	total, err := v.Sum(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total.Amount())
}

func TestPriceValidator_Sum_Commutative(t *testing.T) {
	v := services.NewPriceValidator()
	a := []kernel.Price{mustPrice(t, 100), mustPrice(t, 200), mustPrice(t, 300)}
	b := []kernel.Price{mustPrice(t, 300), mustPrice(t, 100), mustPrice(t, 200)}

	sumA, err := v.Sum(a)
	require.NoError(t, err)
	sumB, err := v.Sum(b)
	require.NoError(t, err)
	assert.True(t, sumA.IsEqual(sumB))
}

func TestPriceValidator_Sum_Overflow(t *testing.T) {
	v := services.NewPriceValidator()

	_, err := v.Sum([]kernel.Price{mustPrice(t, math.MaxInt64), mustPrice(t, 1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPriceOverflow)
}

func TestPriceValidator_Sum_UnconstructedOperand(t *testing.T) {
	v := services.NewPriceValidator()

	_, err := v.Sum([]kernel.Price{{}})
	require.Error(t, err)
}

func TestPriceValidator_IsSufficient(t *testing.T) {
	v := services.NewPriceValidator()

	tests := []struct {
		name      string
		menuPrice int64
		lineTotal int64
		want      bool
	}{
		{"total above price", 16000, 32000, true},
		{"total equals price", 16000, 16000, true},
		{"total below price", 16000, 15999, false},
		{"free menu", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.IsSufficient(mustPrice(t, tt.menuPrice), mustPrice(t, tt.lineTotal))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceValidator_IsSufficient_UnconstructedPrice(t *testing.T) {
	v := services.NewPriceValidator()

	_, err := v.IsSufficient(kernel.Price{}, mustPrice(t, 100))
	require.Error(t, err)
}
