package order_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		name string
		want order.Status
	}{
		{"Cooking", order.Cooking},
		{"Meal", order.Meal},
		{"Completion", order.Completion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.StatusFromString(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusFromString_Unknown(t *testing.T) {
	_, err := order.StatusFromString("Delivered")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.StatusFromString("Unknown")
	require.Error(t, err)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Cooking", order.Cooking.String())
	assert.Equal(t, "Meal", order.Meal.String())
	assert.Equal(t, "Completion", order.Completion.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.Cooking.Validate())
	assert.NoError(t, order.Meal.Validate())
	assert.NoError(t, order.Completion.Validate())
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_IsInProgress(t *testing.T) {
	assert.True(t, order.Cooking.IsInProgress())
	assert.True(t, order.Meal.IsInProgress())
	assert.False(t, order.Completion.IsInProgress())
	assert.False(t, order.Unknown.IsInProgress())
}

func TestStatus_Change_FromInProgress(t *testing.T) {
	tests := []struct {
		name string
		from order.Status
		to   order.Status
	}{
		{"cooking to meal", order.Cooking, order.Meal},
		{"meal to completion", order.Meal, order.Completion},
		{"meal back to cooking", order.Meal, order.Cooking},
		{"cooking to completion", order.Cooking, order.Completion},
		{"cooking to cooking", order.Cooking, order.Cooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Change(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestStatus_Change_FromCompletion(t *testing.T) {
	for _, target := range []order.Status{order.Cooking, order.Meal, order.Completion} {
		t.Run(target.String(), func(t *testing.T) {
			_, err := order.Completion.Change(target)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrStateConflict)
		})
	}
}

func TestStatus_Change_InvalidTarget(t *testing.T) {
	_, err := order.Cooking.Change(order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
