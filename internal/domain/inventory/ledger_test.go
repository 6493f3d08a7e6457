package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/inventory"
)

func TestLedgerDelta(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		quantity int
		want     int
	}{
		{"entrada suma", entity.MovementTypeInflow, 5, 5},
		{"salida resta", entity.MovementTypeOutflow, 3, -3},
		{"entrada cero no altera", entity.MovementTypeInflow, 0, 0},
		{"salida negativa no altera", entity.MovementTypeOutflow, -4, 0},
		{"tipo desconocido", "ADJUSTMENT", 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.LedgerDelta(tc.kind, tc.quantity))
		})
	}
}

func TestLedgerDelta_SumaNeta(t *testing.T) {
	q := 10
	for _, n := range []int{5, 2, 8} {
		q += inventory.LedgerDelta(entity.MovementTypeInflow, n)
	}
	for _, n := range []int{4, 6} {
		q += inventory.LedgerDelta(entity.MovementTypeOutflow, n)
	}
	assert.Equal(t, 10+15-10, q)
}

func TestCheckAvailability(t *testing.T) {
	p := &entity.Product{Title: "Teclado", Quantity: 2}

	require.NoError(t, inventory.CheckAvailability(p, 1))
	require.NoError(t, inventory.CheckAvailability(p, 2), "retirar exactamente el stock es válido")

	err := inventory.CheckAvailability(p, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)
	assert.Equal(t, "La cantidad disponible en stock para el producto Teclado es de 2 unidades.", err.Error())
}

func TestCheckAvailability_ProductoInexistente(t *testing.T) {
	assert.ErrorIs(t, inventory.CheckAvailability(nil, 1), domain.ErrNotFound)
}

func TestApplyDelta_RangoDeLaColumna(t *testing.T) {
	next, err := inventory.ApplyDelta(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, next)

	next, err = inventory.ApplyDelta(0, inventory.MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxQuantity, next)

	_, err = inventory.ApplyDelta(inventory.MaxQuantity, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyDelta(0, math.MaxInt)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyDelta(2, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
