package domain_test

import (
	"testing"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productWithPrice(id, name string, price float64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: domain.NewMoney(decimal.NewFromFloat(price)),
	}
}

// testCart — контрольная корзина: A × 2 по $10.00 и B × 1 по $5.00.
func testCart() domain.Cart {
	cart := domain.NewCart("cart-1")
	a := productWithPrice("a", "A", 10)
	b := productWithPrice("b", "B", 5)

	cart.AddLine(a)
	cart.AddLine(a)
	cart.AddLine(b)

	return cart
}

func TestCartAddLine(t *testing.T) {
	cart := domain.NewCart("cart-1")
	a := productWithPrice("a", "A", 10)
	b := productWithPrice("b", "B", 5)

	cart.AddLine(a)
	cart.AddLine(b)
	cart.AddLine(a)

	// Одна позиция на товар, порядок добавления сохраняется
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "a", cart.Lines[0].Product.ID)
	assert.Equal(t, 2, cart.Lines[0].Qty)
	assert.Equal(t, "b", cart.Lines[1].Product.ID)
	assert.Equal(t, 1, cart.Lines[1].Qty)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartRemoveLine(t *testing.T) {
	cart := testCart()

	// Удаление убирает позицию целиком независимо от количества
	assert.True(t, cart.RemoveLine("a"))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "b", cart.Lines[0].Product.ID)
	assert.Equal(t, 1, cart.ItemCount())

	// Повторное удаление — no-op
	assert.False(t, cart.RemoveLine("a"))
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartItemCountNeverNegative(t *testing.T) {
	cart := domain.NewCart("cart-1")
	a := productWithPrice("a", "A", 10)

	cart.RemoveLine("a")
	cart.AddLine(a)
	cart.RemoveLine("a")
	cart.RemoveLine("a")

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestComputeTotals(t *testing.T) {
	flat8 := domain.KnownShippingFee(domain.NewMoney(decimal.NewFromInt(8)))

	tests := []struct {
		name         string
		delivery     domain.DeliveryMode
		fee          domain.ShippingFee
		wantSubtotal string
		wantShipping string
		wantTotal    string
		wantPending  bool
	}{
		{
			name:         "pickup ignores shipping fee",
			delivery:     domain.DeliveryPickup,
			fee:          flat8,
			wantSubtotal: "$25.00",
			wantShipping: "$0.00",
			wantTotal:    "$25.00",
		},
		{
			name:         "shipping with known flat fee",
			delivery:     domain.DeliveryShipping,
			fee:          flat8,
			wantSubtotal: "$25.00",
			wantShipping: "$8.00",
			wantTotal:    "$33.00",
		},
		{
			name:         "shipping with pending fee excludes it from total",
			delivery:     domain.DeliveryShipping,
			fee:          domain.PendingShippingFee(),
			wantSubtotal: "$25.00",
			wantShipping: "$0.00",
			wantTotal:    "$25.00",
			wantPending:  true,
		},
		{
			name:         "shipping with known zero fee",
			delivery:     domain.DeliveryShipping,
			fee:          domain.KnownShippingFee(domain.ZeroMoney()),
			wantSubtotal: "$25.00",
			wantShipping: "$0.00",
			wantTotal:    "$25.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := testCart()
			cart.Delivery = tt.delivery

			totals := domain.ComputeTotals(cart, tt.fee)

			assert.Equal(t, 3, totals.ItemCount)
			assert.Equal(t, tt.wantSubtotal, totals.Subtotal.String())
			assert.Equal(t, tt.wantShipping, totals.Shipping.String())
			assert.Equal(t, tt.wantTotal, totals.Total.String())
			assert.Equal(t, tt.wantPending, totals.ShippingPending)
		})
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	cart := domain.NewCart("cart-1")
	cart.Delivery = domain.DeliveryShipping

	// Стоимость доставки применяется только к непустой корзине
	totals := domain.ComputeTotals(cart, domain.KnownShippingFee(domain.NewMoney(decimal.NewFromInt(8))))

	assert.Equal(t, 0, totals.ItemCount)
	assert.Equal(t, "$0.00", totals.Total.String())
	assert.False(t, totals.ShippingPending)
}
