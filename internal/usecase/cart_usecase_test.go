package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/internal/repository/memory"
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// stubProvider отдает фиксированный снимок каталога.
type stubProvider struct {
	snap usecase.CatalogSnapshot
}

func (s stubProvider) Snapshot() usecase.CatalogSnapshot {
	return s.snap
}

func loadedProvider(fee domain.ShippingFee, products ...domain.Product) stubProvider {
	return stubProvider{
		snap: usecase.CatalogSnapshot{
			Catalog: domain.Catalog{
				Products: products,
				Shipping: fee,
			},
			Source:   "products.json",
			Loaded:   true,
			LoadedAt: time.Now(),
		},
	}
}

var moneyComparers = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	}),
	cmp.Comparer(func(a, b currency.Unit) bool {
		return a.String() == b.String()
	}),
}

func newCartUC(t *testing.T, provider usecase.CatalogProvider) *usecase.CartUseCase {
	t.Helper()

	repo := memory.NewCartRepo(&cfg.CartCfg{Backend: cfg.CartBackendMemory, TTL: time.Minute})
	t.Cleanup(func() {
		_ = repo.Close(context.Background())
	})

	return usecase.NewCartUC(repo, provider, logger.NewSlogLogger())
}

func TestCartUseCaseAddItem(t *testing.T) {
	ctx := context.Background()

	a := catalogProduct("a", "A", "", "Semillas selectas", 10)
	b := catalogProduct("b", "B", "", "Semillas selectas", 5)
	uc := newCartUC(t, loadedProvider(domain.PendingShippingFee(), a, b))

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)
	require.True(t, created.Cart.IsEmpty())
	cartID := created.Cart.ID

	res, err := uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)
	res, err = uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)
	res, err = uc.AddItem(ctx, cartID, "b")
	require.NoError(t, err)

	require.Len(t, res.Cart.Lines, 2)
	assert.Equal(t, 3, res.Totals.ItemCount)
	assert.Equal(t, "$25.00", res.Totals.Subtotal.String())

	// Мутации сохраняются между запросами
	got, err := uc.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(res.Cart, got.Cart, moneyComparers))
}

func TestCartUseCaseAddUnknownProduct(t *testing.T) {
	ctx := context.Background()

	a := catalogProduct("a", "A", "", "", 10)
	uc := newCartUC(t, loadedProvider(domain.PendingShippingFee(), a))

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)

	before, err := uc.AddItem(ctx, created.Cart.ID, "a")
	require.NoError(t, err)

	// Неизвестный товар — тихий no-op, корзина не меняется
	after, err := uc.AddItem(ctx, created.Cart.ID, "ghost")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before.Cart, after.Cart, moneyComparers))
}

func TestCartUseCaseAddAgainstEmptyCatalog(t *testing.T) {
	ctx := context.Background()

	// Каталог еще не загрузился: операции корзины работают по пустому множеству
	uc := newCartUC(t, stubProvider{snap: usecase.CatalogSnapshot{Source: "products.json"}})

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)

	res, err := uc.AddItem(ctx, created.Cart.ID, "a")
	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
}

func TestCartUseCaseRemoveItem(t *testing.T) {
	ctx := context.Background()

	a := catalogProduct("a", "A", "", "", 10)
	uc := newCartUC(t, loadedProvider(domain.PendingShippingFee(), a))

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)
	cartID := created.Cart.ID

	_, err = uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)

	// Удаление убирает позицию целиком, а не одну единицу
	res, err := uc.RemoveItem(ctx, cartID, "a")
	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
	assert.Equal(t, 0, res.Totals.ItemCount)

	// Удаление отсутствующего товара — тихий no-op
	res, err = uc.RemoveItem(ctx, cartID, "a")
	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
}

func TestCartUseCaseSetDeliveryMode(t *testing.T) {
	ctx := context.Background()

	a := catalogProduct("a", "A", "", "", 10)
	fee := domain.KnownShippingFee(domain.NewMoney(decimal.NewFromInt(8)))
	uc := newCartUC(t, loadedProvider(fee, a))

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)
	cartID := created.Cart.ID

	_, err = uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)

	res, err := uc.SetDeliveryMode(ctx, cartID, "shipping")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryShipping, res.Cart.Delivery)
	assert.Equal(t, "$18.00", res.Totals.Total.String())

	res, err = uc.SetDeliveryMode(ctx, cartID, "pickup")
	require.NoError(t, err)
	assert.Equal(t, "$10.00", res.Totals.Total.String())

	_, err = uc.SetDeliveryMode(ctx, cartID, "drone")
	require.ErrorIs(t, err, e.ErrInvalidDeliveryMode)
}

func TestCartUseCaseDeleteCart(t *testing.T) {
	ctx := context.Background()

	a := catalogProduct("a", "A", "", "", 10)
	uc := newCartUC(t, loadedProvider(domain.PendingShippingFee(), a))

	created, err := uc.CreateCart(ctx)
	require.NoError(t, err)
	cartID := created.Cart.ID

	_, err = uc.AddItem(ctx, cartID, "a")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCart(ctx, cartID))

	_, err = uc.GetCart(ctx, cartID)
	require.ErrorIs(t, err, e.ErrCartNotFound)

	// Повторное удаление идемпотентно
	require.NoError(t, uc.DeleteCart(ctx, cartID))
}

func TestCartUseCaseCartNotFound(t *testing.T) {
	ctx := context.Background()

	uc := newCartUC(t, loadedProvider(domain.PendingShippingFee()))

	_, err := uc.GetCart(ctx, "missing")
	require.ErrorIs(t, err, e.ErrCartNotFound)

	_, err = uc.AddItem(ctx, "missing", "a")
	require.ErrorIs(t, err, e.ErrCartNotFound)
}
