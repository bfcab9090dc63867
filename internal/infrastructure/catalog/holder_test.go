package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/internal/infrastructure/catalog"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo отдает заранее заданный каталог или ошибку загрузки.
type stubRepo struct {
	catalog domain.Catalog
	err     error
}

func (s *stubRepo) Fetch(_ context.Context) (domain.Catalog, error) {
	if s.err != nil {
		return domain.Catalog{}, s.err
	}

	return s.catalog, nil
}

func catalogCfg() *cfg.CatalogCfg {
	return &cfg.CatalogCfg{
		Source:       "products.json",
		FetchTimeout: time.Second,
	}
}

func TestHolderInitialSnapshot(t *testing.T) {
	holder := catalog.NewHolder(&stubRepo{}, catalogCfg(), logger.NewSlogLogger())

	snap := holder.Snapshot()
	assert.False(t, snap.Loaded)
	assert.Equal(t, "products.json", snap.Source)
	assert.Empty(t, snap.Catalog.Products)
}

func TestHolderLoad(t *testing.T) {
	repo := &stubRepo{catalog: domain.Catalog{
		Products: []domain.Product{{ID: "p1", Name: "Chips", Price: domain.NewMoney(decimal.NewFromInt(65))}},
		Shipping: domain.KnownShippingFee(domain.NewMoney(decimal.NewFromInt(90))),
	}}
	holder := catalog.NewHolder(repo, catalogCfg(), logger.NewSlogLogger())

	require.NoError(t, holder.Load(context.Background()))

	snap := holder.Snapshot()
	assert.True(t, snap.Loaded)
	assert.NoError(t, snap.Err)
	assert.False(t, snap.LoadedAt.IsZero())
	require.Len(t, snap.Catalog.Products, 1)
	assert.True(t, snap.Catalog.Shipping.Known)
}

func TestHolderLoadFailureKeepsPreviousCatalog(t *testing.T) {
	repo := &stubRepo{catalog: domain.Catalog{
		Products: []domain.Product{{ID: "p1", Name: "Chips", Price: domain.NewMoney(decimal.NewFromInt(65))}},
	}}
	holder := catalog.NewHolder(repo, catalogCfg(), logger.NewSlogLogger())

	require.NoError(t, holder.Load(context.Background()))

	// Неудачное обновление не сбрасывает рабочий каталог
	repo.err = assert.AnError
	require.Error(t, holder.Load(context.Background()))

	snap := holder.Snapshot()
	assert.True(t, snap.Loaded)
	assert.ErrorIs(t, snap.Err, assert.AnError)
	require.Len(t, snap.Catalog.Products, 1)

	// Следующая удачная загрузка очищает ошибку
	repo.err = nil
	require.NoError(t, holder.Load(context.Background()))
	assert.NoError(t, holder.Snapshot().Err)
}

func TestHolderLoadFailureBeforeFirstSuccess(t *testing.T) {
	holder := catalog.NewHolder(&stubRepo{err: assert.AnError}, catalogCfg(), logger.NewSlogLogger())

	require.Error(t, holder.Load(context.Background()))

	snap := holder.Snapshot()
	assert.False(t, snap.Loaded)
	assert.ErrorIs(t, snap.Err, assert.AnError)
}

func TestHolderStartDisabledWithoutInterval(t *testing.T) {
	holder := catalog.NewHolder(&stubRepo{}, catalogCfg(), logger.NewSlogLogger())

	// Нулевой интервал: воркер не стартует, Stop не зависает
	holder.Start(context.Background())
	holder.Stop()
}
