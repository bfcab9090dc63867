package usecase

import (
	"context"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
)

// CatalogUseCase реализует выдачу витрины поверх снимка каталога.
type CatalogUseCase struct {
	provider CatalogProvider
	logger   logger.Logger
}

func NewCatalogUC(provider CatalogProvider, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		provider: provider,
		logger:   logger,
	}
}

// ListProducts возвращает отфильтрованный список товаров по текущему снимку каталога.
// Пока каталог ни разу не загрузился, возвращается явная ошибка с именем источника.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	snap := c.provider.Snapshot()
	if !snap.Loaded {
		if snap.Err != nil {
			c.logger.Warnf("catalog unavailable (%s): %v", snap.Source, snap.Err)
		}
		return nil, e.Wrap(op, e.Wrap(snap.Source, e.ErrCatalogUnavailable))
	}

	list := FilterProducts(snap.Catalog.Products, req)

	return NewListProductsRes(list, snap.Catalog.Shipping), nil
}

// Categories возвращает официальный порядок меню категорий.
// Порядок фиксирован и не зависит от содержимого каталога.
func (c *CatalogUseCase) Categories(_ context.Context) []string {
	categories := make([]string, len(domain.CategoryOrder))
	copy(categories, domain.CategoryOrder)

	return categories
}
