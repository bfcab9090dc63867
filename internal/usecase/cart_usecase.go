package usecase

import (
	"context"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/google/uuid"
)

// CartUseCase реализует операции над корзиной сессии.
type CartUseCase struct {
	cartRepo CartRepository
	provider CatalogProvider
	logger   logger.Logger
}

func NewCartUC(cartRepo CartRepository, provider CatalogProvider, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		provider: provider,
		logger:   logger,
	}
}

// CreateCart создает пустую корзину и возвращает ее с нулевыми итогами.
func (c *CartUseCase) CreateCart(ctx context.Context) (*CartRes, error) {
	const op = "CartUseCase.CreateCart"

	cart := domain.NewCart(uuid.NewString())
	if err := c.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.withTotals(cart), nil
}

// GetCart возвращает корзину с итогами, пересчитанными по текущему снимку каталога.
func (c *CartUseCase) GetCart(ctx context.Context, cartID string) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.withTotals(cart), nil
}

// AddItem увеличивает количество товара на единицу.
// Неизвестный товар — тихий no-op: корзина возвращается без изменений,
// расхождение фиксируется только в логе (защита от устаревшего состояния витрины).
func (c *CartUseCase) AddItem(ctx context.Context, cartID, productID string) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	cart, err := c.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, ok := c.provider.Snapshot().Catalog.FindProduct(productID)
	if !ok {
		c.logger.Warnf("add ignored, product not in catalog. cart_id: %s, product_id: %s", cartID, productID)
		return c.withTotals(cart), nil
	}

	cart.AddLine(product)
	if err := c.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.withTotals(cart), nil
}

// RemoveItem удаляет позицию целиком независимо от количества.
// Отсутствие позиции — тихий no-op.
func (c *CartUseCase) RemoveItem(ctx context.Context, cartID, productID string) (*CartRes, error) {
	const op = "CartUseCase.RemoveItem"

	cart, err := c.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !cart.RemoveLine(productID) {
		c.logger.Debugf("remove ignored, product not in cart. cart_id: %s, product_id: %s", cartID, productID)
		return c.withTotals(cart), nil
	}

	if err := c.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.withTotals(cart), nil
}

// SetDeliveryMode переключает способ получения заказа.
func (c *CartUseCase) SetDeliveryMode(ctx context.Context, cartID, mode string) (*CartRes, error) {
	const op = "CartUseCase.SetDeliveryMode"

	delivery, ok := domain.ParseDeliveryMode(mode)
	if !ok {
		return nil, e.Wrap(op, e.Wrap(mode, e.ErrInvalidDeliveryMode))
	}

	cart, err := c.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Delivery = delivery
	if err := c.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.withTotals(cart), nil
}

// DeleteCart завершает сессию корзины досрочно, не дожидаясь TTL.
// Удаление идемпотентно: отсутствующая корзина не является ошибкой.
func (c *CartUseCase) DeleteCart(ctx context.Context, cartID string) error {
	const op = "CartUseCase.DeleteCart"

	if err := c.cartRepo.DeleteCart(ctx, cartID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// withTotals пересчитывает итоги по стоимости доставки из текущего снимка каталога.
func (c *CartUseCase) withTotals(cart domain.Cart) *CartRes {
	fee := c.provider.Snapshot().Catalog.Shipping

	return NewCartRes(cart, domain.ComputeTotals(cart, fee))
}
