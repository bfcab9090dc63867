package usecase

import (
	"context"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/aidajassomex/finca57/pkg/walink"
)

// CheckoutUseCase формирует текст заказа и ссылки wa.me.
type CheckoutUseCase struct {
	cartRepo CartRepository
	provider CatalogProvider
	store    *cfg.StoreCfg
	logger   logger.Logger
}

func NewCheckoutUC(cartRepo CartRepository, provider CatalogProvider,
	store *cfg.StoreCfg, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo: cartRepo,
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// Checkout строит сообщение заказа и ссылку wa.me с предзаполненным текстом.
// Пустая корзина отклоняется до построения сообщения.
func (c *CheckoutUseCase) Checkout(ctx context.Context, cartID string) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Checkout"

	cart, err := c.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	fee := c.provider.Snapshot().Catalog.Shipping
	message := domain.BuildOrderMessage(cart, fee, c.store.BranchName)

	c.logger.Infof("checkout handoff built. cart_id: %s, items: %d", cartID, cart.ItemCount())

	return NewCheckoutRes(walink.Build(c.store.WhatsAppPhone, message), message), nil
}

// WholesaleLink возвращает ссылку wa.me с запросом оптового каталога.
func (c *CheckoutUseCase) WholesaleLink() *LinkRes {
	return NewLinkRes(walink.Build(c.store.WhatsAppPhone, domain.BuildWholesaleMessage()))
}

// ContactLink возвращает прямую ссылку wa.me без текста.
func (c *CheckoutUseCase) ContactLink() *LinkRes {
	return NewLinkRes(walink.Build(c.store.WhatsAppPhone, ""))
}
