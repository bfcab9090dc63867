package usecase

import (
	"context"

	"github.com/aidajassomex/finca57/internal/domain"
)

type CatalogRepository interface {
	Fetch(ctx context.Context) (domain.Catalog, error)
}

type CartRepository interface {
	GetCart(ctx context.Context, cartID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteCart(ctx context.Context, cartID string) error
}
