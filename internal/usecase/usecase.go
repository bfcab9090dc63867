package usecase

import "context"

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	Categories(ctx context.Context) []string
}

type CartUC interface {
	CreateCart(ctx context.Context) (*CartRes, error)
	GetCart(ctx context.Context, cartID string) (*CartRes, error)
	AddItem(ctx context.Context, cartID, productID string) (*CartRes, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*CartRes, error)
	SetDeliveryMode(ctx context.Context, cartID, mode string) (*CartRes, error)
	DeleteCart(ctx context.Context, cartID string) error
}

type CheckoutUC interface {
	Checkout(ctx context.Context, cartID string) (*CheckoutRes, error)
	WholesaleLink() *LinkRes
	ContactLink() *LinkRes
}
