package usecase

import "github.com/aidajassomex/finca57/internal/domain"

// CATALOG USECASE

// ListProductsReq — параметры фильтрации и сортировки витрины.
type ListProductsReq struct {
	Query    string
	Category string
	Sort     SortKey
}

// ListProductsRes — отфильтрованный список товаров и сведения о доставке.
type ListProductsRes struct {
	Products []domain.Product
	Shipping domain.ShippingFee
}

// CART USECASE

// CartRes — корзина с пересчитанными итогами.
type CartRes struct {
	Cart   domain.Cart
	Totals domain.Totals
}

// CHECKOUT USECASE

// CheckoutRes — ссылка wa.me и текст заказа до URL-кодирования.
type CheckoutRes struct {
	URL     string
	Message string
}

// LinkRes — вспомогательная ссылка wa.me (mayoreo, прямой контакт).
type LinkRes struct {
	URL string
}

// MAPPERS

func NewListProductsReq(query, category, sort string) *ListProductsReq {
	return &ListProductsReq{
		Query:    query,
		Category: category,
		Sort:     ParseSortKey(sort),
	}
}

func NewListProductsRes(products []domain.Product, shipping domain.ShippingFee) *ListProductsRes {
	return &ListProductsRes{
		Products: products,
		Shipping: shipping,
	}
}

func NewCartRes(cart domain.Cart, totals domain.Totals) *CartRes {
	return &CartRes{
		Cart:   cart,
		Totals: totals,
	}
}

func NewCheckoutRes(url, message string) *CheckoutRes {
	return &CheckoutRes{
		URL:     url,
		Message: message,
	}
}

func NewLinkRes(url string) *LinkRes {
	return &LinkRes{URL: url}
}
