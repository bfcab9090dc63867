package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductIDRequired):
		return http.StatusBadRequest, e.ErrProductIDRequired.Error()
	case errors.Is(err, e.ErrInvalidDeliveryMode):
		return http.StatusBadRequest, e.ErrInvalidDeliveryMode.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrCartNotFound):
		return http.StatusNotFound, e.ErrCartNotFound.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, e.ErrCatalogUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteErrorMessage(w, code, msg)
}

func WriteErrorMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RESPONSE MODELS

type ProductResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        string   `json:"price"`
	PriceDisplay string   `json:"price_display"`
	Category     string   `json:"category,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	Image        string   `json:"image,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type ShippingResponse struct {
	Known   bool   `json:"known"`
	Fee     string `json:"fee,omitempty"`
	Display string `json:"display"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Shipping ShippingResponse  `json:"shipping"`
}

type CartLineResponse struct {
	Product          ProductResponse `json:"product"`
	Qty              int             `json:"qty"`
	LineTotalDisplay string          `json:"line_total_display"`
}

type TotalsResponse struct {
	ItemCount       int    `json:"item_count"`
	Subtotal        string `json:"subtotal"`
	SubtotalDisplay string `json:"subtotal_display"`
	ShippingDisplay string `json:"shipping_display"`
	ShippingPending bool   `json:"shipping_pending"`
	Total           string `json:"total"`
	TotalDisplay    string `json:"total_display"`
}

type CartResponse struct {
	CartID   string             `json:"cart_id"`
	Delivery string             `json:"delivery"`
	Lines    []CartLineResponse `json:"lines"`
	Totals   TotalsResponse     `json:"totals"`
}

type LinkResponse struct {
	URL string `json:"url"`
}

type CheckoutResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// shippingPendingDisplay — текст витрины для доставки "по котировке"
const shippingPendingDisplay = "Por cotizar"

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.Amount.String(),
		PriceDisplay: p.Price.String(),
		Category:     p.Category,
		Unit:         p.Unit,
		Image:        p.Image,
		Tags:         p.Tags,
	}
}

func toShippingResponse(fee domain.ShippingFee) ShippingResponse {
	if !fee.Known {
		return ShippingResponse{Display: shippingPendingDisplay}
	}

	return ShippingResponse{
		Known:   true,
		Fee:     fee.Amount.Amount.String(),
		Display: fee.Amount.String(),
	}
}

func toListProductsResponse(res *usecase.ListProductsRes) *ListProductsResponse {
	products := make([]ProductResponse, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, toProductResponse(p))
	}

	return &ListProductsResponse{
		Products: products,
		Shipping: toShippingResponse(res.Shipping),
	}
}

func toCartResponse(res *usecase.CartRes) *CartResponse {
	lines := make([]CartLineResponse, 0, len(res.Cart.Lines))
	for _, line := range res.Cart.Lines {
		lines = append(lines, CartLineResponse{
			Product:          toProductResponse(line.Product),
			Qty:              line.Qty,
			LineTotalDisplay: line.Product.Price.Mul(line.Qty).String(),
		})
	}

	shippingDisplay := res.Totals.Shipping.String()
	if res.Totals.ShippingPending {
		shippingDisplay = shippingPendingDisplay
	}

	return &CartResponse{
		CartID:   res.Cart.ID,
		Delivery: string(res.Cart.Delivery),
		Lines:    lines,
		Totals: TotalsResponse{
			ItemCount:       res.Totals.ItemCount,
			Subtotal:        res.Totals.Subtotal.Amount.String(),
			SubtotalDisplay: res.Totals.Subtotal.String(),
			ShippingDisplay: shippingDisplay,
			ShippingPending: res.Totals.ShippingPending,
			Total:           res.Totals.Total.Amount.String(),
			TotalDisplay:    res.Totals.Total.String(),
		},
	}
}
