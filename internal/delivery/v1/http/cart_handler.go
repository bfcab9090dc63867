package http

import (
	"encoding/json"
	"net/http"

	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type setDeliveryRequest struct {
	Mode string `json:"mode"`
}

// createCart создает пустую корзину сессии.
func (h *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUsecase.CreateCart(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartResponse(res))
}

// getCart возвращает корзину с пересчитанными итогами.
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUsecase.GetCart(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// deleteCart удаляет корзину, завершая сессию досрочно.
func (h *CartHandler) deleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUsecase.DeleteCart(r.Context(), chi.URLParam(r, "cartID")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addItem добавляет единицу товара в корзину.
// Неизвестный товар не является ошибкой: корзина возвращается без изменений.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.ProductID == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}

	res, err := h.cartUsecase.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ProductID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// removeItem удаляет позицию целиком независимо от количества.
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUsecase.RemoveItem(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// setDelivery переключает способ получения: pickup или shipping.
func (h *CartHandler) setDelivery(w http.ResponseWriter, r *http.Request) {
	var req setDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.cartUsecase.SetDeliveryMode(r.Context(), chi.URLParam(r, "cartID"), req.Mode)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}
