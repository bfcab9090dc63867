package http

import (
	"net/http"

	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// checkout строит сообщение заказа и ссылку wa.me.
// Пустая корзина — 409: оформление прерывается до построения сообщения.
func (h *CheckoutHandler) checkout(w http.ResponseWriter, r *http.Request) {
	res, err := h.checkoutUsecase.Checkout(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CheckoutResponse{
		URL:     res.URL,
		Message: res.Message,
	})
}

// wholesaleLink отдает ссылку wa.me с запросом оптового каталога.
func (h *CheckoutHandler) wholesaleLink(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, &LinkResponse{URL: h.checkoutUsecase.WholesaleLink().URL})
}

// contactLink отдает прямую ссылку wa.me.
func (h *CheckoutHandler) contactLink(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, &LinkResponse{URL: h.checkoutUsecase.ContactLink().URL})
}
