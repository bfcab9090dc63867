package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	catalogSource  string
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, catalogSource string, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		catalogSource:  catalogSource,
		logger:         logger,
	}
}

// listProducts отдает отфильтрованную витрину.
// Параметры: query (подстрока), category (точное совпадение), sort (featured|price-asc|price-desc).
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := usecase.NewListProductsReq(q.Get("query"), q.Get("category"), q.Get("sort"))

	res, err := h.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		if errors.Is(err, e.ErrCatalogUnavailable) {
			// Явное состояние ошибки с именем источника, как в оригинальной витрине
			WriteErrorMessage(w, http.StatusServiceUnavailable,
				fmt.Sprintf("no se pudo cargar el catálogo (%s): verifica que el archivo exista y su contenido sea JSON válido", h.catalogSource))
			return
		}

		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toListProductsResponse(res))
}

// listCategories отдает официальный порядок меню категорий.
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalogUsecase.Categories(r.Context()),
	})
}
