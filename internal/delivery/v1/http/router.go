package http

import (
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC,
	checkoutUC usecase.CheckoutUC, catalogSource string) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, catalogSource, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		checkoutHandler := NewCheckoutHandler(checkoutUC, r.logger)
		registerCartRoutes(v1, cartHandler, checkoutHandler)

		registerLinkRoutes(v1, checkoutHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/products", h.listProducts)
	router.Get("/categories", h.listCategories)
}

func registerCartRoutes(router chi.Router, h *CartHandler, ch *CheckoutHandler) {
	router.Route("/carts", func(cr chi.Router) {
		cr.Post("/", h.createCart)
		cr.Route("/{cartID}", func(one chi.Router) {
			one.Get("/", h.getCart)
			one.Delete("/", h.deleteCart)
			one.Post("/items", h.addItem)
			one.Delete("/items/{productID}", h.removeItem)
			one.Put("/delivery", h.setDelivery)
			one.Post("/checkout", ch.checkout)
		})
	})
}

func registerLinkRoutes(router chi.Router, ch *CheckoutHandler) {
	router.Route("/links", func(lr chi.Router) {
		lr.Get("/wholesale", ch.wholesaleLink)
		lr.Get("/contact", ch.contactLink)
	})
}
