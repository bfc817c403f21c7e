package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/matematicodogreen/mhdelivery/internal/cart"
	"github.com/matematicodogreen/mhdelivery/internal/catalog"
	"github.com/matematicodogreen/mhdelivery/internal/checkout"
	"github.com/matematicodogreen/mhdelivery/internal/notice"
)

// StoreHandler serves the customer-facing surface: catalog browsing, the
// cart and checkout.
type StoreHandler struct {
	Catalog  *catalog.Store
	Cart     *cart.Cart
	Checkout *checkout.Service
}

func (h *StoreHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Put("/cart/items/{id}", h.updateItem)
	r.Delete("/cart/items/{id}", h.removeItem)
	r.Delete("/cart", h.clearCart)

	r.Post("/checkout", h.finishOrder)
}

func (h *StoreHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	f := catalog.Filters{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	writeJSON(w, http.StatusOK, h.Catalog.Filter(f))
}

func (h *StoreHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *StoreHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories())
}

type cartResp struct {
	Items      []cart.Line     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Notice     *notice.Notice  `json:"notice,omitempty"`
}

func (h *StoreHandler) cartState(n notice.Notice) cartResp {
	resp := cartResp{
		Items:      h.Cart.Lines(),
		TotalItems: h.Cart.GetTotalItems(),
		TotalPrice: h.Cart.GetTotalPrice(),
	}
	if n != (notice.Notice{}) {
		resp.Notice = &n
	}
	return resp
}

func (h *StoreHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartState(notice.Notice{}))
}

func (h *StoreHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	n, err := h.Cart.AddToCart(r.Context(), req.ProductID, req.Quantity)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartState(n))
}

func (h *StoreHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	n, err := h.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartState(n))
}

func (h *StoreHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	n, err := h.Cart.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartState(n))
}

func (h *StoreHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.ClearCart(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartState(notice.Notice{}))
}

func (h *StoreHandler) finishOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	res, err := h.Checkout.Finish(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if res.Notice.Destructive {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
