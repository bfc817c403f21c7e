package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matematicodogreen/mhdelivery/internal/auth"
	"github.com/matematicodogreen/mhdelivery/internal/catalog"
	"github.com/matematicodogreen/mhdelivery/internal/notice"
)

// AdminHandler serves the management surface: login plus CRUD over
// products, settings and delivery zones. All mutating routes require a
// session token from /admin/login.
type AdminHandler struct {
	Catalog  *catalog.Store
	Verifier *auth.Verifier
	Sessions *auth.Sessions
}

func (h *AdminHandler) Register(r *chi.Mux) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Post("/logout", h.logout)

			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)

			r.Post("/products", h.addProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)

			r.Post("/zones", h.addZone)
			r.Put("/zones/{id}", h.updateZone)
			r.Delete("/zones/{id}", h.deleteZone)
		})
	})
}

func (h *AdminHandler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || !h.Sessions.Valid(token) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ok, err := h.Verifier.Verify(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrCredentialsUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"notice": notice.Warn("Erro ao tentar fazer login", "Arquivo de credenciais não encontrado."),
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"notice": notice.Warn("Falha no Login", "Usuário ou senha incorretos."),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":  h.Sessions.Issue(),
		"notice": notice.Info("Login bem-sucedido!", "Redirecionando para o painel administrativo..."),
	})
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	h.Sessions.Revoke(token)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Settings())
}

func (h *AdminHandler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch catalog.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	st, err := h.Catalog.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"settings": st,
		"notice":   notice.Info("Configurações atualizadas!", "As configurações foram salvas com sucesso"),
	})
}

func (h *AdminHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, err := h.Catalog.AddProduct(r.Context(), in)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"product": p,
		"notice":  notice.Info("Produto adicionado!", fmt.Sprintf("%s foi adicionado com sucesso", p.Name)),
	})
}

func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, err := h.Catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), in)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product": p,
		"notice":  notice.Info("Produto atualizado!", "As informações do produto foram atualizadas"),
	})
}

func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notice": notice.Info("Produto removido", fmt.Sprintf("%s foi removido do catálogo", p.Name)),
	})
}

func (h *AdminHandler) addZone(w http.ResponseWriter, r *http.Request) {
	var in catalog.ZoneInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	z, err := h.Catalog.AddDeliveryZone(r.Context(), in)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"zone":   z,
		"notice": notice.Info("Zona de entrega adicionada!", ""),
	})
}

func (h *AdminHandler) updateZone(w http.ResponseWriter, r *http.Request) {
	var in catalog.ZoneInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	z, err := h.Catalog.UpdateDeliveryZone(r.Context(), chi.URLParam(r, "id"), in)
	if errors.Is(err, catalog.ErrZoneNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"zone":   z,
		"notice": notice.Info("Zona de entrega atualizada!", ""),
	})
}

func (h *AdminHandler) deleteZone(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.DeleteDeliveryZone(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrZoneNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notice": notice.Info("Zona de entrega removida!", ""),
	})
}
