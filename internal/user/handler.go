package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/docmanpro/docman/internal/auth"
	"github.com/docmanpro/docman/internal/pagination"
	"github.com/docmanpro/docman/internal/transport"
)

type ServiceAPI interface {
	Signup(dto SignupDTO) (*User, string, error)
	Get(id int64) (*User, error)
	List(identity *auth.Identity, w pagination.Window) ([]*User, pagination.PageData, error)
	Search(w pagination.Window) ([]*User, pagination.PageData, error)
	Update(identity *auth.Identity, id int64, dto UpdateUserDTO) (*User, error)
	Delete(identity *auth.Identity, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

// Signup is the only unauthenticated write endpoint; the created account
// gets a token right away so clients do not have to log in separately.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, token, err := h.Service.Signup(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User successfully created",
		"user":    created,
		"token":   token,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	found, err := h.Service.Get(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, found)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	window, err := pagination.ParseWindow(
		r.URL.Query().Get("limit"),
		r.URL.Query().Get("offset"),
		r.URL.Query().Get("query"),
	)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	users, pageData, err := h.Service.List(identity, window)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users":    users,
		"pageData": pageData,
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	window, err := pagination.ParseWindow(
		r.URL.Query().Get("limit"),
		r.URL.Query().Get("offset"),
		r.URL.Query().Get("query"),
	)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	users, pageData, err := h.Service.Search(window)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users":    users,
		"pageData": pageData,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(identity, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": updated,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.Delete(identity, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}
