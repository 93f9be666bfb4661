package role

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/docmanpro/docman/internal/auth"
	"github.com/docmanpro/docman/internal/pagination"
	"github.com/docmanpro/docman/internal/transport"
)

type ServiceAPI interface {
	List(identity *auth.Identity) ([]*Role, error)
	Create(identity *auth.Identity, dto CreateRoleDTO) (*Role, error)
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	roles, err := h.Service.List(identity)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, roles)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.Create(identity, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "New role successfully created",
		"role":    role,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "roleId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.Delete(identity, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusNoContent, nil)
}
