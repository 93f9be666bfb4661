package document

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/docmanpro/docman/internal/auth"
	"github.com/docmanpro/docman/internal/pagination"
	"github.com/docmanpro/docman/internal/transport"
)

type ServiceAPI interface {
	Create(identity *auth.Identity, dto CreateDocumentDTO) (*Document, error)
	Get(identity *auth.Identity, id int64) (*Document, error)
	List(identity *auth.Identity, w pagination.Window) ([]*Document, pagination.PageData, error)
	ListForUser(identity *auth.Identity, ownerID int64, w pagination.Window) ([]*Document, pagination.PageData, error)
	Update(identity *auth.Identity, id int64, dto UpdateDocumentDTO) (*Document, error)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Service.Create(identity, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "New document was successfully created",
		"document": doc,
	})
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

	docs, pageData, err := h.Service.List(identity, window)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"pageData":  pageData,
	})
}

// Search serves GET /search/documents. The same listing pipeline runs with
// the text predicate composed in; visibility rules are never relaxed.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.List(w, r)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "documentId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	doc, err := h.Service.Get(identity, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ownerID, err := pagination.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		h.HandleServiceError(w, err)
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

	docs, pageData, err := h.Service.ListForUser(identity, ownerID, window)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Documents found",
		"documents": docs,
		"pageData":  pageData,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "documentId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto UpdateDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Service.Update(identity, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"document": doc,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pagination.ParseID(chi.URLParam(r, "documentId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.Delete(identity, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Deleted successfully",
	})
}
