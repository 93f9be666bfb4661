package auth

import (
	"encoding/json"
	"net/http"

	"github.com/docmanpro/docman/internal"
	"github.com/docmanpro/docman/internal/transport"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (string, *Identity, error)
	Resolve(credential string) (*Identity, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, identity, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "username", dto.Username)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("user signed in", "user_id", identity.UserID, "role_id", identity.RoleID)

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout is stateless; tokens simply expire. The endpoint exists so clients
// have a uniform place to end a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// Middleware resolves the x-access-token header into an Identity and stores
// it in the request context. A missing token answers 401, a token that fails
// verification answers 403.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential := r.Header.Get("x-access-token")

		identity, err := h.Service.Resolve(credential)
		if err != nil {
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteError(w, appErr.StatusCode, appErr.Message)
				return
			}
			h.WriteError(w, http.StatusForbidden, internal.ErrTokenAuthFailed.Message)
			return
		}

		ctx := ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
