package role_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docmanpro/docman/internal/auth"
	"github.com/docmanpro/docman/internal/role"
)

var _ = Describe("Role Handler Integration", func() {
	var (
		repo    *mockRoleRepository
		handler *role.Handler

		superadmin *auth.Identity
		author     *auth.Identity
	)

	routerFor := func(identity *auth.Identity) *chi.Mux {
		router := chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
			})
		})
		router.Get("/roles", handler.List)
		router.Post("/roles", handler.Create)
		router.Delete("/roles/{roleId}", handler.Delete)
		return router
	}

	do := func(identity *auth.Identity, method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		w := httptest.NewRecorder()
		routerFor(identity).ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var payload map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
		return payload
	}

	BeforeEach(func() {
		repo = newMockRoleRepository()
		handler = role.NewHandler(role.NewService(repo, slog.Default()))

		superadmin = &auth.Identity{UserID: 1, RoleID: 1}
		author = &auth.Identity{UserID: 3, RoleID: 4}
	})

	Describe("GET /roles", func() {
		It("should return the bare role array to a superadmin", func() {
			w := do(superadmin, http.MethodGet, "/roles", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var roles []map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&roles)).To(Succeed())
			Expect(roles).To(HaveLen(4))
			Expect(roles[0]["title"]).To(Equal("superadmin"))
		})

		It("should answer 401 with the superadmin message for everyone else", func() {
			w := do(author, http.MethodGet, "/roles", "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("Access denied: SuperAdmin credentials required"))
		})
	})

	Describe("POST /roles", func() {
		It("should answer 201 with the creation message and the role", func() {
			w := do(superadmin, http.MethodPost, "/roles", `{"title":"reviewer"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			payload := decode(w)
			Expect(payload["message"]).To(Equal("New role successfully created"))
			created := payload["role"].(map[string]interface{})
			Expect(created["title"]).To(Equal("reviewer"))
		})

		It("should answer 400 with the uniqueness message for a duplicate", func() {
			w := do(superadmin, http.MethodPost, "/roles", `{"title":"editor"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).To(Equal("title must be unique"))
		})
	})

	Describe("DELETE /roles/{roleId}", func() {
		It("should answer 204 with no body", func() {
			created := decode(do(superadmin, http.MethodPost, "/roles", `{"title":"reviewer"}`))
			id := strconv.FormatInt(int64(created["role"].(map[string]interface{})["id"].(float64)), 10)

			w := do(superadmin, http.MethodDelete, "/roles/"+id, "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("should answer 404 for an unknown role regardless of rank", func() {
			w := do(author, http.MethodDelete, "/roles/9999", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["message"]).To(Equal("Role not found"))
		})

		It("should refuse to delete a seeded role", func() {
			w := do(superadmin, http.MethodDelete, "/roles/1", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
