package document_test

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
	"github.com/docmanpro/docman/internal/document"
)

// jsonNumberString renders a decoded JSON number as a path segment.
func jsonNumberString(v interface{}) string {
	return strconv.FormatInt(int64(v.(float64)), 10)
}

// routerFor mounts the handler the way the real router does, with the given
// identity already resolved into the request context.
func routerFor(handler *document.Handler, identity *auth.Identity) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	})
	router.Post("/documents", handler.Create)
	router.Get("/documents", handler.List)
	router.Get("/documents/{documentId}", handler.Get)
	router.Put("/documents/{documentId}", handler.Update)
	router.Delete("/documents/{documentId}", handler.Delete)
	router.Get("/users/{userId}/documents", handler.ListForUser)
	router.Get("/search/documents", handler.Search)
	return router
}

var _ = Describe("Document Handler Integration", func() {
	var (
		repo    *mockDocumentRepository
		users   *mockUserFinder
		handler *document.Handler

		author   *auth.Identity
		outsider *auth.Identity
	)

	do := func(identity *auth.Identity, method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		w := httptest.NewRecorder()
		routerFor(handler, identity).ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var payload map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
		return payload
	}

	BeforeEach(func() {
		repo = newMockDocumentRepository()
		users = &mockUserFinder{userIDs: map[int64]bool{10: true, 12: true}}
		handler = document.NewHandler(document.NewService(repo, users, slog.Default()))

		author = &auth.Identity{UserID: 10, RoleID: 3}
		outsider = &auth.Identity{UserID: 12, RoleID: 4}
	})

	Describe("POST /documents", func() {
		It("should answer 201 with the creation message and the document", func() {
			w := do(author, http.MethodPost, "/documents", `{"title":"Wire Title","content":"body"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			payload := decode(w)
			Expect(payload["message"]).To(Equal("New document was successfully created"))
			doc := payload["document"].(map[string]interface{})
			Expect(doc["title"]).To(Equal("Wire Title"))
			Expect(doc["userId"]).To(Equal(float64(10)))
			Expect(doc["ownerRoleId"]).To(Equal(float64(3)))
		})

		It("should answer 400 with the duplicate-title message", func() {
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Wire Title","content":"body"}`).Code).To(Equal(http.StatusCreated))

			w := do(outsider, http.MethodPost, "/documents", `{"title":"Wire Title","content":"body"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).To(Equal("Title already exist"))
		})
	})

	Describe("GET /documents/{documentId}", func() {
		var privateID string

		BeforeEach(func() {
			w := do(author, http.MethodPost, "/documents", `{"title":"Private Wire","content":"body","access":"private"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			doc := decode(w)["document"].(map[string]interface{})
			privateID = jsonNumberString(doc["id"])
		})

		It("should return the document body directly to the owner", func() {
			w := do(author, http.MethodGet, "/documents/"+privateID, "")
			Expect(w.Code).To(Equal(http.StatusOK))

			payload := decode(w)
			Expect(payload["title"]).To(Equal("Private Wire"))
			Expect(payload).To(HaveKey("ownerRoleId"))
		})

		It("should answer 401 with the access message for a hidden document", func() {
			w := do(outsider, http.MethodGet, "/documents/"+privateID, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("You are not permitted to access this document"))
		})

		It("should answer 404 before permission for an absent document", func() {
			w := do(outsider, http.MethodGet, "/documents/9999", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["message"]).To(Equal("Document not found"))
		})

		It("should echo non-numeric ids the way the database reports them", func() {
			w := do(author, http.MethodGet, "/documents/abc", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).To(Equal(`invalid input syntax for integer: "abc"`))
		})

		It("should answer 400 for ids beyond the integer column range", func() {
			w := do(author, http.MethodGet, "/documents/9223372036854775807", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).To(Equal(`value "9223372036854775807" is out of range for type integer`))
		})
	})

	Describe("GET /documents", func() {
		BeforeEach(func() {
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Listed Public","content":"body"}`).Code).To(Equal(http.StatusCreated))
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Listed Private","content":"body","access":"private"}`).Code).To(Equal(http.StatusCreated))
		})

		It("should return documents and exactly four pageData keys", func() {
			w := do(outsider, http.MethodGet, "/documents", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			payload := decode(w)
			docs := payload["documents"].([]interface{})
			Expect(docs).To(HaveLen(1))

			pageData := payload["pageData"].(map[string]interface{})
			Expect(pageData).To(HaveLen(4))
			Expect(pageData).To(HaveKey("count"))
			Expect(pageData).To(HaveKey("pageSize"))
			Expect(pageData).To(HaveKey("pageNumber"))
			Expect(pageData).To(HaveKey("totalPages"))
		})

		It("should surface bad pagination input as 400", func() {
			w := do(author, http.MethodGet, "/documents?limit=9223372036854775807", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).To(Equal(`value "9223372036854775807" is out of range for type integer`))
		})
	})

	Describe("GET /users/{userId}/documents", func() {
		It("should answer with the found message and page metadata", func() {
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Owned","content":"body"}`).Code).To(Equal(http.StatusCreated))

			w := do(outsider, http.MethodGet, "/users/10/documents", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			payload := decode(w)
			Expect(payload["message"]).To(Equal("Documents found"))
			Expect(payload).To(HaveKey("documents"))
			Expect(payload).To(HaveKey("pageData"))
		})

		It("should answer 404 for an unknown user", func() {
			w := do(author, http.MethodGet, "/users/404/documents", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["message"]).To(Equal("User not found"))
		})
	})

	Describe("PUT /documents/{documentId}", func() {
		var docID string

		BeforeEach(func() {
			w := do(author, http.MethodPost, "/documents", `{"title":"Editable","content":"body"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			docID = jsonNumberString(decode(w)["document"].(map[string]interface{})["id"])
		})

		It("should return the updated document to the owner", func() {
			w := do(author, http.MethodPut, "/documents/"+docID, `{"content":"revised"}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			doc := decode(w)["document"].(map[string]interface{})
			Expect(doc["content"]).To(Equal("revised"))
		})

		It("should answer 401 with the edit message for non-owners", func() {
			w := do(outsider, http.MethodPut, "/documents/"+docID, `{"content":"hijacked"}`)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("You are not permitted to edit this document"))
		})
	})

	Describe("DELETE /documents/{documentId}", func() {
		var docID string

		BeforeEach(func() {
			w := do(author, http.MethodPost, "/documents", `{"title":"Disposable","content":"body"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			docID = jsonNumberString(decode(w)["document"].(map[string]interface{})["id"])
		})

		It("should answer with the deletion message", func() {
			w := do(author, http.MethodDelete, "/documents/"+docID, "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["message"]).To(Equal("Deleted successfully"))
		})

		It("should answer 401 with the delete message for non-owners", func() {
			w := do(outsider, http.MethodDelete, "/documents/"+docID, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("You are not permitted to delete this document"))
		})
	})

	Describe("GET /search/documents", func() {
		It("should run the listing pipeline with the query applied", func() {
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Searchable","content":"body"}`).Code).To(Equal(http.StatusCreated))
			Expect(do(author, http.MethodPost, "/documents", `{"title":"Other","content":"body"}`).Code).To(Equal(http.StatusCreated))

			w := do(outsider, http.MethodGet, "/search/documents?query=search", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			docs := decode(w)["documents"].([]interface{})
			Expect(docs).To(HaveLen(1))
		})
	})
})
