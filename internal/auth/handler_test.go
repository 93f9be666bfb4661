package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/docmanpro/docman/internal/auth"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		tokens  *auth.JWTTokenGenerator
		handler *auth.Handler
	)

	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var payload map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
		return payload
	}

	protected := func() http.Handler {
		return handler.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			Expect(ok).To(BeTrue())
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(identity)
		}))
	}

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		store := &mockCredentialStore{
			userID:   7,
			roleID:   3,
			hash:     string(hash),
			username: "writer",
		}
		tokens = auth.NewJWTTokenGenerator("test-secret-key-that-is-long-enough", time.Hour)
		handler = auth.NewHandler(auth.NewService(store, tokens, bcrypt.MinCost))
	})

	Describe("POST /users/login", func() {
		It("should answer with a token on valid credentials", func() {
			req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"writer","password":"secretpass"}`))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			payload := decode(w)
			Expect(payload["message"]).To(Equal("Login successful"))
			Expect(payload["token"]).NotTo(BeEmpty())
		})

		It("should answer 401 on bad credentials", func() {
			req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"writer","password":"wrong"}`))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("Invalid login credentials"))
		})
	})

	Describe("POST /users/logout", func() {
		It("should always succeed", func() {
			req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
			w := httptest.NewRecorder()
			handler.Logout(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["message"]).To(Equal("Logout successful"))
		})
	})

	Describe("Middleware", func() {
		It("should pass a valid token through with the identity resolved", func() {
			token, err := tokens.GenerateToken(7, 3)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/documents", nil)
			req.Header.Set("x-access-token", token)
			w := httptest.NewRecorder()
			protected().ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			payload := decode(w)
			Expect(payload["userId"]).To(Equal(float64(7)))
			Expect(payload["roleId"]).To(Equal(float64(3)))
		})

		It("should answer 401 with the sign-in message when the header is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/documents", nil)
			w := httptest.NewRecorder()
			protected().ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["message"]).To(Equal("You are not signed in. Please sign in."))
		})

		It("should answer 403 with the verification message for a bad token", func() {
			req := httptest.NewRequest(http.MethodGet, "/documents", nil)
			req.Header.Set("x-access-token", "not.a.token")
			w := httptest.NewRecorder()
			protected().ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decode(w)["message"]).To(Equal("Token Authentication failed"))
		})
	})
})
