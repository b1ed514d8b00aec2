package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestRouter(jwtService jwt.Service) *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))

		r.Get("/open", ok)

		r.Group(func(r chi.Router) {
			r.Use(AdminOnly)
			r.Get("/admin", ok)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminOrPartner)
			r.Get("/no-staff", ok)
		})
	})
	return r
}

func issueToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	token, _, err := jwtService.GenerateAccessToken("123e4567-e89b-12d3-a456-426614174000", role)
	require.NoError(t, err)
	return token
}

func doRequest(r http.Handler, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/open", ""))
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/open", "not-a-token"))

	// A token signed with another secret must be rejected.
	otherService := jwt.NewJWTService("some-other-secret", "1h")
	foreign := issueToken(t, otherService, user.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/open", foreign))

	valid := issueToken(t, jwtService, user.RoleStaff)
	assert.Equal(t, http.StatusOK, doRequest(router, "/open", valid))
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	assert.Equal(t, http.StatusOK, doRequest(router, "/admin", issueToken(t, jwtService, user.RoleAdmin)))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", issueToken(t, jwtService, user.RoleStaff)))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", issueToken(t, jwtService, user.RolePartner)))
}

func TestAdminOrPartner(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	assert.Equal(t, http.StatusOK, doRequest(router, "/no-staff", issueToken(t, jwtService, user.RoleAdmin)))
	assert.Equal(t, http.StatusOK, doRequest(router, "/no-staff", issueToken(t, jwtService, user.RolePartner)))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/no-staff", issueToken(t, jwtService, user.RoleStaff)))
}
