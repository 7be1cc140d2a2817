package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/pkg/logger"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims TokenClaims, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newAuthRouter(t *testing.T) (*gin.Engine, *domain.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured domain.User
	m := NewJWTMiddleware(logger.New(logger.FATAL), &DefaultTokenValidator{Secret: testSecret})

	r := gin.New()
	r.GET("/customer", m.RequireAuth(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		captured = user
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestRequireAuthValidToken(t *testing.T) {
	r, captured := newAuthRouter(t)

	tokenString := signToken(t, TokenClaims{
		UserEmail:        "user@example.com",
		StripeCustomerID: "cus_123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.ID)
	assert.Equal(t, "user@example.com", captured.Email)
	assert.Equal(t, "cus_123", captured.StripeCustomerID)
}

func TestRequireAuthTokenWithoutBillingLink(t *testing.T) {
	r, captured := newAuthRouter(t)

	// Токен без stripe_customer_id: пользователь никогда не привязывался к биллингу
	tokenString := signToken(t, TokenClaims{
		UserEmail: "new@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, captured.HasBillingAccount())
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	r, _ := newAuthRouter(t)

	tokenString := signToken(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte("wrong-secret"))

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	tokenString := signToken(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMissingSubject(t *testing.T) {
	r, _ := newAuthRouter(t)

	tokenString := signToken(t, TokenClaims{
		UserEmail: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
