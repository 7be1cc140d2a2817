package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/pkg/logger"
	"github.com/proxidata/billing-service/pkg/res"
)

// ContextKey тип для ключей контекста во избежание коллизий.
type ContextKey string

const (
	// ContextUserKey ключ для хранения пользователя в контексте Gin.
	ContextUserKey ContextKey = "currentUser"
	authHeaderPrefix          = "Bearer "
)

// TokenClaims утверждения токена, выдаваемые сервисом идентификации.
// stripe_customer_id может отсутствовать: пользователь без привязки к биллингу.
type TokenClaims struct {
	UserEmail        string `json:"email"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator проверяет токен и возвращает его утверждения.
type TokenValidator interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// JWTMiddleware аутентифицирует запросы и кладет domain.User в контекст.
type JWTMiddleware struct {
	log       *logger.Logger
	validator TokenValidator
}

// NewJWTMiddleware создает middleware аутентификации
func NewJWTMiddleware(log *logger.Logger, validator TokenValidator) *JWTMiddleware {
	return &JWTMiddleware{
		log:       log,
		validator: validator,
	}
}

// RequireAuth проверяет JWT и резолвит аутентифицированного пользователя.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.handleAuthError(c, "Missing authorization token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, authHeaderPrefix)
		claims, err := m.validator.Validate(tokenString)
		if err != nil {
			m.handleAuthError(c, fmt.Sprintf("Token validation failed: %v", err))
			return
		}

		userID := claims.Subject
		if userID == "" {
			m.handleAuthError(c, "User ID (sub) missing in token")
			return
		}

		user := domain.User{
			ID:               userID,
			Email:            claims.UserEmail,
			StripeCustomerID: claims.StripeCustomerID,
		}

		c.Set(string(ContextUserKey), user)
		m.log.Debugw("User authenticated via HTTP", "userID", userID, "email", user.Email)
		c.Next()
	}
}

// CurrentUser извлекает аутентифицированного пользователя из контекста Gin.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(string(ContextUserKey))
	if !exists {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)
	return user, ok
}

func (m *JWTMiddleware) handleAuthError(c *gin.Context, message string) {
	m.log.Warnw("HTTP Authentication failed", "path", c.Request.URL.Path, "error", message)
	res.JsonResponse(c.Writer, res.ErrorResponse{
		Error:     message,
		ErrorCode: http.StatusUnauthorized,
	}, http.StatusUnauthorized)
	c.Abort()
}

// DefaultTokenValidator - реализация валидатора по умолчанию.
type DefaultTokenValidator struct {
	Secret []byte
}

// Validate проверяет подпись и срок действия токена.
func (v *DefaultTokenValidator) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.New("malformed token")
		} else if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		} else if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("token expired")
		} else {
			return nil, fmt.Errorf("invalid token: %w", err)
		}
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token claims")
}
