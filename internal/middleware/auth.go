package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/response"
)

const scopeKey = "scope"

type scopeCtxKey struct{}

var errMissingSubject = errors.New("token has no subject")

// Auth verifies the bearer token and stores the caller Scope. When no
// secret is configured every request passes with an empty Scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.jwtSecret) == 0 {
			c.Next()
			return
		}

		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), scopeCtxKey{}, sc))
		c.Next()
	}
}

func (m Middleware) verify(token string) (model.Scope, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return model.Scope{}, err
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return model.Scope{}, err
	}
	if sub == "" {
		return model.Scope{}, errMissingSubject
	}
	return model.Scope{UserID: sub}, nil
}

// GetScope returns the Scope stored by Auth.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
