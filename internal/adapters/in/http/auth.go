package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const customerIDKey = "customerID"

// DefaultTokenTTL is used when the issuer is created with a non-positive ttl.
const DefaultTokenTTL = 24 * time.Hour

// TokenIssuer signs and verifies HS256 bearer tokens whose subject is a
// customer id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock kernel.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (i *TokenIssuer) Issue(customerID kernel.UUID) (string, error) {
	now := i.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   customerID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse returns the customer id of a valid token.
func (i *TokenIssuer) Parse(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: subject: %w", ErrUnauthorized, err)
	}
	return id, nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header
// and stores the customer id in the echo context.
func (i *TokenIssuer) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			customerID, err := i.Parse(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			c.Set(customerIDKey, customerID)
			return next(c)
		}
	}
}

func currentCustomer(c echo.Context) (kernel.UUID, error) {
	id, ok := c.Get(customerIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, ErrUnauthorized
	}
	return id, nil
}
