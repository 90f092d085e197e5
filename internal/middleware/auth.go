package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"tenant-storefront/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// Auth identifies the buyer from the session cookie issued by the auth provider. The cookie is
// an HS256 JWT whose subject is the user id. Requests without a valid cookie continue anonymously.
func Auth(cfg config.Session, logger *slog.Logger) echo.MiddlewareFunc {
	secret := []byte(cfg.Secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(secret) == 0 {
				return next(c)
			}

			cookie, err := c.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			token, err := parser.Parse(cookie.Value, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil {
				if !errors.Is(err, jwt.ErrTokenExpired) {
					logger.DebugContext(c.Request().Context(), "rejected session cookie", "error", err)
				}
				return next(c)
			}

			if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
				c.Set(userIDKey, sub)
			}
			return next(c)
		}
	}
}

// RequireUser redirects anonymous requests to the login page, remembering where they came from.
func RequireUser(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserID(c) == "" {
				target := loginURL + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}

// UserID returns the identified user, or "" for anonymous requests.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
