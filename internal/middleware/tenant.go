package middleware

import (
	"tenant-storefront/internal/tenant"

	"github.com/labstack/echo/v4"
)

const tenantKey = "tenant"

// Tenant stores the shop slug derived from the Host header. Whether the shop exists is decided
// by the handlers.
func Tenant(resolver *tenant.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slug, ok := resolver.Resolve(c.Request().Host); ok {
				c.Set(tenantKey, slug)
			}
			return next(c)
		}
	}
}

// TenantSlug returns the current shop slug, or "" on the root site.
func TenantSlug(c echo.Context) string {
	slug, _ := c.Get(tenantKey).(string)
	return slug
}
