package handler

import (
	"errors"
	"net/http"
	"net/url"

	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// pageError turns service not-found sentinels into 404s. Anything else is left for the
// server's error handler.
func pageError(err error) error {
	switch {
	case errors.Is(err, service.ErrTenantNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Shop not found")
	case errors.Is(err, service.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	return err
}

// tenantFromContext returns the shop slug. Tenant routes hit on the root site are sent back to
// the root landing page.
func tenantFromContext(c echo.Context, baseURL string) (string, error) {
	slug := middleware.TenantSlug(c)
	if slug == "" {
		return "", c.Redirect(http.StatusFound, baseURL)
	}
	return slug, nil
}

func loginRedirect(loginURL, next string) string {
	return loginURL + "?next=" + url.QueryEscape(next)
}
