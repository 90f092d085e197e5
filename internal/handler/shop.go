package handler

import (
	"net/http"
	"net/url"
	"strings"

	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	shopService service.ShopService
	baseURL     string
}

func NewShopHandler(shopService service.ShopService, baseURL string) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
		baseURL:     baseURL,
	}
}

// Home serves the shop front page, or the list of shops on the root site.
func (h *ShopHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	slug := middleware.TenantSlug(c)
	if slug == "" {
		page, err := h.shopService.Landing(ctx, userID)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, view.PageLanding, page)
	}

	query := strings.TrimSpace(c.QueryParam("q"))
	page, err := h.shopService.Home(ctx, slug, query, userID)
	if err != nil {
		return pageError(err)
	}

	return c.Render(http.StatusOK, view.PageHome, page)
}

func (h *ShopHandler) Product(c echo.Context) error {
	ctx := c.Request().Context()

	slug, err := tenantFromContext(c, h.baseURL)
	if slug == "" {
		return err
	}

	page, err := h.shopService.ProductDetail(ctx, slug, c.Param("id"), middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}

	return c.Render(http.StatusOK, view.PageProduct, page)
}

func (h *ShopHandler) Category(c echo.Context) error {
	ctx := c.Request().Context()

	slug, err := tenantFromContext(c, h.baseURL)
	if slug == "" {
		return err
	}

	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	page, err := h.shopService.Category(ctx, slug, name, middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}

	return c.Render(http.StatusOK, view.PageCategory, page)
}
