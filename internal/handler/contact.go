package handler

import (
	"net/http"

	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.contactService.ContactPage(ctx, middleware.TenantSlug(c), middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}
	page.CSRF = middleware.CSRFToken(c)

	return c.Render(http.StatusOK, view.PageContact, page)
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	page, err := h.contactService.Submit(ctx, middleware.TenantSlug(c), middleware.UserID(c), form)
	if err != nil {
		return pageError(err)
	}
	page.CSRF = middleware.CSRFToken(c)

	return c.Render(http.StatusOK, view.PageContact, page)
}
