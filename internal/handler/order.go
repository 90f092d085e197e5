package handler

import (
	"net/http"

	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
	baseURL      string
}

func NewOrderHandler(orderService service.OrderService, baseURL string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		baseURL:      baseURL,
	}
}

func (h *OrderHandler) Form(c echo.Context) error {
	ctx := c.Request().Context()

	slug, err := tenantFromContext(c, h.baseURL)
	if slug == "" {
		return err
	}

	page, err := h.orderService.OrderForm(ctx, slug, c.Param("id"), middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}
	page.CSRF = middleware.CSRFToken(c)

	return c.Render(http.StatusOK, view.PageOrderForm, page)
}

// Place stores the order and redirects to its confirmation. Invalid input re-renders the form.
func (h *OrderHandler) Place(c echo.Context) error {
	ctx := c.Request().Context()

	slug, err := tenantFromContext(c, h.baseURL)
	if slug == "" {
		return err
	}

	var form dto.OrderForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	page, err := h.orderService.PlaceOrder(ctx, slug, c.Param("id"), middleware.UserID(c), form)
	if err != nil {
		return pageError(err)
	}

	if page.Success {
		return c.Redirect(http.StatusSeeOther, "/order/"+page.OrderID+"/confirmation")
	}
	page.CSRF = middleware.CSRFToken(c)

	return c.Render(http.StatusOK, view.PageOrderForm, page)
}

func (h *OrderHandler) Confirmation(c echo.Context) error {
	ctx := c.Request().Context()

	slug, err := tenantFromContext(c, h.baseURL)
	if slug == "" {
		return err
	}

	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}

	page, err := h.orderService.Confirmation(ctx, slug, orderID, middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}

	return c.Render(http.StatusOK, view.PageConfirmation, page)
}
