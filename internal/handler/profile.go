package handler

import (
	"net/http"

	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Profile expects middleware.RequireUser in front of it.
func (h *ProfileHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.profileService.Profile(ctx, middleware.TenantSlug(c), middleware.UserID(c))
	if err != nil {
		return pageError(err)
	}

	return c.Render(http.StatusOK, view.PageProfile, page)
}
