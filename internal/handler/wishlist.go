package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
	loginURL        string
	logger          *slog.Logger
}

func NewWishlistHandler(wishlistService service.WishlistService, loginURL string, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		loginURL:        loginURL,
		logger:          logger,
	}
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		next := c.Request().Referer()
		if next == "" {
			next = "/"
		}
		return c.JSON(http.StatusUnauthorized, dto.WishlistToggleResponse{
			Error:    "Please sign in to save items",
			Redirect: loginRedirect(h.loginURL, next),
		})
	}

	productID := c.Param("id")
	added, err := h.wishlistService.Toggle(ctx, userID, productID)
	if errors.Is(err, service.ErrProductNotFound) {
		return c.JSON(http.StatusNotFound, dto.WishlistToggleResponse{Error: "Product not found"})
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "wishlist toggle failed", "user_id", userID, "product_id", productID, "error", err)
		return c.JSON(http.StatusInternalServerError, dto.WishlistToggleResponse{Error: "Could not update wishlist"})
	}

	resp := dto.WishlistToggleResponse{Success: true, Action: "removed", Message: "Removed from wishlist"}
	if added {
		resp.Action = "added"
		resp.Message = "Added to wishlist"
	}
	return c.JSON(http.StatusOK, resp)
}

// Status never fails; anonymous users simply have nothing saved.
func (h *WishlistHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	in := h.wishlistService.Contains(ctx, middleware.UserID(c), c.Param("id"))
	return c.JSON(http.StatusOK, dto.WishlistStatusResponse{InWishlist: in})
}
