package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/config"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/handler"
	appmiddleware "tenant-storefront/internal/middleware"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/tenant"
	"tenant-storefront/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Server struct {
	echo            *echo.Echo
	cfg             *config.Config
	logger          *slog.Logger
	shopHandler     *handler.ShopHandler
	orderHandler    *handler.OrderHandler
	profileHandler  *handler.ProfileHandler
	contactHandler  *handler.ContactHandler
	wishlistHandler *handler.WishlistHandler
}

func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	renderer echo.Renderer,
	shopService service.ShopService,
	orderService service.OrderService,
	profileService service.ProfileService,
	contactService service.ContactService,
	wishlistService service.WishlistService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	s := &Server{
		echo:            e,
		cfg:             cfg,
		logger:          logger,
		shopHandler:     handler.NewShopHandler(shopService, cfg.BaseURL),
		orderHandler:    handler.NewOrderHandler(orderService, cfg.BaseURL),
		profileHandler:  handler.NewProfileHandler(profileService),
		contactHandler:  handler.NewContactHandler(contactService),
		wishlistHandler: handler.NewWishlistHandler(wishlistService, cfg.Session.LoginURL, logger),
	}

	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogHost:     true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("host", v.Host),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(appmiddleware.Tenant(tenant.NewResolver(cfg.Tenant)))
	e.Use(appmiddleware.Auth(cfg.Session, logger))

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	limit := s.postLimiter()
	requireUser := appmiddleware.RequireUser(s.cfg.Session.LoginURL)
	csrf := appmiddleware.CSRF(strings.HasPrefix(s.cfg.BaseURL, "https://"))

	api := s.echo.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.echo.GET("/", s.shopHandler.Home)
	s.echo.GET("/product/:id", s.shopHandler.Product)
	s.echo.GET("/category/:name", s.shopHandler.Category)

	// -------- orders --------
	s.echo.GET("/product/:id/order", s.orderHandler.Form, csrf)
	s.echo.POST("/product/:id/order", s.orderHandler.Place, limit, csrf, requireUser)
	s.echo.GET("/order/:id/confirmation", s.orderHandler.Confirmation)

	s.echo.GET("/profile", s.profileHandler.Profile, requireUser)

	s.echo.GET("/contact", s.contactHandler.Show, csrf)
	s.echo.POST("/contact", s.contactHandler.Submit, limit, csrf)

	// -------- wishlist (json, no form token) --------
	wishlist := s.echo.Group("/wishlist")
	wishlist.POST("/toggle/:id", s.wishlistHandler.Toggle, limit)
	wishlist.GET("/status/:id", s.wishlistHandler.Status)
}

// postLimiter throttles form submissions per client IP.
func (s *Server) postLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(s.cfg.RateLimit.PerSecond),
		Burst:     s.cfg.RateLimit.Burst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
		},
	})
}

// handleError renders the error page shell, or JSON for API and wishlist calls.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
			message = m
		}
	}
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = "The page you are looking for does not exist."
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"uri", c.Request().RequestURI, "tenant", appmiddleware.TenantSlug(c), "error", err)
	}

	var respErr error
	switch {
	case c.Request().Method == http.MethodHead:
		respErr = c.NoContent(code)
	case wantsJSON(c):
		respErr = c.JSON(code, map[string]string{"error": message})
	default:
		page := &dto.ErrorPage{
			Page:    dto.Page{Theme: component.DefaultTheme()},
			Code:    code,
			Message: message,
		}
		if respErr = c.Render(code, view.PageError, page); respErr != nil {
			respErr = c.String(code, message)
		}
	}
	if respErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "could not write error response", "error", respErr)
	}
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/wishlist/") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}
