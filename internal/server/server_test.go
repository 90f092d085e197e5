package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tenant-storefront/internal/config"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShop struct{}

func (stubShop) Landing(context.Context, string) (*dto.LandingPage, error) {
	return &dto.LandingPage{}, nil
}

func (stubShop) Home(_ context.Context, slug, _, _ string) (*dto.HomePage, error) {
	if slug == "ghost" {
		return nil, service.ErrTenantNotFound
	}
	return &dto.HomePage{}, nil
}

func (stubShop) ProductDetail(context.Context, string, string, string) (*dto.ProductPage, error) {
	return nil, service.ErrProductNotFound
}

func (stubShop) Category(_ context.Context, _, name, _ string) (*dto.CategoryPage, error) {
	return &dto.CategoryPage{CategoryName: name}, nil
}

type stubOrder struct {
	placed bool
}

func (*stubOrder) OrderForm(context.Context, string, string, string) (*dto.OrderFormPage, error) {
	return &dto.OrderFormPage{}, nil
}

func (o *stubOrder) PlaceOrder(context.Context, string, string, string, dto.OrderForm) (*dto.OrderFormPage, error) {
	o.placed = true
	return &dto.OrderFormPage{Success: true, OrderID: "o1"}, nil
}

func (*stubOrder) Confirmation(context.Context, string, string, string) (*dto.ConfirmationPage, error) {
	return nil, service.ErrOrderNotFound
}

type stubProfile struct{}

func (stubProfile) Profile(context.Context, string, string) (*dto.ProfilePage, error) {
	return &dto.ProfilePage{}, nil
}

type stubContact struct{}

func (stubContact) ContactPage(context.Context, string, string) (*dto.ContactPage, error) {
	return &dto.ContactPage{}, nil
}

func (stubContact) Submit(context.Context, string, string, dto.ContactForm) (*dto.ContactPage, error) {
	return &dto.ContactPage{Sent: true}, nil
}

type stubWishlist struct{}

func (stubWishlist) Toggle(context.Context, string, string) (bool, error) { return true, nil }

func (stubWishlist) Contains(context.Context, string, string) bool { return false }

const testSessionSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWithOrders(t, &stubOrder{})
}

func newTestServerWithOrders(t *testing.T, orders *stubOrder) *Server {
	t.Helper()
	cfg := &config.Config{
		BaseURL: "http://localhost:8080",
		Tenant:  config.Tenant{PrimaryDomain: "example.com", AllowLocalSubdomains: true, LocalSuffix: "localhost"},
		Session: config.Session{Secret: testSessionSecret, CookieName: "session", LoginURL: "/login/"},
		RateLimit: config.RateLimit{
			PerSecond: 0.001,
			Burst:     1,
		},
	}

	renderer, err := view.New(view.Options{BaseURL: cfg.BaseURL, LoginURL: cfg.Session.LoginURL})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg, logger, renderer, stubShop{}, orders, stubProfile{}, stubContact{}, stubWishlist{})
}

func do(s *Server, method, host, target string, body url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		r = strings.NewReader(body.Encode())
	}
	req := httptest.NewRequest(method, target, r)
	req.Host = host
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: "session", Value: token}
}

// formToken loads a form page and returns the token cookie it issued.
func formToken(t *testing.T, s *Server, host, target string) *http.Cookie {
	t.Helper()
	rec := do(s, http.MethodGet, host, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			assert.Contains(t, rec.Body.String(), `name="csrf" value="`+c.Value+`"`)
			return c
		}
	}
	t.Fatalf("no form token cookie issued by %s", target)
	return nil
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "localhost:8080", "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_RootLanding(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "example.com", "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Discover shops")
}

func TestServer_UnknownTenantRendersErrorPage(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "ghost.example.com", "/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shop not found")
	assert.Contains(t, rec.Body.String(), "</html>")
}

func TestServer_NotFoundJSONForAPI(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "localhost", "/api/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"The page you are looking for does not exist."}`, rec.Body.String())
}

func TestServer_TenantRouteOnRootRedirects(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "example.com", "/category/Shoes", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:8080", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_ProfileRequiresUser(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "acme.localhost", "/profile", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fprofile", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_WishlistToggleAnonymous(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "acme.localhost", "/wishlist/toggle/p1", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login/?next=%2F"`)
}

func TestServer_ContactPostIsRateLimited(t *testing.T) {
	s := newTestServer(t)
	token := formToken(t, s, "acme.localhost", "/contact")
	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "message": {"Hi"}, "csrf": {token.Value}}

	first := do(s, http.MethodPost, "acme.localhost", "/contact", form, token)
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(s, http.MethodPost, "acme.localhost", "/contact", form, token)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "Too many requests")
}

func TestServer_OrderPostWithoutFormTokenIsForbidden(t *testing.T) {
	orders := &stubOrder{}
	s := newTestServerWithOrders(t, orders)
	form := url.Values{"order_type": {"FULL"}, "phone": {"0700000000"}}

	rec := do(s, http.MethodPost, "acme.example.com", "/product/p1/order", form, sessionCookie(t, "victim"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, orders.placed)
}

func TestServer_OrderPostWithForeignTokenIsForbidden(t *testing.T) {
	orders := &stubOrder{}
	s := newTestServerWithOrders(t, orders)
	form := url.Values{"order_type": {"FULL"}, "phone": {"0700000000"}, "csrf": {"guessed"}}

	rec := do(s, http.MethodPost, "acme.example.com", "/product/p1/order", form,
		sessionCookie(t, "victim"), &http.Cookie{Name: "_csrf", Value: "different"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, orders.placed)
}

func TestServer_OrderPostWithFormToken(t *testing.T) {
	orders := &stubOrder{}
	s := newTestServerWithOrders(t, orders)
	token := formToken(t, s, "acme.example.com", "/product/p1/order")
	form := url.Values{"order_type": {"FULL"}, "phone": {"0700000000"}, "csrf": {token.Value}}

	rec := do(s, http.MethodPost, "acme.example.com", "/product/p1/order", form, sessionCookie(t, "u1"), token)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/order/o1/confirmation", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, orders.placed)
}

func TestServer_ContactPostWithoutFormTokenIsForbidden(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "message": {"Hi"}}

	rec := do(s, http.MethodPost, "acme.localhost", "/contact", form)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_WishlistToggleNeedsNoFormToken(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "acme.localhost", "/wishlist/toggle/p1", nil, sessionCookie(t, "u1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"action":"added","message":"Added to wishlist"}`, rec.Body.String())
}
