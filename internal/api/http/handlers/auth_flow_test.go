package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/foodyy-service/internal/api/http/handlers"
	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/observability"
	"github.com/spec-kit/foodyy-service/internal/service"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

type staticStore struct {
	admins    map[string]*domain.Admin
	customers map[string]*domain.Customer
}

func (s *staticStore) FindPrincipal(_ context.Context, identifier string, role domain.Role) (domain.Principal, error) {
	switch role {
	case domain.RoleAdmin:
		if a, ok := s.admins[identifier]; ok {
			return a, nil
		}
	case domain.RoleCustomer:
		if c, ok := s.customers[identifier]; ok {
			return c, nil
		}
	}
	return nil, errors.New("principal not found")
}

// newAuthApp assembles the auth slice of the service: gate, policy, the
// sign-in/out handlers and a protected probe route per namespace.
func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	hash := func(password string) string {
		h, err := auth.HashPassword(password, bcrypt.MinCost)
		require.NoError(t, err)
		return h
	}
	store := &staticStore{
		admins: map[string]*domain.Admin{
			"root": {ID: 1, Username: "root", PasswordHash: hash("Root#Pass1"), Enabled: true},
		},
		customers: map[string]*domain.Customer{
			"alice@example.com": {
				ID: 4, Name: "Alice", Email: "alice@example.com",
				PasswordHash: hash("Alice#Pass1"), Enabled: true,
			},
		},
	}

	tm, err := auth.NewTokenManager("test-secret", time.Minute)
	require.NoError(t, err)
	blacklist := auth.NewMemoryBlacklist(tm.ExpiryOf, time.Minute)
	authService := service.NewAuthService(store, tm, blacklist, observability.NewMetrics(), zap.NewNop())

	policy := auth.NewPolicy(auth.DefaultRules())
	gate := auth.NewGate(tm, blacklist, store, policy, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).SendString(fiberErr.Message)
			}
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})
	app.Use(gate.Handle)
	app.Use(policy.Enforce())

	adminHandler := handlers.NewAdminHandler(authService)
	customerHandler := handlers.NewCustomerHandler(authService, nil)

	app.Post("/admin/signin", adminHandler.SignIn)
	app.Post("/admin/signout", adminHandler.SignOut)
	app.Get("/admin/orders", func(c *fiber.Ctx) error { return c.SendString("orders") })
	app.Post("/customer/signin", customerHandler.SignIn)
	app.Post("/customer/signout", customerHandler.SignOut)
	app.Get("/customer/4", func(c *fiber.Ctx) error { return c.SendString("profile") })
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCustomerSessionLifecycle(t *testing.T) {
	app := newAuthApp(t)

	// Sign in.
	resp := doJSON(t, app, fiber.MethodPost, "/customer/signin", "", fiber.Map{
		"email": "alice@example.com", "password": "Alice#Pass1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, float64(4), body["id"])

	// The token opens customer routes but not admin ones.
	assert.Equal(t, http.StatusOK, doJSON(t, app, fiber.MethodGet, "/customer/4", token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, doJSON(t, app, fiber.MethodGet, "/admin/orders", token, nil).StatusCode)

	// Sign out revokes it.
	resp = doJSON(t, app, fiber.MethodPost, "/customer/signout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, app, fiber.MethodGet, "/customer/4", token, nil).StatusCode)

	// Revocation is idempotent: signing out again with the revoked token
	// still succeeds.
	assert.Equal(t, http.StatusOK, doJSON(t, app, fiber.MethodPost, "/customer/signout", token, nil).StatusCode)
}

func TestSignOutHeaderHandling(t *testing.T) {
	app := newAuthApp(t)

	// No Authorization header is the caller's mistake.
	for _, path := range []string{"/customer/signout", "/admin/signout"} {
		resp := doJSON(t, app, fiber.MethodPost, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}

	// A malformed scheme is rejected the same way.
	req := httptest.NewRequest(fiber.MethodPost, "/customer/signout", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Any bearer token revokes and succeeds, valid or not.
	assert.Equal(t, http.StatusOK, doJSON(t, app, fiber.MethodPost, "/customer/signout", "not-a-jwt", nil).StatusCode)
	assert.Equal(t, http.StatusOK, doJSON(t, app, fiber.MethodPost, "/admin/signout", "not-a-jwt", nil).StatusCode)
}

func TestAdminSessionLifecycle(t *testing.T) {
	app := newAuthApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/admin/signin", "", fiber.Map{
		"username": "root", "password": "Root#Pass1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "Bearer", body["tokenType"])

	assert.Equal(t, http.StatusOK, doJSON(t, app, fiber.MethodGet, "/admin/orders", token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, doJSON(t, app, fiber.MethodGet, "/customer/4", token, nil).StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/admin/signout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, app, fiber.MethodGet, "/admin/orders", token, nil).StatusCode)
}

func TestSignInRejectsBadCredentialsUniformly(t *testing.T) {
	app := newAuthApp(t)

	payloads := []fiber.Map{
		{"email": "alice@example.com", "password": "Wrong#Pass1"},
		{"email": "nobody@example.com", "password": "Alice#Pass1"},
	}
	for _, payload := range payloads {
		resp := doJSON(t, app, fiber.MethodPost, "/customer/signin", "", payload)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "Invalid credentials", string(raw))
	}
}

func TestSignInValidatesPayload(t *testing.T) {
	app := newAuthApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/customer/signin", "", fiber.Map{"email": "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/admin/signin", "", fiber.Map{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
