package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/observability"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

const testSecret = "test-secret"

// newTestApp wires the global middlewares plus auth-protected probe routes,
// mirroring how RegisterRoutes applies role policies.
func newTestApp() (*fiber.App, *auth.TokenManager) {
	tokens := auth.NewTokenManager(testSecret, 60)
	middleware := auth.NewMiddleware(tokens)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	protected := app.Group("", middleware.Handle)
	protected.Get("/municipal-only", auth.RequireRole(domain.RoleMunicipal), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	protected.Get("/public-only", auth.RequireRole(domain.RolePublic), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	return app, tokens
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (int, errorBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		// Raw token, no Bearer prefix.
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)
	return resp.StatusCode, parsed
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app, _ := newTestApp()

	status, body := doRequest(t, app, "/municipal-only", "")
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if body.Code != apperrors.CodeMissingToken {
		t.Errorf("code = %q, want %q", body.Code, apperrors.CodeMissingToken)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app, _ := newTestApp()

	status, body := doRequest(t, app, "/municipal-only", "not-a-token")
	if status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", status)
	}
	if body.Code != apperrors.CodeInvalidToken {
		t.Errorf("code = %q, want %q", body.Code, apperrors.CodeInvalidToken)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app, _ := newTestApp()

	claims := &auth.Claims{
		UserID: "user-1",
		Role:   domain.RoleMunicipal,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-61 * time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	status, body := doRequest(t, app, "/municipal-only", expired)
	if status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", status)
	}
	if body.Code != apperrors.CodeTokenExpired {
		t.Errorf("code = %q, want %q", body.Code, apperrors.CodeTokenExpired)
	}
}

func TestRequireRole(t *testing.T) {
	app, tokens := newTestApp()

	publicToken, _, err := tokens.Issue("citizen-1", domain.RolePublic)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	municipalToken, _, err := tokens.Issue("staff-1", domain.RoleMunicipal)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"public token on municipal route", "/municipal-only", publicToken, http.StatusForbidden, apperrors.CodeForbidden},
		{"municipal token on municipal route", "/municipal-only", municipalToken, http.StatusOK, ""},
		{"municipal token on public route", "/public-only", municipalToken, http.StatusForbidden, apperrors.CodeForbidden},
		{"public token on public route", "/public-only", publicToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, tt.path, tt.token)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}
