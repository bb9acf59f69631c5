package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

const testSecret = "test-secret"

func errCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.Code
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, exp, err := tm.Issue("user-1", domain.RoleMunicipal)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute || remaining > 61*time.Minute {
		t.Errorf("expiry not ~1h out: %v", remaining)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != domain.RoleMunicipal {
		t.Errorf("Role = %q, want municipal", claims.Role)
	}
}

func TestTokenManager_VerifyMissing(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.Verify("")
	if err == nil {
		t.Fatal("expected error for empty token")
	}
	if code := errCode(t, err); code != apperrors.CodeMissingToken {
		t.Errorf("code = %q, want %q", code, apperrors.CodeMissingToken)
	}
}

func TestTokenManager_VerifyTampered(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, _, err := tm.Issue("user-1", domain.RolePublic)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flipping any byte must break the signature.
	tampered := []byte(token)
	if tampered[10] == 'a' {
		tampered[10] = 'b'
	} else {
		tampered[10] = 'a'
	}

	_, err = tm.Verify(string(tampered))
	if err == nil {
		t.Fatal("expected error for tampered token")
	}
	if code := errCode(t, err); code != apperrors.CodeInvalidToken {
		t.Errorf("code = %q, want %q", code, apperrors.CodeInvalidToken)
	}
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("other-secret", 60).Issue("user-1", domain.RolePublic)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = NewTokenManager(testSecret, 60).Verify(token)
	if err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
	if code := errCode(t, err); code != apperrors.CodeInvalidToken {
		t.Errorf("code = %q, want %q", code, apperrors.CodeInvalidToken)
	}
}

func TestTokenManager_VerifyExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	// Sign an already-expired token with the same secret.
	claims := &Claims{
		UserID: "user-1",
		Role:   domain.RolePublic,
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

	_, err = tm.Verify(expired)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if code := errCode(t, err); code != apperrors.CodeTokenExpired {
		t.Errorf("code = %q, want %q", code, apperrors.CodeTokenExpired)
	}
}
