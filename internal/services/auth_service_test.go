package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/dto"
)

func testAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		SessionExpiry: time.Hour,
	}
	return NewAuthService(nil, cfg)
}

func TestPendingTokenRoundTrip(t *testing.T) {
	svc := testAuthService()

	token, err := svc.generatePendingToken(&GoogleUserInfo{
		Sub:     "google-sub-1",
		Email:   "ada@example.com",
		Name:    "Ada",
		Picture: "https://example.com/a.png",
	})
	if err != nil {
		t.Fatalf("generatePendingToken: %v", err)
	}

	claims, err := svc.parsePendingToken(token)
	if err != nil {
		t.Fatalf("parsePendingToken: %v", err)
	}
	if claims.Email != "ada@example.com" || claims.Sub != "google-sub-1" {
		t.Fatalf("claims not preserved: %+v", claims)
	}
	if until := time.Until(claims.ExpiresAt.Time); until > 15*time.Minute || until <= 0 {
		t.Fatalf("pending token expiry out of range: %v", until)
	}
}

func TestPendingTokenRejectsWrongSecret(t *testing.T) {
	svc := testAuthService()

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "pending-signup",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	forged, err := other.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.parsePendingToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPendingTokenRejectsAccessTokens(t *testing.T) {
	svc := testAuthService()

	// A regular access token must not pass the pending-signup gate.
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	raw, err := access.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.parsePendingToken(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc := testAuthService()
	_, err := svc.Signup(&dto.SignupRequest{
		Email:         "kofi@example.com",
		Password:      "longenough",
		FullName:      "Kofi",
		Role:          "admin",
		AgreedToTerms: true,
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSignupRequiresTerms(t *testing.T) {
	svc := testAuthService()
	_, err := svc.Signup(&dto.SignupRequest{
		Email:    "kofi@example.com",
		Password: "longenough",
		FullName: "Kofi",
		Role:     "seeker",
	})
	if !errors.Is(err, ErrTermsNotAgreed) {
		t.Fatalf("expected ErrTermsNotAgreed, got %v", err)
	}
}
