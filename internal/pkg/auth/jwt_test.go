package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		Secret: secret,
		Expiry: expiry,
		Issuer: "stagemed.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %s, want student", claims.Role)
	}
	if claims.Issuer != "stagemed.test" {
		t.Errorf("Issuer = %s, want stagemed.test", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService("test-secret", -time.Hour)

	token, err := svc.GenerateToken(42, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestService("secret-a", time.Hour).GenerateToken(42, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = newTestService("secret-b", time.Hour).ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"no scheme", "abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
