package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stagemed/stagemed/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, expiry time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
		Issuer: "stagemed.test",
	})

	router := gin.New()
	router.GET("/protected", JWTAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c), "role": c.GetString(ContextRole)})
	})
	router.GET("/dean-only", JWTAuth(jwtService), RoleRequired("dean"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func TestJWTAuthBearerHeader(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, err := jwtService.GenerateToken(7, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestJWTAuthCookieFallback(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, err := jwtService.GenerateToken(7, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, -time.Hour)

	token, err := jwtService.GenerateToken(7, "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	tests := []struct {
		name string
		role string
		want int
	}{
		{"matching role", "dean", http.StatusOK},
		{"other role", "student", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateToken(7, tt.role)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dean-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
