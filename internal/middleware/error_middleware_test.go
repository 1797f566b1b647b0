package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"resource not found", apperrors.ErrResourceNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewNotFoundError("Étudiant non trouvé"), http.StatusNotFound},
		{"internship not found", apperrors.ErrInternshipNotFound, http.StatusNotFound},
		{"conflict", apperrors.NewConflictError("Un utilisateur avec cet email existe déjà"), http.StatusConflict},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"status transition", apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition, "Cette candidature a déjà été traitée"), http.StatusConflict},
		{"bad request", apperrors.NewBadRequestError("Rôle invalide"), http.StatusBadRequest},
		{"incomplete profile", apperrors.ErrProfileIncomplete, http.StatusBadRequest},
		{"internship unavailable", apperrors.ErrInternshipUnavailable, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleAPIErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students/profile", nil)

	HandleAPIError(c, apperrors.NewNotFoundError("Profil étudiant non trouvé"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Status != dto.StatusError {
		t.Errorf("Status = %s, want %s", resp.Status, dto.StatusError)
	}
	if resp.Message != "Profil étudiant non trouvé" {
		t.Errorf("Message = %s, want the custom message", resp.Message)
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/dean/statistics", nil)

	HandleAPIError(c, errors.New("pq: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != msgInternalError {
		t.Errorf("Message = %s, want the generic message", resp.Message)
	}
}
