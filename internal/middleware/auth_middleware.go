package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

const msgAccessDenied = "Accès refusé: Vous n'avez pas la permission d'accéder à cette ressource"

// JWTAuth authenticates the request from the Authorization header or the jwt
// cookie used by the server-rendered pages
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			if cookie, cookieErr := c.Cookie("jwt"); cookieErr == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentification requise"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "Token invalide"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Session expirée, veuillez vous reconnecter"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects requests whose authenticated role does not match
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(msgAccessDenied))
			return
		}
		c.Next()
	}
}

// GetUserID reads the authenticated user ID set by JWTAuth
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
