// Package web serves the server-rendered pages under /web. Authentication
// goes through the same JWT as the API, carried in an HTTP-only cookie.
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/auth"
)

const msgAccessDenied = "Accès refusé: Vous n'avez pas la permission d'accéder à cette ressource"

// Handler renders the HTML pages
type Handler struct {
	authService    *services.AuthService
	studentService *services.StudentService
	chiefService   *services.ChiefService
	doctorService  *services.DoctorService
	deanService    *services.DeanService
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewHandler creates a new web Handler
func NewHandler(
	authService *services.AuthService,
	studentService *services.StudentService,
	chiefService *services.ChiefService,
	doctorService *services.DoctorService,
	deanService *services.DeanService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		studentService: studentService,
		chiefService:   chiefService,
		doctorService:  doctorService,
		deanService:    deanService,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register wires the page routes onto the engine
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.home)

	pages := router.Group("/web")
	pages.GET("/login", h.loginPage)
	pages.POST("/login", h.login)
	pages.GET("/logout", h.logout)

	authed := pages.Group("")
	authed.Use(h.requireSession)
	{
		authed.GET("/student", h.requireRole(models.RoleStudent), h.studentDashboard)
		authed.GET("/service-chief", h.requireRole(models.RoleServiceChief), h.chiefDashboard)
		authed.GET("/doctor", h.requireRole(models.RoleDoctor), h.doctorDashboard)
		authed.GET("/dean", h.requireRole(models.RoleDean), h.deanDashboard)
	}
}

// dashboardPath maps a role to its dashboard page
func dashboardPath(role models.RoleType) string {
	switch role {
	case models.RoleStudent:
		return "/web/student"
	case models.RoleServiceChief:
		return "/web/service-chief"
	case models.RoleDoctor:
		return "/web/doctor"
	case models.RoleDean:
		return "/web/dean"
	}
	return "/web/login"
}

// requireSession authenticates the page request from the jwt cookie and
// redirects anonymous visitors to the login page
func (h *Handler) requireSession(c *gin.Context) {
	cookie, err := c.Cookie("jwt")
	if err != nil {
		c.Redirect(http.StatusFound, "/web/login")
		c.Abort()
		return
	}

	claims, err := h.jwtService.ValidateToken(cookie)
	if err != nil {
		c.SetCookie("jwt", "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/web/login")
		c.Abort()
		return
	}

	c.Set("userID", claims.UserID)
	c.Set("role", claims.Role)
	c.Next()
}

// requireRole renders the error page when the session role does not match
func (h *Handler) requireRole(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(role) {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Message": msgAccessDenied})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) home(c *gin.Context) {
	if cookie, err := c.Cookie("jwt"); err == nil {
		if claims, err := h.jwtService.ValidateToken(cookie); err == nil {
			c.Redirect(http.StatusFound, dashboardPath(models.RoleType(claims.Role)))
			return
		}
	}
	c.Redirect(http.StatusFound, "/web/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) login(c *gin.Context) {
	req := dto.LoginRequest{
		Email:     c.PostForm("email"),
		Matricule: c.PostForm("matricule"),
		Password:  c.PostForm("password"),
	}
	if req.Email == "" && req.Matricule == "" || req.Password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email ou matricule et mot de passe requis",
		})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		message := "Une erreur interne est survenue"
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) {
			message = customErr.Message
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": message})
		return
	}

	maxAge := int(h.authService.TokenExpiry().Seconds())
	c.SetCookie("jwt", token, maxAge, "/", "", false, true)

	h.logger.Info().Int64("userId", user.ID).Msg("Web session opened")

	c.Redirect(http.StatusFound, dashboardPath(user.Role))
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie("jwt", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/web/login")
}

func (h *Handler) studentDashboard(c *gin.Context) {
	data, err := h.studentService.GetDashboard(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{"Dashboard": data})
}

func (h *Handler) chiefDashboard(c *gin.Context) {
	data, err := h.chiefService.GetDashboard(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "chief_dashboard.html", gin.H{"Dashboard": data})
}

func (h *Handler) doctorDashboard(c *gin.Context) {
	data, err := h.doctorService.GetDashboard(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "doctor_dashboard.html", gin.H{"Dashboard": data})
}

func (h *Handler) deanDashboard(c *gin.Context) {
	data, err := h.deanService.GetDashboard(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "dean_dashboard.html", gin.H{"Dashboard": data})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page rendering failed")

	message := "Une erreur interne est survenue"
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": message})
}
