package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/controllers"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/pkg/auth"
	"github.com/stagemed/stagemed/internal/pkg/mailer"
)

// newTestRouter wires the route table over unconnected dependencies.
// Handlers are never invoked; only the registered routes are inspected.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	repos := repositories.NewRepositories(nil)
	jwtService := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	mail := mailer.NewMailer(mailer.SMTPConfig{}, lgr)

	authService := services.NewAuthService(repos.UserRepository, repos.StudentRepository, repos.ProfileRepository, jwtService, lgr)
	studentService := services.NewStudentService(repos.StudentRepository, repos.InternshipRepository, repos.ApplicationRepository, repos.EvaluationRepository, nil, lgr)
	chiefService := services.NewChiefService(repos.ProfileRepository, repos.InternshipRepository, repos.ApplicationRepository, repos.EvaluationRepository, lgr)
	doctorService := services.NewDoctorService(repos.ProfileRepository, repos.StudentRepository, repos.InternshipRepository, repos.ApplicationRepository, repos.EvaluationRepository, lgr)
	deanService := services.NewDeanService(repos.UserRepository, repos.StudentRepository, repos.ProfileRepository, repos.EstablishmentRepository, repos.ServiceRepository, repos.InternshipRepository, repos.ApplicationRepository, mail, lgr)
	catalogService := services.NewCatalogService(repos.InternshipRepository, repos.EstablishmentRepository, repos.ServiceRepository, lgr)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewStudentController(studentService, lgr),
		controllers.NewChiefController(chiefService, lgr),
		controllers.NewDoctorController(doctorService, lgr),
		controllers.NewDeanController(deanService, lgr),
		controllers.NewCatalogController(catalogService, "test", lgr),
		jwtService,
	)
	return router
}

func TestRouteTable(t *testing.T) {
	router := newTestRouter()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		http.MethodGet + " /api/health",
		http.MethodGet + " /api/v1/internships",
		http.MethodGet + " /api/v1/internships/:id",
		http.MethodGet + " /api/v1/establishments",
		http.MethodGet + " /api/v1/services",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodPost + " /api/v1/auth/logout",
		http.MethodPost + " /api/v1/auth/change-password",
		http.MethodGet + " /api/v1/auth/me",
		http.MethodPost + " /api/v1/students/internships/:id/apply",
		http.MethodPost + " /api/v1/students/applications/:id/cancel",
		http.MethodPatch + " /api/v1/service-chiefs/applications/:id/status",
		http.MethodPost + " /api/v1/service-chiefs/evaluations/:id/validate",
		http.MethodPost + " /api/v1/doctors/applications/:applicationId/evaluation",
		http.MethodPut + " /api/v1/doctors/evaluations/:id",
		http.MethodPost + " /api/v1/dean/users/:id/toggle-status",
		http.MethodPost + " /api/v1/dean/users/:id/reset-password",
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}
