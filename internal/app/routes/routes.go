package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stagemed/stagemed/internal/app/controllers"
	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/middleware"
	"github.com/stagemed/stagemed/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	chiefController *controllers.ChiefController,
	doctorController *controllers.DoctorController,
	deanController *controllers.DeanController,
	catalogController *controllers.CatalogController,
	jwtService *auth.JWTService,
) {
	router.GET("/api/health", catalogController.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/internships", catalogController.ListInternships)
	v1.GET("/internships/:id", catalogController.GetInternship)
	v1.GET("/establishments", catalogController.ListEstablishments)
	v1.GET("/services", catalogController.ListServices)

	v1.POST("/auth/login", authController.Login)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))

	authGroup := authenticated.Group("/auth")
	{
		authGroup.GET("/me", authController.GetMe)
		authGroup.POST("/logout", authController.Logout)
		authGroup.POST("/change-password", authController.ChangePassword)
	}

	students := authenticated.Group("/students")
	students.Use(middleware.RoleRequired(string(models.RoleStudent)))
	{
		students.GET("/dashboard", studentController.GetDashboard)
		students.GET("/profile", studentController.GetProfile)
		students.PUT("/profile", studentController.UpdateProfile)
		students.GET("/internships", studentController.ListInternships)
		students.GET("/internships/:id", studentController.GetInternship)
		students.POST("/internships/:id/apply", studentController.Apply)
		students.GET("/applications", studentController.ListApplications)
		students.POST("/applications/:id/cancel", studentController.CancelApplication)
		students.GET("/evaluations", studentController.ListEvaluations)
	}

	chiefs := authenticated.Group("/service-chiefs")
	chiefs.Use(middleware.RoleRequired(string(models.RoleServiceChief)))
	{
		chiefs.GET("/dashboard", chiefController.GetDashboard)
		chiefs.GET("/internships", chiefController.ListInternships)
		chiefs.POST("/internships", chiefController.CreateInternship)
		chiefs.GET("/applications", chiefController.ListApplications)
		chiefs.PATCH("/applications/:id/status", chiefController.UpdateApplicationStatus)
		chiefs.GET("/evaluations", chiefController.ListEvaluations)
		chiefs.POST("/evaluations/:id/validate", chiefController.ValidateEvaluation)
	}

	doctors := authenticated.Group("/doctors")
	doctors.Use(middleware.RoleRequired(string(models.RoleDoctor)))
	{
		doctors.GET("/dashboard", doctorController.GetDashboard)
		doctors.GET("/students", doctorController.GetStudents)
		doctors.GET("/students/:id", doctorController.GetStudentDetails)
		doctors.GET("/evaluations", doctorController.ListEvaluations)
		doctors.POST("/applications/:applicationId/evaluation", doctorController.CreateEvaluation)
		doctors.PUT("/evaluations/:id", doctorController.SubmitEvaluation)
	}

	dean := authenticated.Group("/dean")
	dean.Use(middleware.RoleRequired(string(models.RoleDean)))
	{
		dean.GET("/dashboard", deanController.GetDashboard)
		dean.GET("/users", deanController.ListUsers)
		dean.POST("/users", deanController.CreateUser)
		dean.POST("/users/:id/toggle-status", deanController.ToggleUserStatus)
		dean.POST("/users/:id/reset-password", deanController.ResetPassword)
		dean.GET("/establishments", deanController.ListEstablishments)
		dean.POST("/establishments", deanController.CreateEstablishment)
		dean.GET("/services", deanController.ListServices)
		dean.POST("/services", deanController.CreateService)
		dean.GET("/statistics", deanController.GetStatistics)
		dean.GET("/reports/export", deanController.ExportReport)
	}
}
