// Package bootstrap wires configuration, database, repositories, services
// and controllers together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/stagemed/stagemed/docs" // generated swagger docs
	"github.com/stagemed/stagemed/internal/app/controllers"
	"github.com/stagemed/stagemed/internal/app/migrations"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/app/routes"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/config"
	"github.com/stagemed/stagemed/internal/db"
	"github.com/stagemed/stagemed/internal/pkg/auth"
	"github.com/stagemed/stagemed/internal/pkg/filestorage"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
	"github.com/stagemed/stagemed/internal/pkg/logger"
	"github.com/stagemed/stagemed/internal/pkg/mailer"
	"github.com/stagemed/stagemed/internal/seed"
	"github.com/stagemed/stagemed/internal/web"
)

// maxRequestBodySize caps multipart uploads at 10 MB
const maxRequestBodySize = 10 << 20

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *repositories.Repositories
	JWTService        *auth.JWTService
	FileStorage       *filestorage.LocalStorage
	Mailer            mailer.Mailer
	AuthService       *services.AuthService
	StudentService    *services.StudentService
	ChiefService      *services.ChiefService
	DoctorService     *services.DoctorService
	DeanService       *services.DeanService
	CatalogService    *services.CatalogService
	AuthController    *controllers.AuthController
	StudentController *controllers.StudentController
	ChiefController   *controllers.ChiefController
	DoctorController  *controllers.DoctorController
	DeanController    *controllers.DeanController
	CatalogController *controllers.CatalogController
	WebHandler        *web.Handler
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Expiry: helpers.ParseDuration(cfg.JWT.TokenExpiration, 2160*time.Hour),
		Issuer: cfg.JWT.Issuer,
	})

	deps.Mailer = mailer.NewMailer(mailer.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.AuthService = services.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ProfileRepository,
		deps.JWTService,
		lgr,
	)
	deps.StudentService = services.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.EvaluationRepository,
		deps.FileStorage,
		lgr,
	)
	deps.ChiefService = services.NewChiefService(
		deps.Repos.ProfileRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.EvaluationRepository,
		lgr,
	)
	deps.DoctorService = services.NewDoctorService(
		deps.Repos.ProfileRepository,
		deps.Repos.StudentRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.EvaluationRepository,
		lgr,
	)
	deps.DeanService = services.NewDeanService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.EstablishmentRepository,
		deps.Repos.ServiceRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Mailer,
		lgr,
	)
	deps.CatalogService = services.NewCatalogService(
		deps.Repos.InternshipRepository,
		deps.Repos.EstablishmentRepository,
		deps.Repos.ServiceRepository,
		lgr,
	)

	deps.AuthController = controllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = controllers.NewStudentController(deps.StudentService, lgr)
	deps.ChiefController = controllers.NewChiefController(deps.ChiefService, lgr)
	deps.DoctorController = controllers.NewDoctorController(deps.DoctorService, lgr)
	deps.DeanController = controllers.NewDeanController(deps.DeanService, lgr)
	deps.CatalogController = controllers.NewCatalogController(deps.CatalogService, cfg.Server.Mode, lgr)

	deps.WebHandler = web.NewHandler(
		deps.AuthService,
		deps.StudentService,
		deps.ChiefService,
		deps.DoctorService,
		deps.DeanService,
		deps.JWTService,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, API routes and pages
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.MaxMultipartMemory = maxRequestBodySize
	router.Use(corsMiddleware(cfg.Server.FrontendOrigin))

	if cfg.Server.TemplatesGlob != "" {
		router.LoadHTMLGlob(cfg.Server.TemplatesGlob)
	}

	routes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.ChiefController,
		deps.DoctorController,
		deps.DeanController,
		deps.CatalogController,
		deps.JWTService,
	)

	deps.WebHandler.Register(router)

	return router
}

// corsMiddleware allows the configured frontend origin with credentials
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
