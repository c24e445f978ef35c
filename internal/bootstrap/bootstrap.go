package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/tpoportal/internal/app/controllers"
	appMigrations "github.com/yigit/tpoportal/internal/app/migrations"
	appRepos "github.com/yigit/tpoportal/internal/app/repositories"
	appRoutes "github.com/yigit/tpoportal/internal/app/routes"
	appServices "github.com/yigit/tpoportal/internal/app/services"
	"github.com/yigit/tpoportal/internal/config"
	"github.com/yigit/tpoportal/internal/db"
	appMiddleware "github.com/yigit/tpoportal/internal/middleware"
	pkgAuth "github.com/yigit/tpoportal/internal/pkg/auth"
	"github.com/yigit/tpoportal/internal/pkg/cache"
	"github.com/yigit/tpoportal/internal/pkg/filestorage"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/pkg/validation"
	"github.com/yigit/tpoportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database       *db.PostgresDB
	Redis          *cache.Redis // nil when redis is disabled or unreachable
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	PublicLimiter  appMiddleware.Limiter
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "tpo-portal",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs the bundled migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// SetupRedis connects to redis when enabled. A failed connection is logged
// and the server falls back to the database denylist and in-memory limiter.
func SetupRedis(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) *cache.Redis {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, using database denylist and in-memory rate limiter")
		return nil
	}
	client, err := cache.NewRedis(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, falling back to database denylist")
		return nil
	}
	return client
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, redisClient *cache.Redis, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Database: database,
		Redis:    redisClient,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.UploadsURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	var denylist appServices.TokenDenylist = deps.Repos.TokenRepository
	var limiter appMiddleware.Limiter = appMiddleware.NewTokenBucket(cfg.RateLimit.PerMinute, cfg.RateLimit.PerMinute)
	if redisClient != nil {
		denylist = redisClient
		limiter = appMiddleware.NewCounterLimiter(redisClient, cfg.RateLimit.PerMinute)
	}
	deps.PublicLimiter = limiter

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:      deps.Repos,
		JWTService: deps.JWTService,
		Denylist:   denylist,
		Storage:    deps.FileStorage,
	})

	if err := seed.CreateDefaultData(ctx, deps.Services.AuthService, cfg.Admin.Username, cfg.Admin.Password, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, denylist)

	s := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(s.AuthService),
		Student:      appControllers.NewStudentController(s.StudentService),
		Event:        appControllers.NewEventController(s.EventService, s.AttendanceService),
		Alumni:       appControllers.NewAlumniController(s.AlumniService),
		Attendance:   appControllers.NewAttendanceController(s.AttendanceService),
		News:         appControllers.NewNewsController(s.NewsService),
		Notification: appControllers.NewNotificationController(s.NotificationService),
		Placement:    appControllers.NewPlacementController(s.PlacementService),
		Transfer: appControllers.NewTransferController(
			s.ImportService,
			s.ExportService,
			int64(cfg.Server.MaxUploadMB)<<20,
		),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.SecurityHeaders(),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appMiddleware.RateLimit(deps.PublicLimiter))

	router.Static(cfg.Server.UploadsURL, cfg.Server.StoragePath)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthHandler(deps))

	return router
}

func healthHandler(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbState := "up"
		if err := deps.Database.Ping(ctx); err != nil {
			dbState = "down"
			status = http.StatusServiceUnavailable
		}

		redisState := "disabled"
		if deps.Redis != nil {
			redisState = "up"
			if !deps.Redis.Healthy(ctx) {
				redisState = "down"
			}
		}

		c.JSON(status, gin.H{"database": dbState, "redis": redisState})
	}
}
