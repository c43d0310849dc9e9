package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindsethq/mindset-backend/internal/app/controllers"
	"github.com/mindsethq/mindset-backend/internal/app/migrations"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/app/routes"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/config"
	"github.com/mindsethq/mindset-backend/internal/db"
	"github.com/mindsethq/mindset-backend/internal/middleware"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
	"github.com/mindsethq/mindset-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *controllers.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the
// global logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection and, when the
// bootstrap flags allow it, runs migrations and installs the seed data
// before the server starts accepting requests.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	if cfg.Bootstrap.AutoMigrate {
		if err := runMigrations(dbPool, cfg.Bootstrap.MigrationsDir); err != nil {
			dbPool.Close()
			return nil, err
		}
	}

	if cfg.Bootstrap.AutoSeed || cfg.Bootstrap.AutoSuperuser {
		if err := runSeeders(cfg, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}
	}

	return dbPool, nil
}

func runMigrations(dbPool *pgxpool.Pool, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(dir); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	logger.Info().Str("dir", dir).Msg("Database migrations applied")
	return nil
}

// runSeeders installs reference data and the superuser account. All
// seeders are idempotent, so repeated startups leave existing rows
// alone.
func runSeeders(cfg *config.Config, dbPool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repos := repositories.NewRepositories(dbPool)

	if cfg.Bootstrap.AutoSeed {
		lookups := []*repositories.LookupRepository{
			repos.DeliveryModeRepository,
			repos.RegistrationStatusRepository,
			repos.EventTypeRepository,
		}
		for _, repo := range lookups {
			if _, err := seed.ApplyLookup(ctx, repo); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
		}
	}

	if cfg.Bootstrap.AutoSuperuser {
		_, err := seed.EnsureSuperuser(ctx, repos.AdminRepository,
			cfg.Superuser.Email, cfg.Superuser.Name, cfg.Superuser.Password)
		if err != nil {
			return fmt.Errorf("superuser bootstrap failed: %w", err)
		}
	}

	return nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	tokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(dbPool)
	svcs := services.NewServices(repos, jwtService)
	ctrls := controllers.NewControllers(svcs)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, repos.AdminRepository)

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		Controllers:    ctrls,
		AuthMiddleware: authMiddleware,
		JWTService:     jwtService,
	}, nil
}

// SetupRouter creates the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
