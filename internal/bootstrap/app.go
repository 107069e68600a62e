package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/profiles"
	"jobmatch-backend/internal/shared/config"
	"jobmatch-backend/internal/shared/server"
	"jobmatch-backend/internal/shared/storage/db"
	"jobmatch-backend/internal/shared/storage/object"
	localstore "jobmatch-backend/internal/shared/storage/object/local"
	s3store "jobmatch-backend/internal/shared/storage/object/s3"
	"jobmatch-backend/internal/shared/telemetry"
	"jobmatch-backend/internal/status"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	Engine          Engine
	ProfilesRepo    profiles.Repo
	StatusRepo      status.Repo
	ProfilesService *profiles.Service
	StatusService   *status.Service
	ProfilesHandler *profiles.Handler
	JobsHandler     *jobs.Handler
	StatusHandler   *status.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	engine, err := BuildEngine(EngineOptions{
		LexiconPath: cfg.SkillLexiconPath,
		CatalogPath: cfg.JobCatalogPath,
		MatchMode:   cfg.SkillMatchMode,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: app.Config,
		Handlers: []server.RouteRegistrar{
			app.ProfilesHandler,
			app.JobsHandler,
			app.StatusHandler,
		},
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":             cfg.Env,
		"object_store":    cfg.ObjectStoreType,
		"database":        sqlDB != nil,
		"lexicon_version": engine.Lexicon.Version(),
		"lexicon_skills":  engine.Lexicon.Len(),
		"catalog_jobs":    engine.Catalog.Len(),
		"match_mode":      string(engine.MatchMode),
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.StatusRepo = &status.PGRepo{DB: app.DB}
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.StatusRepo = status.NewMemoryRepo()
	}

	app.ProfilesService = &profiles.Service{
		Store:       app.Store,
		Repo:        app.ProfilesRepo,
		Extractor:   app.Engine.Extractor,
		Catalog:     app.Engine.Catalog,
		Recommender: app.Engine.Recommender,
		TopJobs:     app.Config.RecommendationTopJobs,
	}
	app.StatusService = &status.Service{Repo: app.StatusRepo}

	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService, app.Config.MaxUploadBytes)
	app.JobsHandler = jobs.NewHandler(app.Engine.Catalog)
	app.StatusHandler = status.NewHandler(app.StatusService)

	if app.ProfilesHandler == nil || app.JobsHandler == nil || app.StatusHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}
