package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	appControllers "github.com/wbvaa/portal/internal/app/controllers"
	appMigrations "github.com/wbvaa/portal/internal/app/migrations"
	"github.com/wbvaa/portal/internal/app/models"
	appRepos "github.com/wbvaa/portal/internal/app/repositories"
	appRoutes "github.com/wbvaa/portal/internal/app/routes"
	appServices "github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/app/views"
	"github.com/wbvaa/portal/internal/config"
	"github.com/wbvaa/portal/internal/db"
	appMiddleware "github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/helpers"
	"github.com/wbvaa/portal/internal/pkg/logger"
	"github.com/wbvaa/portal/internal/pkg/sessiontoken"
	"github.com/wbvaa/portal/internal/pkg/websocket"
	"github.com/wbvaa/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog           *models.Catalog
	Services          *appServices.Services
	Hub               *websocket.Hub
	WSHandler         *websocket.Handler
	SessionTokens     *sessiontoken.Service
	SessionMiddleware *appMiddleware.SessionMiddleware
	PageController    *appControllers.PageController
	StateController   *appControllers.StateController
	CatalogController *appControllers.CatalogController
	ImageController   *appControllers.ImageController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to postgres, applies the migrations and seeds the
// catalog tables. It returns nil when the catalog does not come from postgres.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		lgr.Info().Str("source", cfg.Catalog.Source).Msg("Catalog does not use the database, skipping connection")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrations"))
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	defaults, err := appRepos.EmbeddedCatalog()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to decode bundled catalog: %w", err)
	}
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return seed.CreateDefaultData(ctx, tx, defaults, lgr)
	})
	if err != nil {
		// The tables may already hold a curated catalog; keep going.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// SessionConfig converts the site settings into the session manager's config.
func SessionConfig(cfg *config.Config) appServices.SessionConfig {
	lang, err := models.ParseLanguage(cfg.Site.DefaultLanguage)
	if err != nil {
		lang = models.LanguageEnglish
	}
	return appServices.SessionConfig{
		SlideInterval:   helpers.ParseDuration(cfg.Site.SlideInterval, appServices.DefaultSlideInterval),
		LoadingDelay:    helpers.ParseDuration(cfg.Site.LoadingDelay, appServices.DefaultLoadingDelay),
		IdleTimeout:     helpers.ParseDuration(cfg.Site.SessionIdleTimeout, 30*time.Minute),
		SweepInterval:   helpers.ParseDuration(cfg.Site.SweepInterval, time.Minute),
		MaxSessions:     cfg.Site.MaxSessions,
		DefaultLanguage: lang,
		Images: appServices.ImageURLs{
			AssetHost:   cfg.Site.AssetHost,
			ExportPath:  cfg.Site.AssetExportPath,
			FallbackURL: cfg.Site.FallbackImageURL,
		},
	}
}

// BuildDependencies loads the catalog and wires services, middleware and
// controllers over it.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var pool *pgxpool.Pool
	if database != nil {
		pool = database.Pool
	}
	repos, err := appRepos.NewRepositories(cfg, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to set up repositories: %w", err)
	}

	deps.Catalog, err = repos.CatalogRepository.Load(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load catalog")
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	deps.WSHandler = websocket.NewHandler(deps.Hub, logger.Component("websocket"))
	deps.Services = appServices.NewServices(deps.Catalog, SessionConfig(cfg), deps.Hub)

	deps.SessionTokens = sessiontoken.NewService(sessiontoken.Config{
		SecretKey: cfg.Session.Secret,
		TTL:       helpers.ParseDuration(cfg.Session.TokenTTL, 24*time.Hour),
		Issuer:    cfg.Session.Issuer,
	})
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(
		deps.Services.Sessions,
		deps.SessionTokens,
		cfg.Session.CookieName,
		cfg.Session.Secure,
	)

	builder := views.NewBuilder(deps.Services.Catalog, deps.Services.Translations, deps.Services.Records)
	deps.PageController = appControllers.NewPageController(builder)
	deps.StateController = appControllers.NewStateController(deps.SessionMiddleware, deps.SessionTokens.TTL())
	deps.CatalogController = appControllers.NewCatalogController(deps.Services.Catalog, deps.Services.Records, deps.Services.Translations)
	deps.ImageController = appControllers.NewImageController()

	lgr.Info().
		Int("districts", len(deps.Catalog.Districts)).
		Int("records", len(deps.Catalog.ServiceRecords)).
		Str("source", cfg.Catalog.Source).
		Msg("Dependencies built")
	return deps, nil
}

// Start launches the background loops: the websocket hub and the idle
// session sweeper. Both stop when ctx is cancelled; Wait on the returned
// group to know they are gone.
func (d *Dependencies) Start(ctx context.Context) *errgroup.Group {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Hub.Run(ctx)
		return nil
	})
	g.Go(func() error {
		d.Services.Sessions.Run(ctx)
		return nil
	})
	return g
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router,
		deps.PageController,
		deps.StateController,
		deps.CatalogController,
		deps.ImageController,
		deps.WSHandler,
		deps.SessionMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
