package app

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"

	"github.com/haguru/bloglist/config"
	"github.com/haguru/bloglist/internal/auth"
	blogMongoRepo "github.com/haguru/bloglist/internal/blogrepo/mongo"
	blogPostgresRepo "github.com/haguru/bloglist/internal/blogrepo/postgres"
	"github.com/haguru/bloglist/internal/blogservice"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/routes"
	"github.com/haguru/bloglist/internal/server"
	userMongoRepo "github.com/haguru/bloglist/internal/userrepo/mongo"
	userPostgresRepo "github.com/haguru/bloglist/internal/userrepo/postgres"
	"github.com/haguru/bloglist/internal/userservice"
	"github.com/haguru/bloglist/pkg/databases/mongo"
	"github.com/haguru/bloglist/pkg/databases/postgres"
	"github.com/haguru/bloglist/pkg/metrics"
	"github.com/haguru/bloglist/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	DefaultLoginRatePerSecond = 1
	DefaultLoginBurst         = 5
)

// App represents the main application, containing server and configuration.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	privateKey *ecdsa.PrivateKey
	userRepo   interfaces.UserRepository
	blogRepo   interfaces.BlogRepository
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	metricsInstance := app.initializeMetrics()

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("failed to initialize private key: %v", err)
	}

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %v", err)
	}

	if err := app.initializeRepositories(dbClient); err != nil {
		return nil, err
	}

	userService := userservice.NewUserService(app.userRepo, app.blogRepo, logger)
	blogService := blogservice.NewBlogService(app.blogRepo, app.userRepo, logger)

	route := routes.NewRoute(metricsInstance, userService, blogService,
		app.privateKey, validator, logger)

	loginLimiter := app.buildLoginLimiter()
	router := routes.NewRouter(route, &app.privateKey.PublicKey, app.userRepo,
		loginLimiter, logger)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})
	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	mux := http.NewServeMux()
	mux.Handle(routes.MetricsRouteAPI, tracedMetricsHandler)
	mux.Handle("/", router)

	app.Server = server.NewServer(cfg.Host, cfg.Port, mux, logger)

	return app, nil
}

// Run starts the server and blocks until it stops.
func (app *App) Run() error {
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

// Close releases the application's database resources.
func (app *App) Close(ctx context.Context) error {
	if app.userRepo != nil {
		if err := app.userRepo.Close(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)

	appMetrics.RegisterCounter(routes.SignupRequestsTotal, routes.SignupRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.SignupSuccessTotal, routes.SignupSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.SignupErrorsTotal, routes.SignupErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.SignupDurationSeconds,
		routes.SignupDurationSecondsHelp,
		routes.SignupDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.LoginRequestsTotal, routes.LoginRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.LoginSuccessTotal, routes.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.LoginFailedTotal, routes.LoginFailedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.LoginDurationSeconds,
		routes.LoginDurationSecondsHelp,
		routes.LoginDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.BlogCreateRequestsTotal, routes.BlogCreateRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.BlogCreateSuccessTotal, routes.BlogCreateSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.BlogCreateErrorsTotal, routes.BlogCreateErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.BlogCreateDurationSeconds,
		routes.BlogCreateDurationSecondsHelp,
		routes.BlogCreateDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.BlogUpdateRequestsTotal, routes.BlogUpdateRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.BlogUpdateErrorsTotal, routes.BlogUpdateErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.BlogDeleteRequestsTotal, routes.BlogDeleteRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.BlogDeleteErrorsTotal, routes.BlogDeleteErrorsTotalHelp)

	return appMetrics
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	var dbClient interfaces.DBClient
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		dbClient, err = mongo.NewMongoDB(&app.Config.Database.MongoDB, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %v", err)
		}

		if err = dbClient.Connect(context.Background(), app.Config.Database.MongoDB.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
		}

	case "postgres":
		dbClient = postgres.NewPostgresDatabaseClient(&app.Config.Database.Postgres)

		if err = dbClient.Connect(context.Background(), app.Config.Database.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %v", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	return dbClient, nil
}

func (app *App) initializeRepositories(dbClient interfaces.DBClient) error {
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		app.userRepo, err = userMongoRepo.NewMongoUserRepository(dbClient)
		if err != nil {
			return fmt.Errorf("failed to initialize MongoDB user repository: %v", err)
		}
		app.blogRepo, err = blogMongoRepo.NewMongoBlogRepository(dbClient)
		if err != nil {
			return fmt.Errorf("failed to initialize MongoDB blog repository: %v", err)
		}

	case "postgres":
		app.userRepo, err = userPostgresRepo.NewPostgresUserRepository(dbClient)
		if err != nil {
			return fmt.Errorf("failed to initialize PostgreSQL user repository: %v", err)
		}
		app.blogRepo, err = blogPostgresRepo.NewPostgresBlogRepository(dbClient)
		if err != nil {
			return fmt.Errorf("failed to initialize PostgreSQL blog repository: %v", err)
		}

	default:
		return fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	if err = app.userRepo.EnsureIndices(context.Background()); err != nil {
		return fmt.Errorf("failed to ensure user indices: %v", err)
	}
	if err = app.blogRepo.EnsureIndices(context.Background()); err != nil {
		return fmt.Errorf("failed to ensure blog indices: %v", err)
	}

	return nil
}

func (app *App) initializePrivateKey() error {
	if app.Config.PrivateKeyPath == "" {
		return fmt.Errorf("private key path is not provided in the configuration")
	}

	privateKey, err := auth.LoadECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %v", err)
	}

	app.privateKey = privateKey
	return nil
}

func (app *App) buildLoginLimiter() *rate.Limiter {
	perSecond := app.Config.RateLimit.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = DefaultLoginRatePerSecond
	}
	burst := app.Config.RateLimit.Burst
	if burst <= 0 {
		burst = DefaultLoginBurst
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
