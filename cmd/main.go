package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/winetasting-app/backend/internal/handlers"
	"github.com/winetasting-app/backend/internal/jwt"
	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/mailer"
	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/repositories"
	"github.com/winetasting-app/backend/internal/services"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const rateLimitWindow = 15 * time.Minute

// config carries all application settings loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	migrationsDir  string

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaBrokers string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	sendgridAPIKey string
	mailFromName   string
	mailFromEmail  string

	frontendURL string
	development bool

	arbiterEmail    string
	arbiterPassword string

	generalRateLimit int
	authRateLimit    int
}

// @title wine-tasting backend API
// @version 1.0.0
// @description Backend for multi-user wine tasting sessions: accounts, sessions, bottles, scored tastings, and rankings
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, mail, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.development = getEnv("APP_ENV", "development") == "development"
	cfg.frontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "winetasting")
	cfg.migrationsDir = getEnv("MIGRATIONS_DIR", "migrations")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config, empty brokers disable event publishing
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "tasting-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Mail config, empty API key switches the mailer to simulation mode
	cfg.sendgridAPIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.mailFromName = getEnv("MAIL_FROM_NAME", "Wine Tasting")
	cfg.mailFromEmail = getEnv("MAIL_FROM_EMAIL", "noreply@winetasting.app")

	// Seeded arbiter account
	cfg.arbiterEmail = getEnv("ARBITER_EMAIL", "arbiter@winetasting.app")
	cfg.arbiterPassword = getEnv("ARBITER_PASSWORD", "ChangeMe123")

	// Rate limits per 15-minute window
	if cfg.generalRateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT_GENERAL", "100")); err != nil {
		return
	}
	authLimitDefault := "5"
	if cfg.development {
		authLimitDefault = "50"
	}
	if cfg.authRateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT_AUTH", authLimitDefault)); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, seeds the arbiter account, sets up routes, and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	m, err := migrate.New("file://"+cfg.migrationsDir, dsn)
	if err != nil {
		logger.Log.Errorw("failed to initialize migrations", "error", err)
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		return err
	}
	logger.Log.Info("Database migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for tasting audit events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka producer configured for topic %s", cfg.kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, tasting events disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize mailer
	mail := mailer.New(
		mailer.WithAPIKey(cfg.sendgridAPIKey),
		mailer.WithSender(cfg.mailFromName, cfg.mailFromEmail),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	bottleReadRepo := repositories.NewBottleReadRepository(db)
	bottleWriteRepo := repositories.NewBottleWriteRepository(db)
	enrollmentReadRepo := repositories.NewEnrollmentReadRepository(db)
	enrollmentWriteRepo := repositories.NewEnrollmentWriteRepository(db)
	tastingReadRepo := repositories.NewTastingReadRepository(db)
	tastingWriteRepo := repositories.NewTastingWriteRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Seed the arbiter account
	if err := seedArbiter(ctx, userWriteRepo, cfg.arbiterEmail, cfg.arbiterPassword); err != nil {
		return err
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, resetRepo, statsRepo, tokens, mail, cfg.frontendURL, cfg.development)
	adminService := services.NewAdminService(userReadRepo, userReadRepo, userWriteRepo, mail, cfg.frontendURL)
	sessionService := services.NewSessionService(sessionReadRepo, sessionWriteRepo, bottleReadRepo, bottleWriteRepo, enrollmentReadRepo, enrollmentWriteRepo, userReadRepo)
	tastingService := services.NewTastingService(tastingReadRepo, tastingWriteRepo, kafkaWriter)
	statsService := services.NewStatsService(statsRepo)

	// Rate limiters
	generalLimiter := middlewares.NewRateLimiter(rdb, "general", cfg.generalRateLimit, rateLimitWindow)
	authLimiter := middlewares.NewRateLimiter(rdb, "auth", cfg.authRateLimit, rateLimitWindow)

	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	arbiterOnly := middlewares.RequireArbiter(userReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(generalLimiter.Middleware)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"success":false,"message":"Route not found"}`)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler(db))

		r.Route("/auth", func(r chi.Router) {
			// Credential endpoints carry a stricter limit
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Middleware)
				r.Post("/register", handlers.NewRegisterHandler(authService))
				r.Post("/login", handlers.NewLoginHandler(authService))
				r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
				r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))
				r.Post("/setup-password", handlers.NewSetupPasswordHandler(authService))
			})

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/profile", handlers.NewProfileHandler(authService))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(authMiddleware, arbiterOnly)
				r.Get("/users", handlers.NewListUsersHandler(adminService))
				r.Post("/users", handlers.NewCreateUserHandler(adminService))
				r.Delete("/users/{id}", handlers.NewDeleteUserHandler(adminService))
				r.Delete("/reset-all-data", handlers.NewResetDataHandler(adminService))
			})
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/available", handlers.NewAvailableSessionsHandler(sessionService))
			r.Post("/{sessionId}/join", handlers.NewJoinSessionHandler(sessionService))
			r.Get("/{sessionId}/taster", handlers.NewTasterViewHandler(sessionService))

			r.Group(func(r chi.Router) {
				r.Use(arbiterOnly)
				r.Post("/", handlers.NewCreateSessionHandler(sessionService))
				r.Get("/admin/all", handlers.NewListSessionsHandler(sessionService))
				r.Get("/{sessionId}", handlers.NewGetSessionHandler(sessionService))
				r.Patch("/{sessionId}/status", handlers.NewSetSessionStatusHandler(sessionService))
				r.Delete("/{sessionId}", handlers.NewDeleteSessionHandler(sessionService))
				r.Post("/{sessionId}/bottles", handlers.NewAddBottleHandler(sessionService))
				r.Delete("/bottles/{bottleId}", handlers.NewRemoveBottleHandler(sessionService))
				r.Post("/{sessionId}/participants", handlers.NewAddParticipantHandler(sessionService))
			})
		})

		r.Route("/tastings", func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/", handlers.NewCreateTastingHandler(tastingService))
			r.Get("/", handlers.NewListTastingsHandler(tastingService))
			r.Get("/statistics", handlers.NewUserStatisticsHandler(statsService))
			r.Get("/rankings", handlers.NewBottleRankingsHandler(statsService))
			r.Get("/global-statistics", handlers.NewGlobalStatisticsHandler(statsService))
			r.Get("/{id}", handlers.NewGetTastingHandler(tastingService))
			r.Delete("/{id}", handlers.NewDeleteTastingHandler(tastingService))

			r.Group(func(r chi.Router) {
				r.Use(arbiterOnly)
				r.Get("/admin/all", handlers.NewListAllTastingsHandler(tastingService))
				r.Get("/admin/detailed-statistics", handlers.NewDetailedStatisticsHandler(statsService))
				r.Get("/admin/rankings", handlers.NewGlobalRankingsHandler(statsService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// seedArbiter ensures the arbiter account exists. The insert is a no-op
// when the email is already registered.
func seedArbiter(ctx context.Context, users *repositories.UserWriteRepository, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	created, err := users.SeedArbiter(ctx, "arbiter", email, string(hash))
	if err != nil {
		logger.Log.Errorw("failed to seed arbiter account", "error", err)
		return err
	}
	if created {
		logger.Log.Infof("Arbiter account seeded with email %s", email)
	}
	return nil
}
