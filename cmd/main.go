package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/metricmind/habit-health-api/internal/handlers"

	"github.com/metricmind/habit-health-api/internal/jwt"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/migrations"
	"github.com/metricmind/habit-health-api/internal/repositories"
	"github.com/metricmind/habit-health-api/internal/services"

	"github.com/metricmind/habit-health-api/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate limit settings per route group.
const (
	generalLimit  = 100
	generalWindow = 15 * time.Minute

	loginLimit  = 5
	loginWindow = 15 * time.Minute

	registerLimit  = 3
	registerWindow = time.Hour

	writeLimit  = 30
	writeWindow = time.Minute
)

// @title Habit & Health API
// @version 1.0.0
// @description Service for tracking personal habits and health metrics
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. An empty address disables activity event publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "habit-activity")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, sets up routes and middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Log.Fatal("failed to set migration dialect:", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("failed to apply migrations:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events. Optional: services tolerate a nil writer.
	var eventWriter services.EventWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
		logger.Log.Infof("Publishing activity events to %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	habitReadRepo := repositories.NewHabitReadRepository(db)
	habitWriteRepo := repositories.NewHabitWriteRepository(db)
	entryReadRepo := repositories.NewHabitEntryReadRepository(db)
	entryWriteRepo := repositories.NewHabitEntryWriteRepository(db)
	metricReadRepo := repositories.NewHealthMetricReadRepository(db)
	metricWriteRepo := repositories.NewHealthMetricWriteRepository(db)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, eventWriter)
	habitService := services.NewHabitService(habitReadRepo, habitWriteRepo, eventWriter)
	entryService := services.NewEntryService(entryReadRepo, entryWriteRepo, eventWriter)
	metricService := services.NewMetricService(metricReadRepo, metricWriteRepo, eventWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	getProfileHandler := handlers.NewGetProfileHandler(authService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(authService)
	changePasswordHandler := handlers.NewChangePasswordHandler(authService)
	listHabitsHandler := handlers.NewListHabitsHandler(habitService)
	createHabitHandler := handlers.NewCreateHabitHandler(habitService)
	getHabitHandler := handlers.NewGetHabitHandler(habitService)
	updateHabitHandler := handlers.NewUpdateHabitHandler(habitService)
	deleteHabitHandler := handlers.NewDeleteHabitHandler(habitService)
	toggleHabitHandler := handlers.NewToggleHabitHandler(habitService)
	listEntriesHandler := handlers.NewListHabitEntriesHandler(entryService)
	createEntryHandler := handlers.NewCreateHabitEntryHandler(entryService)
	listMetricsHandler := handlers.NewListHealthMetricsHandler(metricService)
	createMetricHandler := handlers.NewCreateHealthMetricHandler(metricService)
	deleteMetricHandler := handlers.NewDeleteHealthMetricHandler(metricService)
	healthCheckHandler := handlers.NewHealthCheckHandler(buildVersion)

	// Middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	ownershipMiddleware := middlewares.HabitOwnershipMiddleware(habitService)
	txMiddleware := middlewares.TxMiddleware(db)

	generalLimiter := middlewares.RateLimitMiddleware(rateLimitRepo, "general", generalLimit, generalWindow,
		"Too many requests, please try again later")
	loginLimiter := middlewares.RateLimitMiddleware(rateLimitRepo, "login", loginLimit, loginWindow,
		"Too many login attempts, please try again later")
	registerLimiter := middlewares.RateLimitMiddleware(rateLimitRepo, "register", registerLimit, registerWindow,
		"Too many accounts created, please try again later")
	writeLimiter := middlewares.RateLimitMiddleware(rateLimitRepo, "write", writeLimit, writeWindow,
		"Too many write requests, please slow down")

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(generalLimiter)

		r.Get("/health-check", healthCheckHandler)

		r.Route("/auth", func(r chi.Router) {
			r.With(registerLimiter, txMiddleware).Post("/register", registerHandler)
			r.With(loginLimiter).Post("/login", loginHandler)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/profile", getProfileHandler)
				r.With(txMiddleware).Put("/profile", updateProfileHandler)
				r.With(txMiddleware).Post("/change-password", changePasswordHandler)
			})
		})

		r.Route("/habits", func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/", listHabitsHandler)
			r.With(writeLimiter, txMiddleware).Post("/", createHabitHandler)

			r.Route("/{habitID}", func(r chi.Router) {
				r.Use(ownershipMiddleware)

				r.Get("/", getHabitHandler)
				r.With(writeLimiter, txMiddleware).Put("/", updateHabitHandler)
				r.With(writeLimiter, txMiddleware).Delete("/", deleteHabitHandler)
				r.With(writeLimiter, txMiddleware).Patch("/toggle", toggleHabitHandler)

				r.Get("/entries", listEntriesHandler)
				r.With(writeLimiter, txMiddleware).Post("/entries", createEntryHandler)
			})
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/", listMetricsHandler)
			r.With(writeLimiter, txMiddleware).Post("/", createMetricHandler)
			r.With(writeLimiter, txMiddleware).Delete("/{metricID}", deleteMetricHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
