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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/facades"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/handlers"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/middlewares"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/migrations"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/repositories"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"

	_ "github.com/cavxn/AI-Interview-Preparation-System/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AI Interview Preparation System API
// @version 1.0.0
// @description Backend for interview practice sessions with emotion analysis and AI feedback
// @host localhost:8080
// @BasePath /api
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
		redisPoolSize, redisMinIdleConns, questionCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		modelServerURL, modelTimeoutSecond,
		openaiAPIKey, openaiModel, openaiTimeoutSecond,
		logLevel,
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
		redisPoolSize, redisMinIdleConns, questionCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		modelServerURL, modelTimeoutSecond,
		openaiAPIKey, openaiModel, openaiTimeoutSecond,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, model-server, OpenAI, logging,
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, questionCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	modelServerURL string, modelTimeoutSecond int,
	openaiAPIKey, openaiModel string, openaiTimeoutSecond int,
	logLevel string,
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
	pgDB = getEnv("POSTGRES_DB", "interview")
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
	if questionCacheTTLSecond, err = strconv.Atoi(getEnv("QUESTION_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config, empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "interview-events")

	// Emotion model server config, empty URL selects the mock classifier
	modelServerURL = getEnv("MODEL_SERVER_URL", "")
	if modelTimeoutSecond, err = strconv.Atoi(getEnv("MODEL_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// OpenAI config, empty key enables fallback-only feedback
	openaiAPIKey = getEnv("OPENAI_API_KEY", "")
	openaiModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	if openaiTimeoutSecond, err = strconv.Atoi(getEnv("OPENAI_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, external facades, and
// HTTP server. It applies migrations, sets up routes and middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, questionCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	modelServerURL string, modelTimeoutSecond int,
	openaiAPIKey, openaiModel string, openaiTimeoutSecond int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		log.Fatal("failed to apply migrations:", err)
	}
	log.Info("Migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka writer configured for topic %s", kafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, analytics events disabled")
	}

	// Emotion classifier: remote model server or the mock
	var classifier services.Classifier
	if modelServerURL != "" {
		classifier = facades.NewModelClassifier(modelServerURL, time.Duration(modelTimeoutSecond)*time.Second)
		log.Infof("Using model server at %s", modelServerURL)
	} else {
		classifier = facades.NewMockClassifier(time.Now().UnixNano())
		log.Warn("MODEL_SERVER_URL not set, using mock emotion classifier")
	}

	// LLM facade, optional
	var completer services.Completer
	if openaiAPIKey != "" {
		llm, err := facades.NewLLMFacade(openaiAPIKey, openaiModel, time.Duration(openaiTimeoutSecond)*time.Second)
		if err != nil {
			log.Fatal("failed to initialize LLM client:", err)
		}
		completer = llm
		log.Infof("LLM client configured with model %s", openaiModel)
	} else {
		log.Warn("OPENAI_API_KEY not set, feedback falls back to heuristics")
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db, middlewares.GetTxFromContext)
	emotionReadRepo := repositories.NewEmotionReadRepository(db)
	emotionWriteRepo := repositories.NewEmotionWriteRepository(db, middlewares.GetTxFromContext)
	questionCache := repositories.NewQuestionCacheRepository(rdb, time.Duration(questionCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	sessionService := services.NewSessionService(sessionReadRepo, sessionWriteRepo, emotionReadRepo, kafkaWriter)
	emotionService := services.NewEmotionService(classifier, emotionWriteRepo, kafkaWriter)
	feedbackService := services.NewFeedbackService(completer, questionCache)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	googleLoginHandler := handlers.NewGoogleLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService, jwt)
	sessionCreateHandler := handlers.NewSessionCreateHandler(sessionService, jwt)
	sessionUpdateHandler := handlers.NewSessionUpdateHandler(sessionService, jwt)
	sessionListHandler := handlers.NewSessionListHandler(sessionService, jwt)
	sessionSummaryHandler := handlers.NewSessionSummaryHandler(sessionService, jwt)
	dashboardHandler := handlers.NewDashboardHandler(sessionService, jwt)
	analyzeHandler := handlers.NewAnalyzeHandler(emotionService, jwt)
	generateQuestionsHandler := handlers.NewGenerateQuestionsHandler(feedbackService, jwt)
	analyzeAnswerHandler := handlers.NewAnalyzeAnswerHandler(feedbackService, jwt)
	analyzeComprehensiveHandler := handlers.NewAnalyzeComprehensiveHandler(feedbackService, jwt)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/signup", signupHandler)
			r.Post("/google-login", googleLoginHandler)
		})
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Get("/me", meHandler)
			r.Get("/sessions", sessionListHandler)
			r.Get("/sessions/{id}/summary", sessionSummaryHandler)
			r.Get("/dashboard", dashboardHandler)
			r.Post("/generate-questions", generateQuestionsHandler)
			r.Post("/analyze-answer", analyzeAnswerHandler)
			r.Post("/analyze-comprehensive", analyzeComprehensiveHandler)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/sessions", sessionCreateHandler)
				r.Put("/sessions/{id}", sessionUpdateHandler)
				r.Post("/analyze", analyzeHandler)
			})
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
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
