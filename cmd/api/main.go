package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"humancapital-api/config"
	_ "humancapital-api/docs" // Swagger spec
	v1 "humancapital-api/internal/delivery/http/v1"
	"humancapital-api/internal/repository/postgres"
	"humancapital-api/internal/usecase"
	"humancapital-api/migrations"
	"humancapital-api/pkg/auth"
	"humancapital-api/pkg/database"
	"humancapital-api/pkg/email"
	"humancapital-api/pkg/logger"
	"humancapital-api/pkg/redis"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/storage"

	"github.com/gin-gonic/gin"
)

// @title           HumanCapital API
// @version         1.0
// @description     Job board backend: candidate and company profiles, job listings, applications and saved jobs.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.Environment)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	secLogger := security.InitSecurityLogger("humancapital-api", cfg.Environment)
	defer secLogger.Sync()
	logger.Log.Info("Starting HumanCapital API", "port", cfg.Port, "env", cfg.Environment)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(migrations.Files, cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database migrations applied")
	}

	// 4. Redis is optional; rate limiting falls back to memory without it
	var redisPing usecase.PingFunc
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	} else {
		redisPing = redis.HealthCheck
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	profileViewRepo := postgres.NewProfileViewRepository(dbPool)

	// 6. Media storage and email
	store, err := storage.New(ctx, storage.Config{
		Type:            cfg.StorageType,
		LocalPath:       cfg.StorageLocalPath,
		PublicBaseURL:   cfg.StoragePublicURL,
		Provider:        cfg.S3Provider,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to set up media storage", "error", err)
		os.Exit(1)
	}
	var localUploads string
	if local, ok := store.(*storage.LocalStore); ok {
		localUploads = local.Root()
	}

	var notifier usecase.StatusNotifier
	emailService := email.NewEmailService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
	})
	if emailService.IsConfigured() {
		notifier = emailService
	} else {
		logger.Log.Warn("Email service not configured - application status emails are disabled")
	}

	// 7. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	uploadUC := usecase.NewUploadUsecase(store)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(userRepo, tokens),
		UserUC:        usecase.NewUserUsecase(userRepo, candidateRepo, companyRepo),
		CandidateUC:   usecase.NewCandidateUsecase(candidateRepo, companyRepo, uploadUC),
		CompanyUC:     usecase.NewCompanyUsecase(companyRepo, candidateRepo, uploadUC),
		JobUC:         usecase.NewJobUsecase(jobRepo, companyRepo, candidateRepo, uploadUC),
		ApplicationUC: usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, companyRepo),
		SavedJobUC:    usecase.NewSavedJobUsecase(savedJobRepo, jobRepo, candidateRepo, companyRepo),
		DashboardUC:   usecase.NewDashboardUsecase(jobRepo, applicationRepo, candidateRepo, companyRepo, notifier),
		ProfileViewUC: usecase.NewProfileViewUsecase(profileViewRepo, candidateRepo, companyRepo),
		UploadUC:      uploadUC,
		HealthUC:      usecase.NewHealthUsecase(dbPool.Ping, redisPing),
		Tokens:        tokens,
		Config:        cfg,

		LocalUploadsDir: localUploads,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
