package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"practicehub_backend/internal/config"
	"practicehub_backend/internal/email"
	"practicehub_backend/internal/geo"
	"practicehub_backend/internal/handlers"
	"practicehub_backend/internal/logger"
	"practicehub_backend/internal/middleware"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
	"practicehub_backend/internal/routes"
	"practicehub_backend/internal/services"
	"practicehub_backend/internal/storage"
	"practicehub_backend/internal/validator"
)

// Run boots the whole service: config, database, dependencies, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := OpenDatabase(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDatabase connects to Postgres and migrates the schema. TranslateError
// turns driver duplicate-key failures into gorm.ErrDuplicatedKey, which the
// account repository relies on.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Practice{},
		&models.Address{},
		&models.Account{},
		&models.PendingRegistration{},
		&models.IntakeForm{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	pendingRepo := repositories.NewPendingRegistrationRepository(db)
	practiceRepo := repositories.NewPracticeRepository(db)
	formRepo := repositories.NewFormRepository(db)

	svc := &services.ServiceContainer{
		Auth:     services.NewAuthService(accountRepo, pendingRepo, newEmailProvider(cfg), cfg),
		User:     services.NewUserService(accountRepo),
		Practice: services.NewPracticeService(accountRepo, practiceRepo, newGeocoder(cfg)),
		Form:     services.NewFormService(formRepo, store, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
	}

	appHandlers := handlers.NewAppHandlers(svc, validator.New(), cfg.Upload.MaxSize)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	routes.RegisterRoutes(router, appHandlers, cfg.JWT.Secret)

	return router, nil
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("no SMTP host configured, using mock email provider")
		return email.NewMockProvider()
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, email.NewTemplateManager())
}

func newGeocoder(cfg *config.Config) geo.Geocoder {
	if cfg.Geocoding.Endpoint == "" || cfg.Geocoding.APIKey == "" {
		logger.Warn("no geocoding credentials configured, addresses will not be verified")
		return geo.NoopGeocoder{}
	}

	timeout := time.Duration(cfg.Geocoding.TimeoutSeconds) * time.Second
	return geo.NewClient(cfg.Geocoding.Endpoint, cfg.Geocoding.APIKey, timeout)
}
