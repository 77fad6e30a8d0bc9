package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"haolaplus/internal/config"
	"haolaplus/internal/handlers"
	"haolaplus/internal/middleware"
	"haolaplus/internal/pdf"
	"haolaplus/internal/repositories"
	"haolaplus/internal/routes"
	"haolaplus/internal/services"
	"haolaplus/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "haolaplus/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Connexion à la base impossible : ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[app] fermeture base : %v", err)
		}
	}()

	if err := runMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatal("Migrations : ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewAccessTokenRepository(db)
	smsRepo := repositories.NewSmsVerificationRepository(db)
	resetRepo := repositories.NewResetCodeRepository(db)
	paysRepo := repositories.NewPaysRepository(db)
	regionRepo := repositories.NewRegionRepository(db)
	villeRepo := repositories.NewVilleRepository(db)
	quartierRepo := repositories.NewQuartierRepository(db)
	logRepo := repositories.NewLogActivityRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	tokenService := services.NewTokenService(tokenRepo)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	twilioClient := utils.NewTwilioClient(cfg.Twilio.DryRun)
	verificationService := services.NewVerificationService(smsRepo, userRepo, twilioClient)

	signer := utils.NewURLSigner(cfg.App.Secret, cfg.Server.BaseURL, 0)

	userService := services.NewUserService(
		db, userRepo, authService, tokenService, emailService,
		verificationService, signer, telegramService,
	)
	passwordResetService := services.NewPasswordResetService(
		resetRepo, userRepo, authService, emailService, verificationService,
	)
	geoService := services.NewGeoService(paysRepo, regionRepo, villeRepo, quartierRepo)
	logService := services.NewLogActivityService(logRepo)

	reportGen := pdf.NewReportGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf")

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService, tokenService, verificationService, logService)
	userHandler := handlers.NewUserHandler(userService, tokenService, logService)
	passwordHandler := handlers.NewPasswordHandler(passwordResetService)
	paysHandler := handlers.NewPaysHandler(geoService)
	regionHandler := handlers.NewRegionHandler(geoService)
	villeHandler := handlers.NewVilleHandler(geoService)
	quartierHandler := handlers.NewQuartierHandler(geoService)
	logHandler := handlers.NewLogHandler(logService, reportGen)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.RequestID())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.Auth(tokenService, userRepo)
	routes.SetupRoutes(
		router,
		authRequired,
		authHandler,
		userHandler,
		passwordHandler,
		paysHandler,
		regionHandler,
		villeHandler,
		quartierHandler,
		logHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[app] serveur lancé sur %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Lancement du serveur impossible : ", err)
	}
}

func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	log.Printf("[app] migrations appliquées")
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
