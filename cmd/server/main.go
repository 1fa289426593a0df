package main

import (
	"os"
	"time"

	"anoa.com/gatheringregistry/internal/config"
	"anoa.com/gatheringregistry/internal/handler"
	"anoa.com/gatheringregistry/internal/middleware"
	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"anoa.com/gatheringregistry/internal/search"
	"anoa.com/gatheringregistry/internal/service"
	"anoa.com/gatheringregistry/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.AppEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin user")
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Warn().Msg("REDIS_URL not set, rate limiting disabled")
	}

	searchSvc := search.New(cfg.MeiliSearchHost, cfg.MeiliMasterKey)
	if searchSvc == nil {
		log.Warn().Msg("MEILISEARCH_HOST not set, search indexing disabled")
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	gatheringRepo := repository.NewGatheringRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authService)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	groupService := service.NewGroupService(groupRepo)
	groupHandler := handler.NewGroupHandler(groupService)

	memberService := service.NewMemberService(memberRepo, groupRepo, searchSvc)
	memberHandler := handler.NewMemberHandler(memberService)

	gatheringService := service.NewGatheringService(gatheringRepo, searchSvc)
	gatheringHandler := handler.NewGatheringHandler(gatheringService)

	registrationService := service.NewRegistrationService(
		registrationRepo, memberRepo, redisClient,
		service.WithSelfRegisterRateLimit(cfg.RateLimitRegister),
	)
	summaryService := service.NewSummaryService(registrationRepo)
	registrationHandler := handler.NewRegistrationHandler(registrationService, summaryService)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")

	// Public routes: the landing page needs the gathering/group/member
	// lists to fill its form, plus self-service registration.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/register", userHandler.Register)
	api.GET("/gatherings", gatheringHandler.GetAll)
	api.GET("/groups", groupHandler.GetAll)
	api.GET("/members", memberHandler.GetAll)
	api.GET("/registrations/active", registrationHandler.GetActive)
	api.GET("/registrations/summary", registrationHandler.GetSummary)
	api.POST("/registrations/self", registrationHandler.SelfRegister)

	// Dashboard routes (admin session required)
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/gatherings", gatheringHandler.Create)
		api.PUT("/gatherings", gatheringHandler.Update)
		api.DELETE("/gatherings", gatheringHandler.Delete)

		api.POST("/groups", groupHandler.Create)
		api.PUT("/groups", groupHandler.Update)
		api.DELETE("/groups", groupHandler.Delete)

		api.POST("/members", memberHandler.Create)
		api.PUT("/members", memberHandler.Update)
		api.DELETE("/members", memberHandler.Delete)

		api.GET("/registrations", registrationHandler.GetAll)
		api.POST("/registrations", registrationHandler.Create)
		api.PUT("/registrations", registrationHandler.Update)
		api.DELETE("/registrations", registrationHandler.Delete)

		users := api.Group("/users")
		users.Use(authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.GetAll)
			users.POST("", userHandler.Create)
			users.PUT("", userHandler.Update)
			users.DELETE("", userHandler.Delete)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Member{},
		&model.Gathering{},
		&model.Registration{},
	)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@example.com").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Info().Msg("admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Info().Str("email", adminUser.Email).Msg("admin user seeded")
	return nil
}
