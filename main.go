package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"polyglot-backend/config"
	"polyglot-backend/controller"
	"polyglot-backend/dao"
	"polyglot-backend/logic"
	"polyglot-backend/middleware"
	"polyglot-backend/models"
)

const version = "1.0.0"

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(config.GlobalConfig.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out = os.Stdout
	logger := zerolog.New(out).With().Timestamp().Str("service", "polyglot-backend").Logger()
	if config.GlobalConfig.Log.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger
}

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: polyglot-backend <config.yaml>")
		os.Exit(1)
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config from %s: %v\n", configFile, err)
		os.Exit(1)
	}

	logger := newLogger()
	zlog.Logger = logger

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.ConversationType{},
		&models.Conversation{},
		&models.Transcript{},
		&models.UserProgress{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	langDAO := dao.NewLanguageDAO(db)
	typeDAO := dao.NewConversationTypeDAO(db)
	convoDAO := dao.NewConversationDAO(db)
	progressDAO := dao.NewUserProgressDAO(db)

	if config.GlobalConfig.Database.Seed {
		if err := logic.Seed(langDAO, typeDAO, userDAO); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed reference data")
		}
		logger.Info().Msg("reference data seeded")
	}

	// Initialize Logics
	userLogic := logic.NewUserLogic(userDAO)
	catalogLogic := logic.NewCatalogLogic(langDAO, typeDAO)
	sessionLogic := logic.NewSessionLogic(db, langDAO, typeDAO, convoDAO, progressDAO)
	statsLogic := logic.NewStatsLogic(convoDAO, progressDAO)

	// Initialize Controllers
	authCtrl := controller.NewAuthController(userLogic)
	catalogCtrl := controller.NewCatalogController(catalogLogic)
	sessionCtrl := controller.NewSessionController(sessionLogic)
	statsCtrl := controller.NewStatsController(statsLogic)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GlobalConfig.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(userDAO)
	api := r.Group("/api")
	{
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)
		api.GET("/auth/me", auth, authCtrl.Me)

		api.GET("/languages", catalogCtrl.ListLanguages)
		api.GET("/languages/:code", catalogCtrl.GetLanguage)

		api.GET("/conversations/types", catalogCtrl.ListConversationTypes)
		api.POST("/conversations", auth, sessionCtrl.CreateConversation)
		api.GET("/conversations", auth, sessionCtrl.GetConversations)
		api.GET("/conversations/:id", auth, sessionCtrl.GetConversation)
		api.PATCH("/conversations/:id/end", auth, sessionCtrl.EndConversation)

		api.GET("/users/progress", auth, statsCtrl.GetProgress)
		api.GET("/users/stats", auth, statsCtrl.GetStats)
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, gin.H{"error": "Route not found"})
	})

	// Run server
	logger.Info().Int("port", config.GlobalConfig.Server.Port).Msg("server starting")
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
