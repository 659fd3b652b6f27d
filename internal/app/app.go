package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"physique_backend/internal/classifier"
	"physique_backend/internal/config"
	"physique_backend/internal/database"
	"physique_backend/internal/engine"
	"physique_backend/internal/handlers"
	"physique_backend/internal/logger"
	"physique_backend/internal/middleware"
	"physique_backend/internal/routes"
	"physique_backend/internal/services"
	"physique_backend/internal/validator"
	"physique_backend/internal/workers"
)

// Run boots the full service: config, logging, database, engine data,
// background workers and the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	worker := workers.NewCleanupWorker(gormDB)
	worker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter loads the engine's static data and wires services,
// handlers and middleware into a gin engine. The rule table and the
// class mapping are required; a missing file refuses startup.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	rules, err := engine.LoadRuleTable(cfg.Engine.PlanRulesPath)
	if err != nil {
		logger.Fatal("Failed to load plan rules", "path", cfg.Engine.PlanRulesPath, "error", err)
	}
	logger.Info("Plan rules loaded", "rules", rules.Len())

	mapping, err := classifier.LoadClassMapping(cfg.Engine.ClassMappingPath)
	if err != nil {
		logger.Fatal("Failed to load class mapping", "path", cfg.Engine.ClassMappingPath, "error", err)
	}
	logger.Info("Class mapping loaded", "classes", len(mapping))

	eng := engine.NewEngine(rules)
	serviceContainer := services.NewServiceContainer(cfg, eng, mapping)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))
	return ginRouter
}
