package main

import (
	"log"
	"os"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/bootstrap"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/config"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/controllers"
	_ "github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/docs"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/services"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           SwiftIn Backend
// @version         1.0
// @description     Multi-tenant hospitality back-office API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting SwiftIn Backend with log level: %s", config.Cfg.LogLevel)

	// 3) Connect primary store (GORM, server-level)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Primary store is nil after ConnectDB")
	}

	// 4) Build the tenant registry and wire services
	registry := tenant.NewRegistry(tenant.Options{
		Primary:         config.DB,
		DSNFor:          config.PrimaryDSN,
		SystemDatabases: config.Cfg.SystemDatabases,
		NameMaxLen:      config.Cfg.DBNameMaxLen,
	})
	controllers.SetRegistry(registry)
	controllers.SetPropertyService(services.NewPropertyService())
	controllers.SetReservationService(services.NewReservationService())
	controllers.SetFolioService(services.NewFolioService())

	if err := bootstrap.LoadData(registry); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/api")
	{
		controllers.RegisterPropertyRoutes(v1)

		scoped := v1.Group("")
		scoped.Use(controllers.TenantMiddleware())
		{
			controllers.RegisterReservationRoutes(scoped)
			controllers.RegisterFolioRoutes(scoped)
		}
	}

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Run
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	logger.Infof("Starting server at port %s", port)
	router.Run("0.0.0.0:" + port)
}
