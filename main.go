package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jamapi/config"
	"jamapi/controllers"
	"jamapi/database"
	"jamapi/routes"
	"jamapi/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Redis is optional; without it the ongoing-jam lookup always hits
	// the database.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
	}

	jams := services.NewJamService(db, rdb, logger)
	teams := services.NewTeamService(db)
	users := services.NewUserService(db)
	infractions := services.NewInfractionService(db)
	winners := services.NewWinnerService(db)

	router := routes.SetupRouter(cfg, logger, controllers.Controllers{
		Jams:        controllers.NewJamController(jams, logger),
		Teams:       controllers.NewTeamController(teams, logger),
		Users:       controllers.NewUserController(users, logger),
		Infractions: controllers.NewInfractionController(infractions, logger),
		Winners:     controllers.NewWinnerController(winners, logger),
	})

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
