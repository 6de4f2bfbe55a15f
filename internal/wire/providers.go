package wire

import (
	"log"
	"os"
	"strconv"

	"pitchside/internal/challenge"
	chathandler "pitchside/internal/chat/handler"
	"pitchside/internal/common"
	"pitchside/internal/config"
	"pitchside/internal/dbmysql"
	"pitchside/internal/realtime"
	"pitchside/internal/scoreboard"

	"gorm.io/gorm"
)

// Application bundles everything main needs to run the server.
type Application struct {
	Config           *config.Config
	DB               *gorm.DB
	Hub              *realtime.Hub
	ChatHandler      *chathandler.ChatHandler
	StreamHandler    *chathandler.StreamHandler
	ChallengeHandler *challenge.Handler
	ScoreHandler     *scoreboard.Handler
}

func ProvideConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  15,
			WriteTimeout: 0, // streaming endpoint needs an unbounded write window
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: config.DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "pitchside_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "pitchside_db"),
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Realtime: config.RealtimeConfig{
			Workers:           getIntEnvOrDefault("REALTIME_WORKERS", 4),
			ChannelBufferSize: getIntEnvOrDefault("REALTIME_BUFFER", 1000),
			SubscriberBuffer:  getIntEnvOrDefault("REALTIME_SUB_BUFFER", 64),
		},
		Chat: config.ChatConfig{
			DefaultPageSize: 50,
			MaxPageSize:     100,
		},
		Logging: config.LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

func ProvideDatabaseConnection(cfg *config.Config) (*gorm.DB, error) {
	log.Printf("Attempting to connect to database: %s:%s/%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DatabaseName)

	return dbmysql.NewMySQL(cfg)
}

func ProvideHub(cfg *config.Config) *realtime.Hub {
	return realtime.NewHub(
		cfg.Realtime.Workers,
		cfg.Realtime.ChannelBufferSize,
		cfg.Realtime.SubscriberBuffer,
	)
}

func ProvidePublisher(hub *realtime.Hub) common.Publisher {
	return hub
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
