package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the service needs at startup.
type Config struct {
	ServerPort  string
	StockAPIURL string
	AIAPIURL    string
	RedisAddr   string
	HTTPTimeout time.Duration
}

// Load reads configuration from a .env file if present, with OS environment
// variables taking precedence.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)

	cfg := &Config{
		ServerPort:  viper.GetString("SERVER_PORT"),
		StockAPIURL: viper.GetString("STOCK_API_URL"),
		AIAPIURL:    viper.GetString("AI_API_URL"),
		RedisAddr:   viper.GetString("REDIS_ADDR"),
		HTTPTimeout: time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", cfg.ServerPort)
	log.Printf("- Stock API: %s", cfg.StockAPIURL)
	log.Printf("- AI API: %s", cfg.AIAPIURL)
	log.Printf("- Redis: %s", cfg.RedisAddr)

	return cfg
}
