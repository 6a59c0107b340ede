package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIPort         int
	APITimeout      time.Duration
	WorldFile       string
	HeapArity       int
	RateLimit       bool
	RateLimitRPS    float64
	RateLimitBurst  int
	LogLevel        string
	POISearchRadius int
}

func setDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("WORLD_FILE", "./data/world.world")
	viper.SetDefault("HEAP_ARITY", 4)
	viper.SetDefault("RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("POI_SEARCH_RADIUS", 8)
}

// ReadConfig. read ./data/config.* if present, environment variables always override it.
func ReadConfig() error {
	setDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := ReadConfig(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIPort:         viper.GetInt("API_PORT"),
		APITimeout:      viper.GetDuration("API_TIMEOUT"),
		WorldFile:       viper.GetString("WORLD_FILE"),
		HeapArity:       viper.GetInt("HEAP_ARITY"),
		RateLimit:       viper.GetBool("RATE_LIMIT"),
		RateLimitRPS:    viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  viper.GetInt("RATE_LIMIT_BURST"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		POISearchRadius: viper.GetInt("POI_SEARCH_RADIUS"),
	}
	if cfg.HeapArity < 2 {
		return Config{}, fmt.Errorf("HEAP_ARITY must be at least 2, got %d", cfg.HeapArity)
	}
	return cfg, nil
}
