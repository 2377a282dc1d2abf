package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream collaborators.
	CoreAPIBaseURL         string `mapstructure:"CORE_API_BASE_URL"`
	AgentBaseURL           string `mapstructure:"AGENT_BASE_URL"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Identity provider token verification.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB      int    `mapstructure:"REDIS_AUTH_DB"`
	RedisSessionDB   int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAssistantDB int    `mapstructure:"REDIS_ASSISTANT_DB"`

	// Booking workflow.
	WorkflowSessionTTLMinutes int  `mapstructure:"WORKFLOW_SESSION_TTL_MINUTES"`
	WorkflowRequireContiguous bool `mapstructure:"WORKFLOW_REQUIRE_CONTIGUOUS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORE_API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("AGENT_BASE_URL", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_SESSION_DB", 2)
	viper.SetDefault("REDIS_ASSISTANT_DB", 3)
	viper.SetDefault("WORKFLOW_SESSION_TTL_MINUTES", 30)
	viper.SetDefault("WORKFLOW_REQUIRE_CONTIGUOUS", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The agent endpoint lives alongside the core API unless pointed elsewhere.
	if AppConfig.AgentBaseURL == "" {
		AppConfig.AgentBaseURL = AppConfig.CoreAPIBaseURL
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout returns the per-request deadline for calls to the core API.
func UpstreamTimeout() time.Duration {
	secs := AppConfig.UpstreamTimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// WorkflowSessionTTL returns how long an idle booking workflow session is kept.
func WorkflowSessionTTL() time.Duration {
	mins := AppConfig.WorkflowSessionTTLMinutes
	if mins <= 0 {
		mins = 30
	}
	return time.Duration(mins) * time.Minute
}
