package config

import (
	"log"

	"github.com/spf13/viper"

	"upsell/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Compatibility rules source: "default" or "mongo".
	RulesSource  string `mapstructure:"RULES_SOURCE"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Quote store: "memory" or "redis".
	QuoteStore    string `mapstructure:"QUOTE_STORE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQuoteDB  int    `mapstructure:"REDIS_QUOTE_DB"`

	// Pricing context used when a request omits one.
	PricingDefaults models.PricingContext `mapstructure:",squash"`
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

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("RULES_SOURCE", "default")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "upsell")
	v.SetDefault("QUOTE_STORE", "memory")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_QUOTE_DB", 0)
	v.SetDefault("DEFAULT_SEASONAL_MULTIPLIER", 1.0)
	v.SetDefault("DEFAULT_LOYALTY_DISCOUNT", 0.0)
	v.SetDefault("DEFAULT_GROUP_SIZE", 1)
	v.SetDefault("DEFAULT_ADVANCE_BOOKING_DAYS", 14)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMongoRules reports whether the catalog and rules are loaded from MongoDB.
func UsesMongoRules() bool {
	return AppConfig.RulesSource == "mongo"
}

// UsesRedisQuotes reports whether quotes are kept in Redis.
func UsesRedisQuotes() bool {
	return AppConfig.QuoteStore == "redis"
}
