// Package config loads process configuration from the environment.
package config

import "github.com/spf13/viper"

// Config holds everything the process needs to start.
type Config struct {
	AppPort     string
	MongoURI    string
	MongoDB     string
	RabbitMQURL string
}

// Load reads configuration from environment variables with sane defaults.
// RABBITMQ_URL is optional; when empty, event publishing is disabled.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "katalog")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return Config{
		AppPort:     viper.GetString("APP_PORT"),
		MongoURI:    viper.GetString("MONGO_URI"),
		MongoDB:     viper.GetString("MONGO_DB"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}
