package config

import (
	"os"
	"time"
)

// parseEnv overlays environment variables last, so deployment environments
// (and a godotenv-loaded .env file) win over flags and the JSON file.
// Empty variables are ignored.
func parseEnv(config *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&config.Addr, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.RedisURL, "REDIS_URL")
	setString(&config.FeedChannel, "FEED_CHANNEL")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.AdminPassphraseHash, "ADMIN_PASSPHRASE_HASH")
	setString(&config.RegistrationPrefix, "REGISTRATION_PREFIX")
	setString(&config.S3AccessKey, "S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "S3_SECRET_KEY")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
