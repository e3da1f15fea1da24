package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mpcportal/admissions/internal/flagx"
	"github.com/mpcportal/admissions/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file. It uses
// timex.Duration for interval fields so values can be either strings such
// as "8h" or integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config.
type JsonConfig struct {
	Addr                string         `json:"addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	RedisURL            string         `json:"redis_url"`
	FeedChannel         string         `json:"feed_channel"`
	SecretKey           string         `json:"secret_key"`
	TokenValidity       timex.Duration `json:"token_validity"`
	AdminPassphraseHash string         `json:"admin_passphrase_hash"`
	RegistrationPrefix  string         `json:"registration_prefix"`
	S3AccessKey         string         `json:"s3_access_key"`
	S3SecretKey         string         `json:"s3_secret_key"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration from the JSON file named by the -c or
// -config flags. When neither flag is set, nothing is loaded. An unreadable
// or malformed file panics; the server must not start half-configured.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.Addr = c.Addr
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisURL = c.RedisURL
	config.FeedChannel = c.FeedChannel
	config.SecretKey = c.SecretKey
	config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	config.AdminPassphraseHash = c.AdminPassphraseHash
	config.RegistrationPrefix = c.RegistrationPrefix
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
