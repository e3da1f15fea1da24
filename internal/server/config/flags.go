package config

import (
	"flag"
	"os"
	"time"

	"github.com/mpcportal/admissions/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-r string   Redis URL for the change feed (empty = in-process broker)
//	-f string   change-feed channel name
//	-s string   JWT HMAC secret key
//	-t int      admin token validity, minutes
//	-m string   admin passphrase bcrypt hash
//	-n string   registration number prefix
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-d", "-r", "-f", "-s", "-t", "-m", "-n", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL for the change feed")
	fs.StringVar(&config.FeedChannel, "f", config.FeedChannel, "change feed channel")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token_validity (in minutes)")

	fs.StringVar(&config.AdminPassphraseHash, "m", config.AdminPassphraseHash, "admin passphrase bcrypt hash")
	fs.StringVar(&config.RegistrationPrefix, "n", config.RegistrationPrefix, "registration number prefix")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
