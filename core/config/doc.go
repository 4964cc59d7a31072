// Package config provides configuration management for the equipment tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded through godotenv before Viper reads the environment).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, admin and master API keys, return rate limit, CORS origins
//   - Database: driver (postgres, mysql, sqlite) and connection details
//   - Cache: Redis connection used for merge confirmation tokens
//   - Storage: S3/MinIO credentials and the bucket receiving history exports
//   - Pin: secret key for hashing borrower PINs
//   - Log: Logging level and format
//
// Defaults live in the `default` struct tags of each section and every key can be
// overridden by its upper-cased env name (database.driver -> DATABASE_DRIVER).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
