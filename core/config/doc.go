// Package config provides configuration management for the record reconciler.
//
// It loads an optional .env file with godotenv and maps environment variables onto
// the Config struct with Viper. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
//   - Source: old and new snapshot locations (SOURCE_OLD, SOURCE_NEW) and the
//     extra locations HTTP callers may name (SOURCE_ALLOWED)
//   - Reconcile: delimiter, strict columns, trailing comparison, sampling seed
//   - Report: output format, details, diff
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and default bucket
//   - Database: connection used by db:// sources
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.New)
package config
