package config

import (
	"reflect"
	"strings"

	"record-reconciler/core/database"
	"record-reconciler/core/logger"
	"record-reconciler/core/reconcile"
	"record-reconciler/core/report"
	"record-reconciler/core/server"
	"record-reconciler/core/source"
	"record-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source names the old and new snapshot locations.
	Source source.Config `mapstructure:"source"`
	// Reconcile holds parsing and comparison options.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Report holds output options for the compare command.
	Report report.Config `mapstructure:"report"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// Missing .env is fine; the environment alone may configure everything.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// 2. Register every key with its default from the struct tags
	bindValues(v, Config{}, "")

	// 3. Map environment variables to nested keys (SOURCE_OLD -> source.old)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Decode; comma separated values become slices (SOURCE_ALLOWED)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registered even when empty so AutomaticEnv picks the key up; the weak
		// decoder turns "" into false or 0 for typed fields.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
