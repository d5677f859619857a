package cmd

import (
	"record-reconciler/core/config"
	"record-reconciler/core/database"
	"record-reconciler/core/source"
	"record-reconciler/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newSourceLoader builds the snapshot loader with whichever optional backends
// are enabled. A backend that fails to connect is logged and left out; locations
// needing it then fail as read errors.
func newSourceLoader(cfg *config.Config, l *zap.Logger) *source.Loader {
	var client storage.Client
	if cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Optional storage client failed", zap.Error(err))
		} else {
			client = c
		}
	}

	var db *gorm.DB
	if cfg.Database.Enabled {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			l.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			l.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return source.NewLoader(client, cfg.Storage.Bucket, db, cfg.Reconcile.Delimiter)
}
