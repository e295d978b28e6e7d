package db

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dshowevents/contratia/internal/config"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open connects to the sqlite database at the configured path. Drafts
// and submission history are the only persisted state, so sqlite is
// enough; the DSN can point at ":memory:" in tests.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", cfg.DatabasePath, err)
	}
	log.Info("database opened", zap.String("path", cfg.DatabasePath))
	return conn, nil
}
