package history

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/history/service"
)

var Module = fx.Module("history",
	fx.Provide(func(db *gorm.DB, node *snowflake.Node, log *zap.Logger, cfg config.Config) *service.Service {
		return service.NewService(db, node, log, cfg.HistoryMax)
	}),
)
