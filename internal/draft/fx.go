package draft

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/draft/service"
)

var Module = fx.Module("draft",
	fx.Provide(func(db *gorm.DB, log *zap.Logger, cfg config.Config) *service.Store {
		return service.NewStore(db, log, cfg.DraftDebounce)
	}),
	fx.Invoke(func(lc fx.Lifecycle, store *service.Store) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				store.Flush()
				return nil
			},
		})
	}),
)
