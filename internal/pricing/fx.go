package pricing

import (
	"github.com/dshowevents/contratia/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing",
	fx.Provide(func(cfg config.Config) (Pricing, error) {
		return Load(cfg.PricingFile)
	}),
)
