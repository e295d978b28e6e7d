package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/db"
	"github.com/dshowevents/contratia/internal/document"
	"github.com/dshowevents/contratia/internal/document/render"
	"github.com/dshowevents/contratia/internal/draft"
	draftdomain "github.com/dshowevents/contratia/internal/draft/domain"
	"github.com/dshowevents/contratia/internal/history"
	historydomain "github.com/dshowevents/contratia/internal/history/domain"
	"github.com/dshowevents/contratia/internal/logger"
	"github.com/dshowevents/contratia/internal/metrics"
	"github.com/dshowevents/contratia/internal/pricing"
	"github.com/dshowevents/contratia/internal/server"
	"github.com/dshowevents/contratia/internal/suggest"
	"github.com/dshowevents/contratia/internal/workflow"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			return conn.AutoMigrate(&draftdomain.Draft{}, &historydomain.Entry{})
		}),
		pricing.Module,
		document.Module,
		render.Module,
		draft.Module,
		history.Module,
		workflow.Module,
		suggest.Module,
		metrics.Module,
		server.Module,
	)
	app.Run()
}
