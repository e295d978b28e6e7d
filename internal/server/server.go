package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/document"
	"github.com/dshowevents/contratia/internal/document/render"
	draftservice "github.com/dshowevents/contratia/internal/draft/service"
	historyservice "github.com/dshowevents/contratia/internal/history/service"
	"github.com/dshowevents/contratia/internal/logger"
	"github.com/dshowevents/contratia/internal/metrics"
	"github.com/dshowevents/contratia/internal/pricing"
	"github.com/dshowevents/contratia/internal/suggest"
	"github.com/dshowevents/contratia/internal/workflow"
)

type Params struct {
	fx.In

	Config     config.Config
	Log        *zap.Logger
	Clock      clock.Clock
	Pricing    pricing.Pricing
	Builder    *document.Builder
	HTML       *render.HTMLRenderer
	PDF        *render.PDFRenderer
	DOCX       *render.DOCXRenderer
	Drafts     *draftservice.Store
	History    *historyservice.Service
	Workflow   *workflow.Client
	Suggestion *suggest.Service
	Metrics    *metrics.API
}

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	clock      clock.Clock
	pricing    pricing.Pricing
	builder    *document.Builder
	html       *render.HTMLRenderer
	pdf        *render.PDFRenderer
	docx       *render.DOCXRenderer
	drafts     *draftservice.Store
	history    *historyservice.Service
	workflow   *workflow.Client
	suggestion *suggest.Service
	metrics    *metrics.API

	submitLimiter  *rateLimiter
	suggestLimiter *rateLimiter
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:            p.Config,
		log:            p.Log,
		clock:          p.Clock,
		pricing:        p.Pricing,
		builder:        p.Builder,
		html:           p.HTML,
		pdf:            p.PDF,
		docx:           p.DOCX,
		drafts:         p.Drafts,
		history:        p.History,
		workflow:       p.Workflow,
		suggestion:     p.Suggestion,
		metrics:        p.Metrics,
		submitLimiter:  newRateLimiter(5, time.Minute),
		suggestLimiter: newRateLimiter(10, time.Minute),
	}
}

func (s *Server) Router() *gin.Engine {
	if s.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz", "/metrics"}}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/i18n/:locale", s.GetCatalog)

		v1.GET("/orders/new", s.NewOrder)
		v1.POST("/orders/recompute", s.RecomputeOrder)
		v1.POST("/orders/validate", s.ValidateOrder)
		v1.POST("/orders/submit", s.SubmitOrder)

		v1.POST("/documents/preview", s.PreviewDocument)
		v1.POST("/documents/export/pdf", s.ExportPDF)
		v1.POST("/documents/export/docx", s.ExportDOCX)

		v1.PUT("/drafts/:kind", s.SaveDraft)
		v1.GET("/drafts/:kind", s.GetDraft)
		v1.DELETE("/drafts/:kind", s.ClearDraft)

		v1.GET("/history", s.ListHistory)
		v1.DELETE("/history", s.ClearHistory)
		v1.DELETE("/history/:id", s.RemoveHistory)

		v1.POST("/suggest", s.Suggest)
	}
	return r
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(Run),
)

func Run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
