package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/derive"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/logger"
	"github.com/dshowevents/contratia/internal/validate"
)

// @Summary      New Order
// @Description  Initial order values for a service kind
// @Tags         orders
// @Produce      json
// @Param        kind  query  string  true  "Service kind (music, booth, dj)"
// @Success      200  {object}  domain.Order
// @Router       /orders/new [get]
func (s *Server) NewOrder(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Query("kind"))
	if !ok {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be music, booth or dj"))
		return
	}

	year := strconv.Itoa(clock.BusinessNow(s.clock).Year())
	order, _ := derive.Recompute(domain.Initial(kind, year), s.pricing)
	c.JSON(http.StatusOK, gin.H{"data": order})
}

type recomputeResponse struct {
	Order domain.Order `json:"order"`
	Patch derive.Patch `json:"patch"`
}

// @Summary      Recompute Order
// @Description  Recompute derived fields and return the changed set
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body domain.Order true "Order"
// @Success      200  {object}  recomputeResponse
// @Router       /orders/recompute [post]
func (s *Server) RecomputeOrder(c *gin.Context) {
	order, ok := s.bindOrder(c)
	if !ok {
		return
	}

	order, patch := derive.Recompute(order, s.pricing)
	c.JSON(http.StatusOK, gin.H{"data": recomputeResponse{Order: order, Patch: patch}})
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// @Summary      Validate Order
// @Description  Field-level validation of a full order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body domain.Order true "Order"
// @Success      200  {object}  validateResponse
// @Router       /orders/validate [post]
func (s *Server) ValidateOrder(c *gin.Context) {
	order, ok := s.bindOrder(c)
	if !ok {
		return
	}

	errs := validate.Order(s.clock, order)
	c.JSON(http.StatusOK, gin.H{"data": validateResponse{Valid: len(errs) == 0, Errors: errs}})
}

// @Summary      Submit Order
// @Description  Validate, post to the document workflow, record history
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body domain.Order true "Order"
// @Success      200  {object}  workflow.GeneratedLinks
// @Router       /orders/submit [post]
func (s *Server) SubmitOrder(c *gin.Context) {
	if !s.submitLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	order, ok := s.bindOrder(c)
	if !ok {
		return
	}
	order, _ = derive.Recompute(order, s.pricing)

	if errs := validate.Order(s.clock, order); len(errs) > 0 {
		s.metrics.ObserveSubmission(string(order.Kind), "invalid")
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error": &APIError{Code: "validation_failed", Message: "order has invalid fields"},
			"fields": errs,
		})
		return
	}

	ctx := c.Request.Context()
	links, err := s.workflow.Submit(ctx, order)
	if err != nil {
		s.metrics.ObserveSubmission(string(order.Kind), "error")
		AbortWithError(c, &APIError{
			Status:  http.StatusBadGateway,
			Code:    "generation_failed",
			Message: err.Error(),
		})
		return
	}

	s.metrics.ObserveSubmission(string(order.Kind), "success")
	if _, err := s.history.Add(ctx, historyInput(order, links)); err != nil {
		// History is best effort; the documents already exist.
		logger.FromContext(ctx).Warn("history append failed", zap.Error(err))
	}
	if err := s.drafts.Clear(ctx, string(order.Kind)); err != nil {
		logger.FromContext(ctx).Warn("draft clear failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": links})
}

// bindOrder decodes the request body and normalizes derived state: the
// derivation engine owns those fields, so whatever the client sent for
// them is recomputed before use.
func (s *Server) bindOrder(c *gin.Context) (domain.Order, bool) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		AbortWithError(c, invalidRequestError())
		return domain.Order{}, false
	}
	kind, ok := domain.ParseKind(string(order.Kind))
	if !ok {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be music, booth or dj"))
		return domain.Order{}, false
	}
	order.Kind = kind
	return order, true
}
