package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/dshowevents/contratia/internal/contract/domain"
	historyservice "github.com/dshowevents/contratia/internal/history/service"
	"github.com/dshowevents/contratia/internal/workflow"
)

func historyInput(o domain.Order, links workflow.GeneratedLinks) historyservice.AddInput {
	return historyservice.AddInput{
		ContractNumber: o.ContractNumber,
		Kind:           string(o.Kind),
		ClientName:     o.ClientName,
		EventDate:      o.CompositeEventDate(),
		Links:          links,
	}
}

// @Summary      List History
// @Description  Completed submissions, newest first
// @Tags         history
// @Produce      json
// @Success      200
// @Router       /history [get]
func (s *Server) ListHistory(c *gin.Context) {
	entries, err := s.history.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// @Summary      Remove History Entry
// @Tags         history
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Router       /history/{id} [delete]
func (s *Server) RemoveHistory(c *gin.Context) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid history id"))
		return
	}

	if err := s.history.Remove(c.Request.Context(), snowflake.ID(raw)); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Clear History
// @Tags         history
// @Success      204
// @Router       /history [delete]
func (s *Server) ClearHistory(c *gin.Context) {
	if err := s.history.Clear(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
