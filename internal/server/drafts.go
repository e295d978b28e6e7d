package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshowevents/contratia/internal/contract/domain"
)

// @Summary      Save Draft
// @Description  Autosave the working copy of a form
// @Tags         drafts
// @Accept       json
// @Param        kind  path  string  true  "Service kind"
// @Success      204
// @Router       /drafts/{kind} [put]
func (s *Server) SaveDraft(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be music, booth or dj"))
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || !json.Valid(body) {
		AbortWithError(c, invalidRequestError())
		return
	}

	s.drafts.Save(c.Request.Context(), string(kind), body)
	c.Status(http.StatusNoContent)
}

// @Summary      Get Draft
// @Description  Load the last autosaved form state
// @Tags         drafts
// @Produce      json
// @Param        kind  path  string  true  "Service kind"
// @Success      200
// @Router       /drafts/{kind} [get]
func (s *Server) GetDraft(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be music, booth or dj"))
		return
	}

	payload, err := s.drafts.Load(c.Request.Context(), string(kind))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// @Summary      Clear Draft
// @Description  Discard the autosaved form state
// @Tags         drafts
// @Param        kind  path  string  true  "Service kind"
// @Success      204
// @Router       /drafts/{kind} [delete]
func (s *Server) ClearDraft(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be music, booth or dj"))
		return
	}

	if err := s.drafts.Clear(c.Request.Context(), string(kind)); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
