package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type suggestRequest struct {
	Prompt string `json:"prompt"`
}

// @Summary      Generate Suggestion
// @Description  Proxy a free-text suggestion request to the AI backend
// @Tags         suggest
// @Accept       json
// @Produce      json
// @Param        request body suggestRequest true "Prompt"
// @Success      200
// @Router       /suggest [post]
func (s *Server) Suggest(c *gin.Context) {
	if !s.suggestLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	text, err := s.suggestion.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		s.metrics.ObserveSuggestion("error")
		AbortWithError(c, err)
		return
	}
	s.metrics.ObserveSuggestion("success")
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"text": text}})
}
