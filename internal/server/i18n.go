package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshowevents/contratia/internal/i18n"
)

// @Summary      Get Catalog
// @Description  Form labels for a locale
// @Tags         i18n
// @Produce      json
// @Param        locale  path  string  true  "Locale (es or en)"
// @Success      200
// @Router       /i18n/{locale} [get]
func (s *Server) GetCatalog(c *gin.Context) {
	cat := i18n.For(i18n.ParseLocale(c.Param("locale")))
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"locale":  cat.Locale,
		"form":    cat.Form,
		"dj_form": cat.DJForm,
	}})
}
