package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshowevents/contratia/internal/contract/derive"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/document/render"
)

// @Summary      Preview Document
// @Description  Render the contract and invoice as HTML
// @Tags         documents
// @Accept       json
// @Produce      html
// @Param        request body domain.Order true "Order"
// @Success      200
// @Router       /documents/preview [post]
func (s *Server) PreviewDocument(c *gin.Context) {
	s.renderDocument(c, s.html, "html", false)
}

// @Summary      Export PDF
// @Description  Render the contract and invoice as a PDF download
// @Tags         documents
// @Accept       json
// @Produce      octet-stream
// @Param        request body domain.Order true "Order"
// @Success      200
// @Router       /documents/export/pdf [post]
func (s *Server) ExportPDF(c *gin.Context) {
	s.renderDocument(c, s.pdf, "pdf", true)
}

// @Summary      Export DOCX
// @Description  Render the contract and invoice as a Word download
// @Tags         documents
// @Accept       json
// @Produce      octet-stream
// @Param        request body domain.Order true "Order"
// @Success      200
// @Router       /documents/export/docx [post]
func (s *Server) ExportDOCX(c *gin.Context) {
	s.renderDocument(c, s.docx, "docx", true)
}

func (s *Server) renderDocument(c *gin.Context, r render.Renderer, format string, download bool) {
	order, ok := s.bindOrder(c)
	if !ok {
		return
	}
	order, _ = derive.Recompute(order, s.pricing)

	doc := s.builder.Build(order)
	art, err := r.Render(doc, baseFileName(order))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.ObserveExport(format)
	if download {
		c.Header("Content-Disposition", `attachment; filename="`+art.FileName+`"`)
	}
	c.Data(http.StatusOK, art.ContentType, art.Data)
}

func baseFileName(o domain.Order) string {
	if o.ContractNumber == "" {
		return "contrato"
	}
	return "contrato-" + o.ContractNumber
}
