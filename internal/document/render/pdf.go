package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/dshowevents/contratia/internal/document"
)

const (
	pdfMarginLeft  = 54.0
	pdfMarginTop   = 54.0
	pdfMarginRight = 54.0
	pdfLineHeight  = 15.0
	pdfBodySize    = 10.0
	pdfTitleSize   = 18.0
	pdfClauseSize  = 10.5
)

// PDFRenderer writes US-Letter pages with the core Helvetica font.
// Spanish text goes through the cp1252 translator, which covers the
// full accented range the catalogs use.
type PDFRenderer struct{}

func NewPDF() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(doc document.Document, baseName string) (Artifact, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginTop)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	writeNodes(pdf, tr, doc.Contract)
	pdf.AddPage()
	writeNodes(pdf, tr, doc.Invoice)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, fmt.Errorf("write pdf: %w", err)
	}
	return Artifact{
		ContentType: "application/pdf",
		FileName:    baseName + ".pdf",
		Data:        buf.Bytes(),
	}, nil
}

func writeNodes(pdf *fpdf.Fpdf, tr func(string) string, nodes []document.Node) {
	for _, n := range nodes {
		switch n.Type {
		case document.NodeHeader:
			writeHeader(pdf, tr, n)
		case document.NodeParagraph:
			writeParts(pdf, tr, n.Parts)
			pdf.Ln(pdfLineHeight)
		case document.NodeList:
			for _, item := range n.Items {
				pdf.SetFont("Helvetica", "", pdfBodySize)
				pdf.Write(pdfLineHeight, tr("  \x95  "))
				writeParts(pdf, tr, item.Parts)
				pdf.Ln(pdfLineHeight)
			}
		case document.NodeClause:
			pdf.SetFont("Helvetica", "B", pdfClauseSize)
			pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("%d. %s", n.Number, strings.ToUpper(n.Title))), "", "L", false)
			writeNodes(pdf, tr, n.Content)
			pdf.Ln(4)
		case document.NodeSummary:
			writeSummary(pdf, tr, n)
		case document.NodeSignatures:
			writeSignatures(pdf, tr, n)
		case document.NodeSpacer:
			pdf.Ln(pdfLineHeight)
		case document.NodeTable:
			writeTable(pdf, tr, n)
		}
	}
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, n document.Node) {
	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.CellFormat(0, 24, tr(n.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 16, tr(n.Subtitle), "", 1, "C", false, 0, "")
	pdf.SetTextColor(17, 24, 39)
	pdf.SetLineWidth(1)
	y := pdf.GetY() + 6
	pageW, _ := pdf.GetPageSize()
	pdf.Line(pdfMarginLeft, y, pageW-pdfMarginRight, y)
	pdf.SetY(y + 14)
}

func writeParts(pdf *fpdf.Fpdf, tr func(string) string, parts []document.TextPart) {
	for _, p := range parts {
		if p.LineBreak {
			pdf.Ln(pdfLineHeight)
		}
		style := ""
		if p.Bold {
			style += "B"
		}
		if p.Italic {
			style += "I"
		}
		pdf.SetFont("Helvetica", style, pdfBodySize)
		pdf.Write(pdfLineHeight, tr(p.Text))
	}
}

func writeSummary(pdf *fpdf.Fpdf, tr func(string) string, n document.Node) {
	if n.Title != "" {
		pdf.SetFont("Helvetica", "B", pdfClauseSize)
		pdf.MultiCell(0, pdfLineHeight, tr(strings.ToUpper(n.Title)), "", "L", false)
	}
	pageW, _ := pdf.GetPageSize()
	usable := pageW - pdfMarginLeft - pdfMarginRight
	labelW := usable * 0.4
	for _, d := range n.Details {
		pdf.SetFont("Helvetica", "B", pdfBodySize)
		pdf.CellFormat(labelW, pdfLineHeight, tr(d.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", pdfBodySize)
		pdf.MultiCell(usable-labelW, pdfLineHeight, tr(d.Value), "", "L", false)
	}
	pdf.Ln(8)
}

func writeSignatures(pdf *fpdf.Fpdf, tr func(string) string, n document.Node) {
	pageW, _ := pdf.GetPageSize()
	usable := pageW - pdfMarginLeft - pdfMarginRight
	gap := 40.0
	colW := (usable - gap) / 2

	pdf.Ln(48)
	top := pdf.GetY()
	for i, d := range n.Details {
		x := pdfMarginLeft + float64(i)*(colW+gap)
		pdf.Line(x, top, x+colW, top)
		pdf.SetXY(x, top+4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colW, 12, tr(d.Label), "", 2, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colW, 12, tr(d.Value), "", 0, "C", false, 0, "")
	}
	pdf.Ln(24)
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, n document.Node) {
	pageW, _ := pdf.GetPageSize()
	usable := pageW - pdfMarginLeft - pdfMarginRight
	lastW := usable * 0.22
	firstW := usable - lastW*float64(len(n.Headers)-1)

	colWidth := func(i int) float64 {
		if i == 0 {
			return firstW
		}
		return lastW
	}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range n.Headers {
		pdf.CellFormat(colWidth(i), pdfLineHeight, tr(strings.ToUpper(h)), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, row := range n.Rows {
		top := pdf.GetY()
		bottom := top
		x := pdfMarginLeft
		for i, cell := range row {
			pdf.SetXY(x, top)
			pdf.MultiCell(colWidth(i), pdfLineHeight, tr(cell), "", "L", false)
			if pdf.GetY() > bottom {
				bottom = pdf.GetY()
			}
			x += colWidth(i)
		}
		pdf.SetXY(pdfMarginLeft, bottom)
		pdf.Line(pdfMarginLeft, bottom, pageW-pdfMarginRight, bottom)
		pdf.SetY(bottom + 2)
	}
	pdf.Ln(8)
}
