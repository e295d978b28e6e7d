package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dshowevents/contratia/internal/document"
)

// DOCXRenderer builds an editable Word version of the contract and
// invoice. Styling mirrors the PDF: centered header, bold uppercase
// clause titles, grey footer text.
type DOCXRenderer struct{}

func NewDOCX() *DOCXRenderer {
	return &DOCXRenderer{}
}

func (r *DOCXRenderer) Render(doc document.Document, baseName string) (Artifact, error) {
	w := docx.New().WithDefaultTheme()

	appendNodes(w, doc.Contract)
	w.AddParagraph().AddPageBreaks()
	appendNodes(w, doc.Invoice)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return Artifact{}, fmt.Errorf("write docx: %w", err)
	}
	return Artifact{
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		FileName:    baseName + ".docx",
		Data:        buf.Bytes(),
	}, nil
}

func appendNodes(w *docx.Docx, nodes []document.Node) {
	for _, n := range nodes {
		switch n.Type {
		case document.NodeHeader:
			title := w.AddParagraph().Justification("center")
			title.AddText(n.Title).Size("36").Bold()
			sub := w.AddParagraph().Justification("center")
			sub.AddText(n.Subtitle).Size("22").Color("6B7280")
			w.AddParagraph()
		case document.NodeParagraph:
			appendParagraph(w, n.Parts, "")
		case document.NodeList:
			for _, item := range n.Items {
				appendParagraph(w, item.Parts, "•  ")
			}
		case document.NodeClause:
			p := w.AddParagraph()
			p.AddText(strconv.Itoa(n.Number) + ". " + strings.ToUpper(n.Title)).Size("21").Bold()
			appendNodes(w, n.Content)
			w.AddParagraph()
		case document.NodeSummary:
			if n.Title != "" {
				w.AddParagraph().AddText(strings.ToUpper(n.Title)).Size("21").Bold()
			}
			for _, d := range n.Details {
				p := w.AddParagraph()
				p.AddText(d.Label + " ").Bold()
				p.AddText(d.Value)
			}
			w.AddParagraph()
		case document.NodeSignatures:
			w.AddParagraph()
			for _, d := range n.Details {
				w.AddParagraph().AddText("_________________________________")
				p := w.AddParagraph()
				p.AddText(d.Label).Bold()
				if d.Value != "" {
					w.AddParagraph().AddText(d.Value)
				}
				w.AddParagraph()
			}
		case document.NodeSpacer:
			w.AddParagraph()
		case document.NodeTable:
			appendTable(w, n)
		}
	}
}

// appendParagraph flattens styled parts into paragraphs. Parts marked
// as line breaks start a fresh paragraph, which is how Word keeps the
// bill-to block one line per field.
func appendParagraph(w *docx.Docx, parts []document.TextPart, prefix string) {
	p := w.AddParagraph()
	if prefix != "" {
		p.AddText(prefix)
	}
	first := true
	for _, part := range parts {
		for i, line := range strings.Split(part.Text, "\n") {
			if !first && (i > 0 || part.LineBreak) {
				p = w.AddParagraph()
			}
			line = strings.TrimLeft(line, "\n")
			run := p.AddText(line)
			if part.Bold {
				run.Bold()
			}
			if part.Italic {
				run.Italic()
			}
			first = false
		}
	}
}

func appendTable(w *docx.Docx, n document.Node) {
	rows := len(n.Rows) + 1
	cols := len(n.Headers)
	if cols == 0 {
		return
	}
	tbl := w.AddTable(rows, cols, 9000, nil)
	for c, h := range n.Headers {
		tbl.TableRows[0].TableCells[c].AddParagraph().AddText(strings.ToUpper(h)).Bold()
	}
	for r, row := range n.Rows {
		for c, cell := range row {
			if c >= cols {
				break
			}
			target := tbl.TableRows[r+1].TableCells[c]
			for _, line := range strings.Split(cell, "\n") {
				target.AddParagraph().AddText(line)
			}
		}
	}
	w.AddParagraph()
}
