package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/document"
	"github.com/dshowevents/contratia/internal/pricing"
)

func sampleDocument(t *testing.T) document.Document {
	t.Helper()
	fixed := clock.Fixed(time.Date(2026, 6, 15, 12, 0, 0, 0, clock.BusinessZone))
	b := document.NewBuilder(pricing.Default(), fixed)

	o := domain.Initial(domain.KindMusic, "2026")
	o.ContractNumber = "DSE-2026-007"
	o.ClientName = "José Camacho"
	o.ClientEmail = "jose@example.com"
	o.SoundOption = domain.SoundUpgrade
	o.TotalCost = "500.00"
	o.Balance = "525.00"
	o.EventDay = "20"
	o.EventMonth = "junio"
	o.EventYear = "2026"
	return b.Build(o)
}

func TestHTMLRendererEscapesAndStructures(t *testing.T) {
	doc := sampleDocument(t)
	doc.Contract = append(doc.Contract, document.Node{
		Type:  document.NodeParagraph,
		Parts: []document.TextPart{{Text: "<script>alert(1)</script>"}},
	})

	art, err := NewHTML().Render(doc, "contrato-DSE-2026-007")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	html := string(art.Data)

	if art.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", art.ContentType)
	}
	if art.FileName != "contrato-DSE-2026-007.html" {
		t.Fatalf("file name = %q", art.FileName)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("client text not escaped")
	}
	for _, want := range []string{
		"D&#39; SHOW EVENTS",
		"#DSE-2026-007",
		"José Camacho",
		"$525.00 USD",
		"class=\"signatures\"",
		"page-break",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}

func TestHTMLRendererClauseNumbersInOrder(t *testing.T) {
	doc := sampleDocument(t)
	art, err := NewHTML().Render(doc, "contrato")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	html := string(art.Data)

	last := 0
	for _, n := range doc.Contract {
		if n.Type != document.NodeClause {
			continue
		}
		if n.Number != last+1 {
			t.Fatalf("clause %q numbered %d after %d", n.Title, n.Number, last)
		}
		last = n.Number
		if !strings.Contains(html, ">"+strconv.Itoa(n.Number)+". ") {
			t.Fatalf("clause %d not present in html", n.Number)
		}
	}
}

func TestHTMLRendererDeterministic(t *testing.T) {
	doc := sampleDocument(t)
	r := NewHTML()
	a, err := r.Render(doc, "contrato")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	b, err := r.Render(doc, "contrato")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatal("same tree rendered different bytes")
	}
}

func TestPDFRendererProducesDocument(t *testing.T) {
	doc := sampleDocument(t)
	art, err := NewPDF().Render(doc, "contrato-DSE-2026-007")
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if art.ContentType != "application/pdf" {
		t.Fatalf("content type = %q", art.ContentType)
	}
	if art.FileName != "contrato-DSE-2026-007.pdf" {
		t.Fatalf("file name = %q", art.FileName)
	}
	if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
		t.Fatal("output is not a pdf")
	}
}

func TestDOCXRendererProducesArchive(t *testing.T) {
	doc := sampleDocument(t)
	art, err := NewDOCX().Render(doc, "contrato-DSE-2026-007")
	if err != nil {
		t.Fatalf("render docx: %v", err)
	}
	if art.FileName != "contrato-DSE-2026-007.docx" {
		t.Fatalf("file name = %q", art.FileName)
	}
	// docx files are zip archives.
	if !bytes.HasPrefix(art.Data, []byte("PK")) {
		t.Fatal("output is not a zip container")
	}
}
