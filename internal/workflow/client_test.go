package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/contract/domain"
)

func newSubmitClient(url string) *Client {
	cfg := config.Config{
		SubmitTimeout: 5 * time.Second,
		Webhooks:      config.WebhookConfig{Music: url, Booth: url, DJ: url},
	}
	return NewClient(cfg, clock.Fixed(time.Date(2026, 6, 15, 12, 0, 0, 0, clock.BusinessZone)))
}

func TestSubmitReturnsLinks(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(GeneratedLinks{
			Success:        true,
			DocURL:         "https://docs.example/d/1",
			PDFURL:         "https://docs.example/p/1",
			PDFDownloadURL: "https://docs.example/p/1/download",
			FileName:       "contrato.pdf",
		})
	}))
	defer srv.Close()

	o := domain.Initial(domain.KindMusic, "2026")
	o.ContractNumber = "DSE-2026-001"

	links, err := newSubmitClient(srv.URL).Submit(context.Background(), o)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if links.DocURL != "https://docs.example/d/1" || links.FileName != "contrato.pdf" {
		t.Fatalf("links = %+v", links)
	}
	if received["numero_contrato"] != "DSE-2026-001" {
		t.Fatalf("payload numero_contrato = %v", received["numero_contrato"])
	}
}

func TestSubmitNonJSONResponseFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Accepted"))
	}))
	defer srv.Close()

	_, err := newSubmitClient(srv.URL).Submit(context.Background(), domain.Initial(domain.KindBooth, "2026"))
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("err = %v, want invalid JSON error", err)
	}
}

func TestSubmitServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scenario disabled", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newSubmitClient(srv.URL).Submit(context.Background(), domain.Initial(domain.KindDJ, "2026"))
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("err = %v, want status error", err)
	}
}

func TestSubmitUnsuccessfulResultUsesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeneratedLinks{Success: false, Message: "quota exceeded"})
	}))
	defer srv.Close()

	_, err := newSubmitClient(srv.URL).Submit(context.Background(), domain.Initial(domain.KindMusic, "2026"))
	if err == nil || err.Error() != "quota exceeded" {
		t.Fatalf("err = %v, want scenario message", err)
	}
}

func TestSubmitWithoutConfiguredWebhook(t *testing.T) {
	c := NewClient(config.Config{SubmitTimeout: time.Second}, clock.SystemClock{})
	_, err := c.Submit(context.Background(), domain.Initial(domain.KindMusic, "2026"))
	if err != ErrWebhookNotConfigured {
		t.Fatalf("err = %v, want ErrWebhookNotConfigured", err)
	}
}
