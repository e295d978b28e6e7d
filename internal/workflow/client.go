package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/logger"
)

var ErrWebhookNotConfigured = errors.New("webhook_not_configured")

// GeneratedLinks is what a successful scenario run returns: the
// editable document plus the rendered PDF.
type GeneratedLinks struct {
	Success        bool   `json:"success"`
	DocURL         string `json:"doc_url"`
	PDFURL         string `json:"pdf_url"`
	PDFDownloadURL string `json:"pdf_download_url"`
	FileName       string `json:"file_name"`
	Message        string `json:"message,omitempty"`
}

// Client posts submission payloads to the per-kind automation webhooks.
// A submit is a single attempt; the operator retries by resubmitting
// the form, so there is no retry loop here.
type Client struct {
	http     *http.Client
	webhooks config.WebhookConfig
	clock    clock.Clock
}

func NewClient(cfg config.Config, clk clock.Clock) *Client {
	return &Client{
		http:     &http.Client{Timeout: cfg.SubmitTimeout},
		webhooks: cfg.Webhooks,
		clock:    clk,
	}
}

func (c *Client) url(kind domain.Kind) string {
	switch kind {
	case domain.KindMusic:
		return c.webhooks.Music
	case domain.KindBooth:
		return c.webhooks.Booth
	case domain.KindDJ:
		return c.webhooks.DJ
	}
	return ""
}

// Submit posts the payload for an order and returns the generated
// document links. Any failure mode collapses into one error; callers
// surface it verbatim.
func (c *Client) Submit(ctx context.Context, o domain.Order) (GeneratedLinks, error) {
	url := c.url(o.Kind)
	if url == "" {
		return GeneratedLinks{}, ErrWebhookNotConfigured
	}

	body, err := json.Marshal(BuildPayload(o, c.clock))
	if err != nil {
		return GeneratedLinks{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return GeneratedLinks{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	log := logger.FromContext(ctx)
	log.Info("submitting order to workflow",
		zap.String("kind", string(o.Kind)),
		zap.String("contract_number", o.ContractNumber),
		zap.String("client_email", logger.MaskEmail(o.ClientEmail)))

	resp, err := c.http.Do(req)
	if err != nil {
		return GeneratedLinks{}, fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return GeneratedLinks{}, fmt.Errorf("read webhook response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return GeneratedLinks{}, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, raw)
	}

	var links GeneratedLinks
	if err := json.Unmarshal(raw, &links); err != nil {
		return GeneratedLinks{}, fmt.Errorf("webhook response is not valid JSON: %q", raw)
	}
	if !links.Success || links.DocURL == "" {
		msg := links.Message
		if msg == "" {
			msg = "workflow did not return document links"
		}
		return GeneratedLinks{}, errors.New(msg)
	}
	return links, nil
}
