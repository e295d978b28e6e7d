package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/logger"
)

const maxPromptLength = 2000

var (
	ErrPromptTooLong = errors.New("prompt_too_long")
	ErrEmptyPrompt   = errors.New("empty_prompt")
	// ErrUnavailable hides upstream detail; operators see specifics in
	// the logs, clients just retry later.
	ErrUnavailable = errors.New("suggestion_unavailable")
)

var Module = fx.Module("suggest",
	fx.Provide(NewService),
)

// Service proxies free-text field suggestions to the generative
// language API so the key never reaches the browser.
type Service struct {
	http     *http.Client
	endpoint string
	apiKey   string
}

func NewService(cfg config.Config) *Service {
	return &Service{
		http:     &http.Client{Timeout: 15 * time.Second},
		endpoint: cfg.Suggest.Endpoint,
		apiKey:   cfg.Suggest.APIKey,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if len(prompt) > maxPromptLength {
		return "", ErrPromptTooLong
	}
	if s.apiKey == "" {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	log := logger.FromContext(ctx)
	resp, err := s.http.Do(req)
	if err != nil {
		log.Warn("suggestion call failed", zap.Error(err))
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("suggestion upstream status", zap.Int("status", resp.StatusCode))
		return "", ErrUnavailable
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Warn("suggestion decode failed", zap.Error(err))
		return "", ErrUnavailable
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnavailable
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}
