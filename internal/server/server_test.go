package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/config"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/document"
	"github.com/dshowevents/contratia/internal/document/render"
	draftdomain "github.com/dshowevents/contratia/internal/draft/domain"
	draftservice "github.com/dshowevents/contratia/internal/draft/service"
	historydomain "github.com/dshowevents/contratia/internal/history/domain"
	historyservice "github.com/dshowevents/contratia/internal/history/service"
	"github.com/dshowevents/contratia/internal/metrics"
	"github.com/dshowevents/contratia/internal/pricing"
	"github.com/dshowevents/contratia/internal/suggest"
	"github.com/dshowevents/contratia/internal/workflow"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, clock.BusinessZone)

func newTestServer(t *testing.T, webhookURL string) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&draftdomain.Draft{}, &historydomain.Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	cfg := config.Config{
		Environment:   "test",
		HistoryMax:    50,
		SubmitTimeout: 5 * time.Second,
		DraftDebounce: time.Millisecond,
		Webhooks:      config.WebhookConfig{Music: webhookURL, Booth: webhookURL, DJ: webhookURL},
	}
	fixed := clock.Fixed(testNow)
	log := zap.NewNop()
	prices := pricing.Default()

	srv := NewServer(Params{
		Config:     cfg,
		Log:        log,
		Clock:      fixed,
		Pricing:    prices,
		Builder:    document.NewBuilder(prices, fixed),
		HTML:       render.NewHTML(),
		PDF:        render.NewPDF(),
		DOCX:       render.NewDOCX(),
		Drafts:     draftservice.NewStore(conn, log, cfg.DraftDebounce),
		History:    historyservice.NewService(conn, node, log, cfg.HistoryMax),
		Workflow:   workflow.NewClient(cfg, fixed),
		Suggestion: suggest.NewService(cfg),
		Metrics:    metrics.NewAPI(),
	})
	return srv, srv.Router()
}

func validOrder() domain.Order {
	o := domain.Initial(domain.KindMusic, "2026")
	o.ContractNumber = "042"
	o.ClientName = "Ana Rivera"
	o.ClientEmail = "ana@example.com"
	o.ClientPhone = "787-555-1234"
	o.ActivityType = "Boda"
	o.Address = "Hotel Caribe, San Juan"
	o.ServiceDescription = "Música en vivo - 3 horas"
	o.ServiceTime = "6:00 PM"
	o.EventDay = "20"
	o.EventMonth = "junio"
	o.EventYear = "2026"
	o.TotalCost = "500.00"
	o.SoundOption = domain.SoundBasic
	return o
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewOrderEndpoint(t *testing.T) {
	_, r := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/new?kind=booth", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data domain.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Kind != domain.KindBooth {
		t.Fatalf("kind = %s", resp.Data.Kind)
	}
	if resp.Data.ParkingSpaces != "2" || resp.Data.ServiceHours != "2 horas" {
		t.Fatalf("booth defaults = %+v", resp.Data)
	}
	if resp.Data.EventYear != "2026" {
		t.Fatalf("event year = %q, want current business year", resp.Data.EventYear)
	}
}

func TestNewOrderRejectsUnknownKind(t *testing.T) {
	_, r := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/new?kind=catering", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRecomputeIgnoresClientDerivedFields(t *testing.T) {
	_, r := newTestServer(t, "")

	o := validOrder()
	o.DepositApplies = true
	o.Balance = "999999.99" // client-sent derived value, must be recomputed

	w := postJSON(t, r, "/v1/orders/recompute", o)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			Order domain.Order      `json:"order"`
			Patch map[string]string `json:"patch"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Order.Balance != "375.00" {
		t.Fatalf("remaining balance = %q, want 375.00", resp.Data.Order.Balance)
	}
	if resp.Data.Patch["remaining_balance"] != "375.00" {
		t.Fatalf("patch = %v", resp.Data.Patch)
	}
}

func TestRecomputeNormalizesKindCasing(t *testing.T) {
	_, r := newTestServer(t, "")

	o := validOrder()
	o.Kind = domain.Kind("MUSIC")
	o.Balance = "999999.99"

	w := postJSON(t, r, "/v1/orders/recompute", o)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			Order domain.Order      `json:"order"`
			Patch map[string]string `json:"patch"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Order.Kind != domain.KindMusic {
		t.Fatalf("kind = %q, want %q", resp.Data.Order.Kind, domain.KindMusic)
	}
	if resp.Data.Order.Balance != "375.00" {
		t.Fatalf("remaining balance = %q, want 375.00", resp.Data.Order.Balance)
	}
}

func TestValidateReportsFieldErrors(t *testing.T) {
	_, r := newTestServer(t, "")

	o := validOrder()
	o.ClientName = ""
	o.ClientEmail = "not-an-email"
	o.EventYear = "1999"

	w := postJSON(t, r, "/v1/orders/validate", o)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Valid {
		t.Fatal("order reported valid")
	}
	for _, field := range []string{"client_name", "client_email", "event_day"} {
		if resp.Data.Errors[field] == "" {
			t.Fatalf("missing error for %s: %v", field, resp.Data.Errors)
		}
	}
}

func TestSubmitFlow(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		json.NewEncoder(w).Encode(workflow.GeneratedLinks{
			Success: true,
			DocURL:  "https://docs.example/d/1",
			PDFURL:  "https://docs.example/p/1",
		})
	}))
	defer webhook.Close()

	srv, r := newTestServer(t, webhook.URL)

	w := postJSON(t, r, "/v1/orders/submit", validOrder())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), "https://docs.example/d/1") {
		t.Fatalf("body = %s", w.Body)
	}

	entries, err := srv.history.List(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if len(entries) != 1 || entries[0].ContractNumber != "042" {
		t.Fatalf("history = %+v", entries)
	}
}

func TestMetricsEndpointCountsSubmissions(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		json.NewEncoder(w).Encode(workflow.GeneratedLinks{Success: true, DocURL: "https://docs.example/d/1"})
	}))
	defer webhook.Close()

	_, r := newTestServer(t, webhook.URL)

	if w := postJSON(t, r, "/v1/orders/submit", validOrder()); w.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `contratia_submissions_total{kind="music",outcome="success"} 1`) {
		t.Fatalf("metrics body = %s", w.Body)
	}
}

func TestSubmitRejectsInvalidOrder(t *testing.T) {
	_, r := newTestServer(t, "http://unused.invalid")

	o := validOrder()
	o.ClientPhone = "123"

	w := postJSON(t, r, "/v1/orders/submit", o)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), "client_phone") {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestSubmitRateLimit(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		json.NewEncoder(w).Encode(workflow.GeneratedLinks{Success: true, DocURL: "https://docs.example/d"})
	}))
	defer webhook.Close()

	_, r := newTestServer(t, webhook.URL)

	var last int
	for i := 0; i < 6; i++ {
		w := postJSON(t, r, "/v1/orders/submit", validOrder())
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("sixth submit status = %d, want 429", last)
	}
}

func TestDocumentPreviewAndExports(t *testing.T) {
	_, r := newTestServer(t, "")

	w := postJSON(t, r, "/v1/documents/preview", validOrder())
	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("preview content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Ana Rivera") {
		t.Fatal("preview missing client name")
	}

	w = postJSON(t, r, "/v1/documents/export/pdf", validOrder())
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "contrato-042.pdf") {
		t.Fatalf("pdf disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("pdf body is not a pdf")
	}

	w = postJSON(t, r, "/v1/documents/export/docx", validOrder())
	if w.Code != http.StatusOK {
		t.Fatalf("docx status = %d", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("docx body is not a zip container")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	_, r := newTestServer(t, "")

	payload := `{"client_name":"Ana","kind":"music"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/drafts/music", strings.NewReader(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("save status = %d: %s", w.Code, w.Body)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/drafts/music", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("load status = %d", w.Code)
	}
	if w.Body.String() != payload {
		t.Fatalf("draft = %s", w.Body)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/drafts/music", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/drafts/music", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("load after clear status = %d", w.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	srv, r := newTestServer(t, "")

	entry, err := srv.history.Add(httptest.NewRequest(http.MethodGet, "/", nil).Context(), historyservice.AddInput{
		ContractNumber: "DSE-2026-003",
		Kind:           "music",
		ClientName:     "Ana",
		EventDate:      "2026-06-20",
		Links:          workflow.GeneratedLinks{Success: true},
	})
	if err != nil {
		t.Fatalf("seed history: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "DSE-2026-003") {
		t.Fatalf("list: %d %s", w.Code, w.Body)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/history/"+entry.ID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/history", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", w.Code)
	}
}

func TestSuggestRequiresPrompt(t *testing.T) {
	_, r := newTestServer(t, "")

	w := postJSON(t, r, "/v1/suggest", map[string]string{"prompt": ""})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
}

func TestCatalogEndpointFallsBackToSpanish(t *testing.T) {
	_, r := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/i18n/fr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Data struct {
			Locale string `json:"locale"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Locale != "es" {
		t.Fatalf("locale = %q, want es fallback", resp.Data.Locale)
	}
}
