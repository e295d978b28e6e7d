package workflow

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
)

var payloadClock = clock.Fixed(time.Date(2026, 6, 15, 12, 0, 0, 0, clock.BusinessZone))

func TestSetupTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "---"},
		{"whenever", "Hora invalida"},
		{"6:00 PM", "4:00 PM"},
		{"1:30 PM", "11:30 AM"},
		{"12:00 PM", "10:00 AM"},
		{"1:00 AM", "11:00 PM"},
		{"12:15 AM", "10:15 PM"},
	}
	for _, tc := range cases {
		if got := SetupTime(tc.in); got != tc.want {
			t.Errorf("SetupTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildMusicPayload(t *testing.T) {
	o := domain.Initial(domain.KindMusic, "2026")
	o.ContractNumber = "DSE-2026-001"
	o.ClientName = "Ana Rivera"
	o.TotalCost = "500"
	o.Balance = "375.00"
	o.SoundOption = domain.SoundUpgrade

	p, ok := BuildPayload(o, payloadClock).(MusicPayload)
	if !ok {
		t.Fatalf("payload type = %T, want MusicPayload", BuildPayload(o, payloadClock))
	}
	if p.ContractType != "music" {
		t.Fatalf("contract_type = %q", p.ContractType)
	}
	if p.TotalAmount != "500.00" {
		t.Fatalf("total_servicios = %q, want normalized 500.00", p.TotalAmount)
	}
	if p.RemainingBalance != "375.00" {
		t.Fatalf("balance_restante = %q", p.RemainingBalance)
	}
	if p.ContractYear != 2026 {
		t.Fatalf("ano_contrato = %d", p.ContractYear)
	}
	if p.SoundOption != "upgrade" {
		t.Fatalf("opcion_sonido = %q", p.SoundOption)
	}
}

func TestBuildBoothPayloadMarkers(t *testing.T) {
	o := domain.Initial(domain.KindBooth, "2026")
	o.PhotoBooth = true
	o.Video360 = false
	o.SpeakerAddon = domain.AddonHire
	o.EarlySetupAddon = domain.AddonNoHire
	o.BrandingAddon = domain.AddonPending
	o.Location = "outdoor"
	o.ServiceTime = "6:00 PM"
	o.EventDay = "20"
	o.EventMonth = "junio"
	o.EventYear = "2026"

	p, ok := BuildPayload(o, payloadClock).(BoothPayload)
	if !ok {
		t.Fatal("expected BoothPayload")
	}
	if p.PhotoBooth != "X" || p.VideoBooth360 != "" {
		t.Fatalf("booth markers = %q/%q", p.PhotoBooth, p.VideoBooth360)
	}
	if p.SpeakerAddon != "X" {
		t.Fatalf("bocina_photo = %q, want X for hired addon", p.SpeakerAddon)
	}
	if p.EarlySetupAddon != "" || p.BrandingAddon != "" {
		t.Fatalf("unhired addons marked: %q/%q", p.EarlySetupAddon, p.BrandingAddon)
	}
	if p.LocationIndoor != "" || p.LocationOutdoor != "X" {
		t.Fatalf("location markers = %q/%q", p.LocationIndoor, p.LocationOutdoor)
	}
	if p.SetupTime != "4:00 PM" {
		t.Fatalf("hora_montaje = %q, want two hours before service", p.SetupTime)
	}
	if p.EventDate != "20 de Junio del 2026" {
		t.Fatalf("fecha_evento = %q", p.EventDate)
	}
	if p.IssueDate != "15/6/2026" {
		t.Fatalf("fecha_emision = %q", p.IssueDate)
	}
}

func TestBuildDJPayloadEnvelope(t *testing.T) {
	o := domain.Initial(domain.KindDJ, "2026")
	o.ContractNumber = "DSE-2026-009"
	o.SetupType = domain.SetupPremium
	o.Electrical = "110v"
	o.VenueFloor = ""
	o.TotalCost = "1000"
	o.Deposit50 = "500.00"
	o.Balance50 = "500.00"

	p, ok := BuildPayload(o, payloadClock).(DJPayload)
	if !ok {
		t.Fatal("expected DJPayload")
	}
	if p.Form != "contrato_dj" {
		t.Fatalf("formulario = %q", p.Form)
	}
	ph := p.Placeholders
	if ph.SetupPremium != "X" || ph.SetupDeluxe != "" {
		t.Fatalf("setup markers = %q/%q", ph.SetupPremium, ph.SetupDeluxe)
	}
	if ph.Electrical110 != "X" || ph.Electrical240 != "" {
		t.Fatalf("electrical markers = %q/%q", ph.Electrical110, ph.Electrical240)
	}
	if ph.EventFloor != "___________________" {
		t.Fatalf("piso_evento = %q, want blank line placeholder", ph.EventFloor)
	}
	if ph.TotalFees != "1000.00" {
		t.Fatalf("honorarios_total = %q", ph.TotalFees)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := envelope["placeholders"]; !ok {
		t.Fatal("dj payload missing placeholders envelope")
	}
}

func TestBuildDJPayloadOutdoorGatesProtectionFields(t *testing.T) {
	o := domain.Initial(domain.KindDJ, "2026")
	o.SurfaceType = "grama"
	o.TentByClient = true
	o.LevelArea = true

	// Indoor events suppress every outdoor field even when set.
	o.IsOutdoor = "no"
	ph := BuildPayload(o, payloadClock).(DJPayload).Placeholders
	if ph.SurfaceType != "" || ph.TentByClient != "" || ph.LevelArea != "" {
		t.Fatalf("indoor event leaked outdoor fields: %+v", ph)
	}

	o.IsOutdoor = "yes"
	ph = BuildPayload(o, payloadClock).(DJPayload).Placeholders
	if ph.SurfaceType != "grama" || ph.TentByClient != "X" || ph.LevelArea != "X" {
		t.Fatalf("outdoor fields = %q/%q/%q", ph.SurfaceType, ph.TentByClient, ph.LevelArea)
	}
	if ph.NoProtection != "" || ph.VehicleAccess != "" {
		t.Fatalf("unset protections marked: %q/%q", ph.NoProtection, ph.VehicleAccess)
	}
}
