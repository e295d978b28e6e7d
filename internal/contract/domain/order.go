package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshowevents/contratia/internal/i18n"
)

// Kind is the service category of an order. It determines which fields,
// clauses, and derivation rules apply.
type Kind string

const (
	KindMusic Kind = "music"
	KindBooth Kind = "booth"
	KindDJ    Kind = "dj"
)

func ParseKind(raw string) (Kind, bool) {
	switch Kind(strings.TrimSpace(strings.ToLower(raw))) {
	case KindMusic:
		return KindMusic, true
	case KindBooth:
		return KindBooth, true
	case KindDJ:
		return KindDJ, true
	}
	return "", false
}

type SoundOption string

const (
	SoundClient  SoundOption = "client"
	SoundBasic   SoundOption = "basic"
	SoundUpgrade SoundOption = "upgrade"
	SoundPending SoundOption = "pending"
)

type AddonChoice string

const (
	AddonHire    AddonChoice = "hire"
	AddonNoHire  AddonChoice = "no_hire"
	AddonPending AddonChoice = "pending"
)

type SetupType string

const (
	SetupPremium SetupType = "premium"
	SetupDeluxe  SetupType = "deluxe"
)

// Order is the complete set of fields describing one service engagement.
// Derived fields (remaining balance, booth description, DJ duration and
// 50/50 split, package name) are owned by the derivation engine and are
// never accepted from callers.
type Order struct {
	Kind Kind `json:"kind"`

	ContractNumber string      `json:"contract_number"`
	ClientName     string      `json:"client_name"`
	ClientEmail    string      `json:"client_email"`
	ClientPhone    string      `json:"client_phone"`
	EventDay       string      `json:"event_day"`
	EventMonth     string      `json:"event_month"`
	EventYear      string      `json:"event_year"`
	TotalCost      string      `json:"total_cost"`
	Balance        string      `json:"remaining_balance"`
	Address        string      `json:"address"`
	ActivityType   string      `json:"activity_type"`
	Notes          string      `json:"notes"`
	InvoiceNotes   string      `json:"invoice_notes"`
	DepositApplies bool        `json:"deposit_applies"`
	Locale         i18n.Locale `json:"locale"`
	ParkingSpaces  string      `json:"parking_spaces"`

	// Music.
	SoundOption        SoundOption `json:"sound_option"`
	ServiceDescription string      `json:"service_description"`
	ServiceTime        string      `json:"service_time"`

	// Booth.
	PhotoBooth      bool        `json:"photo_booth_selected"`
	Video360        bool        `json:"video360_selected"`
	SpeakerAddon    AddonChoice `json:"speaker_addon"`
	EarlySetupAddon AddonChoice `json:"early_setup_addon"`
	BrandingAddon   AddonChoice `json:"branding_addon"`
	Location        string      `json:"location"`
	ServiceHours    string      `json:"service_hours"`

	// DJ.
	EventDateISO      string    `json:"event_date_iso"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	DurationText      string    `json:"duration_text"`
	GuestCount        string    `json:"guest_count"`
	VenueName         string    `json:"venue_name"`
	VenueFloor        string    `json:"venue_floor"`
	VenueContact      string    `json:"venue_contact"`
	VenuePhone        string    `json:"venue_phone"`
	SetupRestrictions string    `json:"setup_restrictions"`
	SetupType         SetupType `json:"setup_type"`
	Electrical        string    `json:"electrical"`
	IsOutdoor         string    `json:"is_outdoor"`
	SurfaceType       string    `json:"surface_type"`
	TentByClient      bool      `json:"protection_tent_by_client"`
	FixedStructure    bool      `json:"protection_permanent_structure"`
	NoProtection      bool      `json:"protection_none"`
	LevelArea         bool      `json:"protection_level_area"`
	VehicleAccess     bool      `json:"protection_vehicle_access"`
	PackageName       string    `json:"package_name"`
	SetupColor        string    `json:"setup_color"`
	Deposit50         string    `json:"deposit_50"`
	Balance50         string    `json:"balance_50"`
}

// Initial returns the starting order for a freshly selected kind, with
// the event year defaulted to the current business year.
func Initial(kind Kind, year string) Order {
	o := Order{
		Kind:           kind,
		ContractNumber: "001",
		EventYear:      year,
		Balance:        "0.00",
		DepositApplies: true,
		SoundOption:    SoundPending,
		Locale:         i18n.ES,
		ParkingSpaces:  "5",
	}
	switch kind {
	case KindBooth:
		o.ParkingSpaces = "2"
		o.TotalCost = "0.00"
		o.ServiceHours = "2 horas"
		o.SpeakerAddon = AddonNoHire
		o.EarlySetupAddon = AddonNoHire
		o.BrandingAddon = AddonNoHire
	case KindDJ:
		o.ParkingSpaces = "2"
		o.TotalCost = "0.00"
		o.DurationText = "0 horas"
		o.IsOutdoor = "no"
		o.Deposit50 = "0.00"
		o.Balance50 = "0.00"
	}
	return o
}

// CompositeEventDate renders the event date as "YYYY-MM-DD" for
// validation. DJ orders carry the ISO date directly; the other kinds
// assemble it from the three parts. Incomplete dates yield "".
func (o Order) CompositeEventDate() string {
	if o.Kind == KindDJ {
		return o.EventDateISO
	}
	if o.EventDay == "" || o.EventMonth == "" || o.EventYear == "" {
		return ""
	}
	month := i18n.MonthNumber(o.EventMonth)
	if month == 0 {
		return ""
	}
	day, err := strconv.Atoi(o.EventDay)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", o.EventYear, month, day)
}

// SetEventDate syncs the three event-date parts from an ISO date. An
// empty value resets them, keeping the given fallback year. The month
// stays a canonical Spanish token regardless of locale.
func (o *Order) SetEventDate(iso, fallbackYear string) {
	o.EventDateISO = iso
	if iso == "" {
		o.EventDay, o.EventMonth, o.EventYear = "", "", fallbackYear
		return
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return
	}
	o.EventDay = strconv.Itoa(t.Day())
	o.EventMonth = i18n.MonthToken(int(t.Month()))
	o.EventYear = strconv.Itoa(t.Year())
}
