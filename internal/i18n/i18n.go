package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Locale is the closed set of supported contract languages. Order data
// stays canonical (Spanish month tokens) regardless of locale; locale
// affects rendering only.
type Locale string

const (
	ES Locale = "es"
	EN Locale = "en"
)

func ParseLocale(raw string) Locale {
	if strings.TrimSpace(strings.ToLower(raw)) == string(EN) {
		return EN
	}
	return ES
}

// Months are stored lowercase Spanish; this table translates them for
// the English formatter.
var monthsES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var monthsESToEN = map[string]string{
	"enero": "January", "febrero": "February", "marzo": "March",
	"abril": "April", "mayo": "May", "junio": "June",
	"julio": "July", "agosto": "August", "septiembre": "September",
	"octubre": "October", "noviembre": "November", "diciembre": "December",
}

// MonthToken returns the canonical Spanish token for a 1-based month
// index, or "" when out of range.
func MonthToken(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthsES[month-1]
}

// MonthNumber is the inverse of MonthToken; unknown tokens return 0.
func MonthNumber(token string) int {
	token = strings.TrimSpace(strings.ToLower(token))
	for i, m := range monthsES {
		if m == token {
			return i + 1
		}
	}
	return 0
}

// Catalog bundles every user-facing string for one locale together with
// its locale-aware formatters.
type Catalog struct {
	Locale Locale
	Form   FormLabels
	DJForm DJFormLabels
	Doc    DocStrings
}

// For returns the catalog for a locale. The switch is exhaustive over
// the Locale constants; unknown input falls back to Spanish.
func For(locale Locale) Catalog {
	switch locale {
	case EN:
		return catalogEN
	default:
		return catalogES
	}
}

// FormatDate renders a long-form localized event date. Missing parts
// produce the locale's placeholder pattern rather than an empty string.
func (c Catalog) FormatDate(day, month, year string) string {
	if c.Locale == EN {
		return formatDateEN(day, month, year)
	}
	return formatDateES(day, month, year)
}

// FormatParking renders the pluralized parking-spaces phrase.
func (c Catalog) FormatParking(n string) string {
	if c.Locale == EN {
		return n + " spaces"
	}
	return n + " espacios"
}

func formatDateES(day, month, year string) string {
	if day == "" || month == "" || year == "" {
		return "DD de Mes de AAAA"
	}
	capitalized := strings.ToUpper(month[:1]) + month[1:]
	return fmt.Sprintf("%s de %s del %s", day, capitalized, year)
}

func formatDateEN(day, month, year string) string {
	if day == "" || month == "" || year == "" {
		return "Month DDth, YYYY"
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return "Month DD, YYYY"
	}
	suffix := "th"
	switch d {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	english, ok := monthsESToEN[strings.ToLower(month)]
	if !ok {
		english = "Month"
	}
	return fmt.Sprintf("%s %d%s, %s", english, d, suffix, year)
}

// FormLabels covers the music and booth order forms.
type FormLabels struct {
	LanguageTitle       string `json:"language_title"`
	ClientInfoTitle     string `json:"client_info_title"`
	ClientName          string `json:"client_name"`
	ContractNumber      string `json:"contract_number"`
	Phone               string `json:"phone"`
	EventDetailsTitle   string `json:"event_details_title"`
	ActivityType        string `json:"activity_type"`
	ServiceTime         string `json:"service_time"`
	Day                 string `json:"day"`
	Month               string `json:"month"`
	Year                string `json:"year"`
	EventAddress        string `json:"event_address"`
	ServiceDetailsTitle string `json:"service_details_title"`
	ParkingSpaces       string `json:"parking_spaces"`
	ServiceDescription  string `json:"service_description"`
	ContractNotes       string `json:"contract_notes"`
	SoundTitle          string `json:"sound_title"`
	SoundPending        string `json:"sound_pending"`
	SoundClient         string `json:"sound_client"`
	SoundBasic          string `json:"sound_basic"`
	SoundUpgrade        string `json:"sound_upgrade"`
	FinancialInfoTitle  string `json:"financial_info_title"`
	TotalCost           string `json:"total_cost"`
	RemainingBalance    string `json:"remaining_balance"`
	DepositCheckbox     string `json:"deposit_checkbox"`
	InvoiceNotes        string `json:"invoice_notes"`
	BoothServiceTitle   string `json:"booth_service_title"`
	PhotoBoothLabel     string `json:"photo_booth_label"`
	VideoBooth360Label  string `json:"video_booth_360_label"`
	AddonServicesTitle  string `json:"addon_services_title"`
	AddonSpeaker        string `json:"addon_speaker"`
	AddonEarlySetup     string `json:"addon_early_setup"`
	AddonBranding       string `json:"addon_branding"`
	AddonHire           string `json:"addon_hire"`
	AddonNoHire         string `json:"addon_no_hire"`
	AddonPending        string `json:"addon_pending"`
	EventLocation       string `json:"event_location"`
	LocationIndoor      string `json:"location_indoor"`
	LocationOutdoor     string `json:"location_outdoor"`
	ServiceHours        string `json:"service_hours"`
}

// DJFormLabels covers the DJ order form.
type DJFormLabels struct {
	EventDate          string `json:"event_date"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	TotalDuration      string `json:"total_duration"`
	GuestCount         string `json:"guest_count"`
	VenueName          string `json:"venue_name"`
	VenueInfoTitle     string `json:"venue_info_title"`
	EventFloor         string `json:"event_floor"`
	VenueContact       string `json:"venue_contact"`
	VenuePhone         string `json:"venue_phone"`
	SetupRestrictions  string `json:"setup_restrictions"`
	TechnicalTitle     string `json:"technical_title"`
	SetupType          string `json:"setup_type"`
	SetupPremium       string `json:"setup_premium"`
	SetupDeluxe        string `json:"setup_deluxe"`
	ElectricalReqs     string `json:"electrical_reqs"`
	OutdoorTitle       string `json:"outdoor_title"`
	IsOutdoor          string `json:"is_outdoor"`
	SurfaceType        string `json:"surface_type"`
	ProtectionTent     string `json:"protection_tent"`
	ProtectionFixed    string `json:"protection_fixed"`
	ProtectionNone     string `json:"protection_none"`
	ProtectionLevel    string `json:"protection_level"`
	ProtectionVehicles string `json:"protection_vehicles"`
	SetupColor         string `json:"setup_color"`
	ColorBlack         string `json:"color_black"`
	ColorWhite         string `json:"color_white"`
	Deposit50          string `json:"deposit_50"`
	Balance50          string `json:"balance_50"`
}

// DocStrings are the contract and invoice templates. Entries holding a
// %s verb receive a formatted dollar amount from the injected price
// list at build time.
type DocStrings struct {
	ContractTitle         string
	ClientNamePlaceholder string
	Intro1                string
	Intro2                string
	NotProvided           string
	Phone                 string
	NoNotes               string

	DepositTitle  string
	DepositP1With string // %s = deposit amount
	DepositP2With string
	DepositP3With string
	DepositB1With string
	DepositB2With string
	DepositP4With string
	DepositP1No   string
	DepositP2No   string
	DepositP3No   string
	DepositB1No   string
	DepositB2No   string
	DepositP4No   string

	PunctualityTitle string
	PunctualityP1    string // %s = same-day change fee
	PunctualityP2    string

	SoundTitle      string
	SoundOptClient  string
	SoundOptBasic   string
	SoundOptUpgrade string // %s = upgrade surcharge
	SoundPendingP1  string
	SoundPendingB1  string
	SoundPendingB2  string
	SoundPendingB3  string // %s = upgrade surcharge
	SoundP2         string

	AccessTitle string
	AccessP1a   string
	AccessP1b   string

	RescheduleTitle string
	RescheduleP1    string // %s = date change fee
	RescheduleP2    string

	StaffImagesTitle string
	StaffImagesP1    string

	SafetyTitle string
	SafetyP1    string

	CommsTitle    string
	CommsProvider string
	CommsClient   string
	CommsLast     string

	ClientContentTitle string
	ClientContentP1    string
	ClientContentP2    string

	LiabilityTitle string
	LiabilityP1    string

	IndemnificationTitle string
	IndemnificationP1    string

	ForceMajeureTitle string
	ForceMajeureP1    string

	JurisdictionTitle string
	JurisdictionP1    string

	SummaryDetailsTitle string
	SummaryService      string
	SummaryTime         string
	SummaryTotalCost    string
	SummaryBalance      string
	SummaryAddress      string
	SummaryActivity     string
	SummaryNotes        string

	SummaryPaymentTitle string
	SummaryDeposit      string
	SummaryParking      string

	ConfirmationTitle string
	ConfirmationP1    string // %s = formatted event date

	SignatureClient   string // %s = client name
	SignatureProvider string

	InvoiceSubtitle        string // %s = contract number
	InvoiceBillTo          string
	InvoiceFrom            string
	InvoiceNumber          string
	InvoiceIssueDate       string
	InvoiceEventDate       string
	InvoiceTableDesc       string
	InvoiceTableTotal      string
	InvoiceServiceDesc     string
	InvoiceServiceFallback string
	InvoiceSoundUpgrade    string
	InvoiceSubtotal        string
	InvoiceDepositPaid     string
	InvoiceBalanceDue      string
	InvoiceNotes           string
	InvoiceNotesFallback   string
	InvoiceThankYou        string
	InvoiceFooter          string
}
