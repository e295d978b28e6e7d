// Package derive recomputes every order field that is a pure function
// of other fields. It is the only writer of those fields: callers feed
// it the current order after each edit and persist the result.
package derive

import (
	"strconv"
	"strings"

	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/pricing"
)

// Patch maps the wire name of each changed derived field to its new
// value. An empty patch means the order was already consistent.
type Patch map[string]string

// Recompute returns a copy of the order with all derived fields brought
// in sync, plus the minimal patch of fields that actually changed.
// Running it twice in a row always yields an empty second patch.
func Recompute(o domain.Order, p pricing.Pricing) (domain.Order, Patch) {
	out := o
	patch := Patch{}

	switch o.Kind {
	case domain.KindMusic:
		assign(patch, "contract_number", &out.ContractNumber, migrateContractNumber(o.ContractNumber))
		assign(patch, "remaining_balance", &out.Balance, remainingBalance(out, p))
	case domain.KindBooth:
		assign(patch, "service_description", &out.ServiceDescription, boothDescription(out))
		assign(patch, "remaining_balance", &out.Balance, remainingBalance(out, p))
	case domain.KindDJ:
		assign(patch, "duration_text", &out.DurationText, durationText(out.StartTime, out.EndTime))
		deposit, balance := djSplit(out, p)
		assign(patch, "deposit_50", &out.Deposit50, deposit)
		assign(patch, "balance_50", &out.Balance50, balance)
		assign(patch, "package_name", &out.PackageName, packageName(out.SetupType))
	}

	return out, patch
}

func assign(patch Patch, field string, dst *string, value string) {
	if *dst == value {
		return
	}
	*dst = value
	patch[field] = value
}

// Legacy music drafts carried hyphenated contract ids; only the final
// numeric segment survives.
func migrateContractNumber(value string) string {
	if !strings.Contains(value, "-") {
		return value
	}
	parts := strings.Split(value, "-")
	return parts[len(parts)-1]
}

func boothDescription(o domain.Order) string {
	var services []string
	if o.PhotoBooth {
		services = append(services, "PHOTO BOOTH")
	}
	if o.Video360 {
		services = append(services, "VIDEO BOOTH 360")
	}

	description := strings.Join(services, " + ")
	if description != "" && o.ServiceHours != "" {
		description += " - " + o.ServiceHours
	}

	var addons []string
	if o.SpeakerAddon == domain.AddonHire {
		addons = append(addons, "Bocina")
	}
	if o.EarlySetupAddon == domain.AddonHire {
		addons = append(addons, "Early Setup")
	}
	if o.BrandingAddon == domain.AddonHire {
		addons = append(addons, "Full Branding")
	}
	if len(addons) > 0 {
		description += " + " + strings.Join(addons, " + ")
	}
	return description
}

func remainingBalance(o domain.Order, p pricing.Pricing) string {
	total := amount(o.TotalCost)
	if o.Kind == domain.KindMusic && o.SoundOption == domain.SoundUpgrade {
		total += p.SoundUpgrade
	}
	if total <= 0 {
		return "0.00"
	}
	deposit := 0.0
	if o.DepositApplies {
		deposit = p.DepositMusicBooth
	}
	balance := total - deposit
	if balance < 0 {
		balance = 0
	}
	return money(balance)
}

func djSplit(o domain.Order, p pricing.Pricing) (deposit, balance string) {
	total := amount(o.TotalCost)
	if !o.DepositApplies {
		return "0.00", money(total)
	}
	return money(total * p.DepositDJPercent), money(total * (1 - p.DepositDJPercent))
}

func durationText(start, end string) string {
	startH, startM, okStart := domain.ParseClock12(start)
	endH, endM, okEnd := domain.ParseClock12(end)
	if !okStart || !okEnd {
		return "0 horas"
	}
	minutes := (endH*60 + endM) - (startH*60 + startM)
	if minutes <= 0 {
		// Overnight events, e.g. 10 PM to 2 AM.
		minutes += 24 * 60
	}
	hours := float64(minutes) / 60
	text := strconv.FormatFloat(hours, 'f', 1, 64)
	text = strings.TrimSuffix(text, ".0")
	return text + " horas"
}

func packageName(setup domain.SetupType) string {
	switch setup {
	case domain.SetupPremium:
		return "Paquete Premium"
	case domain.SetupDeluxe:
		return "Paquete Deluxe"
	}
	return ""
}

// amount parses a user-entered decimal. Derivation never fails: bad
// input counts as zero.
func amount(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

func money(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
