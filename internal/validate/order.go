package validate

import (
	"strings"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
)

// Order checks a full order for submission, returning one message per
// failing field. An empty map means the order is submittable.
func Order(c clock.Clock, o domain.Order) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(o.ClientName) == "" {
		errs["client_name"] = "client name is required"
	}
	if !IsValidEmail(o.ClientEmail) {
		errs["client_email"] = "enter a valid email address"
	}
	if !IsValidPhone(o.ClientPhone) {
		errs["client_phone"] = "enter a valid Puerto Rico/USA number (10 digits or +1)"
	}
	if strings.TrimSpace(o.ActivityType) == "" {
		errs["activity_type"] = "activity type is required"
	}
	if strings.TrimSpace(o.ContractNumber) == "" {
		errs["contract_number"] = "contract number is required"
	}
	if strings.TrimSpace(o.Address) == "" {
		errs["address"] = "event address is required"
	}

	date := o.CompositeEventDate()
	switch o.Kind {
	case domain.KindDJ:
		if !IsValidDate(c, date) {
			errs["event_date_iso"] = "event date cannot be in the past"
		} else {
			if !IsValidTimeSlot(c, date, o.StartTime) {
				errs["start_time"] = "start time must be a future 15-minute slot"
			}
			if !IsValidTimeSlot(c, date, o.EndTime) {
				errs["end_time"] = "end time must be a future 15-minute slot"
			}
		}
		if strings.TrimSpace(o.VenueName) == "" {
			errs["venue_name"] = "venue name is required"
		}
		if o.SetupType == "" {
			errs["setup_type"] = "setup type is required"
		}
	default:
		if !IsValidDate(c, date) {
			errs["event_day"] = "event date cannot be in the past"
		} else if !IsValidTimeSlot(c, date, o.ServiceTime) {
			errs["service_time"] = "service time must be a future 15-minute slot"
		}
		if o.Kind == domain.KindMusic && strings.TrimSpace(o.ServiceDescription) == "" {
			errs["service_description"] = "service description is required"
		}
		if o.Kind == domain.KindBooth && !o.PhotoBooth && !o.Video360 {
			errs["photo_booth_selected"] = "select at least one booth service"
		}
	}
	return errs
}
