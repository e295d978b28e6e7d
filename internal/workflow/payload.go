package workflow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/i18n"
)

// The automation scenarios merge these payloads into document
// templates, so every field name and marker value here is part of the
// external contract. Checkboxes travel as "X" or empty string.

type MusicPayload struct {
	ContractType     string `json:"contract_type"`
	ClientName       string `json:"nombre_cliente"`
	ClientEmail      string `json:"email_cliente"`
	ClientPhone      string `json:"telefono_cliente"`
	EventDay         string `json:"dia_evento"`
	EventMonth       string `json:"mes_evento"`
	EventYear        string `json:"ano_evento"`
	EventAddress     string `json:"direccion_evento"`
	ActivityType     string `json:"tipo_actividad"`
	ServiceTime      string `json:"hora_servicio"`
	ContractNotes    string `json:"notas_contrato"`
	InvoiceNotes     string `json:"notas_factura"`
	TotalAmount      string `json:"total_servicios"`
	RemainingBalance string `json:"balance_restante"`
	DepositApplies   bool   `json:"aplica_deposito"`
	Language         string `json:"idioma"`
	ContractNumber   string `json:"numero_contrato"`
	ContractYear     int    `json:"ano_contrato"`
	ServiceContract  string `json:"servicio_contratado"`
	SoundOption      string `json:"opcion_sonido"`
	ParkingSpaces    string `json:"cantidad_estacionamientos"`
}

type BoothPayload struct {
	ContractYear     int    `json:"ano_contrato"`
	ContractNumber   string `json:"numero_contrato"`
	IssueDate        string `json:"fecha_emision"`
	EventDate        string `json:"fecha_evento"`
	ClientName       string `json:"nombre_cliente"`
	ClientEmail      string `json:"email_cliente"`
	ClientPhone      string `json:"telefono_cliente"`
	EventDay         string `json:"dia_evento"`
	EventMonth       string `json:"mes_evento"`
	EventYear        string `json:"ano_evento"`
	ServiceContract  string `json:"servicio_contratado"`
	SetupTime        string `json:"hora_montaje"`
	ServiceTime      string `json:"hora_servicio"`
	ServiceDuration  string `json:"duracion_servicio"`
	PhotoBooth       string `json:"servicio_photo_booth"`
	VideoBooth360    string `json:"servicio_video_booth_360"`
	SpeakerAddon     string `json:"bocina_photo"`
	EarlySetupAddon  string `json:"early_setup_video"`
	BrandingAddon    string `json:"branding_photo"`
	LocationIndoor   string `json:"ubicacion_interior"`
	LocationOutdoor  string `json:"ubicacion_exterior"`
	EventAddress     string `json:"direccion_evento"`
	ActivityType     string `json:"tipo_actividad"`
	ParkingSpaces    string `json:"cantidad_estacionamientos"`
	TotalAmount      string `json:"total_servicios"`
	RemainingBalance string `json:"balance_restante"`
	ContractNotes    string `json:"notas_contrato"`
	InvoiceNotes     string `json:"notas_factura"`
	DepositApplies   bool   `json:"aplica_deposito"`
	Language         string `json:"idioma"`
}

type DJPlaceholders struct {
	ContractYear       int    `json:"ano_contrato"`
	ContractNumber     string `json:"numero_contrato"`
	ContractDate       string `json:"fecha_contrato"`
	ClientName         string `json:"nombre_cliente"`
	ClientPhone        string `json:"telefono_cliente"`
	EventType          string `json:"tipo_evento"`
	EventDate          string `json:"fecha_evento"`
	EventDay           string `json:"dia_evento"`
	EventMonth         string `json:"mes_evento"`
	EventYear          string `json:"ano_evento"`
	StartTime          string `json:"hora_inicio"`
	EndTime            string `json:"hora_fin"`
	TotalDuration      string `json:"duracion_total"`
	GuestCount         string `json:"numero_invitados"`
	VenueName          string `json:"venue_nombre"`
	VenueAddress       string `json:"venue_direccion"`
	EventFloor         string `json:"piso_evento"`
	VenueContact       string `json:"contacto_venue"`
	VenuePhone         string `json:"telefono_venue"`
	Restrictions       string `json:"restricciones_horario"`
	SetupPremium       string `json:"montaje_premium"`
	SetupDeluxe        string `json:"montaje_deluxe"`
	Electrical110      string `json:"electrico_110v"`
	Electrical240      string `json:"electrico_240v"`
	SurfaceType        string `json:"tipo_superficie"`
	TentByClient       string `json:"carpa_cliente"`
	PermanentStructure string `json:"estructura_permanente"`
	NoProtection       string `json:"sin_proteccion"`
	LevelArea          string `json:"area_nivelada"`
	VehicleAccess      string `json:"acceso_vehiculos"`
	PackageName        string `json:"nombre_paquete"`
	SetupColor         string `json:"color_setup"`
	ParkingSpaces      string `json:"cantidad_estacionamientos"`
	DepositApplies     bool   `json:"aplica_deposito"`
	TotalFees          string `json:"honorarios_total"`
	Deposit50          string `json:"deposito_50"`
	Balance50          string `json:"balance_50"`
	InvoiceNotes       string `json:"notas_factura"`
	ContractNotes      string `json:"notas_adicionales_contrato"`
}

type DJPayload struct {
	Form         string         `json:"formulario"`
	Language     string         `json:"idioma"`
	Placeholders DJPlaceholders `json:"placeholders"`
}

const blankLine = "___________________"

// BuildPayload flattens an order into the payload shape its kind's
// scenario expects.
func BuildPayload(o domain.Order, c clock.Clock) any {
	now := clock.BusinessNow(c)
	year := now.Year()
	cat := i18n.For(o.Locale)

	switch o.Kind {
	case domain.KindBooth:
		return BoothPayload{
			ContractYear:     year,
			ContractNumber:   o.ContractNumber,
			IssueDate:        fmt.Sprintf("%d/%d/%d", now.Day(), int(now.Month()), now.Year()),
			EventDate:        cat.FormatDate(o.EventDay, o.EventMonth, o.EventYear),
			ClientName:       o.ClientName,
			ClientEmail:      o.ClientEmail,
			ClientPhone:      o.ClientPhone,
			EventDay:         o.EventDay,
			EventMonth:       o.EventMonth,
			EventYear:        o.EventYear,
			ServiceContract:  o.ServiceDescription,
			SetupTime:        SetupTime(o.ServiceTime),
			ServiceTime:      o.ServiceTime,
			ServiceDuration:  o.ServiceHours,
			PhotoBooth:       mark(o.PhotoBooth),
			VideoBooth360:    mark(o.Video360),
			SpeakerAddon:     mark(o.SpeakerAddon == domain.AddonHire),
			EarlySetupAddon:  mark(o.EarlySetupAddon == domain.AddonHire),
			BrandingAddon:    mark(o.BrandingAddon == domain.AddonHire),
			LocationIndoor:   mark(o.Location == "indoor"),
			LocationOutdoor:  mark(o.Location == "outdoor"),
			EventAddress:     o.Address,
			ActivityType:     o.ActivityType,
			ParkingSpaces:    o.ParkingSpaces,
			TotalAmount:      fixed2(o.TotalCost),
			RemainingBalance: fixed2(o.Balance),
			ContractNotes:    o.Notes,
			InvoiceNotes:     o.InvoiceNotes,
			DepositApplies:   o.DepositApplies,
			Language:         string(o.Locale),
		}
	case domain.KindDJ:
		outdoor := o.IsOutdoor == "yes"
		return DJPayload{
			Form:     "contrato_dj",
			Language: string(o.Locale),
			Placeholders: DJPlaceholders{
				ContractYear:       year,
				ContractNumber:     o.ContractNumber,
				ContractDate:       contractDate(now, o.Locale),
				ClientName:         o.ClientName,
				ClientPhone:        o.ClientPhone,
				EventType:          o.ActivityType,
				EventDate:          cat.FormatDate(o.EventDay, o.EventMonth, o.EventYear),
				EventDay:           o.EventDay,
				EventMonth:         o.EventMonth,
				EventYear:          o.EventYear,
				StartTime:          o.StartTime,
				EndTime:            o.EndTime,
				TotalDuration:      o.DurationText,
				GuestCount:         o.GuestCount,
				VenueName:          o.VenueName,
				VenueAddress:       o.Address,
				EventFloor:         orBlank(o.VenueFloor),
				VenueContact:       orBlank(o.VenueContact),
				VenuePhone:         orBlank(o.VenuePhone),
				Restrictions:       orBlank(o.SetupRestrictions),
				SetupPremium:       mark(o.SetupType == domain.SetupPremium),
				SetupDeluxe:        mark(o.SetupType == domain.SetupDeluxe),
				Electrical110:      mark(o.Electrical == "110v"),
				Electrical240:      mark(o.Electrical == "240v"),
				SurfaceType:        onlyOutdoor(outdoor, o.SurfaceType),
				TentByClient:       mark(outdoor && o.TentByClient),
				PermanentStructure: mark(outdoor && o.FixedStructure),
				NoProtection:       mark(outdoor && o.NoProtection),
				LevelArea:          mark(outdoor && o.LevelArea),
				VehicleAccess:      mark(outdoor && o.VehicleAccess),
				PackageName:        o.PackageName,
				SetupColor:         o.SetupColor,
				ParkingSpaces:      o.ParkingSpaces,
				DepositApplies:     o.DepositApplies,
				TotalFees:          fixed2(o.TotalCost),
				Deposit50:          orDefault(o.Deposit50, "0.00"),
				Balance50:          orDefault(o.Balance50, "0.00"),
				InvoiceNotes:       o.InvoiceNotes,
				ContractNotes:      o.Notes,
			},
		}
	default:
		return MusicPayload{
			ContractType:     string(o.Kind),
			ClientName:       o.ClientName,
			ClientEmail:      o.ClientEmail,
			ClientPhone:      o.ClientPhone,
			EventDay:         o.EventDay,
			EventMonth:       o.EventMonth,
			EventYear:        o.EventYear,
			EventAddress:     o.Address,
			ActivityType:     o.ActivityType,
			ServiceTime:      o.ServiceTime,
			ContractNotes:    o.Notes,
			InvoiceNotes:     o.InvoiceNotes,
			TotalAmount:      fixed2(o.TotalCost),
			RemainingBalance: fixed2(o.Balance),
			DepositApplies:   o.DepositApplies,
			Language:         string(o.Locale),
			ContractNumber:   o.ContractNumber,
			ContractYear:     year,
			ServiceContract:  o.ServiceDescription,
			SoundOption:      string(o.SoundOption),
			ParkingSpaces:    o.ParkingSpaces,
		}
	}
}

// SetupTime is the crew arrival time, two hours before the service
// starts, wrapping past midnight.
func SetupTime(serviceTime string) string {
	if serviceTime == "" {
		return "---"
	}
	hour, minute, ok := domain.ParseClock12(serviceTime)
	if !ok {
		return "Hora invalida"
	}
	hour = (hour + 22) % 24
	return domain.FormatClock12(hour, minute)
}

func contractDate(now time.Time, locale i18n.Locale) string {
	month := i18n.MonthToken(int(now.Month()))
	cat := i18n.For(locale)
	return cat.FormatDate(strconv.Itoa(now.Day()), month, strconv.Itoa(now.Year()))
}

func mark(on bool) string {
	if on {
		return "X"
	}
	return ""
}

func orBlank(value string) string {
	return orDefault(value, blankLine)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func onlyOutdoor(outdoor bool, value string) string {
	if !outdoor {
		return ""
	}
	return value
}

func fixed2(value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
