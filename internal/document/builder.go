package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
	"github.com/dshowevents/contratia/internal/i18n"
	"github.com/dshowevents/contratia/internal/pricing"
)

// Provider identity rendered into every document.
const (
	CompanyDisplay = "D' SHOW EVENTS"
	CompanyLegal   = "D' SHOW EVENTS LLC"
	CompanyEmail   = "info@dshowevents.com"
	CompanyPhone   = "(787) 329-6680"
	CompanyAddress = "PO BOX 4083, Bayamón, PR 00958"
	CompanySocials = "Instagram: @dshowevents | Facebook: D' Show Events | TikTok: @dshowevents"

	fallbackContractNumber = "DSE-2025-000"
)

// Builder turns a fully-derived order into the contract and invoice
// trees. It never mutates the order; pricing and the clock are the only
// inputs besides the order itself.
type Builder struct {
	pricing pricing.Pricing
	clock   clock.Clock
}

func NewBuilder(p pricing.Pricing, c clock.Clock) *Builder {
	return &Builder{pricing: p, clock: c}
}

func (b *Builder) Build(o domain.Order) Document {
	t := i18n.For(o.Locale)
	return Document{
		Contract: b.buildContract(o, t),
		Invoice:  b.buildInvoice(o, t),
	}
}

// counter hands out clause numbers. One counter spans the whole
// contract; it is never reset or reused.
type counter int

func (c *counter) next() int {
	*c++
	return int(*c)
}

func (b *Builder) buildContract(o domain.Order, t i18n.Catalog) []Node {
	var n counter
	d := t.Doc

	contractNumber := o.ContractNumber
	if contractNumber == "" {
		contractNumber = fallbackContractNumber
	}
	clientName := o.ClientName
	if clientName == "" {
		clientName = "[" + d.ClientNamePlaceholder + "]"
	}
	parking := o.ParkingSpaces
	if parking == "" {
		parking = "5"
	}

	nodes := []Node{
		{Type: NodeHeader, Title: CompanyDisplay, Subtitle: d.ContractTitle + " #" + contractNumber},
		paragraph(plain(d.Intro1), bold(clientName), plain(d.Intro2)),
		spacer(),
		b.depositClause(o, d, &n),
		{Type: NodeClause, Number: n.next(), Title: d.PunctualityTitle, Content: []Node{
			paragraph(plain(fmt.Sprintf(d.PunctualityP1, money(b.pricing.SameDayChangeFee)))),
			paragraph(plain(d.PunctualityP2)),
		}},
		b.soundClause(o, d, &n),
		{Type: NodeClause, Number: n.next(), Title: d.AccessTitle, Content: []Node{
			paragraph(plain(d.AccessP1a + parking + d.AccessP1b)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.RescheduleTitle, Content: []Node{
			paragraph(plain(fmt.Sprintf(d.RescheduleP1, money(b.pricing.DateChangeFee)))),
			paragraph(plain(d.RescheduleP2)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.StaffImagesTitle, Content: []Node{
			paragraph(plain(d.StaffImagesP1)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.SafetyTitle, Content: []Node{
			paragraph(plain(d.SafetyP1)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.CommsTitle, Content: []Node{
			paragraph(bold(d.CommsProvider)),
			paragraph(plain("Email: " + CompanyEmail)),
			paragraph(plain("WhatsApp/Message: " + CompanyPhone)),
			spacer(),
			paragraph(bold(d.CommsClient)),
			paragraph(plain("Email: " + orFallback(o.ClientEmail, d.NotProvided))),
			paragraph(plain(d.Phone + ": " + orFallback(o.ClientPhone, d.NotProvided))),
			paragraph(TextPart{Text: d.CommsLast, Italic: true}),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.ClientContentTitle, Content: []Node{
			paragraph(plain(d.ClientContentP1)),
			paragraph(bold(d.ClientContentP2)),
			paragraph(plain(CompanySocials)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.LiabilityTitle, Content: []Node{
			paragraph(plain(d.LiabilityP1)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.IndemnificationTitle, Content: []Node{
			paragraph(plain(d.IndemnificationP1)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.ForceMajeureTitle, Content: []Node{
			paragraph(plain(d.ForceMajeureP1)),
		}},
		{Type: NodeClause, Number: n.next(), Title: d.JurisdictionTitle, Content: []Node{
			paragraph(plain(d.JurisdictionP1)),
		}},
		spacer(),
		{Type: NodeSummary, Title: d.SummaryDetailsTitle, Details: []Detail{
			{Label: d.SummaryService, Value: orFallback(o.ServiceDescription, d.NotProvided)},
			{Label: d.SummaryTime, Value: o.ServiceTime},
			{Label: d.SummaryTotalCost, Value: "$" + money(amount(o.TotalCost)) + " USD"},
			{Label: d.SummaryBalance, Value: "$" + o.Balance + " USD"},
			{Label: d.SummaryAddress, Value: orFallback(o.Address, d.NotProvided)},
			{Label: d.SummaryActivity, Value: orFallback(o.ActivityType, d.NotProvided)},
			{Label: d.SummaryNotes, Value: orFallback(o.Notes, d.NoNotes)},
		}},
		{Type: NodeSummary, Title: d.SummaryPaymentTitle, Details: b.paymentSummary(o, d)},
		{Type: NodeClause, Number: n.next(), Title: d.ConfirmationTitle, Content: []Node{
			paragraph(plain(fmt.Sprintf(d.ConfirmationP1, t.FormatDate(o.EventDay, o.EventMonth, o.EventYear)))),
		}},
		{Type: NodeSignatures, Details: []Detail{
			{Label: fmt.Sprintf(d.SignatureClient, clientName)},
			{Label: d.SignatureProvider, Value: CompanyLegal},
		}},
	}
	return nodes
}

// The deposit clause swaps its entire body depending on whether a
// reservation deposit applies.
func (b *Builder) depositClause(o domain.Order, d i18n.DocStrings, n *counter) Node {
	var content []Node
	if o.DepositApplies {
		content = []Node{
			paragraph(plain(fmt.Sprintf(d.DepositP1With, money(b.pricing.DepositMusicBooth)))),
			paragraph(plain(d.DepositP2With)),
			paragraph(plain(d.DepositP3With)),
			{Type: NodeList, Items: []Node{
				paragraph(plain(d.DepositB1With)),
				paragraph(plain(d.DepositB2With)),
			}},
			paragraph(plain(d.DepositP4With)),
		}
	} else {
		content = []Node{
			paragraph(plain(d.DepositP1No)),
			paragraph(plain(d.DepositP2No)),
			paragraph(plain(d.DepositP3No)),
			{Type: NodeList, Items: []Node{
				paragraph(plain(d.DepositB1No)),
				paragraph(plain(d.DepositB2No)),
			}},
			paragraph(plain(d.DepositP4No)),
		}
	}
	return Node{Type: NodeClause, Number: n.next(), Title: d.DepositTitle, Content: content}
}

// The sound clause is settled text for a chosen option; while pending
// it becomes an action-required block listing the three options.
func (b *Builder) soundClause(o domain.Order, d i18n.DocStrings, n *counter) Node {
	surcharge := money(b.pricing.SoundUpgrade)
	var content []Node
	switch o.SoundOption {
	case domain.SoundClient:
		content = []Node{paragraph(plain(d.SoundOptClient))}
	case domain.SoundBasic:
		content = []Node{paragraph(plain(d.SoundOptBasic))}
	case domain.SoundUpgrade:
		content = []Node{paragraph(plain(fmt.Sprintf(d.SoundOptUpgrade, surcharge)))}
	default:
		content = []Node{
			paragraph(bold(d.SoundPendingP1)),
			{Type: NodeList, Items: []Node{
				paragraph(bold(d.SoundPendingB1)),
				paragraph(bold(d.SoundPendingB2)),
				paragraph(bold(fmt.Sprintf(d.SoundPendingB3, surcharge))),
			}},
		}
	}
	content = append(content, paragraph(plain(d.SoundP2)))
	return Node{Type: NodeClause, Number: n.next(), Title: d.SoundTitle, Content: content}
}

func (b *Builder) paymentSummary(o domain.Order, d i18n.DocStrings) []Detail {
	t := i18n.For(o.Locale)
	var details []Detail
	if o.DepositApplies {
		details = append(details, Detail{
			Label: d.SummaryDeposit,
			Value: "$" + money(b.pricing.DepositMusicBooth) + " USD",
		})
	}
	parking := o.ParkingSpaces
	if parking == "" {
		parking = "5"
	}
	details = append(details, Detail{Label: d.SummaryParking, Value: t.FormatParking(parking)})
	return details
}

func (b *Builder) buildInvoice(o domain.Order, t i18n.Catalog) []Node {
	d := t.Doc

	contractNumber := o.ContractNumber
	if contractNumber == "" {
		contractNumber = fallbackContractNumber
	}
	clientName := o.ClientName
	if clientName == "" {
		clientName = "[" + d.ClientNamePlaceholder + "]"
	}

	baseCost := amount(o.TotalCost)
	surcharge := 0.0
	if o.SoundOption == domain.SoundUpgrade {
		surcharge = b.pricing.SoundUpgrade
	}
	subtotal := baseCost + surcharge
	depositPaid := 0.0
	if o.DepositApplies {
		depositPaid = b.pricing.DepositMusicBooth
	}

	rows := [][]string{
		{d.InvoiceServiceDesc + "\n" + orFallback(o.ServiceDescription, d.InvoiceServiceFallback), "$" + money(baseCost)},
	}
	if surcharge > 0 {
		rows = append(rows, []string{d.InvoiceSoundUpgrade, "$" + money(surcharge)})
	}

	totals := []Detail{{Label: d.InvoiceSubtotal, Value: "$" + money(subtotal)}}
	if depositPaid > 0 {
		totals = append(totals, Detail{Label: d.InvoiceDepositPaid, Value: "-" + money(depositPaid)})
	}
	totals = append(totals, Detail{Label: d.InvoiceBalanceDue, Value: "$" + money(amount(balanceDue(o))) + " USD"})

	issued := clock.BusinessNow(b.clock)
	issuedText := issued.Format("02/01/2006")
	if o.Locale == i18n.EN {
		issuedText = issued.Format("1/2/2006")
	}

	return []Node{
		{Type: NodeHeader, Title: CompanyDisplay, Subtitle: fmt.Sprintf(d.InvoiceSubtitle, contractNumber)},
		paragraph(
			bold(d.InvoiceBillTo+":"),
			lineBreak(clientName),
			lineBreak(orFallback(o.ClientEmail, d.NotProvided)),
			lineBreak(orFallback(o.ClientPhone, d.NotProvided)),
			TextPart{Text: "\n" + d.InvoiceFrom + ":", Bold: true, LineBreak: true},
			TextPart{Text: CompanyLegal, Bold: true, LineBreak: true},
			lineBreak(CompanyAddress),
			lineBreak(CompanyEmail),
			lineBreak(CompanyPhone),
		),
		paragraph(
			bold(d.InvoiceNumber+": "+contractNumber),
			TextPart{Text: d.InvoiceIssueDate + ": " + issuedText, Bold: true, LineBreak: true},
			TextPart{Text: d.InvoiceEventDate + ": " + o.EventDay + "/" + o.EventMonth + "/" + o.EventYear, Bold: true, LineBreak: true},
		),
		{Type: NodeTable, Headers: []string{d.InvoiceTableDesc, d.InvoiceTableTotal}, Rows: rows},
		{Type: NodeSummary, Details: totals},
		paragraph(
			bold(d.InvoiceNotes+":"),
			TextPart{Text: orFallback(o.InvoiceNotes, d.InvoiceNotesFallback), Italic: true, LineBreak: true},
		),
		spacer(),
		paragraph(bold(d.InvoiceThankYou)),
		paragraph(TextPart{Text: d.InvoiceFooter, Italic: true}),
	}
}

// balanceDue reads the derived balance verbatim: the invoice never
// recomputes it, so preview and invoice cannot disagree. DJ orders keep
// their balance in the 50/50 split field.
func balanceDue(o domain.Order) string {
	if o.Kind == domain.KindDJ {
		return o.Balance50
	}
	return o.Balance
}

func lineBreak(text string) TextPart {
	return TextPart{Text: text, LineBreak: true}
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

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
