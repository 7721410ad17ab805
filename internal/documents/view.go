package documents

import (
	"fmt"
	"strconv"
	"time"

	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/financials"
	"github.com/uptown-october/uptown-docs/internal/identity"
	"github.com/uptown-october/uptown-docs/internal/locale"
	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/pricing"
	"github.com/uptown-october/uptown-docs/internal/units"
)

// labelValue is one rendered label/value pair.
type labelValue struct {
	Label string
	Value string
}

// scheduleRowView is one rendered installment line, in input order.
type scheduleRowView struct {
	Month  string
	Label  string
	Amount string
	Date   string
	Words  string
}

// buyerView is one buyer card. Empty fields are dropped before rendering.
type buyerView struct {
	Title string
	Rows  []labelValue
}

// financeRowView is one line of the English financial table.
type financeRowView struct {
	Item   string
	Amount string
	Words  string
}

// offerView feeds the Client Offer templates. Every value is preformatted
// so the templates stay purely structural.
type offerView struct {
	Lang        string
	Dir         string
	RTL         bool
	T           textSet
	GeneratedAt string

	OfferDate    string
	FirstPayment string
	UnitLine     string
	Consultant   string

	Summary  []labelValue // nil when no breakdown resolved
	Buyers   []buyerView
	Schedule []scheduleRowView
}

// reservationView feeds the Reservation Form templates.
type reservationView struct {
	Lang        string
	Dir         string
	RTL         bool
	T           textSet
	GeneratedAt string

	Intro           string
	ReservationDate string

	Buyers        []buyerView
	UnitRows      []labelValue
	FinanceRows   []financeRowView // English table form
	ArabicFinance []string         // Arabic prose form
}

// viewBuilder bundles the per-request formatting context.
type viewBuilder struct {
	lang     locale.Lang
	currency string
	clock    *locale.Clock
	speller  locale.NumberSpeller
	t        textSet
}

func newViewBuilder(lang locale.Lang, currency string, clock *locale.Clock, speller locale.NumberSpeller) *viewBuilder {
	return &viewBuilder{lang: lang, currency: currency, clock: clock, speller: speller, t: textFor(lang)}
}

func (b *viewBuilder) moneyCell(a money.Amount) string {
	return locale.FormatMoney(a, b.lang, b.currency)
}

func (b *viewBuilder) words(a money.Amount) string {
	return b.speller.Spell(a, b.lang, b.currency)
}

// arabicWords appends the idiomatic closing used on Arabic financial prose.
func (b *viewBuilder) arabicWords(a money.Amount) string {
	return "(" + b.speller.Spell(a, locale.Arabic, b.currency) + " لاغير)"
}

func (b *viewBuilder) scheduleRows(schedule []deals.ScheduleRow) []scheduleRowView {
	rows := make([]scheduleRowView, 0, len(schedule))
	for _, row := range schedule {
		rows = append(rows, scheduleRowView{
			Month:  strconv.FormatInt(row.Month.Int64(), 10),
			Label:  locale.LocalizeLabel(row.Label, b.lang),
			Amount: b.moneyCell(row.Amount),
			Date:   b.clock.FormatDate(row.Date),
			Words:  b.words(row.Amount),
		})
	}
	return rows
}

func (b *viewBuilder) buyerCards(buyers []deals.Buyer) []buyerView {
	cards := make([]buyerView, 0, len(buyers))
	for i, buyer := range buyers {
		rows := make([]labelValue, 0, 9)
		add := func(label, value string) {
			if value != "" {
				rows = append(rows, labelValue{Label: label, Value: value})
			}
		}
		add(b.t.BuyerName, buyer.Name)
		add(b.t.Nationality, buyer.Nationality)
		add(b.t.IDOrPassport, buyer.IDOrPassport)
		add(b.t.IDIssueDate, buyer.IDIssueDate)
		add(b.t.BirthDate, buyer.BirthDate)
		add(b.t.Address, buyer.Address)
		add(b.t.PhonePrimary, buyer.PhonePrimary)
		add(b.t.PhoneSecondary, buyer.PhoneSecondary)
		add(b.t.Email, buyer.Email)
		if len(rows) == 0 {
			continue
		}
		cards = append(cards, buyerView{
			Title: b.t.BuyerTitle + " " + strconv.Itoa(i+1),
			Rows:  rows,
		})
	}
	return cards
}

func (b *viewBuilder) summaryRows(breakdown *pricing.Breakdown) []labelValue {
	if breakdown == nil {
		return nil
	}
	return []labelValue{
		{Label: b.t.Base, Value: b.moneyCell(breakdown.Base)},
		{Label: b.t.Garden, Value: b.moneyCell(breakdown.Garden)},
		{Label: b.t.Roof, Value: b.moneyCell(breakdown.Roof)},
		{Label: b.t.Storage, Value: b.moneyCell(breakdown.Storage)},
		{Label: b.t.Garage, Value: b.moneyCell(breakdown.Garage)},
		{Label: b.t.Maintenance, Value: b.moneyCell(breakdown.Maintenance)},
		{Label: b.t.TotalExcl, Value: b.moneyCell(breakdown.TotalExcl())},
		{Label: b.t.TotalIncl, Value: b.moneyCell(breakdown.TotalIncl())},
	}
}

// unitRows assembles the Reservation Form unit block. Snapshot fields name
// the unit; structural fields are informational and may be absent.
func (b *viewBuilder) unitRows(snap *deals.CalculatorSnapshot, structural *units.Unit) []labelValue {
	rows := make([]labelValue, 0, 7)
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, labelValue{Label: label, Value: value})
		}
	}
	if snap != nil && snap.UnitInfo != nil {
		add(b.t.UnitType, snap.UnitInfo.UnitType)
		add(b.t.UnitCode, snap.UnitInfo.UnitCode)
	}
	if structural != nil {
		if structural.Area != nil {
			add(b.t.UnitArea, strconv.FormatFloat(*structural.Area, 'f', -1, 64)+" "+b.t.AreaSuffix)
		}
		if structural.BuildingNumber != nil {
			add(b.t.Building, *structural.BuildingNumber)
		}
		if structural.BlockSector != nil {
			add(b.t.BlockSector, *structural.BlockSector)
		}
		if structural.Zone != nil {
			add(b.t.Zone, *structural.Zone)
		}
	}
	add(b.t.ProjectNote, b.t.ProjectSubtitle)
	return rows
}

// financeRows renders the financial summary as table lines. The Arabic
// document reuses the same lines as prose via arabicFinanceLines.
func (b *viewBuilder) financeRows(fin financials.Summary) []financeRowView {
	rows := make([]financeRowView, 0, 6)
	add := func(item string, a money.Amount) {
		rows = append(rows, financeRowView{Item: item, Amount: b.moneyCell(a), Words: b.words(a)})
	}
	add(b.t.ItemTotal, fin.TotalIncl)
	add(b.t.ItemDownPayment, fin.DP.Total)
	prelim := b.t.ItemPreliminary
	if fin.DP.PreliminaryDate != "" {
		prelim += " (" + fin.DP.PreliminaryDate + ")"
	}
	add(prelim, fin.DP.Preliminary)
	if fin.DP.Paid.IsPositive() {
		paid := b.t.ItemPaid
		if fin.DP.PaidDate != "" {
			paid += " (" + fin.DP.PaidDate + ")"
		}
		add(paid, fin.DP.Paid)
	}
	add(b.t.ItemDPRemaining, fin.DP.Remaining)
	add(b.t.ItemRemaining, fin.RemainingBalance)
	return rows
}

// arabicFinanceLines renders the financial summary as Arabic prose, one
// sentence per item with the amount followed by its spelled form.
func (b *viewBuilder) arabicFinanceLines(fin financials.Summary) []string {
	if b.lang != locale.Arabic {
		return nil
	}
	lines := make([]string, 0, 6)
	add := func(item string, a money.Amount) {
		lines = append(lines, item+": "+b.moneyCell(a)+" "+b.arabicWords(a))
	}
	add(b.t.ItemTotal, fin.TotalIncl)
	add(b.t.ItemDownPayment, fin.DP.Total)
	prelim := b.t.ItemPreliminary
	if fin.DP.PreliminaryDate != "" {
		prelim += " (" + fin.DP.PreliminaryDate + ")"
	}
	add(prelim, fin.DP.Preliminary)
	if fin.DP.Paid.IsPositive() {
		paid := b.t.ItemPaid
		if fin.DP.PaidDate != "" {
			paid += " (" + fin.DP.PaidDate + ")"
		}
		add(paid, fin.DP.Paid)
	}
	add(b.t.ItemDPRemaining, fin.DP.Remaining)
	add(b.t.ItemRemaining, fin.RemainingBalance)
	return lines
}

// intro builds the Reservation Form opening sentence. The weekday comes
// from the instant the date resolver produced, so UTC versus local
// extraction is the resolver's call.
func (b *viewBuilder) intro(day time.Time, displayDate string) string {
	return fmt.Sprintf(b.t.IntroFormat, locale.DayName(day, b.lang), displayDate)
}

// consultantLine joins the resolved name and email for the offer header.
func consultantLine(c identity.Consultant) string {
	switch {
	case c.Name != nil && c.Email != nil:
		return *c.Name + " <" + *c.Email + ">"
	case c.Name != nil:
		return *c.Name
	case c.Email != nil:
		return *c.Email
	default:
		return ""
	}
}

// unitLine joins the unit code and type for the offer header.
func unitLine(ref *deals.UnitRef) string {
	if ref == nil {
		return ""
	}
	switch {
	case ref.Code != "" && ref.Type != "":
		return ref.Code + " — " + ref.Type
	case ref.Code != "":
		return ref.Code
	default:
		return ref.Type
	}
}
