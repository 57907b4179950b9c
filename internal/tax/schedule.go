package tax

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// ErrScheduleNotFound is returned when marking an unknown schedule entry.
var ErrScheduleNotFound = errors.New("schedule entry not found")

// Filing periods: VAT, WHT and stamp duty are monthly obligations; CGT and
// CIT/PIT are assessed annually.
func monthlyPeriod(t time.Time) string { return t.Format("2006-01") }
func yearlyPeriod(t time.Time) string  { return t.Format("2006") }

// dueDate derives the statutory due date for a tax type's period.
func dueDate(taxType model.TaxType, period string) time.Time {
	switch taxType {
	case model.TaxVAT, model.TaxWHT:
		// 21st of the month following the return period.
		t, _ := time.Parse("2006-01", period)
		return time.Date(t.Year(), t.Month()+1, 21, 0, 0, 0, 0, time.UTC)
	case model.TaxStampDuty:
		// 30 days after the period ends.
		t, _ := time.Parse("2006-01", period)
		return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 29)
	default:
		// Annual taxes: June 30 of the following year.
		t, _ := time.Parse("2006", period)
		return time.Date(t.Year()+1, time.June, 30, 0, 0, 0, 0, time.UTC)
	}
}

// GenerateSchedule buckets live computations into filing-schedule entries by
// (taxType, period). Entries previously marked remitted keep that status;
// otherwise an entry is due once its due date has passed.
func (e *Engine) GenerateSchedule(now time.Time) []model.TaxScheduleEntry {
	type bucket struct {
		taxType model.TaxType
		period  string
	}
	amounts := make(map[bucket]decimal.Decimal)

	add := func(taxType model.TaxType, period string, amount decimal.Decimal) {
		if amount.IsZero() {
			return
		}
		b := bucket{taxType: taxType, period: period}
		amounts[b] = amounts[b].Add(amount)
	}

	yearTurnover := make(map[string]decimal.Decimal)
	yearProfit := make(map[string]decimal.Decimal)

	for _, c := range e.contributions {
		add(model.TaxVAT, monthlyPeriod(c.date), c.outputVAT.Sub(c.inputVAT))
		add(model.TaxWHT, monthlyPeriod(c.date), c.wht)
		add(model.TaxStampDuty, monthlyPeriod(c.date), c.stamp)
		add(model.TaxCGT, yearlyPeriod(c.date), c.cgt)

		y := yearlyPeriod(c.date)
		yearTurnover[y] = yearTurnover[y].Add(c.turnover)
		yearProfit[y] = yearProfit[y].Add(c.turnover).Sub(c.expenses)
	}

	incomeTaxType := model.TaxCIT
	if e.regime == RegimePersonal {
		incomeTaxType = model.TaxPIT
	}
	for y, profit := range yearProfit {
		add(incomeTaxType, y, e.incomeTax(yearTurnover[y], profit))
	}

	entries := make([]model.TaxScheduleEntry, 0, len(amounts))
	for b, amount := range amounts {
		entry := model.TaxScheduleEntry{
			ID:        fmt.Sprintf("%s-%s", b.taxType, b.period),
			TaxType:   b.taxType,
			Period:    b.period,
			DueDate:   dueDate(b.taxType, b.period),
			TaxAmount: amount,
			Status:    model.ScheduleDraft,
		}
		if e.statuses[entry.ID] == model.ScheduleRemitted {
			entry.Status = model.ScheduleRemitted
		} else if now.After(entry.DueDate) {
			entry.Status = model.ScheduleDue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TaxType != entries[j].TaxType {
			return entries[i].TaxType < entries[j].TaxType
		}
		return entries[i].Period < entries[j].Period
	})
	return entries
}

// MarkRemitted records that a schedule entry has been paid. The status
// survives regeneration.
func (e *Engine) MarkRemitted(scheduleID string) error {
	for _, entry := range e.GenerateSchedule(time.Now()) {
		if entry.ID == scheduleID {
			e.statuses[scheduleID] = model.ScheduleRemitted
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrScheduleNotFound, scheduleID)
}

// RestoreStatuses reloads remitted markers from a persisted snapshot.
func (e *Engine) RestoreStatuses(entries []model.TaxScheduleEntry) {
	for _, entry := range entries {
		if entry.Status == model.ScheduleRemitted {
			e.statuses[entry.ID] = model.ScheduleRemitted
		}
	}
}
