package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum permitted debit/credit mismatch.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// JournalLine is one side of a double-entry. Exactly one of Debit/Credit is
// non-zero per line.
type JournalLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntry is a balanced set of debit/credit lines recording one business
// event. Entries are immutable once accepted; corrections are new offsetting
// entries.
type JournalEntry struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transactionId"`
	Date          time.Time     `json:"date"`
	Narration     string        `json:"narration"`
	Lines         []JournalLine `json:"lines"`
}

// TotalDebits sums the debit side of all lines.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits within tolerance.
// Derived, never stored.
func (e JournalEntry) IsBalanced() bool {
	diff := e.TotalDebits().Sub(e.TotalCredits()).Abs()
	return diff.LessThanOrEqual(BalanceTolerance)
}
