package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxLineItem is a single tax component applied to a transaction.
type TaxLineItem struct {
	TaxType   TaxType         `json:"taxType"`
	Rate      decimal.Decimal `json:"rate"` // 0.075 for 7.5%
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Note      string          `json:"note,omitempty"` // warning annotation for fallback brackets
}

// TaxComputationResult is the per-transaction tax liability, keyed by
// transaction id so recomputation replaces rather than duplicates.
type TaxComputationResult struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	TaxesApplied  []TaxLineItem   `json:"taxesApplied"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	NetAmount     decimal.Decimal `json:"netAmount"`

	// InputVAT is the recoverable input VAT embedded in an expense, tracked
	// for the engine-level net-VAT aggregate rather than as a liability line.
	InputVAT decimal.Decimal `json:"inputVat,omitempty"`
}

// ScheduleStatus is the lifecycle state of a filing-schedule entry.
type ScheduleStatus string

const (
	ScheduleDraft    ScheduleStatus = "draft"
	ScheduleDue      ScheduleStatus = "due"
	ScheduleRemitted ScheduleStatus = "remitted"
)

// TaxScheduleEntry is one filing obligation: a tax type accumulated over a
// reporting period with its statutory due date.
type TaxScheduleEntry struct {
	ID        string          `json:"id"` // "<taxType>-<period>"
	TaxType   TaxType         `json:"taxType"`
	Period    string          `json:"period"` // "2025-01" monthly, "2025" yearly
	DueDate   time.Time       `json:"dueDate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Status    ScheduleStatus  `json:"status"`
}
