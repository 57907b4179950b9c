package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the semantic kind of a business transaction.
type TransactionType string

const (
	TxnIncome           TransactionType = "income"
	TxnExpense          TransactionType = "expense"
	TxnAssetPurchase    TransactionType = "asset_purchase"
	TxnAssetDisposal    TransactionType = "asset_disposal"
	TxnLiabilityPayment TransactionType = "liability_payment"
	TxnEquityInjection  TransactionType = "equity_injection"
)

// TaxType identifies a Nigerian statutory tax.
type TaxType string

const (
	TaxNone      TaxType = "none"
	TaxVAT       TaxType = "vat"
	TaxWHT       TaxType = "wht"
	TaxCGT       TaxType = "cgt"
	TaxStampDuty TaxType = "stamp_duty"
	TaxCIT       TaxType = "cit"
	TaxPIT       TaxType = "pit"
)

// RawTransaction is an ingested business transaction before classification.
// It is append-only: never mutated after creation.
type RawTransaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // always a positive magnitude
	Type        TransactionType `json:"type,omitempty"`

	// CostBasis is the acquisition cost for asset disposals (CGT base).
	CostBasis decimal.Decimal `json:"costBasis,omitempty"`
	// NonResident marks the counterparty as non-resident for WHT rate lookup.
	NonResident bool `json:"nonResident,omitempty"`
}

// Classification is the classifier's verdict for one raw transaction.
type Classification struct {
	TransactionType TransactionType
	TaxType         TaxType
	Confidence      decimal.Decimal // 0..1
	Rule            string          // name of the matched rule, "" for fallback
}
