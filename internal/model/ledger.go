package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerPosting is one applied journal line in an account's history.
// Balance is the cumulative account balance after this posting.
type LedgerPosting struct {
	Date      time.Time       `json:"date"`
	Narration string          `json:"narration"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
}

// LedgerAccount is the append-only posting history and running balance for one
// chart-of-accounts code. ClosingBalance is signed per the account's
// normal-balance side: debit-normal accounts accumulate debit-credit,
// credit-normal accounts credit-debit.
type LedgerAccount struct {
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountClass   AccountClass    `json:"accountClass"`
	NormalBalance  BalanceSide     `json:"normalBalance"`
	Entries        []LedgerPosting `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
