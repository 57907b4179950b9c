package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// TrialBalanceRow is one account's net balance placed in its debit or credit
// column.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists every non-zero account balance with column totals.
// Imbalanced is a consistency warning, never an error: an imbalance signals a
// poster defect and the books must stay usable while it is investigated.
type TrialBalance struct {
	Accounts    []TrialBalanceRow `json:"accounts"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Imbalanced  bool              `json:"imbalanced"`
}

// GenerateTrialBalance aggregates the ledger into a trial balance. A positive
// balance sits in the account's normal column; a negative balance flips to
// the opposite column.
func (s *Store) GenerateTrialBalance() TrialBalance {
	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, acct := range s.Accounts() {
		if acct.ClosingBalance.IsZero() {
			continue
		}

		row := TrialBalanceRow{
			AccountCode: acct.AccountCode,
			AccountName: acct.AccountName,
		}

		magnitude := acct.ClosingBalance.Abs()
		debitSide := acct.NormalBalance == model.SideDebit
		if acct.ClosingBalance.IsNegative() {
			debitSide = !debitSide
		}
		if debitSide {
			row.Debit = magnitude
		} else {
			row.Credit = magnitude
		}

		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Accounts = append(tb.Accounts, row)
	}

	diff := tb.TotalDebit.Sub(tb.TotalCredit).Abs()
	tb.Imbalanced = diff.GreaterThan(model.BalanceTolerance)
	return tb
}
