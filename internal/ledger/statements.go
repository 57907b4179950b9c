package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// IncomeStatement holds period-scoped figures for one calendar year.
type IncomeStatement struct {
	Year              int             `json:"year"`
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfSales       decimal.Decimal `json:"costOfSales"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// BalanceSheet holds cumulative figures through the end of a year.
type BalanceSheet struct {
	Year        int             `json:"year"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// StatementDraft bundles the two statements for one reporting year.
type StatementDraft struct {
	Income       IncomeStatement `json:"income"`
	BalanceSheet BalanceSheet    `json:"balanceSheet"`
}

// GenerateStatements derives yearly statements from the journal entry log.
// Income-statement figures cover the given calendar year only; balance-sheet
// figures accumulate across all entries up to and including that year.
// Statement buckets follow the code prefix convention: 4xxx revenue, 50xx
// cost of sales, other 5xxx/6xxx operating expense, 1xxx/2xxx/3xxx balance
// sheet.
func GenerateStatements(entries []model.JournalEntry, year int) StatementDraft {
	income := IncomeStatement{
		Year:              year,
		Revenue:           decimal.Zero,
		CostOfSales:       decimal.Zero,
		OperatingExpenses: decimal.Zero,
	}
	sheet := BalanceSheet{
		Year:        year,
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
	}

	for _, e := range entries {
		if e.Date.Year() > year {
			continue
		}
		inPeriod := e.Date.Year() == year

		for _, l := range e.Lines {
			switch {
			case inPeriod && isRevenueCode(l.AccountCode):
				income.Revenue = income.Revenue.Add(l.Credit).Sub(l.Debit)
			case inPeriod && isCostOfSalesCode(l.AccountCode):
				income.CostOfSales = income.CostOfSales.Add(l.Debit).Sub(l.Credit)
			case inPeriod && isExpenseCode(l.AccountCode):
				income.OperatingExpenses = income.OperatingExpenses.Add(l.Debit).Sub(l.Credit)
			}

			switch {
			case strings.HasPrefix(l.AccountCode, "1"):
				sheet.Assets = sheet.Assets.Add(l.Debit).Sub(l.Credit)
			case strings.HasPrefix(l.AccountCode, "2"):
				sheet.Liabilities = sheet.Liabilities.Add(l.Credit).Sub(l.Debit)
			case strings.HasPrefix(l.AccountCode, "3"):
				sheet.Equity = sheet.Equity.Add(l.Credit).Sub(l.Debit)
			}
		}
	}

	income.GrossProfit = income.Revenue.Sub(income.CostOfSales)
	income.NetIncome = income.GrossProfit.Sub(income.OperatingExpenses)
	return StatementDraft{Income: income, BalanceSheet: sheet}
}

func isRevenueCode(code string) bool {
	return strings.HasPrefix(code, "4")
}

func isCostOfSalesCode(code string) bool {
	return strings.HasPrefix(code, "50")
}

func isExpenseCode(code string) bool {
	if isCostOfSalesCode(code) {
		return false
	}
	return strings.HasPrefix(code, "5") || strings.HasPrefix(code, "6")
}
