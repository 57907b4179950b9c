package tax

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// Regime selects the income tax basis for the business entity.
type Regime string

const (
	RegimeCompany  Regime = "cit" // company income tax, turnover-tiered
	RegimePersonal Regime = "pit" // personal income tax, graduated bands
)

// Summary holds the running engine-level tax aggregates.
type Summary struct {
	TotalVAT       decimal.Decimal `json:"totalVat"`
	InputVATCredit decimal.Decimal `json:"inputVatCredit"`
	NetVATPayable  decimal.Decimal `json:"netVatPayable"`
	TotalWHT       decimal.Decimal `json:"totalWht"`
	TotalCGT       decimal.Decimal `json:"totalCgt"`
	TotalStampDuty decimal.Decimal `json:"totalStampDuty"`
	Turnover       decimal.Decimal `json:"turnover"`
	TaxableProfit  decimal.Decimal `json:"taxableProfit"`
	IncomeTax      decimal.Decimal `json:"incomeTax"`
}

// contribution is one transaction's share of the running aggregates, kept so
// a recomputation can subtract the old figures before adding new ones.
type contribution struct {
	date      time.Time
	outputVAT decimal.Decimal
	inputVAT  decimal.Decimal
	wht       decimal.Decimal
	cgt       decimal.Decimal
	stamp     decimal.Decimal
	turnover  decimal.Decimal
	expenses  decimal.Decimal
}

// Engine computes per-transaction tax liabilities and maintains running
// summaries and the filing schedule. Computations are keyed by transaction
// id: recomputing replaces the prior result.
type Engine struct {
	vatRegistered bool
	regime        Regime

	results       map[string]model.TaxComputationResult
	contributions map[string]contribution
	statuses      map[string]model.ScheduleStatus // schedule id -> remitted override
}

// New creates a tax Engine.
func New(vatRegistered bool, regime Regime) *Engine {
	return &Engine{
		vatRegistered: vatRegistered,
		regime:        regime,
		results:       make(map[string]model.TaxComputationResult),
		contributions: make(map[string]contribution),
		statuses:      make(map[string]model.ScheduleStatus),
	}
}

// Compute resolves every applicable tax for one classified transaction.
// Calling it again for the same transaction id replaces the prior result and
// its aggregate contributions.
func (e *Engine) Compute(txn model.RawTransaction, cls model.Classification) model.TaxComputationResult {
	result := model.TaxComputationResult{
		TransactionID: txn.ID,
		Amount:        txn.Amount,
		TotalTax:      decimal.Zero,
		InputVAT:      decimal.Zero,
	}
	contrib := contribution{date: txn.Date}

	txnType := cls.TransactionType
	if txn.Type != "" {
		txnType = txn.Type
	}

	switch txnType {
	case model.TxnIncome:
		contrib.turnover = txn.Amount
	case model.TxnExpense:
		contrib.expenses = txn.Amount
	}

	switch cls.TaxType {
	case model.TaxVAT:
		if e.vatRegistered {
			vat := vatPortion(txn.Amount)
			if txnType == model.TxnIncome {
				result.TaxesApplied = append(result.TaxesApplied, model.TaxLineItem{
					TaxType:   model.TaxVAT,
					Rate:      VATRate,
					TaxAmount: vat,
				})
				contrib.outputVAT = vat
			} else {
				// Input VAT on purchases is a recoverable credit, tracked at
				// engine level rather than as a liability line.
				result.InputVAT = vat
				contrib.inputVAT = vat
			}
		}

	case model.TaxWHT:
		rate, known := LookupWHT(paymentType(txn, cls), !txn.NonResident)
		item := model.TaxLineItem{
			TaxType:   model.TaxWHT,
			Rate:      rate,
			TaxAmount: txn.Amount.Mul(rate).Round(2),
		}
		if !known {
			item.Note = "unknown payment type " + txn.Category + ": applied default bracket at 0%"
		}
		result.TaxesApplied = append(result.TaxesApplied, item)
		contrib.wht = item.TaxAmount

	case model.TaxCGT:
		gain := txn.Amount.Sub(txn.CostBasis)
		if gain.IsNegative() {
			gain = decimal.Zero
		}
		item := model.TaxLineItem{
			TaxType:   model.TaxCGT,
			Rate:      CGTRate,
			TaxAmount: gain.Mul(CGTRate).Round(2),
		}
		result.TaxesApplied = append(result.TaxesApplied, item)
		contrib.cgt = item.TaxAmount

	case model.TaxStampDuty:
		duty, rate, known := LookupStampDuty(txn.Category, txn.Amount)
		item := model.TaxLineItem{
			TaxType:   model.TaxStampDuty,
			Rate:      rate,
			TaxAmount: duty,
		}
		if !known {
			item.Note = "unknown document type " + txn.Category + ": applied default bracket at 0%"
		}
		result.TaxesApplied = append(result.TaxesApplied, item)
		contrib.stamp = item.TaxAmount
	}

	for _, item := range result.TaxesApplied {
		result.TotalTax = result.TotalTax.Add(item.TaxAmount)
	}
	result.NetAmount = txn.Amount.Sub(result.TotalTax)

	// Replace, not accumulate: the old contribution (if any) is dropped along
	// with the old result.
	e.results[txn.ID] = result
	e.contributions[txn.ID] = contrib
	return result
}

// Result returns the stored computation for a transaction id.
func (e *Engine) Result(txnID string) (model.TaxComputationResult, bool) {
	r, ok := e.results[txnID]
	return r, ok
}

// Results returns all live computations sorted by transaction id.
func (e *Engine) Results() []model.TaxComputationResult {
	ids := make([]string, 0, len(e.results))
	for id := range e.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.TaxComputationResult, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.results[id])
	}
	return out
}

// Summary aggregates all live computations into running totals.
func (e *Engine) Summary() Summary {
	s := Summary{
		TotalVAT:       decimal.Zero,
		InputVATCredit: decimal.Zero,
		TotalWHT:       decimal.Zero,
		TotalCGT:       decimal.Zero,
		TotalStampDuty: decimal.Zero,
		Turnover:       decimal.Zero,
		TaxableProfit:  decimal.Zero,
	}
	expenses := decimal.Zero
	for _, c := range e.contributions {
		s.TotalVAT = s.TotalVAT.Add(c.outputVAT)
		s.InputVATCredit = s.InputVATCredit.Add(c.inputVAT)
		s.TotalWHT = s.TotalWHT.Add(c.wht)
		s.TotalCGT = s.TotalCGT.Add(c.cgt)
		s.TotalStampDuty = s.TotalStampDuty.Add(c.stamp)
		s.Turnover = s.Turnover.Add(c.turnover)
		expenses = expenses.Add(c.expenses)
	}

	s.NetVATPayable = s.TotalVAT.Sub(s.InputVATCredit)
	s.TaxableProfit = s.Turnover.Sub(expenses)
	s.IncomeTax = e.incomeTax(s.Turnover, s.TaxableProfit)
	return s
}

func (e *Engine) incomeTax(turnover, profit decimal.Decimal) decimal.Decimal {
	if !profit.IsPositive() {
		return decimal.Zero
	}
	if e.regime == RegimePersonal {
		return ComputePIT(profit)
	}
	return profit.Mul(CITRate(turnover)).Round(2)
}

// vatPortion extracts the VAT embedded in a VAT-inclusive gross amount.
func vatPortion(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(VATRate).Div(decimal.NewFromInt(1).Add(VATRate)).Round(2)
}

// paymentType maps a transaction to a WHT rate-table key.
func paymentType(txn model.RawTransaction, cls model.Classification) string {
	if txn.Category != "" {
		if _, ok := whtRates[normalize(txn.Category)]; ok {
			return txn.Category
		}
	}
	switch cls.Rule {
	case "rent-payment", "large-round-rent":
		return "rent"
	case "professional-fees":
		return "professional_fees"
	case "dividend-income":
		return "dividends"
	}
	return txn.Category
}
