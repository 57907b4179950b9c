// Package posting turns classified transactions into balanced journal entries.
package posting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/model"
)

var (
	// ErrInvalidAmount is returned for non-positive amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrMissingNarration is returned when the description is empty.
	ErrMissingNarration = errors.New("narration is required")
	// ErrUnbalancedEntry signals a posting-table defect, not bad input.
	ErrUnbalancedEntry = errors.New("journal entry does not balance")
)

// IDFunc allocates a fresh journal entry id for a posting date.
type IDFunc func(date time.Time) string

// Poster builds journal entries from classified transactions. It never
// mutates the ledger: a failed validation produces no side effects.
type Poster struct {
	chart         *chart.Registry
	vatRegistered bool
	vatRate       decimal.Decimal
	nextID        IDFunc
}

// New creates a Poster. vatRate is the VAT fraction (0.075) used to split
// VAT-inclusive amounts when the business is VAT-registered.
func New(reg *chart.Registry, vatRegistered bool, vatRate decimal.Decimal, nextID IDFunc) *Poster {
	return &Poster{chart: reg, vatRegistered: vatRegistered, vatRate: vatRate, nextID: nextID}
}

// Post converts one classified transaction into a balanced journal entry.
func (p *Poster) Post(txn model.RawTransaction, cls model.Classification) (model.JournalEntry, error) {
	if !txn.Amount.IsPositive() {
		return model.JournalEntry{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, txn.Amount)
	}
	narration := strings.TrimSpace(txn.Description)
	if narration == "" {
		return model.JournalEntry{}, ErrMissingNarration
	}

	txnType := cls.TransactionType
	if txn.Type != "" {
		txnType = txn.Type
	}

	build, ok := postingTable[txnType]
	if !ok {
		build = postExpense
	}

	lines, err := build(p, txn, cls)
	if err != nil {
		return model.JournalEntry{}, err
	}

	entry := model.JournalEntry{
		ID:            p.nextID(txn.Date),
		TransactionID: txn.ID,
		Date:          txn.Date,
		Narration:     narration,
		Lines:         lines,
	}
	if !entry.IsBalanced() {
		return model.JournalEntry{}, fmt.Errorf("%w: debits %s credits %s",
			ErrUnbalancedEntry, entry.TotalDebits(), entry.TotalCredits())
	}
	return entry, nil
}

// lineBuilder produces the minimal balanced line set for one transaction type.
type lineBuilder func(p *Poster, txn model.RawTransaction, cls model.Classification) ([]model.JournalLine, error)

var postingTable = map[model.TransactionType]lineBuilder{
	model.TxnIncome:           postIncome,
	model.TxnExpense:          postExpense,
	model.TxnAssetPurchase:    postAssetPurchase,
	model.TxnAssetDisposal:    postAssetDisposal,
	model.TxnLiabilityPayment: postLiabilityPayment,
	model.TxnEquityInjection:  postEquityInjection,
}

func postIncome(p *Poster, txn model.RawTransaction, cls model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	revenue, err := p.chart.Resolve(revenueCode(cls))
	if err != nil {
		return nil, err
	}

	// VAT-registered sales are VAT-inclusive: split out the output VAT.
	if p.vatRegistered && cls.TaxType == model.TaxVAT {
		vatPayable, err := p.chart.Resolve(chart.CodeVATPayable)
		if err != nil {
			return nil, err
		}
		vat := vatPortion(txn.Amount, p.vatRate)
		return []model.JournalLine{
			debit(cash, txn.Amount),
			credit(revenue, txn.Amount.Sub(vat)),
			credit(vatPayable, vat),
		}, nil
	}

	return []model.JournalLine{
		debit(cash, txn.Amount),
		credit(revenue, txn.Amount),
	}, nil
}

func postExpense(p *Poster, txn model.RawTransaction, cls model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	expense, err := p.chart.Resolve(expenseCode(txn, cls))
	if err != nil {
		return nil, err
	}

	// Recoverable input VAT on purchases for registered filers.
	if p.vatRegistered && cls.TaxType == model.TaxVAT {
		inputVAT, err := p.chart.Resolve(chart.CodeInputVAT)
		if err != nil {
			return nil, err
		}
		vat := vatPortion(txn.Amount, p.vatRate)
		return []model.JournalLine{
			debit(expense, txn.Amount.Sub(vat)),
			debit(inputVAT, vat),
			credit(cash, txn.Amount),
		}, nil
	}

	return []model.JournalLine{
		debit(expense, txn.Amount),
		credit(cash, txn.Amount),
	}, nil
}

func postAssetPurchase(p *Poster, txn model.RawTransaction, _ model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	asset, err := p.chart.Resolve(chart.CodeEquipment)
	if err != nil {
		return nil, err
	}
	return []model.JournalLine{
		debit(asset, txn.Amount),
		credit(cash, txn.Amount),
	}, nil
}

func postAssetDisposal(p *Poster, txn model.RawTransaction, _ model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	asset, err := p.chart.Resolve(chart.CodeEquipment)
	if err != nil {
		return nil, err
	}

	cost := txn.CostBasis
	if cost.IsZero() {
		// No recorded basis: the whole proceeds are other income.
		other, err := p.chart.Resolve(chart.CodeOtherIncome)
		if err != nil {
			return nil, err
		}
		return []model.JournalLine{
			debit(cash, txn.Amount),
			credit(other, txn.Amount),
		}, nil
	}

	lines := []model.JournalLine{
		debit(cash, txn.Amount),
		credit(asset, cost),
	}
	gain := txn.Amount.Sub(cost)
	switch {
	case gain.IsPositive():
		other, err := p.chart.Resolve(chart.CodeOtherIncome)
		if err != nil {
			return nil, err
		}
		lines = append(lines, credit(other, gain))
	case gain.IsNegative():
		loss, err := p.chart.Resolve(chart.CodeMiscExpense)
		if err != nil {
			return nil, err
		}
		lines = append(lines, debit(loss, gain.Neg()))
	}
	return lines, nil
}

func postLiabilityPayment(p *Poster, txn model.RawTransaction, _ model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	code := chart.CodeLoansPayable
	if strings.Contains(strings.ToLower(txn.Category), "payable") {
		code = chart.CodePayables
	}
	liability, err := p.chart.Resolve(code)
	if err != nil {
		return nil, err
	}
	return []model.JournalLine{
		debit(liability, txn.Amount),
		credit(cash, txn.Amount),
	}, nil
}

func postEquityInjection(p *Poster, txn model.RawTransaction, _ model.Classification) ([]model.JournalLine, error) {
	cash, err := p.chart.Resolve(chart.CodeCash)
	if err != nil {
		return nil, err
	}
	equity, err := p.chart.Resolve(chart.CodeOwnersCapital)
	if err != nil {
		return nil, err
	}
	return []model.JournalLine{
		debit(cash, txn.Amount),
		credit(equity, txn.Amount),
	}, nil
}

func revenueCode(cls model.Classification) string {
	switch cls.Rule {
	case "service-income":
		return chart.CodeServiceRevenue
	case "dividend-income":
		return chart.CodeOtherIncome
	default:
		return chart.CodeSalesRevenue
	}
}

func expenseCode(txn model.RawTransaction, cls model.Classification) string {
	switch cls.Rule {
	case "rent-payment", "large-round-rent":
		return chart.CodeRentExpense
	case "professional-fees":
		return chart.CodeProfessionalFees
	case "salaries":
		return chart.CodeSalaries
	case "utilities":
		return chart.CodeUtilities
	case "inventory-purchase":
		return chart.CodeCostOfSales
	}
	switch strings.ToLower(strings.TrimSpace(txn.Category)) {
	case "advertising", "marketing":
		return chart.CodeAdvertising
	case "supplies", "office_supplies":
		return chart.CodeOfficeSupplies
	case "bank_charges":
		return chart.CodeBankCharges
	}
	return chart.CodeMiscExpense
}

// vatPortion extracts the VAT embedded in a VAT-inclusive gross amount:
// gross * r / (1 + r), rounded to kobo.
func vatPortion(gross, rate decimal.Decimal) decimal.Decimal {
	return gross.Mul(rate).Div(decimal.NewFromInt(1).Add(rate)).Round(2)
}

func debit(acct model.ChartAccount, amount decimal.Decimal) model.JournalLine {
	return model.JournalLine{AccountCode: acct.Code, AccountName: acct.Name, Debit: amount}
}

func credit(acct model.ChartAccount, amount decimal.Decimal) model.JournalLine {
	return model.JournalLine{AccountCode: acct.Code, AccountName: acct.Name, Credit: amount}
}
