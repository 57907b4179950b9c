package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// GTBankParser parses GTBank account statement CSV exports.
type GTBankParser struct{}

const (
	gtbDateFormat = "02-Jan-2006"
	gtbNumFields  = 6
	gtbColDate    = 0
	gtbColRef     = 1
	gtbColDebit   = 2
	gtbColCredit  = 3
	gtbColBalance = 4
	gtbColRemarks = 5
)

// Format returns the parser name.
func (p *GTBankParser) Format() string { return "gtbank" }

// Parse reads a GTBank statement CSV and returns RawTransactions. Debit rows
// become expenses, credit rows income; amounts are always positive
// magnitudes.
func (p *GTBankParser) Parse(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = gtbNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading gtbank CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.RawTransaction
	for i, rec := range records[1:] {
		txn, err := parseGTBankRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseGTBankRow(rec []string) (model.RawTransaction, error) {
	date, err := time.Parse(gtbDateFormat, rec[gtbColDate])
	if err != nil {
		return model.RawTransaction{}, fmt.Errorf("parsing date %q: %w", rec[gtbColDate], err)
	}

	debit, err := parseAmount(rec[gtbColDebit])
	if err != nil {
		return model.RawTransaction{}, fmt.Errorf("parsing debit %q: %w", rec[gtbColDebit], err)
	}
	credit, err := parseAmount(rec[gtbColCredit])
	if err != nil {
		return model.RawTransaction{}, fmt.Errorf("parsing credit %q: %w", rec[gtbColCredit], err)
	}

	remarks := rec[gtbColRemarks]
	txn := model.RawTransaction{
		ID:          makeGTBankID(date, remarks),
		Date:        date,
		Description: remarks,
	}
	switch {
	case debit.IsPositive():
		txn.Amount = debit
		txn.Type = model.TxnExpense
	case credit.IsPositive():
		txn.Amount = credit
		txn.Type = model.TxnIncome
	default:
		return model.RawTransaction{}, fmt.Errorf("row has neither debit nor credit")
	}
	return txn, nil
}

// parseAmount handles blank cells and thousands separators ("1,250,000.00").
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// makeGTBankID creates a stable reference like gtb_20250103_POSTRFNKECHI, so
// re-importing the same statement produces the same transaction ids.
func makeGTBankID(date time.Time, remarks string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, remarks)
	if len(prefix) > 12 {
		prefix = prefix[:12]
	}
	return fmt.Sprintf("gtb_%s_%s", date.Format("20060102"), strings.ToUpper(prefix))
}
