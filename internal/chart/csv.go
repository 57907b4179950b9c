package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nairabooks/nairabooks/internal/model"
)

const (
	numFields = 6
	colCode   = 0
	colName   = 1
	colClass  = 2
	colSub    = 3
	colNormal = 4
	colDesc   = 5
)

// ReadAccounts reads a chart-of-accounts CSV (header row included).
func ReadAccounts(r io.Reader) ([]model.ChartAccount, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.ChartAccount
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a chart-of-accounts CSV (header row included).
func WriteAccounts(w io.Writer, accounts []model.ChartAccount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "class", "sub_class", "normal_balance", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts a ChartAccount to a CSV row.
func MarshalAccount(acct model.ChartAccount) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colClass] = string(acct.Class)
	row[colSub] = acct.SubClass
	row[colNormal] = string(acct.NormalBalance)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to a ChartAccount.
func UnmarshalAccount(record []string) (model.ChartAccount, error) {
	if len(record) != numFields {
		return model.ChartAccount{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	class := model.AccountClass(record[colClass])
	if !class.Valid() {
		return model.ChartAccount{}, fmt.Errorf("unknown class %s", strconv.Quote(record[colClass]))
	}

	normal := model.BalanceSide(record[colNormal])
	if normal == "" {
		normal = class.NormalSide()
	}

	return model.ChartAccount{
		Code:          record[colCode],
		Name:          record[colName],
		Class:         class,
		SubClass:      record[colSub],
		NormalBalance: normal,
		Description:   record[colDesc],
	}, nil
}
