// Package export writes the books out as plain CSV files so an accountant
// can open them in a spreadsheet, and optionally snapshots the export
// directory in git.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/engine"
	"github.com/nairabooks/nairabooks/internal/model"
)

const (
	chartFile    = "chart_of_accounts.csv"
	journalFile  = "journal.csv"
	scheduleFile = "tax_schedule.csv"
)

// JournalHeader is the CSV header for journal.csv, one row per journal line.
const JournalHeader = "entry_id,date,narration,account_code,account_name,debit,credit"

const (
	journalNumFields    = 7
	journalColEntryID   = 0
	journalColDate      = 1
	journalColNarration = 2
	journalColAccount   = 3
	journalColName      = 4
	journalColDebit     = 5
	journalColCredit    = 6
)

// ScheduleHeader is the CSV header for tax_schedule.csv.
const ScheduleHeader = "id,tax_type,period,due_date,amount,status"

// WriteBooks exports the chart of accounts, full journal, and filing
// schedule from a state snapshot into dir, overwriting previous exports.
func WriteBooks(dir string, st engine.State) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	accounts := append(append([]model.ChartAccount{}, st.ChartAccounts...), st.CustomAccounts...)
	if err := writeChartFile(filepath.Join(dir, chartFile), accounts); err != nil {
		return err
	}
	if err := writeJournalFile(filepath.Join(dir, journalFile), st.JournalEntries); err != nil {
		return err
	}
	return writeScheduleFile(filepath.Join(dir, scheduleFile), st.Schedules)
}

func writeChartFile(path string, accounts []model.ChartAccount) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := chart.WriteAccounts(f, accounts); err != nil {
		return fmt.Errorf("writing chart export: %w", err)
	}
	return nil
}

func writeJournalFile(path string, entries []model.JournalEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(JournalHeader, ",")); err != nil {
		return fmt.Errorf("writing journal header: %w", err)
	}
	for _, e := range entries {
		for _, line := range e.Lines {
			if err := cw.Write(marshalJournalLine(e, line)); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.ID, err)
			}
		}
	}
	return cw.Error()
}

func marshalJournalLine(e model.JournalEntry, line model.JournalLine) []string {
	row := make([]string, journalNumFields)
	row[journalColEntryID] = e.ID
	row[journalColDate] = e.Date.Format(time.DateOnly)
	row[journalColNarration] = e.Narration
	row[journalColAccount] = line.AccountCode
	row[journalColName] = line.AccountName
	row[journalColDebit] = line.Debit.StringFixed(2)
	row[journalColCredit] = line.Credit.StringFixed(2)
	return row
}

func writeScheduleFile(path string, schedules []model.TaxScheduleEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ScheduleHeader, ",")); err != nil {
		return fmt.Errorf("writing schedule header: %w", err)
	}
	for _, s := range schedules {
		row := []string{
			s.ID,
			string(s.TaxType),
			s.Period,
			s.DueDate.Format(time.DateOnly),
			s.TaxAmount.StringFixed(2),
			string(s.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing schedule %s: %w", s.ID, err)
		}
	}
	return cw.Error()
}
