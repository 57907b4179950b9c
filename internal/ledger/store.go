// Package ledger maintains per-account posting logs with running balances,
// derived entirely from accepted journal entries.
package ledger

import (
	"fmt"
	"sort"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/model"
)

// Store is an append-only ledger keyed by account code. Applying the same
// journal entry id twice is a no-op, so replaying the full entry log always
// reproduces the same balances.
type Store struct {
	chart    *chart.Registry
	accounts map[string]*model.LedgerAccount
	applied  map[string]bool
}

// NewStore creates an empty ledger over a chart of accounts.
func NewStore(reg *chart.Registry) *Store {
	return &Store{
		chart:    reg,
		accounts: make(map[string]*model.LedgerAccount),
		applied:  make(map[string]bool),
	}
}

// Apply posts each line of a journal entry to its account, recomputing the
// running balance incrementally. Idempotent per entry id.
func (s *Store) Apply(entry model.JournalEntry) error {
	if s.applied[entry.ID] {
		return nil
	}

	// Resolve every account before touching any balance so a bad code
	// cannot leave the ledger half-applied.
	for _, line := range entry.Lines {
		if _, err := s.chart.Resolve(line.AccountCode); err != nil {
			return fmt.Errorf("applying entry %s: %w", entry.ID, err)
		}
	}

	for _, line := range entry.Lines {
		acct := s.ensure(line.AccountCode)

		delta := line.Debit.Sub(line.Credit)
		if acct.NormalBalance == model.SideCredit {
			delta = line.Credit.Sub(line.Debit)
		}

		balance := acct.ClosingBalance.Add(delta)
		acct.Entries = append(acct.Entries, model.LedgerPosting{
			Date:      entry.Date,
			Narration: entry.Narration,
			Debit:     line.Debit,
			Credit:    line.Credit,
			Balance:   balance,
		})
		acct.ClosingBalance = balance
	}

	s.applied[entry.ID] = true
	return nil
}

// RebuildFromEntries resets the store and replays entries in order. The
// result is identical to sequential Apply calls over the same input, which is
// what makes persistence reload safe: stored balances are never trusted.
func (s *Store) RebuildFromEntries(entries []model.JournalEntry) error {
	s.accounts = make(map[string]*model.LedgerAccount)
	s.applied = make(map[string]bool)
	for _, e := range entries {
		if err := s.Apply(e); err != nil {
			return err
		}
	}
	return nil
}

// Account returns a copy of one ledger account.
func (s *Store) Account(code string) (model.LedgerAccount, bool) {
	acct, ok := s.accounts[code]
	if !ok {
		return model.LedgerAccount{}, false
	}
	return copyAccount(acct), true
}

// Accounts returns copies of all touched accounts, sorted by code.
func (s *Store) Accounts() []model.LedgerAccount {
	codes := make([]string, 0, len(s.accounts))
	for code := range s.accounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]model.LedgerAccount, 0, len(codes))
	for _, code := range codes {
		out = append(out, copyAccount(s.accounts[code]))
	}
	return out
}

func (s *Store) ensure(code string) *model.LedgerAccount {
	if acct, ok := s.accounts[code]; ok {
		return acct
	}
	ca, _ := s.chart.Resolve(code)
	acct := &model.LedgerAccount{
		AccountCode:   ca.Code,
		AccountName:   ca.Name,
		AccountClass:  ca.Class,
		NormalBalance: ca.NormalBalance,
	}
	s.accounts[code] = acct
	return acct
}

func copyAccount(acct *model.LedgerAccount) model.LedgerAccount {
	out := *acct
	out.Entries = make([]model.LedgerPosting, len(acct.Entries))
	copy(out.Entries, acct.Entries)
	return out
}
