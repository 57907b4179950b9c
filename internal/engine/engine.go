// Package engine owns the combined bookkeeping state: it runs the
// classification, posting and tax pipeline for each accepted transaction,
// hands out immutable snapshots, and notifies observers after every
// successful state transition.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/classify"
	"github.com/nairabooks/nairabooks/internal/config"
	"github.com/nairabooks/nairabooks/internal/id"
	"github.com/nairabooks/nairabooks/internal/ledger"
	"github.com/nairabooks/nairabooks/internal/logging"
	"github.com/nairabooks/nairabooks/internal/model"
	"github.com/nairabooks/nairabooks/internal/posting"
	"github.com/nairabooks/nairabooks/internal/store"
	"github.com/nairabooks/nairabooks/internal/tax"
)

// ErrDuplicateTransaction is returned when a transaction id has already been
// recorded. Each id posts exactly once, so re-importing a statement rejects
// the repeated rows instead of double-posting the ledger.
var ErrDuplicateTransaction = errors.New("duplicate transaction id")

// State is an immutable, independently-owned snapshot of the engine.
// Mutating a State never affects the engine.
type State struct {
	ChartAccounts   []model.ChartAccount           `json:"chartAccounts"`
	CustomAccounts  []model.ChartAccount           `json:"customAccounts"`
	Transactions    []model.RawTransaction         `json:"transactions"`
	JournalEntries  []model.JournalEntry           `json:"journalEntries"`
	LedgerAccounts  map[string]model.LedgerAccount `json:"ledgerAccounts"`
	TaxComputations []model.TaxComputationResult   `json:"taxComputations"`
	Schedules       []model.TaxScheduleEntry       `json:"schedules"`
	LastUpdated     time.Time                      `json:"lastUpdated"`
}

// Observer is notified synchronously after each successful state transition.
type Observer func(State)

// RecordResult reports everything derived from one accepted transaction.
type RecordResult struct {
	Transaction    model.RawTransaction
	Classification model.Classification
	Entry          model.JournalEntry
	Tax            model.TaxComputationResult
}

type subscriber struct {
	id int
	fn Observer
}

// Engine is the single logical writer over the books. All operations are
// synchronous: validate, mutate atomically, notify, then persist best-effort.
type Engine struct {
	mu sync.Mutex

	business   config.BusinessConfig
	registry   *chart.Registry
	classifier *classify.Classifier
	poster     *posting.Poster
	ledger     *ledger.Store
	taxes      *tax.Engine

	transactions []model.RawTransaction
	entries      []model.JournalEntry
	seen         map[string]struct{} // recorded transaction ids
	seq          map[string]int      // "YYYY-MM" -> last allocated entry sequence

	subs    []subscriber
	nextSub int

	blob store.Store // nil disables persistence
	log  zerolog.Logger
	now  func() time.Time

	lastUpdated time.Time
}

// New creates an Engine. blob may be nil for an ephemeral, unpersisted engine.
func New(business config.BusinessConfig, classifier *classify.Classifier, blob store.Store) *Engine {
	if classifier == nil {
		classifier = classify.NewDefault()
	}

	regime := tax.RegimeCompany
	if !business.IsCompany() {
		regime = tax.RegimePersonal
	}

	registry := chart.Default()
	e := &Engine{
		business:   business,
		registry:   registry,
		classifier: classifier,
		ledger:     ledger.NewStore(registry),
		taxes:      tax.New(business.VATRegistered, regime),
		seen:       make(map[string]struct{}),
		seq:        make(map[string]int),
		blob:       blob,
		log:        logging.WithComponent("engine"),
		now:        time.Now,
	}
	e.poster = posting.New(registry, business.VATRegistered, tax.VATRate, e.nextEntryID)
	return e
}

// Record classifies, posts and taxes one raw transaction as a single atomic
// operation. A validation failure leaves the engine untouched.
func (e *Engine) Record(txn model.RawTransaction) (RecordResult, error) {
	e.mu.Lock()

	if txn.ID == "" {
		txn.ID = id.NewTransactionID()
	}
	if _, ok := e.seen[txn.ID]; ok {
		e.mu.Unlock()
		return RecordResult{}, fmt.Errorf("transaction %s: %w", txn.ID, ErrDuplicateTransaction)
	}
	if txn.Date.IsZero() {
		txn.Date = e.now()
	}

	cls := e.classifier.Classify(txn.Description, txn.Amount, txn.Category)

	entry, err := e.poster.Post(txn, cls)
	if err != nil {
		e.mu.Unlock()
		return RecordResult{}, fmt.Errorf("posting transaction %s: %w", txn.ID, err)
	}
	if err := e.ledger.Apply(entry); err != nil {
		e.mu.Unlock()
		return RecordResult{}, fmt.Errorf("applying entry %s: %w", entry.ID, err)
	}

	taxResult := e.taxes.Compute(txn, cls)
	e.seen[txn.ID] = struct{}{}
	e.transactions = append(e.transactions, txn)
	e.entries = append(e.entries, entry)
	e.lastUpdated = e.now()

	e.log.Debug().
		Str("transaction", txn.ID).
		Str("entry", entry.ID).
		Str("type", string(cls.TransactionType)).
		Str("tax", string(cls.TaxType)).
		Msg("transaction recorded")

	result := RecordResult{Transaction: txn, Classification: cls, Entry: entry, Tax: taxResult}
	e.commitLocked()
	return result, nil
}

// RecordAll applies each transaction independently: one rejected transaction
// does not abort or corrupt the rest of the batch.
func (e *Engine) RecordAll(txns []model.RawTransaction) (applied []RecordResult, rejected []error) {
	for _, txn := range txns {
		res, err := e.Record(txn)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		applied = append(applied, res)
	}
	return applied, rejected
}

// AddCustomAccount registers a user-defined chart account.
func (e *Engine) AddCustomAccount(draft model.ChartAccount) (model.ChartAccount, error) {
	e.mu.Lock()

	acct, err := e.registry.AddCustom(draft)
	if err != nil {
		e.mu.Unlock()
		return model.ChartAccount{}, err
	}
	e.lastUpdated = e.now()
	e.commitLocked()
	return acct, nil
}

// State returns a deep, independently-owned snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// TrialBalance aggregates the ledger into a trial balance.
func (e *Engine) TrialBalance() ledger.TrialBalance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.GenerateTrialBalance()
}

// Statements derives the yearly income statement and balance sheet.
func (e *Engine) Statements(year int) ledger.StatementDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ledger.GenerateStatements(e.entries, year)
}

// TaxSummary returns the running tax aggregates.
func (e *Engine) TaxSummary() tax.Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.taxes.Summary()
}

// Schedule returns the current filing schedule.
func (e *Engine) Schedule() []model.TaxScheduleEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.taxes.GenerateSchedule(e.now())
}

// MarkRemitted records a filing-schedule entry as paid.
func (e *Engine) MarkRemitted(scheduleID string) error {
	e.mu.Lock()

	if err := e.taxes.MarkRemitted(scheduleID); err != nil {
		e.mu.Unlock()
		return err
	}
	e.lastUpdated = e.now()
	e.commitLocked()
	return nil
}

// Subscribe registers an observer and returns its handle for Unsubscribe.
func (e *Engine) Subscribe(fn Observer) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextSub++
	e.subs = append(e.subs, subscriber{id: e.nextSub, fn: fn})
	return e.nextSub
}

// Unsubscribe removes a specific observer.
func (e *Engine) Unsubscribe(handle int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.subs {
		if s.id == handle {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// commitLocked snapshots state, releases the lock, notifies observers in
// registration order, then persists best-effort. Persistence failure is
// reported but never rolls back the in-memory state.
func (e *Engine) commitLocked() {
	snap := e.stateLocked()
	subs := make([]subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, s := range subs {
		s.fn(snap)
	}

	if err := e.save(snap); err != nil {
		e.log.Warn().Err(err).Msg("snapshot save failed; in-memory state preserved")
	}
}

// nextEntryID allocates the next journal entry id for a posting date.
func (e *Engine) nextEntryID(date time.Time) string {
	key := date.Format("2006-01")
	e.seq[key]++
	return id.FormatEntryID(date.Year(), int(date.Month()), e.seq[key])
}

func (e *Engine) stateLocked() State {
	st := State{
		ChartAccounts:   e.registry.All(),
		CustomAccounts:  e.registry.Custom(),
		Transactions:    make([]model.RawTransaction, len(e.transactions)),
		JournalEntries:  make([]model.JournalEntry, len(e.entries)),
		LedgerAccounts:  make(map[string]model.LedgerAccount),
		TaxComputations: e.taxes.Results(),
		Schedules:       e.taxes.GenerateSchedule(e.now()),
		LastUpdated:     e.lastUpdated,
	}
	copy(st.Transactions, e.transactions)
	for i, entry := range e.entries {
		cp := entry
		cp.Lines = make([]model.JournalLine, len(entry.Lines))
		copy(cp.Lines, entry.Lines)
		st.JournalEntries[i] = cp
	}
	for _, acct := range e.ledger.Accounts() {
		st.LedgerAccounts[acct.AccountCode] = acct
	}
	return st
}
