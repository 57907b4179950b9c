package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/config"
	"github.com/nairabooks/nairabooks/internal/model"
	"github.com/nairabooks/nairabooks/internal/store"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newEngine(blob store.Store) *Engine {
	return New(config.BusinessConfig{Name: "Test Ventures", EntityType: "limited_company"}, nil, blob)
}

func income(id, desc, category, amount string, day time.Time) model.RawTransaction {
	return model.RawTransaction{
		ID: id, Date: day, Description: desc, Category: category,
		Amount: dec(amount), Type: model.TxnIncome,
	}
}

func TestRecord_IncomePipeline(t *testing.T) {
	e := newEngine(nil)

	res, err := e.Record(income("t1", "daily sales", "sales", "100000", date(2025, 1, 15)))
	require.NoError(t, err)

	// Journal entry: Dr Cash 100000 / Cr Sales Revenue 100000.
	require.Len(t, res.Entry.Lines, 2)
	assert.Equal(t, "Cash", res.Entry.Lines[0].AccountName)
	assert.True(t, res.Entry.Lines[0].Debit.Equal(dec("100000")))
	assert.Equal(t, "Sales Revenue", res.Entry.Lines[1].AccountName)
	assert.True(t, res.Entry.Lines[1].Credit.Equal(dec("100000")))

	// Ledger: cash closing balance up by 100000.
	st := e.State()
	cash := st.LedgerAccounts[chart.CodeCash]
	assert.True(t, cash.ClosingBalance.Equal(dec("100000")))

	// Trial balance: Cash debit 100000 / Sales Revenue credit 100000.
	tb := e.TrialBalance()
	require.Len(t, tb.Accounts, 2)
	assert.True(t, tb.TotalDebit.Equal(dec("100000")))
	assert.True(t, tb.TotalCredit.Equal(dec("100000")))
	assert.False(t, tb.Imbalanced)
}

func TestRecord_RejectionLeavesStateUntouched(t *testing.T) {
	e := newEngine(nil)
	_, err := e.Record(income("t1", "ok", "sales", "5000", date(2025, 1, 10)))
	require.NoError(t, err)
	before := e.State()

	_, err = e.Record(model.RawTransaction{
		ID: "bad", Date: date(2025, 1, 11), Description: "", Amount: dec("100"),
	})
	require.Error(t, err)

	after := e.State()
	assert.Equal(t, len(before.Transactions), len(after.Transactions))
	assert.Equal(t, len(before.JournalEntries), len(after.JournalEntries))
}

func TestRecord_DuplicateTransactionID(t *testing.T) {
	e := newEngine(nil)

	txn := income("gtb_20250110_POSTRFNKECHI", "POS TRF NKECHI", "sales", "100000", date(2025, 1, 10))
	_, err := e.Record(txn)
	require.NoError(t, err)

	// A re-imported statement row carries the same id and must not post again.
	_, err = e.Record(txn)
	require.ErrorIs(t, err, ErrDuplicateTransaction)

	st := e.State()
	assert.Len(t, st.Transactions, 1)
	assert.Len(t, st.JournalEntries, 1)
	assert.True(t, st.LedgerAccounts[chart.CodeCash].ClosingBalance.Equal(dec("100000")))
	assert.True(t, e.TaxSummary().Turnover.Equal(dec("100000")))
}

func TestRecord_DuplicateIDAfterReload(t *testing.T) {
	blob := store.NewMemory()
	e := newEngine(blob)
	txn := income("t1", "daily sales", "sales", "40000", date(2025, 2, 3))
	_, err := e.Record(txn)
	require.NoError(t, err)

	reloaded := newEngine(blob)
	require.NoError(t, reloaded.Load())

	_, err = reloaded.Record(txn)
	require.ErrorIs(t, err, ErrDuplicateTransaction)
	assert.Len(t, reloaded.State().JournalEntries, 1)
}

func TestRecordAll_IndependentApplications(t *testing.T) {
	e := newEngine(nil)

	applied, rejected := e.RecordAll([]model.RawTransaction{
		income("t1", "sales", "sales", "10000", date(2025, 1, 5)),
		{ID: "t2", Date: date(2025, 1, 6), Description: "bad amount", Amount: dec("-5")},
		income("t3", "sales", "sales", "20000", date(2025, 1, 7)),
	})

	assert.Len(t, applied, 2)
	assert.Len(t, rejected, 1)

	tb := e.TrialBalance()
	assert.True(t, tb.TotalDebit.Equal(dec("30000")), "failed row does not corrupt applied rows")
}

func TestState_IsIndependentCopy(t *testing.T) {
	e := newEngine(nil)
	_, err := e.Record(income("t1", "sales", "sales", "10000", date(2025, 1, 5)))
	require.NoError(t, err)

	st := e.State()
	st.Transactions[0].Description = "tampered"
	st.JournalEntries[0].Lines[0].Debit = dec("1")
	delete(st.LedgerAccounts, chart.CodeCash)

	fresh := e.State()
	assert.Equal(t, "sales", fresh.Transactions[0].Description)
	assert.True(t, fresh.JournalEntries[0].Lines[0].Debit.Equal(dec("10000")))
	assert.Contains(t, fresh.LedgerAccounts, chart.CodeCash)
}

func TestSubscribe_NotifiedInRegistrationOrder(t *testing.T) {
	e := newEngine(nil)

	var order []string
	e.Subscribe(func(State) { order = append(order, "first") })
	second := e.Subscribe(func(State) { order = append(order, "second") })

	_, err := e.Record(income("t1", "sales", "sales", "1000", date(2025, 1, 5)))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)

	e.Unsubscribe(second)
	order = nil
	_, err = e.Record(income("t2", "sales", "sales", "1000", date(2025, 1, 6)))
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, order)
}

func TestEntryIDs_SequentialPerMonth(t *testing.T) {
	e := newEngine(nil)

	r1, err := e.Record(income("t1", "sales", "sales", "100", date(2025, 1, 5)))
	require.NoError(t, err)
	r2, err := e.Record(income("t2", "sales", "sales", "100", date(2025, 1, 6)))
	require.NoError(t, err)
	r3, err := e.Record(income("t3", "sales", "sales", "100", date(2025, 2, 1)))
	require.NoError(t, err)

	assert.Equal(t, "2025-01-001", r1.Entry.ID)
	assert.Equal(t, "2025-01-002", r2.Entry.ID)
	assert.Equal(t, "2025-02-001", r3.Entry.ID)
}

func TestPersistence_RoundTrip(t *testing.T) {
	blob := store.NewMemory()

	e := newEngine(blob)
	_, err := e.Record(income("t1", "sales", "sales", "250000", date(2025, 1, 5)))
	require.NoError(t, err)
	_, err = e.Record(model.RawTransaction{
		ID: "t2", Date: date(2025, 1, 9), Description: "office rent to landlord",
		Category: "rent", Amount: dec("100000"), Type: model.TxnExpense,
	})
	require.NoError(t, err)
	_, err = e.AddCustomAccount(model.ChartAccount{Code: "6500", Name: "Generator Fuel", Class: model.ClassExpense})
	require.NoError(t, err)

	wantTB := e.TrialBalance()
	wantSummary := e.TaxSummary()

	reloaded := newEngine(blob)
	require.NoError(t, reloaded.Load())

	gotTB := reloaded.TrialBalance()
	require.Len(t, gotTB.Accounts, len(wantTB.Accounts))
	assert.True(t, gotTB.TotalDebit.Equal(wantTB.TotalDebit))
	assert.True(t, gotTB.TotalCredit.Equal(wantTB.TotalCredit))

	gotSummary := reloaded.TaxSummary()
	assert.True(t, gotSummary.TotalWHT.Equal(wantSummary.TotalWHT))

	// Custom account and id sequence survive.
	_, err = reloaded.AddCustomAccount(model.ChartAccount{Code: "6500", Name: "Dup", Class: model.ClassExpense})
	assert.ErrorIs(t, err, chart.ErrDuplicateCode)
	r, err := reloaded.Record(income("t3", "sales", "sales", "100", date(2025, 1, 20)))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-003", r.Entry.ID)
}

// failingStore always fails to save, to exercise the best-effort contract.
type failingStore struct{}

func (failingStore) Save([]byte) error     { return errors.New("disk full") }
func (failingStore) Load() ([]byte, error) { return nil, store.ErrNotFound }
func (failingStore) Close() error          { return nil }

func TestPersistenceFailure_DoesNotRollBack(t *testing.T) {
	e := newEngine(failingStore{})

	res, err := e.Record(income("t1", "sales", "sales", "50000", date(2025, 1, 5)))
	require.NoError(t, err, "a save failure must not fail the operation")
	assert.True(t, res.Entry.IsBalanced())

	st := e.State()
	assert.Len(t, st.Transactions, 1, "in-memory state remains the source of truth")
}

func TestTrialBalance_InvariantAcrossMixedActivity(t *testing.T) {
	e := newEngine(nil)

	txns := []model.RawTransaction{
		{ID: "a", Date: date(2025, 1, 2), Description: "owner investment", Category: "capital", Amount: dec("1000000"), Type: model.TxnEquityInjection},
		{ID: "b", Date: date(2025, 1, 5), Description: "sold goods", Category: "sales", Amount: dec("430000"), Type: model.TxnIncome},
		{ID: "c", Date: date(2025, 1, 9), Description: "restock", Category: "inventory", Amount: dec("150000.25"), Type: model.TxnExpense},
		{ID: "d", Date: date(2025, 2, 1), Description: "purchased generator", Category: "equipment", Amount: dec("750000"), Type: model.TxnAssetPurchase},
		{ID: "e", Date: date(2025, 2, 14), Description: "loan repayment", Category: "loan", Amount: dec("90000"), Type: model.TxnLiabilityPayment},
		{ID: "f", Date: date(2025, 3, 3), Description: "sold equipment (old grinder)", Amount: dec("120000"), CostBasis: dec("100000"), Type: model.TxnAssetDisposal},
	}
	for _, txn := range txns {
		_, err := e.Record(txn)
		require.NoError(t, err)

		tb := e.TrialBalance()
		assert.True(t, tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThanOrEqual(model.BalanceTolerance),
			"after %s: %s vs %s", txn.ID, tb.TotalDebit, tb.TotalCredit)
	}
}

func TestStatements_ScenarioNetIncome(t *testing.T) {
	e := newEngine(nil)

	_, err := e.Record(income("t1", "sales", "sales", "200000", date(2025, 1, 5)))
	require.NoError(t, err)
	_, err = e.Record(income("t2", "sales", "sales", "200000", date(2025, 4, 5)))
	require.NoError(t, err)
	_, err = e.Record(model.RawTransaction{
		ID: "t3", Date: date(2025, 7, 1), Description: "March payroll", Category: "salaries",
		Amount: dec("150000"), Type: model.TxnExpense,
	})
	require.NoError(t, err)

	draft := e.Statements(2025)
	assert.True(t, draft.Income.NetIncome.Equal(dec("250000")), "got %s", draft.Income.NetIncome)
}
