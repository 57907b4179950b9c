package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairabooks/nairabooks/internal/chart"
	"github.com/nairabooks/nairabooks/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// entry builds a two-line balanced journal entry.
func entry(id string, day time.Time, narration, debitCode, creditCode, amount string) model.JournalEntry {
	reg := chart.Default()
	da, _ := reg.Resolve(debitCode)
	ca, _ := reg.Resolve(creditCode)
	return model.JournalEntry{
		ID:        id,
		Date:      day,
		Narration: narration,
		Lines: []model.JournalLine{
			{AccountCode: da.Code, AccountName: da.Name, Debit: dec(amount)},
			{AccountCode: ca.Code, AccountName: ca.Name, Credit: dec(amount)},
		},
	}
}

func TestApply_RunningBalances(t *testing.T) {
	s := NewStore(chart.Default())

	require.NoError(t, s.Apply(entry("2025-01-001", date(2025, 1, 5), "sales", chart.CodeCash, chart.CodeSalesRevenue, "100000")))
	require.NoError(t, s.Apply(entry("2025-01-002", date(2025, 1, 9), "rent", chart.CodeRentExpense, chart.CodeCash, "40000")))

	cash, ok := s.Account(chart.CodeCash)
	require.True(t, ok)
	assert.True(t, cash.ClosingBalance.Equal(dec("60000")))
	require.Len(t, cash.Entries, 2)
	assert.True(t, cash.Entries[0].Balance.Equal(dec("100000")))
	assert.True(t, cash.Entries[1].Balance.Equal(dec("60000")))

	// Credit-normal account accumulates credit-debit.
	revenue, ok := s.Account(chart.CodeSalesRevenue)
	require.True(t, ok)
	assert.True(t, revenue.ClosingBalance.Equal(dec("100000")))
}

func TestApply_Idempotent(t *testing.T) {
	s := NewStore(chart.Default())
	e := entry("2025-01-001", date(2025, 1, 5), "sales", chart.CodeCash, chart.CodeSalesRevenue, "100000")

	require.NoError(t, s.Apply(e))
	require.NoError(t, s.Apply(e), "re-apply is a no-op")

	cash, _ := s.Account(chart.CodeCash)
	assert.True(t, cash.ClosingBalance.Equal(dec("100000")))
	assert.Len(t, cash.Entries, 1)
}

func TestApply_UnknownAccountLeavesStoreUntouched(t *testing.T) {
	s := NewStore(chart.Default())
	bad := model.JournalEntry{
		ID:   "2025-01-001",
		Date: date(2025, 1, 5),
		Lines: []model.JournalLine{
			{AccountCode: chart.CodeCash, Debit: dec("10")},
			{AccountCode: "9999", Credit: dec("10")},
		},
	}

	err := s.Apply(bad)
	require.ErrorIs(t, err, chart.ErrAccountNotFound)
	assert.Empty(t, s.Accounts())

	// The failed id must not be marked applied.
	require.NoError(t, s.Apply(entry("2025-01-001", date(2025, 1, 5), "ok", chart.CodeCash, chart.CodeSalesRevenue, "10")))
	cash, _ := s.Account(chart.CodeCash)
	assert.True(t, cash.ClosingBalance.Equal(dec("10")))
}

func TestRebuildFromEntries_MatchesSequentialApply(t *testing.T) {
	entries := []model.JournalEntry{
		entry("2025-01-001", date(2025, 1, 5), "sales", chart.CodeCash, chart.CodeSalesRevenue, "200000"),
		entry("2025-01-002", date(2025, 1, 10), "restock", chart.CodeCostOfSales, chart.CodeCash, "75000.50"),
		entry("2025-02-001", date(2025, 2, 2), "capital", chart.CodeCash, chart.CodeOwnersCapital, "500000"),
		// A duplicated id in the replayed log must not double-post.
		entry("2025-01-001", date(2025, 1, 5), "sales", chart.CodeCash, chart.CodeSalesRevenue, "200000"),
	}

	sequential := NewStore(chart.Default())
	for _, e := range entries {
		require.NoError(t, sequential.Apply(e))
	}

	rebuilt := NewStore(chart.Default())
	require.NoError(t, rebuilt.RebuildFromEntries(entries))

	want := sequential.Accounts()
	got := rebuilt.Accounts()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].AccountCode, got[i].AccountCode)
		assert.True(t, want[i].ClosingBalance.Equal(got[i].ClosingBalance),
			"account %s: %s vs %s", want[i].AccountCode, want[i].ClosingBalance, got[i].ClosingBalance)
		assert.Len(t, got[i].Entries, len(want[i].Entries))
	}
}

func TestAccount_ReturnsCopy(t *testing.T) {
	s := NewStore(chart.Default())
	require.NoError(t, s.Apply(entry("2025-01-001", date(2025, 1, 5), "sales", chart.CodeCash, chart.CodeSalesRevenue, "100")))

	cash, _ := s.Account(chart.CodeCash)
	cash.Entries[0].Narration = "tampered"
	cash.ClosingBalance = dec("0")

	again, _ := s.Account(chart.CodeCash)
	assert.Equal(t, "sales", again.Entries[0].Narration)
	assert.True(t, again.ClosingBalance.Equal(dec("100")))
}
