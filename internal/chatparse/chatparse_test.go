package chatparse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairabooks/nairabooks/internal/model"
)

var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		amount decimal.Decimal
		txType model.TransactionType
	}{
		{"naira symbol", "sold goods to Mama Nkechi for ₦50,000", dec("50000"), model.TxnIncome},
		{"k suffix", "paid 20k for rent", dec("20000"), model.TxnExpense},
		{"m suffix", "received 1.5m from contract", dec("1500000"), model.TxnIncome},
		{"ngn prefix", "bought stock NGN 120,500.50", dec("120500.50"), model.TxnExpense},
		{"n prefix", "customer paid N35000", dec("35000"), model.TxnIncome},
		{"plain number defaults to expense", "fuel 4000", dec("4000"), model.TxnExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := Parse(tt.text, testNow)
			require.NoError(t, err)
			assert.True(t, txn.Amount.Equal(tt.amount),
				"want %s got %s", tt.amount, txn.Amount)
			assert.Equal(t, tt.txType, txn.Type)
			assert.Equal(t, tt.text, txn.Description)
		})
	}
}

func TestParse_NoAmount(t *testing.T) {
	_, err := Parse("sold some goods today", testNow)
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestParse_Dates(t *testing.T) {
	txn, err := Parse("paid 5k transport", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), txn.Date)

	txn, err = Parse("paid 5k transport yesterday", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), txn.Date)
}

func TestParse_NoID(t *testing.T) {
	txn, err := Parse("sold airtime 2k", testNow)
	require.NoError(t, err)
	assert.Empty(t, txn.ID, "caller assigns the id")
}
