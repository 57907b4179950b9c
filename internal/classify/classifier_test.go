package classify

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairabooks/nairabooks/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestClassify_CategoryAlias(t *testing.T) {
	c := NewDefault()

	got := c.Classify("weekly takings", dec("100000"), "sales")
	assert.Equal(t, model.TxnIncome, got.TransactionType)
	assert.Equal(t, model.TaxVAT, got.TaxType)
	assert.Equal(t, "sales", got.Rule)
}

func TestClassify_CategoryBeatsKeyword(t *testing.T) {
	c := NewDefault()

	// Description says rent, but the explicit category alias wins.
	got := c.Classify("rent collected from tenant", dec("200000"), "sales")
	assert.Equal(t, model.TxnIncome, got.TransactionType)
	assert.Equal(t, "sales", got.Rule)
}

func TestClassify_DescriptionKeyword(t *testing.T) {
	c := NewDefault()

	got := c.Classify("Office RENT for Q1 to landlord", dec("375000"), "")
	assert.Equal(t, model.TxnExpense, got.TransactionType)
	assert.Equal(t, model.TaxWHT, got.TaxType)
	assert.Equal(t, "rent-payment", got.Rule)
}

func TestClassify_AmountHeuristic(t *testing.T) {
	c := NewDefault()

	got := c.Classify("transfer", dec("500000"), "")
	assert.Equal(t, model.TxnExpense, got.TransactionType)
	assert.Equal(t, model.TaxWHT, got.TaxType)
	assert.Equal(t, "large-round-rent", got.Rule)
	assert.True(t, got.Confidence.LessThan(dec("0.5")), "heuristic matches are low confidence")
}

func TestClassify_Fallback(t *testing.T) {
	c := NewDefault()

	got := c.Classify("misc", dec("1234.56"), "")
	assert.Equal(t, model.TxnExpense, got.TransactionType)
	assert.Equal(t, model.TaxNone, got.TaxType)
	assert.Empty(t, got.Rule)
	assert.True(t, got.Confidence.LessThanOrEqual(dec("0.2")))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewDefault()
	first := c.Classify("paid consultant retainer", dec("150000"), "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify("paid consultant retainer", dec("150000"), ""))
	}
}

func TestClassify_Table(t *testing.T) {
	c := NewDefault()
	tests := []struct {
		desc     string
		amount   string
		category string
		wantType model.TransactionType
		wantTax  model.TaxType
	}{
		{"sold goods to Mama Nkechi", "45000", "", model.TxnIncome, model.TaxVAT},
		{"dividend from Zenith shares", "80000", "", model.TxnIncome, model.TaxWHT},
		{"sold equipment (old grinder)", "250000", "", model.TxnAssetDisposal, model.TaxCGT},
		{"stamp duty on tenancy agreement", "5000", "", model.TxnExpense, model.TaxStampDuty},
		{"March payroll", "820000", "", model.TxnExpense, model.TaxNone},
		{"PHCN electricity bill", "36000", "", model.TxnExpense, model.TaxVAT},
		{"purchased generator for shop", "750000", "", model.TxnAssetPurchase, model.TaxNone},
		{"loan installment to Access Bank", "95000", "", model.TxnLiabilityPayment, model.TaxNone},
		{"owner investment", "1000000", "", model.TxnEquityInjection, model.TaxNone},
	}
	for _, tt := range tests {
		got := c.Classify(tt.desc, dec(tt.amount), tt.category)
		assert.Equal(t, tt.wantType, got.TransactionType, tt.desc)
		assert.Equal(t, tt.wantTax, got.TaxType, tt.desc)
	}
}

func TestLoadRules_UserRulesEvaluatedFirst(t *testing.T) {
	yamlRules := `
rules:
  - name: okada-logistics
    categories: [logistics]
    keywords: [okada, dispatch rider]
    type: expense
    tax: none
    confidence: 0.95
`
	user, err := LoadRules(strings.NewReader(yamlRules))
	require.NoError(t, err)
	require.Len(t, user, 1)

	c := New(append(user, DefaultRules()...))
	got := c.Classify("dispatch rider to Yaba", dec("3000"), "")
	assert.Equal(t, "okada-logistics", got.Rule)
}
