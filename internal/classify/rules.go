package classify

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nairabooks/nairabooks/internal/model"
)

// DefaultRules returns the built-in classification table. Order matters:
// within a matching tier the first rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "sales",
			Categories: []string{"sales", "sale", "revenue"},
			Keywords:   []string{"sold goods", "sales", "invoice paid", "customer payment"},
			Type:       model.TxnIncome,
			Tax:        model.TaxVAT,
			Confidence: 0.9,
		},
		{
			Name:       "service-income",
			Categories: []string{"services", "service", "consulting"},
			Keywords:   []string{"service rendered", "consultancy income", "contract completed"},
			Type:       model.TxnIncome,
			Tax:        model.TaxVAT,
			Confidence: 0.85,
		},
		{
			Name:       "dividend-income",
			Categories: []string{"dividends", "dividend"},
			Keywords:   []string{"dividend"},
			Type:       model.TxnIncome,
			Tax:        model.TaxWHT,
			Confidence: 0.9,
		},
		{
			Name:       "asset-disposal",
			Categories: []string{"disposal", "asset_sale"},
			Keywords:   []string{"disposal", "disposed", "sold equipment", "sold vehicle", "sold property"},
			Type:       model.TxnAssetDisposal,
			Tax:        model.TaxCGT,
			Confidence: 0.85,
		},
		{
			Name:       "rent-payment",
			Categories: []string{"rent"},
			Keywords:   []string{"rent", "lease payment", "landlord"},
			Type:       model.TxnExpense,
			Tax:        model.TaxWHT,
			Confidence: 0.85,
		},
		{
			Name:       "professional-fees",
			Categories: []string{"professional_fees", "legal", "audit"},
			Keywords:   []string{"lawyer", "legal fee", "audit fee", "consultant", "accounting fee"},
			Type:       model.TxnExpense,
			Tax:        model.TaxWHT,
			Confidence: 0.8,
		},
		{
			Name:       "stamped-instrument",
			Categories: []string{"lease_agreement", "loan_agreement", "share_transfer"},
			Keywords:   []string{"stamp duty", "tenancy agreement", "deed of"},
			Type:       model.TxnExpense,
			Tax:        model.TaxStampDuty,
			Confidence: 0.8,
		},
		{
			Name:       "salaries",
			Categories: []string{"salaries", "payroll", "wages"},
			Keywords:   []string{"salary", "salaries", "payroll", "wages"},
			Type:       model.TxnExpense,
			Tax:        model.TaxNone,
			Confidence: 0.9,
		},
		{
			Name:       "inventory-purchase",
			Categories: []string{"inventory", "stock", "goods"},
			Keywords:   []string{"restock", "goods purchased", "stock purchase"},
			Type:       model.TxnExpense,
			Tax:        model.TaxVAT,
			Confidence: 0.8,
		},
		{
			Name:       "utilities",
			Categories: []string{"utilities", "utility"},
			Keywords:   []string{"electricity", "nepa", "phcn", "internet", "water bill", "diesel"},
			Type:       model.TxnExpense,
			Tax:        model.TaxVAT,
			Confidence: 0.8,
		},
		{
			Name:       "asset-purchase",
			Categories: []string{"equipment", "asset", "vehicle"},
			Keywords:   []string{"bought equipment", "purchased generator", "purchased laptop", "new machine"},
			Type:       model.TxnAssetPurchase,
			Tax:        model.TaxNone,
			Confidence: 0.8,
		},
		{
			Name:       "loan-repayment",
			Categories: []string{"loan", "loan_repayment"},
			Keywords:   []string{"loan repayment", "repaid loan", "loan installment"},
			Type:       model.TxnLiabilityPayment,
			Tax:        model.TaxNone,
			Confidence: 0.85,
		},
		{
			Name:       "capital-injection",
			Categories: []string{"capital", "owner_contribution"},
			Keywords:   []string{"capital injection", "owner investment", "owner contribution"},
			Type:       model.TxnEquityInjection,
			Tax:        model.TaxNone,
			Confidence: 0.85,
		},
		// Large round amounts with no textual signal usually turn out to be rent.
		{
			Name:       "large-round-rent",
			MinAmount:  100000,
			MultipleOf: 50000,
			Type:       model.TxnExpense,
			Tax:        model.TaxWHT,
			Confidence: 0.4,
		},
	}
}

// rulesFile is the YAML shape for user rule overrides.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules parses a YAML rule table. User rules are evaluated before the
// built-in defaults.
func LoadRules(r io.Reader) ([]Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return f.Rules, nil
}

// LoadRulesFile reads a YAML rule file from disk and prepends the rules to
// the defaults. A missing file yields the defaults alone.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return DefaultRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening rules %s: %w", path, err)
	}
	defer f.Close()

	user, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("loading rules %s: %w", path, err)
	}
	return append(user, DefaultRules()...), nil
}
