// Package classify maps a raw transaction's text, amount and category to a
// semantic transaction type and the tax type it attracts.
//
// Classification evaluates an ordered declarative rule table. The documented
// tie-break is: explicit category alias beats description keyword beats
// numeric heuristic; within each tier the first rule in table order wins. A
// guaranteed fallback (expense, no tax, low confidence) applies when nothing
// matches, so classification never fails. Identical inputs always produce
// identical outputs, which makes replay safe.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// Rule is one row of the classification table.
type Rule struct {
	Name       string                `yaml:"name"`
	Categories []string              `yaml:"categories,omitempty"` // exact category aliases, case-insensitive
	Keywords   []string              `yaml:"keywords,omitempty"`   // substring match on description, case-insensitive
	MinAmount  float64               `yaml:"min_amount,omitempty"` // numeric heuristic: amount at least this
	MultipleOf float64               `yaml:"multiple_of,omitempty"`
	Type       model.TransactionType `yaml:"type"`
	Tax        model.TaxType         `yaml:"tax"`
	Confidence float64               `yaml:"confidence"`
}

func (r Rule) matchesCategory(category string) bool {
	for _, c := range r.Categories {
		if strings.EqualFold(strings.TrimSpace(category), c) {
			return true
		}
	}
	return false
}

func (r Rule) matchesKeyword(description string) bool {
	desc := strings.ToLower(description)
	for _, k := range r.Keywords {
		if strings.Contains(desc, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func (r Rule) matchesAmount(amount decimal.Decimal) bool {
	if r.MinAmount <= 0 {
		return false
	}
	if amount.LessThan(decimal.NewFromFloat(r.MinAmount)) {
		return false
	}
	if r.MultipleOf > 0 {
		m := decimal.NewFromFloat(r.MultipleOf)
		if !amount.Mod(m).IsZero() {
			return false
		}
	}
	return true
}

func (r Rule) classification() model.Classification {
	return model.Classification{
		TransactionType: r.Type,
		TaxType:         r.Tax,
		Confidence:      decimal.NewFromFloat(r.Confidence),
		Rule:            r.Name,
	}
}

// Classifier holds an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier from an ordered rule table.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault creates a Classifier with the built-in rule table.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// Classify resolves a transaction type and tax type for a raw transaction.
// Pure and deterministic.
func (c *Classifier) Classify(description string, amount decimal.Decimal, category string) model.Classification {
	// Tier 1: category aliases.
	if category != "" {
		for _, r := range c.rules {
			if r.matchesCategory(category) {
				return r.classification()
			}
		}
	}

	// Tier 2: description keywords.
	for _, r := range c.rules {
		if r.matchesKeyword(description) {
			return r.classification()
		}
	}

	// Tier 3: numeric heuristics.
	for _, r := range c.rules {
		if r.matchesAmount(amount) {
			return r.classification()
		}
	}

	return model.Classification{
		TransactionType: model.TxnExpense,
		TaxType:         model.TaxNone,
		Confidence:      decimal.NewFromFloat(0.2),
	}
}
