// Package chatparse extracts transactions from informal chat-style messages
// like "sold goods to Mama Nkechi for ₦50,000" or "paid 20k rent yesterday".
// It is deliberately forgiving: anything it cannot determine is left zero for
// the caller to fill in or reject.
package chatparse

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairabooks/nairabooks/internal/model"
)

// ErrNoAmount is returned when no money amount can be found in the message.
var ErrNoAmount = errors.New("no amount found in message")

// amountPattern matches ₦50,000 / N50000 / NGN 1,200.50 / 20k / plain 50000.
var amountPattern = regexp.MustCompile(`(?i)(?:₦|ngn\s*|n)?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)(k|m)?\b`)

var incomeWords = []string{
	"sold", "sale", "received", "earned", "collected", "customer paid",
	"payment from", "income",
}

// Parse extracts a RawTransaction from a chat message. The returned
// transaction has no ID; callers assign one before recording. Date defaults
// to now unless the message says "yesterday".
func Parse(text string, now time.Time) (model.RawTransaction, error) {
	amount, ok := findAmount(text)
	if !ok {
		return model.RawTransaction{}, ErrNoAmount
	}

	txn := model.RawTransaction{
		Date:        parseDate(text, now),
		Description: strings.TrimSpace(text),
		Amount:      amount,
		Type:        direction(text),
	}
	return txn, nil
}

func findAmount(text string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	switch strings.ToLower(m[2]) {
	case "k":
		amount = amount.Mul(decimal.NewFromInt(1000))
	case "m":
		amount = amount.Mul(decimal.NewFromInt(1000000))
	}
	if !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// direction guesses income vs expense from verbs in the message. Income
// phrases are checked first so "customer paid me" is not misread as spending;
// a message with no recognized verb defaults to expense.
func direction(text string) model.TransactionType {
	lower := strings.ToLower(text)
	for _, w := range incomeWords {
		if strings.Contains(lower, w) {
			return model.TxnIncome
		}
	}
	return model.TxnExpense
}

func parseDate(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	day := now
	if strings.Contains(lower, "yesterday") {
		day = now.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
