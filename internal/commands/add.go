package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/auditlog"
	"github.com/nairabooks/nairabooks/internal/chatparse"
	"github.com/nairabooks/nairabooks/internal/engine"
	"github.com/nairabooks/nairabooks/internal/model"
)

func newAddCommand() *cobra.Command {
	var (
		dir         string
		amountStr   string
		description string
		category    string
		dateStr     string
		txnType     string
		costBasis   string
		nonResident bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amountStr, err)
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse(time.DateOnly, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
			}

			txn := model.RawTransaction{
				Date:        date,
				Description: description,
				Category:    category,
				Amount:      amount,
				Type:        model.TransactionType(txnType),
				NonResident: nonResident,
			}
			if costBasis != "" {
				txn.CostBasis, err = decimal.NewFromString(costBasis)
				if err != nil {
					return fmt.Errorf("parsing --cost-basis %q: %w", costBasis, err)
				}
			}

			return runAdd(dir, txn)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount in naira (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "what the transaction was for (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&category, "category", "", "category hint for classification")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&txnType, "type", "", "override: income, expense, asset_purchase, asset_disposal, liability_payment, equity_injection")
	cmd.Flags().StringVar(&costBasis, "cost-basis", "", "acquisition cost for asset disposals")
	cmd.Flags().BoolVar(&nonResident, "non-resident", false, "counterparty is non-resident")

	return cmd
}

func newChatCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Record a transaction from a chat-style message",
		Long:  `Parses informal messages like "sold goods to Mama Nkechi for ₦50,000" or "paid 20k rent yesterday" and records the transaction.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := chatparse.Parse(strings.Join(args, " "), time.Now())
			if err != nil {
				return err
			}
			return runAdd(dir, txn)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runAdd(dir string, txn model.RawTransaction) error {
	p, err := openProject(dir)
	if err != nil {
		return err
	}
	defer p.Close()

	result, err := p.Engine.Record(txn)
	if err != nil {
		return err
	}

	p.audit(auditlog.ActionRecord,
		fmt.Sprintf("Recorded %s of %s", result.Classification.TransactionType, txn.Amount.StringFixed(2)),
		result.Entry.ID)

	printResult(result)
	return nil
}

func printResult(r engine.RecordResult) {
	fmt.Printf("Recorded %s: %s (%s, rule %q)\n",
		r.Entry.ID, r.Entry.Narration, r.Classification.TransactionType, r.Classification.Rule)
	for _, line := range r.Entry.Lines {
		side, amount := "Dr", line.Debit
		if line.Credit.IsPositive() {
			side, amount = "Cr", line.Credit
		}
		fmt.Printf("  %s %-24s %s\n", side, line.AccountName, amount.StringFixed(2))
	}
	if r.Tax.TotalTax.IsPositive() {
		for _, item := range r.Tax.TaxesApplied {
			fmt.Printf("  tax: %s %s\n", item.TaxType, item.TaxAmount.StringFixed(2))
		}
	}
}
