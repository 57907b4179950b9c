package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	reportCmd.AddCommand(newTrialBalanceCommand(), newStatementsCommand())
	return reportCmd
}

func newTrialBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			tb := p.Engine.TrialBalance()
			fmt.Printf("%-6s %-26s %14s %14s\n", "Code", "Account", "Debit", "Credit")
			for _, row := range tb.Accounts {
				fmt.Printf("%-6s %-26s %14s %14s\n",
					row.AccountCode, row.AccountName,
					row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Printf("%-33s %14s %14s\n", "Totals",
				tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2))
			if tb.Imbalanced {
				fmt.Println("WARNING: books are out of balance")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newStatementsCommand() *cobra.Command {
	var dir string
	var year int

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Print the income statement and balance sheet for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			if year == 0 {
				year = time.Now().Year()
			}
			draft := p.Engine.Statements(year)

			fmt.Printf("Income Statement %d\n", draft.Income.Year)
			fmt.Printf("  Revenue            %14s\n", draft.Income.Revenue.StringFixed(2))
			fmt.Printf("  Cost of sales      %14s\n", draft.Income.CostOfSales.StringFixed(2))
			fmt.Printf("  Gross profit       %14s\n", draft.Income.GrossProfit.StringFixed(2))
			fmt.Printf("  Operating expenses %14s\n", draft.Income.OperatingExpenses.StringFixed(2))
			fmt.Printf("  Net income         %14s\n", draft.Income.NetIncome.StringFixed(2))
			fmt.Println()
			fmt.Printf("Balance Sheet as at end of %d\n", draft.BalanceSheet.Year)
			fmt.Printf("  Assets             %14s\n", draft.BalanceSheet.Assets.StringFixed(2))
			fmt.Printf("  Liabilities        %14s\n", draft.BalanceSheet.Liabilities.StringFixed(2))
			fmt.Printf("  Equity             %14s\n", draft.BalanceSheet.Equity.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().IntVar(&year, "year", 0, "reporting year (default current year)")
	return cmd
}
