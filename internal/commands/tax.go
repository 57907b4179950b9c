package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/auditlog"
)

func newTaxCommand() *cobra.Command {
	taxCmd := &cobra.Command{
		Use:   "tax",
		Short: "Tax summaries and filing schedule",
	}
	taxCmd.AddCommand(newTaxSummaryCommand(), newTaxScheduleCommand(), newTaxRemitCommand())
	return taxCmd
}

func newTaxSummaryCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print accumulated tax liabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			s := p.Engine.TaxSummary()
			fmt.Printf("Output VAT         %14s\n", s.TotalVAT.StringFixed(2))
			fmt.Printf("Input VAT credit   %14s\n", s.InputVATCredit.StringFixed(2))
			fmt.Printf("Net VAT payable    %14s\n", s.NetVATPayable.StringFixed(2))
			fmt.Printf("WHT withheld       %14s\n", s.TotalWHT.StringFixed(2))
			fmt.Printf("CGT                %14s\n", s.TotalCGT.StringFixed(2))
			fmt.Printf("Stamp duty         %14s\n", s.TotalStampDuty.StringFixed(2))
			fmt.Printf("Turnover           %14s\n", s.Turnover.StringFixed(2))
			fmt.Printf("Taxable profit     %14s\n", s.TaxableProfit.StringFixed(2))
			fmt.Printf("Income tax         %14s\n", s.IncomeTax.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newTaxScheduleCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the filing schedule with due dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			for _, entry := range p.Engine.Schedule() {
				fmt.Printf("%-22s %-8s due %s %14s  %s\n",
					entry.ID, entry.TaxType, entry.DueDate.Format("2006-01-02"),
					entry.TaxAmount.StringFixed(2), entry.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newTaxRemitCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "remit <schedule-id>",
		Short: "Mark a filing-schedule entry as remitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Engine.MarkRemitted(args[0]); err != nil {
				return err
			}
			p.audit(auditlog.ActionMarkRemitted, "Marked "+args[0]+" as remitted", "")
			fmt.Printf("Marked %s as remitted\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}
