package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/auditlog"
	"github.com/nairabooks/nairabooks/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand(), newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			st := p.Engine.State()
			for _, acct := range append(st.ChartAccounts, st.CustomAccounts...) {
				marker := " "
				if acct.IsCustom {
					marker = "*"
				}
				fmt.Printf("%s %-6s %-28s %s\n", marker, acct.Code, acct.Name, acct.Class)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var (
		dir      string
		code     string
		name     string
		class    string
		subClass string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom account",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.Close()

			acct, err := p.Engine.AddCustomAccount(model.ChartAccount{
				Code:     code,
				Name:     name,
				Class:    model.AccountClass(class),
				SubClass: subClass,
			})
			if err != nil {
				return err
			}

			p.audit(auditlog.ActionAddAccount, "Added account "+acct.Code+" "+acct.Name, "")
			fmt.Printf("Added %s %s (%s, normal %s)\n", acct.Code, acct.Name, acct.Class, acct.NormalBalance)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&code, "code", "", "account code (required)")
	_ = cmd.MarkFlagRequired("code")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&class, "class", "", "asset, liability, equity, revenue or expense (required)")
	_ = cmd.MarkFlagRequired("class")
	cmd.Flags().StringVar(&subClass, "sub-class", "", "optional sub-class")

	return cmd
}
