package main

import (
	"github.com/spf13/cobra"

	"github.com/dougbrierley/F2F/document"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices <file.json>",
	Short: "Generate VAT invoices",
	Long:  `Generate one invoice PDF per record from an {"invoices": [...]} batch file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		invoices, err := document.LoadInvoices(args[0])
		if err != nil {
			return err
		}
		return a.report(a.gen.Invoices(ctx, invoices))
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
}
