package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/document"
	"github.com/dougbrierley/F2F/grid"
)

var deliveryDate string

var ordersCmd = &cobra.Command{
	Use:   "orders <file>",
	Short: "Generate buyer order documents",
	Long: `Generate one order PDF per buyer. The input is either the growers'
ordering spreadsheet (.xlsx, needs --date) or a JSON batch file written by
'f2f extract'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		orders, err := loadOrdersInput(a, args[0])
		if err != nil {
			return err
		}
		return a.report(a.gen.Orders(ctx, orders))
	},
}

func init() {
	ordersCmd.Flags().StringVar(&deliveryDate, "date", "", "delivery date (YYYY-MM-DD), required for spreadsheet input")
	rootCmd.AddCommand(ordersCmd)
}

// loadOrdersInput accepts either input shape so the same command covers the
// weekly spreadsheet run and re-runs from extracted JSON.
func loadOrdersInput(a *app, path string) ([]f2f.Order, error) {
	if filepath.Ext(path) != ".xlsx" {
		return document.LoadOrders(path)
	}
	if deliveryDate == "" {
		return nil, fmt.Errorf("--date is required for spreadsheet input")
	}
	date, err := time.Parse("2006-01-02", deliveryDate)
	if err != nil {
		return nil, fmt.Errorf("bad --date %q: want YYYY-MM-DD", deliveryDate)
	}
	lines, err := extractLines(a, path)
	if err != nil {
		return nil, err
	}
	return grid.Orders(lines, date), nil
}

func extractLines(a *app, path string) ([]f2f.Line, error) {
	g, err := grid.FromWorkbook(path, a.cfg.Sheet)
	if err != nil {
		return nil, err
	}
	headers, err := g.Headers()
	if err != nil {
		return nil, err
	}
	buyers, _, err := grid.Buyers(headers)
	if err != nil {
		return nil, err
	}
	return grid.Extract(g, buyers)
}
