package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dougbrierley/F2F/document"
	"github.com/dougbrierley/F2F/grid"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.xlsx>",
	Short: "Extract spreadsheet orders to JSON",
	Long: `Read the growers' ordering spreadsheet and write the extracted orders
as a JSON batch file, so they can be reviewed or edited before the documents
are generated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if deliveryDate == "" {
			return fmt.Errorf("--date is required")
		}
		date, err := time.Parse("2006-01-02", deliveryDate)
		if err != nil {
			return fmt.Errorf("bad --date %q: want YYYY-MM-DD", deliveryDate)
		}

		lines, err := extractLines(a, args[0])
		if err != nil {
			return err
		}
		orders := grid.Orders(lines, date)

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(outDir, "orders.json")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := document.WriteOrders(f, orders); err != nil {
			return err
		}
		a.log.Info("orders extracted",
			zap.Int("buyers", len(orders)),
			zap.Int("lines", len(lines)),
			zap.String("file", path))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&deliveryDate, "date", "", "delivery date (YYYY-MM-DD)")
	rootCmd.AddCommand(extractCmd)
}
