package main

import (
	"github.com/spf13/cobra"

	"github.com/dougbrierley/F2F/document"
)

var picksCmd = &cobra.Command{
	Use:   "picks <file.json>",
	Short: "Generate seller pick lists",
	Long:  `Generate one pick list PDF per seller from a {"picks": [...]} batch file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		picks, err := document.LoadPicks(args[0])
		if err != nil {
			return err
		}
		return a.report(a.gen.Picks(ctx, picks))
	},
}

func init() {
	rootCmd.AddCommand(picksCmd)
}
