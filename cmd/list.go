package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listAccount     string
	listDesignation string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees, optionally filtered by account and designation",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		records := snap.Filter(listAccount, listDesignation)
		if len(records) == 0 {
			fmt.Println("No records match the given filters.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%6d  %-24s %-12s office %.1fh  bay %.1fh  leave %.1f  ratio %.2f\n",
				rec.ID, rec.Designation, rec.AccountCode,
				rec.OfficeMinutes/60, rec.BayMinutes/60, rec.TotalLeaveDays, rec.ProductivityRatio)
		}
		fmt.Printf("%d records\n", len(records))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listAccount, "account", "", "filter by account code")
	listCmd.Flags().StringVar(&listDesignation, "designation", "", "filter by designation")
	rootCmd.AddCommand(listCmd)
}
