package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsAccount string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Company-wide or per-account aggregate statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		if statsAccount != "" {
			as := snap.AccountStats(statsAccount)
			if as.EmployeeCount == 0 {
				fmt.Printf("No records for account %s.\n", statsAccount)
				return nil
			}
			fmt.Printf("Account %s: %d employees\n", as.AccountCode, as.EmployeeCount)
			fmt.Printf("  Avg office %.2fh  bay %.2fh  break %.2fh\n", as.AvgOfficeHours, as.AvgBayHours, as.AvgBreakHours)
			fmt.Printf("  Compliance: office %.1f%%  bay %.1f%%\n", as.OfficeComplianceRate, as.BayComplianceRate)
			return nil
		}

		cs := snap.CompanyStats()
		fmt.Printf("Employees: %d across %d accounts, %d designations\n", cs.TotalEmployees, cs.TotalAccounts, cs.TotalDesignations)
		fmt.Printf("  Avg office %.2fh  bay %.2fh  break %.2fh  leave %.1f days\n", cs.AvgOfficeHours, cs.AvgBayHours, cs.AvgBreakHours, cs.AvgLeaveDays)
		fmt.Printf("  Compliance: office %.1f%%  bay %.1f%%\n", cs.OfficeComplianceRate, cs.BayComplianceRate)
		fmt.Printf("  Billed: %.1f%%\n", cs.BilledPct)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsAccount, "account", "", "limit stats to one account code")
	rootCmd.AddCommand(statsCmd)
}
