package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/attendance-cli/internal/model"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Aggregate statistics for every account",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		codes := snap.Accounts()

		var mu sync.Mutex
		stats := make([]model.AccountStats, 0, len(codes))

		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(8)
		for _, code := range codes {
			code := code
			g.Go(func() error {
				as := snap.AccountStats(code)
				mu.Lock()
				stats = append(stats, as)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		sort.Slice(stats, func(i, j int) bool { return stats[i].AccountCode < stats[j].AccountCode })

		for _, as := range stats {
			fmt.Printf("%-12s %4d employees  office %.2fh  bay %.2fh  compliance %.0f%%/%.0f%%\n",
				as.AccountCode, as.EmployeeCount, as.AvgOfficeHours, as.AvgBayHours,
				as.OfficeComplianceRate, as.BayComplianceRate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
