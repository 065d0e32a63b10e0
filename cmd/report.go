package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/attendance-cli/internal/recommend"
	"github.com/sells-group/attendance-cli/internal/risk"
)

var reportCmd = &cobra.Command{
	Use:   "report <employee-id>",
	Short: "Risk assessment and recommended actions for one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return eris.Errorf("employee id must be numeric, got %q", args[0])
		}

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		rec, ok := snap.Employee(id)
		if !ok {
			fmt.Printf("No employee found with id %d.\n", id)
			ids := snap.EmployeeIDs()
			if len(ids) > 10 {
				ids = ids[:10]
			}
			fmt.Printf("Known ids start with: %v\n", ids)
			return nil
		}

		stats := snap.CompanyStats()
		accountStats := snap.AccountStats(rec.AccountCode)

		assessment := risk.NewAnalyzer().Score(rec, stats)
		recs := recommend.NewEngine().Recommend(rec, assessment.Total, assessment.Reasons, stats, accountStats)

		fmt.Printf("Employee %d  %s / %s  account %s\n", rec.ID, rec.Designation, rec.RecruitmentType, rec.AccountCode)
		fmt.Printf("  Office %.1fh  Bay %.1fh  Break %.1fh  Leave %.1f days  Productivity %.2f\n",
			rec.OfficeMinutes/60, rec.BayMinutes/60, rec.BreakMinutes/60, rec.TotalLeaveDays, rec.ProductivityRatio)
		fmt.Printf("\nRisk score %.1f (%s risk)\n", assessment.Total, assessment.Level)
		for _, reason := range assessment.Reasons {
			fmt.Printf("  - %s\n", reason)
		}

		fmt.Println("\nRecommended actions:")
		for i, r := range recs {
			fmt.Printf("  %d. [%s] %s\n", i+1, r.Impact, r.Action)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
