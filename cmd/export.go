package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

var (
	exportOut         string
	exportAccount     string
	exportDesignation string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a filtered summary workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		records := snap.Filter(exportAccount, exportDesignation)

		f := xlsx.NewFile()
		sheet, err := f.AddSheet("Summary")
		if err != nil {
			return eris.Wrap(err, "export: add sheet")
		}

		header := sheet.AddRow()
		for _, name := range []string{
			"ID", "Designation", "Account", "Recruitment",
			"Office hrs", "Bay hrs", "Break hrs",
			"Leave days", "Productivity", "Billing",
		} {
			header.AddCell().Value = name
		}

		for _, rec := range records {
			row := sheet.AddRow()
			row.AddCell().SetInt(rec.ID)
			row.AddCell().Value = rec.Designation
			row.AddCell().Value = rec.AccountCode
			row.AddCell().Value = rec.RecruitmentType
			row.AddCell().SetFloat(rec.OfficeMinutes / 60)
			row.AddCell().SetFloat(rec.BayMinutes / 60)
			row.AddCell().SetFloat(rec.BreakMinutes / 60)
			row.AddCell().SetFloat(rec.TotalLeaveDays)
			row.AddCell().SetFloat(rec.ProductivityRatio)
			row.AddCell().Value = rec.BillingStatus
		}

		if err := f.Save(exportOut); err != nil {
			return eris.Wrap(err, "export: save workbook")
		}

		zap.L().Info("export: summary written",
			zap.String("path", exportOut),
			zap.Int("records", len(records)),
		)
		fmt.Printf("Wrote %d records to %s\n", len(records), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "attendance-summary.xlsx", "output workbook path")
	exportCmd.Flags().StringVar(&exportAccount, "account", "", "filter by account code")
	exportCmd.Flags().StringVar(&exportDesignation, "designation", "", "filter by designation")
	rootCmd.AddCommand(exportCmd)
}
