package dataset

import (
	"github.com/sells-group/attendance-cli/internal/model"
)

// CompanyStats recomputes organization-wide aggregates from the snapshot.
// An empty snapshot yields zero values throughout.
func (s *Snapshot) CompanyStats() model.CompanyStats {
	stats := model.CompanyStats{TotalEmployees: len(s.records)}
	if len(s.records) == 0 {
		return stats
	}

	var officeMin, bayMin, breakMin, leaveDays float64
	var officeOK, bayOK, billed int
	for _, rec := range s.records {
		officeMin += rec.OfficeMinutes
		bayMin += rec.BayMinutes
		breakMin += rec.BreakMinutes
		leaveDays += rec.TotalLeaveDays
		if rec.OfficeCompliance {
			officeOK++
		}
		if rec.BayCompliance {
			bayOK++
		}
		if rec.Billed() {
			billed++
		}
	}

	n := float64(len(s.records))
	stats.AvgOfficeHours = officeMin / n / 60
	stats.AvgBayHours = bayMin / n / 60
	stats.AvgBreakHours = breakMin / n / 60
	stats.AvgLeaveDays = leaveDays / n
	stats.OfficeComplianceRate = float64(officeOK) / n * 100
	stats.BayComplianceRate = float64(bayOK) / n * 100
	stats.BilledPct = float64(billed) / n * 100
	stats.TotalAccounts = len(s.Accounts())
	stats.TotalDesignations = len(s.Designations())
	return stats
}

// AccountStats recomputes aggregates over one account code's records. An
// unknown or empty account yields a zero-valued result with the code echoed.
func (s *Snapshot) AccountStats(accountCode string) model.AccountStats {
	stats := model.AccountStats{AccountCode: accountCode}

	subset := s.Filter(accountCode, "")
	if len(subset) == 0 {
		return stats
	}

	var officeMin, bayMin, breakMin float64
	var officeOK, bayOK int
	for _, rec := range subset {
		officeMin += rec.OfficeMinutes
		bayMin += rec.BayMinutes
		breakMin += rec.BreakMinutes
		if rec.OfficeCompliance {
			officeOK++
		}
		if rec.BayCompliance {
			bayOK++
		}
	}

	n := float64(len(subset))
	stats.EmployeeCount = len(subset)
	stats.AvgOfficeHours = officeMin / n / 60
	stats.AvgBayHours = bayMin / n / 60
	stats.AvgBreakHours = breakMin / n / 60
	stats.OfficeComplianceRate = float64(officeOK) / n * 100
	stats.BayComplianceRate = float64(bayOK) / n * 100
	return stats
}
