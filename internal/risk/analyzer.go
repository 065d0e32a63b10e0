// Package risk scores employee attendance patterns against fixed compliance
// thresholds and company benchmarks.
package risk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/attendance-cli/internal/model"
)

// Sub-score weights. These must sum to 1.0 so the weighted total stays in
// [0, 100].
const (
	WeightOfficeHours   = 0.30
	WeightBayHours      = 0.25
	WeightLeavePattern  = 0.20
	WeightBreakBehavior = 0.15
	WeightExceptions    = 0.10
)

// Level maps a 0-100 risk score to its tier. Lower scores mean higher risk.
// This is the single authoritative tiering; the recommendation engine uses
// it too.
func Level(score float64) model.RiskLevel {
	switch {
	case score >= 80:
		return model.RiskLow
	case score >= 60:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// Analyzer computes weighted risk assessments. It is stateless; one instance
// can serve any number of concurrent calls.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Score produces the full assessment for one employee against company-wide
// benchmarks. Pure: no history, no side effects beyond a debug log line.
func (a *Analyzer) Score(rec model.EmployeeRecord, stats model.CompanyStats) model.RiskAssessment {
	scores := model.SubScores{
		OfficeHours:   scoreOfficeHours(rec.OfficeMinutes),
		BayHours:      scoreBayHours(rec.BayMinutes),
		LeavePattern:  scoreLeavePattern(rec.TotalLeaveDays, stats.AvgLeaveDays),
		BreakBehavior: scoreBreakBehavior(rec.BreakMinutes, stats.AvgBreakHours*60),
		Exceptions:    scoreExceptions(rec.HasExceptions, rec.OnlineCheckins),
	}

	total := scores.OfficeHours*WeightOfficeHours +
		scores.BayHours*WeightBayHours +
		scores.LeavePattern*WeightLeavePattern +
		scores.BreakBehavior*WeightBreakBehavior +
		scores.Exceptions*WeightExceptions

	assessment := model.RiskAssessment{
		EmployeeID: rec.ID,
		Scores:     scores,
		Total:      total,
		Level:      Level(total),
		Reasons:    a.Reasons(rec, scores, stats),
	}

	zap.L().Debug("risk: employee scored",
		zap.Int("id", rec.ID),
		zap.Float64("total", total),
		zap.String("level", string(assessment.Level)),
	)
	return assessment
}

// scoreOfficeHours steps on the 540-minute requirement. The bands are
// deliberately flat so neighboring employees land in distinguishable tiers.
func scoreOfficeHours(officeMinutes float64) float64 {
	const required = model.RequiredOfficeMinutes
	switch {
	case officeMinutes >= required:
		return 100
	case officeMinutes >= required*0.9:
		return 70
	case officeMinutes >= required*0.8:
		return 40
	default:
		return 0
	}
}

func scoreBayHours(bayMinutes float64) float64 {
	const required = model.RequiredBayMinutes
	switch {
	case bayMinutes >= required:
		return 100
	case bayMinutes >= required*0.95:
		return 75
	case bayMinutes >= required*0.9:
		return 50
	default:
		return 0
	}
}

func scoreLeavePattern(leaveDays, avgLeaveDays float64) float64 {
	switch {
	case leaveDays <= avgLeaveDays*0.5:
		return 100
	case leaveDays <= avgLeaveDays:
		return 80
	case leaveDays <= avgLeaveDays*1.5:
		return 50
	default:
		return 20
	}
}

func scoreBreakBehavior(breakMinutes, avgBreakMinutes float64) float64 {
	switch {
	case breakMinutes <= avgBreakMinutes:
		return 100
	case breakMinutes <= avgBreakMinutes*1.2:
		return 80
	case breakMinutes <= avgBreakMinutes*1.5:
		return 60
	default:
		return 30
	}
}

func scoreExceptions(hasExceptions bool, onlineCheckins int) float64 {
	score := 100.0
	if hasExceptions {
		score -= 20
	}
	if onlineCheckins > 5 {
		score -= 15
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Reasons explains each sub-score that fell below its "good" threshold, in
// fixed order: office, bay, leave, break, exceptions. A clean record gets
// the single canned good-pattern line.
func (a *Analyzer) Reasons(rec model.EmployeeRecord, scores model.SubScores, stats model.CompanyStats) []string {
	var reasons []string

	if scores.OfficeHours < 70 {
		reasons = append(reasons,
			fmt.Sprintf("Office hours (%.1fh) below required 9 hours", rec.OfficeMinutes/60))
	}
	if scores.BayHours < 75 {
		reasons = append(reasons,
			fmt.Sprintf("Bay hours (%.1fh) below mandatory 7 hours", rec.BayMinutes/60))
	}
	if scores.LeavePattern < 80 {
		reasons = append(reasons,
			fmt.Sprintf("Leave days (%.1f) above company average (%.1f)", rec.TotalLeaveDays, stats.AvgLeaveDays))
	}
	if scores.BreakBehavior < 80 {
		reasons = append(reasons,
			fmt.Sprintf("Extended break time (%.1fh) impacting productivity", rec.BreakMinutes/60))
	}
	if scores.Exceptions < 100 {
		if rec.HasExceptions {
			reasons = append(reasons,
				fmt.Sprintf("Has attendance exceptions: %s", rec.ExceptionsFlag))
		}
		if rec.OnlineCheckins > 5 {
			reasons = append(reasons,
				fmt.Sprintf("High online check-ins (%d) may indicate attendance issues", rec.OnlineCheckins))
		}
	}

	if len(reasons) == 0 {
		return []string{"Good attendance pattern - meeting all requirements"}
	}
	return reasons
}
