// Package recommend turns a risk assessment into a short, prioritized list
// of next-best actions for resource managers.
package recommend

import (
	"sort"
	"strings"

	"github.com/sells-group/attendance-cli/internal/model"
	"github.com/sells-group/attendance-cli/internal/risk"
)

// MaxActions caps how many recommendations one employee gets.
const MaxActions = 3

var actionCatalog = map[model.RiskLevel][]string{
	model.RiskHigh: {
		"Schedule immediate one-on-one performance review",
		"Implement attendance monitoring with weekly check-ins",
		"Consider flexible work arrangements or support programs",
		"Evaluate for project reassignment or role adjustment",
		"Provide productivity coaching and time management training",
	},
	model.RiskMedium: {
		"Arrange informal coaching session on time management",
		"Monitor attendance trends for next 30 days",
		"Discuss workload balance and potential adjustments",
		"Recommend break optimization training",
		"Consider cross-training for better engagement",
	},
	model.RiskLow: {
		"Recognize good attendance and performance",
		"Consider for leadership or mentoring opportunities",
		"Evaluate for project lead or increased responsibilities",
		"Continue current engagement strategies",
		"Use as peer mentor for attendance improvement",
	},
}

// priorityKeywords ranks candidate actions; the first keyword found in an
// action decides its priority. Order matters, highest first.
var priorityKeywords = []struct {
	keyword  string
	priority int
}{
	{"Urgent", 10},
	{"Critical", 9},
	{"Priority", 8},
	{"Immediate", 7},
	{"Schedule", 6},
	{"Monitor", 5},
	{"Consider", 4},
	{"Provide", 3},
	{"Recommend", 2},
	{"Continue", 1},
}

var highImpactKeywords = []string{"urgent", "critical", "immediate", "priority", "reassignment"}
var mediumImpactKeywords = []string{"schedule", "monitor", "training", "coaching", "support"}

// Engine generates next-best-action recommendations. Stateless and safe for
// concurrent use.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Recommend builds up to MaxActions prioritized, deduplicated actions for
// one employee. accountStats may be zero-valued when the employee's account
// has no aggregate view.
func (e *Engine) Recommend(rec model.EmployeeRecord, riskScore float64, reasons []string, stats model.CompanyStats, accountStats model.AccountStats) []model.Recommendation {
	level := risk.Level(riskScore)

	candidates := e.primaryActions(rec, level)
	candidates = append(candidates, e.issueActions(rec, stats)...)
	candidates = append(candidates, e.developmentActions(rec)...)

	actions := prioritize(dedupe(candidates))
	if len(actions) > MaxActions {
		actions = actions[:MaxActions]
	}

	out := make([]model.Recommendation, len(actions))
	for i, action := range actions {
		out[i] = model.Recommendation{Action: action, Impact: Impact(action)}
	}
	return out
}

// primaryActions is the tier's canned catalog plus sharper extras when the
// employee's hours sit below tier-specific cutoffs.
func (e *Engine) primaryActions(rec model.EmployeeRecord, level model.RiskLevel) []string {
	actions := append([]string(nil), actionCatalog[level]...)

	officeHrs := rec.OfficeMinutes / 60
	bayHrs := rec.BayMinutes / 60

	switch level {
	case model.RiskHigh:
		if officeHrs < 8 {
			actions = append(actions, "Urgent: Address consistent late arrivals/early departures")
		}
		if bayHrs < 6 {
			actions = append(actions, "Critical: Investigate low productive hours and engagement")
		}
	case model.RiskMedium:
		if officeHrs < 9 {
			actions = append(actions, "Monitor and counsel on office hour expectations")
		}
		if bayHrs < 7 {
			actions = append(actions, "Provide productivity enhancement support")
		}
	}

	return actions
}

// issueActions targets specific flagged problems regardless of tier.
func (e *Engine) issueActions(rec model.EmployeeRecord, stats model.CompanyStats) []string {
	var actions []string

	if rec.TotalLeaveDays > stats.AvgLeaveDays {
		actions = append(actions, "Review leave pattern - consider wellness program or workload adjustment")
	}
	if rec.BreakMinutes/60 > 1.5 {
		actions = append(actions, "Implement break scheduling and productivity awareness training")
	}
	if rec.HasExceptions {
		actions = append(actions, "Address attendance exceptions - review underlying causes")
	}
	if strings.EqualFold(strings.TrimSpace(rec.BillingStatus), "Unbilled") {
		actions = append(actions, "Move to billable project or improve utilization")
	}

	return actions
}

// developmentActions covers growth paths: junior promotion tracks, campus
// hire mentoring, high-performer recognition.
func (e *Engine) developmentActions(rec model.EmployeeRecord) []string {
	var actions []string

	if strings.Contains(rec.Designation, "AL") || strings.Contains(rec.Designation, "Associate") {
		if rec.ProductivityRatio > 0.8 {
			actions = append(actions, "Consider for promotion to next level - showing good productivity")
		} else {
			actions = append(actions, "Provide skill development training for career advancement")
		}
	}

	if strings.Contains(rec.RecruitmentType, "Campus") {
		actions = append(actions, "Enroll in campus hire development program and mentoring")
	}

	if rec.ProductivityRatio > 0.9 {
		actions = append(actions, "Recognize as high performer - consider for special projects")
	}

	return actions
}

// dedupe drops exact-string duplicates, keeping first occurrences in order.
func dedupe(actions []string) []string {
	seen := make(map[string]struct{}, len(actions))
	out := make([]string, 0, len(actions))
	for _, action := range actions {
		if _, ok := seen[action]; ok {
			continue
		}
		seen[action] = struct{}{}
		out = append(out, action)
	}
	return out
}

// prioritize stable-sorts actions by descending keyword priority, so equal
// priorities keep their generation order.
func prioritize(actions []string) []string {
	sort.SliceStable(actions, func(i, j int) bool {
		return keywordPriority(actions[i]) > keywordPriority(actions[j])
	})
	return actions
}

func keywordPriority(action string) int {
	for _, pk := range priorityKeywords {
		if strings.Contains(action, pk.keyword) {
			return pk.priority
		}
	}
	return 0
}

// Impact classifies an action's likely effect by keyword, case-insensitive.
func Impact(action string) model.Impact {
	lower := strings.ToLower(action)
	for _, kw := range highImpactKeywords {
		if strings.Contains(lower, kw) {
			return model.ImpactHigh
		}
	}
	for _, kw := range mediumImpactKeywords {
		if strings.Contains(lower, kw) {
			return model.ImpactMedium
		}
	}
	return model.ImpactLow
}
