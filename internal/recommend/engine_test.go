package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/attendance-cli/internal/model"
)

func companyStats() model.CompanyStats {
	return model.CompanyStats{AvgLeaveDays: 10, AvgBreakHours: 1}
}

func recommendFor(t *testing.T, rec model.EmployeeRecord, riskScore float64) []model.Recommendation {
	t.Helper()
	return NewEngine().Recommend(rec, riskScore, nil, companyStats(), model.AccountStats{})
}

func TestRecommend_NeverMoreThanThreeOrDuplicated(t *testing.T) {
	rec := model.EmployeeRecord{
		OfficeMinutes:   300,
		BayMinutes:      200,
		BreakMinutes:    120,
		TotalLeaveDays:  20,
		HasExceptions:   true,
		BillingStatus:   "Unbilled",
		Designation:     "Associate Engineer",
		RecruitmentType: "Campus",
	}
	got := recommendFor(t, rec, 20)

	require.LessOrEqual(t, len(got), MaxActions)
	seen := make(map[string]struct{})
	for _, r := range got {
		_, dup := seen[r.Action]
		assert.False(t, dup, "duplicate action %q", r.Action)
		seen[r.Action] = struct{}{}
	}
}

func TestRecommend_HighRiskExtrasLeadThePriorityOrder(t *testing.T) {
	rec := model.EmployeeRecord{
		OfficeMinutes: 7 * 60, // < 8h
		BayMinutes:    5 * 60, // < 6h
	}
	got := recommendFor(t, rec, 30)

	require.Len(t, got, 3)
	assert.Equal(t, "Urgent: Address consistent late arrivals/early departures", got[0].Action)
	assert.Equal(t, "Critical: Investigate low productive hours and engagement", got[1].Action)
	assert.Equal(t, model.ImpactHigh, got[0].Impact)
	assert.Equal(t, model.ImpactHigh, got[1].Impact)
}

func TestRecommend_MediumRiskSoftAnalogues(t *testing.T) {
	rec := model.EmployeeRecord{
		OfficeMinutes: 8.5 * 60, // < 9h
		BayMinutes:    6.5 * 60, // < 7h
	}
	got := recommendFor(t, rec, 65)

	actions := make([]string, len(got))
	for i, r := range got {
		actions[i] = r.Action
	}
	// "Schedule" outranks "Monitor" in the keyword table; high-risk catalog
	// entries never appear for a medium score.
	for _, a := range actions {
		assert.NotContains(t, a, "Urgent")
		assert.NotContains(t, a, "Critical")
	}
	assert.Contains(t, actions, "Monitor attendance trends for next 30 days")
}

func TestRecommend_LowRiskRecognition(t *testing.T) {
	rec := model.EmployeeRecord{
		OfficeMinutes:     600,
		BayMinutes:        560,
		ProductivityRatio: 0.93,
	}
	got := recommendFor(t, rec, 95)

	// "Consider" is the only keyword hit in the low-risk pool, so the
	// leadership action leads; unmatched catalog entries keep their order.
	require.Len(t, got, 3)
	assert.Equal(t, "Consider for leadership or mentoring opportunities", got[0].Action)
	assert.Equal(t, "Continue current engagement strategies", got[1].Action)
	assert.Equal(t, "Recognize good attendance and performance", got[2].Action)
}

func TestIssueActions(t *testing.T) {
	e := NewEngine()

	rec := model.EmployeeRecord{
		TotalLeaveDays: 12,
		BreakMinutes:   100,
		HasExceptions:  true,
		BillingStatus:  "Unbilled",
	}
	got := e.issueActions(rec, companyStats())
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "wellness program")
	assert.Contains(t, got[1], "break scheduling")
	assert.Contains(t, got[2], "attendance exceptions")
	assert.Contains(t, got[3], "billable project")

	clean := model.EmployeeRecord{TotalLeaveDays: 5, BreakMinutes: 30, BillingStatus: "Billed"}
	assert.Empty(t, e.issueActions(clean, companyStats()))
}

func TestDevelopmentActions(t *testing.T) {
	e := NewEngine()

	junior := model.EmployeeRecord{Designation: "Associate Consultant", ProductivityRatio: 0.85}
	got := e.developmentActions(junior)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "promotion")

	struggling := model.EmployeeRecord{Designation: "AL2", ProductivityRatio: 0.5}
	got = e.developmentActions(struggling)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "skill development")

	campus := model.EmployeeRecord{RecruitmentType: "Campus Hire"}
	got = e.developmentActions(campus)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "campus hire development program")
}

func TestPrioritize_StableDescending(t *testing.T) {
	actions := []string{
		"Continue current engagement strategies",
		"Monitor attendance trends for next 30 days",
		"Urgent: Address consistent late arrivals/early departures",
		"Schedule immediate one-on-one performance review",
		"Unmatched action text",
	}
	got := prioritize(actions)
	assert.Equal(t, []string{
		"Urgent: Address consistent late arrivals/early departures",
		"Schedule immediate one-on-one performance review",
		"Monitor attendance trends for next 30 days",
		"Continue current engagement strategies",
		"Unmatched action text",
	}, got)
}

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestImpact(t *testing.T) {
	assert.Equal(t, model.ImpactHigh, Impact("Urgent: do the thing"))
	assert.Equal(t, model.ImpactHigh, Impact("Evaluate for project reassignment or role adjustment"))
	assert.Equal(t, model.ImpactMedium, Impact("Monitor attendance trends for next 30 days"))
	assert.Equal(t, model.ImpactMedium, Impact("Provide productivity coaching and time management training"))
	assert.Equal(t, model.ImpactLow, Impact("Recognize good attendance and performance"))
	assert.Equal(t, model.ImpactLow, Impact(""))
}
