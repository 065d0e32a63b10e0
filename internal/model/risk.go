package model

// RiskLevel is the discrete tier a weighted risk score maps to.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// SubScores holds the five component scores, each 0-100.
type SubScores struct {
	OfficeHours   float64 `json:"office_hours"`
	BayHours      float64 `json:"bay_hours"`
	LeavePattern  float64 `json:"leave_pattern"`
	BreakBehavior float64 `json:"break_behavior"`
	Exceptions    float64 `json:"exceptions"`
}

// RiskAssessment is the full scoring result for one employee.
type RiskAssessment struct {
	EmployeeID int       `json:"employee_id"`
	Scores     SubScores `json:"scores"`
	Total      float64   `json:"total"`
	Level      RiskLevel `json:"level"`
	Reasons    []string  `json:"reasons"`
}

// Impact is the estimated effect tier of a recommended action.
type Impact string

const (
	ImpactHigh   Impact = "High Impact"
	ImpactMedium Impact = "Medium Impact"
	ImpactLow    Impact = "Low Impact"
)

// Recommendation is one prioritized next-best action.
type Recommendation struct {
	Action string `json:"action"`
	Impact Impact `json:"impact"`
}
