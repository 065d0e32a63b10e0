package model

import (
	"strings"
	"time"
)

// Minimum daily minutes an employee must log to be compliant.
const (
	RequiredOfficeMinutes = 540 // 9 hours
	RequiredBayMinutes    = 420 // 7 hours
)

// BreakFrequency buckets break time into coarse tiers.
type BreakFrequency string

const (
	BreakFrequencyLow    BreakFrequency = "Low"
	BreakFrequencyMedium BreakFrequency = "Medium"
	BreakFrequencyHigh   BreakFrequency = "High"
)

// EmployeeRecord is one employee's averaged attendance row. Raw fields come
// straight from the source sheet; derived fields are filled once by
// EngineerFeatures at load time and are read-only afterwards.
type EmployeeRecord struct {
	// Raw attributes.
	ID               int           `json:"id"`
	Designation      string        `json:"designation"`
	RecruitmentType  string        `json:"recruitment_type"`
	AccountCode      string        `json:"account_code"`
	BillingStatus    string        `json:"billing_status"`
	OfficeHours      time.Duration `json:"office_hours"`
	BayHours         time.Duration `json:"bay_hours"`
	BreakHours       time.Duration `json:"break_hours"`
	CafeteriaHours   time.Duration `json:"cafeteria_hours"`
	OutOfOfficeHours time.Duration `json:"out_of_office_hours"`
	HalfDayLeaves    float64       `json:"half_day_leaves"`
	FullDayLeaves    float64       `json:"full_day_leaves"`
	OnlineCheckins   int           `json:"online_checkins"`
	ExceptionsFlag   string        `json:"exceptions_flag"`

	// Derived attributes.
	OfficeMinutes     float64        `json:"office_minutes"`
	BayMinutes        float64        `json:"bay_minutes"`
	BreakMinutes      float64        `json:"break_minutes"`
	TotalLeaveDays    float64        `json:"total_leave_days"`
	ProductivityRatio float64        `json:"productivity_ratio"`
	OfficeCompliance  bool           `json:"office_compliance"`
	BayCompliance     bool           `json:"bay_compliance"`
	BreakFrequency    BreakFrequency `json:"break_frequency"`
	HasExceptions     bool           `json:"has_exceptions"`
}

// EngineerFeatures fills the derived fields from the raw ones. Minutes come
// first: the productivity ratio and compliance flags are functions of them.
func (r *EmployeeRecord) EngineerFeatures() {
	r.OfficeMinutes = r.OfficeHours.Minutes()
	r.BayMinutes = r.BayHours.Minutes()
	r.BreakMinutes = r.BreakHours.Minutes()

	// Floor the denominator at one minute so zero office time never divides.
	denom := r.OfficeMinutes
	if denom < 1 {
		denom = 1
	}
	r.ProductivityRatio = r.BayMinutes / denom

	r.TotalLeaveDays = r.HalfDayLeaves*0.5 + r.FullDayLeaves

	r.OfficeCompliance = r.OfficeMinutes >= RequiredOfficeMinutes
	r.BayCompliance = r.BayMinutes >= RequiredBayMinutes

	switch {
	case r.BreakMinutes > 60:
		r.BreakFrequency = BreakFrequencyHigh
	case r.BreakMinutes > 30:
		r.BreakFrequency = BreakFrequencyMedium
	default:
		r.BreakFrequency = BreakFrequencyLow
	}

	r.HasExceptions = ExceptionFlagSet(r.ExceptionsFlag)
}

// Billed reports whether the employee is on a billable project.
func (r *EmployeeRecord) Billed() bool {
	return strings.EqualFold(strings.TrimSpace(r.BillingStatus), "Billed")
}

// ExceptionFlagSet normalizes the free-form exceptions column. The source
// uses "No", "0", empty, or a spreadsheet NaN for the unset case; anything
// else counts as a flagged exception.
func ExceptionFlagSet(flag string) bool {
	switch strings.TrimSpace(flag) {
	case "", "No", "no", "0", "nan", "NaN":
		return false
	}
	return true
}
