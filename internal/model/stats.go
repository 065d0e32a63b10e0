package model

// CompanyStats aggregates the whole record set. All mean-based fields are 0
// when the set is empty; nothing here ever divides by zero.
type CompanyStats struct {
	TotalEmployees       int     `json:"total_employees"`
	AvgOfficeHours       float64 `json:"avg_office_hours"`
	AvgBayHours          float64 `json:"avg_bay_hours"`
	AvgBreakHours        float64 `json:"avg_break_hours"`
	OfficeComplianceRate float64 `json:"office_compliance_rate"`
	BayComplianceRate    float64 `json:"bay_compliance_rate"`
	TotalAccounts        int     `json:"total_accounts"`
	TotalDesignations    int     `json:"total_designations"`
	AvgLeaveDays         float64 `json:"avg_leave_days"`
	BilledPct            float64 `json:"billed_pct"`
}

// AccountStats aggregates one account code's subset of records.
type AccountStats struct {
	AccountCode          string  `json:"account_code"`
	EmployeeCount        int     `json:"employee_count"`
	AvgOfficeHours       float64 `json:"avg_office_hours"`
	AvgBayHours          float64 `json:"avg_bay_hours"`
	AvgBreakHours        float64 `json:"avg_break_hours"`
	OfficeComplianceRate float64 `json:"office_compliance_rate"`
	BayComplianceRate    float64 `json:"bay_compliance_rate"`
}
