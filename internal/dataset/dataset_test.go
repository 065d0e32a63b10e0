package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{
	ColID, ColDesignation, ColRecruitmentType, ColAccountCode,
	ColOfficeHours, ColBayHours, ColBreakHours, ColCafeteriaHours, ColOOOHours,
	ColBillingStatus, ColHalfDayLeave, ColFullDayLeave, ColOnlineCheckin, ColExceptions,
}

func writeCSV(t *testing.T, rows ...[]string) string {
	t.Helper()

	var sb strings.Builder
	all := append([][]string{testHeader}, rows...)
	for _, row := range all {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "attendance.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func row(id int, account, designation string, office, bay, brk string, halfLeave, fullLeave, checkins, billing, exceptions string) []string {
	return []string{
		fmt.Sprint(id), designation, "Lateral", account,
		office, bay, brk, "0:20:00", "0:10:00",
		billing, halfLeave, fullLeave, checkins, exceptions,
	}
}

func loadTestSnapshot(t *testing.T, rows ...[]string) *Snapshot {
	t.Helper()
	snap, err := Load(writeCSV(t, rows...), Options{})
	require.NoError(t, err)
	return snap
}

func TestLoad_MissingSourceIsDistinctError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), Options{})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSourceMissing))
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Fake ID,Designation\n1,Engineer\n"), 0o644))

	_, err := Load(path, Options{})
	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrSourceMissing), "malformed content is not a missing source")
	assert.Contains(t, err.Error(), "required column")
}

func TestLoad_ParsesAndEngineersOnce(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(101, "ACME", "Senior Engineer", "10:00:00", "7:30:00", "0:40:00", "1", "2", "3", "Billed", "No"),
	)

	require.Equal(t, 1, snap.Len())
	rec, ok := snap.Employee(101)
	require.True(t, ok)
	assert.Equal(t, "Senior Engineer", rec.Designation)
	assert.Equal(t, "ACME", rec.AccountCode)
	assert.Equal(t, 600.0, rec.OfficeMinutes)
	assert.Equal(t, 450.0, rec.BayMinutes)
	assert.Equal(t, 40.0, rec.BreakMinutes)
	assert.Equal(t, 2.5, rec.TotalLeaveDays)
	assert.InDelta(t, 0.75, rec.ProductivityRatio, 1e-9)
	assert.True(t, rec.OfficeCompliance)
	assert.True(t, rec.BayCompliance)
	assert.False(t, rec.HasExceptions)
	assert.NotEmpty(t, snap.Hash)
	assert.NotEmpty(t, snap.ID)
}

func TestLoad_RepairsMalformedCellsToZero(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(7, "ACME", "Engineer", "garbage", "7:00:00", "", "x", "", "not-a-number", "Unbilled", ""),
	)

	rec, ok := snap.Employee(7)
	require.True(t, ok)
	assert.Equal(t, 0.0, rec.OfficeMinutes, "unparseable duration repairs to zero")
	assert.Equal(t, 420.0, rec.BayMinutes)
	assert.Equal(t, 0.0, rec.HalfDayLeaves)
	assert.Equal(t, 0, rec.OnlineCheckins)
	assert.Equal(t, 420.0, rec.ProductivityRatio, "ratio denominator floors at one minute")
}

func TestLoad_SkipsBlankRowsAndDuplicateIDs(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		[]string{"", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		row(1, "OTHER", "Analyst", "8:00:00", "6:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	require.Equal(t, 1, snap.Len())
	rec, _ := snap.Employee(1)
	assert.Equal(t, "ACME", rec.AccountCode, "first occurrence wins")
}

func TestSnapshot_EmployeeLookupMiss(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	_, ok := snap.Employee(999)
	assert.False(t, ok, "a miss is an absent-value signal, not an error")
}

func TestSnapshot_Filter(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		row(2, "ACME", "Analyst", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		row(3, "OTHER", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	assert.Len(t, snap.Filter("", ""), 3, "no filters returns the full set")

	acme := snap.Filter("ACME", "")
	require.Len(t, acme, 2)
	for _, rec := range acme {
		assert.Equal(t, "ACME", rec.AccountCode)
	}

	both := snap.Filter("ACME", "Engineer")
	require.Len(t, both, 1)
	assert.Equal(t, 1, both[0].ID)

	// Idempotent: filtering the same snapshot twice gives the same subset.
	assert.Equal(t, acme, snap.Filter("ACME", ""))

	assert.Empty(t, snap.Filter("NOPE", ""), "empty matches are a valid result")
	assert.Equal(t, 3, snap.Len(), "filtering never mutates the snapshot")
}

func TestSnapshot_CompanyStats(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "1:00:00", "0", "2", "0", "Billed", "No"),
		row(2, "OTHER", "Analyst", "8:00:00", "6:00:00", "0:30:00", "2", "3", "0", "Unbilled", "No"),
	)

	stats := snap.CompanyStats()
	assert.Equal(t, 2, stats.TotalEmployees)
	assert.InDelta(t, 8.5, stats.AvgOfficeHours, 1e-9)
	assert.InDelta(t, 6.5, stats.AvgBayHours, 1e-9)
	assert.InDelta(t, 0.75, stats.AvgBreakHours, 1e-9)
	assert.InDelta(t, 50.0, stats.OfficeComplianceRate, 1e-9)
	assert.InDelta(t, 50.0, stats.BayComplianceRate, 1e-9)
	assert.InDelta(t, 3.0, stats.AvgLeaveDays, 1e-9)
	assert.InDelta(t, 50.0, stats.BilledPct, 1e-9)
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 2, stats.TotalDesignations)
}

func TestSnapshot_CompanyStatsEmptySet(t *testing.T) {
	snap := loadTestSnapshot(t)

	stats := snap.CompanyStats()
	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Zero(t, stats.AvgOfficeHours)
	assert.Zero(t, stats.AvgLeaveDays)
	assert.Zero(t, stats.OfficeComplianceRate)
	assert.Zero(t, stats.BilledPct)
}

func TestSnapshot_AccountStats(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "1:00:00", "0", "0", "0", "Billed", "No"),
		row(2, "ACME", "Analyst", "7:00:00", "5:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		row(3, "OTHER", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	stats := snap.AccountStats("ACME")
	assert.Equal(t, 2, stats.EmployeeCount)
	assert.InDelta(t, 8.0, stats.AvgOfficeHours, 1e-9)
	assert.InDelta(t, 6.0, stats.AvgBayHours, 1e-9)
	assert.InDelta(t, 50.0, stats.OfficeComplianceRate, 1e-9)

	unknown := snap.AccountStats("NOPE")
	assert.Equal(t, 0, unknown.EmployeeCount)
	assert.Zero(t, unknown.AvgOfficeHours)
}

func TestSnapshot_DistinctOptionLists(t *testing.T) {
	snap := loadTestSnapshot(t,
		row(3, "ZULU", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
		row(2, "ACME", "Analyst", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	assert.Equal(t, []string{"ACME", "ZULU"}, snap.Accounts())
	assert.Equal(t, []string{"Analyst", "Engineer"}, snap.Designations())
	assert.Equal(t, []int{1, 2, 3}, snap.EmployeeIDs())
}

func TestProcessor_ReloadSwapsAndSkipsUnchanged(t *testing.T) {
	path := writeCSV(t,
		row(1, "ACME", "Engineer", "9:00:00", "7:00:00", "0:30:00", "0", "0", "0", "Billed", "No"),
	)

	proc := NewProcessor(Options{})
	_, ok := proc.Current()
	assert.False(t, ok, "nothing loaded yet")

	first, err := proc.Reload(path)
	require.NoError(t, err)

	// Same bytes: the live snapshot is kept.
	again, err := proc.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// Changed bytes: a new snapshot is published atomically.
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(testHeader, ",")+"\n"+strings.Join(
		row(2, "OTHER", "Analyst", "8:00:00", "6:00:00", "0:30:00", "0", "0", "0", "Billed", "No"), ",")+"\n"), 0o644))

	next, err := proc.Reload(path)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)
	assert.NotEqual(t, first.Hash, next.Hash)

	live, ok := proc.Current()
	require.True(t, ok)
	assert.Equal(t, next.ID, live.ID)
	_, found := live.Employee(1)
	assert.False(t, found, "readers only ever see a fully-built snapshot")
}
