package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/attendance-cli/internal/fetcher"
	"github.com/sells-group/attendance-cli/internal/model"
)

// ErrSourceMissing distinguishes an absent source file from malformed
// content; both fail the load attempt, nothing more.
var ErrSourceMissing = eris.New("dataset: source file missing")

// Source sheet column names. "Excemptions" is misspelled in the upstream
// export schema; the loader must match it verbatim.
const (
	ColID              = "Fake ID"
	ColDesignation     = "Designation"
	ColRecruitmentType = "Recruitment Type"
	ColAccountCode     = "Account code"
	ColOfficeHours     = "Avg. Office hrs"
	ColBayHours        = "Avg. Bay hrs"
	ColBreakHours      = "Avg. Break hrs"
	ColCafeteriaHours  = "Avg. Cafeteria hrs"
	ColOOOHours        = "Avg. OOO hrs"
	ColBillingStatus   = "Unbilled"
	ColHalfDayLeave    = "Half-Day leave"
	ColFullDayLeave    = "Full-Day leave"
	ColOnlineCheckin   = "Online Check-in"
	ColExceptions      = "Excemptions"
)

var requiredColumns = []string{
	ColID, ColDesignation, ColRecruitmentType, ColAccountCode,
	ColOfficeHours, ColBayHours, ColBreakHours, ColCafeteriaHours,
	ColOOOHours, ColBillingStatus, ColHalfDayLeave, ColFullDayLeave,
	ColOnlineCheckin, ColExceptions,
}

// Options configures a load.
type Options struct {
	SheetIndex int    // XLSX only
	SheetName  string // XLSX only; overrides SheetIndex
}

// Load reads the attendance sheet at path and builds a snapshot. CSV and
// XLSX sources are supported, picked by file extension.
func Load(path string, opts Options) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrSourceMissing, "dataset: %s", path)
		}
		return nil, eris.Wrap(err, "dataset: read source")
	}

	var rows [][]string
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = fetcher.ReadCSV(strings.NewReader(string(data)), fetcher.CSVOptions{TrimSpace: true})
	} else {
		rows, err = fetcher.ReadXLSXBytes(data, fetcher.XLSXOptions{
			SheetIndex: opts.SheetIndex,
			SheetName:  opts.SheetName,
		})
	}
	if err != nil {
		return nil, eris.Wrap(err, "dataset: parse source")
	}

	snap, err := buildSnapshot(path, rows)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	snap.Hash = hex.EncodeToString(sum[:])
	return snap, nil
}

// buildSnapshot maps the header row, validates required columns, and parses
// each record exactly once, engineering derived features last.
func buildSnapshot(source string, rows [][]string) (*Snapshot, error) {
	if len(rows) == 0 {
		return nil, eris.New("dataset: source has no header row")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, eris.Errorf("dataset: required column %q missing", name)
		}
	}

	snap := &Snapshot{
		ID:       uuid.New().String(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		byID:     make(map[int]int),
	}

	for rowNum, row := range rows[1:] {
		if blankRow(row) {
			continue
		}

		p := rowParser{cols: cols, row: row, rowNum: rowNum + 2}
		rec := model.EmployeeRecord{
			ID:               p.intCell(ColID),
			Designation:      p.textCell(ColDesignation),
			RecruitmentType:  p.textCell(ColRecruitmentType),
			AccountCode:      p.textCell(ColAccountCode),
			BillingStatus:    p.textCell(ColBillingStatus),
			OfficeHours:      p.durationCell(ColOfficeHours),
			BayHours:         p.durationCell(ColBayHours),
			BreakHours:       p.durationCell(ColBreakHours),
			CafeteriaHours:   p.durationCell(ColCafeteriaHours),
			OutOfOfficeHours: p.durationCell(ColOOOHours),
			HalfDayLeaves:    p.floatCell(ColHalfDayLeave),
			FullDayLeaves:    p.floatCell(ColFullDayLeave),
			OnlineCheckins:   p.intCell(ColOnlineCheckin),
			ExceptionsFlag:   p.textCell(ColExceptions),
		}
		rec.EngineerFeatures()

		if _, dup := snap.byID[rec.ID]; dup {
			zap.L().Warn("dataset: duplicate employee id, keeping first",
				zap.Int("id", rec.ID),
				zap.Int("row", p.rowNum),
			)
			continue
		}
		snap.byID[rec.ID] = len(snap.records)
		snap.records = append(snap.records, rec)
	}

	zap.L().Info("dataset: snapshot built",
		zap.String("snapshot_id", snap.ID),
		zap.String("source", source),
		zap.Int("records", len(snap.records)),
	)
	return snap, nil
}

// rowParser reads typed cells out of one raw row. Malformed values repair to
// the column type's zero value; the repair is logged, never fatal.
type rowParser struct {
	cols   map[string]int
	row    []string
	rowNum int
}

func (p rowParser) raw(col string) string {
	idx := p.cols[col]
	if idx >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[idx])
}

func (p rowParser) textCell(col string) string {
	return p.raw(col)
}

func (p rowParser) intCell(col string) int {
	s := p.raw(col)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheets sometimes render integers as floats.
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f)
		}
		p.logRepair(col, s)
		return 0
	}
	return n
}

func (p rowParser) floatCell(col string) float64 {
	s := p.raw(col)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.logRepair(col, s)
		return 0
	}
	return f
}

func (p rowParser) durationCell(col string) time.Duration {
	s := p.raw(col)
	if s == "" {
		return 0
	}
	d, ok := fetcher.ParseLenientDuration(s)
	if !ok {
		p.logRepair(col, s)
		return 0
	}
	return d
}

func (p rowParser) logRepair(col, raw string) {
	zap.L().Debug("dataset: repaired malformed cell",
		zap.Int("row", p.rowNum),
		zap.String("column", col),
		zap.String("value", raw),
	)
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
