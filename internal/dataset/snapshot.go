// Package dataset loads attendance sheets into immutable snapshots and
// serves per-employee lookups and aggregate projections over them.
package dataset

import (
	"sort"
	"time"

	"github.com/sells-group/attendance-cli/internal/model"
)

// Snapshot is one fully-built, read-only view of a loaded record set.
// A Processor swaps whole snapshots on reload; nothing mutates one in place,
// so a snapshot is safe for concurrent readers.
type Snapshot struct {
	ID       string    // load instance tag, for logs
	Hash     string    // SHA-256 of the source bytes
	Source   string    // path the records came from
	LoadedAt time.Time

	records []model.EmployeeRecord
	byID    map[int]int // employee id -> index into records
}

// Records returns a copy of the record slice so callers cannot mutate the
// snapshot's backing array.
func (s *Snapshot) Records() []model.EmployeeRecord {
	out := make([]model.EmployeeRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of loaded records.
func (s *Snapshot) Len() int { return len(s.records) }

// Employee looks up a record by its unique identifier. The second return is
// false when the id is absent; a miss is a valid empty result, not an error.
func (s *Snapshot) Employee(id int) (model.EmployeeRecord, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.EmployeeRecord{}, false
	}
	return s.records[idx], true
}

// Filter returns the records matching the given account and/or designation.
// An empty string means no filter on that attribute; both empty returns the
// full set. The result is always a fresh slice.
func (s *Snapshot) Filter(account, designation string) []model.EmployeeRecord {
	out := make([]model.EmployeeRecord, 0, len(s.records))
	for _, rec := range s.records {
		if account != "" && rec.AccountCode != account {
			continue
		}
		if designation != "" && rec.Designation != designation {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Accounts returns the sorted distinct account codes, for filter pickers.
func (s *Snapshot) Accounts() []string {
	return distinct(s.records, func(r model.EmployeeRecord) string { return r.AccountCode })
}

// Designations returns the sorted distinct designations.
func (s *Snapshot) Designations() []string {
	return distinct(s.records, func(r model.EmployeeRecord) string { return r.Designation })
}

// EmployeeIDs returns all ids in ascending order. The CLI uses this to
// suggest valid ids after a lookup miss.
func (s *Snapshot) EmployeeIDs() []int {
	ids := make([]int, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func distinct(records []model.EmployeeRecord, key func(model.EmployeeRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
