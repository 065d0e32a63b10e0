package fetcher

import (
	"strconv"
	"strings"
	"time"
)

// ParseLenientDuration parses the time-valued cells the attendance sheet
// carries. Accepted forms: "7:54", "07:54:00", "0 days 07:54:00", and Go
// duration strings like "7h54m". Anything else parses as zero; malformed
// time cells are repaired, never fatal.
func ParseLenientDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	var days int64
	if idx := strings.Index(s, "days"); idx > 0 {
		n, err := strconv.ParseInt(strings.TrimSpace(s[:idx]), 10, 64)
		if err != nil {
			return 0, false
		}
		days = n
		s = strings.TrimSpace(s[idx+len("days"):])
	}

	if d, ok := parseClock(s); ok {
		return time.Duration(days)*24*time.Hour + d, true
	}

	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return time.Duration(days)*24*time.Hour + d, true
	}

	return 0, false
}

// parseClock handles "H:MM" and "H:MM:SS".
func parseClock(s string) (time.Duration, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	vals := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		vals[i] = n
	}
	if vals[1] > 59 {
		return 0, false
	}

	d := time.Duration(vals[0])*time.Hour + time.Duration(vals[1])*time.Minute
	if len(vals) == 3 {
		if vals[2] > 59 {
			return 0, false
		}
		d += time.Duration(vals[2]) * time.Second
	}
	return d, true
}
