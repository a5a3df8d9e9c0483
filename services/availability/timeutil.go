package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes parses a zero-padded 24-hour "HH:MM" wall-clock string into
// minutes since midnight. No bounds validation is performed: malformed input
// yields a nonsensical minute count that flows through the arithmetic
// silently, typically producing an empty slot set rather than a fault.
// Well-formedness is enforced upstream, at the template create/edit boundary.
func TimeToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// MinutesToTime is the inverse of TimeToMinutes, zero-padding both fields.
// Input is assumed non-negative and below 1440; larger values roll into
// multi-day hour strings (1450 -> "24:10") with no day wraparound, so callers
// must keep candidate windows inside a single day.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SlotsOverlap reports whether the half-open intervals [startA,endA) and
// [startB,endB) intersect. Adjacent windows sharing a boundary instant do NOT
// overlap: back-to-back bookings are legal, and slot generation relies on it.
func SlotsOverlap(startA, endA, startB, endB string) bool {
	return TimeToMinutes(startA) < TimeToMinutes(endB) &&
		TimeToMinutes(endA) > TimeToMinutes(startB)
}

// slotInstant resolves date ("YYYY-MM-DD") plus a wall-clock "HH:MM" into an
// absolute instant in loc. A malformed date is unresolvable; the zero time is
// returned and the caller treats the slot as not-past (silent degradation,
// never a fault in the read path).
func slotInstant(date, hhmm string, loc *time.Location) time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}
	}
	m := TimeToMinutes(hhmm)
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, loc)
}
