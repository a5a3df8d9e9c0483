package availability

import "testing"

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		if got := TimeToMinutes(tc.in); got != tc.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinutesToTime_NoDayWraparound(t *testing.T) {
	// Values past midnight roll into multi-day hour strings; callers must
	// keep windows inside a single day.
	if got := MinutesToTime(1450); got != "24:10" {
		t.Errorf("MinutesToTime(1450) = %q, want %q", got, "24:10")
	}
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		if got := TimeToMinutes(MinutesToTime(m)); got != m {
			t.Fatalf("round trip failed at %d: got %d", m, got)
		}
	}
}

func TestSlotsOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"adjacent after", "09:00", "10:00", "10:00", "11:00", false},
		{"adjacent before", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("SlotsOverlap(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
			// Overlap is symmetric.
			if got := SlotsOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Errorf("SlotsOverlap symmetry broken for %s-%s vs %s-%s",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			}
		})
	}
}
