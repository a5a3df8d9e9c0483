package availability

import (
	"testing"
	"time"

	"agendly/models"
)

// farPast keeps the past-time exclusion inert in tests that are not about it.
var farPast = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func tpl(start, end string, duration int) models.TimeSlotTemplate {
	return models.TimeSlotTemplate{
		StartTime:           start,
		EndTime:             end,
		AppointmentDuration: duration,
	}
}

func slotTimes(slots []models.AvailableSlot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.StartTime+"-"+s.EndTime)
	}
	return out
}

func assertSlots(t *testing.T, slots []models.AvailableSlot, want []string) {
	t.Helper()
	got := slotTimes(slots)
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerate_NoLunch(t *testing.T) {
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 60)},
		nil, "2026-10-05", time.UTC, farPast,
	)
	assertSlots(t, slots, []string{"09:00-10:00", "10:00-11:00"})
}

func TestGenerate_DefaultDuration(t *testing.T) {
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 0)},
		nil, "2026-10-05", time.UTC, farPast,
	)
	assertSlots(t, slots, []string{"09:00-10:00", "10:00-11:00"})
}

func TestGenerate_LunchExclusion(t *testing.T) {
	template := tpl("09:00", "13:00", 60)
	template.LunchBreakStart = "12:00"
	template.LunchBreakEnd = "13:00"

	slots := Generate([]models.TimeSlotTemplate{template}, nil, "2026-10-05", time.UTC, farPast)
	assertSlots(t, slots, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"})
}

func TestGenerate_LunchMidWindow(t *testing.T) {
	// 30-minute slots against a 12:00-12:30 break: the 12:00 candidate is
	// excluded, both neighbors survive.
	template := tpl("11:30", "13:30", 30)
	template.LunchBreakStart = "12:00"
	template.LunchBreakEnd = "12:30"

	slots := Generate([]models.TimeSlotTemplate{template}, nil, "2026-10-05", time.UTC, farPast)
	assertSlots(t, slots, []string{"11:30-12:00", "12:30-13:00", "13:00-13:30"})
}

func TestGenerate_ConflictExclusion(t *testing.T) {
	booked := []models.Appointment{
		{Date: "2026-10-05", StartTime: "09:30", EndTime: "10:30", Status: models.AppointmentScheduled},
	}
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 60)},
		booked, "2026-10-05", time.UTC, farPast,
	)
	// The booking straddles both candidates; each overlaps it.
	assertSlots(t, slots, nil)
}

func TestGenerate_BackToBackBookingDoesNotConflict(t *testing.T) {
	booked := []models.Appointment{
		{Date: "2026-10-05", StartTime: "10:00", EndTime: "11:00"},
	}
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 60)},
		booked, "2026-10-05", time.UTC, farPast,
	)
	assertSlots(t, slots, []string{"09:00-10:00"})
}

func TestGenerate_CrossDateBookingIgnored(t *testing.T) {
	booked := []models.Appointment{
		{Date: "2026-10-06", StartTime: "09:00", EndTime: "10:00"},
	}
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 60)},
		booked, "2026-10-05", time.UTC, farPast,
	)
	assertSlots(t, slots, []string{"09:00-10:00", "10:00-11:00"})
}

func TestGenerate_TrailingPartialWindowOmitted(t *testing.T) {
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "09:45", 60)},
		nil, "2026-10-05", time.UTC, farPast,
	)
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a 45-minute window, got %v", slotTimes(slots))
	}
}

func TestGenerate_PastTimeExclusionForToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	// 10:30 local on the target date: the 09:00 and 10:00 candidates started
	// already, 11:00 onward remain.
	now := time.Date(2026, 10, 5, 10, 30, 0, 0, loc)
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "13:00", 60)},
		nil, "2026-10-05", loc, now,
	)
	assertSlots(t, slots, []string{"11:00-12:00", "12:00-13:00"})
}

func TestGenerate_SlotStartingExactlyNowExcluded(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 5, 10, 0, 0, 0, loc)
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "12:00", 60)},
		nil, "2026-10-05", loc, now,
	)
	// "at or before now" excludes the 10:00 candidate itself.
	assertSlots(t, slots, []string{"11:00-12:00"})
}

func TestGenerate_TimezoneAwareComparison(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	// 11:00 UTC is 08:00 in São Paulo (UTC-3): the whole morning template is
	// still in the future there.
	now := time.Date(2026, 10, 5, 11, 0, 0, 0, time.UTC)
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "11:00", 60)},
		nil, "2026-10-05", saoPaulo, now,
	)
	assertSlots(t, slots, []string{"09:00-10:00", "10:00-11:00"})
}

func TestGenerate_MultipleTemplatesKeepOrder(t *testing.T) {
	afternoon := tpl("14:00", "16:00", 60)
	afternoon.TeamMemberID = "tm-1"
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "10:00", 60), afternoon},
		nil, "2026-10-05", time.UTC, farPast,
	)
	assertSlots(t, slots, []string{"09:00-10:00", "14:00-15:00", "15:00-16:00"})
	if slots[1].TeamMemberID != "tm-1" || slots[0].TeamMemberID != "" {
		t.Errorf("team member scoping lost: %+v", slots)
	}
}

func TestGenerate_MalformedTimesYieldNoSlots(t *testing.T) {
	slots := Generate(
		[]models.TimeSlotTemplate{tpl("abc", "def", 60)},
		nil, "2026-10-05", time.UTC, farPast,
	)
	if len(slots) != 0 {
		t.Fatalf("malformed template produced slots: %v", slotTimes(slots))
	}
}

func TestFilterPastSlots_IdempotentWithGenerate(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 5, 10, 30, 0, 0, loc)
	generated := Generate(
		[]models.TimeSlotTemplate{tpl("09:00", "13:00", 60)},
		nil, "2026-10-05", loc, now,
	)
	filtered := FilterPastSlots(generated, loc, now)
	if len(filtered) != len(generated) {
		t.Fatalf("filter changed an already past-free list: %v -> %v",
			slotTimes(generated), slotTimes(filtered))
	}
	for i := range generated {
		if filtered[i] != generated[i] {
			t.Errorf("slot %d changed: %+v -> %+v", i, generated[i], filtered[i])
		}
	}
}

func TestFilterPastSlots_DropsStaleSlots(t *testing.T) {
	loc := time.UTC
	slots := []models.AvailableSlot{
		{Date: "2026-10-05", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2026-10-05", StartTime: "11:00", EndTime: "12:00"},
	}
	// A refresh after 10:30 must drop the morning slot the earlier
	// computation still considered bookable.
	now := time.Date(2026, 10, 5, 10, 30, 0, 0, loc)
	kept := FilterPastSlots(slots, loc, now)
	assertSlots(t, kept, []string{"11:00-12:00"})
}
