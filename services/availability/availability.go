// Package availability computes the bookable windows for one calendar date
// from a professional's recurring weekly templates and the appointments
// already occupying that day. It is a pure, stateless computation: no I/O, no
// errors, safe to invoke concurrently (e.g. once per visible day of a month
// view). Malformed input degrades to an empty or smaller slot set rather than
// a fault; validation lives at the template-entry boundary.
package availability

import (
	"time"

	"agendly/models"
)

// DefaultDurationMinutes applies when a template carries no explicit
// appointment duration.
const DefaultDurationMinutes = 60

// Generate expands templates (already scoped to the target date's weekday)
// into concrete bookable slots for date, excluding:
//
//   - candidates overlapping the template's lunch break,
//   - candidates whose start is at or before now in loc,
//   - candidates overlapping a booked appointment's window.
//
// booked should be pre-scoped to the same date and to non-canceled statuses;
// entries carrying a different date are ignored rather than treated as
// conflicts. Slots are emitted in template order, time-ascending within a
// template, with no cross-template de-duplication.
func Generate(templates []models.TimeSlotTemplate, booked []models.Appointment, date string, loc *time.Location, now time.Time) []models.AvailableSlot {
	var slots []models.AvailableSlot

	for _, tpl := range templates {
		startMinutes := TimeToMinutes(tpl.StartTime)
		endMinutes := TimeToMinutes(tpl.EndTime)
		duration := tpl.AppointmentDuration
		if duration <= 0 {
			duration = DefaultDurationMinutes
		}

		hasLunch := tpl.LunchBreakStart != "" && tpl.LunchBreakEnd != ""

		// Fixed-size tiling; a trailing window shorter than one duration is
		// never emitted.
		for t := startMinutes; t+duration <= endMinutes; t += duration {
			candStart := MinutesToTime(t)
			candEnd := MinutesToTime(t + duration)

			if hasLunch {
				if SlotsOverlap(candStart, candEnd, tpl.LunchBreakStart, tpl.LunchBreakEnd) {
					continue
				}
				// Guards a start strictly inside the lunch window even when
				// the overlap arithmetic is defeated by malformed bounds.
				lunchStart := TimeToMinutes(tpl.LunchBreakStart)
				lunchEnd := TimeToMinutes(tpl.LunchBreakEnd)
				if t > lunchStart && t < lunchEnd {
					continue
				}
			}

			if isPast(date, candStart, loc, now) {
				continue
			}

			if conflictsWithBooked(candStart, candEnd, date, booked) {
				continue
			}

			slots = append(slots, models.AvailableSlot{
				Date:         date,
				StartTime:    candStart,
				EndTime:      candEnd,
				TeamMemberID: tpl.TeamMemberID,
			})
		}
	}

	return slots
}

// GenerateNow is Generate evaluated against the current wall clock.
func GenerateNow(templates []models.TimeSlotTemplate, booked []models.Appointment, date string, loc *time.Location) []models.AvailableSlot {
	return Generate(templates, booked, date, loc, time.Now())
}

// FilterPastSlots re-applies the past-instant exclusion to an already-built
// slot list, for callers that generated slots earlier and revalidate after a
// refresh. Its decision is identical to the inline check in Generate, so
// filtering freshly generated slots is a no-op.
func FilterPastSlots(slots []models.AvailableSlot, loc *time.Location, now time.Time) []models.AvailableSlot {
	var kept []models.AvailableSlot
	for _, s := range slots {
		if isPast(s.Date, s.StartTime, loc, now) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// isPast reports whether the slot start is at or before now, compared as
// absolute instants in loc. Professionals and clients may sit in different
// zones from the server, so a naive local-clock comparison is never used. An
// unresolvable date keeps the slot.
func isPast(date, startTime string, loc *time.Location, now time.Time) bool {
	instant := slotInstant(date, startTime, loc)
	if instant.IsZero() {
		return false
	}
	return !instant.After(now)
}

// conflictsWithBooked reports whether [candStart,candEnd) intersects any
// booked window on the same date. Booked entries with a differing non-empty
// date never conflict.
func conflictsWithBooked(candStart, candEnd, date string, booked []models.Appointment) bool {
	for _, b := range booked {
		if b.Date != "" && b.Date != date {
			continue
		}
		bStart, bEnd := b.Window()
		if SlotsOverlap(candStart, candEnd, bStart, bEnd) {
			return true
		}
	}
	return false
}
