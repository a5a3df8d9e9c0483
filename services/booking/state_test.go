// File: services/booking/state_test.go
package booking

import (
	"errors"
	"testing"

	"agendly/models"
)

func TestTransitionHappyPath(t *testing.T) {
	cases := []struct {
		step  models.BookingStep
		event Event
		want  models.BookingStep
	}{
		{models.StepTeamMember, EventSelectTeamMember, models.StepInsurance},
		{models.StepInsurance, EventSelectInsurance, models.StepService},
		{models.StepService, EventSelectService, models.StepDate},
		{models.StepDate, EventSelectDate, models.StepTime},
		{models.StepTime, EventSelectTime, models.StepClientInfo},
		{models.StepClientInfo, EventSubmitClientInfo, models.StepConfirmed},
	}
	for _, c := range cases {
		got, err := Transition(c.step, c.event)
		if err != nil {
			t.Errorf("Transition(%s, %s) unexpected error: %v", c.step, c.event, err)
			continue
		}
		if got != c.want {
			t.Errorf("Transition(%s, %s) = %s, want %s", c.step, c.event, got, c.want)
		}
	}
}

// Every (step, event) pair outside the linear path must be rejected, and the
// rejection must leave the step where it was.
func TestTransitionRejectsOutOfOrderEvents(t *testing.T) {
	steps := []models.BookingStep{
		models.StepTeamMember, models.StepInsurance, models.StepService,
		models.StepDate, models.StepTime, models.StepClientInfo,
		models.StepConfirmed,
	}
	events := []Event{
		EventSelectTeamMember, EventSelectInsurance, EventSelectService,
		EventSelectDate, EventSelectTime, EventSubmitClientInfo, EventConfirm,
	}
	allowed := map[models.BookingStep]Event{
		models.StepTeamMember: EventSelectTeamMember,
		models.StepInsurance:  EventSelectInsurance,
		models.StepService:    EventSelectService,
		models.StepDate:       EventSelectDate,
		models.StepTime:       EventSelectTime,
		models.StepClientInfo: EventSubmitClientInfo,
	}

	for _, step := range steps {
		for _, event := range events {
			if allowed[step] == event {
				continue
			}
			got, err := Transition(step, event)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Transition(%s, %s) error = %v, want ErrInvalidTransition", step, event, err)
			}
			if got != step {
				t.Errorf("Transition(%s, %s) moved to %s on rejection", step, event, got)
			}
		}
	}
}

func TestTransitionConfirmedIsTerminal(t *testing.T) {
	if _, err := Transition(models.StepConfirmed, EventConfirm); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("StepConfirmed accepted an event: %v", err)
	}
}
