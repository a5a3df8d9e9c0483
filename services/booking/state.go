package booking

import (
	"fmt"

	"agendly/models"
)

// Event advances the booking wizard. Each event corresponds to one piece of
// input the client supplies.
type Event string

const (
	EventSelectTeamMember Event = "select_team_member"
	EventSelectInsurance  Event = "select_insurance"
	EventSelectService    Event = "select_service"
	EventSelectDate       Event = "select_date"
	EventSelectTime       Event = "select_time"
	EventSubmitClientInfo Event = "submit_client_info"
	EventConfirm          Event = "confirm"
)

// ErrInvalidTransition is wrapped in every transition rejection so callers
// can distinguish wizard misuse from infrastructure failures.
var ErrInvalidTransition = fmt.Errorf("invalid booking transition")

// transitions is the explicit table of the wizard. The wizard is linear:
// each step accepts exactly the event that completes it. Anything else is a
// client calling steps out of order.
var transitions = map[models.BookingStep]map[Event]models.BookingStep{
	models.StepTeamMember: {EventSelectTeamMember: models.StepInsurance},
	models.StepInsurance:  {EventSelectInsurance: models.StepService},
	models.StepService:    {EventSelectService: models.StepDate},
	models.StepDate:       {EventSelectDate: models.StepTime},
	models.StepTime:       {EventSelectTime: models.StepClientInfo},
	models.StepClientInfo: {EventSubmitClientInfo: models.StepConfirmed},
	// StepConfirmed is terminal; EventConfirm is consumed by ConfirmBooking
	// against a session already at StepConfirmed.
}

// Transition returns the step that follows applying event at step, or an
// error wrapping ErrInvalidTransition when the table has no entry.
func Transition(step models.BookingStep, event Event) (models.BookingStep, error) {
	next, ok := transitions[step][event]
	if !ok {
		return step, fmt.Errorf("%w: %s at step %s", ErrInvalidTransition, event, step)
	}
	return next, nil
}
