// File: services/schedule/schedule_test.go
package schedule

import (
	"context"
	"errors"
	"testing"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/services/webhook"
)

type fakeAppointments struct {
	appointmentRepo.AppointmentRepository
	byID     map[string]*models.Appointment
	statuses map[string]string
}

func (f *fakeAppointments) GetByID(_ context.Context, _, id string) (*models.Appointment, error) {
	return f.byID[id], nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, _, id, status string) error {
	f.statuses[id] = status
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(_ context.Context, _, _, _, _, _ string, _ map[string]string) {}

func newService(appts *fakeAppointments) *DefaultScheduleService {
	return &DefaultScheduleService{
		Appointments: appts,
		Webhooks:     webhook.NopDispatcher{},
		Audit:        nopRecorder{},
	}
}

func TestCancelScheduledAppointment(t *testing.T) {
	appts := &fakeAppointments{
		byID: map[string]*models.Appointment{
			"apt-1": {ID: "apt-1", Status: models.AppointmentScheduled},
		},
		statuses: map[string]string{},
	}
	svc := newService(appts)

	appt, err := svc.Cancel(context.Background(), "pro-1", "apt-1")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if appt.Status != models.AppointmentCanceled {
		t.Errorf("status = %q, want canceled", appt.Status)
	}
	if appts.statuses["apt-1"] != models.AppointmentCanceled {
		t.Errorf("stored status = %q, want canceled", appts.statuses["apt-1"])
	}
}

func TestStatusTransitionsGuarded(t *testing.T) {
	cases := []struct {
		name    string
		current string
		op      func(*DefaultScheduleService, string) error
		wantErr error
	}{
		{"complete scheduled", models.AppointmentScheduled, complete, nil},
		{"cancel completed", models.AppointmentCompleted, cancel, ErrInvalidStatusChange},
		{"complete canceled", models.AppointmentCanceled, complete, ErrInvalidStatusChange},
		{"cancel canceled", models.AppointmentCanceled, cancel, ErrInvalidStatusChange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			appts := &fakeAppointments{
				byID:     map[string]*models.Appointment{"apt-1": {ID: "apt-1", Status: c.current}},
				statuses: map[string]string{},
			}
			err := c.op(newService(appts), "apt-1")
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("error = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	svc := newService(&fakeAppointments{byID: map[string]*models.Appointment{}, statuses: map[string]string{}})
	if _, err := svc.Cancel(context.Background(), "pro-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func cancel(s *DefaultScheduleService, id string) error {
	_, err := s.Cancel(context.Background(), "pro-1", id)
	return err
}

func complete(s *DefaultScheduleService, id string) error {
	_, err := s.Complete(context.Background(), "pro-1", id)
	return err
}
