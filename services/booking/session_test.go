// File: services/booking/session_test.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	clientRepo "agendly/database/repository/client"
	insuranceRepo "agendly/database/repository/insurance"
	serviceRepo "agendly/database/repository/service"
	teamRepo "agendly/database/repository/teammember"
	timeslotRepo "agendly/database/repository/timeslot"
	"agendly/models"
	"agendly/services/reminder"
	"agendly/services/webhook"
)

// memStore is an in-memory SessionStore standing in for the Redis cache.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return ErrSessionNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *memStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Invalidate(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type fakeProfessionals struct {
	professional *models.Professional
}

func (f *fakeProfessionals) GetByID(_ context.Context, id string) (*models.Professional, error) {
	if f.professional != nil && f.professional.ID == id {
		return f.professional, nil
	}
	return nil, nil
}

// The fake repositories embed their interface so only the methods the wizard
// exercises need bodies; an unexpected call panics the test.

type fakeTemplates struct {
	timeslotRepo.TemplateRepository
	templates []models.TimeSlotTemplate
}

func (f *fakeTemplates) ListForWeekday(_ context.Context, _, _ string, _ int) ([]models.TimeSlotTemplate, error) {
	return f.templates, nil
}

type fakeAppointments struct {
	appointmentRepo.AppointmentRepository
	existing  []models.Appointment
	created   []*models.Appointment
	createErr error
}

func (f *fakeAppointments) ListByDate(_ context.Context, _, _, _ string) ([]models.Appointment, error) {
	return f.existing, nil
}

func (f *fakeAppointments) Create(_ context.Context, a *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

type fakeClients struct {
	clientRepo.ClientRepository
	byPhone map[string]*models.Client
	created []*models.Client
}

func (f *fakeClients) FindByPhone(_ context.Context, _, phone string) (*models.Client, error) {
	return f.byPhone[phone], nil
}

func (f *fakeClients) Create(_ context.Context, c *models.Client) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeClients) Update(_ context.Context, _, _ string, _ *models.Client) error {
	return nil
}

type fakeServices struct {
	serviceRepo.ServiceRepository
	services map[string]*models.Service
}

func (f *fakeServices) GetByID(_ context.Context, _, id string) (*models.Service, error) {
	return f.services[id], nil
}

type fakeInsurance struct {
	insuranceRepo.InsurancePlanRepository
	plans map[string]*models.InsurancePlan
}

func (f *fakeInsurance) GetByID(_ context.Context, _, id string) (*models.InsurancePlan, error) {
	return f.plans[id], nil
}

type fakeTeam struct {
	teamRepo.TeamMemberRepository
	members map[string]*models.TeamMember
}

func (f *fakeTeam) GetByID(_ context.Context, _, id string) (*models.TeamMember, error) {
	return f.members[id], nil
}

type countingRecorder struct {
	actions []string
}

func (r *countingRecorder) Record(_ context.Context, _, _, action, _, _ string, _ map[string]string) {
	r.actions = append(r.actions, action)
}

func newTestService(appts *fakeAppointments, clients *fakeClients, recorder *countingRecorder) (*DefaultBookingService, *models.Professional) {
	professional := &models.Professional{
		ID:       "pro-1",
		Name:     "Dra. Helena",
		Slug:     "dra-helena",
		Timezone: "America/Sao_Paulo",
	}
	return &DefaultBookingService{
		Sessions:      newMemStore(),
		Professionals: &fakeProfessionals{professional: professional},
		Templates: &fakeTemplates{templates: []models.TimeSlotTemplate{
			{ID: "tpl-1", ProfessionalID: "pro-1", StartTime: "09:00", EndTime: "11:00"},
		}},
		Appointments: appts,
		Clients:      clients,
		Services: &fakeServices{services: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ProfessionalID: "pro-1", Name: "Consulta", Active: true},
		}},
		Insurance: &fakeInsurance{plans: map[string]*models.InsurancePlan{
			"ins-1": {ID: "ins-1", ProfessionalID: "pro-1", Name: "Unimed", Active: true},
		}},
		TeamMembers: &fakeTeam{members: map[string]*models.TeamMember{
			"tm-1": {ID: "tm-1", ProfessionalID: "pro-1", Name: "Carla", Active: true},
		}},
		Webhooks:  webhook.NopDispatcher{},
		Reminders: reminder.NopScheduler{},
		Audit:     recorder,
		DefaultTZ: "America/Sao_Paulo",
	}, professional
}

// futureDate returns a date a week out so no slot is filtered as past.
func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func walkToClientInfo(t *testing.T, svc *DefaultBookingService, professional *models.Professional, date string) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, professional)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	steps := []struct {
		event Event
		input SessionInput
	}{
		{EventSelectTeamMember, SessionInput{}},
		{EventSelectInsurance, SessionInput{InsurancePlanID: "ins-1"}},
		{EventSelectService, SessionInput{ServiceID: "svc-1"}},
		{EventSelectDate, SessionInput{Date: date}},
		{EventSelectTime, SessionInput{StartTime: "09:00"}},
	}
	for _, s := range steps {
		session, err = svc.AdvanceSession(ctx, session.SessionID, s.event, s.input)
		if err != nil {
			t.Fatalf("AdvanceSession(%s): %v", s.event, err)
		}
	}
	return session
}

func TestWizardFullFlow(t *testing.T) {
	appts := &fakeAppointments{}
	clients := &fakeClients{byPhone: map[string]*models.Client{}}
	recorder := &countingRecorder{}
	svc, professional := newTestService(appts, clients, recorder)
	ctx := context.Background()
	date := futureDate()

	session := walkToClientInfo(t, svc, professional, date)
	if session.Step != models.StepClientInfo {
		t.Fatalf("step after time selection = %s, want %s", session.Step, models.StepClientInfo)
	}
	if session.EndTime != "10:00" {
		t.Fatalf("end time = %q, want 10:00", session.EndTime)
	}

	session, err := svc.AdvanceSession(ctx, session.SessionID, EventSubmitClientInfo, SessionInput{
		ClientName:  "João Silva",
		ClientPhone: "+55 11 91234-5678",
	})
	if err != nil {
		t.Fatalf("AdvanceSession(submit_client_info): %v", err)
	}
	if session.Step != models.StepConfirmed {
		t.Fatalf("step = %s, want %s", session.Step, models.StepConfirmed)
	}

	appointment, err := svc.ConfirmBooking(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if appointment.Status != models.AppointmentScheduled {
		t.Errorf("status = %q, want %q", appointment.Status, models.AppointmentScheduled)
	}
	if appointment.Date != date || appointment.StartTime != "09:00" || appointment.EndTime != "10:00" {
		t.Errorf("window = %s %s-%s, want %s 09:00-10:00",
			appointment.Date, appointment.StartTime, appointment.EndTime, date)
	}
	if len(clients.created) != 1 || clients.created[0].Name != "João Silva" {
		t.Errorf("expected one created client, got %+v", clients.created)
	}
	if appointment.ClientID != clients.created[0].ID {
		t.Errorf("appointment not linked to created client")
	}
	if len(recorder.actions) != 1 || recorder.actions[0] != "appointment.create" {
		t.Errorf("audit actions = %v", recorder.actions)
	}

	// The session is consumed on confirmation.
	if _, err := svc.ConfirmBooking(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second confirm error = %v, want ErrSessionNotFound", err)
	}
}

func TestWizardAvailabilityExcludesBookedSlot(t *testing.T) {
	date := futureDate()
	appts := &fakeAppointments{existing: []models.Appointment{
		{ProfessionalID: "pro-1", Date: date, StartTime: "09:00", EndTime: "10:00", Status: models.AppointmentScheduled},
	}}
	svc, professional := newTestService(appts, &fakeClients{byPhone: map[string]*models.Client{}}, &countingRecorder{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, professional)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	for _, s := range []struct {
		event Event
		input SessionInput
	}{
		{EventSelectTeamMember, SessionInput{}},
		{EventSelectInsurance, SessionInput{}},
		{EventSelectService, SessionInput{ServiceID: "svc-1"}},
		{EventSelectDate, SessionInput{Date: date}},
	} {
		session, err = svc.AdvanceSession(ctx, session.SessionID, s.event, s.input)
		if err != nil {
			t.Fatalf("AdvanceSession(%s): %v", s.event, err)
		}
	}

	if len(session.Availability) != 1 || session.Availability[0].StartTime != "10:00" {
		t.Fatalf("availability = %+v, want only the 10:00 slot", session.Availability)
	}
	if _, err := svc.AdvanceSession(ctx, session.SessionID, EventSelectTime, SessionInput{StartTime: "09:00"}); !errors.Is(err, ErrSlotNotOffered) {
		t.Errorf("selecting the booked slot: error = %v, want ErrSlotNotOffered", err)
	}
}

func TestWizardRejectsUnknownService(t *testing.T) {
	svc, professional := newTestService(&fakeAppointments{}, &fakeClients{byPhone: map[string]*models.Client{}}, &countingRecorder{})
	ctx := context.Background()

	session, _ := svc.InitiateSession(ctx, professional)
	session, err := svc.AdvanceSession(ctx, session.SessionID, EventSelectTeamMember, SessionInput{})
	if err != nil {
		t.Fatalf("AdvanceSession: %v", err)
	}
	session, err = svc.AdvanceSession(ctx, session.SessionID, EventSelectInsurance, SessionInput{})
	if err != nil {
		t.Fatalf("AdvanceSession: %v", err)
	}
	if _, err := svc.AdvanceSession(ctx, session.SessionID, EventSelectService, SessionInput{ServiceID: "nope"}); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("error = %v, want ErrUnknownResource", err)
	}
}

func TestConfirmMapsSlotRace(t *testing.T) {
	appts := &fakeAppointments{createErr: appointmentRepo.ErrSlotTaken}
	svc, professional := newTestService(appts, &fakeClients{byPhone: map[string]*models.Client{}}, &countingRecorder{})
	ctx := context.Background()
	date := futureDate()

	session := walkToClientInfo(t, svc, professional, date)
	session, err := svc.AdvanceSession(ctx, session.SessionID, EventSubmitClientInfo, SessionInput{
		ClientName:  "João Silva",
		ClientPhone: "+55 11 91234-5678",
	})
	if err != nil {
		t.Fatalf("AdvanceSession: %v", err)
	}

	if _, err := svc.ConfirmBooking(ctx, session.SessionID); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("ConfirmBooking error = %v, want ErrSlotTaken", err)
	}
	// The session survives so the client can pick another slot.
	if _, err := svc.loadSession(ctx, session.SessionID); err != nil {
		t.Errorf("session dropped after losing the slot race: %v", err)
	}
}

func TestConfirmReusesReturningClient(t *testing.T) {
	returning := &models.Client{ID: "cli-9", ProfessionalID: "pro-1", Name: "João Silva", Phone: "+55 11 91234-5678"}
	clients := &fakeClients{byPhone: map[string]*models.Client{returning.Phone: returning}}
	appts := &fakeAppointments{}
	svc, professional := newTestService(appts, clients, &countingRecorder{})
	ctx := context.Background()

	session := walkToClientInfo(t, svc, professional, futureDate())
	session, err := svc.AdvanceSession(ctx, session.SessionID, EventSubmitClientInfo, SessionInput{
		ClientName:  "João Silva",
		ClientPhone: returning.Phone,
	})
	if err != nil {
		t.Fatalf("AdvanceSession: %v", err)
	}

	appointment, err := svc.ConfirmBooking(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if appointment.ClientID != "cli-9" {
		t.Errorf("client ID = %q, want cli-9", appointment.ClientID)
	}
	if len(clients.created) != 0 {
		t.Errorf("created %d clients for a returning phone number", len(clients.created))
	}
}

func TestAdvanceUnknownSession(t *testing.T) {
	svc, _ := newTestService(&fakeAppointments{}, &fakeClients{byPhone: map[string]*models.Client{}}, &countingRecorder{})
	if _, err := svc.AdvanceSession(context.Background(), "missing", EventSelectTeamMember, SessionInput{}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
}
