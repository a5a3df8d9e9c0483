// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an insert loses the race for a slot: the
// partial unique index rejects a second non-canceled appointment with the
// same calendar, date and start time.
var ErrSlotTaken = errors.New("appointment slot already taken")

type AppointmentRepository interface {
	// Create inserts the appointment, failing with ErrSlotTaken if the slot
	// was concurrently claimed.
	Create(ctx context.Context, a *models.Appointment) error
	GetByID(ctx context.Context, professionalID, id string) (*models.Appointment, error)
	// ListByDate returns appointments occupying windows on one calendar date.
	// Canceled appointments are excluded: they no longer occupy their slot.
	ListByDate(ctx context.Context, professionalID, teamMemberID, date string) ([]models.Appointment, error)
	ListByRange(ctx context.Context, professionalID, fromDate, toDate string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, professionalID, id, status string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs the Mongo-backed repository and ensures
// its indexes exist.
func NewMongoAppointmentRepo() AppointmentRepository {
	r := &mongoAppointmentRepo{coll: database.DB().Collection("appointments")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
