package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used fields in queries.
//
// The partial unique index over (professional, team member, date, start) for
// non-canceled statuses is what turns two clients confirming the same slot
// simultaneously into one success and one duplicate-key failure. The
// availability engine only prevents presenting a taken slot; this index is
// the write-path authority.
func (r *mongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slotClaimOpts := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": bson.A{models.AppointmentScheduled, models.AppointmentCompleted}},
		})
	slotClaimIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "professional_id", Value: 1},
			{Key: "team_member_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "start_time", Value: 1},
		},
		Options: slotClaimOpts,
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		slotClaimIdx,
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
