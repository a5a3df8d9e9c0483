// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

func (r *mongoAppointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, professionalID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var a models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAppointmentRepo) ListByDate(ctx context.Context, professionalID, teamMemberID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"status":          bson.M{"$ne": models.AppointmentCanceled},
	}
	if teamMemberID != "" {
		filter["team_member_id"] = teamMemberID
	} else {
		filter["$or"] = bson.A{
			bson.M{"team_member_id": ""},
			bson.M{"team_member_id": bson.M{"$exists": false}},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) ListByRange(ctx context.Context, professionalID, fromDate, toDate string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{
		"professional_id": professionalID,
		"date":            bson.M{"$gte": fromDate, "$lte": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, professionalID, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "professional_id": professionalID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
