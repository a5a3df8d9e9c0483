// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

func (r *mongoTemplateRepo) Create(ctx context.Context, t *models.TimeSlotTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTemplateRepo) GetByID(ctx context.Context, professionalID, id string) (*models.TimeSlotTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var t models.TimeSlotTemplate
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTemplateRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.TimeSlotTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professional_id": professionalID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.TimeSlotTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *mongoTemplateRepo) ListForWeekday(ctx context.Context, professionalID, teamMemberID string, dayOfWeek int) ([]models.TimeSlotTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{"professional_id": professionalID, "day_of_week": dayOfWeek}
	if teamMemberID != "" {
		filter["team_member_id"] = teamMemberID
	} else {
		// The professional's own calendar: rules not bound to any team member.
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

	var templates []models.TimeSlotTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *mongoTemplateRepo) Update(ctx context.Context, professionalID, id string, t *models.TimeSlotTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"team_member_id":               t.TeamMemberID,
		"day_of_week":                  t.DayOfWeek,
		"start_time":                   t.StartTime,
		"end_time":                     t.EndTime,
		"appointment_duration_minutes": t.AppointmentDuration,
		"lunch_break_start":            t.LunchBreakStart,
		"lunch_break_end":              t.LunchBreakEnd,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "professional_id": professionalID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTemplateRepo) Delete(ctx context.Context, professionalID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "professional_id": professionalID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
