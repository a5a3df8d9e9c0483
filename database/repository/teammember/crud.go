package teamRepo

import (
	"context"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

func (r *mongoTeamMemberRepo) Create(ctx context.Context, m *models.TeamMember) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *mongoTeamMemberRepo) GetByID(ctx context.Context, professionalID, id string) (*models.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var m models.TeamMember
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoTeamMemberRepo) ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{"professional_id": professionalID}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoTeamMemberRepo) CountByProfessional(ctx context.Context, professionalID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"professional_id": professionalID})
}

func (r *mongoTeamMemberRepo) Update(ctx context.Context, professionalID, id string, m *models.TeamMember) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"name":   m.Name,
		"role":   m.Role,
		"email":  m.Email,
		"active": m.Active,
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

func (r *mongoTeamMemberRepo) Delete(ctx context.Context, professionalID, id string) error {
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
