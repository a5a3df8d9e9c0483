// File: services/catalog/clients.go
package catalog

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
)

// ClientInput is the create/update payload for a client record managed from
// the dashboard. Public bookings create clients through the booking flow
// instead.
type ClientInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (s *DefaultCatalogService) CreateClient(ctx context.Context, professionalID string, input ClientInput) (*models.Client, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	client := &models.Client{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Notes:          input.Notes,
		CreatedAt:      time.Now(),
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "client.create",
		"clients", client.ID, nil)
	return client, nil
}

func (s *DefaultCatalogService) UpdateClient(ctx context.Context, professionalID, id string, input ClientInput) (*models.Client, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	client, err := s.Clients.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if client == nil {
		return nil, ErrNotFound
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Notes = input.Notes
	if err := s.Clients.Update(ctx, professionalID, id, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "client.update",
		"clients", id, nil)
	return client, nil
}

func (s *DefaultCatalogService) ListClients(ctx context.Context, professionalID string) ([]models.Client, error) {
	clients, err := s.Clients.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *DefaultCatalogService) DeleteClient(ctx context.Context, professionalID, id string) error {
	if err := s.Clients.Delete(ctx, professionalID, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "client.delete",
		"clients", id, nil)
	return nil
}
