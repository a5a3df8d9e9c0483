// File: handlers/bundle.go
package handlers

import (
	professionalRepo "agendly/database/repository/professional"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the endpoint handlers plus the pieces the route
// middleware needs (auth lookups, maintenance flag client).
type HandlerBundle struct {
	ProfessionalRepo professionalRepo.ProfessionalRepository
	AuthCache        *utils.Cache
	MaintenanceRedis *redis.Client

	Professional *ProfessionalHandler
	Catalog      *CatalogHandler
	Schedule     *ScheduleHandler
	Public       *PublicHandler
	Admin        *AdminHandler
}
