// file: internals/features/participants/route/participant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	participantController "anadash_backend/internals/features/participants/controller"
)

func ParticipantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := participantController.NewParticipantController(db)

	participants := api.Group("/participants")
	participants.Get("/", ctrl.List)
	participants.Get("/:id", ctrl.GetByID)

	api.Get("/farmers", ctrl.ListFarmers)
	api.Get("/extension-agents", ctrl.ListExtensionAgents)
}
