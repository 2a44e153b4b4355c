// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "anadash_backend/internals/features/events/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.List)
	events.Get("/:id", ctrl.GetByID)
}
