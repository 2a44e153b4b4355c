// file: internals/features/checklists/route/scaling_checklist_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checklistController "anadash_backend/internals/features/checklists/controller"
)

func ScalingChecklistRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := checklistController.NewScalingChecklistController(db)

	checklists := api.Group("/checklists")
	checklists.Get("/", ctrl.List)
	checklists.Get("/:id", ctrl.GetByID)
}
