// file: internals/features/partners/route/partner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partnerController "anadash_backend/internals/features/partners/controller"
)

func PartnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := partnerController.NewPartnerController(db)

	partners := api.Group("/partners")
	partners.Get("/", ctrl.List)
	partners.Post("/", ctrl.Create)
	partners.Get("/:id", ctrl.GetByID)
	partners.Put("/:id", ctrl.Update)
	partners.Get("/:id/statistics", ctrl.Statistics)
}
