// file: internals/features/sync/route/sync_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syncController "anadash_backend/internals/features/sync/controller"
	"anadash_backend/internals/middlewares"
)

// SyncRoutes: endpoint orchestrator. Trigger dibatasi rate limiter
// sendiri supaya dashboard tidak bisa menumpuk run.
func SyncRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := syncController.NewSyncController(db)

	sync := api.Group("/sync")
	sync.Post("/trigger", middlewares.SyncTriggerRateLimiter(), ctrl.Trigger)
	sync.Get("/runs", ctrl.ListRuns)
	sync.Get("/runs/:id", ctrl.GetRunByID)
	sync.Get("/status", ctrl.Status)
}
