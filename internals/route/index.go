// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"anadash_backend/internals/configs"
	checklistRoute "anadash_backend/internals/features/checklists/route"
	eventRoute "anadash_backend/internals/features/events/route"
	participantRoute "anadash_backend/internals/features/participants/route"
	partnerRoute "anadash_backend/internals/features/partners/route"
	syncRoute "anadash_backend/internals/features/sync/route"
	authMiddleware "anadash_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE (tanpa auth) =====================
	BaseRoutes(app, db)

	// ===================== API (JWT) =====================
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up PartnerRoutes...")
	partnerRoute.PartnerRoutes(api, db)

	log.Println("[INFO] Setting up SyncRoutes...")
	syncRoute.SyncRoutes(api, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(api, db)

	log.Println("[INFO] Setting up ParticipantRoutes...")
	participantRoute.ParticipantRoutes(api, db)

	log.Println("[INFO] Setting up ScalingChecklistRoutes...")
	checklistRoute.ScalingChecklistRoutes(api, db)
}
