package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dari handler (termasuk trigger sync)
// supaya server tidak mati; ledger run tetap difinalisasi lewat defer di
// service, jadi panic di tengah pull tidak meninggalkan run in_progress.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}
