// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	checklistModel "anadash_backend/internals/features/checklists/model"
	eventModel "anadash_backend/internals/features/events/model"
	locationModel "anadash_backend/internals/features/locations/model"
	participantModel "anadash_backend/internals/features/participants/model"
	partnerModel "anadash_backend/internals/features/partners/model"
	syncModel "anadash_backend/internals/features/sync/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel.
// Urutan: parent dulu (partners, locations) baru dependent.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Menjalankan auto-migration...")
	return db.AutoMigrate(
		&partnerModel.PartnerModel{},
		&locationModel.LocationModel{},
		&eventModel.EventModel{},
		&eventModel.ParticipantGroupModel{},
		&participantModel.ParticipantModel{},
		&participantModel.FarmerModel{},
		&participantModel.ExtensionAgentModel{},
		&checklistModel.ScalingChecklistModel{},
		&syncModel.SyncRunModel{},
		&syncModel.EntitySyncStatusModel{},
	)
}
