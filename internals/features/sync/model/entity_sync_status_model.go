// file: internals/features/sync/model/entity_sync_status_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntitySyncState string

const (
	EntitySyncPending    EntitySyncState = "pending"
	EntitySyncInProgress EntitySyncState = "in_progress"
	EntitySyncCompleted  EntitySyncState = "completed"
	EntitySyncFailed     EntitySyncState = "failed"
)

// EntitySyncStatusModel: ledger granular — satu baris per
// (partner, form type) per attempt.
type EntitySyncStatusModel struct {
	EntitySyncStatusID uuid.UUID `gorm:"column:entity_sync_status_id;type:uuid;primaryKey" json:"entity_sync_status_id"`

	EntitySyncStatusRunID     uuid.UUID `gorm:"column:entity_sync_status_run_id;type:uuid;not null;index" json:"entity_sync_status_run_id"`
	EntitySyncStatusPartnerID uuid.UUID `gorm:"column:entity_sync_status_partner_id;type:uuid;not null;index" json:"entity_sync_status_partner_id"`
	EntitySyncStatusFormType  string    `gorm:"column:entity_sync_status_form_type;type:varchar(50);not null" json:"entity_sync_status_form_type"`

	EntitySyncStatusState EntitySyncState `gorm:"column:entity_sync_status_state;type:varchar(20);not null" json:"entity_sync_status_state"`

	EntitySyncStatusRecordsProcessed int    `gorm:"column:entity_sync_status_records_processed;not null;default:0" json:"entity_sync_status_records_processed"`
	EntitySyncStatusRecordsFailed    int    `gorm:"column:entity_sync_status_records_failed;not null;default:0" json:"entity_sync_status_records_failed"`
	EntitySyncStatusErrorMessage     string `gorm:"column:entity_sync_status_error_message;type:text" json:"entity_sync_status_error_message"`

	EntitySyncStatusStartedAt   time.Time  `gorm:"column:entity_sync_status_started_at;autoCreateTime" json:"entity_sync_status_started_at"`
	EntitySyncStatusCompletedAt *time.Time `gorm:"column:entity_sync_status_completed_at" json:"entity_sync_status_completed_at,omitempty"`
}

func (EntitySyncStatusModel) TableName() string { return "entity_sync_statuses" }

func (s *EntitySyncStatusModel) BeforeCreate(tx *gorm.DB) error {
	if s.EntitySyncStatusID == uuid.Nil {
		s.EntitySyncStatusID = uuid.New()
	}
	return nil
}
