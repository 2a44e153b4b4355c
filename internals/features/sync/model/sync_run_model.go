// file: internals/features/sync/model/sync_run_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Enum: SyncDirection & SyncRunStatus
====================================================== */

type SyncDirection string

const (
	SyncDirectionPull SyncDirection = "pull"
	SyncDirectionPush SyncDirection = "push"
)

type SyncRunStatus string

const (
	SyncRunStatusInProgress SyncRunStatus = "in_progress"
	SyncRunStatusSuccess    SyncRunStatus = "success"
	SyncRunStatusPartial    SyncRunStatus = "partial"
	SyncRunStatusFailed     SyncRunStatus = "failed"
)

// SyncRunModel: satu baris per invokasi orchestrator (ledger level run).
// Setelah difinalisasi baris ini tidak pernah diubah lagi (audit trail).
type SyncRunModel struct {
	SyncRunID uuid.UUID `gorm:"column:sync_run_id;type:uuid;primaryKey" json:"sync_run_id"`

	SyncRunPartnerID uuid.UUID     `gorm:"column:sync_run_partner_id;type:uuid;not null;index" json:"sync_run_partner_id"`
	SyncRunDirection SyncDirection `gorm:"column:sync_run_direction;type:varchar(10);not null" json:"sync_run_direction"`

	SyncRunStartTime time.Time  `gorm:"column:sync_run_start_time;not null;index" json:"sync_run_start_time"`
	SyncRunEndTime   *time.Time `gorm:"column:sync_run_end_time" json:"sync_run_end_time,omitempty"`

	SyncRunStatus SyncRunStatus `gorm:"column:sync_run_status;type:varchar(20);not null" json:"sync_run_status"`

	SyncRunRecordsProcessed int    `gorm:"column:sync_run_records_processed;not null;default:0" json:"sync_run_records_processed"`
	SyncRunErrors           string `gorm:"column:sync_run_errors;type:text" json:"sync_run_errors"`
}

func (SyncRunModel) TableName() string { return "sync_runs" }

func (r *SyncRunModel) BeforeCreate(tx *gorm.DB) error {
	if r.SyncRunID == uuid.Nil {
		r.SyncRunID = uuid.New()
	}
	return nil
}
