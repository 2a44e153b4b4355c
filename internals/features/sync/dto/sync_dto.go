// file: internals/features/sync/dto/sync_dto.go
package dto

import (
	"time"

	"anadash_backend/internals/features/sync/model"
)

/* ======================================================
   Request
====================================================== */

type SyncTriggerRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
	Direction string `json:"direction" validate:"required,oneof=pull push both"`
	// Kosong = "all" (semua form type, urut parent dulu).
	FormType string `json:"form_type" validate:"omitempty,max=50"`
	// Payload lokal yang mau dikirim saat direction push/both.
	Records []map[string]any `json:"records" validate:"omitempty,dive,required"`
}

func (r *SyncTriggerRequest) Normalize() {
	if r.FormType == "" {
		r.FormType = "all"
	}
}

/* ======================================================
   Response
====================================================== */

type SyncResults struct {
	Partners        int      `json:"partners"`
	Events          int      `json:"events"`
	Participants    int      `json:"participants"`
	ExtensionAgents int      `json:"extension_agents"`
	Farmers         int      `json:"farmers"`
	Checklists      int      `json:"checklists"`
	Submitted       int      `json:"submitted,omitempty"`
	Errors          []string `json:"errors"`
}

type SyncTriggerResponse struct {
	Success   bool                `json:"success"`
	RunID     string              `json:"run_id"`
	Status    model.SyncRunStatus `json:"status"`
	Results   SyncResults         `json:"results"`
	Timestamp time.Time           `json:"timestamp"`
}

type SyncRunResponse struct {
	SyncRunID        string              `json:"sync_run_id"`
	PartnerID        string              `json:"partner_id"`
	PartnerName      string              `json:"partner_name,omitempty"`
	Direction        model.SyncDirection `json:"direction"`
	Status           model.SyncRunStatus `json:"status"`
	StartTime        time.Time           `json:"start_time"`
	EndTime          *time.Time          `json:"end_time,omitempty"`
	RecordsProcessed int                 `json:"records_processed"`
	Errors           string              `json:"errors,omitempty"`
}

func ToSyncRunResponse(m *model.SyncRunModel) SyncRunResponse {
	return SyncRunResponse{
		SyncRunID:        m.SyncRunID.String(),
		PartnerID:        m.SyncRunPartnerID.String(),
		Direction:        m.SyncRunDirection,
		Status:           m.SyncRunStatus,
		StartTime:        m.SyncRunStartTime,
		EndTime:          m.SyncRunEndTime,
		RecordsProcessed: m.SyncRunRecordsProcessed,
		Errors:           m.SyncRunErrors,
	}
}

type EntitySyncStatusResponse struct {
	FormType         string                `json:"form_type"`
	State            model.EntitySyncState `json:"state"`
	RecordsProcessed int                   `json:"records_processed"`
	RecordsFailed    int                   `json:"records_failed"`
	ErrorMessage     string                `json:"error_message,omitempty"`
	StartedAt        time.Time             `json:"started_at"`
	CompletedAt      *time.Time            `json:"completed_at,omitempty"`
}

func ToEntitySyncStatusResponse(m *model.EntitySyncStatusModel) EntitySyncStatusResponse {
	return EntitySyncStatusResponse{
		FormType:         m.EntitySyncStatusFormType,
		State:            m.EntitySyncStatusState,
		RecordsProcessed: m.EntitySyncStatusRecordsProcessed,
		RecordsFailed:    m.EntitySyncStatusRecordsFailed,
		ErrorMessage:     m.EntitySyncStatusErrorMessage,
		StartedAt:        m.EntitySyncStatusStartedAt,
		CompletedAt:      m.EntitySyncStatusCompletedAt,
	}
}

// SyncStatusResponse: kondisi sinkronisasi terakhir satu partner.
type SyncStatusResponse struct {
	PartnerID   string                     `json:"partner_id"`
	PartnerName string                     `json:"partner_name"`
	LastSync    *time.Time                 `json:"last_sync,omitempty"`
	LatestRun   *SyncRunResponse           `json:"latest_run,omitempty"`
	Entities    []EntitySyncStatusResponse `json:"entities"`
}
