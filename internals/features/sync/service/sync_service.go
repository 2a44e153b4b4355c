// file: internals/features/sync/service/sync_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"anadash_backend/internals/configs"
	"anadash_backend/internals/constants"
	partnerModel "anadash_backend/internals/features/partners/model"
	"anadash_backend/internals/features/sync/client"
	"anadash_backend/internals/features/sync/model"
	"anadash_backend/internals/features/sync/processor"

	"gorm.io/gorm"
)

/* ======================================================
   OrchestrationError: kegagalan di luar scope per-record /
   per-type — run langsung gagal total.
====================================================== */

type OrchestrationError struct {
	Reason string
	Err    error
}

func (e *OrchestrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("orchestration error: %s: %v", e.Reason, e.Err)
	}
	return "orchestration error: " + e.Reason
}

func (e *OrchestrationError) Unwrap() error { return e.Err }

/* ======================================================
   Hasil run
====================================================== */

type PullResult struct {
	RunID            string              `json:"run_id"`
	Status           model.SyncRunStatus `json:"status"`
	Partners         int                 `json:"partners"`
	Events           int                 `json:"events"`
	Participants     int                 `json:"participants"`
	ExtensionAgents  int                 `json:"extension_agents"`
	Farmers          int                 `json:"farmers"`
	Checklists       int                 `json:"checklists"`
	RecordsProcessed int                 `json:"records_processed"`
	RecordsFailed    int                 `json:"records_failed"`
	Errors           []string            `json:"errors"`
}

func (r *PullResult) countFor(formType string) *int {
	switch formType {
	case constants.FormTypePartners:
		return &r.Partners
	case constants.FormTypeEvents:
		return &r.Events
	case constants.FormTypeParticipants:
		return &r.Participants
	case constants.FormTypeExtensionAgents:
		return &r.ExtensionAgents
	case constants.FormTypeFarmers:
		return &r.Farmers
	case constants.FormTypeChecklist:
		return &r.Checklists
	}
	return nil
}

type PushResult struct {
	RunID     string              `json:"run_id"`
	Status    model.SyncRunStatus `json:"status"`
	Submitted int                 `json:"submitted"`
	Failed    int                 `json:"failed"`
	Errors    []string            `json:"errors"`
}

/* ======================================================
   SyncService (orchestrator)
====================================================== */

type SyncService struct {
	DB     *gorm.DB
	Source client.FormSource

	// Now bisa diinject di test; default time.Now.
	Now func() time.Time
	// Run in_progress lebih tua dari ini dianggap stale (crash lama)
	// dan tidak memblokir run baru.
	StaleRunAfter time.Duration
}

func NewSyncService(db *gorm.DB, source client.FormSource) *SyncService {
	return &SyncService{
		DB:            db,
		Source:        source,
		Now:           time.Now,
		StaleRunAfter: 30 * time.Minute,
	}
}

// NewSyncServiceForPartner: token API milik partner dipakai kalau ada,
// kalau kosong fallback ke token global dari env.
func NewSyncServiceForPartner(db *gorm.DB, p *partnerModel.PartnerModel) *SyncService {
	token := configs.OnaAPIToken
	if p != nil && p.PartnerAPIToken != nil && *p.PartnerAPIToken != "" {
		token = *p.PartnerAPIToken
	}
	return NewSyncService(db, client.NewOnaClient(token))
}

// PullFromSource menarik semua form type (atau satu, kalau formType
// bukan "all") untuk satu partner, urut parent → dependent.
//
// State machine run: in_progress → success | partial | failed.
// Ledger selalu difinalisasi, apapun hasilnya.
func (s *SyncService) PullFromSource(ctx context.Context, partner *partnerModel.PartnerModel, formType string) (*PullResult, error) {
	if partner == nil {
		return nil, &OrchestrationError{Reason: "partner tidak boleh nil"}
	}
	if !constants.IsKnownFormType(formType) {
		return nil, &OrchestrationError{Reason: "form type tidak dikenal: " + formType}
	}

	// Guard eksklusi: tolak run baru selama masih ada run pull
	// in_progress yang belum stale untuk partner yang sama.
	if err := s.rejectIfRunning(partner); err != nil {
		return nil, err
	}

	runStart := s.Now()
	run := model.SyncRunModel{
		SyncRunPartnerID: partner.PartnerID,
		SyncRunDirection: model.SyncDirectionPull,
		SyncRunStartTime: runStart,
		SyncRunStatus:    model.SyncRunStatusInProgress,
	}
	if err := s.DB.Create(&run).Error; err != nil {
		return nil, &OrchestrationError{Reason: "gagal membuat sync run", Err: err}
	}

	result := &PullResult{RunID: run.SyncRunID.String(), Status: model.SyncRunStatusInProgress}

	// Finalisasi ledger dijamin jalan, termasuk saat panic di tengah.
	defer s.finalizeRun(&run, result)

	types := constants.SyncFormTypeOrder
	if formType != constants.FormTypeAll {
		types = []string{formType}
	}

	for _, t := range types {
		// Cek pembatalan kooperatif antar batch entity type.
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("run dibatalkan sebelum %s: %v", t, err))
			break
		}

		formID := client.ResolveFormID(t)
		if formID == "" {
			log.Printf("[INFO] Form type %s tidak punya form id, dilewati", t)
			continue
		}

		s.syncEntityType(ctx, partner, &run, t, formID, result)
	}

	s.resolveStatus(result)

	// Cursor hanya maju saat success/partial, dan tidak pernah mundur.
	if result.Status == model.SyncRunStatusSuccess || result.Status == model.SyncRunStatusPartial {
		if partner.AdvanceLastSync(runStart) {
			if err := s.DB.Model(partner).
				Update("partner_last_sync", partner.PartnerLastSync).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("gagal memajukan cursor: %v", err))
			}
		}
	}

	return result, nil
}

// syncEntityType: satu batch form type — fetch, lalu proses semua record
// di dalam SATU transaksi supaya crash di tengah tidak meninggalkan
// ledger sukses dengan tulisan setengah jadi.
func (s *SyncService) syncEntityType(ctx context.Context, partner *partnerModel.PartnerModel, run *model.SyncRunModel, formType, formID string, result *PullResult) {
	status := model.EntitySyncStatusModel{
		EntitySyncStatusRunID:     run.SyncRunID,
		EntitySyncStatusPartnerID: partner.PartnerID,
		EntitySyncStatusFormType:  formType,
		EntitySyncStatusState:     model.EntitySyncPending,
	}
	if err := s.DB.Create(&status).Error; err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: gagal membuat entity status: %v", formType, err))
		return
	}
	s.DB.Model(&status).Update("entity_sync_status_state", model.EntitySyncInProgress)

	records, err := s.Source.FetchFormData(ctx, formID, partner.PartnerLastSync)
	if err != nil {
		// Transport error: batch type ini dilewati, type lain tetap jalan.
		msg := fmt.Sprintf("%s: fetch gagal: %v", formType, err)
		log.Printf("[ERROR] %s", msg)
		result.Errors = append(result.Errors, msg)
		s.completeEntityStatus(&status, model.EntitySyncFailed, 0, 0, msg)
		return
	}

	processed := 0
	failed := 0
	var typeErrs []string

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			// Savepoint per record (nested Transaction): statement gagal
			// di Postgres membuat transaksi aborted, jadi tulisan record
			// yang rusak harus di-rollback sendiri tanpa membawa record
			// lain yang sudah berhasil.
			err := tx.Transaction(func(rtx *gorm.DB) error {
				return s.processRecord(rtx, partner, formType, rec, result)
			})
			if err != nil {
				failed++
				typeErrs = append(typeErrs, fmt.Sprintf("%s %s: %v", formType, rec.ExternalID(), err))
				continue
			}
			processed++
		}
		return nil
	})
	if txErr != nil {
		msg := fmt.Sprintf("%s: transaksi batch gagal: %v", formType, txErr)
		log.Printf("[ERROR] %s", msg)
		result.Errors = append(result.Errors, msg)
		s.completeEntityStatus(&status, model.EntitySyncFailed, 0, 0, msg)
		return
	}

	result.RecordsProcessed += processed
	result.RecordsFailed += failed
	result.Errors = append(result.Errors, typeErrs...)
	if c := result.countFor(formType); c != nil {
		*c += processed
	}

	state := model.EntitySyncCompleted
	if processed == 0 && failed > 0 {
		state = model.EntitySyncFailed
	}
	errMsg := ""
	if failed > 0 {
		errMsg = strings.Join(typeErrs, "\n")
	}
	s.completeEntityStatus(&status, state, processed, failed, errMsg)
}

// processRecord: error per-record (validasi, integrity, dsb) dicatat dan
// TIDAK menghentikan record lain.
func (s *SyncService) processRecord(tx *gorm.DB, partner *partnerModel.PartnerModel, formType string, rec processor.RawRecord, result *PullResult) error {
	switch formType {
	case constants.FormTypePartners:
		_, err := processor.NewPartnerProcessor(tx).Process(rec)
		return err

	case constants.FormTypeEvents:
		_, groupErrs, err := processor.NewEventProcessor(tx, partner).Process(rec)
		if err != nil {
			return err
		}
		// Kegagalan sub-group tidak membatalkan event-nya, cuma dicatat.
		for _, ge := range groupErrs {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %s: %s", formType, rec.ExternalID(), ge))
		}
		return nil

	case constants.FormTypeParticipants:
		saved, subErrs, err := processor.NewParticipantProcessor(tx, partner).Process(rec)
		if err != nil {
			return err
		}
		for _, se := range subErrs {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %s: %s", formType, rec.ExternalID(), se))
		}
		if len(saved) == 0 && len(subErrs) > 0 {
			return fmt.Errorf("semua sub-record gagal (%d error)", len(subErrs))
		}
		return nil

	case constants.FormTypeExtensionAgents:
		_, err := processor.NewExtensionAgentProcessor(tx, partner).Process(rec)
		return err

	case constants.FormTypeFarmers:
		_, err := processor.NewFarmerProcessor(tx, partner).Process(rec)
		return err

	case constants.FormTypeChecklist:
		_, err := processor.NewChecklistProcessor(tx, partner).Process(rec)
		return err
	}
	return fmt.Errorf("form type tidak dikenal: %s", formType)
}

// PushToSource: arah push — iterasi payload lokal untuk satu form type,
// submit satu-satu, hitung submitted/failed. Record lokal tidak pernah
// dimutasi gara-gara submit gagal.
func (s *SyncService) PushToSource(ctx context.Context, partner *partnerModel.PartnerModel, formType string, payloads []map[string]any) (*PushResult, error) {
	if partner == nil {
		return nil, &OrchestrationError{Reason: "partner tidak boleh nil"}
	}
	formID := client.ResolveFormID(formType)
	if formID == "" {
		return nil, &OrchestrationError{Reason: "form type tanpa form id: " + formType}
	}

	run := model.SyncRunModel{
		SyncRunPartnerID: partner.PartnerID,
		SyncRunDirection: model.SyncDirectionPush,
		SyncRunStartTime: s.Now(),
		SyncRunStatus:    model.SyncRunStatusInProgress,
	}
	if err := s.DB.Create(&run).Error; err != nil {
		return nil, &OrchestrationError{Reason: "gagal membuat sync run", Err: err}
	}

	result := &PushResult{RunID: run.SyncRunID.String(), Status: model.SyncRunStatusInProgress}
	defer s.finalizePushRun(&run, result)

	for i, payload := range payloads {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("push dibatalkan di payload %d: %v", i, err))
			break
		}
		if err := s.Source.SubmitFormData(ctx, formID, payload); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("payload %d: %v", i, err))
			continue
		}
		result.Submitted++
	}

	switch {
	case len(result.Errors) == 0:
		result.Status = model.SyncRunStatusSuccess
	case result.Submitted > 0:
		result.Status = model.SyncRunStatusPartial
	default:
		result.Status = model.SyncRunStatusFailed
	}
	return result, nil
}

/* ======================================================
   Ledger helpers
====================================================== */

func (s *SyncService) rejectIfRunning(partner *partnerModel.PartnerModel) error {
	var count int64
	cutoff := s.Now().Add(-s.StaleRunAfter)
	err := s.DB.Model(&model.SyncRunModel{}).
		Where("sync_run_partner_id = ? AND sync_run_status = ? AND sync_run_start_time > ?",
			partner.PartnerID, model.SyncRunStatusInProgress, cutoff).
		Count(&count).Error
	if err != nil {
		return &OrchestrationError{Reason: "gagal cek run aktif", Err: err}
	}
	if count > 0 {
		return &OrchestrationError{Reason: "sync masih berjalan untuk partner " + partner.PartnerName}
	}
	return nil
}

func (s *SyncService) resolveStatus(result *PullResult) {
	switch {
	case len(result.Errors) == 0:
		result.Status = model.SyncRunStatusSuccess
	case result.RecordsProcessed > 0:
		result.Status = model.SyncRunStatusPartial
	default:
		// tidak ada satu record pun yang masuk — run gagal, cursor diam.
		result.Status = model.SyncRunStatusFailed
	}
}

func (s *SyncService) finalizeRun(run *model.SyncRunModel, result *PullResult) {
	if result.Status == model.SyncRunStatusInProgress {
		// keluar lewat panic sebelum status sempat dihitung
		s.resolveStatus(result)
		if result.Status == model.SyncRunStatusSuccess && result.RecordsProcessed == 0 {
			result.Status = model.SyncRunStatusFailed
		}
	}
	end := s.Now()
	updates := map[string]any{
		"sync_run_status":            result.Status,
		"sync_run_end_time":          end,
		"sync_run_records_processed": result.RecordsProcessed,
		"sync_run_errors":            strings.Join(result.Errors, "\n"),
	}
	if err := s.DB.Model(run).Updates(updates).Error; err != nil {
		// Finalisasi ledger gagal — angkat ke operator lewat log; status
		// di memori tetap benar untuk response.
		log.Printf("[ERROR] Gagal finalisasi sync run %s: %v", run.SyncRunID, err)
	}
	run.SyncRunStatus = result.Status
	run.SyncRunEndTime = &end
}

func (s *SyncService) finalizePushRun(run *model.SyncRunModel, result *PushResult) {
	if result.Status == model.SyncRunStatusInProgress {
		result.Status = model.SyncRunStatusFailed
	}
	end := s.Now()
	updates := map[string]any{
		"sync_run_status":            result.Status,
		"sync_run_end_time":          end,
		"sync_run_records_processed": result.Submitted,
		"sync_run_errors":            strings.Join(result.Errors, "\n"),
	}
	if err := s.DB.Model(run).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal finalisasi push run %s: %v", run.SyncRunID, err)
	}
	run.SyncRunStatus = result.Status
	run.SyncRunEndTime = &end
}

func (s *SyncService) completeEntityStatus(status *model.EntitySyncStatusModel, state model.EntitySyncState, processed, failed int, errMsg string) {
	now := s.Now()
	updates := map[string]any{
		"entity_sync_status_state":             state,
		"entity_sync_status_records_processed": processed,
		"entity_sync_status_records_failed":    failed,
		"entity_sync_status_error_message":     errMsg,
		"entity_sync_status_completed_at":      now,
	}
	if err := s.DB.Model(status).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal update entity sync status %s: %v", status.EntitySyncStatusID, err)
	}
}
