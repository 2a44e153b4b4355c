// file: internals/features/sync/controller/sync_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anadash_backend/internals/constants"
	partnerModel "anadash_backend/internals/features/partners/model"
	"anadash_backend/internals/features/sync/dto"
	"anadash_backend/internals/features/sync/model"
	"anadash_backend/internals/features/sync/service"
	helper "anadash_backend/internals/helpers"
)

type SyncController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSyncController(db *gorm.DB) *SyncController {
	return &SyncController{DB: db, Validate: validator.New()}
}

/* ======================================================
   POST /api/sync/trigger
====================================================== */

func (ctrl *SyncController) Trigger(c *fiber.Ctx) error {
	var req dto.SyncTriggerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}
	if !constants.IsKnownFormType(req.FormType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form type tidak dikenal: "+req.FormType)
	}
	if req.Direction != "pull" && req.FormType == constants.FormTypeAll {
		return helper.JsonError(c, fiber.StatusBadRequest, "Push butuh form_type spesifik, bukan all")
	}

	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
	}

	var partner partnerModel.PartnerModel
	if err := ctrl.DB.First(&partner, "partner_id = ?", partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partner tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data partner")
	}
	if !partner.PartnerIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Partner nonaktif, sync ditolak")
	}

	svc := service.NewSyncServiceForPartner(ctrl.DB, &partner)
	resp := dto.SyncTriggerResponse{Timestamp: time.Now()}

	if req.Direction == "pull" || req.Direction == "both" {
		pull, err := svc.PullFromSource(c.UserContext(), &partner, req.FormType)
		if err != nil {
			var oe *service.OrchestrationError
			if errors.As(err, &oe) && strings.Contains(oe.Reason, "masih berjalan") {
				return helper.JsonError(c, fiber.StatusConflict, oe.Reason)
			}
			log.Printf("[ERROR] Pull gagal untuk partner %s: %v", partner.PartnerName, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Sync pull gagal dijalankan")
		}
		resp.RunID = pull.RunID
		resp.Status = pull.Status
		resp.Results = dto.SyncResults{
			Partners:        pull.Partners,
			Events:          pull.Events,
			Participants:    pull.Participants,
			ExtensionAgents: pull.ExtensionAgents,
			Farmers:         pull.Farmers,
			Checklists:      pull.Checklists,
			Errors:          pull.Errors,
		}
	}

	if req.Direction == "push" || req.Direction == "both" {
		push, err := svc.PushToSource(c.UserContext(), &partner, req.FormType, req.Records)
		if err != nil {
			log.Printf("[ERROR] Push gagal untuk partner %s: %v", partner.PartnerName, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Sync push gagal dijalankan")
		}
		if resp.RunID == "" {
			resp.RunID = push.RunID
			resp.Status = push.Status
		}
		resp.Results.Submitted = push.Submitted
		resp.Results.Errors = append(resp.Results.Errors, push.Errors...)
	}

	if resp.Results.Errors == nil {
		resp.Results.Errors = []string{}
	}
	resp.Success = resp.Status != model.SyncRunStatusFailed

	return helper.JsonOK(c, "Sync selesai", resp)
}

/* ======================================================
   GET /api/sync/runs
====================================================== */

func (ctrl *SyncController) ListRuns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SyncRunModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("sync_run_partner_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("sync_run_status = ?", status)
	}
	if dir := strings.TrimSpace(c.Query("direction")); dir != "" {
		q = q.Where("sync_run_direction = ?", dir)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus RFC3339")
		}
		q = q.Where("sync_run_start_time >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus RFC3339")
		}
		q = q.Where("sync_run_start_time <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung sync runs")
	}

	var runs []model.SyncRunModel
	if err := q.Order("sync_run_start_time DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&runs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil sync runs")
	}

	items := make([]dto.SyncRunResponse, 0, len(runs))
	for i := range runs {
		items = append(items, dto.ToSyncRunResponse(&runs[i]))
	}

	return helper.JsonList(c, "Daftar sync run", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================================================
   GET /api/sync/runs/:id
====================================================== */

func (ctrl *SyncController) GetRunByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID run bukan UUID valid")
	}

	var run model.SyncRunModel
	if err := ctrl.DB.First(&run, "sync_run_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sync run tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil sync run")
	}

	var statuses []model.EntitySyncStatusModel
	if err := ctrl.DB.
		Where("entity_sync_status_run_id = ?", run.SyncRunID).
		Order("entity_sync_status_started_at ASC").
		Find(&statuses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil entity status")
	}

	entities := make([]dto.EntitySyncStatusResponse, 0, len(statuses))
	for i := range statuses {
		entities = append(entities, dto.ToEntitySyncStatusResponse(&statuses[i]))
	}

	return helper.JsonOK(c, "Detail sync run", fiber.Map{
		"run":      dto.ToSyncRunResponse(&run),
		"entities": entities,
	})
}

/* ======================================================
   GET /api/sync/status
====================================================== */

// Status: run terakhir per partner aktif plus breakdown per form type.
func (ctrl *SyncController) Status(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&partnerModel.PartnerModel{}).Where("partner_is_active = ?", true)
	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = ctrl.DB.Model(&partnerModel.PartnerModel{}).Where("partner_id = ?", id)
	}

	var partners []partnerModel.PartnerModel
	if err := q.Order("partner_name ASC").Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data partner")
	}

	out := make([]dto.SyncStatusResponse, 0, len(partners))
	for i := range partners {
		p := &partners[i]
		entry := dto.SyncStatusResponse{
			PartnerID:   p.PartnerID.String(),
			PartnerName: p.PartnerName,
			LastSync:    p.PartnerLastSync,
			Entities:    []dto.EntitySyncStatusResponse{},
		}

		var run model.SyncRunModel
		err := ctrl.DB.
			Where("sync_run_partner_id = ?", p.PartnerID).
			Order("sync_run_start_time DESC").
			First(&run).Error
		if err == nil {
			r := dto.ToSyncRunResponse(&run)
			entry.LatestRun = &r

			var statuses []model.EntitySyncStatusModel
			if err := ctrl.DB.
				Where("entity_sync_status_run_id = ?", run.SyncRunID).
				Order("entity_sync_status_started_at ASC").
				Find(&statuses).Error; err == nil {
				for j := range statuses {
					entry.Entities = append(entry.Entities, dto.ToEntitySyncStatusResponse(&statuses[j]))
				}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil run terakhir")
		}

		out = append(out, entry)
	}

	return helper.JsonOK(c, "Status sinkronisasi", out)
}

/* ======================================================
   util
====================================================== */

func validationMessages(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], "gagal validasi rule: "+fe.Tag())
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}
