// file: internals/features/partners/controller/partner_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checklistModel "anadash_backend/internals/features/checklists/model"
	eventModel "anadash_backend/internals/features/events/model"
	participantModel "anadash_backend/internals/features/participants/model"
	"anadash_backend/internals/features/partners/dto"
	"anadash_backend/internals/features/partners/model"
	syncModel "anadash_backend/internals/features/sync/model"
	helper "anadash_backend/internals/helpers"
)

type PartnerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{DB: db, Validate: validator.New()}
}

/* ======================================================
   GET /api/partners
====================================================== */

func (ctrl *PartnerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PartnerModel{})

	if country := strings.ToUpper(strings.TrimSpace(c.Query("country"))); country != "" {
		q = q.Where("partner_country = ?", country)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		q = q.Where("partner_is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(partner_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung partner")
	}

	var partners []model.PartnerModel
	if err := q.Order("partner_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data partner")
	}

	items := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		items = append(items, dto.ToPartnerResponse(&partners[i]))
	}

	return helper.JsonList(c, "Daftar partner", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================================================
   GET /api/partners/:id
====================================================== */

func (ctrl *PartnerController) GetByID(c *fiber.Ctx) error {
	partner, err := ctrl.findByParam(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail partner", dto.ToPartnerResponse(partner))
}

/* ======================================================
   POST /api/partners
====================================================== */

func (ctrl *PartnerController) Create(c *fiber.Ctx) error {
	var req dto.CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	partner := req.ToModel()
	if err := ctrl.DB.Create(partner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Partner dengan odk_id tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat partner")
	}

	return helper.JsonCreated(c, "Partner berhasil dibuat", dto.ToPartnerResponse(partner))
}

/* ======================================================
   PUT /api/partners/:id
====================================================== */

func (ctrl *PartnerController) Update(c *fiber.Ctx) error {
	partner, err := ctrl.findByParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	updates := req.Apply(partner)
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToPartnerResponse(partner))
	}

	if err := ctrl.DB.Model(partner).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update partner")
	}

	// baca ulang biar response konsisten dengan isi DB
	if err := ctrl.DB.First(partner, "partner_id = ?", partner.PartnerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal baca ulang partner")
	}

	return helper.JsonUpdated(c, "Partner berhasil diupdate", dto.ToPartnerResponse(partner))
}

/* ======================================================
   GET /api/partners/:id/statistics
====================================================== */

func (ctrl *PartnerController) Statistics(c *fiber.Ctx) error {
	partner, err := ctrl.findByParam(c)
	if err != nil {
		return err
	}

	stats := dto.PartnerStatisticsResponse{
		PartnerID:   partner.PartnerID.String(),
		PartnerName: partner.PartnerName,
		LastSync:    partner.PartnerLastSync,
	}

	counts := []struct {
		model any
		where string
		dst   *int64
	}{
		{&eventModel.EventModel{}, "event_partner_id = ?", &stats.Events},
		{&participantModel.ParticipantModel{}, "participant_partner_id = ?", &stats.Participants},
		{&participantModel.FarmerModel{}, "farmer_partner_id = ?", &stats.Farmers},
		{&participantModel.ExtensionAgentModel{}, "extension_agent_partner_id = ?", &stats.ExtensionAgents},
		{&checklistModel.ScalingChecklistModel{}, "scaling_checklist_partner_id = ?", &stats.Checklists},
	}
	for _, cnt := range counts {
		if err := ctrl.DB.Model(cnt.model).
			Where(cnt.where, partner.PartnerID).
			Count(cnt.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung statistik")
		}
	}
	stats.TotalParticipants = stats.Participants

	if err := ctrl.DB.Model(&syncModel.SyncRunModel{}).
		Where("sync_run_partner_id = ?", partner.PartnerID).
		Count(&stats.TotalRuns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung sync run")
	}
	if err := ctrl.DB.Model(&syncModel.SyncRunModel{}).
		Where("sync_run_partner_id = ? AND sync_run_status = ?",
			partner.PartnerID, syncModel.SyncRunStatusFailed).
		Count(&stats.FailedRuns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung run gagal")
	}

	var lastRun syncModel.SyncRunModel
	err2 := ctrl.DB.
		Where("sync_run_partner_id = ?", partner.PartnerID).
		Order("sync_run_start_time DESC").
		First(&lastRun).Error
	if err2 == nil {
		stats.LastRunStatus = string(lastRun.SyncRunStatus)
		t := lastRun.SyncRunStartTime
		stats.LastRunStartTime = &t
	} else if !errors.Is(err2, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil run terakhir")
	}

	return helper.JsonOK(c, "Statistik partner", stats)
}

/* ======================================================
   util
====================================================== */

func (ctrl *PartnerController) findByParam(c *fiber.Ctx) (*model.PartnerModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID partner bukan UUID valid")
	}
	var partner model.PartnerModel
	if err := ctrl.DB.First(&partner, "partner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Partner tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data partner")
	}
	return &partner, nil
}

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
