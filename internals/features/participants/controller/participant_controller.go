// file: internals/features/participants/controller/participant_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anadash_backend/internals/features/participants/model"
	helper "anadash_backend/internals/helpers"
)

type ParticipantController struct {
	DB *gorm.DB
}

func NewParticipantController(db *gorm.DB) *ParticipantController {
	return &ParticipantController{DB: db}
}

/* ======================================================
   GET /api/participants
====================================================== */

func (ctrl *ParticipantController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ParticipantModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("participant_partner_id = ?", id)
	}
	if eid := strings.TrimSpace(c.Query("event_id")); eid != "" {
		id, err := uuid.Parse(eid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "event_id bukan UUID valid")
		}
		q = q.Where("participant_event_id = ?", id)
	}
	if g := strings.ToLower(strings.TrimSpace(c.Query("gender"))); g != "" {
		if !model.Gender(g).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "gender harus male/female")
		}
		q = q.Where("participant_gender = ?", g)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung peserta")
	}

	var participants []model.ParticipantModel
	if err := q.Order("participant_submission_time DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&participants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data peserta")
	}

	return helper.JsonList(c, "Daftar peserta", participants,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================================================
   GET /api/participants/:id
====================================================== */

// Detail peserta, plus ekstensi farmer / extension agent kalau ada.
func (ctrl *ParticipantController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID peserta bukan UUID valid")
	}

	var participant model.ParticipantModel
	if err := ctrl.DB.First(&participant, "participant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peserta tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data peserta")
	}

	resp := fiber.Map{"participant": participant}

	var farmer model.FarmerModel
	err = ctrl.DB.First(&farmer, "farmer_participant_id = ?", participant.ParticipantID).Error
	if err == nil {
		resp["farmer"] = farmer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data farmer")
	}

	var agent model.ExtensionAgentModel
	err = ctrl.DB.First(&agent, "extension_agent_participant_id = ?", participant.ParticipantID).Error
	if err == nil {
		resp["extension_agent"] = agent
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data extension agent")
	}

	return helper.JsonOK(c, "Detail peserta", resp)
}

/* ======================================================
   GET /api/farmers
====================================================== */

func (ctrl *ParticipantController) ListFarmers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FarmerModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("farmer_partner_id = ?", id)
	}
	if src := strings.TrimSpace(c.Query("registration_source")); src != "" {
		q = q.Where("farmer_registration_source = ?", src)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung farmer")
	}

	var farmers []model.FarmerModel
	if err := q.Order("farmer_registration_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&farmers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data farmer")
	}

	return helper.JsonList(c, "Daftar farmer", farmers,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================================================
   GET /api/extension-agents
====================================================== */

func (ctrl *ParticipantController) ListExtensionAgents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ExtensionAgentModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("extension_agent_partner_id = ?", id)
	}
	if certified := strings.TrimSpace(c.Query("is_certified")); certified != "" {
		q = q.Where("extension_agent_is_certified = ?", certified == "true")
	}
	if org := strings.TrimSpace(c.Query("organization_type")); org != "" {
		q = q.Where("extension_agent_organization_type = ?", org)
	}
	if minEdu := strings.TrimSpace(c.Query("min_education")); minEdu != "" {
		lvl := model.EducationLevel(strings.ToLower(minEdu))
		if !lvl.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "min_education tidak dikenal (primary/secondary/tertiary)")
		}
		q = q.Where("extension_agent_education_level IN ?", model.EducationLevelsAtLeast(lvl))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung extension agent")
	}

	var agents []model.ExtensionAgentModel
	if err := q.Order("extension_agent_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&agents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data extension agent")
	}

	return helper.JsonList(c, "Daftar extension agent", agents,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
