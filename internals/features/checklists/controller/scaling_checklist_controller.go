// file: internals/features/checklists/controller/scaling_checklist_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anadash_backend/internals/features/checklists/model"
	helper "anadash_backend/internals/helpers"
)

type ScalingChecklistController struct {
	DB *gorm.DB
}

func NewScalingChecklistController(db *gorm.DB) *ScalingChecklistController {
	return &ScalingChecklistController{DB: db}
}

func (ctrl *ScalingChecklistController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ScalingChecklistModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("scaling_checklist_partner_id = ?", id)
	}
	if mel := strings.TrimSpace(c.Query("has_mel_system")); mel != "" {
		q = q.Where("scaling_checklist_has_mel_system = ?", mel == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung checklist")
	}

	var checklists []model.ScalingChecklistModel
	if err := q.Order("scaling_checklist_submission_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&checklists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data checklist")
	}

	return helper.JsonList(c, "Daftar scaling checklist", checklists,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *ScalingChecklistController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID checklist bukan UUID valid")
	}

	var checklist model.ScalingChecklistModel
	if err := ctrl.DB.First(&checklist, "scaling_checklist_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Checklist tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data checklist")
	}

	return helper.JsonOK(c, "Detail scaling checklist", checklist)
}
