// file: internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anadash_backend/internals/features/events/model"
	locationModel "anadash_backend/internals/features/locations/model"
	helper "anadash_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* ======================================================
   GET /api/events
====================================================== */

func (ctrl *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{})

	if pid := strings.TrimSpace(c.Query("partner_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "partner_id bukan UUID valid")
		}
		q = q.Where("event_partner_id = ?", id)
	}
	if et := strings.TrimSpace(c.Query("event_type")); et != "" {
		if !model.EventType(et).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "event_type tidak dikenal: "+et)
		}
		q = q.Where("event_type = ?", et)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus format YYYY-MM-DD")
		}
		q = q.Where("event_start_date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus format YYYY-MM-DD")
		}
		q = q.Where("event_start_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung event")
	}

	var events []model.EventModel
	if err := q.Order("event_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data event")
	}

	return helper.JsonList(c, "Daftar event", events,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================================================
   GET /api/events/:id
====================================================== */

// Detail event + lokasi + breakdown participant group per tipe.
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event bukan UUID valid")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data event")
	}

	var location locationModel.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", event.EventLocationID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil lokasi event")
	}

	var groups []model.ParticipantGroupModel
	if err := ctrl.DB.
		Where("participant_group_event_id = ?", event.EventID).
		Order("participant_group_type ASC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil participant group")
	}

	totalParticipants := 0
	for i := range groups {
		totalParticipants += groups[i].TotalCount()
	}

	return helper.JsonOK(c, "Detail event", fiber.Map{
		"event":              event,
		"location":           location,
		"participant_groups": groups,
		"total_participants": totalParticipants,
	})
}
