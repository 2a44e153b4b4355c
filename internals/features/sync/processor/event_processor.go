// file: internals/features/sync/processor/event_processor.go
package processor

import (
	"fmt"
	"strings"

	eventModel "anadash_backend/internals/features/events/model"
	partnerModel "anadash_backend/internals/features/partners/model"

	"gorm.io/gorm"
)

// EventProcessor memproses submission event AKILIMO / diseminasi.
type EventProcessor struct {
	DB      *gorm.DB
	Partner *partnerModel.PartnerModel
}

func NewEventProcessor(db *gorm.DB, partner *partnerModel.PartnerModel) *EventProcessor {
	return &EventProcessor{DB: db, Partner: partner}
}

// Process: validate → resolve location → upsert event by odk id (full
// overwrite) → proses participant groups. Kegagalan satu group tidak
// membatalkan group lain; daftar error per-group dikembalikan terpisah.
func (p *EventProcessor) Process(r RawRecord) (*eventModel.EventModel, []string, error) {
	if err := validateEvent(r); err != nil {
		return nil, nil, err
	}

	eventType := eventModel.EventType(strings.ToLower(r.GetString("eventDetails/event")))
	if !eventType.Valid() {
		return nil, nil, newValidationError([]string{
			fmt.Sprintf("event type tidak dikenal: %q", r.GetString("eventDetails/event")),
		})
	}

	format := eventModel.EventFormat(strings.ToLower(r.GetString("contentDetails/format")))
	switch format {
	case eventModel.EventFormatPaper, eventModel.EventFormatDigital, eventModel.EventFormatHybrid:
	case "":
		format = eventModel.EventFormatPaper
	default:
		return nil, nil, newValidationError([]string{
			fmt.Sprintf("format event tidak dikenal: %q", r.GetString("contentDetails/format")),
		})
	}

	loc, err := getOrCreateLocation(p.DB,
		r.GetString("eventLocation/hasc1"),
		r.GetString("eventLocation/hasc2"),
		r.GetString("eventLocation/city"),
		r.GetString("eventLocation/hasc1_name"),
		r.GetString("eventLocation/hasc2_name"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve location: %w", err)
	}

	startDate, _ := r.GetTime("eventLocation/startdate")
	endDate := startDate
	if r.Has("eventLocation/enddate") {
		endDate, _ = r.GetTime("eventLocation/enddate")
	}
	submissionTime, err := r.SubmissionTime()
	if err != nil {
		return nil, nil, newValidationError([]string{err.Error()})
	}

	assign := map[string]any{
		"event_partner_id":      p.Partner.PartnerID,
		"event_location_id":     loc.LocationID,
		"event_title":           r.GetString("contentDetails/title"),
		"event_type":            eventType,
		"event_format":          format,
		"event_venue":           r.GetString("eventLocation/venue"),
		"event_topics":          r.GetString("contentDetails/topics"),
		"event_use_case":        r.GetString("contentDetails/useCase"),
		"event_remarks":         r.GetString("remarks"),
		"event_start_date":      startDate,
		"event_end_date":        endDate,
		"event_odk_id":          r.ExternalID(),
		"event_odk_uuid":        r.UUID(),
		"event_submission_time": submissionTime,
	}
	if full := r.GetString("contentDetails/title_full"); full != "" {
		assign["event_title_full"] = full
	}
	if by := r.GetString("_submitted_by"); by != "" {
		assign["event_submitted_by"] = by
	}

	ev := eventModel.EventModel{}
	if err := p.DB.
		Where("event_odk_id = ?", r.ExternalID()).
		Assign(assign).
		FirstOrCreate(&ev).Error; err != nil {
		return nil, nil, fmt.Errorf("upsert event %s: %w", r.ExternalID(), err)
	}

	groupErrs := p.processParticipantGroups(&ev, r.SubRecords("participantRepeat"))
	return &ev, groupErrs, nil
}

// processParticipantGroups: upsert agregat headcount per kategori,
// unik per (event, kategori) — overwrite count, tidak pernah append.
func (p *EventProcessor) processParticipantGroups(ev *eventModel.EventModel, groups []RawRecord) []string {
	var errs []string
	for i, g := range groups {
		groupType := groupField(g, "participantLabel")
		if groupType == "" {
			groupType = groupField(g, "participant")
		}
		if groupType == "" {
			groupType = "unknown"
		}

		assign := map[string]any{
			"participant_group_male_count":   groupInt(g, "participant_male"),
			"participant_group_female_count": groupInt(g, "participant_female"),
		}

		pg := eventModel.ParticipantGroupModel{}
		err := p.DB.
			Where("participant_group_event_id = ? AND participant_group_type = ?", ev.EventID, groupType).
			Attrs(eventModel.ParticipantGroupModel{
				ParticipantGroupEventID: ev.EventID,
				ParticipantGroupType:    groupType,
			}).
			Assign(assign).
			FirstOrCreate(&pg).Error
		if err != nil {
			errs = append(errs, fmt.Sprintf("participant group %d (%s): %v", i, groupType, err))
		}
	}
	return errs
}

// Key group kadang datang ber-namespace ("participantRepeat/participant"),
// kadang polos ("participant"); terima dua-duanya.
func groupField(g RawRecord, key string) string {
	if v := g.GetString("participantRepeat/" + key); v != "" {
		return v
	}
	return g.GetString(key)
}

func groupInt(g RawRecord, key string) int {
	if g.Has("participantRepeat/" + key) {
		return g.GetInt("participantRepeat/" + key)
	}
	return g.GetInt(key)
}
