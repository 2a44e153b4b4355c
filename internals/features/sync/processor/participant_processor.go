// file: internals/features/sync/processor/participant_processor.go
package processor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	eventModel "anadash_backend/internals/features/events/model"
	participantModel "anadash_backend/internals/features/participants/model"
	partnerModel "anadash_backend/internals/features/partners/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantProcessor memproses submission peserta: satu submission
// berisi repeated group repeatPP dengan banyak peserta.
type ParticipantProcessor struct {
	DB      *gorm.DB
	Partner *partnerModel.PartnerModel
}

func NewParticipantProcessor(db *gorm.DB, partner *partnerModel.PartnerModel) *ParticipantProcessor {
	return &ParticipantProcessor{DB: db, Partner: partner}
}

// Process: kegagalan satu sub-record tidak membatalkan sub-record lain;
// hasil per-sub dikumpulkan dan dikembalikan bersama daftar errornya.
func (p *ParticipantProcessor) Process(r RawRecord) ([]*participantModel.ParticipantModel, []string, error) {
	if err := validateParticipantSubmission(r); err != nil {
		return nil, nil, err
	}

	eventID, err := p.lookupEventID(r.GetString("eventDetails/uuid_event"))
	if err != nil {
		return nil, nil, err
	}

	submissionTime, err := r.SubmissionTime()
	if err != nil {
		return nil, nil, newValidationError([]string{err.Error()})
	}

	var (
		saved []*participantModel.ParticipantModel
		errs  []string
	)
	for i, sub := range r.SubRecords("repeatPP") {
		participant, err := p.upsertParticipant(r.ExternalID(), sub, eventID, submissionTime)
		if err != nil {
			errs = append(errs, fmt.Sprintf("peserta %d: %v", i, err))
			continue
		}
		saved = append(saved, participant)
	}
	return saved, errs, nil
}

func (p *ParticipantProcessor) lookupEventID(eventUUID string) (*uuid.UUID, error) {
	if eventUUID == "" {
		return nil, nil
	}
	ev := eventModel.EventModel{}
	if err := p.DB.Where("event_odk_uuid = ?", eventUUID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// event belum tersinkron; peserta tetap disimpan tanpa event
			return nil, nil
		}
		return nil, fmt.Errorf("lookup event %s: %w", eventUUID, err)
	}
	id := ev.EventID
	return &id, nil
}

func (p *ParticipantProcessor) upsertParticipant(submissionID string, sub RawRecord, eventID *uuid.UUID, submissionTime time.Time) (*participantModel.ParticipantModel, error) {
	firstName := sub.GetString("repeatPP/firstNamePP")
	surname := sub.GetString("repeatPP/surNamePP")
	gender := participantModel.Gender(strings.ToLower(sub.GetString("repeatPP/genderPP")))

	var problems []string
	if firstName == "" {
		problems = append(problems, "field wajib hilang: repeatPP/firstNamePP")
	}
	if surname == "" {
		problems = append(problems, "field wajib hilang: repeatPP/surNamePP")
	}
	if !gender.Valid() {
		problems = append(problems, fmt.Sprintf("gender tidak dikenal: %q", sub.GetString("repeatPP/genderPP")))
	}
	if len(problems) > 0 {
		return nil, newValidationError(problems)
	}

	phone := sub.GetString("repeatPP/phoneNrPP")

	// Id eksternal komposit: submission id + phone, supaya beberapa
	// peserta dalam satu submission tetap bisa dibedakan.
	odkID := fmt.Sprintf("%s_%s", submissionID, phone)

	assign := map[string]any{
		"participant_partner_id":      p.Partner.PartnerID,
		"participant_first_name":      firstName,
		"participant_surname":         surname,
		"participant_gender":          gender,
		"participant_own_phone":       sub.GetBool("repeatPP/ownPhonePP"),
		"participant_has_whatsapp":    sub.GetBool("repeatPP/whatsAppPP"),
		"participant_odk_id":          odkID,
		"participant_submission_time": submissionTime,
	}
	if phone != "" {
		assign["participant_phone_number"] = phone
	}
	if eventID != nil {
		assign["participant_event_id"] = *eventID
	}

	participant := participantModel.ParticipantModel{}
	if err := p.DB.
		Where("participant_odk_id = ?", odkID).
		Assign(assign).
		FirstOrCreate(&participant).Error; err != nil {
		return nil, fmt.Errorf("upsert participant %s: %w", odkID, err)
	}
	return &participant, nil
}
