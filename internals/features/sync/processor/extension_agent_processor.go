// file: internals/features/sync/processor/extension_agent_processor.go
package processor

import (
	"fmt"
	"strings"

	participantModel "anadash_backend/internals/features/participants/model"
	partnerModel "anadash_backend/internals/features/partners/model"

	"gorm.io/gorm"
)

// ExtensionAgentProcessor memproses registrasi penyuluh (EA).
// EA adalah ekstensi 1:1 di atas Participant: base participant di-upsert
// dulu, baru record EA yang ber-referensi ke sana.
type ExtensionAgentProcessor struct {
	DB      *gorm.DB
	Partner *partnerModel.PartnerModel
}

func NewExtensionAgentProcessor(db *gorm.DB, partner *partnerModel.PartnerModel) *ExtensionAgentProcessor {
	return &ExtensionAgentProcessor{DB: db, Partner: partner}
}

func (p *ExtensionAgentProcessor) Process(r RawRecord) (*participantModel.ExtensionAgentModel, error) {
	if err := validateExtensionAgent(r); err != nil {
		return nil, err
	}

	participant, err := p.upsertBaseParticipant(r)
	if err != nil {
		return nil, err
	}

	assign := map[string]any{
		"extension_agent_partner_id":        p.Partner.PartnerID,
		"extension_agent_designation":       r.GetString("detailsEA/designation"),
		"extension_agent_education_level":   strings.ToLower(r.GetString("detailsEA/education")),
		"extension_agent_organization":      r.GetString("detailsEA/org"),
		"extension_agent_organization_type": r.GetString("detailsEA/type"),
		"extension_agent_operational_level": r.GetString("areaOperation/areaLevel"),
		"extension_agent_number_of_farmers": r.GetInt("areaOperation/nrFarmers"),
		"extension_agent_states":            toJSONList(r.GetStringList("areaOperation/hasc1")),
		"extension_agent_tools":             toJSONList(r.GetStringList("AKILIMOexpertise/tools")),
		"extension_agent_formats":           toJSONList(r.GetStringList("AKILIMOexpertise/format")),
		"extension_agent_use_cases":         toJSONList(r.GetStringList("AKILIMOexpertise/useCase")),
		"extension_agent_crops":             toJSONList(r.GetStringList("otherExpertise/crops")),
		"extension_agent_technologies":      toJSONList(r.GetStringList("otherExpertise/technologies")),
		"extension_agent_is_certified":      r.GetBool("AKILIMOexpertise/certified"),
	}

	ea := participantModel.ExtensionAgentModel{}
	if err := p.DB.
		Where("extension_agent_participant_id = ?", participant.ParticipantID).
		Attrs(participantModel.ExtensionAgentModel{
			ExtensionAgentParticipantID: participant.ParticipantID,
		}).
		Assign(assign).
		FirstOrCreate(&ea).Error; err != nil {
		return nil, fmt.Errorf("upsert extension agent %s: %w", r.ExternalID(), err)
	}
	return &ea, nil
}

func (p *ExtensionAgentProcessor) upsertBaseParticipant(r RawRecord) (*participantModel.ParticipantModel, error) {
	submissionTime, err := r.SubmissionTime()
	if err != nil {
		return nil, newValidationError([]string{err.Error()})
	}

	assign := map[string]any{
		"participant_partner_id":      p.Partner.PartnerID,
		"participant_first_name":      r.GetString("detailsEA/firstName"),
		"participant_surname":         r.GetString("detailsEA/surName"),
		"participant_gender":          strings.ToLower(r.GetString("detailsEA/gender")),
		"participant_own_phone":       true, // diasumsikan untuk EA
		"participant_has_whatsapp":    r.GetBool("detailsEA/whatsApp"),
		"participant_odk_id":          r.ExternalID(),
		"participant_submission_time": submissionTime,
	}
	if phone := r.GetString("detailsEA/phoneNr"); phone != "" {
		assign["participant_phone_number"] = phone
	}
	if email := r.GetString("detailsEA/email"); email != "" {
		assign["participant_email"] = email
	}

	participant := participantModel.ParticipantModel{}
	if err := p.DB.
		Where("participant_odk_id = ?", r.ExternalID()).
		Assign(assign).
		FirstOrCreate(&participant).Error; err != nil {
		return nil, fmt.Errorf("upsert base participant %s: %w", r.ExternalID(), err)
	}
	return &participant, nil
}
