// file: internals/features/sync/processor/farmer_processor.go
package processor

import (
	"fmt"
	"strings"

	"anadash_backend/internals/constants"
	participantModel "anadash_backend/internals/features/participants/model"
	partnerModel "anadash_backend/internals/features/partners/model"

	"gorm.io/gorm"
)

// FarmerProcessor memproses self-registration petani. Urutan dependensi
// dalam satu record: Location dulu, lalu base Participant, baru Farmer.
type FarmerProcessor struct {
	DB      *gorm.DB
	Partner *partnerModel.PartnerModel
}

func NewFarmerProcessor(db *gorm.DB, partner *partnerModel.PartnerModel) *FarmerProcessor {
	return &FarmerProcessor{DB: db, Partner: partner}
}

func (p *FarmerProcessor) Process(r RawRecord) (*participantModel.FarmerModel, error) {
	if err := validateFarmer(r); err != nil {
		return nil, err
	}

	loc, err := getOrCreateLocation(p.DB,
		r.GetString("farmerDetails/hasc1"),
		r.GetString("farmerDetails/hasc2"),
		r.GetString("farmerDetails/city"),
		r.GetString("farmerDetails/hasc1_name"),
		r.GetString("farmerDetails/hasc2_name"),
	)
	if err != nil {
		return nil, fmt.Errorf("resolve location: %w", err)
	}

	participant, err := p.upsertBaseParticipant(r)
	if err != nil {
		return nil, err
	}

	farmArea, _ := r.GetDecimal("farmerDetails/farmAreaPP")
	registrationDate, _ := r.GetTime("sourceDetails/startdate")

	// Crop di luar kosakata dikenal tidak dibuang; pindah ke other_crops.
	crops, otherCrops := splitCrops(
		r.GetStringList("farmerDetails/cropsPP"),
		r.GetString("farmerDetails/cropsPP_other"),
	)

	assign := map[string]any{
		"farmer_partner_id":          p.Partner.PartnerID,
		"farmer_location_id":         loc.LocationID,
		"farmer_farm_area":           farmArea,
		"farmer_area_unit":           strings.ToLower(r.GetString("farmerDetails/area_unit")),
		"farmer_crops":               toJSONList(crops),
		"farmer_other_crops":         otherCrops,
		"farmer_consent_given_for":   toJSONList(r.GetStringList("farmerDetails/consent")),
		"farmer_registration_source": r.GetString("sourceDetails/source"),
		"farmer_registration_date":   registrationDate,
	}

	farmer := participantModel.FarmerModel{}
	if err := p.DB.
		Where("farmer_participant_id = ?", participant.ParticipantID).
		Attrs(participantModel.FarmerModel{
			FarmerParticipantID: participant.ParticipantID,
		}).
		Assign(assign).
		FirstOrCreate(&farmer).Error; err != nil {
		return nil, fmt.Errorf("upsert farmer %s: %w", r.ExternalID(), err)
	}
	return &farmer, nil
}

func splitCrops(listed []string, freeText string) ([]string, string) {
	known := make([]string, 0, len(listed))
	var other []string
	for _, c := range listed {
		if constants.IsKnownCrop(c) {
			known = append(known, strings.ToLower(c))
			continue
		}
		other = append(other, c)
	}
	if freeText != "" {
		other = append(other, freeText)
	}
	return known, strings.Join(other, " ")
}

func (p *FarmerProcessor) upsertBaseParticipant(r RawRecord) (*participantModel.ParticipantModel, error) {
	submissionTime, err := r.SubmissionTime()
	if err != nil {
		return nil, newValidationError([]string{err.Error()})
	}

	assign := map[string]any{
		"participant_partner_id":      p.Partner.PartnerID,
		"participant_first_name":      r.GetString("farmerDetails/firstNamePP"),
		"participant_surname":         r.GetString("farmerDetails/surNamePP"),
		"participant_gender":          strings.ToLower(r.GetString("farmerDetails/genderPP")),
		"participant_own_phone":       r.GetBool("farmerDetails/ownPhonePP"),
		"participant_has_whatsapp":    r.GetBool("farmerDetails/whatsAppPP"),
		"participant_odk_id":          r.ExternalID(),
		"participant_submission_time": submissionTime,
	}
	if phone := r.GetString("farmerDetails/phoneNrPP"); phone != "" {
		assign["participant_phone_number"] = phone
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
