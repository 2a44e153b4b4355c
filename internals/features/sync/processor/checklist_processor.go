// file: internals/features/sync/processor/checklist_processor.go
package processor

import (
	"fmt"

	checklistModel "anadash_backend/internals/features/checklists/model"
	partnerModel "anadash_backend/internals/features/partners/model"

	"gorm.io/gorm"
)

// ChecklistProcessor memproses submission Scaling Checklist.
type ChecklistProcessor struct {
	DB      *gorm.DB
	Partner *partnerModel.PartnerModel
}

func NewChecklistProcessor(db *gorm.DB, partner *partnerModel.PartnerModel) *ChecklistProcessor {
	return &ChecklistProcessor{DB: db, Partner: partner}
}

func (p *ChecklistProcessor) Process(r RawRecord) (*checklistModel.ScalingChecklistModel, error) {
	if err := validateChecklist(r); err != nil {
		return nil, err
	}

	submissionDate, err := r.SubmissionTime()
	if err != nil {
		return nil, newValidationError([]string{err.Error()})
	}

	// has_mel_system diturunkan dari adanya MEL/system, bukan token yes/no
	melSystem := r.GetString("MEL/system")

	assign := map[string]any{
		"scaling_checklist_partner_id":              p.Partner.PartnerID,
		"scaling_checklist_submission_date":         submissionDate,
		"scaling_checklist_main_business":           r.GetString("main_business"),
		"scaling_checklist_core_business":           r.GetString("Core_business"),
		"scaling_checklist_target_groups":           toJSONList(r.GetStringList("target_group")),
		"scaling_checklist_main_target_group":       r.GetString("main_target_group"),
		"scaling_checklist_knows_akilimo":           r.GetBool("knowAKILIMO"),
		"scaling_checklist_akilimo_relevant":        r.GetBool("AKILIMORelevant"),
		"scaling_checklist_use_cases":               toJSONList(r.GetStringList("useCase")),
		"scaling_checklist_integration_type":        r.GetString("Integration/support"),
		"scaling_checklist_has_mel_system":          melSystem != "",
		"scaling_checklist_system_type":             melSystem,
		"scaling_checklist_collects_data":           r.GetBool("MEL/data_collection"),
		"scaling_checklist_has_farmer_database":     r.GetBool("MEL/farmers_database"),
		"scaling_checklist_has_agrodealer_database": r.GetBool("MEL/agrodealers_database"),
		"scaling_checklist_odk_id":                  r.ExternalID(),
		"scaling_checklist_odk_uuid":                r.UUID(),
	}

	checklist := checklistModel.ScalingChecklistModel{}
	if err := p.DB.
		Where("scaling_checklist_odk_id = ?", r.ExternalID()).
		Assign(assign).
		FirstOrCreate(&checklist).Error; err != nil {
		return nil, fmt.Errorf("upsert checklist %s: %w", r.ExternalID(), err)
	}
	return &checklist, nil
}
