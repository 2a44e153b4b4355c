// file: internals/features/checklists/model/scaling_checklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScalingChecklistModel: jawaban checklist kesiapan scaling per partner.
type ScalingChecklistModel struct {
	ScalingChecklistID uuid.UUID `gorm:"column:scaling_checklist_id;type:uuid;primaryKey" json:"scaling_checklist_id"`

	ScalingChecklistPartnerID uuid.UUID `gorm:"column:scaling_checklist_partner_id;type:uuid;not null;index" json:"scaling_checklist_partner_id"`

	ScalingChecklistSubmissionDate time.Time `gorm:"column:scaling_checklist_submission_date;not null" json:"scaling_checklist_submission_date"`

	ScalingChecklistMainBusiness    string                      `gorm:"column:scaling_checklist_main_business;type:varchar(50)" json:"scaling_checklist_main_business"`
	ScalingChecklistCoreBusiness    string                      `gorm:"column:scaling_checklist_core_business;type:varchar(50)" json:"scaling_checklist_core_business"`
	ScalingChecklistTargetGroups    datatypes.JSONSlice[string] `gorm:"column:scaling_checklist_target_groups;type:text" json:"scaling_checklist_target_groups"`
	ScalingChecklistMainTargetGroup string                      `gorm:"column:scaling_checklist_main_target_group;type:varchar(50)" json:"scaling_checklist_main_target_group"`

	ScalingChecklistKnowsAkilimo    bool                        `gorm:"column:scaling_checklist_knows_akilimo;not null;default:false" json:"scaling_checklist_knows_akilimo"`
	ScalingChecklistAkilimoRelevant bool                        `gorm:"column:scaling_checklist_akilimo_relevant;not null;default:false" json:"scaling_checklist_akilimo_relevant"`
	ScalingChecklistUseCases        datatypes.JSONSlice[string] `gorm:"column:scaling_checklist_use_cases;type:text" json:"scaling_checklist_use_cases"`
	ScalingChecklistIntegrationType string                      `gorm:"column:scaling_checklist_integration_type;type:varchar(50)" json:"scaling_checklist_integration_type"`

	ScalingChecklistHasMelSystem          bool   `gorm:"column:scaling_checklist_has_mel_system;not null;default:false" json:"scaling_checklist_has_mel_system"`
	ScalingChecklistSystemType            string `gorm:"column:scaling_checklist_system_type;type:varchar(50)" json:"scaling_checklist_system_type"`
	ScalingChecklistCollectsData          bool   `gorm:"column:scaling_checklist_collects_data;not null;default:false" json:"scaling_checklist_collects_data"`
	ScalingChecklistHasFarmerDatabase     bool   `gorm:"column:scaling_checklist_has_farmer_database;not null;default:false" json:"scaling_checklist_has_farmer_database"`
	ScalingChecklistHasAgrodealerDatabase bool   `gorm:"column:scaling_checklist_has_agrodealer_database;not null;default:false" json:"scaling_checklist_has_agrodealer_database"`

	ScalingChecklistOdkID   string `gorm:"column:scaling_checklist_odk_id;type:varchar(50);uniqueIndex;not null" json:"scaling_checklist_odk_id"`
	ScalingChecklistOdkUUID string `gorm:"column:scaling_checklist_odk_uuid;type:varchar(50);uniqueIndex;not null" json:"scaling_checklist_odk_uuid"`

	ScalingChecklistCreatedAt time.Time `gorm:"column:scaling_checklist_created_at;autoCreateTime" json:"scaling_checklist_created_at"`
	ScalingChecklistUpdatedAt time.Time `gorm:"column:scaling_checklist_updated_at;autoUpdateTime" json:"scaling_checklist_updated_at"`
}

func (ScalingChecklistModel) TableName() string { return "scaling_checklists" }

func (s *ScalingChecklistModel) BeforeCreate(tx *gorm.DB) error {
	if s.ScalingChecklistID == uuid.Nil {
		s.ScalingChecklistID = uuid.New()
	}
	return nil
}
