// file: internals/features/participants/model/extension_agent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   Enum: EducationLevel (ordinal: primary < secondary < tertiary)
====================================================== */

type EducationLevel string

const (
	EducationPrimary   EducationLevel = "primary"
	EducationSecondary EducationLevel = "secondary"
	EducationTertiary  EducationLevel = "tertiary"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationPrimary, EducationSecondary, EducationTertiary:
		return true
	}
	return false
}

// Rank untuk perbandingan ordinal; 0 kalau tidak dikenal.
func (e EducationLevel) Rank() int {
	switch e {
	case EducationPrimary:
		return 1
	case EducationSecondary:
		return 2
	case EducationTertiary:
		return 3
	}
	return 0
}

// EducationLevelsAtLeast: semua level dengan rank >= level acuan,
// untuk filter "minimal pendidikan X" di query.
func EducationLevelsAtLeast(min EducationLevel) []EducationLevel {
	var out []EducationLevel
	for _, lvl := range []EducationLevel{EducationPrimary, EducationSecondary, EducationTertiary} {
		if lvl.Rank() >= min.Rank() {
			out = append(out, lvl)
		}
	}
	return out
}

// ExtensionAgentModel: ekstensi 1:1 dari Participant untuk penyuluh.
type ExtensionAgentModel struct {
	ExtensionAgentID uuid.UUID `gorm:"column:extension_agent_id;type:uuid;primaryKey" json:"extension_agent_id"`

	ExtensionAgentParticipantID uuid.UUID `gorm:"column:extension_agent_participant_id;type:uuid;not null;uniqueIndex" json:"extension_agent_participant_id"`
	ExtensionAgentPartnerID     uuid.UUID `gorm:"column:extension_agent_partner_id;type:uuid;not null;index" json:"extension_agent_partner_id"`

	ExtensionAgentDesignation      string         `gorm:"column:extension_agent_designation;type:varchar(255)" json:"extension_agent_designation"`
	ExtensionAgentEducationLevel   EducationLevel `gorm:"column:extension_agent_education_level;type:varchar(50)" json:"extension_agent_education_level"`
	ExtensionAgentOrganization     string         `gorm:"column:extension_agent_organization;type:varchar(255);not null" json:"extension_agent_organization"`
	ExtensionAgentOrganizationType string         `gorm:"column:extension_agent_organization_type;type:varchar(50)" json:"extension_agent_organization_type"`
	ExtensionAgentOperationalLevel string         `gorm:"column:extension_agent_operational_level;type:varchar(20)" json:"extension_agent_operational_level"`
	ExtensionAgentNumberOfFarmers  int            `gorm:"column:extension_agent_number_of_farmers;not null;default:0" json:"extension_agent_number_of_farmers"`

	ExtensionAgentStates       datatypes.JSONSlice[string] `gorm:"column:extension_agent_states;type:text" json:"extension_agent_states"`
	ExtensionAgentTools        datatypes.JSONSlice[string] `gorm:"column:extension_agent_tools;type:text" json:"extension_agent_tools"`
	ExtensionAgentFormats      datatypes.JSONSlice[string] `gorm:"column:extension_agent_formats;type:text" json:"extension_agent_formats"`
	ExtensionAgentUseCases     datatypes.JSONSlice[string] `gorm:"column:extension_agent_use_cases;type:text" json:"extension_agent_use_cases"`
	ExtensionAgentCrops        datatypes.JSONSlice[string] `gorm:"column:extension_agent_crops;type:text" json:"extension_agent_crops"`
	ExtensionAgentTechnologies datatypes.JSONSlice[string] `gorm:"column:extension_agent_technologies;type:text" json:"extension_agent_technologies"`

	ExtensionAgentIsCertified bool `gorm:"column:extension_agent_is_certified;not null;default:false" json:"extension_agent_is_certified"`

	ExtensionAgentCreatedAt time.Time `gorm:"column:extension_agent_created_at;autoCreateTime" json:"extension_agent_created_at"`
	ExtensionAgentUpdatedAt time.Time `gorm:"column:extension_agent_updated_at;autoUpdateTime" json:"extension_agent_updated_at"`
}

func (ExtensionAgentModel) TableName() string { return "extension_agents" }

func (a *ExtensionAgentModel) BeforeCreate(tx *gorm.DB) error {
	if a.ExtensionAgentID == uuid.Nil {
		a.ExtensionAgentID = uuid.New()
	}
	return nil
}
