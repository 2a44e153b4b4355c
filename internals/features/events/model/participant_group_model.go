// file: internals/features/events/model/participant_group_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantGroupModel: agregat headcount per kategori peserta dalam satu
// event. Unik per (event, kategori); sync berikutnya overwrite count.
type ParticipantGroupModel struct {
	ParticipantGroupID uuid.UUID `gorm:"column:participant_group_id;type:uuid;primaryKey" json:"participant_group_id"`

	ParticipantGroupEventID uuid.UUID `gorm:"column:participant_group_event_id;type:uuid;not null;uniqueIndex:uq_participant_groups_event_type" json:"participant_group_event_id"`
	ParticipantGroupType    string    `gorm:"column:participant_group_type;type:varchar(50);not null;uniqueIndex:uq_participant_groups_event_type" json:"participant_group_type"`

	ParticipantGroupMaleCount   int `gorm:"column:participant_group_male_count;not null;default:0" json:"participant_group_male_count"`
	ParticipantGroupFemaleCount int `gorm:"column:participant_group_female_count;not null;default:0" json:"participant_group_female_count"`
}

func (ParticipantGroupModel) TableName() string { return "participant_groups" }

func (g *ParticipantGroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.ParticipantGroupID == uuid.Nil {
		g.ParticipantGroupID = uuid.New()
	}
	return nil
}

func (g *ParticipantGroupModel) TotalCount() int {
	return g.ParticipantGroupMaleCount + g.ParticipantGroupFemaleCount
}
