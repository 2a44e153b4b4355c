// file: internals/features/participants/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// ParticipantModel: record dasar peserta. Farmer dan ExtensionAgent
// adalah ekstensi 1:1 di atas record ini (bukan inheritance).
type ParticipantModel struct {
	ParticipantID uuid.UUID `gorm:"column:participant_id;type:uuid;primaryKey" json:"participant_id"`

	ParticipantPartnerID uuid.UUID  `gorm:"column:participant_partner_id;type:uuid;not null;index" json:"participant_partner_id"`
	ParticipantEventID   *uuid.UUID `gorm:"column:participant_event_id;type:uuid;index" json:"participant_event_id,omitempty"`

	ParticipantFirstName string `gorm:"column:participant_first_name;type:varchar(255);not null" json:"participant_first_name"`
	ParticipantSurname   string `gorm:"column:participant_surname;type:varchar(255);not null" json:"participant_surname"`
	ParticipantGender    Gender `gorm:"column:participant_gender;type:varchar(10);not null" json:"participant_gender"`

	ParticipantPhoneNumber *string `gorm:"column:participant_phone_number;type:varchar(20)" json:"participant_phone_number,omitempty"`
	ParticipantOwnPhone    bool    `gorm:"column:participant_own_phone;not null;default:false" json:"participant_own_phone"`
	ParticipantHasWhatsapp bool    `gorm:"column:participant_has_whatsapp;not null;default:false" json:"participant_has_whatsapp"`
	ParticipantEmail       *string `gorm:"column:participant_email;type:varchar(255)" json:"participant_email,omitempty"`

	// Bisa komposit "<submission id>_<phone>" untuk membedakan beberapa
	// peserta dalam satu submission.
	ParticipantOdkID          string    `gorm:"column:participant_odk_id;type:varchar(100);uniqueIndex;not null" json:"participant_odk_id"`
	ParticipantSubmissionTime time.Time `gorm:"column:participant_submission_time;not null" json:"participant_submission_time"`

	ParticipantCreatedAt time.Time `gorm:"column:participant_created_at;autoCreateTime" json:"participant_created_at"`
	ParticipantUpdatedAt time.Time `gorm:"column:participant_updated_at;autoUpdateTime" json:"participant_updated_at"`
}

func (ParticipantModel) TableName() string { return "participants" }

func (p *ParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if p.ParticipantID == uuid.Nil {
		p.ParticipantID = uuid.New()
	}
	return nil
}
