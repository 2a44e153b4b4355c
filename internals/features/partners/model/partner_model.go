// file: internals/features/partners/model/partner_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerModel merepresentasikan tabel partners (organisasi pemilik data).
type PartnerModel struct {
	// PK
	PartnerID uuid.UUID `gorm:"column:partner_id;type:uuid;primaryKey" json:"partner_id"`

	// Identitas
	PartnerName    string `gorm:"column:partner_name;type:varchar(255);not null" json:"partner_name"`
	PartnerCountry string `gorm:"column:partner_country;type:varchar(2);not null" json:"partner_country"`

	// Id eksternal dari sistem form (unik kalau ada)
	PartnerOdkID *string `gorm:"column:partner_odk_id;type:varchar(50);uniqueIndex" json:"partner_odk_id,omitempty"`

	// Token API per-partner untuk fetch submission milik partner tsb
	PartnerAPIToken *string `gorm:"column:partner_api_token;type:varchar(255)" json:"-"`

	// Status & cursor sync
	PartnerIsActive bool       `gorm:"column:partner_is_active;not null;default:true" json:"partner_is_active"`
	PartnerLastSync *time.Time `gorm:"column:partner_last_sync" json:"partner_last_sync,omitempty"`

	// Audit
	PartnerCreatedAt time.Time `gorm:"column:partner_created_at;autoCreateTime" json:"partner_created_at"`
	PartnerUpdatedAt time.Time `gorm:"column:partner_updated_at;autoUpdateTime" json:"partner_updated_at"`
}

func (PartnerModel) TableName() string { return "partners" }

func (p *PartnerModel) BeforeCreate(tx *gorm.DB) error {
	if p.PartnerID == uuid.Nil {
		p.PartnerID = uuid.New()
	}
	return nil
}

// AdvanceLastSync memajukan cursor; tidak pernah mundur.
func (p *PartnerModel) AdvanceLastSync(t time.Time) bool {
	if p.PartnerLastSync != nil && !t.After(*p.PartnerLastSync) {
		return false
	}
	tt := t
	p.PartnerLastSync = &tt
	return true
}
