// file: internals/features/participants/model/farmer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AreaUnit string

const (
	AreaUnitHectare AreaUnit = "hectare"
	AreaUnitAcre    AreaUnit = "acre"
)

func (u AreaUnit) Valid() bool { return u == AreaUnitHectare || u == AreaUnitAcre }

// Batas domain luas lahan (divalidasi di processor sync).
const (
	FarmAreaMin = 0.0
	FarmAreaMax = 10000.0
)

// FarmerModel: ekstensi 1:1 dari Participant untuk petani teregistrasi.
// List (crops, consent) disimpan sebagai JSON text, bukan array Postgres,
// mengikuti skema lama supaya kompatibel lintas dialect.
type FarmerModel struct {
	FarmerID uuid.UUID `gorm:"column:farmer_id;type:uuid;primaryKey" json:"farmer_id"`

	FarmerParticipantID uuid.UUID  `gorm:"column:farmer_participant_id;type:uuid;not null;uniqueIndex" json:"farmer_participant_id"`
	FarmerPartnerID     uuid.UUID  `gorm:"column:farmer_partner_id;type:uuid;not null;index" json:"farmer_partner_id"`
	FarmerLocationID    *uuid.UUID `gorm:"column:farmer_location_id;type:uuid;index" json:"farmer_location_id,omitempty"`

	FarmerFarmArea float64  `gorm:"column:farmer_farm_area;type:decimal(10,2);not null" json:"farmer_farm_area"`
	FarmerAreaUnit AreaUnit `gorm:"column:farmer_area_unit;type:varchar(20);not null" json:"farmer_area_unit"`

	FarmerCrops           datatypes.JSONSlice[string] `gorm:"column:farmer_crops;type:text" json:"farmer_crops"`
	FarmerOtherCrops      string                      `gorm:"column:farmer_other_crops;type:text" json:"farmer_other_crops"`
	FarmerConsentGivenFor datatypes.JSONSlice[string] `gorm:"column:farmer_consent_given_for;type:text" json:"farmer_consent_given_for"`

	FarmerRegistrationSource string    `gorm:"column:farmer_registration_source;type:varchar(50);not null" json:"farmer_registration_source"`
	FarmerRegistrationDate   time.Time `gorm:"column:farmer_registration_date;type:date;not null" json:"farmer_registration_date"`

	FarmerCreatedAt time.Time `gorm:"column:farmer_created_at;autoCreateTime" json:"farmer_created_at"`
	FarmerUpdatedAt time.Time `gorm:"column:farmer_updated_at;autoUpdateTime" json:"farmer_updated_at"`
}

func (FarmerModel) TableName() string { return "farmers" }

func (f *FarmerModel) BeforeCreate(tx *gorm.DB) error {
	if f.FarmerID == uuid.Nil {
		f.FarmerID = uuid.New()
	}
	return nil
}
