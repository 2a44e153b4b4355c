// file: internals/features/locations/model/location_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel: unit geografis ber-kunci komposit kode HASC level-1,
// level-2 dan city. Selalu get-or-create, tidak pernah duplikat.
type LocationModel struct {
	LocationID uuid.UUID `gorm:"column:location_id;type:uuid;primaryKey" json:"location_id"`

	LocationHasc1 string `gorm:"column:location_hasc1;type:varchar(10);not null;uniqueIndex:uq_locations_hasc" json:"location_hasc1"`
	LocationHasc2 string `gorm:"column:location_hasc2;type:varchar(10);not null;uniqueIndex:uq_locations_hasc" json:"location_hasc2"`
	LocationCity  string `gorm:"column:location_city;type:varchar(255);not null;uniqueIndex:uq_locations_hasc" json:"location_city"`

	LocationHasc1Name string `gorm:"column:location_hasc1_name;type:varchar(255)" json:"location_hasc1_name"`
	LocationHasc2Name string `gorm:"column:location_hasc2_name;type:varchar(255)" json:"location_hasc2_name"`

	LocationLatitude  *float64 `gorm:"column:location_latitude;type:decimal(9,6)" json:"location_latitude,omitempty"`
	LocationLongitude *float64 `gorm:"column:location_longitude;type:decimal(9,6)" json:"location_longitude,omitempty"`
}

func (LocationModel) TableName() string { return "locations" }

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == uuid.Nil {
		l.LocationID = uuid.New()
	}
	return nil
}
