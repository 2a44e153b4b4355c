// file: internals/features/sync/processor/location.go
package processor

import (
	locationModel "anadash_backend/internals/features/locations/model"

	"gorm.io/gorm"
)

// getOrCreateLocation: lookup per komposit (hasc1, hasc2, city); kalau
// belum ada dibuat sekali — tidak pernah duplikat.
func getOrCreateLocation(tx *gorm.DB, hasc1, hasc2, city, hasc1Name, hasc2Name string) (*locationModel.LocationModel, error) {
	loc := locationModel.LocationModel{}
	err := tx.
		Where("location_hasc1 = ? AND location_hasc2 = ? AND location_city = ?", hasc1, hasc2, city).
		Attrs(locationModel.LocationModel{
			LocationHasc1:     hasc1,
			LocationHasc2:     hasc2,
			LocationCity:      city,
			LocationHasc1Name: hasc1Name,
			LocationHasc2Name: hasc2Name,
		}).
		FirstOrCreate(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
