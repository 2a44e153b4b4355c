// file: internals/features/sync/processor/farmer_processor_test.go
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locationModel "anadash_backend/internals/features/locations/model"
	participantModel "anadash_backend/internals/features/participants/model"
)

func TestFarmerProcessorCreatesParticipantAndFarmer(t *testing.T) {
	db := newTestDB(t)
	partner := newTestPartner(t, db)
	proc := NewFarmerProcessor(db, partner)

	r := validFarmerRecord()
	r["farmerDetails/cropsPP"] = "cassava maize"
	r["farmerDetails/phoneNrPP"] = "2348033333333"

	farmer, err := proc.Process(r)
	require.NoError(t, err)

	assert.Equal(t, 2.5, farmer.FarmerFarmArea)
	assert.Equal(t, participantModel.AreaUnitHectare, farmer.FarmerAreaUnit)
	assert.Equal(t, []string{"cassava", "maize"}, []string(farmer.FarmerCrops))
	assert.Equal(t, "radio", farmer.FarmerRegistrationSource)

	// base participant ikut dibuat transitif
	var base participantModel.ParticipantModel
	require.NoError(t, db.First(&base, "participant_id = ?", farmer.FarmerParticipantID).Error)
	assert.Equal(t, "Amina", base.ParticipantFirstName)
	assert.Equal(t, "900001", base.ParticipantOdkID)

	assert.EqualValues(t, 1, countRows(t, db, &locationModel.LocationModel{}))
}

func TestFarmerProcessorUnknownCropsGoToOther(t *testing.T) {
	db := newTestDB(t)
	proc := NewFarmerProcessor(db, newTestPartner(t, db))

	r := validFarmerRecord()
	r["farmerDetails/cropsPP"] = "cassava dragonfruit"
	r["farmerDetails/cropsPP_other"] = "vanilla"

	farmer, err := proc.Process(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"cassava"}, []string(farmer.FarmerCrops))
	assert.Equal(t, "dragonfruit vanilla", farmer.FarmerOtherCrops)
}

func TestFarmerProcessorIdempotent(t *testing.T) {
	db := newTestDB(t)
	proc := NewFarmerProcessor(db, newTestPartner(t, db))

	first, err := proc.Process(validFarmerRecord())
	require.NoError(t, err)

	r := validFarmerRecord()
	r["farmerDetails/farmAreaPP"] = float64(4.0)
	second, err := proc.Process(r)
	require.NoError(t, err)

	assert.Equal(t, first.FarmerID, second.FarmerID)
	assert.Equal(t, 4.0, second.FarmerFarmArea)
	assert.EqualValues(t, 1, countRows(t, db, &participantModel.FarmerModel{}))
	assert.EqualValues(t, 1, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestFarmerProcessorRejectsBadSubmissionTime(t *testing.T) {
	db := newTestDB(t)
	proc := NewFarmerProcessor(db, newTestPartner(t, db))

	r := validFarmerRecord()
	r["_submission_time"] = "not-a-date"

	_, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.FarmerModel{}))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestFarmerProcessorRejectsInvalid(t *testing.T) {
	db := newTestDB(t)
	proc := NewFarmerProcessor(db, newTestPartner(t, db))

	r := validFarmerRecord()
	r["farmerDetails/farmAreaPP"] = float64(0)

	_, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.FarmerModel{}))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.ParticipantModel{}))
}
