// file: internals/features/sync/processor/validators_test.go
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFarmerRecord() RawRecord {
	return RawRecord{
		"_id":                      "900001",
		"_uuid":                    "uuid-farmer-1",
		"_submission_time":         "2024-05-01T08:00:00",
		"farmerDetails/firstNamePP": "Amina",
		"farmerDetails/surNamePP":   "Yusuf",
		"farmerDetails/genderPP":    "female",
		"farmerDetails/farmAreaPP":  float64(2.5),
		"farmerDetails/area_unit":   "hectare",
		"farmerDetails/hasc1":       "NG.KD",
		"sourceDetails/source":      "radio",
		"sourceDetails/startdate":   "2024-04-20",
	}
}

func TestValidateFarmerOK(t *testing.T) {
	require.NoError(t, validateFarmer(validFarmerRecord()))
}

func TestValidateFarmerCollectsAllProblems(t *testing.T) {
	r := validFarmerRecord()
	delete(r, "farmerDetails/firstNamePP")
	delete(r, "sourceDetails/source")
	r["farmerDetails/genderPP"] = "banana"

	err := validateFarmer(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	ve := err.(*ValidationError)
	// semua masalah harus terkumpul sekaligus, bukan berhenti di yang pertama
	assert.GreaterOrEqual(t, len(ve.Problems), 3)
}

func TestValidateFarmerFarmAreaBounds(t *testing.T) {
	cases := []struct {
		area   float64
		wantOK bool
	}{
		{0, false},
		{0.01, true},
		{10000, true},
		{10000.01, false},
		{-3, false},
	}
	for _, tc := range cases {
		r := validFarmerRecord()
		r["farmerDetails/farmAreaPP"] = tc.area
		err := validateFarmer(r)
		if tc.wantOK {
			assert.NoError(t, err, "area %v", tc.area)
		} else {
			assert.Error(t, err, "area %v", tc.area)
		}
	}
}

func TestValidateFarmerUnknownAreaUnit(t *testing.T) {
	r := validFarmerRecord()
	r["farmerDetails/area_unit"] = "sqkm"
	assert.Error(t, validateFarmer(r))
}

func TestValidateFarmerUnsupportedHasc(t *testing.T) {
	r := validFarmerRecord()
	r["farmerDetails/hasc1"] = "FR.AA"
	assert.Error(t, validateFarmer(r))
}

func validEventRecord() RawRecord {
	return RawRecord{
		"_id":                     "800001",
		"_uuid":                   "uuid-event-1",
		"_submission_time":        "2024-05-01T08:00:00",
		"eventDetails/event":      "training_event",
		"eventLocation/startdate": "2024-04-10",
		"eventLocation/enddate":   "2024-04-12",
		"eventLocation/hasc1":     "NG.KD",
		"eventLocation/hasc2":     "NG.KD.ZR",
		"eventLocation/city":      "Zaria",
		"eventLocation/venue":     "Town Hall",
		"contentDetails/title":    "fertilizer recommendation",
	}
}

func TestValidateEventOK(t *testing.T) {
	require.NoError(t, validateEvent(validEventRecord()))
}

func TestValidateEventEndBeforeStart(t *testing.T) {
	r := validEventRecord()
	r["eventLocation/enddate"] = "2024-04-01"
	assert.Error(t, validateEvent(r))
}

func TestValidateEventVenueRequiredUnlessDigital(t *testing.T) {
	r := validEventRecord()
	delete(r, "eventLocation/venue")
	assert.Error(t, validateEvent(r))

	// format digital boleh tanpa venue
	r["contentDetails/format"] = "digital"
	assert.NoError(t, validateEvent(r))
}

func TestValidatePartnerCountryCode(t *testing.T) {
	r := RawRecord{"_id": "1", "name": "ACME", "country": "NGA"}
	assert.Error(t, validatePartner(r))

	r["country"] = "NG"
	assert.NoError(t, validatePartner(r))
}

func TestValidateParticipantSubmissionRepeatMustBeList(t *testing.T) {
	r := RawRecord{"_id": "1", "_uuid": "u", "repeatPP": "oops"}
	assert.Error(t, validateParticipantSubmission(r))

	r["repeatPP"] = []any{}
	assert.NoError(t, validateParticipantSubmission(r))
}
