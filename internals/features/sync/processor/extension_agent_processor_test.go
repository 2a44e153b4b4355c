// file: internals/features/sync/processor/extension_agent_processor_test.go
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	participantModel "anadash_backend/internals/features/participants/model"
)

func validEARecord() RawRecord {
	return RawRecord{
		"_id":                     "920001",
		"_uuid":                   "uuid-ea-1",
		"_submission_time":        "2024-05-03T10:00:00",
		"detailsEA/firstName":     "Chidi",
		"detailsEA/surName":       "Okeke",
		"detailsEA/gender":        "male",
		"detailsEA/phoneNr":       "2348044444444",
		"detailsEA/org":           "Green Extension Ltd",
		"detailsEA/type":          "private",
		"detailsEA/education":     "Tertiary",
		"areaOperation/hasc1":     "NG.KD NG.KN",
		"areaOperation/nrFarmers": float64(150),
		"AKILIMOexpertise/tools":  "app paper_map",
		"AKILIMOexpertise/certified": "yes",
	}
}

func TestExtensionAgentProcessorCreatesBaseAndExtension(t *testing.T) {
	db := newTestDB(t)
	proc := NewExtensionAgentProcessor(db, newTestPartner(t, db))

	ea, err := proc.Process(validEARecord())
	require.NoError(t, err)

	assert.Equal(t, "Green Extension Ltd", ea.ExtensionAgentOrganization)
	assert.Equal(t, participantModel.EducationTertiary, ea.ExtensionAgentEducationLevel)
	assert.Equal(t, 150, ea.ExtensionAgentNumberOfFarmers)
	assert.Equal(t, []string{"NG.KD", "NG.KN"}, []string(ea.ExtensionAgentStates))
	assert.Equal(t, []string{"app", "paper_map"}, []string(ea.ExtensionAgentTools))
	assert.True(t, ea.ExtensionAgentIsCertified)

	var base participantModel.ParticipantModel
	require.NoError(t, db.First(&base, "participant_id = ?", ea.ExtensionAgentParticipantID).Error)
	assert.Equal(t, "Chidi", base.ParticipantFirstName)
	// EA diasumsikan punya HP sendiri
	assert.True(t, base.ParticipantOwnPhone)
}

func TestExtensionAgentProcessorIdempotent(t *testing.T) {
	db := newTestDB(t)
	proc := NewExtensionAgentProcessor(db, newTestPartner(t, db))

	first, err := proc.Process(validEARecord())
	require.NoError(t, err)

	r := validEARecord()
	r["areaOperation/nrFarmers"] = float64(200)
	second, err := proc.Process(r)
	require.NoError(t, err)

	assert.Equal(t, first.ExtensionAgentID, second.ExtensionAgentID)
	assert.Equal(t, 200, second.ExtensionAgentNumberOfFarmers)
	assert.EqualValues(t, 1, countRows(t, db, &participantModel.ExtensionAgentModel{}))
	assert.EqualValues(t, 1, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestExtensionAgentProcessorRejectsBadSubmissionTime(t *testing.T) {
	db := newTestDB(t)
	proc := NewExtensionAgentProcessor(db, newTestPartner(t, db))

	r := validEARecord()
	r["_submission_time"] = "kemarin sore"

	_, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.ExtensionAgentModel{}))
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestExtensionAgentProcessorUnsupportedHascRejected(t *testing.T) {
	db := newTestDB(t)
	proc := NewExtensionAgentProcessor(db, newTestPartner(t, db))

	r := validEARecord()
	r["areaOperation/hasc1"] = "NG.KD DE.BY"

	_, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
