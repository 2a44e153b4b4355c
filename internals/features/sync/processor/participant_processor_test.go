// file: internals/features/sync/processor/participant_processor_test.go
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "anadash_backend/internals/features/events/model"
	participantModel "anadash_backend/internals/features/participants/model"
)

func participantSubmission() RawRecord {
	return RawRecord{
		"_id":              "910001",
		"_uuid":            "uuid-pp-1",
		"_submission_time": "2024-05-02T09:00:00",
		"repeatPP": []any{
			map[string]any{
				"repeatPP/firstNamePP": "Ada",
				"repeatPP/surNamePP":   "Obi",
				"repeatPP/genderPP":    "female",
				"repeatPP/phoneNrPP":   "2348011111111",
				"repeatPP/ownPhonePP":  "yes",
			},
			map[string]any{
				"repeatPP/firstNamePP": "Bala",
				"repeatPP/surNamePP":   "Usman",
				"repeatPP/genderPP":    "male",
				"repeatPP/phoneNrPP":   "2348022222222",
			},
		},
	}
}

func TestParticipantProcessorSavesAllSubRecords(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	saved, errs, err := proc.Process(participantSubmission())
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, saved, 2)

	// id eksternal komposit: submission id + phone
	assert.Equal(t, "910001_2348011111111", saved[0].ParticipantOdkID)
	assert.Equal(t, "910001_2348022222222", saved[1].ParticipantOdkID)
	assert.True(t, saved[0].ParticipantOwnPhone)
	assert.False(t, saved[1].ParticipantOwnPhone)
}

func TestParticipantProcessorPartialFailure(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	r := participantSubmission()
	subs := r["repeatPP"].([]any)
	subs[1].(map[string]any)["repeatPP/genderPP"] = "unknown"

	saved, errs, err := proc.Process(r)
	require.NoError(t, err)
	// satu sub gagal, yang lain tetap tersimpan
	assert.Len(t, saved, 1)
	assert.Len(t, errs, 1)
	assert.EqualValues(t, 1, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestParticipantProcessorRejectsBadSubmissionTime(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	r := participantSubmission()
	r["_submission_time"] = "05/02/2024 9am"

	saved, errs, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, saved)
	assert.Empty(t, errs)
	assert.EqualValues(t, 0, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestParticipantProcessorIdempotent(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	_, _, err := proc.Process(participantSubmission())
	require.NoError(t, err)
	_, _, err = proc.Process(participantSubmission())
	require.NoError(t, err)

	assert.EqualValues(t, 2, countRows(t, db, &participantModel.ParticipantModel{}))
}

func TestParticipantProcessorLinksEventByUUID(t *testing.T) {
	db := newTestDB(t)
	partner := newTestPartner(t, db)

	ev, _, err := NewEventProcessor(db, partner).Process(eventRecordWithGroups())
	require.NoError(t, err)

	r := participantSubmission()
	r["eventDetails/uuid_event"] = "uuid-event-1"

	saved, _, err := NewParticipantProcessor(db, partner).Process(r)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.NotNil(t, saved[0].ParticipantEventID)
	assert.Equal(t, ev.EventID, *saved[0].ParticipantEventID)
}

func TestParticipantProcessorEventLookupFailureRejectsRecord(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	// lookup yang error (bukan sekadar not-found) harus dilaporkan,
	// bukan diam-diam dianggap "tanpa event"
	require.NoError(t, db.Migrator().DropTable(&eventModel.EventModel{}))

	r := participantSubmission()
	r["eventDetails/uuid_event"] = "uuid-event-1"

	saved, _, err := proc.Process(r)
	require.Error(t, err)
	assert.Empty(t, saved)
}

func TestParticipantProcessorUnknownEventUUIDStillSaves(t *testing.T) {
	db := newTestDB(t)
	proc := NewParticipantProcessor(db, newTestPartner(t, db))

	r := participantSubmission()
	r["eventDetails/uuid_event"] = "uuid-tidak-ada"

	saved, errs, err := proc.Process(r)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, saved, 2)
	assert.Nil(t, saved[0].ParticipantEventID)
}
