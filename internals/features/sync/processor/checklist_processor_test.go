// file: internals/features/sync/processor/checklist_processor_test.go
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checklistModel "anadash_backend/internals/features/checklists/model"
)

func validChecklistRecord() RawRecord {
	return RawRecord{
		"_id":               "930001",
		"_uuid":             "uuid-cl-1",
		"_submission_time":  "2024-05-04T11:00:00",
		"main_business":     "agro_input",
		"Core_business":     "extension",
		"target_group":      "farmers agrodealers",
		"main_target_group": "farmers",
		"knowAKILIMO":       "yes",
		"MEL/system":        "kobo",
		"MEL/data_collection": "yes",
	}
}

func TestChecklistProcessorCreates(t *testing.T) {
	db := newTestDB(t)
	proc := NewChecklistProcessor(db, newTestPartner(t, db))

	cl, err := proc.Process(validChecklistRecord())
	require.NoError(t, err)

	assert.Equal(t, "agro_input", cl.ScalingChecklistMainBusiness)
	assert.Equal(t, []string{"farmers", "agrodealers"}, []string(cl.ScalingChecklistTargetGroups))
	assert.True(t, cl.ScalingChecklistKnowsAkilimo)
	// has_mel_system diturunkan dari MEL/system terisi
	assert.True(t, cl.ScalingChecklistHasMelSystem)
	assert.Equal(t, "kobo", cl.ScalingChecklistSystemType)
	assert.True(t, cl.ScalingChecklistCollectsData)
}

func TestChecklistProcessorNoMelSystem(t *testing.T) {
	db := newTestDB(t)
	proc := NewChecklistProcessor(db, newTestPartner(t, db))

	r := validChecklistRecord()
	delete(r, "MEL/system")

	cl, err := proc.Process(r)
	require.NoError(t, err)
	assert.False(t, cl.ScalingChecklistHasMelSystem)
	assert.Empty(t, cl.ScalingChecklistSystemType)
}

func TestChecklistProcessorIdempotent(t *testing.T) {
	db := newTestDB(t)
	proc := NewChecklistProcessor(db, newTestPartner(t, db))

	first, err := proc.Process(validChecklistRecord())
	require.NoError(t, err)

	r := validChecklistRecord()
	r["main_business"] = "research"
	second, err := proc.Process(r)
	require.NoError(t, err)

	assert.Equal(t, first.ScalingChecklistID, second.ScalingChecklistID)
	assert.Equal(t, "research", second.ScalingChecklistMainBusiness)
	assert.EqualValues(t, 1, countRows(t, db, &checklistModel.ScalingChecklistModel{}))
}

func TestChecklistProcessorMissingFieldsRejected(t *testing.T) {
	db := newTestDB(t)
	proc := NewChecklistProcessor(db, newTestPartner(t, db))

	r := validChecklistRecord()
	delete(r, "main_business")
	delete(r, "main_target_group")

	_, err := proc.Process(r)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
