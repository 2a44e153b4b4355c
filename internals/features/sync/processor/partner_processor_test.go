// file: internals/features/sync/processor/partner_processor_test.go
package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerModel "anadash_backend/internals/features/partners/model"
)

func TestPartnerProcessorUpsertByOdkID(t *testing.T) {
	db := newTestDB(t)
	proc := NewPartnerProcessor(db)

	r := RawRecord{"_id": "55", "name": "ACME Ag", "country": "tz"}
	first, err := proc.Process(r)
	require.NoError(t, err)
	assert.Equal(t, "ACME Ag", first.PartnerName)
	assert.Equal(t, "TZ", first.PartnerCountry)
	assert.True(t, first.PartnerIsActive)

	r["name"] = "ACME Agriculture"
	r["is_active"] = false
	second, err := proc.Process(r)
	require.NoError(t, err)

	assert.Equal(t, first.PartnerID, second.PartnerID)
	assert.Equal(t, "ACME Agriculture", second.PartnerName)
	assert.False(t, second.PartnerIsActive)
	assert.EqualValues(t, 1, countRows(t, db, &partnerModel.PartnerModel{}))
}

func TestPartnerProcessorDoesNotTouchCursor(t *testing.T) {
	db := newTestDB(t)
	proc := NewPartnerProcessor(db)

	last := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	odkID := "77"
	seeded := partnerModel.PartnerModel{
		PartnerName:     "Seeded",
		PartnerCountry:  "NG",
		PartnerOdkID:    &odkID,
		PartnerIsActive: true,
		PartnerLastSync: &last,
	}
	require.NoError(t, db.Create(&seeded).Error)

	_, err := proc.Process(RawRecord{"_id": "77", "name": "Seeded v2", "country": "NG"})
	require.NoError(t, err)

	var got partnerModel.PartnerModel
	require.NoError(t, db.First(&got, "partner_id = ?", seeded.PartnerID).Error)
	assert.Equal(t, "Seeded v2", got.PartnerName)
	// cursor milik orchestrator; processor tidak boleh mengubahnya
	require.NotNil(t, got.PartnerLastSync)
	assert.True(t, got.PartnerLastSync.Equal(last))
}
