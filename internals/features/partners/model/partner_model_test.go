// file: internals/features/partners/model/partner_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceLastSyncNeverRegresses(t *testing.T) {
	p := PartnerModel{}

	t1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, p.AdvanceLastSync(t1))
	assert.True(t, p.PartnerLastSync.Equal(t1))

	// mundur ditolak
	earlier := t1.Add(-time.Hour)
	assert.False(t, p.AdvanceLastSync(earlier))
	assert.True(t, p.PartnerLastSync.Equal(t1))

	// waktu sama juga bukan kemajuan
	assert.False(t, p.AdvanceLastSync(t1))

	t2 := t1.Add(time.Hour)
	assert.True(t, p.AdvanceLastSync(t2))
	assert.True(t, p.PartnerLastSync.Equal(t2))
}
