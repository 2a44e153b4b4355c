// file: internals/features/sync/processor/testdb_test.go
package processor

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	databases "anadash_backend/internals/databases"
	partnerModel "anadash_backend/internals/features/partners/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, databases.Migrate(db))
	return db
}

func newTestPartner(t *testing.T, db *gorm.DB) *partnerModel.PartnerModel {
	t.Helper()
	p := &partnerModel.PartnerModel{
		PartnerName:     "Test Partner",
		PartnerCountry:  "NG",
		PartnerIsActive: true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
