// file: internals/features/sync/processor/raw_record_test.go
package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecordGetString(t *testing.T) {
	r := RawRecord{
		"name":    "  Amina  ",
		"id_num":  float64(763697),
		"ratio":   float64(1.5),
		"nothing": nil,
	}

	assert.Equal(t, "Amina", r.GetString("name"))
	// _id dari Ona datang sebagai JSON number, harus jadi "763697" bukan "763697.000000"
	assert.Equal(t, "763697", r.GetString("id_num"))
	assert.Equal(t, "1.5", r.GetString("ratio"))
	assert.Equal(t, "", r.GetString("nothing"))
	assert.Equal(t, "", r.GetString("absent"))
}

func TestRawRecordGetBool(t *testing.T) {
	r := RawRecord{"a": "yes", "b": "Yes", "c": "no", "d": "true"}

	assert.True(t, r.GetBool("a"))
	assert.True(t, r.GetBool("b"))
	assert.False(t, r.GetBool("c"))
	// hanya token "yes" yang dianggap true
	assert.False(t, r.GetBool("d"))
	assert.False(t, r.GetBool("absent"))
}

func TestRawRecordGetStringList(t *testing.T) {
	r := RawRecord{"crops": "cassava  maize\tyam", "empty": "   "}

	assert.Equal(t, []string{"cassava", "maize", "yam"}, r.GetStringList("crops"))
	assert.Equal(t, []string{}, r.GetStringList("empty"))
	assert.Equal(t, []string{}, r.GetStringList("absent"))
	assert.NotNil(t, r.GetStringList("absent"))
}

func TestRawRecordGetDecimal(t *testing.T) {
	r := RawRecord{"f": float64(2.5), "s": "3.75", "bad": "abc", "empty": ""}

	f, err := r.GetDecimal("f")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	s, err := r.GetDecimal("s")
	require.NoError(t, err)
	assert.Equal(t, 3.75, s)

	_, err = r.GetDecimal("bad")
	assert.Error(t, err)
	_, err = r.GetDecimal("empty")
	assert.Error(t, err)
	_, err = r.GetDecimal("absent")
	assert.Error(t, err)
}

func TestRawRecordGetTime(t *testing.T) {
	r := RawRecord{
		"date":     "2024-03-15",
		"datetime": "2024-03-15T10:30:00",
		"iso":      "2024-03-15T10:30:00.123+03:00",
		"bad":      "15/03/2024",
	}

	d, err := r.GetTime("date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = r.GetTime("datetime")
	require.NoError(t, err)
	_, err = r.GetTime("iso")
	require.NoError(t, err)

	_, err = r.GetTime("bad")
	assert.Error(t, err)
	_, err = r.GetTime("absent")
	assert.Error(t, err)
}

func TestRawRecordSubRecords(t *testing.T) {
	r := RawRecord{
		"repeatPP": []any{
			map[string]any{"repeatPP/firstNamePP": "Ada"},
			map[string]any{"repeatPP/firstNamePP": "Bala"},
		},
		"notalist": "x",
	}

	subs := r.SubRecords("repeatPP")
	require.Len(t, subs, 2)
	assert.Equal(t, "Ada", subs[0].GetString("repeatPP/firstNamePP"))

	assert.Nil(t, r.SubRecords("notalist"))
	assert.Nil(t, r.SubRecords("absent"))
}

func TestRawRecordExternalID(t *testing.T) {
	// _id bisa datang sebagai angka maupun string, dua-duanya harus
	// menghasilkan id yang sama.
	asNumber := RawRecord{"_id": float64(12345678)}
	asString := RawRecord{"_id": "12345678"}

	assert.Equal(t, "12345678", asNumber.ExternalID())
	assert.Equal(t, asNumber.ExternalID(), asString.ExternalID())
}
