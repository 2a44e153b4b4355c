// file: internals/features/sync/processor/raw_record.go
package processor

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRecord: satu submission mentah dari form source — map key/value
// dengan key ber-namespace slash (mis. "eventLocation/startdate").
// Semua aturan default/parse dikumpulkan di accessor ini supaya tidak
// tersebar .get(key, default) di mana-mana.
type RawRecord map[string]any

// Format tanggal yang diterima dari sumber (ISO date / datetime).
var sourceTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r RawRecord) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// GetString: nilai string ter-trim; angka diformat; absen/nil => "".
func (r RawRecord) GetString(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON number; _id dari Ona datang sebagai angka
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// GetDecimal: parse angka; absen/kosong/tidak valid => error, bukan 0 diam-diam.
func (r RawRecord) GetDecimal(key string) (float64, error) {
	if v, ok := r[key]; ok {
		if f, ok := v.(float64); ok {
			return f, nil
		}
	}
	s := r.GetString(key)
	if s == "" {
		return 0, fmt.Errorf("field %s kosong", key)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s bukan angka: %q", key, s)
	}
	return f, nil
}

// GetInt: angka bulat; absen/invalid => 0 (counter opsional dari sumber).
func (r RawRecord) GetInt(key string) int {
	f, err := r.GetDecimal(key)
	if err != nil {
		return 0
	}
	return int(f)
}

// GetStringList: field list dari sumber datang sebagai string dipisah
// whitespace. Absen/kosong => slice kosong, tidak pernah nil.
func (r RawRecord) GetStringList(key string) []string {
	s := r.GetString(key)
	if s == "" {
		return []string{}
	}
	return strings.Fields(s)
}

// GetBool: boolean dari sumber berupa token "yes"; selain itu false.
func (r RawRecord) GetBool(key string) bool {
	return strings.EqualFold(r.GetString(key), "yes")
}

// GetTime: parse tanggal/datetime ISO; nilai tak terparse => error.
func (r RawRecord) GetTime(key string) (time.Time, error) {
	s := r.GetString(key)
	if s == "" {
		return time.Time{}, fmt.Errorf("field %s kosong", key)
	}
	for _, layout := range sourceTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("field %s bukan tanggal ISO: %q", key, s)
}

// SubRecords: repeated group (mis. participantRepeat, repeatPP).
// Absen / bukan list => nil.
func (r RawRecord) SubRecords(key string) []RawRecord {
	v, ok := r[key]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]RawRecord, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}

// ExternalID: id submission durable dari sumber ("_id"; angka atau string).
func (r RawRecord) ExternalID() string {
	return r.GetString("_id")
}

func (r RawRecord) UUID() string {
	return r.GetString("_uuid")
}

func (r RawRecord) SubmissionTime() (time.Time, error) {
	return r.GetTime("_submission_time")
}
