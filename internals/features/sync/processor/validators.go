// file: internals/features/sync/processor/validators.go
package processor

import (
	"errors"
	"fmt"
	"strings"

	"anadash_backend/internals/constants"
	participantModel "anadash_backend/internals/features/participants/model"
)

/* ======================================================
   ValidationError: kumpulkan SEMUA field bermasalah,
   bukan cuma yang pertama.
====================================================== */

type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func newValidationError(problems []string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

/* ======================================================
   Rule helpers
====================================================== */

// requireFields: selisih antara daftar field wajib dan key yang hadir.
func requireFields(r RawRecord, required []string) []string {
	var problems []string
	for _, f := range required {
		if !r.Has(f) {
			problems = append(problems, fmt.Sprintf("field wajib hilang: %s", f))
		}
	}
	return problems
}

func checkDate(r RawRecord, key string) []string {
	if !r.Has(key) {
		return nil
	}
	if _, err := r.GetTime(key); err != nil {
		return []string{fmt.Sprintf("tanggal tidak valid di %s: %q", key, r.GetString(key))}
	}
	return nil
}

func checkGender(r RawRecord, key string) []string {
	if !r.Has(key) {
		return nil
	}
	g := participantModel.Gender(strings.ToLower(r.GetString(key)))
	if !g.Valid() {
		return []string{fmt.Sprintf("gender tidak dikenal di %s: %q", key, r.GetString(key))}
	}
	return nil
}

// checkHascList: semua kode di field (dipisah spasi) harus pakai prefix
// negara yang didukung.
func checkHascList(r RawRecord, key string) []string {
	if !r.Has(key) {
		return nil
	}
	var problems []string
	for _, code := range r.GetStringList(key) {
		if !constants.HasSupportedHascPrefix(code) {
			problems = append(problems, fmt.Sprintf("kode HASC tidak didukung di %s: %q", key, code))
		}
	}
	return problems
}

// checkFarmArea: luas lahan harus > 0 dan <= 10000 (tolak nilai absurd).
func checkFarmArea(r RawRecord, key string) []string {
	area, err := r.GetDecimal(key)
	if err != nil {
		return []string{fmt.Sprintf("luas lahan tidak valid di %s: %q", key, r.GetString(key))}
	}
	if area <= participantModel.FarmAreaMin || area > participantModel.FarmAreaMax {
		return []string{fmt.Sprintf("luas lahan di luar batas di %s: %v", key, area)}
	}
	return nil
}

/* ======================================================
   Per-entity validators
   Field wajib mengikuti form Ona masing-masing.
====================================================== */

var eventRequiredFields = []string{
	"_id", "_uuid", "eventDetails/event",
	"eventLocation/startdate", "eventLocation/hasc1",
}

func validateEvent(r RawRecord) error {
	problems := requireFields(r, eventRequiredFields)
	problems = append(problems, checkDate(r, "eventLocation/startdate")...)
	problems = append(problems, checkDate(r, "eventLocation/enddate")...)
	if len(problems) > 0 {
		return newValidationError(problems)
	}

	// Cross-field: jalan setelah per-field lolos.
	start, _ := r.GetTime("eventLocation/startdate")
	if r.Has("eventLocation/enddate") {
		end, _ := r.GetTime("eventLocation/enddate")
		if end.Before(start) {
			problems = append(problems, "enddate sebelum startdate")
		}
	}
	format := strings.ToLower(r.GetString("contentDetails/format"))
	if format != "digital" && r.GetString("eventLocation/venue") == "" {
		problems = append(problems, "venue wajib kecuali format digital")
	}
	if len(problems) > 0 {
		return newValidationError(problems)
	}
	return nil
}

var participantRequiredFields = []string{"_id", "_uuid", "repeatPP"}

func validateParticipantSubmission(r RawRecord) error {
	problems := requireFields(r, participantRequiredFields)
	if len(problems) > 0 {
		return newValidationError(problems)
	}
	if _, ok := r["repeatPP"].([]any); !ok {
		return newValidationError([]string{"repeatPP harus berupa list"})
	}
	return nil
}

var extensionAgentRequiredFields = []string{
	"_id", "_uuid", "detailsEA/firstName", "detailsEA/surName",
	"detailsEA/gender", "detailsEA/phoneNr", "detailsEA/org",
}

func validateExtensionAgent(r RawRecord) error {
	problems := requireFields(r, extensionAgentRequiredFields)
	problems = append(problems, checkGender(r, "detailsEA/gender")...)
	problems = append(problems, checkHascList(r, "areaOperation/hasc1")...)
	if len(problems) > 0 {
		return newValidationError(problems)
	}
	return nil
}

var farmerRequiredFields = []string{
	"_id", "_uuid", "farmerDetails/firstNamePP", "farmerDetails/surNamePP",
	"farmerDetails/genderPP", "farmerDetails/farmAreaPP",
	"farmerDetails/area_unit", "farmerDetails/hasc1",
	"sourceDetails/source", "sourceDetails/startdate",
}

func validateFarmer(r RawRecord) error {
	problems := requireFields(r, farmerRequiredFields)
	problems = append(problems, checkGender(r, "farmerDetails/genderPP")...)
	problems = append(problems, checkDate(r, "sourceDetails/startdate")...)
	if r.Has("farmerDetails/farmAreaPP") {
		problems = append(problems, checkFarmArea(r, "farmerDetails/farmAreaPP")...)
	}
	if r.Has("farmerDetails/hasc1") {
		problems = append(problems, checkHascList(r, "farmerDetails/hasc1")...)
	}
	if len(problems) > 0 {
		return newValidationError(problems)
	}
	if unit := participantModel.AreaUnit(r.GetString("farmerDetails/area_unit")); !unit.Valid() {
		return newValidationError([]string{fmt.Sprintf("satuan luas tidak dikenal: %q", r.GetString("farmerDetails/area_unit"))})
	}
	return nil
}

var checklistRequiredFields = []string{
	"_id", "_uuid", "main_business", "Core_business",
	"target_group", "main_target_group",
}

func validateChecklist(r RawRecord) error {
	if problems := requireFields(r, checklistRequiredFields); len(problems) > 0 {
		return newValidationError(problems)
	}
	return nil
}

var partnerRequiredFields = []string{"_id", "name", "country"}

func validatePartner(r RawRecord) error {
	problems := requireFields(r, partnerRequiredFields)
	if r.Has("country") && len(r.GetString("country")) != 2 {
		problems = append(problems, fmt.Sprintf("kode negara harus 2 huruf: %q", r.GetString("country")))
	}
	if len(problems) > 0 {
		return newValidationError(problems)
	}
	return nil
}
