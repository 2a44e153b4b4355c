package constants

// Form types yang dikenal orchestrator. Urutan SyncFormTypeOrder
// menentukan urutan proses: parent dulu, baru dependent.
const (
	FormTypeAll             = "all"
	FormTypePartners        = "partners"
	FormTypeEvents          = "events"
	FormTypeParticipants    = "participants"
	FormTypeExtensionAgents = "extension-agents"
	FormTypeFarmers         = "farmers"
	FormTypeChecklist       = "checklist"
)

var SyncFormTypeOrder = []string{
	FormTypePartners,
	FormTypeEvents,
	FormTypeParticipants,
	FormTypeExtensionAgents,
	FormTypeFarmers,
	FormTypeChecklist,
}

// Default Ona form IDs per form type. Bisa dioverride lewat ENV
// ONA_FORM_ID_<TYPE> (lihat client.ResolveFormID).
var DefaultFormIDs = map[string]string{
	FormTypeEvents:          "763697", // AKILIMO Events
	FormTypeParticipants:    "763725", // AKILIMO Participants
	FormTypeExtensionAgents: "765372", // AKILIMO EAs
	FormTypeFarmers:         "765230", // Farmer Self Registration
	FormTypeChecklist:       "627778", // Scaling Checklist
	// partners: tidak ada form khusus di Ona; kosong = skip saat pull
	FormTypePartners: "",
}

func IsKnownFormType(ft string) bool {
	if ft == FormTypeAll {
		return true
	}
	for _, t := range SyncFormTypeOrder {
		if t == ft {
			return true
		}
	}
	return false
}
