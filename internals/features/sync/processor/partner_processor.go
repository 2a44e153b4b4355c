// file: internals/features/sync/processor/partner_processor.go
package processor

import (
	"fmt"
	"strings"

	partnerModel "anadash_backend/internals/features/partners/model"

	"gorm.io/gorm"
)

// PartnerProcessor memproses payload profil partner dari sumber.
// Catatan: cursor last_sync TIDAK disentuh di sini — itu milik
// orchestrator, dan hanya maju pada run success/partial.
type PartnerProcessor struct {
	DB *gorm.DB
}

func NewPartnerProcessor(db *gorm.DB) *PartnerProcessor {
	return &PartnerProcessor{DB: db}
}

func (p *PartnerProcessor) Process(r RawRecord) (*partnerModel.PartnerModel, error) {
	if err := validatePartner(r); err != nil {
		return nil, err
	}

	isActive := true
	if r.Has("is_active") {
		// terima boolean JSON maupun token "yes"
		if b, ok := r["is_active"].(bool); ok {
			isActive = b
		} else {
			isActive = r.GetBool("is_active")
		}
	}

	odkID := r.ExternalID()
	assign := map[string]any{
		"partner_name":      r.GetString("name"),
		"partner_country":   strings.ToUpper(r.GetString("country")),
		"partner_is_active": isActive,
		"partner_odk_id":    odkID,
	}

	partner := partnerModel.PartnerModel{}
	if err := p.DB.
		Where("partner_odk_id = ?", odkID).
		Assign(assign).
		FirstOrCreate(&partner).Error; err != nil {
		return nil, fmt.Errorf("upsert partner %s: %w", odkID, err)
	}
	return &partner, nil
}
