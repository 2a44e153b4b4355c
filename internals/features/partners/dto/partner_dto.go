// file: internals/features/partners/dto/partner_dto.go
package dto

import (
	"strings"
	"time"

	"anadash_backend/internals/features/partners/model"
)

type CreatePartnerRequest struct {
	PartnerName     string  `json:"partner_name" validate:"required,min=2,max=255"`
	PartnerCountry  string  `json:"partner_country" validate:"required,len=2,alpha"`
	PartnerOdkID    *string `json:"partner_odk_id" validate:"omitempty,max=50"`
	PartnerAPIToken *string `json:"partner_api_token" validate:"omitempty,max=255"`
	PartnerIsActive *bool   `json:"partner_is_active"`
}

func (r *CreatePartnerRequest) Normalize() {
	r.PartnerName = strings.TrimSpace(r.PartnerName)
	r.PartnerCountry = strings.ToUpper(strings.TrimSpace(r.PartnerCountry))
}

func (r *CreatePartnerRequest) ToModel() *model.PartnerModel {
	active := true
	if r.PartnerIsActive != nil {
		active = *r.PartnerIsActive
	}
	return &model.PartnerModel{
		PartnerName:     r.PartnerName,
		PartnerCountry:  r.PartnerCountry,
		PartnerOdkID:    r.PartnerOdkID,
		PartnerAPIToken: r.PartnerAPIToken,
		PartnerIsActive: active,
	}
}

// Partial update: hanya field non-nil yang diubah.
type UpdatePartnerRequest struct {
	PartnerName     *string `json:"partner_name" validate:"omitempty,min=2,max=255"`
	PartnerCountry  *string `json:"partner_country" validate:"omitempty,len=2,alpha"`
	PartnerOdkID    *string `json:"partner_odk_id" validate:"omitempty,max=50"`
	PartnerAPIToken *string `json:"partner_api_token" validate:"omitempty,max=255"`
	PartnerIsActive *bool   `json:"partner_is_active"`
}

func (r *UpdatePartnerRequest) Apply(m *model.PartnerModel) map[string]any {
	updates := map[string]any{}
	if r.PartnerName != nil {
		updates["partner_name"] = strings.TrimSpace(*r.PartnerName)
	}
	if r.PartnerCountry != nil {
		updates["partner_country"] = strings.ToUpper(strings.TrimSpace(*r.PartnerCountry))
	}
	if r.PartnerOdkID != nil {
		updates["partner_odk_id"] = *r.PartnerOdkID
	}
	if r.PartnerAPIToken != nil {
		updates["partner_api_token"] = *r.PartnerAPIToken
	}
	if r.PartnerIsActive != nil {
		updates["partner_is_active"] = *r.PartnerIsActive
	}
	return updates
}

type PartnerResponse struct {
	PartnerID       string     `json:"partner_id"`
	PartnerName     string     `json:"partner_name"`
	PartnerCountry  string     `json:"partner_country"`
	PartnerOdkID    *string    `json:"partner_odk_id,omitempty"`
	PartnerIsActive bool       `json:"partner_is_active"`
	PartnerLastSync *time.Time `json:"partner_last_sync,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToPartnerResponse(m *model.PartnerModel) PartnerResponse {
	return PartnerResponse{
		PartnerID:       m.PartnerID.String(),
		PartnerName:     m.PartnerName,
		PartnerCountry:  m.PartnerCountry,
		PartnerOdkID:    m.PartnerOdkID,
		PartnerIsActive: m.PartnerIsActive,
		PartnerLastSync: m.PartnerLastSync,
		CreatedAt:       m.PartnerCreatedAt,
	}
}

// PartnerStatisticsResponse: ringkasan jumlah entitas + kesehatan sync.
type PartnerStatisticsResponse struct {
	PartnerID         string     `json:"partner_id"`
	PartnerName       string     `json:"partner_name"`
	Events            int64      `json:"events"`
	Participants      int64      `json:"participants"`
	Farmers           int64      `json:"farmers"`
	ExtensionAgents   int64      `json:"extension_agents"`
	Checklists        int64      `json:"checklists"`
	TotalRuns         int64      `json:"total_runs"`
	FailedRuns        int64      `json:"failed_runs"`
	LastSync          *time.Time `json:"last_sync,omitempty"`
	LastRunStatus     string     `json:"last_run_status,omitempty"`
	LastRunStartTime  *time.Time `json:"last_run_start_time,omitempty"`
	TotalParticipants int64      `json:"total_participants"`
}
