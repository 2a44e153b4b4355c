// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Enum: EventType & EventFormat (mirror enum SQL)
====================================================== */

type EventType string

const (
	EventTypeTraining      EventType = "training_event"
	EventTypeSensitization EventType = "sensitization_event"
	EventTypeDigital       EventType = "digital_event"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeTraining, EventTypeSensitization, EventTypeDigital:
		return true
	}
	return false
}

type EventFormat string

const (
	EventFormatPaper   EventFormat = "paper"
	EventFormatDigital EventFormat = "digital"
	EventFormatHybrid  EventFormat = "hybrid"
)

/* ======================================================
   Model
====================================================== */

type EventModel struct {
	// PK
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`

	// Relasi
	EventPartnerID  uuid.UUID `gorm:"column:event_partner_id;type:uuid;not null;index" json:"event_partner_id"`
	EventLocationID uuid.UUID `gorm:"column:event_location_id;type:uuid;not null;index" json:"event_location_id"`

	// Detail event
	EventTitle     string      `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventTitleFull *string     `gorm:"column:event_title_full;type:text" json:"event_title_full,omitempty"`
	EventType      EventType   `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"`
	EventFormat    EventFormat `gorm:"column:event_format;type:varchar(10);not null" json:"event_format"`
	EventVenue     string      `gorm:"column:event_venue;type:varchar(255)" json:"event_venue"`
	EventTopics    string      `gorm:"column:event_topics;type:text" json:"event_topics"`
	EventUseCase   string      `gorm:"column:event_use_case;type:varchar(50)" json:"event_use_case"`
	EventRemarks   string      `gorm:"column:event_remarks;type:text" json:"event_remarks"`

	// Tanggal (end >= start, dijaga validator sync)
	EventStartDate time.Time `gorm:"column:event_start_date;type:date;not null" json:"event_start_date"`
	EventEndDate   time.Time `gorm:"column:event_end_date;type:date;not null" json:"event_end_date"`

	// Metadata submission sumber
	EventOdkID          string    `gorm:"column:event_odk_id;type:varchar(50);uniqueIndex;not null" json:"event_odk_id"`
	EventOdkUUID        string    `gorm:"column:event_odk_uuid;type:varchar(50);uniqueIndex;not null" json:"event_odk_uuid"`
	EventSubmittedBy    *string   `gorm:"column:event_submitted_by;type:varchar(255)" json:"event_submitted_by,omitempty"`
	EventSubmissionTime time.Time `gorm:"column:event_submission_time;not null" json:"event_submission_time"`

	// Audit
	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
