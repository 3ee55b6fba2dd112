package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.user_interactions (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id          UUID NOT NULL,
//     interaction_type TEXT NOT NULL,
//     product_id       UUID,
//     duration_seconds INT,
//     metadata         JSONB,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

const (
	InteractionView    = "view"
	InteractionClick   = "click"
	InteractionCompare = "compare"
	InteractionQuote   = "quote_request"
)

// InteractionMetadata carries the optional per-interaction payload. Fields
// are explicit rather than a free-form map so absence is visible at the type
// level and values are validated once, at ingestion.
type InteractionMetadata struct {
	PriceViewed    *float64 `json:"price_viewed,omitempty"`
	FeaturesViewed []string `json:"features_viewed,omitempty"`
}

// Validate rejects metadata that would corrupt derived behavioral signals.
func (m InteractionMetadata) Validate() error {
	if m.PriceViewed != nil && *m.PriceViewed < 0 {
		return errors.New("price_viewed must not be negative")
	}
	for _, f := range m.FeaturesViewed {
		if f == "" {
			return errors.New("features_viewed must not contain empty tags")
		}
	}
	return nil
}

type Interaction struct {
	ID              uint64                                  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string                                  `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	InteractionType string                                  `gorm:"column:interaction_type;type:text;not null" json:"interaction_type"`
	ProductID       string                                  `gorm:"column:product_id;type:uuid" json:"product_id,omitempty"`
	DurationSeconds *int                                    `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	Metadata        datatypes.JSONType[InteractionMetadata] `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt       time.Time                               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "user_interactions"
}
