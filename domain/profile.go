package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.user_profiles (
//     user_id     UUID PRIMARY KEY,
//     country     TEXT NOT NULL,
//     preferences JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

// ProfilePreference is one preference record attached to a user profile.
// The first record's budget range drives the budget category used by the
// recommendation context.
type ProfilePreference struct {
	InsuranceType string `json:"insurance_type"`
	BudgetRange   string `json:"budget_range"`
}

type UserProfile struct {
	UserID      string                                 `gorm:"primaryKey;column:user_id;type:uuid" json:"user_id"`
	Country     string                                 `gorm:"column:country;type:text;not null" json:"country"`
	Preferences datatypes.JSONSlice[ProfilePreference] `gorm:"column:preferences;type:jsonb" json:"preferences"`
	CreatedAt   time.Time                              `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time                              `gorm:"column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
