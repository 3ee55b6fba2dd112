package domain

import (
	"time"
)

// CREATE TABLE public.sectors (
//     sector_id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     slug        TEXT NOT NULL UNIQUE,
//     name        TEXT NOT NULL,
//     description TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// Sector is a comparison vertical (insurance, banking, telecom, energy).
type Sector struct {
	SectorID    uint64    `gorm:"primaryKey;column:sector_id;autoIncrement" json:"sector_id"`
	Slug        string    `gorm:"column:slug;type:text;not null;unique" json:"slug"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Sector) TableName() string {
	return "sectors"
}
