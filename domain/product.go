package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                   UUID PRIMARY KEY,
//     name                 TEXT NOT NULL,
//     brand                TEXT,
//     price                NUMERIC NOT NULL,
//     currency             TEXT DEFAULT 'USD',
//     product_type         TEXT NOT NULL,
//     sector_slug          TEXT,
//     features             JSONB,
//     country_availability JSONB,
//     is_active            BOOLEAN DEFAULT TRUE,
//     created_at           TIMESTAMPTZ DEFAULT NOW(),
//     updated_at           TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                  string                      `gorm:"primaryKey;type:uuid" json:"id"`
	Name                string                      `gorm:"column:name;type:text;not null" json:"name"`
	Brand               string                      `gorm:"column:brand;type:text" json:"brand"`
	Price               float64                     `gorm:"column:price;type:numeric;not null" json:"price"`
	Currency            string                      `gorm:"column:currency;type:text;default:USD" json:"currency"`
	ProductType         string                      `gorm:"column:product_type;type:text;not null" json:"product_type"`
	SectorSlug          string                      `gorm:"column:sector_slug;type:text" json:"sector_slug"`
	Features            datatypes.JSONSlice[string] `gorm:"column:features;type:jsonb" json:"features"`
	CountryAvailability datatypes.JSONSlice[string] `gorm:"column:country_availability;type:jsonb" json:"country_availability"`
	IsActive            bool                        `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt           time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// AvailableIn reports whether the product can be offered in the given country.
func (p Product) AvailableIn(country string) bool {
	for _, c := range p.CountryAvailability {
		if c == country {
			return true
		}
	}
	return false
}
