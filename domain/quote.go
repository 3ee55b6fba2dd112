package domain

import "time"

// CREATE TABLE public.quote_requests (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id      UUID NOT NULL,
//     product_id   UUID NOT NULL,
//     full_name    TEXT NOT NULL,
//     email        TEXT NOT NULL,
//     phone        TEXT,
//     message      TEXT,
//     status       TEXT DEFAULT 'pending',
//     created_at   TIMESTAMPTZ DEFAULT NOW(),
//     updated_at   TIMESTAMPTZ DEFAULT NOW()
// );

type QuoteRequest struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	ProductID string    `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	FullName  string    `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email     string    `gorm:"column:email;type:text;not null" json:"email"`
	Phone     string    `gorm:"column:phone;type:text" json:"phone"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	Status    string    `gorm:"column:status;type:text;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// CREATE TABLE public.notifications (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id    UUID NOT NULL,
//     title      TEXT NOT NULL,
//     body       TEXT,
//     channel    TEXT DEFAULT 'email',
//     is_read    BOOLEAN DEFAULT FALSE,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

type Notification struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title     string    `gorm:"column:title;type:text;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Channel   string    `gorm:"column:channel;type:text;default:email" json:"channel"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
