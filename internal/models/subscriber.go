package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter signup. Emails are stored lowercased; the store
// enforces case-insensitive uniqueness.
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriberStat is one month of signups, for the dashboard chart data.
type SubscriberStat struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}
