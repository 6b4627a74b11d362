package domain

import "time"

// User represents a customer identified by WhatsApp phone number
type User struct {
	ID          int64
	PhoneNumber string
	Name        *string
	CreatedAt   time.Time
	LastContact time.Time
}
