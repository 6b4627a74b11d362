package domain

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a reserved time slot for a worker
type Appointment struct {
	ID       int64
	UserID   int64
	WorkerID int64

	Date            time.Time // дата без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history and chat messages
	ServiceID   *int64
	ServiceName *string
	WorkerName  *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
// Any non-cancelled appointment counts as active.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment slot can be moved
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StatusDisplay display metadata for an appointment status
type StatusDisplay struct {
	Text  string
	Badge string
}

// Таблица отображения статусов (тексты на турецком - язык клиентов салона)
var statusDisplays = map[AppointmentStatus]StatusDisplay{
	StatusPending:   {Text: "Beklemede", Badge: "warning"},
	StatusConfirmed: {Text: "Onaylandı", Badge: "success"},
	StatusCancelled: {Text: "İptal Edildi", Badge: "danger"},
	StatusCompleted: {Text: "Tamamlandı", Badge: "secondary"},
}

// DisplayFor returns display metadata for a status.
// Unknown statuses fall back to the raw value with a neutral badge.
func DisplayFor(status AppointmentStatus) StatusDisplay {
	if d, ok := statusDisplays[status]; ok {
		return d
	}
	return StatusDisplay{Text: string(status), Badge: "secondary"}
}

// ValidStatus reports whether the value is a known appointment status
func ValidStatus(status AppointmentStatus) bool {
	_, ok := statusDisplays[status]
	return ok
}
