package models

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RescheduleAppointmentRequest запрос на перенос записи
type RescheduleAppointmentRequest struct {
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`      // "2026-01-15"
	StartTime string `json:"startTime"` // "14:00"
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	WorkerID        int64  `json:"workerId"`
	Date            string `json:"date"`      // "2026-01-15"
	StartTime       string `json:"startTime"` // "14:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	ServiceID   *int64  `json:"serviceId,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
	WorkerName  *string `json:"workerName,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		UserID:          appt.UserID,
		WorkerID:        appt.WorkerID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceID:       appt.ServiceID,
		ServiceName:     appt.ServiceName,
		WorkerName:      appt.WorkerName,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
		Total:        len(appts),
	}

	for _, appt := range appts {
		result.Appointments = append(result.Appointments, *FromDomainAppointment(appt))
	}

	return result
}
