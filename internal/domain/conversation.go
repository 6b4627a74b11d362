package domain

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// ConversationStep дискретный шаг диалога бронирования
type ConversationStep string

const (
	StepInitial               ConversationStep = "initial"
	StepAwaitingWorker        ConversationStep = "awaiting_worker"
	StepAwaitingService       ConversationStep = "awaiting_service"
	StepAwaitingDate          ConversationStep = "awaiting_date"
	StepAwaitingTime          ConversationStep = "awaiting_time"
	StepConfirming            ConversationStep = "confirming_appointment"
	StepCancellingAppointment ConversationStep = "cancelling_appointment"
)

// ConversationState represents the in-flight booking dialog for one customer.
// Owned by the conversation store; the state machine borrows it for the
// duration of one inbound message. JSON tags are used by the Redis backend.
type ConversationState struct {
	PhoneNumber string           `json:"phone_number"`
	CurrentStep ConversationStep `json:"current_step"`

	SelectedWorkerID   *int64            `json:"selected_worker_id,omitempty"`
	SelectedWorkerName *string           `json:"selected_worker_name,omitempty"`
	SelectedServiceID  *int64            `json:"selected_service_id,omitempty"`
	SelectedService    *string           `json:"selected_service,omitempty"`
	ServiceDuration    int               `json:"service_duration,omitempty"`
	SelectedDate       *time.Time        `json:"selected_date,omitempty"`
	SelectedTime       *types.TimeString `json:"selected_time,omitempty"`

	// Страница списка слотов, когда все слоты не помещаются в один список
	TimePage int `json:"time_page,omitempty"`

	LastUpdated time.Time `json:"last_updated"`
}

// Clone returns a deep copy so callers never share pointers with the store.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return nil
	}
	clone := *s
	clone.SelectedWorkerID = clonePtr(s.SelectedWorkerID)
	clone.SelectedWorkerName = clonePtr(s.SelectedWorkerName)
	clone.SelectedServiceID = clonePtr(s.SelectedServiceID)
	clone.SelectedService = clonePtr(s.SelectedService)
	clone.SelectedDate = clonePtr(s.SelectedDate)
	clone.SelectedTime = clonePtr(s.SelectedTime)
	return &clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
