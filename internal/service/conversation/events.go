package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// ReplyKind тип интерактивного ответа пользователя
type ReplyKind int

const (
	ReplyUnknown ReplyKind = iota
	ReplyWorker
	ReplyService
	ReplyDate
	ReplyTime
	ReplyTimePage
	ReplyCancel
	ReplyConfirmYes
	ReplyConfirmNo
)

// Идентификаторы интерактивных ответов: префикс + payload
const (
	replyPrefixWorker  = "worker_"
	replyPrefixService = "service_"
	replyPrefixDate    = "date_"
	replyPrefixTime    = "time_"
	replyPrefixCancel  = "cancel_"

	replyConfirmYes = "confirm_yes"
	replyConfirmNo  = "confirm_no"
	replyTimePage2  = "time_page_2"
)

// AllowedAtStep сообщает, ожидается ли ответ такого вида на данном шаге диалога
func (k ReplyKind) AllowedAtStep(step domain.ConversationStep) bool {
	switch k {
	case ReplyWorker:
		return step == domain.StepAwaitingWorker
	case ReplyService:
		return step == domain.StepAwaitingService
	case ReplyDate:
		return step == domain.StepAwaitingDate
	case ReplyTime, ReplyTimePage:
		return step == domain.StepAwaitingTime
	case ReplyConfirmYes, ReplyConfirmNo:
		return step == domain.StepConfirming
	case ReplyCancel:
		return step == domain.StepCancellingAppointment
	default:
		return false
	}
}

// ReplyEvent разобранный интерактивный ответ
// Заполнено только поле, соответствующее Kind
type ReplyEvent struct {
	Kind ReplyKind

	WorkerID      int64
	ServiceID     int64
	Date          time.Time
	Time          types.TimeString
	AppointmentID int64
	Page          int
}

// ParseReplyID разбирает reply ID в типизированное событие
// Вся расшифровка префиксов собрана здесь, дальше диалог работает с ReplyEvent
func ParseReplyID(replyID string) (ReplyEvent, error) {
	switch replyID {
	case replyConfirmYes:
		return ReplyEvent{Kind: ReplyConfirmYes}, nil
	case replyConfirmNo:
		return ReplyEvent{Kind: ReplyConfirmNo}, nil
	case replyTimePage2:
		return ReplyEvent{Kind: ReplyTimePage, Page: 2}, nil
	}

	switch {
	case strings.HasPrefix(replyID, replyPrefixWorker):
		id, err := strconv.ParseInt(strings.TrimPrefix(replyID, replyPrefixWorker), 10, 64)
		if err != nil {
			return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
		}
		return ReplyEvent{Kind: ReplyWorker, WorkerID: id}, nil

	case strings.HasPrefix(replyID, replyPrefixService):
		id, err := strconv.ParseInt(strings.TrimPrefix(replyID, replyPrefixService), 10, 64)
		if err != nil {
			return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
		}
		return ReplyEvent{Kind: ReplyService, ServiceID: id}, nil

	case strings.HasPrefix(replyID, replyPrefixDate):
		date, err := time.Parse(domain.DateFormat, strings.TrimPrefix(replyID, replyPrefixDate))
		if err != nil {
			return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
		}
		return ReplyEvent{Kind: ReplyDate, Date: date}, nil

	case strings.HasPrefix(replyID, replyPrefixTime):
		t, err := types.NewTimeStringFromString(strings.TrimPrefix(replyID, replyPrefixTime))
		if err != nil {
			return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
		}
		return ReplyEvent{Kind: ReplyTime, Time: t}, nil

	case strings.HasPrefix(replyID, replyPrefixCancel):
		id, err := strconv.ParseInt(strings.TrimPrefix(replyID, replyPrefixCancel), 10, 64)
		if err != nil {
			return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
		}
		return ReplyEvent{Kind: ReplyCancel, AppointmentID: id}, nil
	}

	return ReplyEvent{}, fmt.Errorf("%w: %q", ErrInvalidReply, replyID)
}

// WorkerReplyID собирает reply ID выбора работника
func WorkerReplyID(workerID int64) string {
	return replyPrefixWorker + strconv.FormatInt(workerID, 10)
}

// ServiceReplyID собирает reply ID выбора услуги
func ServiceReplyID(serviceID int64) string {
	return replyPrefixService + strconv.FormatInt(serviceID, 10)
}

// DateReplyID собирает reply ID выбора даты
func DateReplyID(date time.Time) string {
	return replyPrefixDate + date.Format(domain.DateFormat)
}

// TimeReplyID собирает reply ID выбора времени
func TimeReplyID(t types.TimeString) string {
	return replyPrefixTime + t.String()
}

// CancelReplyID собирает reply ID отмены записи
func CancelReplyID(appointmentID int64) string {
	return replyPrefixCancel + strconv.FormatInt(appointmentID, 10)
}
