package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/internal/infra/convstore"
	"github.com/m04kA/SMC-HairdresserBot/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments"
	"github.com/m04kA/SMC-HairdresserBot/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-HairdresserBot/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-HairdresserBot/pkg/ptr"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// SalonInfo данные салона для информационных ответов
type SalonInfo struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Instagram string
}

// Service конечный автомат диалога бронирования
// На каждое входящее сообщение: загрузить состояние, обработать шаг,
// сохранить или очистить состояние, ответить пользователю
type Service struct {
	store        Store
	client       WhatsAppClient
	slotsUC      AvailableSlotsUseCase
	createUC     CreateAppointmentUseCase
	apptService  AppointmentService
	workerRepo   WorkerRepository
	userRepo     UserRepository
	location     *time.Location
	splitHour    int
	salon        SalonInfo
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса диалогов
func NewService(
	store Store,
	client WhatsAppClient,
	slotsUC AvailableSlotsUseCase,
	createUC CreateAppointmentUseCase,
	apptService AppointmentService,
	workerRepo WorkerRepository,
	userRepo UserRepository,
	location *time.Location,
	splitHour int,
	salon SalonInfo,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		client:       client,
		slotsUC:      slotsUC,
		createUC:     createUC,
		apptService:  apptService,
		workerRepo:   workerRepo,
		userRepo:     userRepo,
		location:     location,
		splitHour:    splitHour,
		salon:        salon,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// HandleTextMessage обрабатывает входящее текстовое сообщение
// Команды работают с любого шага диалога
func (s *Service) HandleTextMessage(ctx context.Context, from, text string, senderName *string) error {
	s.logger.Info("HandleTextMessage: from=%s", from)

	user, err := s.userRepo.GetOrCreate(ctx, from, senderName)
	if err != nil {
		s.logger.Error("HandleTextMessage: failed to get or create user %s: %v", from, err)
		return fmt.Errorf("%w: failed to get or create user: %v", ErrInternal, err)
	}

	normalized := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.HasPrefix(normalized, "/randevu") || normalized == "randevu":
		return s.startBookingFlow(ctx, from)

	case strings.HasPrefix(normalized, "/iptal"):
		return s.startCancellationFlow(ctx, from, user.ID)

	case normalized == "/yardim" || normalized == "yardım":
		return s.client.SendText(ctx, from, msgHelp)

	case normalized == "adres":
		return s.sendAddress(ctx, from)

	case normalized == "instagram":
		return s.client.SendText(ctx, from, msgInstagramPrefix+s.salon.Instagram)
	}

	_, err = s.store.Get(ctx, from)
	if err != nil {
		if errors.Is(err, convstore.ErrStateNotFound) {
			return s.client.SendText(ctx, from, msgWelcome)
		}
		s.logger.Error("HandleTextMessage: failed to get state for %s: %v", from, err)
		return fmt.Errorf("%w: failed to get state: %v", ErrInternal, err)
	}

	// Диалог идет, но пришел свободный текст вместо выбора из списка
	return s.client.SendText(ctx, from, msgFallback)
}

// HandleInteractiveReply обрабатывает нажатие кнопки или выбор из списка
func (s *Service) HandleInteractiveReply(ctx context.Context, from, replyID string) error {
	s.logger.Info("HandleInteractiveReply: from=%s, reply=%s", from, replyID)

	user, err := s.userRepo.GetOrCreate(ctx, from, nil)
	if err != nil {
		s.logger.Error("HandleInteractiveReply: failed to get or create user %s: %v", from, err)
		return fmt.Errorf("%w: failed to get or create user: %v", ErrInternal, err)
	}

	state, err := s.store.Get(ctx, from)
	if err != nil {
		if errors.Is(err, convstore.ErrStateNotFound) {
			// Ответ на давно протухший диалог
			return s.client.SendText(ctx, from, msgWelcome)
		}
		s.logger.Error("HandleInteractiveReply: failed to get state for %s: %v", from, err)
		return fmt.Errorf("%w: failed to get state: %v", ErrInternal, err)
	}

	event, err := ParseReplyID(replyID)
	if err != nil {
		s.logger.Warn("HandleInteractiveReply: unparseable reply %q from %s", replyID, from)
		return s.client.SendText(ctx, from, invalidReplyMessage(replyID))
	}

	if !event.Kind.AllowedAtStep(state.CurrentStep) {
		// Нажатие из старого списка не с того шага: шаг не двигаем
		s.logger.Warn("HandleInteractiveReply: reply %q does not match step %s for %s",
			replyID, state.CurrentStep, from)
		return s.client.SendText(ctx, from, msgFallback)
	}

	switch event.Kind {
	case ReplyWorker:
		return s.handleWorkerSelection(ctx, from, state, event.WorkerID)
	case ReplyService:
		return s.handleServiceSelection(ctx, from, state, event.ServiceID)
	case ReplyDate:
		return s.handleDateSelection(ctx, from, state, event.Date)
	case ReplyTime:
		return s.handleTimeSelection(ctx, from, state, event.Time)
	case ReplyTimePage:
		return s.handleTimePage(ctx, from, state, event.Page)
	case ReplyCancel:
		return s.handleCancellation(ctx, from, user.ID, event.AppointmentID)
	case ReplyConfirmYes:
		return s.confirmAppointment(ctx, from, state, user.ID)
	case ReplyConfirmNo:
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("HandleInteractiveReply: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgBookingAborted)
	default:
		return s.client.SendText(ctx, from, msgInvalidSelection)
	}
}

// startBookingFlow начинает диалог бронирования со списка работников
func (s *Service) startBookingFlow(ctx context.Context, from string) error {
	workers, err := s.workerRepo.GetActive(ctx)
	if err != nil {
		s.logger.Error("startBookingFlow: failed to get workers: %v", err)
		return fmt.Errorf("%w: failed to get workers: %v", ErrInternal, err)
	}

	if len(workers) == 0 {
		return s.client.SendText(ctx, from, msgNoWorkers)
	}

	rows := make([]whatsapp.ListRow, 0, len(workers))
	for _, w := range workers {
		if len(rows) == whatsapp.MaxListRows {
			break
		}
		desc := msgWorkerFallbackRole
		if w.Specialty != nil {
			desc = *w.Specialty
		}
		rows = append(rows, whatsapp.ListRow{
			ID:          WorkerReplyID(w.ID),
			Title:       w.Name,
			Description: desc,
		})
	}

	state := &domain.ConversationState{
		PhoneNumber: from,
		CurrentStep: domain.StepAwaitingWorker,
		LastUpdated: s.timeProvider.Now(),
	}
	if err := s.store.Put(ctx, state); err != nil {
		s.logger.Error("startBookingFlow: failed to save state for %s: %v", from, err)
		return fmt.Errorf("%w: failed to save state: %v", ErrInternal, err)
	}

	return s.client.SendList(ctx, from, "", msgChooseWorker, msgChooseWorkerButton,
		[]whatsapp.ListSection{{Rows: rows}})
}

// handleWorkerSelection фиксирует работника, дальше услуги или сразу дата
func (s *Service) handleWorkerSelection(ctx context.Context, from string, state *domain.ConversationState, workerID int64) error {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		s.logger.Warn("handleWorkerSelection: worker id=%d not found: %v", workerID, err)
		return s.client.SendText(ctx, from, msgWorkerNotFound)
	}

	state.SelectedWorkerID = ptr.Ptr(w.ID)
	state.SelectedWorkerName = ptr.Ptr(w.Name)

	services, err := s.workerRepo.GetServices(ctx, w.ID)
	if err != nil {
		s.logger.Error("handleWorkerSelection: failed to get services for worker=%d: %v", w.ID, err)
		return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// У работника нет отдельных услуг - шаг выбора услуги пропускается
	if len(services) == 0 {
		state.CurrentStep = domain.StepAwaitingDate
		if err := s.saveState(ctx, state); err != nil {
			return err
		}
		body := fmt.Sprintf("✅ Çalışan: *%s*\n\n📅 Lütfen randevu için bir tarih seçin:", w.Name)
		return s.sendDateList(ctx, from, body)
	}

	state.CurrentStep = domain.StepAwaitingService
	if err := s.saveState(ctx, state); err != nil {
		return err
	}

	rows := make([]whatsapp.ListRow, 0, len(services))
	for _, svc := range services {
		if len(rows) == whatsapp.MaxListRows {
			break
		}
		rows = append(rows, whatsapp.ListRow{
			ID:          ServiceReplyID(svc.ID),
			Title:       svc.Name,
			Description: fmt.Sprintf("%d dk - %.0f TL", svc.DurationMinutes, svc.Price),
		})
	}

	body := fmt.Sprintf("✅ Çalışan: *%s*\n\n💇 Lütfen bir hizmet seçin:", w.Name)
	return s.client.SendList(ctx, from, "", body, msgChooseServiceButton,
		[]whatsapp.ListSection{{Rows: rows}})
}

// handleServiceSelection фиксирует услугу и переходит к выбору даты
func (s *Service) handleServiceSelection(ctx context.Context, from string, state *domain.ConversationState, serviceID int64) error {
	if state.SelectedWorkerID == nil {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("handleServiceSelection: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgSelectWorkerTip)
	}

	services, err := s.workerRepo.GetServices(ctx, *state.SelectedWorkerID)
	if err != nil {
		s.logger.Error("handleServiceSelection: failed to get services for worker=%d: %v",
			*state.SelectedWorkerID, err)
		return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	var selected *domain.WorkerService
	for _, svc := range services {
		if svc.ID == serviceID {
			selected = svc
			break
		}
	}
	if selected == nil {
		s.logger.Warn("handleServiceSelection: service id=%d not offered by worker=%d",
			serviceID, *state.SelectedWorkerID)
		return s.client.SendText(ctx, from, msgInvalidSelection)
	}

	state.SelectedServiceID = ptr.Ptr(selected.ID)
	state.SelectedService = ptr.Ptr(selected.Name)
	state.ServiceDuration = selected.DurationMinutes
	state.CurrentStep = domain.StepAwaitingDate
	if err := s.saveState(ctx, state); err != nil {
		return err
	}

	body := fmt.Sprintf("✅ Çalışan: *%s*\n💇 Hizmet: *%s*\n\n📅 Lütfen randevu için bir tarih seçin:",
		*state.SelectedWorkerName, selected.Name)
	return s.sendDateList(ctx, from, body)
}

// sendDateList отправляет список ближайших дат (сегодня + 6 дней)
func (s *Service) sendDateList(ctx context.Context, from, body string) error {
	today := s.timeProvider.Now().In(s.location)

	rows := make([]whatsapp.ListRow, 0, domain.BookingWindowDays)
	for i := 0; i < domain.BookingWindowDays; i++ {
		date := today.AddDate(0, 0, i)
		rows = append(rows, whatsapp.ListRow{
			ID:          DateReplyID(date),
			Title:       domain.DayNameTR(date),
			Description: domain.FormatDateTR(date),
		})
	}

	return s.client.SendList(ctx, from, "", body, msgChooseDateButton,
		[]whatsapp.ListSection{{Rows: rows}})
}

// handleDateSelection фиксирует дату и отправляет первую страницу слотов
func (s *Service) handleDateSelection(ctx context.Context, from string, state *domain.ConversationState, date time.Time) error {
	if state.SelectedWorkerID == nil {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("handleDateSelection: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgSelectWorkerTip)
	}

	state.SelectedDate = ptr.Ptr(date)
	state.TimePage = 1
	state.CurrentStep = domain.StepAwaitingTime
	if err := s.saveState(ctx, state); err != nil {
		return err
	}

	return s.sendTimeList(ctx, from, state, 1)
}

// handleTimePage показывает вторую страницу слотов
func (s *Service) handleTimePage(ctx context.Context, from string, state *domain.ConversationState, page int) error {
	if state.SelectedWorkerID == nil || state.SelectedDate == nil {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("handleTimePage: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgSelectWorkerTip)
	}

	state.TimePage = page
	if err := s.saveState(ctx, state); err != nil {
		return err
	}

	return s.sendTimeList(ctx, from, state, page)
}

// sendTimeList получает свободные слоты и отправляет нужную страницу
func (s *Service) sendTimeList(ctx context.Context, from string, state *domain.ConversationState, page int) error {
	resp, err := s.slotsUC.Execute(ctx, &get_available_slots.Request{
		WorkerID: *state.SelectedWorkerID,
		Date:     *state.SelectedDate,
	})
	if err != nil {
		if errors.Is(err, get_available_slots.ErrInvalidDate) {
			// Список дат устарел: выбранная дата уже в прошлом (например, после полуночи)
			if rmErr := s.store.Remove(ctx, from); rmErr != nil {
				s.logger.Error("sendTimeList: failed to clear state for %s: %v", from, rmErr)
			}
			return s.client.SendText(ctx, from, msgDateExpired)
		}
		s.logger.Error("sendTimeList: failed to get slots for worker=%d: %v", *state.SelectedWorkerID, err)
		return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	if len(resp.Slots) == 0 {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("sendTimeList: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, fmt.Sprintf(
			"❌ %s için bu tarihte müsait saat yok. Lütfen başka bir tarih seçin. /randevu",
			s.workerDisplayName(state)))
	}

	rows := s.timeRows(resp.Slots, page)

	body := fmt.Sprintf("✅ Çalışan: *%s*\n📅 Tarih: *%s*\n\n🕐 Lütfen bir saat seçin:",
		s.workerDisplayName(state), domain.FormatDateTR(*state.SelectedDate))
	return s.client.SendList(ctx, from, "", body, msgChooseTimeButton,
		[]whatsapp.ListSection{{Rows: rows}})
}

// timeRows разбивает слоты на страницы списка
// Когда все слоты помещаются в один список - одна страница без навигации
// Иначе первая страница: слоты до splitHour плюс строка перехода,
// вторая страница: всё, что не попало на первую
func (s *Service) timeRows(slots []types.TimeString, page int) []whatsapp.ListRow {
	if len(slots) <= whatsapp.MaxListRows {
		return slotRows(slots)
	}

	split := types.TimeString(fmt.Sprintf("%02d:00", s.splitHour))

	firstPage := make([]types.TimeString, 0, whatsapp.MaxListRows-1)
	for _, slot := range slots {
		if !slot.IsBefore(split) || len(firstPage) == whatsapp.MaxListRows-1 {
			break
		}
		firstPage = append(firstPage, slot)
	}

	if page == 1 {
		rows := slotRows(firstPage)
		return append(rows, whatsapp.ListRow{
			ID:          replyTimePage2,
			Title:       msgMoreTimesTitle,
			Description: msgMoreTimesDesc,
		})
	}

	rest := slots[len(firstPage):]
	if len(rest) > whatsapp.MaxListRows {
		rest = rest[:whatsapp.MaxListRows]
	}
	return slotRows(rest)
}

func slotRows(slots []types.TimeString) []whatsapp.ListRow {
	rows := make([]whatsapp.ListRow, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, whatsapp.ListRow{
			ID:    TimeReplyID(slot),
			Title: slot.String(),
		})
	}
	return rows
}

// handleTimeSelection фиксирует время и запрашивает подтверждение
func (s *Service) handleTimeSelection(ctx context.Context, from string, state *domain.ConversationState, t types.TimeString) error {
	if state.SelectedWorkerID == nil || state.SelectedDate == nil {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("handleTimeSelection: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgSelectWorkerTip)
	}

	state.SelectedTime = ptr.Ptr(t)
	state.CurrentStep = domain.StepConfirming
	if err := s.saveState(ctx, state); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"✅ *Randevu Onayı*\n\n💇 Çalışan: *%s*\n📅 Tarih: *%s*\n🕐 Saat: *%s*\n\nRandevunuzu onaylıyor musunuz?",
		s.workerDisplayName(state), domain.FormatDateTR(*state.SelectedDate), t)

	return s.client.SendButtons(ctx, from, body, []whatsapp.Button{
		{ID: replyConfirmYes, Title: msgConfirmButtonYesTitle},
		{ID: replyConfirmNo, Title: msgConfirmButtonNoTitle},
	})
}

// confirmAppointment создает запись и завершает диалог
func (s *Service) confirmAppointment(ctx context.Context, from string, state *domain.ConversationState, userID int64) error {
	if state.SelectedWorkerID == nil || state.SelectedDate == nil || state.SelectedTime == nil {
		if err := s.store.Remove(ctx, from); err != nil {
			s.logger.Error("confirmAppointment: failed to clear state for %s: %v", from, err)
		}
		return s.client.SendText(ctx, from, msgGenericError)
	}

	resp, err := s.createUC.Execute(ctx, &create_appointment.Request{
		UserID:          userID,
		WorkerID:        *state.SelectedWorkerID,
		Date:            *state.SelectedDate,
		StartTime:       *state.SelectedTime,
		DurationMinutes: state.ServiceDuration,
		ServiceID:       state.SelectedServiceID,
		ServiceName:     state.SelectedService,
	})
	if err != nil {
		if errors.Is(err, create_appointment.ErrSlotTaken) || errors.Is(err, create_appointment.ErrPastSlot) {
			// Слот увели, пока пользователь думал
			if rmErr := s.store.Remove(ctx, from); rmErr != nil {
				s.logger.Error("confirmAppointment: failed to clear state for %s: %v", from, rmErr)
			}
			return s.client.SendText(ctx, from, msgSlotGone)
		}
		s.logger.Error("confirmAppointment: failed to create appointment for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	message := fmt.Sprintf(`✅ *Randevunuz Oluşturuldu!*

💇 Çalışan: *%s*
📅 Tarih: *%s*
🕐 Saat: *%s*
📝 Randevu No: *%d*

Randevunuzu iptal etmek için: /iptal

Görüşmek üzere! 👋`,
		s.workerDisplayName(state), domain.FormatDateTR(*state.SelectedDate), *state.SelectedTime, resp.ID)

	if err := s.store.Remove(ctx, from); err != nil {
		s.logger.Error("confirmAppointment: failed to clear state for %s: %v", from, err)
	}

	return s.client.SendText(ctx, from, message)
}

// startCancellationFlow показывает активные записи пользователя
func (s *Service) startCancellationFlow(ctx context.Context, from string, userID int64) error {
	appts, err := s.apptService.GetUserAppointments(ctx, userID)
	if err != nil {
		s.logger.Error("startCancellationFlow: failed to get appointments for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if appts.Total == 0 {
		return s.client.SendText(ctx, from, msgNoActiveAppointments)
	}

	rows := make([]whatsapp.ListRow, 0, whatsapp.MaxListRows)
	for _, appt := range appts.Appointments {
		if len(rows) == whatsapp.MaxListRows {
			break
		}

		workerName := msgWorkerFallbackRole
		if appt.WorkerName != nil {
			workerName = *appt.WorkerName
		}

		date, err := time.Parse(domain.DateFormat, appt.Date)
		if err != nil {
			s.logger.Warn("startCancellationFlow: bad date %q on appointment id=%d", appt.Date, appt.ID)
			continue
		}

		rows = append(rows, whatsapp.ListRow{
			ID:          CancelReplyID(appt.ID),
			Title:       fmt.Sprintf("%s %s", date.Format("02/01/2006"), appt.StartTime),
			Description: fmt.Sprintf("%s - No: %d", workerName, appt.ID),
		})
	}

	state := &domain.ConversationState{
		PhoneNumber: from,
		CurrentStep: domain.StepCancellingAppointment,
		LastUpdated: s.timeProvider.Now(),
	}
	if err := s.store.Put(ctx, state); err != nil {
		s.logger.Error("startCancellationFlow: failed to save state for %s: %v", from, err)
		return fmt.Errorf("%w: failed to save state: %v", ErrInternal, err)
	}

	return s.client.SendList(ctx, from, "", msgChooseCancelBody, msgChooseCancelButton,
		[]whatsapp.ListSection{{Rows: rows}})
}

// handleCancellation отменяет выбранную запись
func (s *Service) handleCancellation(ctx context.Context, from string, userID, appointmentID int64) error {
	err := s.apptService.Cancel(ctx, appointmentID, userID)

	if rmErr := s.store.Remove(ctx, from); rmErr != nil {
		s.logger.Error("handleCancellation: failed to clear state for %s: %v", from, rmErr)
	}

	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			return s.client.SendText(ctx, from, msgCancelFailed)
		}
		s.logger.Error("handleCancellation: failed to cancel appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	return s.client.SendText(ctx, from,
		fmt.Sprintf("✅ Randevunuz (No: %d) başarıyla iptal edildi.", appointmentID))
}

// sendAddress отправляет геолокацию и адрес салона
func (s *Service) sendAddress(ctx context.Context, from string) error {
	if err := s.client.SendLocation(ctx, from, s.salon.Latitude, s.salon.Longitude, s.salon.Name, s.salon.Address); err != nil {
		s.logger.Error("sendAddress: failed to send location to %s: %v", from, err)
		return fmt.Errorf("%w: failed to send location: %v", ErrInternal, err)
	}
	return s.client.SendText(ctx, from, fmt.Sprintf("📍 Adresimiz: %s", s.salon.Address))
}

func (s *Service) saveState(ctx context.Context, state *domain.ConversationState) error {
	state.LastUpdated = s.timeProvider.Now()
	if err := s.store.Put(ctx, state); err != nil {
		s.logger.Error("saveState: failed to save state for %s: %v", state.PhoneNumber, err)
		return fmt.Errorf("%w: failed to save state: %v", ErrInternal, err)
	}
	return nil
}

// invalidReplyMessage подбирает текст ошибки по виду битого reply ID
func invalidReplyMessage(replyID string) string {
	switch {
	case strings.HasPrefix(replyID, replyPrefixDate):
		return msgInvalidDate
	case strings.HasPrefix(replyID, replyPrefixTime):
		return msgInvalidTime
	case strings.HasPrefix(replyID, replyPrefixCancel):
		return msgInvalidAppointment
	default:
		return msgInvalidSelection
	}
}

func (s *Service) workerDisplayName(state *domain.ConversationState) string {
	if state.SelectedWorkerName != nil {
		return *state.SelectedWorkerName
	}
	return msgWorkerFallbackRole
}
