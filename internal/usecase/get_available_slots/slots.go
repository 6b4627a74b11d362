package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// generateCandidateSlots генерирует времена начала слотов от начала до конца смены
// с фиксированным шагом slotDuration. Слот включается, пока его НАЧАЛО раньше конца
// смены: последний слот может выходить за конец смены, мастер доделывает работу
func generateCandidateSlots(schedule *domain.WorkerSchedule, slotDuration int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := schedule.StartTime

	for current.IsBefore(schedule.EndTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(slotDuration)
		if err != nil {
			// Уперлись в полночь - дальше слотов нет
			break
		}
		current = next
	}

	return slots, nil
}

// removeBooked убирает слоты, на которые уже есть активная запись
// Сравнение по точному совпадению времени начала: все записи кратны шагу слота
func removeBooked(slots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	if len(appointments) == 0 {
		return slots
	}

	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			booked[appt.StartTime] = struct{}{}
		}
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; !taken {
			free = append(free, slot)
		}
	}

	return free
}

// filterPastToday для сегодняшней даты убирает слоты, которые уже начались
// Текущее время округляется ВВЕРХ до ближайшей границы слота: слот, начавшийся
// минуту назад, уже недоступен
func filterPastToday(slots []types.TimeString, date, now time.Time, slotDuration int) ([]types.TimeString, error) {
	if !isSameDay(date, now) {
		return slots, nil
	}

	minAllowed, err := types.NewTimeString(now).RoundUpTo(slotDuration)
	if err != nil {
		return []types.TimeString{}, nil
	}

	future := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(minAllowed) {
			future = append(future, slot)
		}
	}

	return future, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
