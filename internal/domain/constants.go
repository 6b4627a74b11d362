package domain

import (
	"fmt"
	"time"
)

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	MinSlotDurationMinutes     = 1
)

// Business config keys
const (
	ConfigKeySlotDuration = "slot_duration_minutes"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Количество дней, предлагаемых при выборе даты (сегодня включительно)
const BookingWindowDays = 7

// Турецкие названия дней недели (индекс - time.Weekday, 0 = воскресенье)
var turkishDays = [7]string{
	"Pazar",
	"Pazartesi",
	"Salı",
	"Çarşamba",
	"Perşembe",
	"Cuma",
	"Cumartesi",
}

// Турецкие названия месяцев (индекс 0 - январь)
var turkishMonths = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// DayNameTR returns the Turkish weekday name for a date.
func DayNameTR(t time.Time) string {
	return turkishDays[int(t.Weekday())]
}

// FormatDateTR formats a date the way customers see it: "02 Ocak 2026".
func FormatDateTR(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), turkishMonths[int(t.Month())-1], t.Year())
}
