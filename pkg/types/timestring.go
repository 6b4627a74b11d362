package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used instead of time.Time for slot start times: the value has no date
// or timezone component, and serializes cleanly to JSON and Postgres TIME.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

const timeStringLayout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func fromMinutes(m int) TimeString {
	// Значения за пределами суток не представимы в HH:MM
	m %= 24 * 60
	if m < 0 {
		m += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Hour возвращает часовую компоненту (0-23)
func (t TimeString) Hour() (int, error) {
	m, err := t.minutes()
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}

// AddMinutes возвращает время, сдвинутое на указанное число минут
// Переход через полночь считается ошибкой: слоты не пересекают границу суток
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q%+d minutes is outside the day", ErrInvalidTimeString, string(t), m)
	}
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return fromMinutes(total), nil
}

// RoundUpTo округляет время ВВЕРХ до ближайшей границы, кратной step минутам
// Уже выровненное значение не изменяется
func (t TimeString) RoundUpTo(step int) (TimeString, error) {
	if step <= 0 {
		return "", fmt.Errorf("%w: non-positive rounding step %d", ErrInvalidTimeString, step)
	}
	total, err := t.minutes()
	if err != nil {
		return "", err
	}
	if rem := total % step; rem != 0 {
		total += step - rem
	}
	if total >= 24*60 {
		return TimeString("24:00"), nil
	}
	return fromMinutes(total), nil
}

// IsBefore returns true if t is strictly earlier than other.
// Comparison is lexicographic: valid HH:MM strings order correctly.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// string, []byte or time.Time depending on the driver path.
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME может прийти с секундами ("10:00:00") - отбрасываем их
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
