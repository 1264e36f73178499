package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (24 часа, точность до минуты).
// Значения дополняются нулями, поэтому лексикографическое сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return fromMinutes(t.Hour()*minutesPerHour + t.Minute())
}

// NewTimeStringFromString парсит строку вида "H:MM" или "HH:MM" и нормализует её до "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, err := splitClock(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return fromMinutes(hours*minutesPerHour + minutes), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the time was never set
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет строгий формат HH:MM
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	_, _, err := splitClock(s)
	return err
}

// Hour возвращает час (0-23). Для некорректного значения возвращает -1
func (t TimeString) Hour() int {
	h, _, err := splitClock(string(t))
	if err != nil {
		return -1
	}
	return h
}

// Minute возвращает минуты (0-59). Для некорректного значения возвращает -1
func (t TimeString) Minute() int {
	_, m, err := splitClock(string(t))
	if err != nil {
		return -1
	}
	return m
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	h, m, err := splitClock(string(t))
	if err != nil {
		return 0, err
	}
	return h*minutesPerHour + m, nil
}

// AddMinutes прибавляет минуты и заворачивает результат по модулю 24 часов.
// Дата при переходе через полночь не отслеживается: "23:30" + 90 = "01:00".
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	result, _, err := t.AddMinutesWithOverflow(minutes)
	return result, err
}

// AddMinutesWithOverflow как AddMinutes, дополнительно возвращает число пересечённых полуночей
// (отрицательное, если время ушло в предыдущие сутки)
func (t TimeString) AddMinutesWithOverflow(minutes int) (TimeString, int, error) {
	start, err := t.Minutes()
	if err != nil {
		return "", 0, err
	}

	total := start + minutes
	days := total / minutesPerDay
	wrapped := total % minutesPerDay
	if wrapped < 0 {
		wrapped += minutesPerDay
		days--
	}

	return fromMinutes(wrapped), days, nil
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// Format12h форматирует время как "h:mm AM/PM"; часы 0 и 12 отображаются как 12
func (t TimeString) Format12h() string {
	h, m, err := splitClock(string(t))
	if err != nil {
		return string(t)
	}

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// Scan implements sql.Scanner (поддерживает TIME из postgres)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func (t *TimeString) scanString(s string) error {
	// postgres отдаёт TIME как "10:00:00"
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

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour))
}

func splitClock(s string) (int, int, error) {
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok || hourPart == "" || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(hourPart)
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(minutePart)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hours, minutes, nil
}
