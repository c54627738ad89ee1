package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// TimeString время в формате "HH:MM" (wall-clock, без даты и часового пояса).
// Пустая строка означает, что время не указано.
// Источник данных может присылать частичные форматы ("9:30"), поэтому
// для сравнения и сортировки всегда используется Normalized().
type TimeString string

// MidnightTime значение по умолчанию для сортировки записей без времени
const MidnightTime TimeString = "00:00"

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не указано
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Validate проверяет, что строка соответствует формату H:MM или HH:MM
func (t TimeString) Validate() error {
	_, _, err := t.parse()
	return err
}

// parse разбирает строку на часы и минуты.
// Допускаются форматы "H:MM" и "HH:MM".
func (t TimeString) parse() (int, int, error) {
	s := strings.TrimSpace(string(t))
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hours, minutes, nil
}

// Normalized приводит время к каноничному виду "HH:MM".
// Пустое или некорректное значение трактуется как полночь — только для
// сортировки и сравнения, отображаемое значение не подменяется.
func (t TimeString) Normalized() TimeString {
	hours, minutes, err := t.parse()
	if err != nil {
		return MidnightTime
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes))
}

// Minutes возвращает количество минут с полуночи.
// Для пустого или некорректного значения возвращает 0.
func (t TimeString) Minutes() int {
	hours, minutes, err := t.parse()
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	hours, minutes, err := t.parse()
	if err != nil {
		return "", err
	}

	total := hours*60 + minutes + m
	total = ((total % 1440) + 1440) % 1440

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t раньше other (по нормализованным значениям)
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Normalized().Minutes() < other.Normalized().Minutes()
}

// IsAfter возвращает true, если t позже other (по нормализованным значениям)
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Normalized().Minutes() > other.Normalized().Minutes()
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", value)
	}

	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
