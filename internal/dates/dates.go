package dates

import (
	"errors"
	"fmt"
	"time"
)

// Преобразование календарного периода (год/месяц/день) в границы
// окна в epoch millis. Всё считается строго в UTC, локальная таймзона
// процесса не участвует.

// ErrInvalidDate — год/месяц/день не образуют корректную дату
var ErrInvalidDate = errors.New("invalid date")

// StartOfMonth - Первая миллисекунда месяца.
func StartOfMonth(year, month int) (int64, error) {
	return StartOfDay(year, month, 1)
}

// EndOfMonth - Последняя миллисекунда месяца.
func EndOfMonth(year, month int) (int64, error) {
	if err := validate(year, month, 1); err != nil {
		return 0, err
	}
	next := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return next.UnixMilli() - 1, nil
}

// StartOfDay - Первая миллисекунда дня.
func StartOfDay(year, month, day int) (int64, error) {
	if err := validate(year, month, day); err != nil {
		return 0, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli(), nil
}

// EndOfDay - Последняя миллисекунда дня.
func EndOfDay(year, month, day int) (int64, error) {
	start, err := StartOfDay(year, month, day)
	if err != nil {
		return 0, err
	}
	return start + int64(24*time.Hour/time.Millisecond) - 1, nil
}

// validate - Проверяет, что год/месяц/день образуют существующую
// григорианскую дату (с учётом високосных лет).
func validate(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return fmt.Errorf("%w: day %d out of range for %d-%02d", ErrInvalidDate, day, year, month)
	}
	return nil
}

// daysInMonth - Число дней в месяце; нулевой день следующего месяца.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
