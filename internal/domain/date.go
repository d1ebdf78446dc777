package domain

import "time"

// DateFormat формат календарной даты во всех HTTP запросах и ответах
const DateFormat = "2006-01-02"

// DateOnly normalizes a timestamp to UTC midnight of its calendar day.
// Every engine boundary applies it once on ingress so that all date
// comparisons happen in a single reference frame; mixing local and UTC
// midnights silently breaks release and booking lookups.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что две даты относятся к одному календарному дню (UTC)
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// ParseDate парсит дату формата YYYY-MM-DD и нормализует её к UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
