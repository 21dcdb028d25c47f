package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD como meia-noite UTC.
// String vazia devolve o fallback, permitindo janelas com default no handler.
func ParseDate(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date.UTC(), nil
}

// TruncateToDay reduz um instante à meia-noite UTC do dia correspondente
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
