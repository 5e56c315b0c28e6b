package domain

import (
	"fmt"
	"time"
)

// MonthRange devolve [início do mês, início do mês seguinte) em UTC.
// Dezembro vira janeiro do ano seguinte.
func MonthRange(month, year int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("mês %d inválido, use 1 a 12", month)
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("ano %d inválido", year)
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}
