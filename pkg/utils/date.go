package utils

import "time"

// ParseDateIn interpreta uma data de calendário no fuso informado
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, dateStr, loc)
}

// DateOnly trunca para a meia-noite do dia no fuso informado
func DateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// LookbackPeriod retorna o intervalo fechado que termina ontem e cobre days dias
func LookbackPeriod(now time.Time, loc *time.Location, days int) (time.Time, time.Time) {
	if days <= 0 {
		days = 1
	}

	end := DateOnly(now, loc).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return start, end
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
