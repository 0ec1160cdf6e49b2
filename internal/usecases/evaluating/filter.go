package evaluating

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/pkg/utils"
)

// DatedRecord é qualquer registro diário com data no formato dd.mm.yyyy
type DatedRecord interface {
	DayDate() string
}

// windowDays é o tamanho da janela de cada período relativo
var windowDays = map[domain.Period]int{
	domain.PeriodLast7:  7,
	domain.PeriodLast14: 14,
	domain.PeriodLast30: 30,
}

// FilterDaysByPeriod retorna os dias dentro do período. Os períodos relativos contam a
// partir da maior data da lista, com os dois extremos inclusos. Para custom, datas
// ausentes ou inválidas devolvem a lista sem filtro; períodos desconhecidos também.
func FilterDaysByPeriod[T DatedRecord](days []T, filter domain.PeriodFilter) []T {
	if len(days) == 0 {
		return []T{}
	}
	if filter.Period == domain.PeriodAll {
		return days
	}

	parsed := make([]time.Time, len(days))
	var maxDate time.Time
	for i, d := range days {
		parsed[i] = ParseDayDate(d.DayDate())
		if i == 0 || parsed[i].After(maxDate) {
			maxDate = parsed[i]
		}
	}

	var start, end time.Time
	if n, ok := windowDays[filter.Period]; ok {
		start, end = maxDate.AddDate(0, 0, -n), maxDate
	} else if filter.Period == domain.PeriodCustom && filter.StartDate != "" && filter.EndDate != "" {
		s, err := utils.ParseDate(filter.StartDate)
		if err != nil {
			return days
		}
		e, err := utils.ParseDate(filter.EndDate)
		if err != nil {
			return days
		}
		start, end = *s, *e
	} else {
		return days
	}

	filtered := make([]T, 0, len(days))
	for i, d := range days {
		if !parsed[i].Before(start) && !parsed[i].After(end) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ParseDayDate converte dd.mm.yyyy em data UTC. Valores inválidos retornam o valor
// zero de time.Time, que fica fora de qualquer período.
func ParseDayDate(s string) time.Time {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza 31.02 para março
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}
	}
	return date
}

// DatesOf retorna as datas dos registros, na mesma ordem
func DatesOf[T DatedRecord](days []T) []string {
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.DayDate())
	}
	return dates
}
