package analytics

import (
	"errors"
	"time"

	"github.com/vlima/reforma-manager-api/internal/domain"
)

// ErrInvalidDateRange indica um intervalo customizado com início após o fim.
// O chamador trata o conjunto filtrado como vazio; nenhuma agregação falha.
var ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")

// ResolvePeriodRange calcula a janela de datas para o tipo de período na data
// de referência, no fuso civil informado. Com previous=true devolve o período
// anterior comparável: mesmo tamanho e mesmo alinhamento de calendário.
//
// Para o tipo custom, start e end são obrigatórios; na ausência de qualquer um
// deles a função devolve (nil, nil), significando "sem janela, incluir tudo".
func ResolvePeriodRange(
	kind domain.PeriodKind,
	start, end *time.Time,
	now time.Time,
	previous bool,
	loc *time.Location,
) (*domain.DateRange, error) {
	local := now.In(loc)

	switch kind {
	case domain.PeriodDay:
		day := local
		if previous {
			day = day.AddDate(0, 0, -1)
		}
		return fullDayRange(day, day, loc), nil

	case domain.PeriodWeek:
		// Semana de domingo a sábado contendo a referência
		sunday := local.AddDate(0, 0, -int(local.Weekday()))
		if previous {
			sunday = sunday.AddDate(0, 0, -7)
		}
		return fullDayRange(sunday, sunday.AddDate(0, 0, 6), loc), nil

	case domain.PeriodMonth:
		first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		if previous {
			// AddDate normaliza janeiro para dezembro do ano anterior
			first = first.AddDate(0, -1, 0)
		}
		last := first.AddDate(0, 1, -1)
		return fullDayRange(first, last, loc), nil

	case domain.PeriodYear:
		year := local.Year()
		if previous {
			year--
		}
		first := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		last := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		return fullDayRange(first, last, loc), nil

	case domain.PeriodCustom:
		if start == nil || end == nil {
			return nil, nil
		}

		s := start.In(loc)
		e := end.In(loc)
		if dayStart(s, loc).After(dayStart(e, loc)) {
			return nil, ErrInvalidDateRange
		}

		if !previous {
			return fullDayRange(s, e, loc), nil
		}

		// Período anterior: mesma duração em dias, terminando na véspera do
		// início, sem lacuna
		days := int(dayStart(e, loc).Sub(dayStart(s, loc)).Hours()/24) + 1
		prevEnd := dayStart(s, loc).AddDate(0, 0, -1)
		prevStart := prevEnd.AddDate(0, 0, -(days - 1))
		return fullDayRange(prevStart, prevEnd, loc), nil
	}

	// Tipo desconhecido cai no comportamento de mês, o padrão do painel
	return ResolvePeriodRange(domain.PeriodMonth, start, end, now, previous, loc)
}

// fullDayRange expande [first, last] para os limites completos dos dias
func fullDayRange(first, last time.Time, loc *time.Location) *domain.DateRange {
	return &domain.DateRange{
		Start: dayStart(first, loc),
		End:   dayEnd(last, loc),
	}
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func dayEnd(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, loc)
}
