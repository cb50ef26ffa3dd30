package domain

import "time"

type PeriodKind string

const (
	PeriodDay    PeriodKind = "day"
	PeriodWeek   PeriodKind = "week"
	PeriodMonth  PeriodKind = "month"
	PeriodYear   PeriodKind = "year"
	PeriodCustom PeriodKind = "custom"
)

// ValidPeriodKind informa se o tipo de período é reconhecido pelo resolvedor
func ValidPeriodKind(kind PeriodKind) bool {
	switch kind {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// DateRange é uma janela de datas com início e fim inclusivos, expressa em
// instantes absolutos alinhados ao fuso civil fixo do motor
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se o instante cai dentro da janela (inclusivo nas pontas)
func (r *DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DashboardFilters são os filtros aceitos pelo painel analítico. Month, quando
// presente (formato yyyy-mm), é aplicado como filtro adicional em AND sobre a
// janela, usado no drill-down a partir do gráfico de tendência.
type DashboardFilters struct {
	Period    PeriodKind `json:"period"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Month     string     `json:"month,omitempty"`
}
