package analytics

import (
	"fmt"
	"math"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

// ComputeDelta compara o valor atual de um KPI com o do período anterior.
// Ambos zero → nil, nada a comparar. Anterior zero e atual não-zero → o
// sentinela "infinito", com sinal tirado do valor atual. Caso contrário, o
// denominador usa o valor absoluto do anterior, o que mantém o delta bem
// definido mesmo quando o período anterior foi negativo.
func ComputeDelta(current, previous float64) *domain.KPIDelta {
	if current == 0 && previous == 0 {
		return nil
	}

	if previous == 0 {
		positive := current > 0
		label := "+∞%"
		if !positive {
			label = "-∞%"
		}
		return &domain.KPIDelta{
			Label:    label,
			Positive: positive,
			Infinite: true,
		}
	}

	percent := (current - previous) / math.Abs(previous) * 100
	positive := percent >= 0

	sign := "+"
	if !positive {
		sign = "-"
	}

	return &domain.KPIDelta{
		Percent:  utils.RoundWithTwoDecimalPlace(percent),
		Label:    fmt.Sprintf("%s%.0f%%", sign, math.Abs(math.Round(percent))),
		Positive: positive,
	}
}
