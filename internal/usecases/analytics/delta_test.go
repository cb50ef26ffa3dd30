package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name            string
		current         float64
		previous        float64
		expectedPercent float64
		expectedLabel   string
		expectedPos     bool
		expectedInf     bool
	}{
		{
			name:            "crescimento simples",
			current:         120,
			previous:        100,
			expectedPercent: 20,
			expectedLabel:   "+20%",
			expectedPos:     true,
		},
		{
			name:            "queda simples",
			current:         80,
			previous:        100,
			expectedPercent: -20,
			expectedLabel:   "-20%",
		},
		{
			name:          "anterior zero com atual positivo é infinito positivo",
			current:       50,
			previous:      0,
			expectedLabel: "+∞%",
			expectedPos:   true,
			expectedInf:   true,
		},
		{
			name:          "anterior zero com atual negativo é infinito negativo",
			current:       -50,
			previous:      0,
			expectedLabel: "-∞%",
			expectedInf:   true,
		},
		{
			name:            "anterior negativo usa denominador absoluto",
			current:         -50,
			previous:        -100,
			expectedPercent: 50,
			expectedLabel:   "+50%",
			expectedPos:     true,
		},
		{
			name:            "sem variação",
			current:         100,
			previous:        100,
			expectedPercent: 0,
			expectedLabel:   "+0%",
			expectedPos:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := ComputeDelta(tt.current, tt.previous)

			require.NotNil(t, delta)
			assert.Equal(t, tt.expectedPercent, delta.Percent)
			assert.Equal(t, tt.expectedLabel, delta.Label)
			assert.Equal(t, tt.expectedPos, delta.Positive)
			assert.Equal(t, tt.expectedInf, delta.Infinite)
		})
	}
}

func TestComputeDelta_BothZero(t *testing.T) {
	assert.Nil(t, ComputeDelta(0, 0))
}
