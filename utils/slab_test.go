package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlabClassifyBoundaries(t *testing.T) {
	rule := DefaultSlabRule()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, SlabMicro},
		{"inside micro", 5000, SlabMicro},
		{"micro upper bound inclusive", 9900, SlabMicro},
		{"just above micro", 9901, SlabStandard},
		{"inside standard", 100000, SlabStandard},
		{"standard upper bound inclusive", 150000, SlabStandard},
		{"just above standard", 150001, ""},
		{"far above standard", 10000000, ""},
		{"negative", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Classify(tt.amount))
		})
	}
}

func TestSlabClassifyCustomThresholds(t *testing.T) {
	rule := SlabRule{MicroMax: 100, StandardMax: 200}

	assert.Equal(t, SlabMicro, rule.Classify(100))
	assert.Equal(t, SlabStandard, rule.Classify(101))
	assert.Equal(t, SlabStandard, rule.Classify(200))
	assert.Equal(t, "", rule.Classify(201))
}
