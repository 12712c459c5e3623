package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// quietSummary yields zero risk on every term except those the caller sets:
// the miss distance is far, the diameter is zero, and hazard counts are zero.
func quietSummary() NeoSummary {
	return NeoSummary{MinMissKm: 5_000_000, ValidMissCount: 1}
}

func TestAssessThreat(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		sum := NeoSummary{
			TotalCount:     1,
			HazardousCount: 0,
			MaxDiameterM:   50,
			MinMissKm:      5_000_000,
			ValidMissCount: 1,
			Buckets:        MagnitudeBuckets{Lt3: 1},
		}

		// 1×0.2 + size 0.5×2 + iss 2×2 + launch 2×1 = 7.2 → 7
		got := AssessThreat(sum, 0, 0)
		assert.Equal(t, 7, got.Score)
		assert.Equal(t, ThreatLow, got.Level)
	})

	t.Run("zero miss distance contributes no miss risk", func(t *testing.T) {
		sum := quietSummary()
		sum.MinMissKm = 0

		got := AssessThreat(sum, 10_000, 100)
		assert.Equal(t, 0, got.Score)
	})

	t.Run("close miss distance raises the score", func(t *testing.T) {
		sum := quietSummary()
		sum.MinMissKm = 1_000_000

		// miss (3 − 1) × 4 = 8
		got := AssessThreat(sum, 10_000, 100)
		assert.Equal(t, 8, got.Score)
	})

	t.Run("size risk caps at five", func(t *testing.T) {
		sum := quietSummary()
		sum.MaxDiameterM = 10_000

		// min(5, 100) × 2 = 10
		got := AssessThreat(sum, 10_000, 100)
		assert.Equal(t, 10, got.Score)
		assert.Equal(t, ThreatMedium, got.Level)
	})

	t.Run("classification thresholds", func(t *testing.T) {
		tests := []struct {
			name      string
			hazardous int
			total     int
			wantScore int
			wantLevel ThreatLevel
		}{
			{"low", 2, 2, 6, ThreatLow},
			{"medium boundary", 3, 3, 10, ThreatMedium},
			{"high", 6, 6, 19, ThreatHigh},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sum := quietSummary()
				sum.HazardousCount = tt.hazardous
				sum.TotalCount = tt.total

				got := AssessThreat(sum, 10_000, 100)
				assert.Equal(t, tt.wantScore, got.Score)
				assert.Equal(t, tt.wantLevel, got.Level)
			})
		}
	})

	t.Run("monotone in hazardous count", func(t *testing.T) {
		prev := -1
		for hazardous := 0; hazardous <= 20; hazardous++ {
			sum := NeoSummary{
				TotalCount:     25,
				HazardousCount: hazardous,
				MaxDiameterM:   140,
				MinMissKm:      750_000,
				ValidMissCount: 25,
			}
			got := AssessThreat(sum, 420, 6)
			assert.GreaterOrEqual(t, got.Score, prev, "hazardous=%d", hazardous)
			prev = got.Score
		}
	})
}
