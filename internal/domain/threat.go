package domain

import "math"

// Threat score weights and classification thresholds. Fixed constants of the
// design — changing them changes the output contract.
const (
	hazardousWeight  = 3.0
	totalCountWeight = 0.2
	missRiskWeight   = 4.0
	sizeRiskWeight   = 2.0
	issRiskWeight    = 2.0
	launchRiskWeight = 1.0

	mediumThreshold = 10
	highThreshold   = 18
)

// AssessThreat computes the composite threat score from the NEO summary, the
// observer-to-ISS distance, and the hours until the next launch.
//
// Component terms:
//
//	miss risk:   0 when MinMissKm is exactly 0, else max(0, 3 − MinMissKm/1e6)
//	size risk:   min(5, MaxDiameterM/100)
//	ISS risk:    max(0, 2 − issDistanceKm/2000)
//	launch risk: max(0, 2 − hoursToLaunch/24)
//
// The weighted sum is rounded to an integer and classified LOW, MEDIUM (>=10),
// or HIGH (>=18).
func AssessThreat(sum NeoSummary, issDistanceKm, hoursToLaunch float64) ThreatAssessment {
	missRisk := 0.0
	if sum.MinMissKm != 0 {
		missRisk = math.Max(0, 3-sum.MinMissKm/1_000_000)
	}
	sizeRisk := math.Min(5, sum.MaxDiameterM/100)
	issRisk := math.Max(0, 2-issDistanceKm/2000)
	launchRisk := math.Max(0, 2-hoursToLaunch/24)

	raw := float64(sum.HazardousCount)*hazardousWeight +
		float64(sum.TotalCount)*totalCountWeight +
		missRisk*missRiskWeight +
		sizeRisk*sizeRiskWeight +
		issRisk*issRiskWeight +
		launchRisk*launchRiskWeight

	score := int(math.Round(raw))

	level := ThreatLow
	switch {
	case score >= highThreshold:
		level = ThreatHigh
	case score >= mediumThreshold:
		level = ThreatMedium
	}

	return ThreatAssessment{Score: score, Level: level}
}
