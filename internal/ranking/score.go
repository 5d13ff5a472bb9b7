// Package ranking derives comparison metrics from device records. Everything
// here is a pure function over one or more devices; no state, no I/O.
//
// Two different absence policies are in play and must not be mixed up:
// composite scores treat a missing benchmark as a zero contribution whose
// weight still counts in the denominator (the score degrades), while winner
// selection substitutes a plain 0 for the missing value.
package ranking

import (
	"math"

	"phonedex/internal/domain"
)

// Reference ceilings the component scores are scaled against.
const (
	antutuCeiling          = 2000000
	geekbenchSingleCeiling = 3000
	geekbenchMultiCeiling  = 8000
	ramCeilingGB           = 24
	storageCeilingGB       = 1024
	batteryCeilingMAh      = 6000
	cameraCeilingMP        = 200
	displayCeilingInches   = 7
	refreshCeilingHz       = 120

	// 7in at 120Hz, the ceiling for the composite display sub-score.
	displayCompositeCeiling = 840
)

// PerformanceScore blends benchmark and hardware-capacity signals into a
// single 0-100 number. AnTuTu weighs 40, Geekbench 30 (only when both
// figures are present), RAM and storage 15 each; every weight counts in the
// denominator whether or not its data is present.
func PerformanceScore(d domain.Device) int {
	score := 0.0
	maxScore := 0.0

	if d.AntutuScore != nil {
		score += math.Min(float64(*d.AntutuScore)/antutuCeiling, 1) * 40
	}
	maxScore += 40

	if d.GeekbenchSingle != nil && d.GeekbenchMulti != nil {
		gb := (float64(*d.GeekbenchSingle)/geekbenchSingleCeiling +
			float64(*d.GeekbenchMulti)/geekbenchMultiCeiling) / 2
		score += math.Min(gb, 1) * 30
	}
	maxScore += 30

	score += math.Min(float64(d.RAM)/ramCeilingGB, 1) * 15
	maxScore += 15

	score += math.Min(float64(d.Storage)/storageCeilingGB, 1) * 15
	maxScore += 15

	return int(math.Round(score / maxScore * 100))
}

// ValueScore averages the performance score with an inverse-price signal:
// priceScore = max(0, 100 - dollars/20), so cheaper capable devices rank
// higher without a hard price ceiling.
func ValueScore(d domain.Device) int {
	priceScore := math.Max(0, 100-dollars(d.Price)/20)
	return int(math.Round((float64(PerformanceScore(d)) + priceScore) / 2))
}

// AntutuPerDollar is 0 when the device has no AnTuTu score.
func AntutuPerDollar(d domain.Device) int {
	if d.AntutuScore == nil {
		return 0
	}
	return int(math.Round(float64(*d.AntutuScore) / dollars(d.Price)))
}

func RAMScorePerDollar(d domain.Device) int {
	return int(math.Round(float64(d.RAM) * 1000 / dollars(d.Price)))
}

func BatteryScorePerDollar(d domain.Device) int {
	return int(math.Round(float64(d.BatteryCapacity) * 10 / dollars(d.Price)))
}

func PricePerGBRAM(d domain.Device) int {
	return int(math.Round(dollars(d.Price) / float64(d.RAM)))
}

// BatteryLifeHours is a rough screen-on estimate from capacity alone,
// rounded to one decimal. efficiency 1 is the neutral baseline.
func BatteryLifeHours(capacityMAh int, efficiency float64) float64 {
	baseHours := float64(capacityMAh) / 1000 * 3 * efficiency
	return math.Round(baseHours*10) / 10
}

// dollars converts a price in cents to major units.
func dollars(priceCents int) float64 {
	return float64(priceCents) / 100
}
