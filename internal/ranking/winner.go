package ranking

import "phonedex/internal/domain"

// Best picks the candidate with the maximum value (minimum when preferLower
// is set). Ties keep the first-encountered candidate so the pick is
// deterministic for a given input order. An empty candidate list yields
// ok=false. Absent numeric fields must be substituted with 0 by the value
// function; that substitution applies here only, not in PerformanceScore.
func Best(devices []domain.Device, value func(domain.Device) float64, preferLower bool) (domain.Device, bool) {
	if len(devices) == 0 {
		return domain.Device{}, false
	}
	best := devices[0]
	bestVal := value(best)
	for _, d := range devices[1:] {
		v := value(d)
		if (preferLower && v < bestVal) || (!preferLower && v > bestVal) {
			best, bestVal = d, v
		}
	}
	return best, true
}

func BestPerformance(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 { return float64(PerformanceScore(d)) }, false)
}

func BestValue(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 { return float64(ValueScore(d)) }, false)
}

func BestBattery(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 { return float64(d.BatteryCapacity) }, false)
}

func BestCamera(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 { return float64(Megapixels(d.MainCamera)) }, false)
}

func BestPrice(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 { return float64(d.Price) }, true)
}

func BestAntutu(devices []domain.Device) (domain.Device, bool) {
	return Best(devices, func(d domain.Device) float64 {
		if d.AntutuScore == nil {
			return 0
		}
		return float64(*d.AntutuScore)
	}, false)
}
