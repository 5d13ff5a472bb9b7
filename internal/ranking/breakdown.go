package ranking

import (
	"math"

	"phonedex/internal/domain"
)

// Breakdown holds the per-aspect sub-scores behind the composite performance
// number, each 0-100. Missing benchmarks score 0 here.
type Breakdown struct {
	CPU     float64 `json:"cpu"`
	GPU     float64 `json:"gpu"`
	Memory  float64 `json:"memory"`
	Storage float64 `json:"storage"`
	Battery float64 `json:"battery"`
	Display float64 `json:"display"`
}

// SpecBreakdown scales each hardware aspect against its ceiling. The GPU
// figure approximates graphics throughput as 30% of the AnTuTu total scaled
// against 600k; display combines size and refresh rate.
func SpecBreakdown(d domain.Device) Breakdown {
	b := Breakdown{
		Memory:  clampPct(float64(d.RAM) / ramCeilingGB * 100),
		Storage: clampPct(float64(d.Storage) / storageCeilingGB * 100),
		Battery: clampPct(float64(d.BatteryCapacity) / batteryCeilingMAh * 100),
		Display: clampPct(d.DisplaySize * float64(d.RefreshRate) / displayCompositeCeiling * 100),
	}
	if d.GeekbenchSingle != nil {
		b.CPU = clampPct(float64(*d.GeekbenchSingle) / geekbenchSingleCeiling * 100)
	}
	if d.AntutuScore != nil {
		b.GPU = clampPct(float64(*d.AntutuScore) * 0.3 / 600000 * 100)
	}
	return b
}

func clampPct(v float64) float64 {
	return math.Min(v, 100)
}
