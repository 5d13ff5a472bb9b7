package ranking

import "phonedex/internal/domain"

// Band is a score expressed against its category ceiling. Percent is 0 and
// Label is "N/A" when the underlying value is absent or zero.
type Band struct {
	Percent float64
	Label   string
}

// Rate maps a score/ceiling pair onto the five ordinal labels. A zero or
// negative score means unrated.
func Rate(score, ceiling float64) Band {
	if score <= 0 {
		return Band{Percent: 0, Label: "N/A"}
	}
	pct := score / ceiling * 100
	switch {
	case pct >= 90:
		return Band{Percent: pct, Label: "Excellent"}
	case pct >= 75:
		return Band{Percent: pct, Label: "Very Good"}
	case pct >= 60:
		return Band{Percent: pct, Label: "Good"}
	case pct >= 45:
		return Band{Percent: pct, Label: "Average"}
	default:
		return Band{Percent: pct, Label: "Below Average"}
	}
}

func RateAntutu(d domain.Device) Band {
	if d.AntutuScore == nil {
		return Rate(0, antutuCeiling)
	}
	return Rate(float64(*d.AntutuScore), antutuCeiling)
}

func RateBattery(d domain.Device) Band {
	return Rate(float64(d.BatteryCapacity), batteryCeilingMAh)
}

func RateCamera(d domain.Device) Band {
	return Rate(float64(Megapixels(d.MainCamera)), cameraCeilingMP)
}

func RateDisplay(d domain.Device) Band {
	return Rate(d.DisplaySize, displayCeilingInches)
}

func RateRefreshRate(d domain.Device) Band {
	return Rate(float64(d.RefreshRate), refreshCeilingHz)
}
