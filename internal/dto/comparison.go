package dto

import "phonedex/internal/domain"

type CreateComparisonRequest struct {
	Name      string `json:"name"`
	DeviceIDs string `json:"deviceIds"`
}

// CompareRequest resolves a set of devices in one call. At least two ids are
// required and every id must resolve.
type CompareRequest struct {
	DeviceIDs []int `json:"deviceIds"`
}

// RatingBand is a score expressed as a percentage of a category ceiling plus
// its ordinal label (Excellent .. Below Average, or N/A when unrated).
type RatingBand struct {
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
}

// DeviceAnalysis is one device of a comparison annotated with the derived
// metrics the comparison view renders.
type DeviceAnalysis struct {
	Device domain.Device `json:"device"`

	PerformanceScore int     `json:"performanceScore"`
	ValueScore       int     `json:"valueScore"`
	BatteryLifeHours float64 `json:"batteryLifeHours"`

	AntutuPerDollar       int `json:"antutuPerDollar"`
	RAMScorePerDollar     int `json:"ramScorePerDollar"`
	BatteryScorePerDollar int `json:"batteryScorePerDollar"`
	PricePerGBRAM         int `json:"pricePerGbRam"`

	Antutu      RatingBand `json:"antutu"`
	Battery     RatingBand `json:"battery"`
	Camera      RatingBand `json:"camera"`
	Display     RatingBand `json:"display"`
	RefreshRate RatingBand `json:"refreshRate"`
}

// CompareWinners holds the best-in-category device ids for the candidate set.
// Pointers are nil when the set is empty.
type CompareWinners struct {
	Performance *int `json:"performance"`
	Value       *int `json:"value"`
	Battery     *int `json:"battery"`
	Camera      *int `json:"camera"`
	Price       *int `json:"price"`
}

type CompareAnalysisResponse struct {
	Devices []DeviceAnalysis `json:"devices"`
	Winners CompareWinners   `json:"winners"`
}
