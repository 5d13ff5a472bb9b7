package domain

import "time"

// Device is one catalog entry. Optional spec fields are pointers so that
// "not provided" stays distinct from a zero value; the ranking package
// depends on that distinction.
type Device struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Price       int       `json:"price"` // cents
	ReleaseDate time.Time `json:"releaseDate"`
	Image       string    `json:"image"`

	// Display
	DisplaySize       float64 `json:"displaySize"` // inches
	DisplayType       string  `json:"displayType"`
	DisplayResolution string  `json:"displayResolution"`
	RefreshRate       int     `json:"refreshRate"` // Hz
	Brightness        *int    `json:"brightness"`  // nits

	// Performance
	Processor         string `json:"processor"`
	ProcessorBrand    string `json:"processorBrand"`
	RAM               int    `json:"ram"`     // GB
	Storage           int    `json:"storage"` // GB
	ExpandableStorage bool   `json:"expandableStorage"`

	// Camera
	MainCamera      string  `json:"mainCamera"`
	UltraWideCamera *string `json:"ultraWideCamera"`
	TelephotoCamera *string `json:"telephotoCamera"`
	FrontCamera     string  `json:"frontCamera"`
	VideoRecording  string  `json:"videoRecording"`

	// Battery
	BatteryCapacity  int  `json:"batteryCapacity"` // mAh
	ChargingSpeed    *int `json:"chargingSpeed"`   // watts
	WirelessCharging bool `json:"wirelessCharging"`

	// Design
	Dimensions      string  `json:"dimensions"`
	Weight          int     `json:"weight"` // grams
	BuildMaterial   string  `json:"buildMaterial"`
	WaterResistance *string `json:"waterResistance"`

	// Connectivity
	FiveG     bool   `json:"fiveG"`
	WiFi      string `json:"wifi"`
	Bluetooth string `json:"bluetooth"`
	NFC       bool   `json:"nfc"`

	// Software
	OperatingSystem string `json:"operatingSystem"`
	OSVersion       string `json:"osVersion"`

	// Benchmarks. Absent means "not benchmarked", never zero.
	AntutuScore     *int `json:"antutuScore"`
	GeekbenchSingle *int `json:"geekbenchSingle"`
	GeekbenchMulti  *int `json:"geekbenchMulti"`

	Fingerprint   bool `json:"fingerprint"`
	FaceUnlock    bool `json:"faceUnlock"`
	HeadphoneJack bool `json:"headphoneJack"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
