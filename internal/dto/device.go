package dto

import "time"

// CreateDeviceRequest carries the full device shape minus id and timestamps.
// Optional fields stay pointers so unset ones are stored as absent, not zero.
type CreateDeviceRequest struct {
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Price       int       `json:"price"`
	ReleaseDate time.Time `json:"releaseDate"`
	Image       string    `json:"image"`

	DisplaySize       float64 `json:"displaySize"`
	DisplayType       string  `json:"displayType"`
	DisplayResolution string  `json:"displayResolution"`
	RefreshRate       int     `json:"refreshRate"`
	Brightness        *int    `json:"brightness"`

	Processor         string `json:"processor"`
	ProcessorBrand    string `json:"processorBrand"`
	RAM               int    `json:"ram"`
	Storage           int    `json:"storage"`
	ExpandableStorage *bool  `json:"expandableStorage"`

	MainCamera      string  `json:"mainCamera"`
	UltraWideCamera *string `json:"ultraWideCamera"`
	TelephotoCamera *string `json:"telephotoCamera"`
	FrontCamera     string  `json:"frontCamera"`
	VideoRecording  string  `json:"videoRecording"`

	BatteryCapacity  int  `json:"batteryCapacity"`
	ChargingSpeed    *int `json:"chargingSpeed"`
	WirelessCharging *bool `json:"wirelessCharging"`

	Dimensions      string  `json:"dimensions"`
	Weight          int     `json:"weight"`
	BuildMaterial   string  `json:"buildMaterial"`
	WaterResistance *string `json:"waterResistance"`

	FiveG     *bool  `json:"fiveG"`
	WiFi      string `json:"wifi"`
	Bluetooth string `json:"bluetooth"`
	NFC       *bool  `json:"nfc"`

	OperatingSystem string `json:"operatingSystem"`
	OSVersion       string `json:"osVersion"`

	AntutuScore     *int `json:"antutuScore"`
	GeekbenchSingle *int `json:"geekbenchSingle"`
	GeekbenchMulti  *int `json:"geekbenchMulti"`

	Fingerprint   *bool `json:"fingerprint"`
	FaceUnlock    *bool `json:"faceUnlock"`
	HeadphoneJack *bool `json:"headphoneJack"`
}

// UpdateDeviceRequest is a merge-patch: every field is optional and only
// present fields overwrite the stored record.
type UpdateDeviceRequest struct {
	Name        *string    `json:"name"`
	Brand       *string    `json:"brand"`
	Model       *string    `json:"model"`
	Price       *int       `json:"price"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Image       *string    `json:"image"`

	DisplaySize       *float64 `json:"displaySize"`
	DisplayType       *string  `json:"displayType"`
	DisplayResolution *string  `json:"displayResolution"`
	RefreshRate       *int     `json:"refreshRate"`
	Brightness        *int     `json:"brightness"`

	Processor         *string `json:"processor"`
	ProcessorBrand    *string `json:"processorBrand"`
	RAM               *int    `json:"ram"`
	Storage           *int    `json:"storage"`
	ExpandableStorage *bool   `json:"expandableStorage"`

	MainCamera      *string `json:"mainCamera"`
	UltraWideCamera *string `json:"ultraWideCamera"`
	TelephotoCamera *string `json:"telephotoCamera"`
	FrontCamera     *string `json:"frontCamera"`
	VideoRecording  *string `json:"videoRecording"`

	BatteryCapacity  *int  `json:"batteryCapacity"`
	ChargingSpeed    *int  `json:"chargingSpeed"`
	WirelessCharging *bool `json:"wirelessCharging"`

	Dimensions      *string `json:"dimensions"`
	Weight          *int    `json:"weight"`
	BuildMaterial   *string `json:"buildMaterial"`
	WaterResistance *string `json:"waterResistance"`

	FiveG     *bool   `json:"fiveG"`
	WiFi      *string `json:"wifi"`
	Bluetooth *string `json:"bluetooth"`
	NFC       *bool   `json:"nfc"`

	OperatingSystem *string `json:"operatingSystem"`
	OSVersion       *string `json:"osVersion"`

	AntutuScore     *int `json:"antutuScore"`
	GeekbenchSingle *int `json:"geekbenchSingle"`
	GeekbenchMulti  *int `json:"geekbenchMulti"`

	Fingerprint   *bool `json:"fingerprint"`
	FaceUnlock    *bool `json:"faceUnlock"`
	HeadphoneJack *bool `json:"headphoneJack"`
}
