package service

import (
	"fmt"

	"phonedex/internal/domain"
	"phonedex/internal/dto"
)

func validateCreateDevice(req dto.CreateDeviceRequest) error {
	required := []struct {
		name, value string
	}{
		{"name", req.Name},
		{"brand", req.Brand},
		{"model", req.Model},
		{"image", req.Image},
		{"displayType", req.DisplayType},
		{"displayResolution", req.DisplayResolution},
		{"processor", req.Processor},
		{"processorBrand", req.ProcessorBrand},
		{"mainCamera", req.MainCamera},
		{"frontCamera", req.FrontCamera},
		{"videoRecording", req.VideoRecording},
		{"dimensions", req.Dimensions},
		{"buildMaterial", req.BuildMaterial},
		{"wifi", req.WiFi},
		{"bluetooth", req.Bluetooth},
		{"operatingSystem", req.OperatingSystem},
		{"osVersion", req.OSVersion},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalidRequest, f.name)
		}
	}
	if req.ReleaseDate.IsZero() {
		return fmt.Errorf("%w: missing releaseDate", ErrInvalidRequest)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"price", float64(req.Price)},
		{"displaySize", req.DisplaySize},
		{"refreshRate", float64(req.RefreshRate)},
		{"ram", float64(req.RAM)},
		{"storage", float64(req.Storage)},
		{"batteryCapacity", float64(req.BatteryCapacity)},
		{"weight", float64(req.Weight)},
	}
	for _, f := range positives {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidRequest, f.name)
		}
	}

	return validateOptionalNumerics(req.Brightness, req.ChargingSpeed,
		req.AntutuScore, req.GeekbenchSingle, req.GeekbenchMulti)
}

func validateUpdateDevice(req dto.UpdateDeviceRequest) error {
	strs := []struct {
		name  string
		value *string
	}{
		{"name", req.Name},
		{"brand", req.Brand},
		{"model", req.Model},
		{"image", req.Image},
		{"displayType", req.DisplayType},
		{"displayResolution", req.DisplayResolution},
		{"processor", req.Processor},
		{"processorBrand", req.ProcessorBrand},
		{"mainCamera", req.MainCamera},
		{"frontCamera", req.FrontCamera},
		{"videoRecording", req.VideoRecording},
		{"dimensions", req.Dimensions},
		{"buildMaterial", req.BuildMaterial},
		{"wifi", req.WiFi},
		{"bluetooth", req.Bluetooth},
		{"operatingSystem", req.OperatingSystem},
		{"osVersion", req.OSVersion},
	}
	for _, f := range strs {
		if f.value != nil && *f.value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidRequest, f.name)
		}
	}

	positives := []struct {
		name  string
		value *float64
	}{
		{"price", intAsFloat(req.Price)},
		{"displaySize", req.DisplaySize},
		{"refreshRate", intAsFloat(req.RefreshRate)},
		{"ram", intAsFloat(req.RAM)},
		{"storage", intAsFloat(req.Storage)},
		{"batteryCapacity", intAsFloat(req.BatteryCapacity)},
		{"weight", intAsFloat(req.Weight)},
	}
	for _, f := range positives {
		if f.value != nil && *f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidRequest, f.name)
		}
	}
	if req.ReleaseDate != nil && req.ReleaseDate.IsZero() {
		return fmt.Errorf("%w: releaseDate must not be zero", ErrInvalidRequest)
	}

	return validateOptionalNumerics(req.Brightness, req.ChargingSpeed,
		req.AntutuScore, req.GeekbenchSingle, req.GeekbenchMulti)
}

// validateOptionalNumerics checks the shared optional fields: brightness and
// charging speed must be positive when present, benchmark figures must be
// non-negative.
func validateOptionalNumerics(brightness, chargingSpeed, antutu, gbSingle, gbMulti *int) error {
	if brightness != nil && *brightness <= 0 {
		return fmt.Errorf("%w: brightness must be positive", ErrInvalidRequest)
	}
	if chargingSpeed != nil && *chargingSpeed <= 0 {
		return fmt.Errorf("%w: chargingSpeed must be positive", ErrInvalidRequest)
	}
	benchmarks := []struct {
		name  string
		value *int
	}{
		{"antutuScore", antutu},
		{"geekbenchSingle", gbSingle},
		{"geekbenchMulti", gbMulti},
	}
	for _, f := range benchmarks {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRequest, f.name)
		}
	}
	return nil
}

// deviceFromCreate applies the insert defaults: unset booleans become false,
// unset optional numerics and text stay absent.
func deviceFromCreate(req dto.CreateDeviceRequest) domain.Device {
	return domain.Device{
		Name:        req.Name,
		Brand:       req.Brand,
		Model:       req.Model,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
		Image:       req.Image,

		DisplaySize:       req.DisplaySize,
		DisplayType:       req.DisplayType,
		DisplayResolution: req.DisplayResolution,
		RefreshRate:       req.RefreshRate,
		Brightness:        req.Brightness,

		Processor:         req.Processor,
		ProcessorBrand:    req.ProcessorBrand,
		RAM:               req.RAM,
		Storage:           req.Storage,
		ExpandableStorage: boolOrFalse(req.ExpandableStorage),

		MainCamera:      req.MainCamera,
		UltraWideCamera: req.UltraWideCamera,
		TelephotoCamera: req.TelephotoCamera,
		FrontCamera:     req.FrontCamera,
		VideoRecording:  req.VideoRecording,

		BatteryCapacity:  req.BatteryCapacity,
		ChargingSpeed:    req.ChargingSpeed,
		WirelessCharging: boolOrFalse(req.WirelessCharging),

		Dimensions:      req.Dimensions,
		Weight:          req.Weight,
		BuildMaterial:   req.BuildMaterial,
		WaterResistance: req.WaterResistance,

		FiveG:     boolOrFalse(req.FiveG),
		WiFi:      req.WiFi,
		Bluetooth: req.Bluetooth,
		NFC:       boolOrFalse(req.NFC),

		OperatingSystem: req.OperatingSystem,
		OSVersion:       req.OSVersion,

		AntutuScore:     req.AntutuScore,
		GeekbenchSingle: req.GeekbenchSingle,
		GeekbenchMulti:  req.GeekbenchMulti,

		Fingerprint:   boolOrFalse(req.Fingerprint),
		FaceUnlock:    boolOrFalse(req.FaceUnlock),
		HeadphoneJack: boolOrFalse(req.HeadphoneJack),
	}
}

// applyDevicePatch merges present fields over the record. Absent fields are
// left untouched; id and timestamps are handled by the store.
func applyDevicePatch(d *domain.Device, req dto.UpdateDeviceRequest) {
	setString(&d.Name, req.Name)
	setString(&d.Brand, req.Brand)
	setString(&d.Model, req.Model)
	setInt(&d.Price, req.Price)
	if req.ReleaseDate != nil {
		d.ReleaseDate = *req.ReleaseDate
	}
	setString(&d.Image, req.Image)

	if req.DisplaySize != nil {
		d.DisplaySize = *req.DisplaySize
	}
	setString(&d.DisplayType, req.DisplayType)
	setString(&d.DisplayResolution, req.DisplayResolution)
	setInt(&d.RefreshRate, req.RefreshRate)
	setOptInt(&d.Brightness, req.Brightness)

	setString(&d.Processor, req.Processor)
	setString(&d.ProcessorBrand, req.ProcessorBrand)
	setInt(&d.RAM, req.RAM)
	setInt(&d.Storage, req.Storage)
	setBool(&d.ExpandableStorage, req.ExpandableStorage)

	setString(&d.MainCamera, req.MainCamera)
	setOptString(&d.UltraWideCamera, req.UltraWideCamera)
	setOptString(&d.TelephotoCamera, req.TelephotoCamera)
	setString(&d.FrontCamera, req.FrontCamera)
	setString(&d.VideoRecording, req.VideoRecording)

	setInt(&d.BatteryCapacity, req.BatteryCapacity)
	setOptInt(&d.ChargingSpeed, req.ChargingSpeed)
	setBool(&d.WirelessCharging, req.WirelessCharging)

	setString(&d.Dimensions, req.Dimensions)
	setInt(&d.Weight, req.Weight)
	setString(&d.BuildMaterial, req.BuildMaterial)
	setOptString(&d.WaterResistance, req.WaterResistance)

	setBool(&d.FiveG, req.FiveG)
	setString(&d.WiFi, req.WiFi)
	setString(&d.Bluetooth, req.Bluetooth)
	setBool(&d.NFC, req.NFC)

	setString(&d.OperatingSystem, req.OperatingSystem)
	setString(&d.OSVersion, req.OSVersion)

	setOptInt(&d.AntutuScore, req.AntutuScore)
	setOptInt(&d.GeekbenchSingle, req.GeekbenchSingle)
	setOptInt(&d.GeekbenchMulti, req.GeekbenchMulti)

	setBool(&d.Fingerprint, req.Fingerprint)
	setBool(&d.FaceUnlock, req.FaceUnlock)
	setBool(&d.HeadphoneJack, req.HeadphoneJack)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setOptString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func setOptInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

func intAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
