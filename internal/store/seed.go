package store

import (
	"time"

	"phonedex/internal/domain"
)

// Seed loads the built-in sample catalog: five brands and five phones.
// Intended for a fresh store; calling it twice duplicates the data.
func (s *Store) Seed() {
	brands := []domain.Brand{
		{Name: "Samsung", Logo: ptr("https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/samsung.svg"), Description: ptr("South Korean multinational electronics company"), Website: ptr("https://samsung.com")},
		{Name: "Apple", Logo: ptr("https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/apple.svg"), Description: ptr("American technology company"), Website: ptr("https://apple.com")},
		{Name: "Google", Logo: ptr("https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/google.svg"), Description: ptr("American technology company"), Website: ptr("https://google.com")},
		{Name: "OnePlus", Logo: ptr("https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/oneplus.svg"), Description: ptr("Chinese smartphone manufacturer"), Website: ptr("https://oneplus.com")},
		{Name: "Xiaomi", Logo: ptr("https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/xiaomi.svg"), Description: ptr("Chinese electronics company"), Website: ptr("https://mi.com")},
	}
	for _, b := range brands {
		s.Brands().Create(b)
	}

	devices := []domain.Device{
		{
			Name:        "Galaxy S24 Ultra",
			Brand:       "Samsung",
			Model:       "SM-S928B",
			Price:       129900,
			ReleaseDate: date(2024, time.January, 24),
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",

			DisplaySize:       6.8,
			DisplayType:       "Dynamic AMOLED 2X",
			DisplayResolution: "3120 x 1440",
			RefreshRate:       120,
			Brightness:        ptr(2600),

			Processor:         "Snapdragon 8 Gen 3",
			ProcessorBrand:    "Qualcomm",
			RAM:               12,
			Storage:           256,
			ExpandableStorage: true,

			MainCamera:      "200MP f/1.7 OIS",
			UltraWideCamera: ptr("12MP f/2.2"),
			TelephotoCamera: ptr("50MP f/3.4 OIS + 10MP f/2.4 OIS"),
			FrontCamera:     "12MP f/2.2",
			VideoRecording:  "8K@30fps, 4K@60fps",

			BatteryCapacity:  5000,
			ChargingSpeed:    ptr(45),
			WirelessCharging: true,

			Dimensions:      "162.3 x 79.0 x 8.6 mm",
			Weight:          232,
			BuildMaterial:   "Titanium frame, Gorilla Glass Victus 2",
			WaterResistance: ptr("IP68"),

			FiveG:     true,
			WiFi:      "Wi-Fi 7",
			Bluetooth: "5.3",
			NFC:       true,

			OperatingSystem: "Android",
			OSVersion:       "14",

			AntutuScore:     ptr(1650000),
			GeekbenchSingle: ptr(2100),
			GeekbenchMulti:  ptr(6500),

			Fingerprint: true,
			FaceUnlock:  true,
		},
		{
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Model:       "A3108",
			Price:       99900,
			ReleaseDate: date(2023, time.September, 22),
			Image:       "https://images.unsplash.com/photo-1695048133142-1a20484d2569?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",

			DisplaySize:       6.1,
			DisplayType:       "Super Retina XDR OLED",
			DisplayResolution: "2556 x 1179",
			RefreshRate:       120,
			Brightness:        ptr(2000),

			Processor:      "A17 Pro",
			ProcessorBrand: "Apple",
			RAM:            8,
			Storage:        128,

			MainCamera:      "48MP f/1.78 OIS",
			UltraWideCamera: ptr("13MP f/2.2"),
			TelephotoCamera: ptr("12MP f/2.8 OIS"),
			FrontCamera:     "12MP f/1.9",
			VideoRecording:  "4K@60fps, ProRes",

			BatteryCapacity:  3274,
			ChargingSpeed:    ptr(27),
			WirelessCharging: true,

			Dimensions:      "146.6 x 70.6 x 8.25 mm",
			Weight:          187,
			BuildMaterial:   "Titanium frame, Ceramic Shield",
			WaterResistance: ptr("IP68"),

			FiveG:     true,
			WiFi:      "Wi-Fi 6E",
			Bluetooth: "5.3",
			NFC:       true,

			OperatingSystem: "iOS",
			OSVersion:       "17",

			AntutuScore:     ptr(1580000),
			GeekbenchSingle: ptr(2900),
			GeekbenchMulti:  ptr(7200),

			FaceUnlock: true,
		},
		{
			Name:        "Pixel 8 Pro",
			Brand:       "Google",
			Model:       "GC3VE",
			Price:       89900,
			ReleaseDate: date(2023, time.October, 12),
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",

			DisplaySize:       6.7,
			DisplayType:       "LTPO OLED",
			DisplayResolution: "2992 x 1344",
			RefreshRate:       120,
			Brightness:        ptr(2400),

			Processor:      "Google Tensor G3",
			ProcessorBrand: "Google",
			RAM:            12,
			Storage:        128,

			MainCamera:      "50MP f/1.68 OIS",
			UltraWideCamera: ptr("48MP f/1.95"),
			TelephotoCamera: ptr("48MP f/2.8 OIS"),
			FrontCamera:     "10.5MP f/2.2",
			VideoRecording:  "4K@60fps, 8K@30fps",

			BatteryCapacity:  5050,
			ChargingSpeed:    ptr(30),
			WirelessCharging: true,

			Dimensions:      "162.6 x 76.5 x 8.8 mm",
			Weight:          213,
			BuildMaterial:   "Aluminum frame, Gorilla Glass Victus 2",
			WaterResistance: ptr("IP68"),

			FiveG:     true,
			WiFi:      "Wi-Fi 7",
			Bluetooth: "5.3",
			NFC:       true,

			OperatingSystem: "Android",
			OSVersion:       "14",

			AntutuScore:     ptr(1100000),
			GeekbenchSingle: ptr(1760),
			GeekbenchMulti:  ptr(4442),

			Fingerprint: true,
			FaceUnlock:  true,
		},
		{
			Name:        "OnePlus 12",
			Brand:       "OnePlus",
			Model:       "CPH2573",
			Price:       79900,
			ReleaseDate: date(2024, time.January, 23),
			Image:       "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",

			DisplaySize:       6.82,
			DisplayType:       "LTPO3 AMOLED",
			DisplayResolution: "3168 x 1440",
			RefreshRate:       120,
			Brightness:        ptr(4500),

			Processor:      "Snapdragon 8 Gen 3",
			ProcessorBrand: "Qualcomm",
			RAM:            16,
			Storage:        512,

			MainCamera:      "50MP f/1.6 OIS",
			UltraWideCamera: ptr("64MP f/2.5"),
			TelephotoCamera: ptr("48MP f/2.8 OIS"),
			FrontCamera:     "32MP f/2.4",
			VideoRecording:  "8K@24fps, 4K@60fps",

			BatteryCapacity:  5400,
			ChargingSpeed:    ptr(100),
			WirelessCharging: true,

			Dimensions:      "164.3 x 75.8 x 9.15 mm",
			Weight:          220,
			BuildMaterial:   "Aluminum frame, Gorilla Glass Victus 2",
			WaterResistance: ptr("IP65"),

			FiveG:     true,
			WiFi:      "Wi-Fi 7",
			Bluetooth: "5.4",
			NFC:       true,

			OperatingSystem: "Android",
			OSVersion:       "14",

			AntutuScore:     ptr(1620000),
			GeekbenchSingle: ptr(2150),
			GeekbenchMulti:  ptr(6400),

			Fingerprint: true,
			FaceUnlock:  true,
		},
		{
			Name:        "Galaxy A54 5G",
			Brand:       "Samsung",
			Model:       "SM-A546B",
			Price:       44900,
			ReleaseDate: date(2023, time.March, 24),
			Image:       "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",

			DisplaySize:       6.4,
			DisplayType:       "Super AMOLED",
			DisplayResolution: "2340 x 1080",
			RefreshRate:       120,
			Brightness:        ptr(1000),

			Processor:         "Exynos 1380",
			ProcessorBrand:    "Samsung",
			RAM:               8,
			Storage:           256,
			ExpandableStorage: true,

			MainCamera:      "50MP f/1.8 OIS",
			UltraWideCamera: ptr("12MP f/2.2"),
			TelephotoCamera: ptr("5MP f/2.4 Macro"),
			FrontCamera:     "32MP f/2.2",
			VideoRecording:  "4K@30fps",

			BatteryCapacity: 5000,
			ChargingSpeed:   ptr(25),

			Dimensions:      "158.2 x 76.7 x 8.2 mm",
			Weight:          202,
			BuildMaterial:   "Plastic frame, Gorilla Glass 5",
			WaterResistance: ptr("IP67"),

			FiveG:     true,
			WiFi:      "Wi-Fi 6",
			Bluetooth: "5.3",
			NFC:       true,

			OperatingSystem: "Android",
			OSVersion:       "13",

			AntutuScore:     ptr(485000),
			GeekbenchSingle: ptr(1050),
			GeekbenchMulti:  ptr(3100),

			Fingerprint: true,
			FaceUnlock:  true,
		},
	}
	for _, d := range devices {
		s.Devices().Create(d)
	}
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
