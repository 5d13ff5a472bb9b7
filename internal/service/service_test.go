package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"phonedex/internal/domain"
	"phonedex/internal/dto"
	"phonedex/internal/store"
)

func newTestService(t *testing.T, seed bool) *Service {
	t.Helper()
	st := store.New()
	if seed {
		st.Seed()
	}
	return New(st)
}

func validCreateRequest() dto.CreateDeviceRequest {
	return dto.CreateDeviceRequest{
		Name:              "Test Phone",
		Brand:             "TestBrand",
		Model:             "TP-1",
		Price:             59900,
		ReleaseDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Image:             "https://example.com/tp1.jpg",
		DisplaySize:       6.5,
		DisplayType:       "AMOLED",
		DisplayResolution: "1080x2400",
		RefreshRate:       120,
		Processor:         "Test SoC",
		ProcessorBrand:    "TestSilicon",
		RAM:               8,
		Storage:           256,
		MainCamera:        "50MP f/1.8",
		FrontCamera:       "16MP f/2.2",
		VideoRecording:    "4K@60fps",
		BatteryCapacity:   4800,
		Dimensions:        "160 x 74 x 8.2 mm",
		Weight:            190,
		BuildMaterial:     "Aluminum frame",
		WiFi:              "Wi-Fi 6E",
		Bluetooth:         "5.3",
		OperatingSystem:   "Android",
		OSVersion:         "14",
	}
}

func TestCreateDeviceValidation(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.CreateDeviceRequest)
	}{
		{name: "missing name", mutate: func(r *dto.CreateDeviceRequest) { r.Name = "" }},
		{name: "missing brand", mutate: func(r *dto.CreateDeviceRequest) { r.Brand = "" }},
		{name: "missing release date", mutate: func(r *dto.CreateDeviceRequest) { r.ReleaseDate = time.Time{} }},
		{name: "zero price", mutate: func(r *dto.CreateDeviceRequest) { r.Price = 0 }},
		{name: "negative ram", mutate: func(r *dto.CreateDeviceRequest) { r.RAM = -4 }},
		{name: "zero brightness", mutate: func(r *dto.CreateDeviceRequest) { r.Brightness = intp(0) }},
		{name: "negative antutu", mutate: func(r *dto.CreateDeviceRequest) { r.AntutuScore = intp(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.CreateDevice(ctx, req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestCreateDeviceDefaults(t *testing.T) {
	svc := newTestService(t, false)

	got, err := svc.CreateDevice(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if got.FiveG || got.NFC || got.WirelessCharging || got.Fingerprint {
		t.Fatalf("unset booleans should default to false: %+v", got)
	}
	if got.AntutuScore != nil || got.Brightness != nil || got.UltraWideCamera != nil {
		t.Fatalf("unset optional fields should stay absent")
	}

	req := validCreateRequest()
	req.FiveG = boolp(true)
	req.AntutuScore = intp(750000)
	got, err = svc.CreateDevice(context.Background(), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !got.FiveG {
		t.Fatalf("explicit fiveG=true should stick")
	}
	if got.AntutuScore == nil || *got.AntutuScore != 750000 {
		t.Fatalf("explicit antutu score should stick, got %v", got.AntutuScore)
	}
}

func TestUpdateDeviceMergePatch(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	created, err := svc.CreateDevice(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.UpdateDevice(ctx, created.ID, dto.UpdateDeviceRequest{
		Price:       intp(49900),
		AntutuScore: intp(800000),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Price != 49900 {
		t.Fatalf("expected patched price 49900, got %d", got.Price)
	}
	if got.AntutuScore == nil || *got.AntutuScore != 800000 {
		t.Fatalf("expected patched antutu score, got %v", got.AntutuScore)
	}
	if got.Name != created.Name || got.RAM != created.RAM {
		t.Fatalf("untouched fields must survive the patch")
	}

	if _, err := svc.UpdateDevice(ctx, created.ID, dto.UpdateDeviceRequest{Name: strp("")}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("empty name patch: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.UpdateDevice(ctx, created.ID, dto.UpdateDeviceRequest{Price: intp(-1)}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("negative price patch: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.UpdateDevice(ctx, 9999, dto.UpdateDeviceRequest{Price: intp(100)}); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("unknown id: expected ErrDeviceNotFound, got %v", err)
	}
}

func TestDeviceNotFoundSentinels(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	if _, err := svc.GetDevice(ctx, 1); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("get: expected ErrDeviceNotFound, got %v", err)
	}
	if err := svc.DeleteDevice(ctx, 1); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("delete: expected ErrDeviceNotFound, got %v", err)
	}
	if _, err := svc.GetBrand(ctx, 1); !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("brand: expected ErrBrandNotFound, got %v", err)
	}
	if _, err := svc.GetComparison(ctx, 1); !errors.Is(err, domain.ErrComparisonNotFound) {
		t.Fatalf("comparison: expected ErrComparisonNotFound, got %v", err)
	}
}

func TestCreateBrandAndComparisonValidation(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	if _, err := svc.CreateBrand(ctx, dto.CreateBrandRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("brand without name: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.CreateComparison(ctx, dto.CreateComparisonRequest{Name: "x"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("comparison without deviceIds: expected ErrInvalidRequest, got %v", err)
	}

	// Comparison ids are stored as given, dangling or not.
	c, err := svc.CreateComparison(ctx, dto.CreateComparisonRequest{
		Name:      "ghosts",
		DeviceIDs: domain.EncodeDeviceIDs([]int{998, 999}),
	})
	if err != nil {
		t.Fatalf("create comparison failed: %v", err)
	}
	ids, err := domain.DecodeDeviceIDs(c.DeviceIDs)
	if err != nil || len(ids) != 2 {
		t.Fatalf("stored ids should round-trip, got %v err=%v", ids, err)
	}
}

func TestCompare(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	if _, err := svc.Compare(ctx, []int{1}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("single id: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.Compare(ctx, []int{1, 999}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("unknown id: expected ErrInvalidRequest, got %v", err)
	}

	devices, err := svc.Compare(ctx, []int{2, 1})
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(devices) != 2 || devices[0].ID != 2 || devices[1].ID != 1 {
		t.Fatalf("devices must come back in request order, got %+v", devices)
	}
}

func TestCompareAnalysisWinners(t *testing.T) {
	svc := newTestService(t, true)

	resp, err := svc.CompareAnalysis(context.Background(), []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	if len(resp.Devices) != 5 {
		t.Fatalf("expected 5 analysed devices, got %d", len(resp.Devices))
	}

	winners := map[string]*int{
		"performance": resp.Winners.Performance,
		"value":       resp.Winners.Value,
		"battery":     resp.Winners.Battery,
		"camera":      resp.Winners.Camera,
		"price":       resp.Winners.Price,
	}
	want := map[string]int{
		"performance": 4, // OnePlus 12
		"value":       4,
		"battery":     4,
		"camera":      1, // Galaxy S24 Ultra, 200MP
		"price":       5, // Galaxy A54 5G
	}
	for category, id := range want {
		got := winners[category]
		if got == nil {
			t.Fatalf("%s winner missing", category)
		}
		if *got != id {
			t.Fatalf("%s winner: expected device %d, got %d", category, id, *got)
		}
	}

	for _, d := range resp.Devices {
		if d.PerformanceScore <= 0 || d.PerformanceScore > 100 {
			t.Fatalf("device %d performance score out of range: %d", d.Device.ID, d.PerformanceScore)
		}
		if d.Battery.Label == "N/A" {
			t.Fatalf("seeded device %d should have a battery rating", d.Device.ID)
		}
	}
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }
