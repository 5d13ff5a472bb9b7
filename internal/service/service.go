package service

import (
	"context"
	"fmt"
	"log/slog"

	"phonedex/internal/domain"
	"phonedex/internal/dto"
	"phonedex/internal/ranking"
	"phonedex/internal/store"
)

// Service validates inbound requests, applies defaults, and translates store
// misses into sentinel errors. The store assumes well-typed input; everything
// taxonomy-wise invalid is rejected here first.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// --- Devices ---

func (s *Service) ListDevices(ctx context.Context, filter store.DeviceFilter) []domain.Device {
	return s.store.Devices().List(filter)
}

func (s *Service) GetDevice(ctx context.Context, id int) (domain.Device, error) {
	d, ok := s.store.Devices().Get(id)
	if !ok {
		return domain.Device{}, domain.ErrDeviceNotFound
	}
	return d, nil
}

func (s *Service) CreateDevice(ctx context.Context, req dto.CreateDeviceRequest) (domain.Device, error) {
	if err := validateCreateDevice(req); err != nil {
		return domain.Device{}, err
	}
	return s.store.Devices().Create(deviceFromCreate(req)), nil
}

func (s *Service) UpdateDevice(ctx context.Context, id int, req dto.UpdateDeviceRequest) (domain.Device, error) {
	if err := validateUpdateDevice(req); err != nil {
		return domain.Device{}, err
	}
	d, ok := s.store.Devices().Update(id, func(d *domain.Device) {
		applyDevicePatch(d, req)
	})
	if !ok {
		return domain.Device{}, domain.ErrDeviceNotFound
	}
	return d, nil
}

func (s *Service) DeleteDevice(ctx context.Context, id int) error {
	if !s.store.Devices().Delete(id) {
		return domain.ErrDeviceNotFound
	}
	return nil
}

func (s *Service) FeaturedDevices(ctx context.Context) []domain.Device {
	return s.store.Devices().Featured()
}

func (s *Service) DevicesByBrand(ctx context.Context, brandName string) []domain.Device {
	return s.store.Devices().ListByBrand(brandName)
}

func (s *Service) SearchDevices(ctx context.Context, query string) []domain.Device {
	return s.store.Devices().Search(query)
}

// --- Brands ---

func (s *Service) ListBrands(ctx context.Context) []domain.Brand {
	return s.store.Brands().List()
}

func (s *Service) GetBrand(ctx context.Context, id int) (domain.Brand, error) {
	b, ok := s.store.Brands().Get(id)
	if !ok {
		return domain.Brand{}, domain.ErrBrandNotFound
	}
	return b, nil
}

func (s *Service) CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (domain.Brand, error) {
	if req.Name == "" {
		return domain.Brand{}, fmt.Errorf("%w: missing name", ErrInvalidRequest)
	}
	return s.store.Brands().Create(domain.Brand{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
	}), nil
}

// --- Comparisons ---

func (s *Service) ListComparisons(ctx context.Context) []domain.Comparison {
	return s.store.Comparisons().List()
}

func (s *Service) GetComparison(ctx context.Context, id int) (domain.Comparison, error) {
	c, ok := s.store.Comparisons().Get(id)
	if !ok {
		return domain.Comparison{}, domain.ErrComparisonNotFound
	}
	return c, nil
}

// CreateComparison stores the id list as given. The contents are not
// validated; resolution is lazy (see Compare) and ids may dangle after a
// device delete.
func (s *Service) CreateComparison(ctx context.Context, req dto.CreateComparisonRequest) (domain.Comparison, error) {
	if req.Name == "" {
		return domain.Comparison{}, fmt.Errorf("%w: missing name", ErrInvalidRequest)
	}
	if req.DeviceIDs == "" {
		return domain.Comparison{}, fmt.Errorf("%w: missing deviceIds", ErrInvalidRequest)
	}
	return s.store.Comparisons().Create(domain.Comparison{
		Name:      req.Name,
		DeviceIDs: req.DeviceIDs,
	}), nil
}

func (s *Service) DeleteComparison(ctx context.Context, id int) error {
	if !s.store.Comparisons().Delete(id) {
		return domain.ErrComparisonNotFound
	}
	return nil
}

// --- Compare ---

// Compare resolves every id or fails the whole request; there is no partial
// result.
func (s *Service) Compare(ctx context.Context, deviceIDs []int) ([]domain.Device, error) {
	if len(deviceIDs) < 2 {
		return nil, fmt.Errorf("%w: at least 2 device ids are required for comparison", ErrInvalidRequest)
	}
	devices := make([]domain.Device, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		d, ok := s.store.Devices().Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: device with id %d not found", ErrInvalidRequest, id)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// CompareAnalysis resolves the devices and annotates each with the derived
// metrics plus the best-in-category winners for the set.
func (s *Service) CompareAnalysis(ctx context.Context, deviceIDs []int) (dto.CompareAnalysisResponse, error) {
	devices, err := s.Compare(ctx, deviceIDs)
	if err != nil {
		return dto.CompareAnalysisResponse{}, err
	}

	resp := dto.CompareAnalysisResponse{
		Devices: make([]dto.DeviceAnalysis, 0, len(devices)),
	}
	for _, d := range devices {
		if !ranking.ParsesMegapixels(d.MainCamera) {
			// Data-quality flag: the camera rating silently degrades to N/A.
			slog.Warn("main camera description has no parseable megapixel count",
				"device_id", d.ID, "main_camera", d.MainCamera)
		}
		resp.Devices = append(resp.Devices, dto.DeviceAnalysis{
			Device:                d,
			PerformanceScore:      ranking.PerformanceScore(d),
			ValueScore:            ranking.ValueScore(d),
			BatteryLifeHours:      ranking.BatteryLifeHours(d.BatteryCapacity, 1),
			AntutuPerDollar:       ranking.AntutuPerDollar(d),
			RAMScorePerDollar:     ranking.RAMScorePerDollar(d),
			BatteryScorePerDollar: ranking.BatteryScorePerDollar(d),
			PricePerGBRAM:         ranking.PricePerGBRAM(d),
			Antutu:                band(ranking.RateAntutu(d)),
			Battery:               band(ranking.RateBattery(d)),
			Camera:                band(ranking.RateCamera(d)),
			Display:               band(ranking.RateDisplay(d)),
			RefreshRate:           band(ranking.RateRefreshRate(d)),
		})
	}

	resp.Winners = dto.CompareWinners{
		Performance: winnerID(ranking.BestPerformance(devices)),
		Value:       winnerID(ranking.BestValue(devices)),
		Battery:     winnerID(ranking.BestBattery(devices)),
		Camera:      winnerID(ranking.BestCamera(devices)),
		Price:       winnerID(ranking.BestPrice(devices)),
	}
	return resp, nil
}

func band(b ranking.Band) dto.RatingBand {
	return dto.RatingBand{Percent: b.Percent, Label: b.Label}
}

func winnerID(d domain.Device, ok bool) *int {
	if !ok {
		return nil
	}
	id := d.ID
	return &id
}
