package ranking

import (
	"testing"

	"phonedex/internal/domain"
)

func intp(v int) *int { return &v }

func benchDevice() domain.Device {
	return domain.Device{
		Price:           100000, // $1000
		RAM:             12,
		Storage:         512,
		BatteryCapacity: 5000,
		AntutuScore:     intp(1000000),
		GeekbenchSingle: intp(1500),
		GeekbenchMulti:  intp(4000),
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Device)
		want   int
	}{
		// 20 (antutu) + 15 (geekbench) + 7.5 (ram) + 7.5 (storage) = 50
		{name: "baseline", mutate: func(*domain.Device) {}, want: 50},
		// Missing antutu zeroes its contribution but keeps its weight.
		{name: "no antutu", mutate: func(d *domain.Device) { d.AntutuScore = nil }, want: 30},
		// Either geekbench figure missing drops the whole 30-point share.
		{name: "no geekbench single", mutate: func(d *domain.Device) { d.GeekbenchSingle = nil }, want: 35},
		{name: "no geekbench multi", mutate: func(d *domain.Device) { d.GeekbenchMulti = nil }, want: 35},
		// Components cap at their weight.
		{name: "antutu above ceiling", mutate: func(d *domain.Device) { d.AntutuScore = intp(5000000) }, want: 70},
		{name: "ram above ceiling", mutate: func(d *domain.Device) { d.RAM = 64 }, want: 58},
		{name: "no benchmarks at ceilings", mutate: func(d *domain.Device) {
			d.AntutuScore = nil
			d.GeekbenchSingle = nil
			d.GeekbenchMulti = nil
			d.RAM = 24
			d.Storage = 1024
		}, want: 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := benchDevice()
			tc.mutate(&d)
			if got := PerformanceScore(d); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestPerformanceScoreMonotonic(t *testing.T) {
	base := benchDevice()
	baseScore := PerformanceScore(base)

	bumps := []struct {
		name   string
		mutate func(*domain.Device)
	}{
		{name: "antutu", mutate: func(d *domain.Device) { d.AntutuScore = intp(*d.AntutuScore + 200000) }},
		{name: "geekbench single", mutate: func(d *domain.Device) { d.GeekbenchSingle = intp(*d.GeekbenchSingle + 500) }},
		{name: "geekbench multi", mutate: func(d *domain.Device) { d.GeekbenchMulti = intp(*d.GeekbenchMulti + 2000) }},
		{name: "ram", mutate: func(d *domain.Device) { d.RAM += 4 }},
		{name: "storage", mutate: func(d *domain.Device) { d.Storage += 256 }},
	}
	for _, tc := range bumps {
		t.Run(tc.name, func(t *testing.T) {
			d := benchDevice()
			tc.mutate(&d)
			if got := PerformanceScore(d); got < baseScore {
				t.Fatalf("score decreased from %d to %d after raising %s", baseScore, got, tc.name)
			}
		})
	}
}

func TestValueScore(t *testing.T) {
	d := benchDevice()
	d.Price = 80000 // $800: priceScore = 100 - 40 = 60, perf = 50
	if got := ValueScore(d); got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}

	// A price past the roll-off floors the price score at 0.
	d.Price = 300000 // $3000
	if got := ValueScore(d); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}

func TestValueScoreRewardsCheaperDevice(t *testing.T) {
	cheap := benchDevice()
	cheap.Price = 40000
	pricey := benchDevice()
	pricey.Price = 120000
	if ValueScore(cheap) <= ValueScore(pricey) {
		t.Fatalf("expected cheaper device to score higher")
	}
}

func TestPerDollarRatios(t *testing.T) {
	d := benchDevice() // $1000
	if got := AntutuPerDollar(d); got != 1000 {
		t.Fatalf("antutu per dollar: expected 1000, got %d", got)
	}
	if got := RAMScorePerDollar(d); got != 12 {
		t.Fatalf("ram score per dollar: expected 12, got %d", got)
	}
	if got := BatteryScorePerDollar(d); got != 50 {
		t.Fatalf("battery score per dollar: expected 50, got %d", got)
	}
	if got := PricePerGBRAM(d); got != 83 {
		t.Fatalf("price per gb ram: expected 83, got %d", got)
	}

	d.AntutuScore = nil
	if got := AntutuPerDollar(d); got != 0 {
		t.Fatalf("expected 0 without an antutu score, got %d", got)
	}
}

func TestBatteryLifeHours(t *testing.T) {
	if got := BatteryLifeHours(5000, 1); got != 15.0 {
		t.Fatalf("expected 15.0, got %v", got)
	}
	if got := BatteryLifeHours(3274, 1); got != 9.8 {
		t.Fatalf("expected 9.8, got %v", got)
	}
	if got := BatteryLifeHours(5000, 0.8); got != 12.0 {
		t.Fatalf("expected 12.0, got %v", got)
	}
}
