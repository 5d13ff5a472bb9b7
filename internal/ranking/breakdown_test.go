package ranking

import "testing"

func TestSpecBreakdown(t *testing.T) {
	d := benchDevice()
	d.DisplaySize = 7
	d.RefreshRate = 60

	got := SpecBreakdown(d)
	if got.CPU != 50 {
		t.Fatalf("cpu: expected 50, got %v", got.CPU)
	}
	if got.GPU != 50 {
		t.Fatalf("gpu: expected 50, got %v", got.GPU)
	}
	if got.Memory != 50 {
		t.Fatalf("memory: expected 50, got %v", got.Memory)
	}
	if got.Storage != 50 {
		t.Fatalf("storage: expected 50, got %v", got.Storage)
	}
	if got.Display != 50 {
		t.Fatalf("display: expected 50, got %v", got.Display)
	}

	// 5000/6000 battery.
	if got.Battery <= 83 || got.Battery >= 84 {
		t.Fatalf("battery: expected ~83.3, got %v", got.Battery)
	}
}

func TestSpecBreakdownClampsAndZeroes(t *testing.T) {
	d := benchDevice()
	d.RAM = 64
	d.AntutuScore = nil
	d.GeekbenchSingle = nil

	got := SpecBreakdown(d)
	if got.Memory != 100 {
		t.Fatalf("memory should clamp at 100, got %v", got.Memory)
	}
	if got.CPU != 0 || got.GPU != 0 {
		t.Fatalf("missing benchmarks should zero cpu/gpu, got cpu=%v gpu=%v", got.CPU, got.GPU)
	}
}
