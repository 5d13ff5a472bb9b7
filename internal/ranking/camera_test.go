package ranking

import "testing"

func TestMegapixels(t *testing.T) {
	tests := []struct {
		camera string
		want   int
		parses bool
	}{
		{camera: "200MP f/1.7 OIS", want: 200, parses: true},
		{camera: "48MP f/1.78", want: 48, parses: true},
		{camera: "50MP", want: 50, parses: true},
		{camera: "10.5MP", want: 10, parses: true},
		{camera: " 64MP wide", want: 64, parses: true},
		{camera: "Triple Camera System", want: 0, parses: false},
		{camera: "f/1.7 200MP", want: 0, parses: false},
		{camera: "", want: 0, parses: false},
	}
	for _, tc := range tests {
		t.Run(tc.camera, func(t *testing.T) {
			if got := Megapixels(tc.camera); got != tc.want {
				t.Fatalf("Megapixels(%q) = %d, want %d", tc.camera, got, tc.want)
			}
			if got := ParsesMegapixels(tc.camera); got != tc.parses {
				t.Fatalf("ParsesMegapixels(%q) = %v, want %v", tc.camera, got, tc.parses)
			}
		})
	}
}
