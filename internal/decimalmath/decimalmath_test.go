package decimalmath

import "testing"

func TestCountDecimalPlaces(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{3.9, 1},
		{0.1, 1},
		{9.9, 1},
		{7, 0},
		{4.0, 0},
		{0.25, 2},
		{12.125, 3},
		{40, 0},
	}
	for _, tt := range tests {
		if got := CountDecimalPlaces(tt.in); got != tt.want {
			t.Errorf("CountDecimalPlaces(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStripDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{3.9, 39},
		{7, 7},
		{0.5, 5},
		{0.1, 1},
		{9.9, 99},
		{1.1, 11},
		{2.3, 23},
		{0.07, 7},
	}
	for _, tt := range tests {
		if got := StripDecimal(tt.in); got != tt.want {
			t.Errorf("StripDecimal(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStripDecimal_AllOneDigitValues(t *testing.T) {
	// Every value the generator can produce must strip without drift.
	for tenths := 1; tenths <= 99; tenths++ {
		x := float64(tenths) / 10
		want := tenths
		if tenths%10 == 0 {
			want = tenths / 10
		}
		if got := StripDecimal(x); got != want {
			t.Errorf("StripDecimal(%v) = %d, want %d", x, got, want)
		}
	}
}

func TestFormatProduct(t *testing.T) {
	tests := []struct {
		a, b float64
		want string
	}{
		{3.9, 7, "27.3"},
		{3.9, 5, "19.5"},
		{2.5, 4, "10"},
		{0.5, 2, "1"},
		{0.1, 3, "0.3"},
		{1.5, 3, "4.5"},
		{4, 6, "24"},
		{0.3, 3, "0.9"},
	}
	for _, tt := range tests {
		if got := FormatProduct(tt.a, tt.b); got != tt.want {
			t.Errorf("FormatProduct(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMultiplyIsExact(t *testing.T) {
	// 3.9 * 7 in float64 is 27.299999999999997.
	if got := Multiply(3.9, 7).String(); got != "27.3" {
		t.Errorf("Multiply(3.9, 7) = %s, want 27.3", got)
	}
}

func TestPlaceDecimal(t *testing.T) {
	tests := []struct {
		product, hops int
		want          string
	}{
		{195, 0, "195"},
		{195, 1, "19.5"},
		{195, 2, "1.95"},
		{195, 3, "0.195"},
		{195, 4, "0.0195"},
		{5, 1, "0.5"},
		{5, 2, "0.05"},
		{15, 1, "1.5"},
	}
	for _, tt := range tests {
		if got := PlaceDecimal(tt.product, tt.hops); got != tt.want {
			t.Errorf("PlaceDecimal(%d, %d) = %q, want %q", tt.product, tt.hops, got, tt.want)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{7, 1},
		{195, 3},
		{-12, 2},
	}
	for _, tt := range tests {
		if got := Digits(tt.in); got != tt.want {
			t.Errorf("Digits(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
