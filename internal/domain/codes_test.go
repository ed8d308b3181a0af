package domain

import "testing"

func strPtr(s string) *string { return &s }

func TestCityCode(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "long name truncated", in: strPtr("Nouadhibou"), want: "NOU"},
		{name: "short name padded", in: strPtr("AB"), want: "ABX"},
		{name: "single letter", in: strPtr("z"), want: "ZXX"},
		{name: "exactly three", in: strPtr("Kif"), want: "KIF"},
		{name: "trimmed and upper-cased", in: strPtr("  rosso  "), want: "ROS"},
		{name: "nil", in: nil, want: "XXX"},
		{name: "empty", in: strPtr(""), want: "XXX"},
		{name: "blank", in: strPtr("   "), want: "XXX"},
		{name: "non ascii", in: strPtr("Atâr"), want: "ATÂ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CityCode(tc.in); got != tc.want {
				t.Errorf("CityCode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParcelCode(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		origin      *string
		destination *string
		want        string
	}{
		{name: "shared prefix collision", id: 1, origin: strPtr("Nouadhibou"), destination: strPtr("Nouakchott"), want: "CLS-NOU-NOU-0001"},
		{name: "unknown cities", id: 42, want: "CLS-XXX-XXX-0042"},
		{name: "wide id keeps width", id: 123456, origin: strPtr("Rosso"), destination: strPtr("AB"), want: "CLS-ROS-ABX-123456"},
		{name: "four digit id", id: 9999, origin: strPtr("Atar"), want: "CLS-ATA-XXX-9999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParcelCode(tc.id, tc.origin, tc.destination)
			if got != tc.want {
				t.Errorf("ParcelCode() = %q, want %q", got, tc.want)
			}
			if again := ParcelCode(tc.id, tc.origin, tc.destination); again != got {
				t.Errorf("ParcelCode() not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Errorf("NextID(nil) = %d, want 1", got)
	}
	if got := NextID([]int64{3, 9, 2}); got != 10 {
		t.Errorf("NextID([3 9 2]) = %d, want 10", got)
	}
}
