package cities

import (
	"encoding/json"
	"testing"
)

func TestCoord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		fails bool
	}{
		{"number", `38.72`, 38.72, false},
		{"negative number", `-9.14`, -9.14, false},
		{"numeric string", `"38.72"`, 38.72, false},
		{"padded numeric string", `" -9.14 "`, -9.14, false},
		{"integer", `45`, 45, false},
		{"word", `"north"`, 0, true},
		{"empty string", `""`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coord
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.fails {
				if err == nil {
					t.Errorf("expected error for %s, got %v", tt.input, float64(c))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(c) != tt.want {
				t.Errorf("expected %v, got %v", tt.want, float64(c))
			}
		})
	}
}

// Absent coordinates must bind as nil, not zero, so validation can tell a
// missing lng from a lng of 0.
func TestPositionInput_AbsentVsZero(t *testing.T) {
	var latOnly PositionInput
	if err := json.Unmarshal([]byte(`{"lat":38.72}`), &latOnly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latOnly.Lat == nil || latOnly.Lng != nil {
		t.Errorf("expected lat set and lng nil, got %+v", latOnly)
	}

	var zeroes PositionInput
	if err := json.Unmarshal([]byte(`{"lat":0,"lng":0}`), &zeroes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zeroes.Lat == nil || zeroes.Lng == nil {
		t.Error("explicit zero coordinates must bind as present")
	}
}
