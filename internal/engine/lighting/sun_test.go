package lighting

import (
	"math"
	"testing"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		lon, lat float32
		want     [3]float32
	}{
		{0, 0, [3]float32{0, 0, 1}},
		{90, 0, [3]float32{1, 0, 0}},
		{0, 90, [3]float32{0, 1, 0}},
		{180, 0, [3]float32{0, 0, -1}},
	}

	for _, tt := range tests {
		got := SunDirection(tt.lon, tt.lat)
		for i := range got {
			if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
				break
			}
		}
	}
}

func TestSunDirectionUnit(t *testing.T) {
	for lon := float32(0); lon < 360; lon += 37 {
		for lat := float32(-90); lat <= 90; lat += 23 {
			d := SunDirection(lon, lat)
			l := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
			if math.Abs(l-1) > 1e-5 {
				t.Fatalf("SunDirection(%v, %v) length %v", lon, lat, l)
			}
		}
	}
}

func TestNewLightAmbient(t *testing.T) {
	l := NewLight(0, 45, [3]float32{1, 1, 1}, [3]float32{1, 0.5, 0}, 0.2)
	want := [3]float32{0.2, 0.1, 0}
	for i := range want {
		if math.Abs(float64(l.Ambient[i]-want[i])) > 1e-6 {
			t.Errorf("Ambient = %v, want %v", l.Ambient, want)
		}
	}
	if l.Direction[1] <= 0 {
		t.Errorf("sun at 45 degrees should be above the horizon: %v", l.Direction)
	}
}
