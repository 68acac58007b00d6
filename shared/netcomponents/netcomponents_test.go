package netcomponents

import "testing"

func TestLerpNetPosition(t *testing.T) {
	from := NetPositionData{X: 0, Y: 100, Z: -10}
	to := NetPositionData{X: 10, Y: 50, Z: 10}

	tests := []struct {
		t    float64
		want NetPositionData
	}{
		{0, from},
		{1, to},
		{0.5, NetPositionData{X: 5, Y: 75, Z: 0}},
		{0.25, NetPositionData{X: 3, Y: 87, Z: -5}},
	}
	for _, tt := range tests {
		if got := LerpNetPosition(from, to, tt.t); *got != tt.want {
			t.Errorf("t=%v: got %+v, want %+v", tt.t, *got, tt.want)
		}
	}
}

func TestLerpNetVelocity(t *testing.T) {
	got := LerpNetVelocity(NetVelocityData{X: 256}, NetVelocityData{Y: 256}, 0.5)
	if *got != (NetVelocityData{X: 128, Y: 128}) {
		t.Errorf("got %+v", *got)
	}
}
