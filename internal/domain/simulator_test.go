package domain

import "testing"

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		angle       float64
		speed       float64
		elapsed     float64
		floor       float64
		wantAngle   float64
		wantClamped bool
	}{
		{
			name:      "FullSecondAtDefaultSpeed",
			angle:     180, speed: 30, elapsed: 1, floor: 45,
			wantAngle: 150,
		},
		{
			name:      "ThreeSecondsHitsNinety",
			angle:     180, speed: 30, elapsed: 3, floor: 45,
			wantAngle: 90,
		},
		{
			name:      "ZeroElapsedIsNoop",
			angle:     123.4, speed: 30, elapsed: 0, floor: 45,
			wantAngle: 123.4,
		},
		{
			name:        "OvershootClampsToFloorExactly",
			angle:       50, speed: 30, elapsed: 1, floor: 45,
			wantAngle:   45,
			wantClamped: true,
		},
		{
			name:        "LandingExactlyOnFloorClamps",
			angle:       75, speed: 30, elapsed: 1, floor: 45,
			wantAngle:   45,
			wantClamped: true,
		},
		{
			name:      "LowFloorVariant",
			angle:     40, speed: 30, elapsed: 0.1, floor: 30,
			wantAngle: 37,
		},
		{
			name:      "NegativeElapsedTreatedAsZero",
			angle:     90, speed: 30, elapsed: -5, floor: 45,
			wantAngle: 90,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got, clamped := Advance(test.angle, test.speed, test.elapsed, test.floor)
			if got != test.wantAngle {
				t.Fatalf("Advance() angle = %v, want %v", got, test.wantAngle)
			}
			if clamped != test.wantClamped {
				t.Fatalf("Advance() clamped = %v, want %v", clamped, test.wantClamped)
			}
		})
	}
}

func TestAdvanceMonotonicNeverBelowFloor(t *testing.T) {
	const floor = 30.0
	angle := 180.0
	for i := 0; i < 1000; i++ {
		next, _ := Advance(angle, 30, 0.016, floor)
		if next > angle {
			t.Fatalf("angle increased from %v to %v", angle, next)
		}
		if next < floor {
			t.Fatalf("angle %v fell below floor %v", next, floor)
		}
		angle = next
	}
	if angle != floor {
		t.Fatalf("angle = %v after long hold, want floor %v", angle, floor)
	}
}
