package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestRealClock_After(t *testing.T) {
	clock := &RealClock{}

	start := time.Now()
	select {
	case fired := <-clock.After(5 * time.Millisecond):
		if fired.Sub(start) < 5*time.Millisecond {
			t.Errorf("After(5ms) fired after %v", fired.Sub(start))
		}
	case <-time.After(time.Second):
		t.Fatal("RealClock.After(5ms) did not fire within 1s")
	}
}

func TestFakeClock_After(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("fires immediately and advances time", func(t *testing.T) {
		clock := NewFakeClock(start)

		select {
		case fired := <-clock.After(600 * time.Millisecond):
			want := start.Add(600 * time.Millisecond)
			if !fired.Equal(want) {
				t.Errorf("After() sent %v, want %v", fired, want)
			}
			if !clock.Now().Equal(want) {
				t.Errorf("Now() after After() = %v, want %v", clock.Now(), want)
			}
		default:
			t.Fatal("FakeClock.After() channel should be ready")
		}
	})

	t.Run("non-positive durations do not move time", func(t *testing.T) {
		clock := NewFakeClock(start)

		<-clock.After(0)
		<-clock.After(-time.Second)

		if !clock.Now().Equal(start) {
			t.Errorf("Now() = %v, want %v", clock.Now(), start)
		}
	})

	t.Run("records waits in order", func(t *testing.T) {
		clock := NewFakeClock(start)

		<-clock.After(time.Second)
		<-clock.After(0)
		<-clock.After(2 * time.Second)

		waits := clock.Waits()
		want := []time.Duration{time.Second, 0, 2 * time.Second}
		if len(waits) != len(want) {
			t.Fatalf("Waits() = %v, want %v", waits, want)
		}
		for i := range want {
			if waits[i] != want[i] {
				t.Errorf("Waits()[%d] = %v, want %v", i, waits[i], want[i])
			}
		}
	})
}

func TestFakeClock_SetAndAdvance(t *testing.T) {
	initialTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(initialTime)

	tests := []struct {
		name    string
		advance []time.Duration
		want    time.Time
	}{
		{"single advance", []time.Duration{2 * time.Hour}, initialTime.Add(2 * time.Hour)},
		{"advances accumulate", []time.Duration{time.Minute, 30 * time.Second}, initialTime.Add(90 * time.Second)},
		{"negative advance", []time.Duration{-time.Hour}, initialTime.Add(-time.Hour)},
		{"zero advance", []time.Duration{0}, initialTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Set(initialTime)
			for _, d := range tt.advance {
				clock.Advance(d)
			}
			if !clock.Now().Equal(tt.want) {
				t.Errorf("Now() = %v, want %v", clock.Now(), tt.want)
			}
		})
	}
}
