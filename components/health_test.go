package components

import "testing"

func TestTakeDamageSequence(t *testing.T) {
	h := HealthData{Current: 100, Max: 100}

	steps := []struct {
		want       int
		wantKilled bool
	}{
		{65, false},
		{30, false},
		{0, true},
		{0, false},
	}
	for i, s := range steps {
		killed := h.TakeDamage(35)
		if h.Current != s.want || killed != s.wantKilled {
			t.Fatalf("hit %d: health = %d killed = %v, want %d %v", i+1, h.Current, killed, s.want, s.wantKilled)
		}
	}
	if !h.IsDead() {
		t.Error("expected dead after the third hit")
	}
}

func TestHealthPercent(t *testing.T) {
	tests := []struct {
		name string
		h    HealthData
		want float64
	}{
		{"full", HealthData{Current: 100, Max: 100}, 1},
		{"half", HealthData{Current: 50, Max: 100}, 0.5},
		{"overheal clamps", HealthData{Current: 150, Max: 100}, 1},
		{"negative clamps", HealthData{Current: -5, Max: 100}, 0},
		{"no max", HealthData{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Percent(); got != tt.want {
				t.Errorf("Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHealingClampsToMax(t *testing.T) {
	h := HealthData{Current: 90, Max: 100}
	h.TakeDamage(-50)
	if h.Current != 100 {
		t.Errorf("health = %d, want clamped to 100", h.Current)
	}
}
