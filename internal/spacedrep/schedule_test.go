package spacedrep

import "testing"

func TestMinIntervalLadder_Values(t *testing.T) {
	expected := []float64{10, 60, 360, 1440, 10080}
	if len(MinIntervalLadder) != len(expected) {
		t.Fatalf("expected %d ladder rungs, got %d", len(expected), len(MinIntervalLadder))
	}
	for i, v := range expected {
		if MinIntervalLadder[i] != v {
			t.Errorf("MinIntervalLadder[%d] = %v, want %v", i, MinIntervalLadder[i], v)
		}
	}
}

func TestMinIntervalFor(t *testing.T) {
	tests := []struct {
		repetitions int
		want        float64
		ok          bool
	}{
		{-1, 0, false},
		{0, 0, false},
		{1, 10, true},
		{2, 60, true},
		{3, 360, true},
		{4, 1440, true},
		{5, 10080, true},
		{6, 0, false},
	}
	for _, tt := range tests {
		got, ok := MinIntervalFor(tt.repetitions)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MinIntervalFor(%d) = (%v, %v), want (%v, %v)", tt.repetitions, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConstants(t *testing.T) {
	if DefaultEaseFactor != 2.5 {
		t.Errorf("DefaultEaseFactor = %v, want 2.5", DefaultEaseFactor)
	}
	if MinEaseFactor != 1.3 || MaxEaseFactor != 2.8 {
		t.Errorf("ease bounds = [%v, %v], want [1.3, 2.8]", MinEaseFactor, MaxEaseFactor)
	}
	if PassGrade != 3 {
		t.Errorf("PassGrade = %d, want 3", PassGrade)
	}
}
