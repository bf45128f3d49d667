package dashboard

import "testing"

func TestRiskScores(t *testing.T) {
	tests := []struct {
		p, i       int
		score      int
		normalized float64
		level      string
	}{
		{1, 1, 1, 0, "low"},
		{2, 2, 4, 0.125, "low"},
		{1, 5, 5, 1.0 / 6, "medium"},
		{3, 3, 9, 1.0 / 3, "medium"},
		{2, 5, 10, 0.375, "high"},
		{3, 5, 15, 14.0 / 24, "critical"},
		{5, 5, 25, 1, "critical"},
	}
	for _, tt := range tests {
		r := Risk{Probability: tt.p, Impact: tt.i}
		if got := r.Score(); got != tt.score {
			t.Errorf("Score(%dx%d) = %d, want %d", tt.p, tt.i, got, tt.score)
		}
		if got := r.NormalizedScore(); got != tt.normalized {
			t.Errorf("NormalizedScore(%dx%d) = %g, want %g", tt.p, tt.i, got, tt.normalized)
		}
		if got := r.Level(); got != tt.level {
			t.Errorf("Level(%dx%d) = %q, want %q", tt.p, tt.i, got, tt.level)
		}
	}
}

func TestRiskIsOpen(t *testing.T) {
	for status, want := range map[RiskStatus]bool{
		RiskOpen:       true,
		RiskMitigating: true,
		RiskResolved:   false,
	} {
		r := Risk{Status: status}
		if got := r.IsOpen(); got != want {
			t.Errorf("IsOpen(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestRiskValidateBounds(t *testing.T) {
	valid := Risk{ID: "r", ProjectID: "p", Description: "d", Probability: 3, Impact: 3, Status: RiskOpen}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid risk rejected: %v", err)
	}
	for _, bad := range []Risk{
		{ID: "r", ProjectID: "p", Description: "d", Probability: 0, Impact: 3, Status: RiskOpen},
		{ID: "r", ProjectID: "p", Description: "d", Probability: 3, Impact: 6, Status: RiskOpen},
		{ID: "r", ProjectID: "p", Description: "", Probability: 3, Impact: 3, Status: RiskOpen},
		{ID: "r", ProjectID: "p", Description: "d", Probability: 3, Impact: 3, Status: "closed"},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Validate() accepted %+v", bad)
		}
	}
}
