package dashboard

import (
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func series(actuals ...float64) []KPI {
	out := make([]KPI, 0, len(actuals))
	for i, a := range actuals {
		out = append(out, KPI{
			ID: NewID(), ProjectID: "p", Metric: "m", Target: 1, Actual: a,
			RecordedOn: date.New(2025, 1, 1).Add(i * 7),
		})
	}
	return out
}

func TestComputeTrend(t *testing.T) {
	cfg := DefaultConfig() // tolerance 0.05
	cfg.LowerIsBetter = map[string]bool{"latency": true}

	tests := []struct {
		name   string
		metric string
		series []KPI
		want   TrendDirection
	}{
		{"empty series", "m", nil, InsufficientData},
		{"single point", "m", series(100), InsufficientData},
		{"within tolerance", "m", series(100, 101), Stable},
		{"at tolerance boundary", "m", series(100, 105), Stable},
		{"rising", "m", series(100, 130), Improving},
		{"falling", "m", series(100, 70), Declining},
		{"rising latency declines", "latency", series(100, 130), Declining},
		{"falling latency improves", "latency", series(100, 70), Improving},
		{"middle points ignored", "m", series(100, 500, 90), Declining},
		{"zero base moving", "m", series(0, 10), Improving},
		{"zero base flat", "m", series(0, 0), Stable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTrend(cfg, "p", tt.metric, tt.series)
			if got.Direction != tt.want {
				t.Errorf("direction = %s, want %s", got.Direction, tt.want)
			}
			if got.Points != len(tt.series) {
				t.Errorf("points = %d, want %d", got.Points, len(tt.series))
			}
		})
	}
}

func TestComputeTrendsGroupsByProjectAndMetric(t *testing.T) {
	jan, feb := date.New(2025, 1, 1), date.New(2025, 2, 1)
	snap := &Snapshot{KPIs: []KPI{
		{ID: "k1", ProjectID: "p1", Metric: "accuracy", Target: 1, Actual: 0.8, RecordedOn: jan},
		{ID: "k2", ProjectID: "p1", Metric: "accuracy", Target: 1, Actual: 0.9, RecordedOn: feb},
		{ID: "k3", ProjectID: "p2", Metric: "accuracy", Target: 1, Actual: 0.8, RecordedOn: jan},
	}}

	trends := ComputeTrends(DefaultConfig(), snap)
	if len(trends) != 2 {
		t.Fatalf("got %d trends, want 2", len(trends))
	}
	if trends[0].Direction != Improving {
		t.Errorf("p1/accuracy = %s, want %s", trends[0].Direction, Improving)
	}
	if trends[1].Direction != InsufficientData {
		t.Errorf("p2/accuracy = %s, want %s", trends[1].Direction, InsufficientData)
	}
}
