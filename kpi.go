package dashboard

import (
	"fmt"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// KPI is a single measurement of a project metric on a given date. Successive
// entries for the same (project, metric) pair form the metric's time series,
// ordered by RecordedOn ascending.
type KPI struct {
	ID         string    `json:"id" yaml:"id"`
	ProjectID  string    `json:"projectId" yaml:"project_id"`
	Metric     string    `json:"metric" yaml:"metric"`
	Target     float64   `json:"target" yaml:"target"`
	Actual     float64   `json:"actual" yaml:"actual"`
	Unit       string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	RecordedOn date.Date `json:"recordedOn" yaml:"recorded_on"`
}

// Validate checks the KPI invariants.
func (k KPI) Validate() error {
	if k.ID == "" {
		return fmt.Errorf("kpi: missing id")
	}
	if k.ProjectID == "" {
		return fmt.Errorf("kpi %s: missing project id", k.ID)
	}
	if k.Metric == "" {
		return fmt.Errorf("kpi %s: missing metric name", k.ID)
	}
	if k.RecordedOn.IsZero() {
		return fmt.Errorf("kpi %s (%s): missing recorded date", k.ID, k.Metric)
	}
	return nil
}

// AchievementRate returns Actual/Target, undefined when Target is zero.
func (k KPI) AchievementRate() Ratio {
	if k.Target == 0 {
		return Ratio{}
	}
	return DefinedRatio(k.Actual / k.Target)
}

// IsOnTarget reports whether the measurement meets or exceeds its target.
// A lower-is-better metric meets its target when Actual <= Target.
func (k KPI) IsOnTarget(lowerIsBetter bool) bool {
	if lowerIsBetter {
		return k.Actual <= k.Target
	}
	return k.Actual >= k.Target
}
