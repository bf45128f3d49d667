package dashboard

import (
	"fmt"
	"strings"
)

// RiskStatus is the mitigation status of a risk entry.
type RiskStatus string

const (
	RiskOpen       RiskStatus = "open"
	RiskMitigating RiskStatus = "mitigating"
	RiskResolved   RiskStatus = "resolved"
)

// ParseRiskStatus parses a risk status name.
func ParseRiskStatus(s string) (RiskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return RiskOpen, nil
	case "mitigating":
		return RiskMitigating, nil
	case "resolved":
		return RiskResolved, nil
	default:
		return "", fmt.Errorf("unknown risk status %q", s)
	}
}

// Risk is a risk register entry for one project. Probability and impact are
// ordinal scores on a 1-5 scale, so the combined score lives on the fixed
// 1-25 scale.
type Risk struct {
	ID          string     `json:"id" yaml:"id"`
	ProjectID   string     `json:"projectId" yaml:"project_id"`
	Description string     `json:"description" yaml:"description"`
	Probability int        `json:"probability" yaml:"probability"`
	Impact      int        `json:"impact" yaml:"impact"`
	Mitigation  string     `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	Status      RiskStatus `json:"status" yaml:"status"`
}

// Validate checks the risk invariants.
func (r Risk) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("risk: missing id")
	}
	if r.ProjectID == "" {
		return fmt.Errorf("risk %s: missing project id", r.ID)
	}
	if r.Description == "" {
		return fmt.Errorf("risk %s: missing description", r.ID)
	}
	if r.Probability < 1 || r.Probability > 5 {
		return fmt.Errorf("risk %s: probability %d out of range 1-5", r.ID, r.Probability)
	}
	if r.Impact < 1 || r.Impact > 5 {
		return fmt.Errorf("risk %s: impact %d out of range 1-5", r.ID, r.Impact)
	}
	if _, err := ParseRiskStatus(string(r.Status)); err != nil {
		return fmt.Errorf("risk %s: %w", r.ID, err)
	}
	return nil
}

// Score returns probability x impact on the 1-25 scale.
func (r Risk) Score() int { return r.Probability * r.Impact }

// NormalizedScore maps the 1-25 score onto [0, 1]: the mildest possible risk
// (1x1) maps to 0 and the maximum (5x5) maps to 1.
func (r Risk) NormalizedScore() float64 { return float64(r.Score()-1) / 24 }

// Level buckets the score into a qualitative level.
func (r Risk) Level() string {
	switch s := r.Score(); {
	case s >= 15:
		return "critical"
	case s >= 10:
		return "high"
	case s >= 5:
		return "medium"
	default:
		return "low"
	}
}

// IsOpen reports whether the risk still counts against the portfolio
// (anything not resolved).
func (r Risk) IsOpen() bool { return r.Status != RiskResolved }
