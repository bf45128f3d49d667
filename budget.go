package dashboard

import (
	"fmt"
	"strings"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// BudgetCategory is a budget allocation category.
type BudgetCategory string

const (
	Compute        BudgetCategory = "compute"
	APICalls       BudgetCategory = "api_calls"
	Personnel      BudgetCategory = "personnel"
	Infrastructure BudgetCategory = "infrastructure"
	OtherCosts     BudgetCategory = "other"
)

// ParseBudgetCategory parses a budget category name.
func ParseBudgetCategory(s string) (BudgetCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compute":
		return Compute, nil
	case "api_calls", "api-calls", "api":
		return APICalls, nil
	case "personnel":
		return Personnel, nil
	case "infrastructure":
		return Infrastructure, nil
	case "other":
		return OtherCosts, nil
	default:
		return "", fmt.Errorf("unknown budget category %q", s)
	}
}

// Budget is a planned vs actual spending line for one project, category and period.
type Budget struct {
	ID        string         `json:"id" yaml:"id"`
	ProjectID string         `json:"projectId" yaml:"project_id"`
	Category  BudgetCategory `json:"category" yaml:"category"`
	Planned   Money          `json:"planned" yaml:"planned"`
	Actual    Money          `json:"actual" yaml:"actual"`
	Period    date.Range     `json:"period" yaml:"period"`
}

// Validate checks the budget invariants: non-negative amounts in a single currency.
func (b Budget) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("budget: missing id")
	}
	if b.ProjectID == "" {
		return fmt.Errorf("budget %s: missing project id", b.ID)
	}
	if _, err := ParseBudgetCategory(string(b.Category)); err != nil {
		return fmt.Errorf("budget %s: %w", b.ID, err)
	}
	if b.Planned.IsNegative() {
		return fmt.Errorf("budget %s: negative planned amount %s", b.ID, b.Planned)
	}
	if b.Actual.IsNegative() {
		return fmt.Errorf("budget %s: negative actual amount %s", b.ID, b.Actual)
	}
	if !b.Planned.SameCurrency(b.Actual) {
		return fmt.Errorf("budget %s: mixed currencies %s and %s", b.ID, b.Planned.Currency(), b.Actual.Currency())
	}
	if b.Period.IsZero() {
		return fmt.Errorf("budget %s: missing period", b.ID)
	}
	return nil
}

// Variance returns Actual - Planned. Positive means over budget.
func (b Budget) Variance() Money { return b.Actual.Sub(b.Planned) }

// VariancePercent returns the variance as a ratio of the planned amount,
// undefined when nothing was planned.
func (b Budget) VariancePercent() Ratio { return b.Variance().Div(b.Planned) }

// IsOverBudget reports whether actual spending exceeds the plan.
func (b Budget) IsOverBudget() bool { return b.Actual.GreaterThan(b.Planned) }
