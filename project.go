package dashboard

import (
	"fmt"
	"strings"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// ProjectStatus is the lifecycle status of an AI project.
type ProjectStatus string

const (
	Planning    ProjectStatus = "planning"
	Development ProjectStatus = "development"
	Testing     ProjectStatus = "testing"
	Production  ProjectStatus = "production"
	Retired     ProjectStatus = "retired"
)

// ProjectStatuses lists all statuses in lifecycle order.
var ProjectStatuses = []ProjectStatus{Planning, Development, Testing, Production, Retired}

// ParseProjectStatus parses a status name.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "planning":
		return Planning, nil
	case "development":
		return Development, nil
	case "testing":
		return Testing, nil
	case "production":
		return Production, nil
	case "retired":
		return Retired, nil
	default:
		return "", fmt.Errorf("unknown project status %q", s)
	}
}

// Priority is the priority level of an AI project.
type Priority string

const (
	Low      Priority = "low"
	Medium   Priority = "medium"
	High     Priority = "high"
	Critical Priority = "critical"
)

// ParsePriority parses a priority name.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "critical":
		return Critical, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// rank orders priorities from most to least urgent for stable listings.
func (p Priority) rank() int {
	switch p {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// Project represents a single AI initiative in the portfolio.
type Project struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Status         ProjectStatus `json:"status" yaml:"status"`
	Priority       Priority      `json:"priority" yaml:"priority"`
	Owner          string        `json:"owner" yaml:"owner"`
	Department     string        `json:"department,omitempty" yaml:"department,omitempty"`
	ModelUsed      string        `json:"modelUsed,omitempty" yaml:"model_used,omitempty"`
	UseCase        string        `json:"useCase,omitempty" yaml:"use_case,omitempty"`
	StartDate      date.Date     `json:"startDate" yaml:"start_date"`
	TargetDate     *date.Date    `json:"targetDate,omitempty" yaml:"target_date,omitempty"`
	CompletionDate *date.Date    `json:"completionDate,omitempty" yaml:"completion_date,omitempty"`
}

// Validate checks the project invariants. It is called on construction and
// on decode; the analytics engine assumes records that pass it.
func (p Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project: missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("project %s: missing name", p.ID)
	}
	if p.Owner == "" {
		return fmt.Errorf("project %q: missing owner", p.Name)
	}
	if _, err := ParseProjectStatus(string(p.Status)); err != nil {
		return fmt.Errorf("project %q: %w", p.Name, err)
	}
	if _, err := ParsePriority(string(p.Priority)); err != nil {
		return fmt.Errorf("project %q: %w", p.Name, err)
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("project %q: missing start date", p.Name)
	}
	if p.TargetDate != nil && p.TargetDate.Before(p.StartDate) {
		return fmt.Errorf("project %q: target date %s before start date %s", p.Name, p.TargetDate, p.StartDate)
	}
	return nil
}

// IsActive reports whether the project is in an active lifecycle stage.
func (p Project) IsActive() bool {
	return p.Status == Development || p.Status == Testing || p.Status == Production
}
