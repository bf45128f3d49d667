package dashboard

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// seedFile is the shape of a YAML seed document: a list of projects, each
// carrying its own kpis, budgets and risks. Entry ids and back references
// are filled in during the seed, so a seed file never has to repeat them.
type seedFile struct {
	Projects []seedProject `yaml:"projects"`
}

type seedProject struct {
	Project `yaml:",inline"`
	KPIs    []KPI        `yaml:"kpis"`
	Budgets []seedBudget `yaml:"budgets"`
	Risks   []Risk       `yaml:"risks"`
}

// seedBudget reads amounts as plain numbers with a shared currency code,
// which keeps seed files simple to write by hand.
type seedBudget struct {
	ID       string     `yaml:"id"`
	Category string     `yaml:"category"`
	Planned  float64    `yaml:"planned"`
	Actual   float64    `yaml:"actual"`
	Currency string     `yaml:"currency"`
	Period   date.Range `yaml:"period"`
}

// Seed populates the store from a YAML document. Every record is validated
// before insertion; the first invalid record aborts the seed with an error
// naming it.
func Seed(store *FileStore, r io.Reader) (projects int, err error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, sp := range doc.Projects {
		p := sp.Project
		if p.ID == "" {
			p.ID = NewID()
		}
		// canonicalize the enums so hand-written casing never leaks into storage
		if p.Status == "" {
			p.Status = Planning
		} else if s, err := ParseProjectStatus(string(p.Status)); err == nil {
			p.Status = s
		}
		if p.Priority == "" {
			p.Priority = Medium
		} else if pr, err := ParsePriority(string(p.Priority)); err == nil {
			p.Priority = pr
		}
		if err := store.AddProject(p); err != nil {
			return projects, fmt.Errorf("seed project %d: %w", i+1, err)
		}
		projects++

		for _, k := range sp.KPIs {
			if k.ID == "" {
				k.ID = NewID()
			}
			k.ProjectID = p.ID
			if err := store.AddKPI(k); err != nil {
				return projects, fmt.Errorf("seed project %q: %w", p.Name, err)
			}
		}
		for _, sb := range sp.Budgets {
			currency := sb.Currency
			if currency == "" {
				currency = "USD"
			}
			if sb.Category == "" {
				sb.Category = string(OtherCosts)
			}
			category, err := ParseBudgetCategory(sb.Category)
			if err != nil {
				return projects, fmt.Errorf("seed project %q: %w", p.Name, err)
			}
			b := Budget{
				ID:        sb.ID,
				ProjectID: p.ID,
				Category:  category,
				Planned:   M(sb.Planned, currency),
				Actual:    M(sb.Actual, currency),
				Period:    sb.Period,
			}
			if b.ID == "" {
				b.ID = NewID()
			}
			if err := store.AddBudget(b); err != nil {
				return projects, fmt.Errorf("seed project %q: %w", p.Name, err)
			}
		}
		for _, rk := range sp.Risks {
			if rk.ID == "" {
				rk.ID = NewID()
			}
			rk.ProjectID = p.ID
			if rk.Status == "" {
				rk.Status = RiskOpen
			} else if s, err := ParseRiskStatus(string(rk.Status)); err == nil {
				rk.Status = s
			}
			if err := store.AddRisk(rk); err != nil {
				return projects, fmt.Errorf("seed project %q: %w", p.Name, err)
			}
		}
	}
	return projects, nil
}
