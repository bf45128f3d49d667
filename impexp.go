package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// this file contains functions to import portfolio data from JSON exports of
// other tracking tools. Exports rarely agree on nesting or field names, so
// the importer locates records with jsonpath queries and maps fields
// tolerantly instead of requiring an exact schema.

// importQueries are the jsonpath queries probed, in order, to locate the
// project list in an arbitrary export.
var importQueries = []string{
	"$.projects",
	"$.data.projects",
	"$.portfolio.projects",
	"$.items",
}

// ImportProjects reads a JSON export from r and converts every project found
// into domain records. Nested kpis/budgets/risks lists are imported with
// their project. Records failing validation are skipped and reported in errs;
// one bad record never aborts the rest of the import.
func ImportProjects(r io.Reader) (snap *Snapshot, errs []error, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	var jprojects []any
	for _, q := range importQueries {
		jval, err := jsonpath.Get(q, jobj)
		if err != nil {
			continue
		}
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jprojects = jlist
			break
		}
	}
	if jprojects == nil {
		return nil, nil, fmt.Errorf("no project list found (tried %v)", importQueries)
	}

	snap = &Snapshot{}
	for i, jp := range jprojects {
		obj, ok := jp.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Errorf("project %d: not an object", i+1))
			continue
		}
		p, perrs := importProject(obj)
		if len(perrs) > 0 {
			errs = append(errs, perrs...)
			continue
		}
		snap.Projects = append(snap.Projects, p)

		for _, jk := range objList(obj, "kpis", "metrics") {
			k, err := importKPI(p.ID, jk)
			if err != nil {
				errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
				continue
			}
			snap.KPIs = append(snap.KPIs, k)
		}
		for _, jb := range objList(obj, "budgets", "costs") {
			b, err := importBudget(p.ID, jb)
			if err != nil {
				errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
				continue
			}
			snap.Budgets = append(snap.Budgets, b)
		}
		for _, jr := range objList(obj, "risks") {
			rk, err := importRisk(p.ID, jr)
			if err != nil {
				errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
				continue
			}
			snap.Risks = append(snap.Risks, rk)
		}
	}
	snap.normalize()
	return snap, errs, nil
}

// Import reads a JSON export and appends all valid records to the store.
func Import(store *FileStore, r io.Reader) (projects int, errs []error, err error) {
	snap, errs, err := ImportProjects(r)
	if err != nil {
		return 0, errs, err
	}
	for _, p := range snap.Projects {
		if err := store.AddProject(p); err != nil {
			return projects, errs, err
		}
		projects++
	}
	for _, k := range snap.KPIs {
		if err := store.AddKPI(k); err != nil {
			return projects, errs, err
		}
	}
	for _, b := range snap.Budgets {
		if err := store.AddBudget(b); err != nil {
			return projects, errs, err
		}
	}
	for _, rk := range snap.Risks {
		if err := store.AddRisk(rk); err != nil {
			return projects, errs, err
		}
	}
	return projects, errs, nil
}

func importProject(obj map[string]any) (Project, []error) {
	p := Project{
		ID:          str(obj, "id"),
		Name:        str(obj, "name", "title"),
		Description: str(obj, "description", "summary"),
		Owner:       str(obj, "owner", "lead"),
		Department:  str(obj, "department", "team"),
		ModelUsed:   str(obj, "modelUsed", "model_used", "model"),
		UseCase:     str(obj, "useCase", "use_case"),
	}
	if p.ID == "" {
		p.ID = NewID()
	}

	var errs []error
	status, err := ParseProjectStatus(strOr(obj, "planning", "status", "state"))
	if err != nil {
		errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
	}
	p.Status = status
	priority, err := ParsePriority(strOr(obj, "medium", "priority"))
	if err != nil {
		errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
	}
	p.Priority = priority

	if s := str(obj, "startDate", "start_date", "start"); s != "" {
		d, err := date.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
		}
		p.StartDate = d
	}
	if s := str(obj, "targetDate", "target_date", "due"); s != "" {
		d, err := date.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("project %q: %w", p.Name, err))
		} else {
			p.TargetDate = &d
		}
	}
	if len(errs) > 0 {
		return p, errs
	}
	if err := p.Validate(); err != nil {
		return p, []error{err}
	}
	return p, nil
}

func importKPI(projectID string, obj map[string]any) (KPI, error) {
	k := KPI{
		ID:        NewID(),
		ProjectID: projectID,
		Metric:    str(obj, "metric", "metric_name", "name"),
		Target:    num(obj, "target", "target_value"),
		Actual:    num(obj, "actual", "current_value", "value"),
		Unit:      str(obj, "unit"),
	}
	if s := str(obj, "recordedOn", "recorded_on", "date"); s != "" {
		d, err := date.Parse(s)
		if err != nil {
			return k, err
		}
		k.RecordedOn = d
	}
	return k, k.Validate()
}

func importBudget(projectID string, obj map[string]any) (Budget, error) {
	currency := strOr(obj, "USD", "currency")
	category, err := ParseBudgetCategory(strOr(obj, "other", "category"))
	if err != nil {
		return Budget{}, err
	}
	b := Budget{
		ID:        NewID(),
		ProjectID: projectID,
		Category:  category,
		Planned:   M(num(obj, "planned", "planned_amount"), currency),
		Actual:    M(num(obj, "actual", "actual_amount"), currency),
	}
	if s := str(obj, "period"); s != "" {
		rng, err := date.ParseRange(s)
		if err != nil {
			return b, err
		}
		b.Period = rng
	}
	return b, b.Validate()
}

func importRisk(projectID string, obj map[string]any) (Risk, error) {
	status, err := ParseRiskStatus(strOr(obj, "open", "status"))
	if err != nil {
		return Risk{}, err
	}
	r := Risk{
		ID:          NewID(),
		ProjectID:   projectID,
		Description: str(obj, "description", "risk_description", "risk"),
		Probability: int(num(obj, "probability", "likelihood")),
		Impact:      int(num(obj, "impact", "severity")),
		Mitigation:  str(obj, "mitigation"),
		Status:      status,
	}
	return r, r.Validate()
}

// str returns the first string value found under any of the keys.
func str(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k].(string); ok {
			return v
		}
	}
	return ""
}

// strOr is like str but falls back to a default value.
func strOr(obj map[string]any, def string, keys ...string) string {
	if v := str(obj, keys...); v != "" {
		return v
	}
	return def
}

// num returns the first numeric value found under any of the keys.
func num(obj map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := obj[k].(float64); ok {
			return v
		}
	}
	return 0
}

// objList returns the list of objects found under any of the keys.
func objList(obj map[string]any, keys ...string) []map[string]any {
	for _, k := range keys {
		jlist, ok := obj[k].([]any)
		if !ok {
			continue
		}
		var out []map[string]any
		for _, item := range jlist {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
