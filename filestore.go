package dashboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore is a JSONL file-backed Storage. Each record kind lives in its own
// file under the data directory, one JSON object per line, append-only on
// write. The format stays human readable and easy to merge or version.
type FileStore struct {
	dir string
}

const (
	projectsFile = "projects.jsonl"
	kpisFile     = "kpis.jsonl"
	budgetsFile  = "budgets.jsonl"
	risksFile    = "risks.jsonl"
)

// NewFileStore opens (or lazily creates) a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the store's data directory.
func (fsr *FileStore) Dir() string { return fsr.dir }

func decodeLines[T interface{ Validate() error }](r io.Reader, name string) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		bytes := scanner.Bytes()
		if len(bytes) == 0 {
			continue // Skip empty lines
		}
		var rec T
		if err := json.Unmarshal(bytes, &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: cannot parse line %q: %w", name, line, string(bytes), err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func readAll[T interface{ Validate() error }](dir, file string) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // an absent file is an empty collection
		}
		return nil, err
	}
	defer f.Close()
	return decodeLines[T](f, file)
}

func appendRecord(dir, file string, rec any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	return enc.Encode(rec)
}

// Projects implements Storage.
func (fsr *FileStore) Projects(f Filter) ([]Project, error) {
	all, err := readAll[Project](fsr.dir, projectsFile)
	if err != nil {
		return nil, err
	}
	var out []Project
	for _, p := range all {
		if f.ProjectID != "" && p.ID != f.ProjectID {
			continue
		}
		if f.Department != "" && p.Department != f.Department {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// KPIs implements Storage.
func (fsr *FileStore) KPIs(f Filter) ([]KPI, error) {
	all, err := readAll[KPI](fsr.dir, kpisFile)
	if err != nil {
		return nil, err
	}
	var out []KPI
	for _, k := range all {
		if f.ProjectID != "" && k.ProjectID != f.ProjectID {
			continue
		}
		if !f.Range.IsZero() && !f.Range.Contains(k.RecordedOn) {
			continue
		}
		out = append(out, k)
	}
	return out, nil
}

// Budgets implements Storage.
func (fsr *FileStore) Budgets(f Filter) ([]Budget, error) {
	all, err := readAll[Budget](fsr.dir, budgetsFile)
	if err != nil {
		return nil, err
	}
	var out []Budget
	for _, b := range all {
		if f.ProjectID != "" && b.ProjectID != f.ProjectID {
			continue
		}
		if !f.Range.IsZero() && !f.Range.Overlaps(b.Period) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Risks implements Storage.
func (fsr *FileStore) Risks(f Filter) ([]Risk, error) {
	all, err := readAll[Risk](fsr.dir, risksFile)
	if err != nil {
		return nil, err
	}
	var out []Risk
	for _, r := range all {
		if f.ProjectID != "" && r.ProjectID != f.ProjectID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// AddProject validates then appends a project record.
func (fsr *FileStore) AddProject(p Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return appendRecord(fsr.dir, projectsFile, p)
}

// AddKPI validates then appends a KPI record. The owning project must exist.
func (fsr *FileStore) AddKPI(k KPI) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if err := fsr.checkProject(k.ProjectID); err != nil {
		return err
	}
	return appendRecord(fsr.dir, kpisFile, k)
}

// AddBudget validates then appends a budget record. The owning project must exist.
func (fsr *FileStore) AddBudget(b Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := fsr.checkProject(b.ProjectID); err != nil {
		return err
	}
	return appendRecord(fsr.dir, budgetsFile, b)
}

// AddRisk validates then appends a risk record. The owning project must exist.
func (fsr *FileStore) AddRisk(r Risk) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := fsr.checkProject(r.ProjectID); err != nil {
		return err
	}
	return appendRecord(fsr.dir, risksFile, r)
}

func (fsr *FileStore) checkProject(id string) error {
	projects, err := fsr.Projects(Filter{ProjectID: id})
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return fmt.Errorf("unknown project %q", id)
	}
	return nil
}

var _ Storage = (*FileStore)(nil)
