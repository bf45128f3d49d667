package dashboard

import (
	"strings"
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func TestParseProjectStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ProjectStatus
		wantErr bool
	}{
		{"production", Production, false},
		{"Production", Production, false},
		{" planning ", Planning, false},
		{"live", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProjectStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProjectStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProjectStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProjectValidate(t *testing.T) {
	start := date.New(2025, 1, 1)
	valid := Project{ID: "p", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: start}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}

	tests := []struct {
		name string
		mut  func(*Project)
		want string
	}{
		{"missing id", func(p *Project) { p.ID = "" }, "missing id"},
		{"missing name", func(p *Project) { p.Name = "" }, "missing name"},
		{"missing owner", func(p *Project) { p.Owner = "" }, "missing owner"},
		{"bad status", func(p *Project) { p.Status = "live" }, "status"},
		{"bad priority", func(p *Project) { p.Priority = "urgent" }, "priority"},
		{"missing start", func(p *Project) { p.StartDate = date.Date{} }, "start date"},
		{"target before start", func(p *Project) {
			target := date.New(2024, 12, 31)
			p.TargetDate = &target
		}, "before start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mut(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() accepted an invalid project")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestProjectIsActive(t *testing.T) {
	for status, want := range map[ProjectStatus]bool{
		Planning:    false,
		Development: true,
		Testing:     true,
		Production:  true,
		Retired:     false,
	} {
		p := Project{Status: status}
		if got := p.IsActive(); got != want {
			t.Errorf("IsActive(%s) = %v, want %v", status, got, want)
		}
	}
}
