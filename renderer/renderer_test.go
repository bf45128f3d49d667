package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// fixtureSnapshot builds a small portfolio covering every record kind, in
// the canonical order a real snapshot would carry.
func fixtureSnapshot() *dashboard.Snapshot {
	jan := date.New(2025, 1, 1)
	jun := date.New(2025, 6, 30)
	return &dashboard.Snapshot{
		Projects: []dashboard.Project{
			{ID: "p1", Name: "Churn Model", Status: dashboard.Production, Priority: dashboard.Critical,
				Owner: "Ada", Department: "Data Science", StartDate: jan},
			{ID: "p2", Name: "Support Bot", Status: dashboard.Development, Priority: dashboard.Medium,
				Owner: "Lin", Department: "Support", StartDate: jan},
		},
		KPIs: []dashboard.KPI{
			{ID: "k1", ProjectID: "p1", Metric: "accuracy", Target: 0.90, Actual: 0.92, Unit: "ratio", RecordedOn: jan},
			{ID: "k2", ProjectID: "p1", Metric: "accuracy", Target: 0.90, Actual: 0.95, Unit: "ratio", RecordedOn: jun},
		},
		Budgets: []dashboard.Budget{
			{ID: "b1", ProjectID: "p1", Category: dashboard.Infrastructure,
				Planned: dashboard.M(10000, "USD"), Actual: dashboard.M(9000, "USD"),
				Period: date.Range{From: jan, To: jun}},
		},
		Risks: []dashboard.Risk{
			{ID: "r1", ProjectID: "p2", Description: "Model drift on new intents",
				Probability: 4, Impact: 4, Status: dashboard.RiskOpen, Mitigation: "Weekly re-evaluation"},
		},
	}
}

func fixtureDocuments(t *testing.T) map[string]*Document {
	t.Helper()
	snap := fixtureSnapshot()
	cfg := dashboard.DefaultConfig()
	on := date.New(2025, 7, 1)
	return map[string]*Document{
		"overview": Overview(dashboard.NewOverviewReport(cfg, snap, on)),
		"budget":   BudgetVariance(dashboard.NewBudgetVarianceReport(snap, on)),
		"risks":    RiskRegister(dashboard.NewRiskRegisterReport(snap, on)),
		"summary":  ExecutiveSummary(dashboard.NewExecutiveSummaryReport(cfg, snap, on)),
	}
}

func TestMarkdownIsValid(t *testing.T) {
	// Every composed document must parse as well-formed markdown with the
	// document title as its single level-1 heading.
	for name, doc := range fixtureDocuments(t) {
		t.Run(name, func(t *testing.T) {
			out := []byte(Markdown(doc))
			root := goldmark.DefaultParser().Parse(text.NewReader(out))

			var h1 []string
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					var b strings.Builder
					for i := 0; i < h.Lines().Len(); i++ {
						seg := h.Lines().At(i)
						b.Write(seg.Value(out))
					}
					h1 = append(h1, b.String())
				}
				return ast.WalkContinue, nil
			})
			if len(h1) != 1 {
				t.Fatalf("got %d level-1 headings, want 1: %v", len(h1), h1)
			}
			if h1[0] != doc.Title {
				t.Errorf("h1 = %q, want %q", h1[0], doc.Title)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	// Composing and rendering twice from the same snapshot must be
	// byte-identical, in both formats.
	first := fixtureDocuments(t)
	second := fixtureDocuments(t)
	for name, doc := range first {
		t.Run(name, func(t *testing.T) {
			if got, want := Markdown(second[name]), Markdown(doc); got != want {
				t.Errorf("markdown output differs between runs")
			}
			if got, want := HTML(second[name]), HTML(doc); got != want {
				t.Errorf("html output differs between runs")
			}
		})
	}
}

func TestOverviewContent(t *testing.T) {
	out := Markdown(fixtureDocuments(t)["overview"])
	for _, want := range []string{
		"# AI Portfolio Overview",
		"Churn Model",
		"[PROD]",
		"Total projects: 2",
		"Open risks: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("overview markdown missing %q\n%s", want, out)
		}
	}
}

func TestBudgetVarianceContent(t *testing.T) {
	out := Markdown(fixtureDocuments(t)["budget"])
	if !strings.Contains(out, "on budget") {
		t.Errorf("budget markdown missing status cell\n%s", out)
	}
	if !strings.Contains(out, "Infrastructure") {
		t.Errorf("budget markdown missing category row\n%s", out)
	}
}

func TestRiskMatrixPlacement(t *testing.T) {
	snap := fixtureSnapshot()
	m := dashboard.ComputeRiskMatrix(snap.Risks)
	tbl := matrixTable(m)

	// Probability rows are rendered descending: p=4 is the second row,
	// i=4 the fifth cell after the row label.
	if got := tbl.Rows[1][4]; got != "1" {
		t.Errorf("cell (p=4,i=4) = %q, want \"1\"", got)
	}
	if got := tbl.Rows[0][0]; got != "5" {
		t.Errorf("first row label = %q, want \"5\"", got)
	}
}

func TestHTMLEscapesContent(t *testing.T) {
	d := &Document{
		Title: "Report <script>",
		Sections: []Section{
			section("A & B", Paragraph("1 < 2")),
		},
	}
	out := HTML(d)
	if strings.Contains(out, "<script>") {
		t.Errorf("html output contains unescaped title: %s", out)
	}
	for _, want := range []string{"&lt;script&gt;", "A &amp; B", "1 &lt; 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}
