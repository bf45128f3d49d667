package renderer

import (
	"fmt"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

// RiskRegister composes the risk register report into a document.
func RiskRegister(r *dashboard.RiskRegisterReport) *Document {
	d := &Document{
		Title: "Risk Register",
		Meta:  []string{fmt.Sprintf("Generated: %s", r.GeneratedOn)},
	}

	d.Sections = append(d.Sections, section("Status", Bullets{
		fmt.Sprintf("Open: %d", r.Matrix.Open),
		fmt.Sprintf("Mitigating: %d", r.Matrix.Mitigating),
		fmt.Sprintf("Resolved: %d", r.Matrix.Resolved),
	}))

	d.Sections = append(d.Sections, section("Probability x Impact", matrixTable(r.Matrix)))

	register := Table{Header: []string{"Project", "Risk", "P", "I", "Score", "Level", "Status", "Mitigation"}}
	for _, e := range r.Register {
		register.Rows = append(register.Rows, []string{
			e.ProjectName,
			truncate(e.Description, 60),
			fmt.Sprintf("%d", e.Probability),
			fmt.Sprintf("%d", e.Impact),
			fmt.Sprintf("%d", e.Score()),
			title(e.Level()),
			title(string(e.Status)),
			truncate(e.Mitigation, 60),
		})
	}
	d.Sections = append(d.Sections, section("Register", register))
	return d
}

// matrixTable renders the 5x5 grid with probability rows descending, the way
// a classic risk matrix is drawn.
func matrixTable(m dashboard.RiskMatrix) Table {
	t := Table{Header: []string{"P \\ I", "1", "2", "3", "4", "5"}}
	for p := 5; p >= 1; p-- {
		row := []string{fmt.Sprintf("%d", p)}
		for i := 1; i <= 5; i++ {
			n := m.Cells[p-1][i-1]
			if n == 0 {
				row = append(row, ".")
			} else {
				row = append(row, fmt.Sprintf("%d", n))
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
