package dashboard

// RiskMatrix is the 5x5 probability x impact grid of open risks.
// Cell [p-1][i-1] counts open risks with probability p and impact i.
type RiskMatrix struct {
	Cells [5][5]int
	// Open, Mitigating and Resolved count risks by mitigation status.
	Open, Mitigating, Resolved int
}

// ComputeRiskMatrix builds the risk matrix over a set of risks. Resolved
// risks are counted but excluded from the grid.
func ComputeRiskMatrix(risks []Risk) RiskMatrix {
	var m RiskMatrix
	for _, r := range risks {
		switch r.Status {
		case RiskOpen:
			m.Open++
		case RiskMitigating:
			m.Mitigating++
		case RiskResolved:
			m.Resolved++
			continue
		}
		m.Cells[r.Probability-1][r.Impact-1]++
	}
	return m
}

// Total returns the number of risks counted, resolved included.
func (m RiskMatrix) Total() int { return m.Open + m.Mitigating + m.Resolved }

// CriticalCount returns the number of unresolved risks at critical level
// (score >= 15). The grid already excludes resolved risks.
func (m RiskMatrix) CriticalCount() int {
	n := 0
	for p := 1; p <= 5; p++ {
		for i := 1; i <= 5; i++ {
			if p*i >= 15 {
				n += m.Cells[p-1][i-1]
			}
		}
	}
	return n
}
