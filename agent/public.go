package agent

import (
	"context"
	"fmt"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
	"github.com/onurcandonmezer/ai-project-dashboard/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Source provides the portfolio snapshot the analyst works on; the caller
// wires it to its store so every answer reflects the data on disk.
type Source func() (*dashboard.Snapshot, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user manages a portfolio of AI projects. He is here primarily to understand how his
			projects are doing: health, budgets, risks and KPI trends.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Quote concrete figures from the expert's reports, never invent numbers.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert in charge of the user's project portfolio.
// It answers from the deterministic reports computed over the snapshot.
func NewAnalyst(cfg dashboard.Config, src Source) *Expert {
	lib := []Function{
		reportTool("ExecutiveSummary",
			"The executive summary of the portfolio: health score with per-project breakdown, status counts, budget totals, KPI achievement and trends, the risk matrix, and recommendations.",
			cfg, src, func(c dashboard.Config, s *dashboard.Snapshot, on date.Date) *renderer.Document {
				return renderer.ExecutiveSummary(dashboard.NewExecutiveSummaryReport(c, s, on))
			}),
		reportTool("PortfolioOverview",
			"The portfolio overview: the full project listing with statuses, priorities and owners, plus the health breakdown and quick stats.",
			cfg, src, func(c dashboard.Config, s *dashboard.Snapshot, on date.Date) *renderer.Document {
				return renderer.Overview(dashboard.NewOverviewReport(c, s, on))
			}),
		reportTool("BudgetVariance",
			"The budget variance analysis: planned versus actual spending, per project and per category, with over-budget flags.",
			cfg, src, func(c dashboard.Config, s *dashboard.Snapshot, on date.Date) *renderer.Document {
				return renderer.BudgetVariance(dashboard.NewBudgetVarianceReport(s, on))
			}),
		reportTool("RiskRegister",
			"The risk register: the probability x impact matrix and the full list of risks sorted by score, with mitigation plans.",
			cfg, src, func(c dashboard.Config, s *dashboard.Snapshot, on date.Date) *renderer.Document {
				return renderer.RiskRegister(dashboard.NewRiskRegisterReport(s, on))
			}),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the portfolio Analyst. He has access to the user's AI project portfolio:
		projects, KPIs, budgets and risks. Ask the Analyst whenever you need figures about the
		portfolio's health, spending, risks or metric trends.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's AI project portfolio.
				You know how to use the Tools to fetch the computed reports about the portfolio.
				You are part of a team of experts, yours is everything about the user's projects.

				Always fetch the relevant report before answering, and answer with the figures
				it contains. Reports are markdown, quote their tables when useful.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewResearcher returns the expert grounding answers in public information,
// for questions about vendors, models or industry practice.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher on the AI industry, well aware of vendors,
		model releases, pricing and engineering practice. Ask the Researcher whenever you need
		recent or grounding information from outside the portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher on the AI industry. You leverage Google Search to ground
			your assertions. You can get the latest news too, and you know how to relate them to
			the user's portfolio of AI projects.
				`}}},
		},
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// reportTool wraps one report composer as a no-argument function tool
// returning the rendered markdown.
func reportTool(name, description string, cfg dashboard.Config, src Source,
	compose func(dashboard.Config, *dashboard.Snapshot, date.Date) *renderer.Document) *Func {

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report as a markdown document.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name}
			snap, err := src()
			if err != nil {
				fresp.Response = map[string]any{"error": fmt.Sprintf("could not load portfolio: %v", err)}
				return fresp
			}
			doc := compose(cfg, snap, date.Today())
			fresp.Response = map[string]any{"output": renderer.Markdown(doc)}
			return fresp
		},
	}
}
