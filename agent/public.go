package agent

import (
	"context"
	"fmt"

	"github.com/sgc/portfolio"
	"github.com/sgc/portfolio/docs"
	"github.com/sgc/portfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

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
			They are at your service and keep context of your previous questions.

			The user is here primarily to understand how their portfolio is doing: its value,
			the weight and returns of each holding, and how it compares with its benchmark.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader creates an expert grounded with Google Search, for news about the holdings.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader, aware of the financial products, markets and
		the latest news about companies and funds. Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading, you can search and find about anything related to
			financial institutions, companies, markets and funds. You leverage Google Search to
			ground your assertions. You know how to relate the latest news to the user's request.
			`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the dashboard figures of dash.
func NewAnalyst(dash *portfolio.Dashboard) *Expert {
	lib := Tools(dash)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. They compute the figures of the user's portfolio from their ledger:
		current value, weights, trailing returns of each holding, and performance against the benchmark.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst in charge of the user's portfolio.
			Use the Tools to get the figures, never make them up:
			  - Overview: latest value of each holding from real-time quotes
			  - Snapshot: weights and trailing returns of each holding
			  - Performance: value of the portfolio since inception against the benchmark
			Returns are price returns and mention it when relevant:
			` + mustTopic("returns")}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func mustTopic(topic string) string {
	doc, err := docs.GetTopic(topic)
	if err != nil {
		panic(err)
	}
	return doc
}

// Tools returns the functions computing the dashboard figures of dash as markdown.
func Tools(dash *portfolio.Dashboard) []Function {
	dateParam := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date": {
				Type: genai.TypeString,
				Description: `The date on which to compute the figures. The dashboard date is the default.
				Otherwise it uses a flexible date format based on YYYY-MM-DD:

				` + mustTopic("dates"),
			},
		},
	}
	markdown := &genai.Schema{Type: genai.TypeString, Description: "A markdown report."}

	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Overview",
				Description: "Overview lists the latest value of each holding from real-time quotes, and the total value of the portfolio.",
				Response:    markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				o, err := dash.Overview(ctx)
				if err != nil {
					return failure(id, "Overview", err)
				}
				return output(id, "Overview", renderer.RenderOverview(renderer.NewOverview(o, dash.Currency), renderer.RenderOptions{}))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Snapshot",
				Description: `Snapshot lists every holding with its name, quantity, latest price, market value,
				weight in the portfolio and its trailing returns over the lookback windows.`,
				Parameters: dateParam,
				Response:   markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				d, err := on(dash, args)
				if err != nil {
					return failure(id, "Snapshot", err)
				}
				s, err := d.Snapshot(ctx)
				if err != nil {
					return failure(id, "Snapshot", err)
				}
				return output(id, "Snapshot", renderer.RenderHoldings(renderer.NewHoldings(s, d.Currency), renderer.RenderOptions{}))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Performance",
				Description: `Performance reports the daily value of the portfolio since the first transaction,
				its total return, and the benchmark's return over the same dates.`,
				Parameters: dateParam,
				Response:   markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				d, err := on(dash, args)
				if err != nil {
					return failure(id, "Performance", err)
				}
				p, err := d.Performance(ctx)
				if err != nil {
					return failure(id, "Performance", err)
				}
				return output(id, "Performance", renderer.RenderPerformance(renderer.NewPerformance(p, d.Currency), renderer.RenderOptions{}))
			},
		},
	}
}

// on returns a copy of dash dated by the optional "date" argument.
func on(dash *portfolio.Dashboard, args map[string]any) (*portfolio.Dashboard, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return dash, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return nil, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	day, err := portfolio.ParseDate(sdate)
	if err != nil {
		return nil, fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s", sdate, mustTopic("dates"))
	}
	return dash.On(day), nil
}
