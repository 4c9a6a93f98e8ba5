package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/etnz/restock"
	"github.com/etnz/restock/docs"
	"github.com/etnz/restock/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert fronting the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from an expert.
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small business and is here primarily to decide what supplies to order
			and where to order them.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know their supply items, check the supplies configuration
			first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewSourcer returns the expert that searches the web for suppliers, prices
// and availability.
func NewSourcer() *Expert {
	return &Expert{
		Name: "Sourcer",
		Description: `This is an expert in sourcing supplies.
		Very well aware of suppliers, wholesale prices and packaging sizes,
		and of whatever is currently happening to supply chains.
		Ask the Sourcer whenever you need fresh or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in sourcing supplies for small businesses. You can search and find
			about anything related to suppliers, wholesale prices, packaging sizes and availability.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewPlanner returns the expert in charge of the user's supplies
// configuration. Its tools read the loaded store, they never modify it.
func NewPlanner(store *restock.Store, mode restock.CalcMode) *Expert {
	lib := []Function{requirementsFunc(store, mode), configurationFunc(store)}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. It is in charge of reading the user's supplies configuration.
		It can compute the restocking requirement table for any selection of weekdays or any sales total.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a restocking planner in charge of the user's supplies configuration.
				You know how to use the Tools to read the configuration and compute requirement tables.
				You are part of a team of experts, yours is everything stored locally. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to get
				  - the supplies configuration, sales estimates and supply items
				  - the requirement table for a selection of days or for a given sales total
			`}}},
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

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// requirementsFunc exposes the recalculation engine as a tool.
func requirementsFunc(store *restock.Store, mode restock.CalcMode) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Requirements",
			Description: `Requirements computes the restocking table: the quantity of each supply item to order,
			from the weekday sales estimates of the user's configuration.

			` + must(docs.GetTopic("calculation")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type: genai.TypeString,
						Description: `Comma-separated weekday names to sum sales estimates for, e.g. "Monday,Tuesday".
						Three-letter abbreviations work. Defaults to the full week.`,
					},
					"override": {
						Type: genai.TypeString,
						Description: `A sales total replacing the day sum entirely, e.g. "5000".
						Leave empty to use the selected days.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with one row per supply item: unit, coefficient, inventory, supplier and the quantity to order.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     "Requirements",
				Response: map[string]any{},
			}

			days, override, err := parseSelection(args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}

			config := store.Config()
			total, err := restock.Total(config.Estimates(), days, override)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			rows, err := restock.Recalculate(config.Estimates(), days, override, config.Items(), mode)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}

			fresp.Response["output"] = renderer.RequirementsMarkdown(rows, total, mode)
			return fresp
		},
	}
}

// configurationFunc exposes the loaded configuration as a tool.
func configurationFunc(store *restock.Store) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Configuration",
			Description: `Configuration returns the user's supplies configuration:
			the weekday sales estimates, the supply items and the display preference.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown document listing the sales estimates and the supply items.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Configuration",
				Response: map[string]any{
					"output": renderer.ConfigurationMarkdown(store.Config()),
				},
			}
		},
	}
}

// parseSelection extracts the day selection and the override from the model's
// arguments. Missing days mean the full week.
func parseSelection(args map[string]any) ([]restock.Weekday, string, error) {
	days := restock.Weekdays()
	if idays, hasDays := args["days"]; hasDays {
		sdays, ok := idays.(string)
		if !ok {
			return nil, "", fmt.Errorf("argument 'days' is not a string as expected but %T", idays)
		}
		if strings.TrimSpace(sdays) != "" {
			parsed, err := restock.ParseWeekdays(sdays)
			if err != nil {
				return nil, "", fmt.Errorf("argument 'days' must be comma-separated weekday names, got %q: %w", sdays, err)
			}
			days = parsed
		}
	}

	var override string
	if ioverride, hasOverride := args["override"]; hasOverride {
		soverride, ok := ioverride.(string)
		if !ok {
			return nil, "", fmt.Errorf("argument 'override' is not a string as expected but %T", ioverride)
		}
		override = strings.TrimSpace(soverride)
	}
	return days, override, nil
}
