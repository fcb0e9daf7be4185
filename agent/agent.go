// Package agent generates itineraries and replacement activities with
// Gemini. Model output is treated as untrusted text: JSON is extracted and
// normalized defensively, and every failure path degrades to a usable
// result instead of an error the UI would have to explain.
package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"travel-planner/domain"
)

const defaultModel = "gemini-2.5-flash-lite"

// Planner wraps the Gemini client configuration. A client is built per
// request, the way short-lived handler calls use the SDK.
type Planner struct {
	apiKey string
	model  string
}

func NewPlanner(apiKey string) *Planner {
	return &Planner{apiKey: apiKey, model: defaultModel}
}

// BuildItinerary generates a full itinerary for the request. Transport
// errors surface to the caller; unparsable model output degrades to an
// empty itinerary for the requested destination. Itineraries that come back
// over budget are trimmed, dropping the most expensive activities first.
func (p *Planner) BuildItinerary(ctx context.Context, req domain.PlanRequest) (*domain.Itinerary, error) {
	text, err := p.generate(ctx, builderSystemPrompt, builderUserPrompt(req), 0.7)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation: %w", err)
	}

	it := parseItinerary(text, req.Destination)
	trimToBudget(it, float64(req.Budget))
	it.Budget = float64(req.Budget)
	return it, nil
}

// ReplacementActivities generates candidates to swap in for the requested
// activity. It never fails: any transport or parse problem yields the
// built-in fallback set.
func (p *Planner) ReplacementActivities(ctx context.Context, req domain.ModifyActivityRequest) domain.ReplacementActivityList {
	text, err := p.generate(ctx, replacementSystemPrompt, replacementUserPrompt(req), 0.7)
	if err != nil {
		log.Printf("replacement generation failed: %v", err)
		return fallbackReplacements()
	}

	list, ok := parseReplacements(text)
	if !ok {
		log.Printf("replacement response had no usable activities")
		return fallbackReplacements()
	}
	return list
}

func (p *Planner) generate(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(8192)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var text string
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text, nil
}

func fallbackReplacements() domain.ReplacementActivityList {
	return domain.ReplacementActivityList{
		ReplacementActivities: []domain.Activity{
			{Name: "Fallback Activity 1", Duration: 2.0, Notes: "Fallback activity", ActivityType: domain.TypeCultural, Cost: 25.0},
			{Name: "Fallback Activity 2", Duration: 1.5, Notes: "Another fallback", ActivityType: domain.TypeCultural, Cost: 20.0},
			{Name: "Fallback Activity 3", Duration: 2.5, Notes: "Third fallback", ActivityType: domain.TypeCultural, Cost: 30.0},
		},
	}
}
