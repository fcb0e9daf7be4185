// Package suggest implements the activity replacement flow: fetching
// candidate activities from the suggestion service, filtering them against
// what the itinerary already contains, and committing the user's pick back
// into the session and the rendered calendar.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-planner/domain"
)

// Suggestion is one replacement candidate as presented to the user.
type Suggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Cost        float64 `json:"cost"`
}

// Query carries the constraints a suggestion request is built from.
type Query struct {
	Destination       string
	ActivityType      domain.ActivityType
	Exclude           []string
	RemainingBudget   float64
	RemainingDayHours float64
}

// Provider proposes replacement activities for a query. Implementations are
// tried once per user action; the workflow handles failures with the static
// fallback table, so providers just return their error.
type Provider interface {
	Suggestions(ctx context.Context, q Query) ([]Suggestion, error)
}

// HTTPProvider talks to the remote suggestion service's /modify-activity
// endpoint.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Suggestions posts a ModifyActivityRequest built from the query. A non-2xx
// status, an unreadable body, or a response without the
// replacement_activities array are all errors.
func (p *HTTPProvider) Suggestions(ctx context.Context, q Query) ([]Suggestion, error) {
	reqBody := domain.ModifyActivityRequest{
		Request: domain.Activity{
			Name:         fmt.Sprintf("Replace %s Activity", q.ActivityType),
			Duration:     2.0,
			Notes:        fmt.Sprintf("Looking for %s activity replacements in %s", q.ActivityType, q.Destination),
			ActivityType: q.ActivityType,
			Cost:         25.0,
		},
		Destination: q.Destination,
		Budget:      q.RemainingBudget,
		DayDuration: q.RemainingDayHours,
	}
	for _, name := range q.Exclude {
		reqBody.ExcludedActivities = append(reqBody.ExcludedActivities, domain.Activity{
			Name:         name,
			Duration:     2.0,
			Notes:        "Excluded activity: " + name,
			ActivityType: domain.TypeCultural,
			Cost:         25.0,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/modify-activity", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("suggestion service status %d: %s", resp.StatusCode, string(body))
	}

	var list struct {
		ReplacementActivities []domain.Activity `json:"replacement_activities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}
	if list.ReplacementActivities == nil {
		return nil, fmt.Errorf("suggestion response missing replacement_activities")
	}

	out := make([]Suggestion, 0, len(list.ReplacementActivities))
	for _, act := range list.ReplacementActivities {
		desc := act.Notes
		if desc == "" {
			desc = "Activity description"
		}
		out = append(out, Suggestion{
			Name:        act.Name,
			Description: desc,
			Duration:    act.Duration,
			Cost:        act.Cost,
		})
	}
	return out, nil
}
