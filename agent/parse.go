package agent

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"travel-planner/domain"
)

// flexFloat decodes a JSON number or a numeric string; anything else
// collapses to zero. Model output mixes both.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = flexFloat(n)
		}
	}
	return nil
}

type rawActivity struct {
	Name         string    `json:"name"`
	Duration     flexFloat `json:"duration"`
	Cost         flexFloat `json:"cost"`
	Notes        string    `json:"notes"`
	ActivityType string    `json:"activity_type"`
}

type rawDay struct {
	Day        int           `json:"day"`
	Activities []rawActivity `json:"activities"`
}

type rawItinerary struct {
	Destination    string   `json:"destination"`
	DailyItinerary []rawDay `json:"daily_itinerary"`
	Days           []rawDay `json:"days"`
}

// extractJSON pulls the JSON object out of model text, which may be wrapped
// in prose or code fences. Returns false when no parsable object exists.
func extractJSON(text string) (string, bool) {
	if json.Valid([]byte(text)) && strings.HasPrefix(strings.TrimSpace(text), "{") {
		return text, true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}

// parseItinerary decodes model output into an itinerary. Unusable output
// yields an empty itinerary for the requested destination rather than an
// error. The model sometimes answers with a "days" key instead of
// "daily_itinerary"; both are accepted. Totals are always recomputed here,
// never trusted from the model.
func parseItinerary(text, destination string) *domain.Itinerary {
	empty := &domain.Itinerary{Destination: destination, DailyItinerary: []domain.DayPlan{}}

	payload, ok := extractJSON(text)
	if !ok {
		return empty
	}
	var raw rawItinerary
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return empty
	}

	days := raw.DailyItinerary
	if len(days) == 0 {
		days = raw.Days
	}
	if len(days) == 0 {
		return empty
	}

	it := &domain.Itinerary{Destination: raw.Destination}
	if it.Destination == "" {
		it.Destination = destination
	}
	for i, d := range days {
		day := domain.DayPlan{Day: d.Day}
		if day.Day == 0 {
			day.Day = i + 1
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, normalizeActivity(a))
		}
		it.DailyItinerary = append(it.DailyItinerary, day)
	}

	domain.ComputeTotals(it)
	return it
}

// parseReplacements decodes a replacement_activities response. Returns false
// when no activities can be extracted.
func parseReplacements(text string) (domain.ReplacementActivityList, bool) {
	var list domain.ReplacementActivityList

	payload, ok := extractJSON(text)
	if !ok {
		return list, false
	}
	var raw struct {
		ReplacementActivities []rawActivity `json:"replacement_activities"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil || len(raw.ReplacementActivities) == 0 {
		return list, false
	}

	for _, a := range raw.ReplacementActivities {
		list.ReplacementActivities = append(list.ReplacementActivities, normalizeActivity(a))
	}
	return list, true
}

func normalizeActivity(a rawActivity) domain.Activity {
	name := a.Name
	if name == "" {
		name = "Unknown Activity"
	}
	notes := a.Notes
	if notes == "" {
		notes = "Visit " + name
	}
	return domain.Activity{
		Name:         name,
		Duration:     float64(a.Duration),
		Cost:         float64(a.Cost),
		Notes:        notes,
		ActivityType: domain.ParseActivityType(a.ActivityType),
	}
}

// trimToBudget drops activities, most expensive first, until the itinerary
// fits the budget.
func trimToBudget(it *domain.Itinerary, budget float64) {
	if it.TotalCost <= budget {
		return
	}

	type ref struct {
		day  int
		name string
		cost float64
	}
	var refs []ref
	for di, day := range it.DailyItinerary {
		for _, act := range day.Activities {
			refs = append(refs, ref{day: di, name: act.Name, cost: act.Cost})
		}
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].cost > refs[j].cost })

	for _, r := range refs {
		if it.TotalCost <= budget {
			break
		}
		acts := it.DailyItinerary[r.day].Activities
		for i, act := range acts {
			if act.Name == r.name {
				it.DailyItinerary[r.day].Activities = append(acts[:i], acts[i+1:]...)
				break
			}
		}
		domain.ComputeTotals(it)
	}
}
