package domain

import (
	"math"

	"github.com/google/uuid"
)

// ActivityType categorizes an activity; the planner and the suggestion
// endpoint only ever exchange these five values.
type ActivityType string

const (
	TypeFood         ActivityType = "Food"
	TypeTour         ActivityType = "Tour"
	TypeCultural     ActivityType = "Cultural"
	TypeRecreational ActivityType = "Recreational"
	TypeAdventure    ActivityType = "Adventure"
)

// ParseActivityType maps a raw string onto the closed enum. Unknown values
// fall back to Cultural, matching what the suggestion pipeline tolerates.
func ParseActivityType(s string) ActivityType {
	switch ActivityType(s) {
	case TypeFood, TypeTour, TypeCultural, TypeRecreational, TypeAdventure:
		return ActivityType(s)
	}
	return TypeCultural
}

// Activity is a single bookable unit of an itinerary.
//
// ID is a generated identifier used for structural operations (move, delete,
// replace). It is not part of the wire contract; the suggestion endpoint
// identifies activities by name, so Name must stay unique across the
// itinerary. That uniqueness is enforced by the replacement workflow's
// exclusion filter, not here, and duplicate names must not corrupt anything.
type Activity struct {
	ID           string       `json:"-"`
	Name         string       `json:"name"`
	ActivityType ActivityType `json:"activity_type"`
	Duration     float64      `json:"duration"`
	Cost         float64      `json:"cost"`
	Notes        string       `json:"notes"`
}

// DayPlan is one calendar day's ordered activity list. Day is 1-based and
// matches the day's position in the itinerary. Activity order is a display
// order only, adjustable by reassignment.
type DayPlan struct {
	Day           int        `json:"day"`
	Activities    []Activity `json:"activities"`
	DayTotalHours float64    `json:"day_total_hours"`
	DayTotalCost  float64    `json:"day_total_cost"`
}

// Itinerary is the complete multi-day plan for one destination. Days are
// chronological and never reordered.
type Itinerary struct {
	Destination    string    `json:"destination"`
	Budget         float64   `json:"budget,omitempty"`
	DailyItinerary []DayPlan `json:"daily_itinerary"`
	TotalCost      float64   `json:"total_cost"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals recomputes every per-day total and the grand total cost from
// the activities themselves. Call after any structural change.
func ComputeTotals(it *Itinerary) {
	total := 0.0
	for i := range it.DailyItinerary {
		day := &it.DailyItinerary[i]
		hours := 0.0
		cost := 0.0
		for _, act := range day.Activities {
			hours += act.Duration
			cost += act.Cost
		}
		day.DayTotalHours = round2(hours)
		day.DayTotalCost = round2(cost)
		total += cost
	}
	it.TotalCost = round2(total)
}

// EnsureIDs assigns a fresh id to every activity that does not have one.
// Generated itineraries arrive from the wire without ids.
func EnsureIDs(it *Itinerary) {
	for i := range it.DailyItinerary {
		for j := range it.DailyItinerary[i].Activities {
			if it.DailyItinerary[i].Activities[j].ID == "" {
				it.DailyItinerary[i].Activities[j].ID = uuid.NewString()
			}
		}
	}
}

// ActivityNames collects every activity name across all days, in day order.
// The replacement workflow sends this as the suggestion exclusion set.
func ActivityNames(it *Itinerary) []string {
	var names []string
	for _, day := range it.DailyItinerary {
		for _, act := range day.Activities {
			if act.Name != "" {
				names = append(names, act.Name)
			}
		}
	}
	return names
}

// TotalActivities counts activities across all days.
func TotalActivities(it *Itinerary) int {
	n := 0
	for _, day := range it.DailyItinerary {
		n += len(day.Activities)
	}
	return n
}
