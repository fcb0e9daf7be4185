package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/domain"
)

func TestExtractJSONPlainObject(t *testing.T) {
	out, ok := extractJSON(`{"a":1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, out)
}

func TestExtractJSONWrappedInProse(t *testing.T) {
	text := "Sure! Here is your plan:\n```json\n{\"a\": 1}\n```\nEnjoy!"
	out, ok := extractJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, ok := extractJSON("I could not generate a plan.")
	assert.False(t, ok)
}

func TestParseItinerary(t *testing.T) {
	text := `{"destination": "Tokyo", "daily_itinerary": [
		{"day": 1, "activities": [
			{"name": "Tsukiji Market", "duration": 2, "cost": 30, "notes": "Fresh sushi breakfast", "activity_type": "Food"},
			{"name": "Senso-ji", "duration": "1.5", "cost": 0, "notes": "Historic temple", "activity_type": "Cultural"}
		]}
	], "total_cost": 999}`

	it := parseItinerary(text, "Tokyo")

	require.Len(t, it.DailyItinerary, 1)
	require.Len(t, it.DailyItinerary[0].Activities, 2)
	assert.Equal(t, 1.5, it.DailyItinerary[0].Activities[1].Duration, "string numbers are tolerated")
	assert.Equal(t, 30.0, it.TotalCost, "totals are recomputed, not trusted")
	assert.Equal(t, 3.5, it.DailyItinerary[0].DayTotalHours)
}

func TestParseItineraryDaysKey(t *testing.T) {
	text := `{"destination": "Paris", "days": [
		{"activities": [{"name": "Louvre", "duration": 3, "cost": 20, "activity_type": "Cultural"}]}
	]}`

	it := parseItinerary(text, "Paris")

	require.Len(t, it.DailyItinerary, 1)
	assert.Equal(t, 1, it.DailyItinerary[0].Day, "missing day numbers are filled from position")
}

func TestParseItineraryGarbage(t *testing.T) {
	it := parseItinerary("total nonsense", "Oslo")
	assert.Equal(t, "Oslo", it.Destination)
	assert.Empty(t, it.DailyItinerary)
	assert.Zero(t, it.TotalCost)
}

func TestNormalizeActivityDefaults(t *testing.T) {
	act := normalizeActivity(rawActivity{ActivityType: "Entertainment"})
	assert.Equal(t, "Unknown Activity", act.Name)
	assert.Equal(t, "Visit Unknown Activity", act.Notes)
	assert.Equal(t, domain.TypeCultural, act.ActivityType)
}

func TestParseReplacements(t *testing.T) {
	text := `Here you go: {"replacement_activities": [
		{"name": "Boat Cruise", "duration": 2, "cost": 25, "notes": "Scenic tour", "activity_type": "Tour"},
		{"name": "Night Market", "duration": 2, "cost": "15", "activity_type": "Food"}
	]}`

	list, ok := parseReplacements(text)
	require.True(t, ok)
	require.Len(t, list.ReplacementActivities, 2)
	assert.Equal(t, 15.0, list.ReplacementActivities[1].Cost)
	assert.Equal(t, "Visit Night Market", list.ReplacementActivities[1].Notes)
}

func TestParseReplacementsEmpty(t *testing.T) {
	_, ok := parseReplacements(`{"replacement_activities": []}`)
	assert.False(t, ok)
	_, ok = parseReplacements("no json here")
	assert.False(t, ok)
}

func TestTrimToBudget(t *testing.T) {
	it := &domain.Itinerary{
		Destination: "Rome",
		DailyItinerary: []domain.DayPlan{
			{Day: 1, Activities: []domain.Activity{
				{Name: "Cheap", Duration: 1, Cost: 10},
				{Name: "Pricey", Duration: 2, Cost: 120},
			}},
			{Day: 2, Activities: []domain.Activity{
				{Name: "Mid", Duration: 2, Cost: 50},
			}},
		},
	}
	domain.ComputeTotals(it)
	require.Equal(t, 180.0, it.TotalCost)

	trimToBudget(it, 70)

	assert.Equal(t, 60.0, it.TotalCost)
	assert.Equal(t, []string{"Cheap"}, domain.ActivityNames(&domain.Itinerary{DailyItinerary: it.DailyItinerary[:1]}))
	assert.Len(t, it.DailyItinerary[1].Activities, 1, "trimming stops once under budget")
}

func TestTrimToBudgetWithinBudget(t *testing.T) {
	it := &domain.Itinerary{DailyItinerary: []domain.DayPlan{
		{Day: 1, Activities: []domain.Activity{{Name: "Walk", Duration: 1, Cost: 5}}},
	}}
	domain.ComputeTotals(it)

	trimToBudget(it, 100)
	assert.Len(t, it.DailyItinerary[0].Activities, 1)
}

func TestFallbackReplacements(t *testing.T) {
	list := fallbackReplacements()
	require.Len(t, list.ReplacementActivities, 3)
	for _, act := range list.ReplacementActivities {
		assert.Equal(t, domain.TypeCultural, act.ActivityType)
		assert.Positive(t, act.Duration)
	}
}
