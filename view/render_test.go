package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/domain"
)

func renderedItinerary() *domain.Itinerary {
	it := &domain.Itinerary{
		Destination: "Kyoto",
		DailyItinerary: []domain.DayPlan{
			{Day: 1, Activities: []domain.Activity{
				{ID: "a1", Name: "Fushimi Inari Hike", ActivityType: domain.TypeAdventure, Duration: 3, Cost: 0, Notes: "Thousand torii gates"},
				{ID: "a2", Name: "Nishiki Market", ActivityType: domain.TypeFood, Duration: 2, Cost: 30},
			}},
			{Day: 2, Activities: []domain.Activity{
				{ID: "a3", Name: "Kinkaku-ji", ActivityType: domain.TypeCultural, Duration: 1.5, Cost: 5},
			}},
		},
	}
	domain.ComputeTotals(it)
	return it
}

func TestRenderProjectsEveryDay(t *testing.T) {
	cal := Render(renderedItinerary())

	require.Len(t, cal.Days, 2)
	assert.Equal(t, "Kyoto", cal.Destination)
	assert.Equal(t, 1, cal.Days[0].DayNumber)
	assert.Equal(t, "5h • $30", cal.Days[0].Stats)
	assert.Equal(t, "1.5h • $5", cal.Days[1].Stats)

	require.Len(t, cal.Days[0].Activities, 2)
	card := cal.Days[0].Activities[1]
	assert.Equal(t, "a2", card.ActivityID)
	assert.Equal(t, 0, card.DayIndex)
	assert.Equal(t, []Action{ActionShowMap, ActionReplace, ActionDelete}, card.Actions)
}

func TestRenderIdempotent(t *testing.T) {
	it := renderedItinerary()
	first := Render(it)
	second := Render(it)

	require.Len(t, second.Days, len(first.Days))
	for i := range first.Days {
		require.Len(t, second.Days[i].Activities, len(first.Days[i].Activities))
		for j := range first.Days[i].Activities {
			assert.Equal(t, *first.Days[i].Activities[j], *second.Days[i].Activities[j])
		}
	}
}

func TestSnapshotDropsActions(t *testing.T) {
	cal := Render(renderedItinerary())
	card, _, ok := cal.FindCard("a1")
	require.True(t, ok)

	snap := card.Snapshot()
	assert.Nil(t, snap.Actions)
	assert.Equal(t, card.Name, snap.Name)
	assert.NotNil(t, card.Actions, "original keeps its controls")
}

func TestRemoveAppendSwap(t *testing.T) {
	cal := Render(renderedItinerary())

	card, ok := cal.RemoveCard("a2", 0)
	require.True(t, ok)
	assert.Len(t, cal.Days[0].Activities, 1)

	require.True(t, cal.AppendCard(card, 1))
	assert.Equal(t, 1, card.DayIndex)
	assert.Equal(t, "a2", cal.Days[1].Activities[1].ActivityID)

	repl := NewActivityCard(domain.Activity{ID: "a9", Name: "Tea Ceremony", ActivityType: domain.TypeCultural, Duration: 1, Cost: 40}, 1)
	require.True(t, cal.SwapCard("a3", repl, 1))
	assert.Equal(t, "a9", cal.Days[1].Activities[0].ActivityID)

	_, ok = cal.RemoveCard("missing", 0)
	assert.False(t, ok)
	assert.False(t, cal.AppendCard(card, 5))
	assert.False(t, cal.SwapCard("missing", repl, 1))
}
