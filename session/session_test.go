package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/domain"
)

func threeDayItinerary() *domain.Itinerary {
	return &domain.Itinerary{
		Destination: "Rome",
		DailyItinerary: []domain.DayPlan{
			{Day: 1, Activities: []domain.Activity{
				{Name: "Colosseum Tour", ActivityType: domain.TypeTour, Duration: 3, Cost: 40},
				{Name: "Trastevere Dinner", ActivityType: domain.TypeFood, Duration: 2, Cost: 50},
			}},
			{Day: 2, Activities: []domain.Activity{
				{Name: "Vatican Museums", ActivityType: domain.TypeCultural, Duration: 4, Cost: 30},
				{Name: "City Walk", ActivityType: domain.TypeTour, Duration: 2, Cost: 0},
				{Name: "Gelato Tasting", ActivityType: domain.TypeFood, Duration: 1, Cost: 10},
			}},
			{Day: 3, Activities: []domain.Activity{
				{Name: "Ostia Antica", ActivityType: domain.TypeAdventure, Duration: 5, Cost: 25},
				{Name: "Campo Market", ActivityType: domain.TypeRecreational, Duration: 1.5, Cost: 15},
			}},
		},
	}
}

func loadedSession(t *testing.T, budget float64) *PlanSession {
	t.Helper()
	s := NewPlanSession()
	s.SetCurrent(threeDayItinerary(), budget)
	return s
}

func findByName(t *testing.T, s *PlanSession, name string) (string, int) {
	t.Helper()
	it, ok := s.Current()
	require.True(t, ok)
	for di, day := range it.DailyItinerary {
		for _, act := range day.Activities {
			if act.Name == name {
				return act.ID, di
			}
		}
	}
	t.Fatalf("activity %q not in itinerary", name)
	return "", 0
}

func TestSetCurrentNormalizes(t *testing.T) {
	s := loadedSession(t, 500)
	it, ok := s.Current()
	require.True(t, ok)

	assert.Equal(t, 170.0, it.TotalCost)
	assert.Equal(t, 7.0, it.DailyItinerary[1].DayTotalHours)
	for _, day := range it.DailyItinerary {
		for _, act := range day.Activities {
			assert.NotEmpty(t, act.ID)
		}
	}
}

func TestRemainingBudget(t *testing.T) {
	s := loadedSession(t, 500)
	assert.Equal(t, 330.0, s.RemainingBudget())
}

func TestRemainingBudgetFallback(t *testing.T) {
	assert.Equal(t, float64(DefaultRemainingBudget), NewPlanSession().RemainingBudget())

	s := loadedSession(t, 0) // budget never declared
	assert.Equal(t, float64(DefaultRemainingBudget), s.RemainingBudget())
}

func TestRemainingDayCapacity(t *testing.T) {
	s := loadedSession(t, 500)
	assert.Equal(t, 13.0-7.0, s.RemainingDayCapacity(1))
	assert.Equal(t, FullDayHours, s.RemainingDayCapacity(9))
	assert.Equal(t, FullDayHours, NewPlanSession().RemainingDayCapacity(0))
}

func TestMoveActivityAppendsToTarget(t *testing.T) {
	s := loadedSession(t, 500)
	id, from := findByName(t, s, "City Walk")
	require.Equal(t, 1, from)

	require.NoError(t, s.MoveActivity(id, 1, 2))

	it, _ := s.Current()
	assert.Len(t, it.DailyItinerary[1].Activities, 2)
	assert.Len(t, it.DailyItinerary[2].Activities, 3)
	assert.Equal(t, "City Walk", it.DailyItinerary[2].Activities[2].Name)
	assert.Equal(t, 7, domain.TotalActivities(it))

	// totals follow the move
	assert.Equal(t, 5.0, it.DailyItinerary[1].DayTotalHours)
	assert.Equal(t, 8.5, it.DailyItinerary[2].DayTotalHours)
	assert.Equal(t, 170.0, it.TotalCost)
}

func TestMoveActivitySameDayIsNoOp(t *testing.T) {
	s := loadedSession(t, 500)
	before, _ := s.Current()
	var order [][]string
	for _, day := range before.DailyItinerary {
		var names []string
		for _, act := range day.Activities {
			names = append(names, act.Name)
		}
		order = append(order, names)
	}

	id, _ := findByName(t, s, "Vatican Museums")
	require.NoError(t, s.MoveActivity(id, 1, 1))

	after, _ := s.Current()
	for di, day := range after.DailyItinerary {
		var names []string
		for _, act := range day.Activities {
			names = append(names, act.Name)
		}
		assert.Equal(t, order[di], names)
	}
}

func TestMoveActivityErrors(t *testing.T) {
	s := loadedSession(t, 500)
	id, _ := findByName(t, s, "City Walk")

	assert.ErrorIs(t, s.MoveActivity(id, 1, 7), ErrDayOutOfRange)
	assert.ErrorIs(t, s.MoveActivity("nope", 0, 1), ErrActivityNotFound)
	assert.ErrorIs(t, NewPlanSession().MoveActivity(id, 0, 1), ErrNoItinerary)
}

func TestDeleteActivity(t *testing.T) {
	s := loadedSession(t, 500)
	id, day := findByName(t, s, "City Walk")

	require.NoError(t, s.DeleteActivity(id, day))

	it, _ := s.Current()
	assert.Equal(t, 6, domain.TotalActivities(it))
	assert.Len(t, it.DailyItinerary[1].Activities, 2)
	assert.NotContains(t, domain.ActivityNames(it), "City Walk")
	assert.Equal(t, 170.0, it.TotalCost) // City Walk was free
}

func TestReplaceActivityKeepsPosition(t *testing.T) {
	s := loadedSession(t, 500)
	id, day := findByName(t, s, "City Walk")

	repl := domain.Activity{
		Name:         "Night Market",
		ActivityType: domain.TypeFood,
		Duration:     2,
		Cost:         20,
		Notes:        "Street food stalls",
	}
	stored, err := s.ReplaceActivity(id, day, repl)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	it, _ := s.Current()
	assert.Equal(t, "Night Market", it.DailyItinerary[1].Activities[1].Name)
	assert.Equal(t, stored.ID, it.DailyItinerary[1].Activities[1].ID)
	assert.Equal(t, 190.0, it.TotalCost)
}

func TestClear(t *testing.T) {
	s := loadedSession(t, 500)
	s.Clear()
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Nil(t, s.ActivityNames())
}
