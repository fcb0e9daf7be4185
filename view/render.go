// Package view projects an itinerary into the calendar card tree the UI
// displays. Render is a pure full rebuild; the structural mutation helpers
// (RemoveCard, AppendCard, SwapCard) adjust a live projection in place the
// way drag, delete and replace do, without rebuilding the rest of the tree.
package view

import (
	"fmt"

	"travel-planner/domain"
)

// Action identifies one of the per-card controls.
type Action string

const (
	ActionShowMap Action = "map"
	ActionReplace Action = "replace"
	ActionDelete  Action = "delete"
)

// cardActions is the control strip every activity card carries.
var cardActions = []Action{ActionShowMap, ActionReplace, ActionDelete}

// ActivityCard is one rendered activity. DayIndex records which day the card
// belonged to at render time; the action controls are keyed by ActivityID
// and DayIndex.
type ActivityCard struct {
	ActivityID   string
	Name         string
	ActivityType domain.ActivityType
	Duration     float64
	Cost         float64
	Notes        string
	DayIndex     int
	Actions      []Action
}

// DayCard is one rendered day: a header (day number plus the stats line) and
// the ordered activity cards.
type DayCard struct {
	DayNumber  int
	Index      int
	TotalHours float64
	TotalCost  float64
	Stats      string
	Activities []*ActivityCard
}

// CalendarView is the full rendered projection.
type CalendarView struct {
	Destination string
	Days        []*DayCard
}

// Render rebuilds the entire calendar projection from scratch. Calling it
// twice with the same itinerary yields a structurally identical tree.
func Render(it *domain.Itinerary) *CalendarView {
	cal := &CalendarView{Destination: it.Destination}
	for i, day := range it.DailyItinerary {
		dc := &DayCard{
			DayNumber:  day.Day,
			Index:      i,
			TotalHours: day.DayTotalHours,
			TotalCost:  day.DayTotalCost,
			Stats:      statsLine(day.DayTotalHours, day.DayTotalCost),
		}
		for _, act := range day.Activities {
			dc.Activities = append(dc.Activities, NewActivityCard(act, i))
		}
		cal.Days = append(cal.Days, dc)
	}
	return cal
}

// NewActivityCard builds a single card, as the replacement path does when it
// swaps one card without re-rendering the calendar.
func NewActivityCard(act domain.Activity, dayIndex int) *ActivityCard {
	return &ActivityCard{
		ActivityID:   act.ID,
		Name:         act.Name,
		ActivityType: act.ActivityType,
		Duration:     act.Duration,
		Cost:         act.Cost,
		Notes:        act.Notes,
		DayIndex:     dayIndex,
		Actions:      cardActions,
	}
}

// Snapshot copies a card without its action controls, for display as the
// "current selection" context in the replacement dialog.
func (c *ActivityCard) Snapshot() *ActivityCard {
	cp := *c
	cp.Actions = nil
	return &cp
}

// FindCard locates a card by activity id anywhere in the projection.
func (v *CalendarView) FindCard(activityID string) (*ActivityCard, int, bool) {
	for di, day := range v.Days {
		for _, card := range day.Activities {
			if card.ActivityID == activityID {
				return card, di, true
			}
		}
	}
	return nil, 0, false
}

// RemoveCard detaches a card from the given day and returns it.
func (v *CalendarView) RemoveCard(activityID string, dayIndex int) (*ActivityCard, bool) {
	if dayIndex < 0 || dayIndex >= len(v.Days) {
		return nil, false
	}
	day := v.Days[dayIndex]
	for i, card := range day.Activities {
		if card.ActivityID == activityID {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			return card, true
		}
	}
	return nil, false
}

// AppendCard attaches a card to the end of the given day's list.
func (v *CalendarView) AppendCard(card *ActivityCard, dayIndex int) bool {
	if dayIndex < 0 || dayIndex >= len(v.Days) {
		return false
	}
	card.DayIndex = dayIndex
	v.Days[dayIndex].Activities = append(v.Days[dayIndex].Activities, card)
	return true
}

// SwapCard replaces the card for oldID with the given card, in place.
func (v *CalendarView) SwapCard(oldID string, card *ActivityCard, dayIndex int) bool {
	if dayIndex < 0 || dayIndex >= len(v.Days) {
		return false
	}
	day := v.Days[dayIndex]
	for i, existing := range day.Activities {
		if existing.ActivityID == oldID {
			card.DayIndex = dayIndex
			day.Activities[i] = card
			return true
		}
	}
	return false
}

func statsLine(hours, cost float64) string {
	return fmt.Sprintf("%gh • $%g", hours, cost)
}
