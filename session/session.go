// Package session owns the live planning state: the current itinerary, the
// budget the user declared at submission time, and the structural operations
// (move, delete, replace) the UI drives. One session exists per planning
// run; regeneration replaces the itinerary wholesale.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"travel-planner/domain"
)

const (
	// DefaultRemainingBudget is returned when either the declared budget or
	// the current itinerary is unavailable.
	DefaultRemainingBudget = 200

	// FullDayHours is the assumed capacity of a planning day.
	FullDayHours = 13.0
)

var (
	ErrNoItinerary      = errors.New("no itinerary loaded")
	ErrDayOutOfRange    = errors.New("day index out of range")
	ErrActivityNotFound = errors.New("activity not found")
)

// PlanSession holds the last successfully generated itinerary. All access
// goes through the mutex; handlers and the drag engine share one instance.
type PlanSession struct {
	mu             sync.RWMutex
	itinerary      *domain.Itinerary
	declaredBudget float64
}

func NewPlanSession() *PlanSession {
	return &PlanSession{}
}

// SetCurrent installs a freshly generated itinerary and the budget the user
// declared for it. Totals and activity ids are normalized on the way in.
func (s *PlanSession) SetCurrent(it *domain.Itinerary, declaredBudget float64) {
	domain.EnsureIDs(it)
	domain.ComputeTotals(it)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = it
	s.declaredBudget = declaredBudget
}

// Current returns the live itinerary, or false when none is loaded.
func (s *PlanSession) Current() (*domain.Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itinerary, s.itinerary != nil
}

// Clear drops the session state, as when navigating back to the search form.
func (s *PlanSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = nil
	s.declaredBudget = 0
}

// RemainingBudget is the declared budget minus the itinerary's total cost.
// Falls back to DefaultRemainingBudget when either side is unavailable.
func (s *PlanSession) RemainingBudget() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.itinerary == nil || s.declaredBudget <= 0 {
		return DefaultRemainingBudget
	}
	return s.declaredBudget - s.itinerary.TotalCost
}

// RemainingDayCapacity is FullDayHours minus the day's planned hours. An
// unknown day yields the full constant rather than an error.
func (s *PlanSession) RemainingDayCapacity(dayIndex int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.itinerary == nil || dayIndex < 0 || dayIndex >= len(s.itinerary.DailyItinerary) {
		return FullDayHours
	}
	return FullDayHours - s.itinerary.DailyItinerary[dayIndex].DayTotalHours
}

// ActivityNames returns every activity name across the itinerary, the
// exclusion set for replacement suggestions.
func (s *PlanSession) ActivityNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.itinerary == nil {
		return nil
	}
	return domain.ActivityNames(s.itinerary)
}

// MoveActivity detaches the activity from fromDay and appends it to the end
// of toDay's list. Moving within the same day is a no-op: same-day
// reordering is not supported.
func (s *PlanSession) MoveActivity(activityID string, fromDay, toDay int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return ErrNoItinerary
	}
	days := s.itinerary.DailyItinerary
	if fromDay < 0 || fromDay >= len(days) || toDay < 0 || toDay >= len(days) {
		return ErrDayOutOfRange
	}
	if fromDay == toDay {
		return nil
	}

	idx := indexOf(days[fromDay].Activities, activityID)
	if idx < 0 {
		return ErrActivityNotFound
	}
	act := days[fromDay].Activities[idx]
	days[fromDay].Activities = append(days[fromDay].Activities[:idx], days[fromDay].Activities[idx+1:]...)
	days[toDay].Activities = append(days[toDay].Activities, act)

	domain.ComputeTotals(s.itinerary)
	return nil
}

// DeleteActivity removes the activity from the given day.
func (s *PlanSession) DeleteActivity(activityID string, dayIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return ErrNoItinerary
	}
	days := s.itinerary.DailyItinerary
	if dayIndex < 0 || dayIndex >= len(days) {
		return ErrDayOutOfRange
	}
	idx := indexOf(days[dayIndex].Activities, activityID)
	if idx < 0 {
		return ErrActivityNotFound
	}
	days[dayIndex].Activities = append(days[dayIndex].Activities[:idx], days[dayIndex].Activities[idx+1:]...)

	domain.ComputeTotals(s.itinerary)
	return nil
}

// ReplaceActivity swaps the activity in place with the replacement,
// preserving its position within the day. The replacement gets a fresh id
// when it arrives without one; the stored activity is returned.
func (s *PlanSession) ReplaceActivity(activityID string, dayIndex int, replacement domain.Activity) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return domain.Activity{}, ErrNoItinerary
	}
	days := s.itinerary.DailyItinerary
	if dayIndex < 0 || dayIndex >= len(days) {
		return domain.Activity{}, ErrDayOutOfRange
	}
	idx := indexOf(days[dayIndex].Activities, activityID)
	if idx < 0 {
		return domain.Activity{}, ErrActivityNotFound
	}
	if replacement.ID == "" {
		replacement.ID = uuid.NewString()
	}
	days[dayIndex].Activities[idx] = replacement

	domain.ComputeTotals(s.itinerary)
	return replacement, nil
}

func indexOf(activities []domain.Activity, id string) int {
	for i, act := range activities {
		if act.ID == id {
			return i
		}
	}
	return -1
}
