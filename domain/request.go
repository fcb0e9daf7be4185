package domain

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation failures carry the exact user-facing message; handlers return
// them verbatim.
var (
	ErrDestinationRequired = errors.New("Destination is required")
	ErrBudgetTooLow        = errors.New("Budget must be greater than $0")
	ErrDaysOutOfRange      = errors.New("Duration must be between 1 and 30 days")
)

// PlanRequest is the /plan-trip request body. UserPref maps rank ("1".."5",
// 1 = most preferred) to an activity type name.
type PlanRequest struct {
	Destination string            `json:"destination"`
	Budget      int               `json:"budget"`
	Days        int               `json:"days"`
	UserPref    map[string]string `json:"user_pref"`
}

// Validate checks the submission-time rules. All numeric validation happens
// here; nothing downstream re-checks.
func (r PlanRequest) Validate() error {
	if err := validation.Validate(r.Destination, validation.Required); err != nil {
		return ErrDestinationRequired
	}
	// Required first: the threshold rules treat a zero value as absent.
	if err := validation.Validate(r.Budget, validation.Required, validation.Min(1)); err != nil {
		return ErrBudgetTooLow
	}
	if err := validation.Validate(r.Days, validation.Required, validation.Min(1), validation.Max(30)); err != nil {
		return ErrDaysOutOfRange
	}
	return nil
}

// ModifyActivityRequest is the /modify-activity request body. Request
// describes the activity being replaced, ExcludedActivities carries every
// name already present in the itinerary, and Budget / DayDuration are the
// remaining budget and remaining day capacity.
type ModifyActivityRequest struct {
	Request            Activity   `json:"request"`
	Destination        string     `json:"destination"`
	ExcludedActivities []Activity `json:"excluded_activities"`
	Budget             float64    `json:"budget"`
	DayDuration        float64    `json:"day_duration"`
}

// ReplacementActivityList is the /modify-activity response body.
type ReplacementActivityList struct {
	ReplacementActivities []Activity `json:"replacement_activities"`
}
