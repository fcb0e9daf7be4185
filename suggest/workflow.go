package suggest

import (
	"context"
	"errors"
	"log"

	"travel-planner/domain"
	"travel-planner/session"
	"travel-planner/view"
)

// MaxOptions caps how many candidates the replacement dialog shows.
const MaxOptions = 4

// ErrActivityGone means the activity targeted for replacement is no longer
// in the rendered calendar. The operation aborts with a user-visible alert
// and the session is left untouched.
var ErrActivityGone = errors.New("activity no longer present")

// Defaults used when the chosen suggestion cannot be found in the re-fetched
// list; the swap proceeds with these instead of failing.
const (
	placeholderDuration = 2.0
	placeholderCost     = 25.0
	placeholderNotes    = "Newly suggested activity"
)

// Workflow orchestrates replacement: fetch candidates, let the user pick,
// swap the activity, recompute the summary.
type Workflow struct {
	session  *session.PlanSession
	provider Provider
}

func NewWorkflow(s *session.PlanSession, p Provider) *Workflow {
	return &Workflow{session: s, provider: p}
}

// Prompt is one open replacement dialog. Closing it cancels any in-flight
// suggestion fetch; late responses are dropped instead of being rendered
// into a dialog that no longer exists.
type Prompt struct {
	w *Workflow

	ctx    context.Context
	cancel context.CancelFunc

	ActivityID string
	DayIndex   int
	Current    *view.ActivityCard
	Options    []Suggestion
}

// Open starts a replacement for the given activity. The returned prompt
// carries a snapshot of the current card, minus its action controls, as the
// "current selection" context.
func (w *Workflow) Open(cal *view.CalendarView, activityID string) (*Prompt, error) {
	card, dayIndex, ok := cal.FindCard(activityID)
	if !ok {
		return nil, ErrActivityGone
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Prompt{
		w:          w,
		ctx:        ctx,
		cancel:     cancel,
		ActivityID: activityID,
		DayIndex:   dayIndex,
		Current:    card.Snapshot(),
	}, nil
}

// LoadOptions fetches candidates, drops any whose name collides with an
// activity already in the itinerary, and keeps at most MaxOptions. A closed
// prompt discards the result.
func (p *Prompt) LoadOptions() error {
	suggestions := p.w.fetch(p.ctx, p.query())
	if p.Closed() {
		return nil
	}
	p.Options = filterCollisions(suggestions, p.w.session.ActivityNames())
	if len(p.Options) > MaxOptions {
		p.Options = p.Options[:MaxOptions]
	}
	return nil
}

// Select commits the named suggestion. The candidate's attributes are not
// cached from the earlier fetch: the list is requested again and the choice
// looked up by name in the fresh copy. A name missing from the fresh list
// resolves to placeholder attributes rather than failing.
//
// The old card is swapped for a newly built one in the live projection, the
// summary is recomputed, and the prompt closes.
func (p *Prompt) Select(name string, cal *view.CalendarView) (view.Summary, error) {
	if p.Closed() {
		return view.Summary{}, ErrActivityGone
	}
	defer p.Close()

	if _, _, ok := cal.FindCard(p.ActivityID); !ok {
		return view.Summary{}, ErrActivityGone
	}

	replacement := domain.Activity{
		Name:         name,
		ActivityType: p.Current.ActivityType,
		Duration:     placeholderDuration,
		Cost:         placeholderCost,
		Notes:        placeholderNotes,
	}
	for _, s := range p.w.fetch(p.ctx, p.query()) {
		if s.Name == name {
			replacement.Duration = s.Duration
			replacement.Cost = s.Cost
			replacement.Notes = s.Description
			break
		}
	}

	stored, err := p.w.session.ReplaceActivity(p.ActivityID, p.DayIndex, replacement)
	if err != nil {
		if errors.Is(err, session.ErrActivityNotFound) {
			return view.Summary{}, ErrActivityGone
		}
		return view.Summary{}, err
	}

	cal.SwapCard(p.ActivityID, view.NewActivityCard(stored, p.DayIndex), p.DayIndex)
	return view.Recompute(cal), nil
}

// Close shuts the prompt and cancels any fetch still in flight.
func (p *Prompt) Close() {
	p.cancel()
}

// Closed reports whether the prompt has been closed.
func (p *Prompt) Closed() bool {
	return p.ctx.Err() != nil
}

func (p *Prompt) query() Query {
	it, _ := p.w.session.Current()
	destination := ""
	if it != nil {
		destination = it.Destination
	}
	return Query{
		Destination:       destination,
		ActivityType:      p.Current.ActivityType,
		Exclude:           p.w.session.ActivityNames(),
		RemainingBudget:   p.w.session.RemainingBudget(),
		RemainingDayHours: p.w.session.RemainingDayCapacity(p.DayIndex),
	}
}

// fetch runs the provider once and falls back to the static table on any
// failure. Suggestion failures are never surfaced to the user.
func (w *Workflow) fetch(ctx context.Context, q Query) []Suggestion {
	suggestions, err := w.provider.Suggestions(ctx, q)
	if err != nil {
		log.Printf("suggestion fetch failed, using fallback: %v", err)
		return FallbackSuggestions(q.ActivityType)
	}
	return suggestions
}

func filterCollisions(suggestions []Suggestion, existing []string) []Suggestion {
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[name] = true
	}
	var out []Suggestion
	for _, s := range suggestions {
		if !taken[s.Name] {
			out = append(out, s)
		}
	}
	return out
}
