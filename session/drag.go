package session

// DragEngine tracks the single in-progress drag gesture. The UI is
// single-pointer, so at most one drag is live; a second Start overwrites the
// active context rather than rejecting it.
//
// Highlight bookkeeping mirrors the browser's enter/leave pairing: entering
// a day container marks it as a drop target, and a leave only clears the
// mark when the pointer actually left the container (a leave into a child of
// the same container keeps it lit).
type DragEngine struct {
	session *PlanSession

	active     bool
	activityID string
	fromDay    int
	highlights map[int]bool
}

func NewDragEngine(s *PlanSession) *DragEngine {
	return &DragEngine{session: s, highlights: make(map[int]bool)}
}

// Start begins a drag over the given activity card, recording its origin day.
func (e *DragEngine) Start(activityID string, fromDay int) {
	e.active = true
	e.activityID = activityID
	e.fromDay = fromDay
}

// Dragging reports whether a gesture is in progress.
func (e *DragEngine) Dragging() bool {
	return e.active
}

// Enter marks a day container as the hovered drop target. Any container is
// accepted; destination validation does not exist.
func (e *DragEngine) Enter(day int) {
	if !e.active {
		return
	}
	e.highlights[day] = true
}

// Leave clears the day's drop-target mark unless the pointer merely moved
// into a child of the same container.
func (e *DragEngine) Leave(day int, intoChild bool) {
	if intoChild {
		return
	}
	delete(e.highlights, day)
}

// Highlighted reports whether the day is currently marked as a drop target.
func (e *DragEngine) Highlighted(day int) bool {
	return e.highlights[day]
}

// Drop commits the gesture onto the given day. A same-day drop changes
// nothing and is not an error; a cross-day drop moves the activity to the
// end of the target day's list. The caller still fires End afterwards, as
// drag-end follows drop regardless of outcome.
func (e *DragEngine) Drop(toDay int) (bool, error) {
	if !e.active {
		return false, nil
	}
	delete(e.highlights, toDay)
	if toDay == e.fromDay {
		return false, nil
	}
	if err := e.session.MoveActivity(e.activityID, e.fromDay, toDay); err != nil {
		return false, err
	}
	return true, nil
}

// End clears the drag context and every highlight. Fires on every gesture
// end, dropped or cancelled.
func (e *DragEngine) End() {
	e.active = false
	e.activityID = ""
	e.fromDay = 0
	e.highlights = make(map[int]bool)
}
