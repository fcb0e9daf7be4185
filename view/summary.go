package view

// Summary is what the summary panel shows.
type Summary struct {
	TotalCost       float64
	TotalActivities int
}

// Recompute walks every day card in the projection, refreshes each day's
// header totals from its activity cards, and accumulates the grand totals.
// It reads the cards' numeric fields directly; nothing is parsed back out of
// display strings.
func Recompute(v *CalendarView) Summary {
	var sum Summary
	for _, day := range v.Days {
		hours := 0.0
		cost := 0.0
		for _, card := range day.Activities {
			hours += card.Duration
			cost += card.Cost
			sum.TotalActivities++
		}
		day.TotalHours = hours
		day.TotalCost = cost
		day.Stats = statsLine(hours, cost)
		sum.TotalCost += cost
	}
	return sum
}
