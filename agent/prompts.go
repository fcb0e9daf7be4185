package agent

import (
	"fmt"
	"strings"

	"travel-planner/domain"
)

const builderSystemPrompt = "You are an expert itinerary planning assistant that creates personalized travel plans." +
	" Generate a JSON response matching this exact schema:" +
	" {destination: str, daily_itinerary: [{day: int, activities: [{name: str, duration: float, notes: str, activity_type: str, cost: int}], day_total_hours: float, day_total_cost: int}], total_cost: int}." +
	" CRITICAL REQUIREMENTS:" +
	" 1) DESTINATION FOCUS: You MUST create activities for the EXACT destination provided in the user's request. NEVER use a different city than what the user specified." +
	" 2) DURATION RESPECT: Plan EXACTLY the number of days requested. Each day should have 6-13 hours of activities (day trips can be 12+ hours)." +
	" 3) BUDGET COMPLIANCE: Total cost MUST be <= budget. Choose cost-effective options when budget is tight. Include free activities when possible." +
	" 4) PREFERENCE PRIORITIZATION: Heavily favor activities matching user's top preferences (rank 1-2), moderately include rank 3, sparingly use ranks 4-5." +
	" 5) PROXIMITY GROUPING: Group nearby activities together to minimize travel time. Start each day from popular tourist areas or central neighborhoods." +
	" 6) REALISTIC DURATIONS: Use 0.5-4 hours for regular activities, 8-12 hours for day trips. Include travel time between locations." +
	" 7) AUTHENTIC EXPERIENCES: Include must-see attractions, local cuisine, cultural sites, and hidden gems specific to the destination." +
	" 8) DAILY BALANCE: Each day should have 1-4 activities with a good mix of activity types based on user preferences." +
	" Activity Types (use EXACTLY these values - no other types allowed): Food, Cultural, Tour, Recreational, Adventure." +
	" NEVER use 'Entertainment' or any other activity type." +
	" IMPORTANT: Always use the destination, duration, budget, and preferences provided in the user's request."

const replacementSystemPrompt = "You are an expert itinerary planning assistant that creates personalized travel plans." +
	" You MUST respond with a JSON object in this EXACT format:" +
	` {"replacement_activities": [{"name": "Activity Name", "duration": 2.5, "cost": 30.0, "notes": "Detailed description of the activity", "activity_type": "Cultural"}]}` +
	" CRITICAL REQUIREMENTS:" +
	" 1) DESTINATION FOCUS: You MUST create activities for the EXACT destination provided in the user's request." +
	" 2) UNIQUENESS: The activities generated should be unique from the list of excluded activities." +
	" 3) Activity generated should be within the budget of the user." +
	" 4) The activities generated should be within the day duration of the user." +
	" 5) You should generate EXACTLY 3 activities." +
	" 6) Each activity MUST have ALL required fields: name (string), duration (number), cost (number), notes (string), and activity_type (string)." +
	" 7) Provide meaningful notes/descriptions for each activity." +
	" 8) Activity types should be one of: Cultural, Food, Tour, Recreational, Adventure." +
	" 9) Use ONLY the field names shown in the example above - do not use 'category' or any other field names."

func builderUserPrompt(req domain.PlanRequest) string {
	pref := func(rank string) string {
		if v, ok := req.UserPref[rank]; ok && v != "" {
			return v
		}
		return "Not specified"
	}
	return fmt.Sprintf(`Create an itinerary for the following trip:

Destination: %s
Budget: $%d
Duration: %d days
Activity Preferences (1=most preferred, 5=least preferred):
- 1st choice: %s
- 2nd choice: %s
- 3rd choice: %s
- 4th choice: %s
- 5th choice: %s

Please create a detailed itinerary for %s for %d days within a budget of $%d.`,
		req.Destination, req.Budget, req.Days,
		pref("1"), pref("2"), pref("3"), pref("4"), pref("5"),
		req.Destination, req.Days, req.Budget)
}

func replacementUserPrompt(req domain.ModifyActivityRequest) string {
	excluded := make([]string, 0, len(req.ExcludedActivities))
	for _, act := range req.ExcludedActivities {
		excluded = append(excluded, act.Name)
	}
	return fmt.Sprintf(`Swap the activity %s for an activity in the itinerary for the destination %s. The excluded activities are [%s]. The activities generated should be unique from the list of excluded activities.
The budget of the user is %g. The day duration is %g.
You should generate EXACTLY 3 activities`,
		req.Request.Name, req.Destination, strings.Join(excluded, ", "),
		req.Budget, req.DayDuration)
}
