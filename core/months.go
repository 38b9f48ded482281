package core

import "time"

// truncateToMonth returns the first instant of t's calendar month in UTC.
func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthOffset returns the number of calendar months from cohort to activity.
// Both inputs are expected to be first-of-month timestamps; the result is
// negative when activity precedes cohort.
func monthOffset(cohort, activity time.Time) int {
	return (activity.Year()-cohort.Year())*12 + int(activity.Month()) - int(cohort.Month())
}
