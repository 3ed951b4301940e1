package credits

import "time"

const freePlan = "Free"

func defaultCredits(limit int, now time.Time) Credits {
	return Credits{
		Plan:     freePlan,
		Limit:    limit,
		Used:     0,
		ResetsAt: nextMonthStart(now),
	}
}

// nextMonthStart returns midnight UTC on the first day of the next month.
func nextMonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
