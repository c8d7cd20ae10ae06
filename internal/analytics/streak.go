package analytics

import (
	"sort"
	"time"
)

// StreakStats holds the streak counters for one user's writing history.
type StreakStats struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	MissedDays    int `json:"missed_days"`
}

// Day normalizes t to midnight UTC of its calendar date. All streak
// arithmetic works on Day-normalized values, so consecutive days are
// exactly 24h apart regardless of the input's zone or time of day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateStreaks computes streak statistics over a set of entry dates.
// today anchors the current streak: it counts back from today only, so a
// user who has not written today has a current streak of 0. There is no
// grace day. Missed days span from the earliest entry through today,
// clamped at 0 since ingestion rejects future dates.
func CalculateStreaks(dates []time.Time, today time.Time) StreakStats {
	if len(dates) == 0 {
		return StreakStats{}
	}

	today = Day(today)
	set := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := Day(d)
		if _, ok := set[day]; ok {
			continue
		}
		set[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	current := 0
	if _, ok := set[today]; ok {
		for {
			if _, ok := set[today.AddDate(0, 0, -current)]; !ok {
				break
			}
			current++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	span := int(today.Sub(days[0]).Hours()/24) + 1
	missed := span - len(days)
	if missed < 0 {
		missed = 0
	}

	return StreakStats{
		CurrentStreak: current,
		LongestStreak: longest,
		MissedDays:    missed,
	}
}
