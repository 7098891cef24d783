// Package analytics derives display metrics from activity records.
// Everything here is a pure computation over the caller's slice; results are
// recomputed on every view and never stored.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"hirehub/internal/models"
)

// Summary holds the aggregate numbers shown on the analytics dashboard.
type Summary struct {
	TotalProblems           int      `json:"totalProblems"`
	TotalInterviewQuestions int      `json:"totalInterviewQuestions"`
	AvgAptitudeScore        float64  `json:"avgAptitudeScore"`
	WeakTopics              []string `json:"weakTopics"`
	TopicsCovered           int      `json:"topicsCovered"`
	StreakDays              int      `json:"streakDays"`
}

// DayBucket is one day of the weekly chart series.
type DayBucket struct {
	Day        string `json:"day"`  // short weekday name
	Date       string `json:"date"` // YYYY-MM-DD
	Problems   int    `json:"problems"`
	Aptitude   int    `json:"aptitude"` // rounded per-day average
	Interviews int    `json:"interviews"`
}

// Compute derives the summary from the record collection. Missing numeric
// fields are zero and missing lists are empty, so no input can fail here.
func Compute(records []models.ProgressEntry, now time.Time) Summary {
	s := Summary{
		WeakTopics: []string{},
		StreakDays: StreakDays(records, now),
	}

	covered := make(map[string]struct{})
	weakSeen := make(map[string]struct{})
	scoreSum := 0
	for _, r := range records {
		s.TotalProblems += r.CodingProblems
		s.TotalInterviewQuestions += r.InterviewQuestions
		scoreSum += r.AptitudeScore
		for _, t := range r.TopicsCovered {
			if t != "" {
				covered[t] = struct{}{}
			}
		}
		for _, t := range r.WeakTopics {
			if t == "" {
				continue
			}
			covered[t] = struct{}{}
			if _, ok := weakSeen[t]; !ok {
				weakSeen[t] = struct{}{}
				s.WeakTopics = append(s.WeakTopics, t)
			}
		}
	}

	if len(records) > 0 {
		s.AvgAptitudeScore = float64(scoreSum) / float64(len(records))
	}
	s.TopicsCovered = len(covered)
	return s
}

// StreakDays counts consecutive calendar days with at least one record,
// ending at the most recent day. The streak is anchored to "now": when the
// latest record is older than yesterday the streak is 0.
func StreakDays(records []models.ProgressEntry, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	days := distinctDaysDesc(records)

	today := calendarDay(now)
	latest := days[0]
	if latest != today && latest != today.AddDate(0, 0, -1) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) > 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// distinctDaysDesc collapses records to their calendar days, deduplicated and
// sorted most recent first.
func distinctDaysDesc(records []models.ProgressEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(records))
	days := make([]time.Time, 0, len(records))
	for _, r := range records {
		d := calendarDay(r.Date)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// calendarDay discards time-of-day, pinning the record to a UTC day.
func calendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeeklySeries buckets the last seven days (oldest first) for the chart.
func WeeklySeries(records []models.ProgressEntry, now time.Time) []DayBucket {
	series := make([]DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := calendarDay(now.AddDate(0, 0, -i))
		bucket := DayBucket{
			Day:  day.Format("Mon"),
			Date: day.Format("2006-01-02"),
		}
		scoreSum, scored := 0, 0
		for _, r := range records {
			if !calendarDay(r.Date).Equal(day) {
				continue
			}
			bucket.Problems += r.CodingProblems
			bucket.Interviews += r.InterviewQuestions
			scoreSum += r.AptitudeScore
			scored++
		}
		if scored > 0 {
			bucket.Aptitude = int(float64(scoreSum)/float64(scored) + 0.5)
		}
		series = append(series, bucket)
	}
	return series
}

// WeeklyGrowth compares the newest bucket's problem count against the oldest
// bucket's, formatted as a signed percentage.
func WeeklyGrowth(series []DayBucket) string {
	if len(series) < 2 {
		return "+0%"
	}
	first := series[0].Problems
	last := series[len(series)-1].Problems
	base := first
	if base == 0 {
		base = 1
	}
	pct := int(float64(last-first) / float64(base) * 100)
	return fmt.Sprintf("%+d%%", pct)
}
