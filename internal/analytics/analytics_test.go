package analytics

import (
	"testing"
	"time"

	"hirehub/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func entryDaysAgo(daysAgo, problems, score, interviews int) models.ProgressEntry {
	return models.ProgressEntry{
		Date:               testNow.AddDate(0, 0, -daysAgo),
		CodingProblems:     problems,
		AptitudeScore:      score,
		InterviewQuestions: interviews,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, testNow)
	assert.Zero(t, s.TotalProblems)
	assert.Zero(t, s.AvgAptitudeScore)
	assert.Zero(t, s.StreakDays)
	assert.NotNil(t, s.WeakTopics, "weak topics should be an empty list, not null")
}

func TestComputeTotalsAndAverage(t *testing.T) {
	records := []models.ProgressEntry{
		entryDaysAgo(0, 3, 80, 2),
		entryDaysAgo(1, 2, 60, 0),
		entryDaysAgo(2, 5, 70, 1),
	}
	s := Compute(records, testNow)

	assert.Equal(t, 10, s.TotalProblems)
	assert.Equal(t, 3, s.TotalInterviewQuestions)
	assert.InDelta(t, 70.0, s.AvgAptitudeScore, 0.001)
}

func TestComputeTopicsDeduplicated(t *testing.T) {
	records := []models.ProgressEntry{
		{Date: testNow, TopicsCovered: pq.StringArray{"arrays", "graphs"}},
		{Date: testNow, TopicsCovered: pq.StringArray{"arrays"}, WeakTopics: pq.StringArray{"dp", "dp"}},
		{Date: testNow, WeakTopics: pq.StringArray{"dp", ""}},
	}
	s := Compute(records, testNow)

	// weak topics count toward covered topics too
	assert.Equal(t, 3, s.TopicsCovered)
	assert.Equal(t, []string{"dp"}, s.WeakTopics)
}

func TestComputeTotalsMonotonic(t *testing.T) {
	records := []models.ProgressEntry{entryDaysAgo(0, 3, 50, 1)}
	before := Compute(records, testNow)

	records = append(records, entryDaysAgo(1, 4, 90, 2))
	after := Compute(records, testNow)

	assert.GreaterOrEqual(t, after.TotalProblems, before.TotalProblems)
	assert.GreaterOrEqual(t, after.TotalInterviewQuestions, before.TotalInterviewQuestions)
}

func TestStreakDays(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{"empty", nil, 0},
		{"single today", []int{0}, 1},
		{"single yesterday", []int{1}, 1},
		{"consecutive run with gap", []int{0, 1, 2, 5}, 3},
		{"latest too old", []int{2, 3, 4}, 0},
		{"starts yesterday", []int{1, 2, 3}, 3},
		{"duplicate days collapse", []int{0, 0, 1, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.ProgressEntry
			for _, d := range tt.daysAgo {
				records = append(records, entryDaysAgo(d, 1, 0, 0))
			}
			assert.Equal(t, tt.want, StreakDays(records, testNow))
		})
	}
}

func TestStreakIgnoresTimeOfDay(t *testing.T) {
	// Records late yesterday and early today are adjacent calendar days even
	// though they are less than an hour apart.
	records := []models.ProgressEntry{
		{Date: time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC), CodingProblems: 1},
		{Date: time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC), CodingProblems: 1},
	}
	assert.Equal(t, 2, StreakDays(records, testNow))
}

func TestWeeklySeries(t *testing.T) {
	records := []models.ProgressEntry{
		entryDaysAgo(0, 4, 80, 1),
		entryDaysAgo(0, 2, 60, 0), // same day, second entry
		entryDaysAgo(3, 1, 90, 2),
		entryDaysAgo(9, 7, 10, 5), // outside the window
	}
	series := WeeklySeries(records, testNow)
	require.Len(t, series, 7)

	// oldest first, newest last
	assert.Equal(t, testNow.AddDate(0, 0, -6).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, testNow.Format("2006-01-02"), series[6].Date)

	today := series[6]
	assert.Equal(t, 6, today.Problems)
	assert.Equal(t, 1, today.Interviews)
	assert.Equal(t, 70, today.Aptitude) // per-day average

	threeBack := series[3]
	assert.Equal(t, 1, threeBack.Problems)
	assert.Equal(t, 90, threeBack.Aptitude)

	// the 9-day-old record is excluded entirely
	total := 0
	for _, b := range series {
		total += b.Problems
	}
	assert.Equal(t, 7, total)
}

func TestWeeklyGrowth(t *testing.T) {
	mk := func(first, last int) []DayBucket {
		s := make([]DayBucket, 7)
		s[0].Problems = first
		s[6].Problems = last
		return s
	}

	assert.Equal(t, "+100%", WeeklyGrowth(mk(2, 4)))
	assert.Equal(t, "-50%", WeeklyGrowth(mk(4, 2)))
	assert.Equal(t, "+0%", WeeklyGrowth(mk(3, 3)))
	// zero base falls back to 1 instead of dividing by zero
	assert.Equal(t, "+300%", WeeklyGrowth(mk(0, 3)))
	assert.Equal(t, "+0%", WeeklyGrowth(nil))
}
