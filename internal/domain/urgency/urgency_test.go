package urgency

import (
	"math/rand"
	"testing"
	"time"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

func reminder(id string, due time.Time, p constant.Priority, completed bool) *entity.Reminder {
	return &entity.Reminder{
		ID:          id,
		Title:       id,
		DueDate:     due,
		Priority:    p,
		IsCompleted: completed,
	}
}

func ids(reminders []*entity.Reminder) []string {
	out := make([]string, len(reminders))
	for i, r := range reminders {
		out[i] = r.ID
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want Bucket
	}{
		{"yesterday", now.AddDate(0, 0, -1), Overdue},
		{"just before midnight", time.Date(2025, 3, 11, 23, 59, 59, 0, time.UTC), Overdue},
		{"earlier today", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Today},
		{"later today", time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC), Today},
		{"tomorrow morning", time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), Tomorrow},
		{"tomorrow night", time.Date(2025, 3, 13, 23, 0, 0, 0, time.UTC), Tomorrow},
		{"in two days", now.AddDate(0, 0, 2), ThisWeek},
		{"exactly seven days", now.Add(Window), ThisWeek},
		{"just past seven days", now.Add(Window + time.Second), Later},
		{"next month", now.AddDate(0, 1, 0), Later},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(now, tt.due))
		})
	}
}

func TestClassifyUsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	// 14:00 UTC on the 12th is 23:00 on the 12th in Tokyo, which is
	// already yesterday for someone there at 08:00 on the 13th.
	nowTokyo := time.Date(2025, 3, 13, 8, 0, 0, 0, tokyo)
	due := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, Overdue, Classify(nowTokyo, due))
	assert.Equal(t, Today, Classify(now, due))
}

func TestSortExampleScenario(t *testing.T) {
	r1 := reminder("R1", now.AddDate(0, 0, -1), constant.PriorityHigh, false)
	r2 := reminder("R2", now.AddDate(0, 0, 2), constant.PriorityHigh, false)
	r3 := reminder("R3", now.AddDate(0, 0, 2), constant.PriorityLow, false)

	list := []*entity.Reminder{r3, r2, r1}
	Sort(now, list)
	assert.Equal(t, []string{"R1", "R2", "R3"}, ids(list))
}

func TestSortKeys(t *testing.T) {
	list := []*entity.Reminder{
		reminder("done-overdue", now.AddDate(0, 0, -3), constant.PriorityHigh, true),
		reminder("later-high", now.AddDate(0, 0, 20), constant.PriorityHigh, false),
		reminder("week-low", now.AddDate(0, 0, 3), constant.PriorityLow, false),
		reminder("week-medium", now.AddDate(0, 0, 4), constant.PriorityMedium, false),
		reminder("week-high-late", now.AddDate(0, 0, 5), constant.PriorityHigh, false),
		reminder("week-high-early", now.AddDate(0, 0, 3), constant.PriorityHigh, false),
		reminder("week-unknown", now.AddDate(0, 0, 3), constant.Priority("urgent"), false),
		reminder("tomorrow-low", now.AddDate(0, 0, 1), constant.PriorityLow, false),
		reminder("today-medium", now.Add(time.Hour), constant.PriorityMedium, false),
		reminder("overdue-low", now.AddDate(0, 0, -2), constant.PriorityLow, false),
		reminder("done-today", now.Add(time.Hour), constant.PriorityHigh, true),
	}

	Sort(now, list)
	assert.Equal(t, []string{
		"overdue-low",
		"today-medium",
		"tomorrow-low",
		"week-high-early",
		"week-high-late",
		"week-medium",
		"week-low",
		"week-unknown",
		"later-high",
		"done-overdue",
		"done-today",
	}, ids(list))
}

func TestSortIsDeterministic(t *testing.T) {
	base := []*entity.Reminder{
		reminder("a", now.AddDate(0, 0, 2), constant.PriorityHigh, false),
		reminder("b", now.AddDate(0, 0, 2), constant.PriorityHigh, false),
		reminder("c", now.AddDate(0, 0, -1), constant.PriorityMedium, false),
		reminder("d", now.AddDate(0, 0, 9), constant.PriorityLow, true),
		reminder("e", now, constant.PriorityLow, false),
	}

	want := append([]*entity.Reminder(nil), base...)
	Sort(now, want)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]*entity.Reminder(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		Sort(now, shuffled)
		assert.Equal(t, ids(want), ids(shuffled))
	}
}

func TestSortByDueDateIgnoresPriority(t *testing.T) {
	list := []*entity.Reminder{
		reminder("low-soon", now.Add(2*time.Hour), constant.PriorityLow, false),
		reminder("high-later", now.AddDate(0, 0, 3), constant.PriorityHigh, false),
		reminder("medium-overdue", now.AddDate(0, 0, -1), constant.PriorityMedium, false),
	}

	SortByDueDate(list)
	assert.Equal(t, []string{"medium-overdue", "low-soon", "high-later"}, ids(list))
}
