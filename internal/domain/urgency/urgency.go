// Package urgency orders reminders for display.
//
// The order is a pure function of the reminder set and the current time:
// incomplete reminders come first, then the urgency bucket of the due date,
// then priority, then the due date itself.
package urgency

import (
	"sort"
	"time"

	"apptracker/internal/domain/entity"
)

// Bucket classifies a due date relative to now.
type Bucket int

const (
	Overdue Bucket = iota + 1
	Today
	Tomorrow
	ThisWeek
	Later
)

// Window is how far ahead the ThisWeek bucket reaches.
const Window = 7 * 24 * time.Hour

func (b Bucket) String() string {
	switch b {
	case Overdue:
		return "overdue"
	case Today:
		return "today"
	case Tomorrow:
		return "tomorrow"
	case ThisWeek:
		return "this_week"
	case Later:
		return "later"
	default:
		return "unknown"
	}
}

// Classify returns the bucket of due. Calendar days are taken in now's location.
func Classify(now, due time.Time) Bucket {
	loc := now.Location()
	due = due.In(loc)

	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, loc)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	startOfDayAfter := startOfToday.AddDate(0, 0, 2)

	switch {
	case due.Before(startOfToday):
		return Overdue
	case due.Before(startOfTomorrow):
		return Today
	case due.Before(startOfDayAfter):
		return Tomorrow
	case !due.After(now.Add(Window)):
		return ThisWeek
	default:
		return Later
	}
}

// Less reports whether a sorts before b at time now.
func Less(now time.Time, a, b *entity.Reminder) bool {
	if a.IsCompleted != b.IsCompleted {
		return !a.IsCompleted
	}
	if ba, bb := Classify(now, a.DueDate), Classify(now, b.DueDate); ba != bb {
		return ba < bb
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra < rb
	}
	if !a.DueDate.Equal(b.DueDate) {
		return a.DueDate.Before(b.DueDate)
	}
	// Equal keys: fall back to creation order, then id, so the result does
	// not depend on the order rows came back from storage.
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// Sort orders reminders in place.
func Sort(now time.Time, reminders []*entity.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return Less(now, reminders[i], reminders[j])
	})
}

// SortByDueDate orders reminders by due date only, earliest first.
func SortByDueDate(reminders []*entity.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})
}
