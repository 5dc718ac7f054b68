package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Clock supplies the current time in the application's timezone.
type Clock struct {
	Location *time.Location
	now      func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Location: loc, now: time.Now}
}

// FixedClock always reports t.
func FixedClock(t time.Time, loc *time.Location) Clock {
	return Clock{Location: loc, now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	return c.now().In(c.Location)
}

// Layouts accepted for dates without an explicit offset. They are read in the clock's location.
var localDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate reads an RFC 3339 timestamp or one of the local layouts.
func (c Clock) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, value, c.Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
