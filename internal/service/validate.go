package service

import (
	"regexp"
	"time"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validISODate accepts calendar dates in the persisted YYYY-MM-DD format.
// Out-of-range days (Feb 30) are rejected here so the scheduling engine
// never sees them.
func validISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// validClock accepts 24-hour HH:MM strings.
func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func validColor(s string) bool {
	return colorRe.MatchString(s)
}
