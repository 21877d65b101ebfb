package validator

import (
	"time"
	"unicode/utf8"
)

func EventTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 1 && utf8.RuneCountInString(title) <= 100
}

func EventDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 1000
}

// EventWindow requires a strictly future start and a positive duration.
func EventWindow(start, end, now time.Time) bool {
	return start.After(now) && start.Before(end)
}
