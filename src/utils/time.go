package utils

import (
	"fmt"
	"time"
)

func GetMinTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func GetMaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

// TradingDate resolves the date whose session data should be fetched:
// today in New York once the 09:30 open has passed on a weekday, otherwise
// the most recent prior weekday.
func TradingDate(now time.Time) (time.Time, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.Time{}, fmt.Errorf("TradingDate: failed to load location: %w", err)
	}

	nowET := now.In(loc)

	if isWeekday(nowET) {
		marketOpen := time.Date(nowET.Year(), nowET.Month(), nowET.Day(), 9, 30, 0, 0, loc)
		if !nowET.Before(marketOpen) {
			return truncateToDay(nowET), nil
		}
	}

	candidate := nowET.AddDate(0, 0, -1)
	for !isWeekday(candidate) {
		candidate = candidate.AddDate(0, 0, -1)
	}

	return truncateToDay(candidate), nil
}

func isWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
