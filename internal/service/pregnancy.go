package service

import (
	"math"
	"time"
)

// Total pregnancy length used everywhere a week is derived from the due date.
const totalPregnancyDays = 280

// Trimester labels.
const (
	TrimesterFirst  = "first"
	TrimesterSecond = "second"
	TrimesterThird  = "third"
)

// CurrentWeek derives the gestational week from the due date: with 280 days of
// pregnancy remaining counted back from the due date, week = ceil((280-daysToGo)/7),
// clamped to [1, 42]. Every call site uses this one formula.
func CurrentWeek(dueDate, now time.Time) int {
	daysToGo := int(math.Floor(dueDate.Sub(now).Hours() / 24))
	week := int(math.Ceil(float64(totalPregnancyDays-daysToGo) / 7))
	if week < 1 {
		week = 1
	}
	if week > 42 {
		week = 42
	}
	return week
}

// Trimester maps a gestational week to its phase: weeks 1-12 first,
// 13-27 second, 28+ third.
func Trimester(week int) string {
	switch {
	case week <= 12:
		return TrimesterFirst
	case week <= 27:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

// trimesterZH returns the Chinese label used in prompts.
func trimesterZH(trimester string) string {
	switch trimester {
	case TrimesterFirst:
		return "第一孕期"
	case TrimesterSecond:
		return "第二孕期"
	default:
		return "第三孕期"
	}
}
