package plan

import (
	"fmt"
	"time"
)

// weekdayCN maps time.Weekday to the Chinese weekday glyph, Monday first.
var weekdayCN = map[time.Weekday]string{
	time.Monday:    "一",
	time.Tuesday:   "二",
	time.Wednesday: "三",
	time.Thursday:  "四",
	time.Friday:    "五",
	time.Saturday:  "六",
	time.Sunday:    "日",
}

// WeekNumber returns the 1-based week of target within a semester starting
// at semesterStart. Both dates are taken at day granularity. Targets before
// semesterStart are not meaningful input; the day difference truncates
// toward zero, so up to six days before the start still reads as week 1 and
// anything earlier goes to zero or below.
func WeekNumber(semesterStart, target time.Time) int {
	start := truncateDay(semesterStart)
	end := truncateDay(target)
	days := int(end.Sub(start).Hours() / 24)
	return days/7 + 1
}

// WeekdayCN returns the Chinese weekday name for d ("一" through "日").
func WeekdayCN(d time.Time) string {
	return weekdayCN[d.Weekday()]
}

// BuildWeekText formats the header week cell, e.g. "第（1）周".
func BuildWeekText(weekNumber int) string {
	return fmt.Sprintf("第（%d）周", weekNumber)
}

// BuildDateText formats the header date cell, e.g. "周（四） 2月26日".
func BuildDateText(target time.Time) string {
	return fmt.Sprintf("周（%s） %d月%d日", WeekdayCN(target), int(target.Month()), target.Day())
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
