package schedule

import (
	"strconv"
	"strings"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// ValidTime reports whether a time string is zero-padded 24-hour
// "HH:MM". The schedule grid sorts slot labels lexicographically, so
// anything looser would break the ordering.
func ValidTime(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return false
	}
	return true
}

// ValidDay reports whether a day belongs to the schedulable week.
func ValidDay(day models.DayOfWeek) bool {
	for _, d := range models.ScheduleDays {
		if day == d {
			return true
		}
	}
	return false
}
