package domain

import "time"

// Weekday wire names ("monday".."sunday") shared by the catalog contract
// and the global-rule storage schema.

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var nameByWeekday = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekdayFromName maps a wire name to time.Weekday
func WeekdayFromName(name string) (time.Weekday, bool) {
	wd, ok := weekdayByName[name]
	return wd, ok
}

// WeekdayName maps time.Weekday to its wire name
func WeekdayName(wd time.Weekday) string {
	return nameByWeekday[wd]
}

// WeekdaysFromNames maps wire names to weekdays, dropping unknown names
func WeekdaysFromNames(names []string) []time.Weekday {
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		if wd, ok := weekdayByName[n]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// WeekdayNames maps weekdays to wire names
func WeekdayNames(days []time.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, nameByWeekday[d])
	}
	return out
}
