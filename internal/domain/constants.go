package domain

// Default engine parameters
const (
	// DefaultSlotGranularityMinutes slot unit used when the config does not
	// override it; 60 keeps the whole-hour behaviour of the calendar UI
	DefaultSlotGranularityMinutes = 60
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240
	MaxRangeDays              = 92 // ~3 months per range request
	MinPrice                  = 0.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
