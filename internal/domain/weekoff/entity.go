package weekoff

import (
	"time"
)

type Type string

const (
	TypeFull      Type = "Full"
	TypeAlternate Type = "Alternate"
)

// dayNames spells out day-of-week 0-6, Sunday first.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName returns the weekday name for a 0-6 day index.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}

// WeekOff is a recurring day-of-week exemption for one user. At most one
// row exists per (user, day-of-week).
type WeekOff struct {
	ID        string
	UserID    string
	DayOfWeek int
	Type      Type
	CreatedAt time.Time

	// DTO / join
	UserName       *string
	UserEmployeeID *string
}
