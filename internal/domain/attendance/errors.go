package attendance

import (
	"errors"
	"fmt"
	"math"
)

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you have already clocked in for today")
	ErrAlreadyClockedOut  = errors.New("you have already clocked out")
	ErrNoActiveRecord     = errors.New("no active attendance record found for today")
	ErrLocationRequired   = errors.New("location data required for office check-in")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutsideRadiusError rejects an office clock-in made too far from every
// configured office, carrying the measured minimum distance.
type OutsideRadiusError struct {
	MinDistanceMeters float64
	MaxAllowedMeters  float64
}

func (e *OutsideRadiusError) Error() string {
	return fmt.Sprintf("you are too far from any office (%.0fm); max allowed: %.0fm",
		math.Round(e.MinDistanceMeters), e.MaxAllowedMeters)
}
