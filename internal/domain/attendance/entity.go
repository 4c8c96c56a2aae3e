package attendance

import (
	"time"
)

type WorkMode string

const (
	WorkModeOffice WorkMode = "Office"
	WorkModeRemote WorkMode = "Remote"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half_Day"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// Attendance is one row per (user, date). Lateness is tracked only through
// the IsLate flag; it never overrides Status.
type Attendance struct {
	ID         string
	UserID     string
	Date       time.Time
	LoginTime  time.Time
	LogoutTime *time.Time
	TotalHours *float64
	IsLate     bool
	WorkMode   WorkMode
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / join
	UserName        *string
	UserEmployeeID  *string
	UserDesignation *string
	UserProfileImg  *string
	UserDepartment  *string
	UserJoiningDate *time.Time
}
