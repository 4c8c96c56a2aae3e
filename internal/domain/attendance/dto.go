package attendance

import (
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Coordinates is a caller-supplied GPS fix in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type ClockInRequest struct {
	UserID   string       `json:"-"`
	Mode     string       `json:"mode"`
	Location *Coordinates `json:"location,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Mode, []string{string(WorkModeOffice), string(WorkModeRemote)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be Office or Remote",
		})
	}

	if r.Location != nil {
		if r.Location.Latitude < -90 || r.Location.Latitude > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lat",
				Message: "latitude must be between -90 and 90",
			})
		}
		if r.Location.Longitude < -180 || r.Location.Longitude > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lng",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	LoginTime    string   `json:"login_time"`
	LogoutTime   *string  `json:"logout_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	IsLate       bool     `json:"is_late"`
	WorkMode     string   `json:"work_mode"`
	Status       string   `json:"status"`
	UserName     *string  `json:"user_name,omitempty"`
	EmployeeID   *string  `json:"employee_id,omitempty"`
	Designation  *string  `json:"designation,omitempty"`
	ProfileImage *string  `json:"profile_image,omitempty"`
}

// TodayResponse wraps GetToday; ClockedIn false with nil Attendance is the
// explicit "not clocked in" marker, never an error.
type TodayResponse struct {
	ClockedIn  bool                `json:"clocked_in"`
	Attendance *AttendanceResponse `json:"attendance"`
}

// ========================================
// REPORT DTOs
// ========================================

type ReportFilter struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportUserSummary aggregates one user's counters over the report range.
// Absent stays a placeholder; deriving it needs a holiday calendar.
type ReportUserSummary struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	EmployeeID  string  `json:"employee_id"`
	Role        string  `json:"role"`
	Present     int     `json:"present"`
	HalfDay     int     `json:"half_day"`
	Late        int     `json:"late"`
	Permissions int     `json:"permissions"`
	Absent      int     `json:"absent"`
	TotalHours  float64 `json:"total_hours"`
}

type ReportResponse struct {
	RangeStart string               `json:"range_start"`
	RangeEnd   string               `json:"range_end"`
	Results    int                  `json:"results"`
	Summary    []ReportUserSummary  `json:"summary"`
	Records    []AttendanceResponse `json:"records"`
}
