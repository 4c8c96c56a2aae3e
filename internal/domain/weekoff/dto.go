package weekoff

import (
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

type AssignWeekOffRequest struct {
	AdminID   string `json:"-"`
	UserID    string `json:"user_id"`
	DayOfWeek int    `json:"day_of_week"`
	Type      string `json:"type"`
}

func (r *AssignWeekOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user selection is required",
		})
	}

	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypeFull), string(TypeAlternate)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Full or Alternate",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeekOffResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	DayOfWeek  int     `json:"day_of_week"`
	DayName    string  `json:"day_name"`
	Type       string  `json:"type"`
	CreatedAt  string  `json:"created_at"`
	UserName   *string `json:"user_name,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}
