package permission

import (
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

type CreatePermissionRequest struct {
	UserID   string `json:"-"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeLeave), string(TypeLateLogin), string(TypeEarlyLogout)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of Leave, Late_Login, Early_Logout",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecidePermissionRequest struct {
	ID      string `json:"-"`
	AdminID string `json:"-"`
	Status  string `json:"status"`
}

func (r *DecidePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "permission id is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PermissionResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Type       string  `json:"type"`
	Reason     string  `json:"reason"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UserName   *string `json:"user_name,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}
