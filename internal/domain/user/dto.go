package user

import (
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type RegisterRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	EmployeeID   string  `json:"employee_id"`
	Role         *string `json:"role,omitempty"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Address      *string `json:"address,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
	JoiningDate  *string `json:"joining_date,omitempty"`
	ShiftTime    *string `json:"shift_time,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Role != nil && !IsValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Employee, HR_Admin, Admin, Manager_Admin",
		})
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest covers the fields a user may edit on their own profile.
type UpdateProfileRequest struct {
	UserID       string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Address      *string `json:"address,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be blank",
		})
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest covers the fields an admin may edit on any employee.
type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Role         *string `json:"role,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Address      *string `json:"address,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
	JoiningDate  *string `json:"joining_date,omitempty"`
	ShiftTime    *string `json:"shift_time,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.Role != nil && !IsValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Employee, HR_Admin, Admin, Manager_Admin",
		})
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the sanitized user representation; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	EmployeeID   string  `json:"employee_id"`
	Role         string  `json:"role"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Address      *string `json:"address,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
	JoiningDate  *string `json:"joining_date,omitempty"`
	ShiftTime    *string `json:"shift_time,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse maps a User entity to its sanitized response form.
func ToResponse(u User) UserResponse {
	formatDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("2006-01-02")
		return &s
	}

	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmployeeID:   u.EmployeeID,
		Role:         string(u.Role),
		Department:   u.Department,
		Designation:  u.Designation,
		DOB:          formatDate(u.DOB),
		Sex:          u.Sex,
		Address:      u.Address,
		EmployeeType: u.EmployeeType,
		JoiningDate:  formatDate(u.JoiningDate),
		ShiftTime:    u.ShiftTime,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
