package permission

import (
	"time"
)

type Type string

const (
	TypeLeave       Type = "Leave"
	TypeLateLogin   Type = "Late_Login"
	TypeEarlyLogout Type = "Early_Logout"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Permission is a leave or exception request. It starts Pending and is
// decided exactly once; the approver is recorded only on decision.
type Permission struct {
	ID         string
	UserID     string
	Type       Type
	Reason     string
	FromDate   time.Time
	ToDate     time.Time
	Status     Status
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / join
	UserName       *string
	UserEmployeeID *string
}
